// Package boltdb adapts the contents of bolt buckets to the cursor protocol.
package boltdb

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"

	"github.com/boltdb/bolt"
	"github.com/samber/mo"

	"github.com/NthPortal/cursor-exploration/cursors"
)

// Bucket returns a cursor over the gob encoded values of the bolt bucket, in key order.
// The cursor borrows the bucket and is valid only within the enclosing transaction.
// Each move re-seeks the bucket by the remembered key, so the traversal survives
// the cursor's own deletions. Writing to the bucket through anything other than
// the cursor while the traversal is in progress leaves the cursor in an undefined state.
func Bucket[T any](b *bolt.Bucket) *BucketCursor[T] {
	return &BucketCursor[T]{Bucket: b}
}

type BucketCursor[T any] struct {
	Bucket *bolt.Bucket

	pos     position
	key     []byte
	current mo.Option[T]
	err     error
}

// position of the cursor between operations; key is meaningful in the over and gap states.
type position int

const (
	posBefore position = iota
	posOver
	posGap
	posAfter
)

func (c *BucketCursor[T]) Advance() bool {
	if c.err != nil {
		return false
	}
	cur := c.Bucket.Cursor()
	var k, v []byte
	switch c.pos {
	case posBefore:
		k, v = cur.First()
	case posOver:
		cur.Seek(c.key)
		k, v = cur.Next()
	case posGap:
		// the remembered key is deleted, seeking it lands on its successor
		k, v = cur.Seek(c.key)
	case posAfter:
		return false
	}
	return c.land(k, v, posAfter)
}

func (c *BucketCursor[T]) Retreat() bool {
	if c.err != nil {
		return false
	}
	cur := c.Bucket.Cursor()
	var k, v []byte
	switch c.pos {
	case posAfter:
		k, v = cur.Last()
	case posOver:
		cur.Seek(c.key)
		k, v = cur.Prev()
	case posGap:
		k, v = cur.Seek(c.key)
		if k == nil {
			// the gap is past the last pair, its predecessor is the last one
			k, v = cur.Last()
		} else {
			k, v = cur.Prev()
		}
	case posBefore:
		return false
	}
	return c.land(k, v, posBefore)
}

func (c *BucketCursor[T]) land(k, v []byte, onNothing position) bool {
	if k == nil {
		c.pos = onNothing
		c.key = nil
		c.current = mo.None[T]()
		return false
	}
	var value T
	if err := decode(v, &value); err != nil {
		c.err = err
		c.pos = onNothing
		c.key = nil
		c.current = mo.None[T]()
		return false
	}
	c.pos = posOver
	// writes within the transaction may relocate pages, the key must be copied
	c.key = append([]byte(nil), k...)
	c.current = mo.Some(value)
	return true
}

func (c *BucketCursor[T]) Current() (T, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, cursors.ErrEmptyTraversal
	}
	return v, nil
}

func (c *BucketCursor[T]) Remove() error {
	if c.pos != posOver {
		return cursors.ErrEmptyTraversal
	}
	if err := c.Bucket.Delete(c.key); err != nil {
		return err
	}
	c.pos = posGap
	c.current = mo.None[T]()
	return nil
}

// Err returns the error cause of the traversal ending early, a gob decode failure.
func (c *BucketCursor[T]) Err() error {
	return c.err
}

// Append stores the value under the bucket's next sequence key.
// The key is the 8-byte big endian form of the sequence number,
// so the traversal order of Bucket cursors equals insertion order.
func Append[T any](b *bolt.Bucket, v T) error {
	seq, err := b.NextSequence()
	if err != nil {
		return err
	}
	value, err := encode(v)
	if err != nil {
		return err
	}
	return b.Put(uintToBytes(seq), value)
}

func encode(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, ptr any) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(ptr)
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
