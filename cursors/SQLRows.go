package cursors

import (
	"io"

	"github.com/samber/mo"
)

func SQLRows[T any](rows sqlRows, mapper SQLRowMapper[T]) *SQLRowsCursor[T] {
	return &SQLRowsCursor[T]{Rows: rows, Mapper: mapper}
}

// SQLRowsCursor allow you to use the same cursor pattern with the sql.Rows structure.
// It allows you to do dynamic filtering, pipeline/middleware pattern on your sql results
// by using this wrapping around it.
// It also makes testing easier with the same Cursor interface.
//
// The cursor is forward only. The underlying rows keep their own resources,
// closing them stays the caller's responsibility (Close is a passthrough for convenience).
type SQLRowsCursor[T any] struct {
	Rows   sqlRows
	Mapper SQLRowMapper[T]

	current mo.Option[T]
	err     error
}

type sqlRows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...interface{}) error
}

func (c *SQLRowsCursor[T]) Advance() bool {
	if c.err != nil {
		return false
	}
	if !c.Rows.Next() {
		c.current = mo.None[T]()
		return false
	}
	v, err := c.Mapper.Map(c.Rows)
	if err != nil {
		c.err = err
		c.current = mo.None[T]()
		return false
	}
	c.current = mo.Some(v)
	return true
}

func (c *SQLRowsCursor[T]) Current() (T, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, ErrEmptyTraversal
	}
	return v, nil
}

// Err return the error cause of the traversal ending early:
// a mapping failure or the rows' own error.
func (c *SQLRowsCursor[T]) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.Rows.Err()
}

func (c *SQLRowsCursor[T]) Close() error {
	return c.Rows.Close()
}

// sql rows cursor dependencies

type SQLRowScanner interface {
	Scan(...interface{}) error
}

type SQLRowMapper[T any] interface {
	Map(s SQLRowScanner) (T, error)
}

type SQLRowMapperFunc[T any] func(SQLRowScanner) (T, error)

func (fn SQLRowMapperFunc[T]) Map(s SQLRowScanner) (T, error) { return fn(s) }
