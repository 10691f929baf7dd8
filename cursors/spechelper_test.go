package cursors_test

import (
	"errors"
	"io"

	randomdata "github.com/Pallinder/go-randomdata"
)

type Entity struct {
	Text string
}

func NewEntityForTest() Entity {
	return Entity{Text: randomdata.SillyName()}
}

func NewEntitiesForTest(n int) []Entity {
	es := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		es = append(es, NewEntityForTest())
	}
	return es
}

type ReadCloser struct {
	IsClosed bool
	io       io.Reader
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{io: r, IsClosed: false}
}

func (rc *ReadCloser) Read(p []byte) (n int, err error) {
	return rc.io.Read(p)
}

func (rc *ReadCloser) Close() error {
	if rc.IsClosed {
		return errors.New("already closed")
	}

	rc.IsClosed = true
	return nil
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }
