package cursors

import (
	"bufio"
	"io"

	"github.com/samber/mo"
)

func BufioScanner[T string | []byte](s *bufio.Scanner, closer io.Closer) *BufioScannerCursor[T] {
	return &BufioScannerCursor[T]{
		Scanner: s,
		Closer:  closer,
	}
}

// BufioScannerCursor is a forward-only cursor over the tokens of a bufio.Scanner.
type BufioScannerCursor[T string | []byte] struct {
	*bufio.Scanner
	Closer io.Closer

	current mo.Option[T]
}

func (c *BufioScannerCursor[T]) Advance() bool {
	if c.Scanner.Err() != nil {
		return false
	}
	if !c.Scanner.Scan() {
		c.current = mo.None[T]()
		return false
	}
	var v T
	var iface interface{} = v
	switch iface.(type) {
	case string:
		c.current = mo.Some(T(c.Scanner.Text()))
	case []byte:
		c.current = mo.Some(T(c.Scanner.Bytes()))
	}
	return true
}

func (c *BufioScannerCursor[T]) Current() (T, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, ErrEmptyTraversal
	}
	return v, nil
}

func (c *BufioScannerCursor[T]) Err() error {
	return c.Scanner.Err()
}

func (c *BufioScannerCursor[T]) Close() error {
	if c.Closer == nil {
		return nil
	}
	return c.Closer.Close()
}
