package parse

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pson-format/go-pson/ir"
)

// Parse reads a whole document. The result is an Array of the top-level
// values.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return scan(bytes.NewReader(d), opts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return scan(strings.NewReader(s), opts)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return scan(rr, opts)
}

func scan(r io.RuneReader, opts []ParseOption) (*ir.Node, error) {
	s := NewScanner(r, opts...)
	if err := s.Parse(); err != nil {
		return nil, err
	}
	return s.Get()
}
