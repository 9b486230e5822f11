package parse

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pson-format/go-pson/debug"
	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/token"
)

type frameKind int

const (
	arrayFrame frameKind = iota
	mapFrame
)

func (k frameKind) String() string {
	if k == mapFrame {
		return "map"
	}
	return "array"
}

// frame accumulates the children of an open array or map.
type frame struct {
	kind  frameKind
	close rune
	open  token.Pos
	nodes []*ir.Node
}

func (f *frame) toArray() *ir.Node {
	return ir.FromSlice(f.nodes)
}

// toMap pairs children from the end: the last child is a value and the one
// before it its key. A key seen again closer to the start is ignored, so
// the textually last occurrence of a key wins.
func (f *frame) toMap() (*ir.Node, error) {
	n := len(f.nodes)
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrOddMap, n)
	}
	res := make(map[string]*ir.Node, n/2)
	for i := n - 1; i > 0; i -= 2 {
		val, key := f.nodes[i], f.nodes[i-1]
		k, ok := key.AsString()
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrMapKey, key.Type, key.Render())
		}
		if _, dup := res[k]; dup {
			continue
		}
		res[k] = val
	}
	return ir.FromMap(res), nil
}

// Scanner reads PSON from a rune source in a single pass. The zero value is
// not usable; use NewScanner.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	r     io.RuneReader
	opts  parseOpts
	stack []*frame
	buf   []byte
	pos   token.Pos

	consumed bool
}

func NewScanner(r io.RuneReader, opts ...ParseOption) *Scanner {
	s := &Scanner{r: r}
	for _, f := range opts {
		f(&s.opts)
	}
	s.stack = []*frame{{kind: arrayFrame, open: token.StartPos()}}
	s.buf = make([]byte, 0, max(s.opts.bufCap, 0))
	s.pos = token.StartPos()
	return s
}

// Parse consumes the rest of the input. It does not require brackets to be
// balanced; Get does.
func (s *Scanner) Parse() error {
	if s.consumed {
		return s.errAt(ErrConsumed, s.pos)
	}
	for {
		r, at, err := s.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch {
		case token.IsOpen(r):
			// a pending atom is not flushed; it continues inside the
			// new frame
			s.push(r, at)
		case token.IsClose(r):
			if err := s.closeFrame(r, at); err != nil {
				return err
			}
		case token.IsSpace(r):
			s.flush()
		case r == '"':
			s.flush()
			if err := s.quoted(at); err != nil {
				return err
			}
		default:
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}
	s.flush()
	return nil
}

// Get returns the top-level Array. Every opened array and map must have
// been closed. Get consumes the scanner.
func (s *Scanner) Get() (*ir.Node, error) {
	if s.consumed {
		return nil, s.errAt(ErrConsumed, s.pos)
	}
	if len(s.stack) != 1 {
		open := s.stack[len(s.stack)-1]
		return nil, s.errAt(fmt.Errorf("%w: %s opened at %s (%d unclosed)",
			ErrUnbalanced, open.kind, open.open, len(s.stack)-1), s.pos)
	}
	s.consumed = true
	top := s.stack[0]
	s.stack = nil
	return top.toArray(), nil
}

// Depth is the number of arrays and maps currently open.
func (s *Scanner) Depth() int {
	return len(s.stack) - 1
}

func (s *Scanner) next() (rune, token.Pos, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, s.pos, err
	}
	at := s.pos
	s.pos.Advance(r)
	return r, at, nil
}

func (s *Scanner) top() *frame {
	return s.stack[len(s.stack)-1]
}

func (s *Scanner) push(open rune, at token.Pos) {
	kind := mapFrame
	if open == '[' {
		kind = arrayFrame
	}
	if debug.Scan() {
		debug.Logf("scan: push %s frame %q at %s depth %d\n", kind, open, at, len(s.stack))
	}
	s.stack = append(s.stack, &frame{kind: kind, close: token.Closer(open), open: at})
}

func (s *Scanner) flush() {
	if len(s.buf) == 0 {
		return
	}
	s.top().nodes = append(s.top().nodes, ir.FromAtom(string(s.buf)))
	s.buf = s.buf[:0]
}

func (s *Scanner) closeFrame(r rune, at token.Pos) error {
	s.flush()
	if len(s.stack) == 1 {
		return s.errAt(fmt.Errorf("%w: %q", ErrUnmatchedClose, r), at)
	}
	f := s.top()
	if f.close != r {
		return s.errAt(fmt.Errorf("%w: %q closing %s opened at %s", ErrMismatchedClose, r, f.kind, f.open), at)
	}
	s.stack = s.stack[:len(s.stack)-1]
	if debug.Scan() {
		debug.Logf("scan: pop %s frame of %d at %s\n", f.kind, len(f.nodes), at)
	}
	var n *ir.Node
	switch f.kind {
	case arrayFrame:
		n = f.toArray()
	case mapFrame:
		var err error
		n, err = f.toMap()
		if err != nil {
			return s.errAt(err, f.open)
		}
	}
	s.top().nodes = append(s.top().nodes, n)
	return nil
}

// quoted reads a string whose opening quote was at open.
func (s *Scanner) quoted(open token.Pos) error {
	for {
		r, _, err := s.next()
		if err == io.EOF {
			return s.errAt(ErrUnterminatedString, open)
		}
		if err != nil {
			return err
		}
		switch r {
		case '"':
			s.top().nodes = append(s.top().nodes, ir.FromString(string(s.buf)))
			s.buf = s.buf[:0]
			return nil
		case '\\':
			e, at, err := s.next()
			if err == io.EOF {
				return s.errAt(ErrUnterminatedString, open)
			}
			if err != nil {
				return err
			}
			if e != 'x' {
				s.buf = utf8.AppendRune(s.buf, token.Unescape(e))
				continue
			}
			if err := s.hexEscape(at); err != nil {
				return err
			}
		default:
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}
}

func (s *Scanner) hexEscape(at token.Pos) error {
	var digits [2]rune
	for i := range digits {
		r, _, err := s.next()
		if err == io.EOF {
			return s.errAt(fmt.Errorf("%w: truncated", ErrBadHexEscape), at)
		}
		if err != nil {
			return err
		}
		digits[i] = r
	}
	h, err := token.DecodeHex(digits[0], digits[1])
	if err != nil {
		return s.errAt(fmt.Errorf("%w: %w", ErrBadHexEscape, err), at)
	}
	s.buf = utf8.AppendRune(s.buf, h)
	return nil
}

func (s *Scanner) errAt(err error, at token.Pos) error {
	return &ParseError{Err: err, Pos: at, Filename: s.opts.filename}
}
