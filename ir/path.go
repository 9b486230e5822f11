package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pson-format/go-pson/token"
)

// PathElem is one step of a path: a map key or an array index.
type PathElem struct {
	Field string
	Index int
	// IsIndex distinguishes [0] from the field "0".
	IsIndex bool
}

func (e PathElem) String() string {
	if e.IsIndex {
		return "[" + strconv.Itoa(e.Index) + "]"
	}
	if token.NeedsQuote(e.Field) || strings.ContainsAny(e.Field, ".") {
		return token.Quote(e.Field)
	}
	return e.Field
}

// FormatPath returns the text form of a path as accepted by ParsePath.
func FormatPath(p []PathElem) string {
	var sb strings.Builder
	for i, e := range p {
		if i > 0 && !e.IsIndex {
			sb.WriteByte('.')
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

// ParsePath parses a path such as a.b[0]."c d". Fields are separated by
// dots; indices are bracketed; fields which are not plain words may be
// quoted using string escapes. The empty path denotes the root.
func ParsePath(p string) ([]PathElem, error) {
	var res []PathElem
	rs := []rune(p)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case r == '[':
			end := i + 1
			for end < len(rs) && rs[end] != ']' {
				end++
			}
			if end == len(rs) {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			n, err := strconv.Atoi(string(rs[i+1 : end]))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, string(rs[i+1:end]), p)
			}
			res = append(res, PathElem{Index: n, IsIndex: true})
			i = end + 1
			continue
		case r == '.':
			if i == 0 || i == len(rs)-1 {
				return nil, fmt.Errorf("%w: misplaced '.' in %q", ErrPath, p)
			}
			i++
			continue
		case r == '"':
			end := i + 1
			for end < len(rs) && rs[end] != '"' {
				if rs[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(rs) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrPath, p)
			}
			f, err := token.Unquote(string(rs[i : end+1]))
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPath, err)
			}
			res = append(res, PathElem{Field: f})
			i = end + 1
			continue
		}
		end := i
		for end < len(rs) && rs[end] != '.' && rs[end] != '[' {
			end++
		}
		res = append(res, PathElem{Field: string(rs[i:end])})
		i = end
	}
	return res, nil
}

// GetPath returns the node at path p below y, or an error wrapping ErrPath
// if it does not exist. The result is not a copy.
func (y *Node) GetPath(p string) (*Node, error) {
	elems, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.Get(elems)
}

func (y *Node) Get(elems []PathElem) (*Node, error) {
	res := y
	for i, e := range elems {
		switch {
		case e.IsIndex:
			vs, ok := res.AsArray()
			if !ok {
				return nil, fmt.Errorf("%w: %s is a %s, not an Array", ErrPath, FormatPath(elems[:i]), res.Type)
			}
			if e.Index >= len(vs) {
				return nil, fmt.Errorf("%w: index %d out of range at %s", ErrPath, e.Index, FormatPath(elems[:i]))
			}
			res = vs[e.Index]
		default:
			m, ok := res.AsMap()
			if !ok {
				return nil, fmt.Errorf("%w: %s is a %s, not a Map", ErrPath, FormatPath(elems[:i]), res.Type)
			}
			v, ok := m[e.Field]
			if !ok {
				return nil, fmt.Errorf("%w: no key %q at %s", ErrPath, e.Field, FormatPath(elems[:i]))
			}
			res = v
		}
	}
	return res, nil
}
