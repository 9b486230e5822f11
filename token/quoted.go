package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/templexxx/xhex"
)

// Unescape returns the rune produced by the escape sequence \r. The escape
// x is handled by DecodeHex and is not special here; unknown escapes
// produce the escaped rune itself.
func Unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		// '"', '\\' and anything unknown stand for themselves
		return r
	}
}

// DecodeHex decodes the two hex digits following \x into the rune with that
// code point (U+0000 through U+00FF).
func DecodeHex(hi, lo rune) (rune, error) {
	if !isHex(hi) || !isHex(lo) {
		return 0, fmt.Errorf("%w: %q", ErrBadHex, string([]rune{hi, lo}))
	}
	var dst [1]byte
	if err := xhex.Decode(dst[:], []byte{byte(hi), byte(lo)}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadHex, err)
	}
	return rune(dst[0]), nil
}

func isHex(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// NeedsQuote reports whether the string v would not read back as the same
// string if written bare: it is empty, contains a structural or escape
// character, contains a control character, or classifies as a non-string
// atom.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for _, r := range v {
		if IsStructural(r) || r == '\\' || unicode.IsControl(r) {
			return true
		}
	}
	return ClassifyAtom(v).Kind != AtomString
}

// Quote returns v as a quoted literal. Control characters other than
// newline, tab and carriage return are written as \x escapes when they fit
// a byte and verbatim otherwise.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	var hx [2]byte
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) && r <= 0xff {
				xhex.Encode(hx[:], []byte{byte(r)})
				d = append(d, '\\', 'x', hx[0], hx[1])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a complete quoted literal such as one produced by Quote.
func Unquote(v string) (string, error) {
	rs := []rune(v)
	if len(rs) < 2 || rs[0] != '"' {
		return "", fmt.Errorf("%w: %q", ErrBadQuote, v)
	}
	b := &strings.Builder{}
	i := 1
	for i < len(rs) {
		r := rs[i]
		i++
		switch r {
		case '"':
			if i != len(rs) {
				return "", fmt.Errorf("%w: trailing %q", ErrBadQuote, string(rs[i:]))
			}
			return b.String(), nil
		case '\\':
			if i >= len(rs) {
				return "", ErrUnterminated
			}
			e := rs[i]
			i++
			if e != 'x' {
				b.WriteRune(Unescape(e))
				continue
			}
			if i+2 > len(rs) {
				return "", fmt.Errorf("%w: truncated", ErrBadHex)
			}
			h, err := DecodeHex(rs[i], rs[i+1])
			if err != nil {
				return "", err
			}
			i += 2
			b.WriteRune(h)
		default:
			b.WriteRune(r)
		}
	}
	return "", ErrUnterminated
}
