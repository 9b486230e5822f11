package ir

import (
	"strconv"
	"strings"
)

// Render returns the canonical text of the node: N, T, F, decimal numbers,
// raw string text, [a b] for arrays and (k v) for maps with keys in sorted
// order. Strings are not quoted, so the result reads back as the same value
// only when no string holds structural characters.
func (y *Node) Render() string {
	var sb strings.Builder
	y.appendToBuilder(&sb)
	return sb.String()
}

func (y *Node) appendToBuilder(sb *strings.Builder) {
	if y == nil {
		return
	}
	switch y.Type {
	case NullType:
		sb.WriteByte('N')
	case BoolType:
		if y.Bool {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	case IntegerType:
		sb.WriteString(y.integer().String())
	case FloatType:
		sb.WriteString(FormatFloat(y.Float))
	case StringType:
		sb.WriteString(y.String)
	case ArrayType:
		sb.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				sb.WriteByte(' ')
			}
			v.appendToBuilder(sb)
		}
		sb.WriteByte(']')
	case MapType:
		sb.WriteByte('(')
		for i, k := range y.Keys() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(k)
			sb.WriteByte(' ')
			y.Fields[k].appendToBuilder(sb)
		}
		sb.WriteByte(')')
	}
}

// FormatFloat formats f in decimal without an exponent, using the fewest
// digits that read back as f. Integral values have no fraction: 1.0 is "1".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
