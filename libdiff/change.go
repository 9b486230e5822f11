package libdiff

import (
	"strings"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/ir"
)

type Kind int

const (
	Add Kind = iota
	Remove
	Replace
	Text
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Change is one difference. From is nil for Add and To is nil for Remove.
// A Text change also carries both strings; Text marks deleted runs as
// [-x-] and inserted runs as {+y+}.
type Change struct {
	Path []ir.PathElem
	Kind Kind
	From *ir.Node
	To   *ir.Node
	Text string
}

func (c *Change) PathString() string {
	if len(c.Path) == 0 {
		return "."
	}
	return ir.FormatPath(c.Path)
}

func (c *Change) String() string {
	sb := &strings.Builder{}
	switch c.Kind {
	case Add:
		sb.WriteString("+ ")
		sb.WriteString(c.PathString())
		sb.WriteByte(' ')
		sb.WriteString(encode.MustString(c.To))
	case Remove:
		sb.WriteString("- ")
		sb.WriteString(c.PathString())
		sb.WriteByte(' ')
		sb.WriteString(encode.MustString(c.From))
	case Replace:
		sb.WriteString("~ ")
		sb.WriteString(c.PathString())
		sb.WriteByte(' ')
		sb.WriteString(encode.MustString(c.From))
		sb.WriteString(" -> ")
		sb.WriteString(encode.MustString(c.To))
	case Text:
		sb.WriteString("~ ")
		sb.WriteString(c.PathString())
		sb.WriteByte(' ')
		sb.WriteString(c.Text)
	}
	return sb.String()
}

// Format renders changes one per line.
func Format(changes []Change) string {
	sb := &strings.Builder{}
	for i := range changes {
		sb.WriteString(changes[i].String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
