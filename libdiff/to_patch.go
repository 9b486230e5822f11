package libdiff

import (
	"strconv"
	"strings"

	"github.com/pson-format/go-pson/ir"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer returns path as a JSON Pointer (RFC 6901).
func Pointer(path []ir.PathElem) string {
	sb := &strings.Builder{}
	for _, e := range path {
		sb.WriteByte('/')
		if e.IsIndex {
			sb.WriteString(strconv.Itoa(e.Index))
			continue
		}
		sb.WriteString(pointerEscaper.Replace(e.Field))
	}
	return sb.String()
}

// ToPatch converts changes to a JSON Patch (RFC 6902) document: an Array
// of operation Maps. Text changes become replace operations.
func ToPatch(changes []Change) *ir.Node {
	ops := make([]*ir.Node, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		op := map[string]*ir.Node{
			"path": ir.FromString(Pointer(c.Path)),
		}
		switch c.Kind {
		case Add:
			op["op"] = ir.FromString("add")
			op["value"] = c.To.Clone()
		case Remove:
			op["op"] = ir.FromString("remove")
		default:
			op["op"] = ir.FromString("replace")
			op["value"] = c.To.Clone()
		}
		ops = append(ops, ir.FromMap(op))
	}
	return ir.FromSlice(ops)
}
