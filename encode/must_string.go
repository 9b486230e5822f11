package encode

import (
	"bytes"
	"strings"

	"github.com/pson-format/go-pson/ir"
)

// MustString encodes node as quoted single line PSON, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{EncodeQuoted(true)}, opts...)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
