package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/pson-format/go-pson/format"
	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/token"
)

type EncState struct {
	depth, indent int
	quoted        bool
	topLevel      bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	docs := []*ir.Node{node}
	if es.topLevel && node.Type == ir.ArrayType {
		docs = node.Values
	}
	buf := &bytes.Buffer{}
	for i, doc := range docs {
		var err error
		switch es.format {
		case format.JSONFormat:
			err = encodeJSON(doc, buf, es)
		case format.YAMLFormat:
			if i > 0 {
				buf.WriteString("---\n")
			}
			err = encodeYAML(doc, buf, es)
		default:
			es.depth = 0
			encodePSON(doc, buf, es)
			buf.WriteByte('\n')
		}
		if err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.indent == 0 {
		buf.Write(d)
		buf.WriteByte('\n')
		return nil
	}
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.WriteByte('\n')
	return nil
}

func encodeYAML(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	indent := es.indent
	if indent == 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(toYAML(node), yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.Write(d)
	if len(d) > 0 && d[len(d)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return nil
}

// yamlInt writes integers beyond 64 bits as plain scalars.
type yamlInt struct{ *big.Int }

func (i yamlInt) MarshalYAML() ([]byte, error) {
	return []byte(i.Int.String()), nil
}

// toYAML is ir.ToAny with map keys kept in sorted order.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.IntegerType:
		if v, ok := node.AsInt64(); ok {
			return v
		}
		i, _ := node.AsInteger()
		return yamlInt{i}
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.MapType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for _, k := range node.Keys() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(node.Fields[k])})
		}
		return res
	default:
		return ir.ToAny(node)
	}
}

func encodePSON(node *ir.Node, buf *bytes.Buffer, es *EncState) {
	switch node.Type {
	case ir.NullType, ir.BoolType, ir.IntegerType, ir.FloatType:
		writeColored(buf, es, node.Type, ValueColor, node.Render())
	case ir.StringType:
		if es.quoted && token.NeedsQuote(node.String) {
			writeColored(buf, es, ir.StringType, QuotedColor, token.Quote(node.String))
			return
		}
		writeColored(buf, es, ir.StringType, ValueColor, node.String)
	case ir.ArrayType:
		writeColored(buf, es, ir.ArrayType, SepColor, "[")
		for i, v := range node.Values {
			writeSep(buf, es, i)
			encodeChild(v, buf, es)
		}
		writeClose(buf, es, ir.ArrayType, "]", len(node.Values))
	case ir.MapType:
		writeColored(buf, es, ir.MapType, SepColor, "(")
		for i, k := range node.Keys() {
			writeSep(buf, es, i)
			field := k
			if es.quoted && token.NeedsQuote(k) {
				field = token.Quote(k)
			}
			writeColored(buf, es, ir.MapType, FieldColor, field)
			buf.WriteByte(' ')
			encodeChild(node.Fields[k], buf, es)
		}
		writeClose(buf, es, ir.MapType, ")", len(node.Fields))
	}
}

func encodeChild(v *ir.Node, buf *bytes.Buffer, es *EncState) {
	es.depth++
	encodePSON(v, buf, es)
	es.depth--
}

// writeSep starts the i'th element of a container.
func writeSep(buf *bytes.Buffer, es *EncState, i int) {
	if es.indent > 0 {
		writeNL(buf, es, es.depth+1)
		return
	}
	if i > 0 {
		buf.WriteByte(' ')
	}
}

func writeClose(buf *bytes.Buffer, es *EncState, t ir.Type, closer string, n int) {
	if es.indent > 0 && n > 0 {
		writeNL(buf, es, es.depth)
	}
	writeColored(buf, es, t, SepColor, closer)
}

func writeNL(buf *bytes.Buffer, es *EncState, depth int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

func writeColored(buf *bytes.Buffer, es *EncState, t ir.Type, a ColorAttr, s string) {
	if es.Color == nil {
		buf.WriteString(s)
		return
	}
	buf.WriteString(es.Color(t, a, s))
}
