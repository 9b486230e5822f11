package main

import (
	"fmt"
	"io"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/format"
	"github.com/pson-format/go-pson/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return dumpFiles(cfg, cc.Out, cc.In, args)
}

func dumpFiles(cfg *DumpConfig, w io.Writer, stdin io.Reader, files []string) error {
	fmat := format.JSONFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	indent := cfg.Indent
	if indent == 0 {
		indent = 2
	}
	opts := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(indent),
		encode.EncodeQuoted(true),
	}
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, stdin, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if cfg.Types {
			doc = typed(doc)
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// typed describes node as Maps giving the type of every value. Floats are
// given as text so that non-finite values survive JSON.
func typed(node *ir.Node) *ir.Node {
	res := map[string]*ir.Node{
		"type": ir.FromString(node.Type.String()),
	}
	switch node.Type {
	case ir.NullType:
	case ir.FloatType:
		res["value"] = ir.FromString(ir.FormatFloat(node.Float))
	case ir.ArrayType:
		vs := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			vs[i] = typed(v)
		}
		res["values"] = ir.FromSlice(vs)
	case ir.MapType:
		fs := make(map[string]*ir.Node, len(node.Fields))
		for k, v := range node.Fields {
			fs[k] = typed(v)
		}
		res["fields"] = ir.FromMap(fs)
	default:
		res["value"] = node.Clone()
	}
	return ir.FromMap(res)
}
