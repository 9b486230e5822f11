package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/pson-format/go-pson/format"
	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/parse"
)

// readDoc reads the named file, or r when name is "-", as a top-level
// Array. JSON and YAML inputs hold a single value.
func readDoc(cfg *MainConfig, r io.Reader, name string) (*ir.Node, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	fmat := cfg.inFormat(name)
	doc, err := decodeDoc(cfg, r, name, fmat)
	if err != nil {
		return nil, err
	}
	theLog.Debug("read", "file", name, "format", fmat, "values", doc.Len())
	return doc, nil
}

func decodeDoc(cfg *MainConfig, r io.Reader, name string, fmat format.Format) (*ir.Node, error) {
	if fmat.IsPSON() {
		return parse.ParseReader(r, cfg.parseOpts(name)...)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", name, err)
	}
	var node *ir.Node
	switch {
	case fmat.IsJSON():
		node, err = ir.FromJSON(d)
	default:
		var v any
		if err = yaml.Unmarshal(d, &v); err == nil {
			node, err = ir.FromAny(v)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s %q: %w", fmat, name, err)
	}
	return ir.FromSlice([]*ir.Node{node}), nil
}
