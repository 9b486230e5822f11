package main

import (
	"fmt"
	"io"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/patch"

	"github.com/scott-cotton/cli"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pdoc, err := readDoc(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		if args[0] == "-" {
			return fmt.Errorf("%w: patch and input cannot both be stdin", cli.ErrUsage)
		}
		files = []string{"-"}
	}
	return patchDocs(cfg, cc.Out, cc.In, patchValue(pdoc), files)
}

// patchValue picks the patch out of a patch file: its only value, or all
// of its values when there are several, as with a file of bare operation
// maps.
func patchValue(pdoc *ir.Node) *ir.Node {
	if pdoc.Len() == 1 {
		return pdoc.Values[0]
	}
	return pdoc
}

func patchDocs(cfg *PatchConfig, w io.Writer, stdin io.Reader, p *ir.Node, files []string) error {
	apply := func(doc *ir.Node) (*ir.Node, error) {
		return patch.Merge(doc, p)
	}
	if !cfg.Merge {
		jp, err := patch.Decode(p)
		if err != nil {
			return err
		}
		apply = jp.Apply
	}
	opts := cfg.encOpts(w)
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, stdin, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		res := make([]*ir.Node, len(doc.Values))
		for i, v := range doc.Values {
			res[i], err = apply(v)
			if err != nil {
				return fmt.Errorf("error patching value %d of %s: %w", i, file, err)
			}
		}
		if err := encode.Encode(ir.FromSlice(res), w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
