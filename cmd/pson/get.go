package main

import (
	"fmt"
	"io"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	return getFiles(cfg, cc.Out, cc.In, path, files)
}

func getFiles(cfg *GetConfig, w io.Writer, stdin io.Reader, path []ir.PathElem, files []string) error {
	opts := cfg.encOpts(w)
	// the result is a single value, not a document
	opts = append(opts, encode.EncodeTopLevel(false))
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, stdin, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		v, err := doc.Get(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", ir.FormatPath(path), file, err)
		}
		if err := encode.Encode(v, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
