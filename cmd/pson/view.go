package main

import (
	"fmt"
	"io"

	"github.com/pson-format/go-pson/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc.Out, cc.In, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, stdin io.Reader, files []string) error {
	opts := cfg.encOpts(w)
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, stdin, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
