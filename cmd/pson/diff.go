package main

import (
	"fmt"
	"io"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/ir"
	"github.com/pson-format/go-pson/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := readDoc(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := readDoc(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differ, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differ {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs writes the differences between two documents, reporting
// whether there were any.
func diffInputs(cfg *DiffConfig, w io.Writer, from, to *ir.Node) (bool, error) {
	changes := libdiff.Diff(from, to)
	theLog.Debug("diff", "changes", len(changes))
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Patch {
		opts := append(cfg.encOpts(w), encode.EncodeTopLevel(false))
		if err := encode.Encode(libdiff.ToPatch(changes), w, opts...); err != nil {
			return true, fmt.Errorf("error encoding patch: %w", err)
		}
		return true, nil
	}
	if _, err := io.WriteString(w, libdiff.Format(changes)); err != nil {
		return true, err
	}
	return true, nil
}
