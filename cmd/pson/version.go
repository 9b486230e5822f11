package main

import (
	"fmt"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

func buildVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}

func version(cfg *VersionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Version.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: version takes no arguments", cli.ErrUsage)
	}
	_, err = fmt.Fprintf(cc.Out, "pson %s\n", buildVersion())
	return err
}
