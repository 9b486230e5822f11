package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/repl"

	"github.com/scott-cotton/cli"
)

func runRepl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments, got %v", cli.ErrUsage, args)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts := []repl.Option{
		repl.WithBanner(fmt.Sprintf("Welcome to pson %s!\nType '\\help' for help.\nType '\\exit' to exit.\n", buildVersion())),
		repl.WithEncodeOptions(append(cfg.encOpts(cc.Out), encode.EncodeQuoted(true))...),
	}
	if cfg.Prompt != "" {
		opts = append(opts, repl.WithPrompt(cfg.Prompt, ". "))
	}
	theLog.Debug("repl start")
	err = repl.Run(ctx, cc.In, cc.Out, opts...)
	theLog.Debug("repl end", "error", err)
	return err
}
