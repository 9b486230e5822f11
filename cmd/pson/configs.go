package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/format"
	"github.com/pson-format/go-pson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Quoted  bool `cli:"name=q aliases=quoted desc='quote strings which would not read back as themselves'"`
	Indent  int  `cli:"name=indent desc='indent nested arrays and maps by this many spaces'"`
	BufCap  int  `cli:"name=bufcap desc='initial capacity of the scanner buffer'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log progress to stderr'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of the named input: -I if given, else guessed
// from the file suffix, else pson.
func (cfg *MainConfig) inFormat(name string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	f, _ := format.FromPath(name)
	return f
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.PSONFormat
}

func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	res := []parse.ParseOption{parse.WithFilename(name)}
	if cfg.BufCap > 0 {
		res = append(res, parse.WithBufferCapacity(cfg.BufCap))
	}
	return res
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmt := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeQuoted(cfg.Quoted),
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeTopLevel(true),
	}
	if !fmt.IsPSON() {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.optSet("color") {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Types bool `cli:"name=types desc='show the type of every value'"`
	Dump  *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='print the differences as a JSON Patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is a JSON Merge Patch'"`

	Patch *cli.Command
}

type ReplConfig struct {
	*MainConfig
	Prompt string `cli:"name=prompt desc='prompt shown before each input'"`

	Repl *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
