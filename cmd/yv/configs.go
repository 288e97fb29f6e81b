package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/format"
	"github.com/signadot/yval/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Sort  bool `cli:"name=sort desc='sort mapping keys'"`
	X     bool `cli:"name=x desc='resolve <<: merge keys while parsing'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

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

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.YAMLFormat, false
}

// parseOpts returns the parse options for reading path; without a format
// flag the format follows the file extension.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat, ok := cfg.flagFormat()
	if !ok && path != "-" {
		fmat = format.FromPath(path)
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
		parse.ParseMerge(cfg.X),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeSortKeys(cfg.Sort),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether to colour output to w: as asked with -color, or
// else when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show what merging changed instead of the result'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='output a merge patch instead of a line diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply an RFC 7386 merge patch instead of an RFC 6902 JSON patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expand bool `cli:"name=expand desc='expand $[expr] references in strings'"`

	Eval *cli.Command
}
