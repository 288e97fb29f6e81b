package main

import (
	"fmt"

	"github.com/signadot/yval/libdiff"
	"github.com/signadot/yval/patch"
	"github.com/signadot/yval/value"

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
	a, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readDoc(cc, args[1])
	if err != nil {
		return err
	}
	if value.Equal(&a, &b) {
		return nil
	}
	if cfg.Merge {
		mp, err := patch.CreateMerge(a, b)
		if err != nil {
			return err
		}
		if err := cfg.writeDocs(cc.Out, []value.Value{mp}); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	lines, err := libdiff.Diff(&a, &b, cfg.encOpts(cc.Out)...)
	if err != nil {
		return err
	}
	if err := libdiff.Write(cc.Out, lines, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
