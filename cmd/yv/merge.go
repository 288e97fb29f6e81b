package main

import (
	"fmt"

	"github.com/signadot/yval/libdiff"
	"github.com/signadot/yval/value"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := cfg.readDocs(cc, args)
	if err != nil {
		return err
	}
	merged := make([]value.Value, len(docs))
	for i := range docs {
		merged[i] = docs[i].Clone()
		if err := merged[i].ApplyMerge(); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	if !cfg.Diff {
		return cfg.writeDocs(cc.Out, merged)
	}
	colored := cfg.colored(cc.Out)
	opts := cfg.encOpts(cc.Out)
	for i := range docs {
		lines, err := libdiff.Diff(&docs[i], &merged[i], opts...)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		if !libdiff.Changed(lines) {
			continue
		}
		if i > 0 {
			fmt.Fprintf(cc.Out, "# document %d\n", i)
		}
		if err := libdiff.Write(cc.Out, lines, colored); err != nil {
			return err
		}
	}
	return nil
}
