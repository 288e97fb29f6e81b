package main

import (
	"fmt"

	"github.com/signadot/yval/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := cfg.readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	for i := range docs {
		if cfg.Merge {
			docs[i], err = patch.Merge(docs[i], p)
		} else {
			docs[i], err = patch.Apply(docs[i], p)
		}
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
		}
	}
	return cfg.writeDocs(cc.Out, docs)
}
