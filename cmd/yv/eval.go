package main

import (
	"fmt"

	"github.com/signadot/yval/query"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expand {
		docs, err := cfg.readDocs(cc, args)
		if err != nil {
			return err
		}
		for i := range docs {
			if err := query.Expand(&docs[i]); err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
		}
		return cfg.writeDocs(cc.Out, docs)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	docs, err := cfg.readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	for i := range docs {
		docs[i], err = query.Eval(src, docs[i])
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return cfg.writeDocs(cc.Out, docs)
}
