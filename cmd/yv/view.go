package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := cfg.readDocs(cc, args)
	if err != nil {
		return err
	}
	return cfg.writeDocs(cc.Out, docs)
}
