package main

import (
	"fmt"

	"github.com/signadot/yval/value"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := value.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := cfg.readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]value.Value, 0, len(docs))
	for i := range docs {
		v, _ := docs[i].Lookup(path)
		if v == nil {
			theLog.Warn("no value", "path", path, "document", i)
			continue
		}
		res = append(res, *v)
	}
	return cfg.writeDocs(cc.Out, res)
}
