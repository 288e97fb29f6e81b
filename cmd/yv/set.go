package main

import (
	"fmt"
	"strings"

	"github.com/signadot/yval/parse"
	"github.com/signadot/yval/value"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires one argument, <path>=<yaml>", cli.ErrUsage)
	}
	path, text, ok := strings.Cut(args[0], "=")
	if !ok {
		return fmt.Errorf("%w: expected <path>=<yaml>, got %q", cli.ErrUsage, args[0])
	}
	if _, err := value.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	x, err := parse.Parse([]byte(text))
	if err != nil {
		return fmt.Errorf("%w: value %q: %w", cli.ErrUsage, text, err)
	}
	docs, err := cfg.readDocs(cc, args[1:])
	if err != nil {
		return err
	}
	for i := range docs {
		if err := assign(&docs[i], path, x.Clone()); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return cfg.writeDocs(cc.Out, docs)
}

// assign is value.Assign reporting indexing faults as errors.
func assign(doc *value.Value, path string, x value.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot set %s: %v", path, r)
		}
	}()
	return doc.Assign(path, x)
}
