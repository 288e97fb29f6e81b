package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/parse"
	"github.com/signadot/yval/value"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// readDocs reads every document of every file, stdin when files is empty.
func (cfg *MainConfig) readDocs(cc *cli.Context, files []string) ([]value.Value, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []value.Value
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return nil, err
		}
		docs, err := parse.ParseAll(d, cfg.parseOpts(file)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		res = append(res, docs...)
	}
	return res, nil
}

// readDoc reads a file holding exactly one document.
func (cfg *MainConfig) readDoc(cc *cli.Context, file string) (value.Value, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return value.Value{}, err
	}
	v, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return value.Value{}, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return v, nil
}

func (cfg *MainConfig) writeDocs(w io.Writer, docs []value.Value) error {
	if err := encode.EncodeAll(docs, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
