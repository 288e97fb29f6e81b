package parse

import "github.com/signadot/yval/format"

type parseOpts struct {
	format format.Format
	merge  bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMerge resolves "<<" merge keys in each parsed document.
func ParseMerge(v bool) ParseOption {
	return func(o *parseOpts) { o.merge = v }
}
