// Package yval reads and writes YAML and JSON documents through a dynamic
// document model.
//
// The model itself lives in package value. This package joins the parser,
// the reflection based converter and the encoder for the common case of
// going straight between bytes and Go values:
//
//	var cfg Config
//	if err := yval.Unmarshal(data, &cfg, parse.ParseMerge(true)); err != nil {
//		return err
//	}
//	out, err := yval.Marshal(cfg)
package yval

import (
	"bytes"
	"fmt"

	"github.com/signadot/yval/convert"
	"github.com/signadot/yval/encode"
	"github.com/signadot/yval/parse"
	"github.com/signadot/yval/value"
)

// Unmarshal parses a single document from data and stores it into the Go
// value out points to.
func Unmarshal(data []byte, out any, opts ...parse.ParseOption) error {
	v, err := parse.Parse(data, opts...)
	if err != nil {
		return err
	}
	return convert.FromValue(v, out)
}

// Marshal converts v to a document and encodes it, as YAML unless opts
// select JSON.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	doc, err := convert.ToValue(v)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(&doc, buf, opts...); err != nil {
		return nil, fmt.Errorf("marshaling %T: %w", v, err)
	}
	return buf.Bytes(), nil
}

// UnmarshalAll parses every document in data.
func UnmarshalAll(data []byte, opts ...parse.ParseOption) ([]value.Value, error) {
	return parse.ParseAll(data, opts...)
}
