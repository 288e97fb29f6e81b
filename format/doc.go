// Package format names the text formats documents are read and written in.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	v, err := parse.Parse(data, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/yval/parse - Parse text to values
//   - github.com/signadot/yval/encode - Encode values to text
package format
