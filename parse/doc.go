// Package parse reads YAML and JSON text into values.
//
// # Usage
//
//	v, err := parse.Parse(data)
//	docs, err := parse.ParseAll(data, parse.ParseMerge(true))
//
// YAML is read with github.com/goccy/go-yaml. Aliases are replaced by copies
// of their anchored values, so the result is always a tree. Core schema tags
// such as !!str or !!int are applied and dropped; any other tag is kept as a
// tagged value. Merge keys are left as "<<" entries unless ParseMerge is
// given.
//
// # Related Packages
//
//   - github.com/signadot/yval/value - Value representation
//   - github.com/signadot/yval/encode - Encode values to text
package parse
