// Package encode encodes values to YAML or JSON text.
//
// # Usage
//
//	m := value.NewMapping()
//	m.Insert(value.FromString("name"), value.FromString("alice"))
//	v := value.FromMapping(m)
//	err := encode.Encode(&v, os.Stdout)
//
//	// Encode to JSON
//	err := encode.Encode(&v, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// YAML output is block style. Strings are quoted only where they would read
// back as something else, and mapping keys that are collections are written
// as "? " complex keys in flow style.
//
// # Related Packages
//
//   - github.com/signadot/yval/value - Value representation
//   - github.com/signadot/yval/parse - Parse text to values
package encode
