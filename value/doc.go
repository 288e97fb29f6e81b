// Package value provides the in-memory representation of YAML documents.
//
// # Overview
//
// A Value is one of seven kinds: null, boolean, number, string, sequence,
// mapping or tagged. Documents are trees of Values; sequences, mappings and
// tagged values own their children and a tree never contains cycles. The
// zero Value is null.
//
// Values are built with the From* constructors, by package parse from YAML or
// JSON text, or by package convert from Go values:
//
//	m := value.NewMapping()
//	m.Insert(value.FromString("name"), value.FromString("web"))
//	v := value.FromMapping(m)
//
// # Accessors
//
// Each kind has a predicate and an extractor, IsString/AsString and so on.
// Extractors look through tags: a value tagged !Name holding "x" answers
// AsString with "x". Equality and hashing do not: a tagged value never equals
// its untagged content.
//
// # Indexing
//
// Get, At, Entry and Set index into sequences with a Pos and into mappings
// with a Key or a Value:
//
//	port := v.At(value.Key("spec")).At(value.Key("ports")).At(value.Pos(0))
//
// Reads never fail: Get returns nil and At a shared null for missing entries.
// Writes are strict: Entry and Set insert missing mapping keys (turning a
// null into a mapping first) but panic on out of range sequence positions or
// on values that cannot hold the index.
//
//	var doc value.Value
//	doc.Entry(value.Key("a")).Entry(value.Key("b")).Set(value.Key("c"), value.FromString("x"))
//
// # Merge keys
//
// ApplyMerge resolves "<<" merge keys across a whole tree, see
// https://yaml.org/type/merge.html. It does not recurse, so its stack use does
// not depend on document depth.
//
// # Mapping keys
//
// Mapping keys may be any Value. A string key hashes identically to its text,
// which lets Mapping.GetString and Key lookups avoid building a key Value.
//
// # Related Packages
//
//   - github.com/signadot/yval/parse - Parse text to values
//   - github.com/signadot/yval/encode - Encode values to text
//   - github.com/signadot/yval/convert - Convert between Go values and values
package value
