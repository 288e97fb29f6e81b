// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to values.
//
// Both go through the JSON form of the value, so the document and patch must
// be representable as JSON: mapping keys are scalars and numbers are finite.
// Tagged values take their JSON form {"Tag": value}. Mapping key order of
// the input document is kept; keys added by the patch follow in sorted order.
package patch
