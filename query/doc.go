// Package query evaluates expr-lang expressions against documents.
//
// The document is visible to an expression as doc, and each top level string
// key of a mapping document is also a variable of its own:
//
//	v, err := query.Eval(`replicas * 2`, doc)
//	v, err = query.Eval(`doc.spec.ports[0].port`, doc)
//
// Besides the expr-lang builtins, expressions may call
//
//	getpath(path string) any   // the value at a path such as "a.b[0]"
//	getenv(name string) string // an environment variable
//
// Expand interpolates $[expr] references in the strings of a document.
package query
