// Package pjson implements the core of a permissive JSON reader: a
// single-pass tokenizer and recursive-descent value parser that consumes a
// UTF-8 byte range and drives an external Value Builder, producing
// human-readable diagnostics keyed to source line and column.
//
// The package is deliberately narrow. It does not define a JSON value tree
// of its own — callers supply a Builder (see builder.go) that receives
// null/bool/int/uint/double/string/array/object construction calls, byte
// offsets, and comment attachments. A ready-to-use Builder backed by a
// simple value tree lives in the internal/value package and is what
// cmd/pjsonlint uses.
//
// Supported permissive extensions, all gated by Features (see features.go):
// // and /* */ comments, single-quoted strings, numeric object keys, dropped
// null placeholders ("[1,,3]"), and the special float literals NaN,
// Infinity, -Infinity.
package pjson
