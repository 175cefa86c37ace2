// Package locale documents and guards against a locale hazard familiar
// from C-based JSON readers: a number token formatted as a C string and
// fed to strtod can have its radix character reinterpreted in locales that
// use ',' as the decimal separator, reading a JSON-legal number
// differently than the grammar intends.
//
// Go's strconv.ParseFloat is always locale-independent — it has no notion
// of the C global locale at all — so the Number Decoder does not need an
// equivalent rewrite step. This package exists to make that invariant
// explicit, rather than leaving it as an undocumented assumption:
// Normalize is a no-op by construction. The package has no tests of its
// own.
package locale

// Normalize returns lit unchanged. It exists only to document, at the call
// site in the Number Decoder, that Go's float parser needs no
// locale-specific radix-character rewrite: strconv.ParseFloat always treats
// '.' as the decimal point regardless of the process's locale.
func Normalize(lit string) string {
	return lit
}
