// Package parser turns one doc comment's text into either markdown prose or
// a structured attribute value.
//
// The grammar is two-level: an outer dispatch on the leading '@' tag and an
// inner recursive type-expression grammar (single names, function types,
// unions). It is deliberately total and permissive: missing or malformed
// type text degrades to the 'any' placeholder, unknown tags stay
// representable as ast.Unknown, and end of input closes any open construct.
// Downstream tooling depends on this best-effort behavior; do not add strict
// validation here.
package parser
