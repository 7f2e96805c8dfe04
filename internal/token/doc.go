// Package token defines the lexical token model for EmmyLua doc comments.
// Invariants:
//   - Token.Text is a slice of the original comment text (no copies).
//   - Token.Start/End match Text exactly as byte offsets into that text.
//   - Tag tokens keep the leading '@' in Text; Token.Tag identifies the
//     known annotation or TagUnknown for anything else.
//   - '[' immediately followed by ']' lexes as a single Array token; a lone
//     '[' is absorbed into the surrounding atom.
//   - 'fun(' lexes as a single FunStart token; the argument list and the
//     closing paren are separate tokens.
package token
