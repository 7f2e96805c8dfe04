// Package docfmt renders extracted documentation and its diagnostics in
// pretty and JSON forms. It is the only package that knows how attributes
// look on a terminal; the parser and driver stay presentation-free.
package docfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"deluded/internal/lexer"
	"deluded/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Tag   string `json:"tag,omitempty"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

func collectTokens(src string) []token.Token {
	tz := lexer.New(src)
	var tokens []token.Token
	for {
		tok := tz.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// FormatTokensPretty выводит токены одной строки комментария
func FormatTokensPretty(w io.Writer, src string) error {
	for i, tok := range collectTokens(src) {
		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Kind == token.Tag {
			fmt.Fprintf(w, " %-8s", tok.Tag.String())
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d-%d", tok.Start, tok.End)
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, src string) error {
	var output []TokenOutput
	for _, tok := range collectTokens(src) {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Start,
			End:   tok.End,
		}
		if tok.Kind == token.Tag {
			out.Tag = tok.Tag.String()
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
