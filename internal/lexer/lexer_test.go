package lexer_test

import (
	"testing"

	"deluded/internal/lexer"
	"deluded/internal/token"
)

// collectAllTokens собирает все токены до EOF (без самого EOF)
func collectAllTokens(tz *lexer.Tokenizer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := tz.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// expectKinds проверяет последовательность видов токенов
func expectKinds(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	tokens := collectAllTokens(lexer.New(input))
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %+v",
			len(expected), len(tokens), input, tokens)
	}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v (%q)", i, k, tokens[i].Kind, tokens[i].Text)
		}
	}
	return tokens
}

func TestTokenizeKnownTags(t *testing.T) {
	tests := []struct {
		input string
		tag   token.TagKind
	}{
		{"@class", token.TagClass},
		{"@type", token.TagType},
		{"@alias", token.TagAlias},
		{"@param", token.TagParam},
		{"@return", token.TagReturn},
		{"@field", token.TagField},
		{"@generic", token.TagGeneric},
		{"@vararg", token.TagVarArg},
		{"@lang", token.TagLang},
		{"@see", token.TagSee},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := expectKinds(t, tt.input, []token.Kind{token.Tag})
			if tokens[0].Tag != tt.tag {
				t.Errorf("expected tag %v, got %v", tt.tag, tokens[0].Tag)
			}
			if tokens[0].Text != tt.input {
				t.Errorf("expected text %q, got %q", tt.input, tokens[0].Text)
			}
		})
	}
}

func TestTokenizeUnknownTag(t *testing.T) {
	tokens := expectKinds(t, "@foo bar", []token.Kind{token.Tag, token.Atom})
	if tokens[0].Tag != token.TagUnknown {
		t.Errorf("expected TagUnknown, got %v", tokens[0].Tag)
	}
	if tokens[0].Text != "@foo" {
		t.Errorf("expected raw tag text %q, got %q", "@foo", tokens[0].Text)
	}
	if tokens[1].Text != "bar" {
		t.Errorf("expected following atom %q, got %q", "bar", tokens[1].Text)
	}
}

// Tag matching is case-sensitive exact match.
func TestTokenizeTagCaseSensitive(t *testing.T) {
	tokens := expectKinds(t, "@Class", []token.Kind{token.Tag})
	if tokens[0].Tag != token.TagUnknown {
		t.Errorf("expected @Class to be unknown, got %v", tokens[0].Tag)
	}
}

func TestTokenizePunct(t *testing.T) {
	tokens := expectKinds(t, "| , : < > ) []",
		[]token.Kind{token.Pipe, token.Comma, token.Colon, token.Less,
			token.Greater, token.CloseParen, token.Array})
	if tokens[6].Text != "[]" {
		t.Errorf("expected array marker text %q, got %q", "[]", tokens[6].Text)
	}
}

func TestTokenizeUnionType(t *testing.T) {
	tokens := expectKinds(t, "string|number|nil",
		[]token.Kind{token.Atom, token.Pipe, token.Atom, token.Pipe, token.Atom})
	want := []string{"string", "|", "number", "|", "nil"}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d: expected %q, got %q", i, w, tokens[i].Text)
		}
	}
}

func TestTokenizeFunStart(t *testing.T) {
	tokens := expectKinds(t, "fun(a: string): boolean",
		[]token.Kind{token.FunStart, token.Atom, token.Colon, token.Atom,
			token.CloseParen, token.Colon, token.Atom})
	if tokens[0].Text != "fun(" {
		t.Errorf("expected FunStart text %q, got %q", "fun(", tokens[0].Text)
	}
}

// 'fun' without a paren, and longer words ending in a paren, are plain atoms.
func TestTokenizeFunStartFalsePositives(t *testing.T) {
	tokens := expectKinds(t, "fun", []token.Kind{token.Atom})
	if tokens[0].Text != "fun" {
		t.Errorf("expected %q, got %q", "fun", tokens[0].Text)
	}

	tokens = expectKinds(t, "function(x", []token.Kind{token.Atom})
	if tokens[0].Text != "function(x" {
		t.Errorf("expected %q, got %q", "function(x", tokens[0].Text)
	}
}

// A lone '[' folds into the atom scan instead of becoming punctuation.
func TestTokenizeLoneBracket(t *testing.T) {
	tokens := expectKinds(t, "foo[3]", []token.Kind{token.Atom, token.Atom})
	if tokens[0].Text != "foo" || tokens[1].Text != "[3]" {
		t.Errorf("unexpected texts: %q, %q", tokens[0].Text, tokens[1].Text)
	}
}

func TestTokenizeArraySuffix(t *testing.T) {
	tokens := expectKinds(t, "string[]", []token.Kind{token.Atom, token.Array})
	if tokens[0].Text != "string" {
		t.Errorf("expected %q, got %q", "string", tokens[0].Text)
	}
}

func TestTokenizeAbsorbsUnrecognized(t *testing.T) {
	// цифры, точки и прочие символы уходят в атом
	tokens := expectKinds(t, "1.5 a.b.c \"quoted\"",
		[]token.Kind{token.Atom, token.Atom, token.Atom})
	want := []string{"1.5", "a.b.c", "\"quoted\""}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d: expected %q, got %q", i, w, tokens[i].Text)
		}
	}
}

func TestTokenizeEmptyAndWhitespace(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n "} {
		tz := lexer.New(input)
		tok := tz.Next()
		if tok.Kind != token.EOF {
			t.Errorf("input %q: expected EOF, got %v", input, tok.Kind)
		}
		// после EOF всегда EOF
		if tok = tz.Next(); tok.Kind != token.EOF {
			t.Errorf("input %q: expected EOF to repeat, got %v", input, tok.Kind)
		}
	}
}

func TestTokenOffsetsMatchText(t *testing.T) {
	input := "  @param  name  string|nil  trailing"
	tz := lexer.New(input)
	for {
		tok := tz.Next()
		if tok.Kind == token.EOF {
			break
		}
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("offsets %d..%d give %q, Text is %q", tok.Start, tok.End, got, tok.Text)
		}
	}
}

// Rest must start at the peeked token, so prose with grammar punctuation
// survives verbatim.
func TestRestExcludesPeekedToken(t *testing.T) {
	input := "@see some text with : colons | and pipes"
	tz := lexer.New(input)

	if tok := tz.Next(); tok.Kind != token.Tag {
		t.Fatalf("expected tag, got %v", tok.Kind)
	}
	// заглядываем в следующий токен — Rest не должен его потерять
	if tok := tz.Peek(); tok.Text != "some" {
		t.Fatalf("expected peeked atom %q, got %q", "some", tok.Text)
	}
	want := "some text with : colons | and pipes"
	if got := tz.Rest(); got != want {
		t.Errorf("Rest() = %q, want %q", got, want)
	}
}

func TestRestWithoutPeek(t *testing.T) {
	input := "@lang lua"
	tz := lexer.New(input)
	tz.Next() // tag
	if got := tz.Rest(); got != " lua" {
		t.Errorf("Rest() = %q, want %q", got, " lua")
	}
}

// Two walks over the same text produce identical streams.
func TestTokenizeIdempotent(t *testing.T) {
	input := "@field private x fun(a: string, b: number): boolean trailing words"
	first := collectAllTokens(lexer.New(input))
	second := collectAllTokens(lexer.New(input))
	if len(first) != len(second) {
		t.Fatalf("walks disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
