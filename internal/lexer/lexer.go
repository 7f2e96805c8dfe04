package lexer

import (
	"deluded/internal/token"
)

// Tokenizer converts one doc comment's text into a lazy stream of tokens.
// It is single pass: tokens come out in source order and the stream is not
// resumable once EOF has been reached.
type Tokenizer struct {
	cursor Cursor
	look   *token.Token // 1 элементный буфер для токена
}

// New creates a Tokenizer over the given comment text.
func New(src string) *Tokenizer {
	return &Tokenizer{
		cursor: NewCursor(src),
		look:   nil,
	}
}

// Next возвращает следующий токен. После конца текста всегда возвращает EOF.
func (tz *Tokenizer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if tz.look != nil {
		tok := *tz.look
		tz.look = nil
		return tok
	}

	tz.skipWhitespace()

	// 2) Если EOF → вернуть EOF
	if tz.cursor.EOF() {
		return token.Token{
			Kind:  token.EOF,
			Start: tz.cursor.off,
			End:   tz.cursor.off,
		}
	}

	// 3) Посмотреть текущий байт и выбрать сканер
	switch ch := tz.cursor.Peek(); {
	case ch == '@':
		return tz.scanTag()
	case isKnownPunct(ch) || ch == '[':
		return tz.scanPunct()
	default:
		// всё остальное уходит в атом, включая цифры и незнакомые байты
		return tz.scanAtom(tz.cursor.Mark())
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (tz *Tokenizer) Peek() token.Token {
	if tz.look != nil {
		return *tz.look
	}
	t := tz.Next()
	tz.look = &t
	return t
}

// Rest returns the untokenized remainder of the original text. A token
// sitting in the look buffer counts as untokenized: the remainder starts at
// its first byte, so prose that happens to contain grammar punctuation is
// recovered verbatim.
func (tz *Tokenizer) Rest() string {
	if tz.look != nil {
		return tz.cursor.src[tz.look.Start:]
	}
	return tz.cursor.src[tz.cursor.off:]
}

// Source returns the original comment text.
func (tz *Tokenizer) Source() string {
	return tz.cursor.src
}

func (tz *Tokenizer) skipWhitespace() {
	for !tz.cursor.EOF() {
		if !isSpace(tz.cursor.Peek()) {
			break
		}
		tz.cursor.Bump()
	}
}
