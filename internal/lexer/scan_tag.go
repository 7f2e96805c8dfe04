package lexer

import (
	"deluded/internal/token"
)

// scanTag сканирует '@' и дальше всё до пробела. Token.Text сохраняет '@'.
// Имя резолвится по фиксированной таблице тегов (регистрозависимо).
func (tz *Tokenizer) scanTag() token.Token {
	start := tz.cursor.Mark()
	tz.cursor.Bump() // '@'

	for !tz.cursor.EOF() {
		if isSpace(tz.cursor.Peek()) {
			break
		}
		tz.cursor.Bump()
	}

	text := tz.cursor.SliceFrom(start)
	kind, _ := token.LookupTag(text[1:])
	return token.Token{
		Kind:  token.Tag,
		Tag:   kind,
		Start: uint32(start),
		End:   tz.cursor.off,
		Text:  text,
	}
}
