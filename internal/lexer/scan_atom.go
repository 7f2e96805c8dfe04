package lexer

import (
	"deluded/internal/token"
)

// scanAtom сканирует непрерывный фрагмент до пробела или пунктуации.
// Если съедено ровно "fun" и следующий байт '(' — это начало функционального
// типа: съедаем скобку и выдаём FunStart вместо обычного атома.
func (tz *Tokenizer) scanAtom(start Mark) token.Token {
	for !tz.cursor.EOF() {
		ch := tz.cursor.Peek()
		if isSpace(ch) {
			break
		}
		if isKnownPunct(ch) || ch == '[' {
			break
		}
		if ch == '(' && tz.cursor.SliceFrom(start) == "fun" {
			tz.cursor.Bump() // '('
			return token.Token{
				Kind:  token.FunStart,
				Start: uint32(start),
				End:   tz.cursor.off,
				Text:  tz.cursor.SliceFrom(start),
			}
		}
		tz.cursor.Bump()
	}

	return token.Token{
		Kind:  token.Atom,
		Start: uint32(start),
		End:   tz.cursor.off,
		Text:  tz.cursor.SliceFrom(start),
	}
}
