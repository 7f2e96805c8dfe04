package lexer

import (
	"deluded/internal/token"
)

// scanPunct сканирует одиночный знак пунктуации. Особый случай: '[' является
// пунктуацией только в паре '[]' (маркер массива), иначе уходит в атом.
func (tz *Tokenizer) scanPunct() token.Token {
	start := tz.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.Token{
			Kind:  k,
			Start: uint32(start),
			End:   tz.cursor.off,
			Text:  tz.cursor.SliceFrom(start),
		}
	}

	switch tz.cursor.Bump() {
	case '|':
		return emit(token.Pipe)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case '<':
		return emit(token.Less)
	case '>':
		return emit(token.Greater)
	case ')':
		return emit(token.CloseParen)
	case '[':
		if tz.cursor.Eat(']') {
			return emit(token.Array)
		}
		// одиночная '[' продолжает атом
		return tz.scanAtom(start)
	default:
		// недостижимо при текущем наборе isKnownPunct; на всякий случай — атом
		return tz.scanAtom(start)
	}
}
