package lexer

// isSpace reports ASCII whitespace. Doc comments are line oriented, so the
// unicode space classes are not considered.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isKnownPunct перечисляет пунктуацию, завершающую атом. '[' обрабатывается
// отдельно: пунктуация только в паре '[]'.
func isKnownPunct(b byte) bool {
	switch b {
	case '|', ',', ':', '<', '>', ')':
		return true
	default:
		return false
	}
}
