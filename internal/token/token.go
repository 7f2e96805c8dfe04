package token

// Token represents a single doc-comment token. Start and End are byte
// offsets into the comment text the token was scanned from; Text is the
// corresponding slice of that text.
type Token struct {
	Kind  Kind
	Tag   TagKind // set only when Kind == Tag
	Start uint32
	End   uint32
	Text  string
}

// IsPunct reports whether the token is one of the recognized punctuation marks.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Pipe, Comma, Colon, Less, Greater, CloseParen, Array:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the token marks the end of the comment text.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// TagName returns the tag name without the leading '@'. Empty for non-tags.
func (t Token) TagName() string {
	if t.Kind != Tag || len(t.Text) == 0 {
		return ""
	}
	return t.Text[1:]
}
