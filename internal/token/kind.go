package token

// Kind represents the category of a doc-comment token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The tokenizer itself never
	// produces it; it is reserved for downstream placeholders.
	Invalid Kind = iota
	// EOF marks the end of the comment text.
	EOF

	// Tag represents an '@word' annotation marker.
	Tag
	// Atom represents a contiguous run of non-whitespace, non-punctuation text.
	Atom
	// FunStart represents the literal 'fun(' marker opening a function type.
	FunStart

	// Pipe represents the union separator.
	Pipe // |
	// Comma represents the list separator.
	Comma // ,
	// Colon represents the type or parent separator.
	Colon // :
	// Less represents the opening generic bracket.
	Less // <
	// Greater represents the closing generic bracket.
	Greater // >
	// CloseParen closes a function-type argument list.
	CloseParen // )
	// Array represents the '[]' array marker.
	Array // []
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Tag:
		return "Tag"
	case Atom:
		return "Atom"
	case FunStart:
		return "FunStart"
	case Pipe:
		return "Pipe"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	case CloseParen:
		return "CloseParen"
	case Array:
		return "Array"
	}
	return "Unknown"
}
