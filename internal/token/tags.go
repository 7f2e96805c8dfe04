package token

// TagKind identifies a known annotation tag, or TagUnknown for anything else.
type TagKind uint8

const (
	// TagUnknown is any '@word' that is not in the fixed tag table.
	TagUnknown TagKind = iota
	// TagClass represents '@class'.
	TagClass // class
	// TagType represents '@type'.
	TagType // type
	// TagAlias represents '@alias'.
	TagAlias // alias
	// TagParam represents '@param'.
	TagParam // param
	// TagReturn represents '@return'.
	TagReturn // return
	// TagField represents '@field'.
	TagField // field
	// TagGeneric represents '@generic'.
	TagGeneric // generic
	// TagVarArg represents '@vararg'.
	TagVarArg // vararg
	// TagLang represents '@lang'.
	TagLang // lang
	// TagSee represents '@see'.
	TagSee // see
)

var tags = map[string]TagKind{
	"class":   TagClass,
	"type":    TagType,
	"alias":   TagAlias,
	"param":   TagParam,
	"return":  TagReturn,
	"field":   TagField,
	"generic": TagGeneric,
	"vararg":  TagVarArg,
	"lang":    TagLang,
	"see":     TagSee,
}

// LookupTag resolves a tag name (without the '@') against the fixed table.
// Matching is case-sensitive; anything unrecognized maps to TagUnknown.
func LookupTag(name string) (TagKind, bool) {
	k, ok := tags[name]
	if !ok {
		return TagUnknown, false
	}
	return k, true
}

func (k TagKind) String() string {
	switch k {
	case TagClass:
		return "class"
	case TagType:
		return "type"
	case TagAlias:
		return "alias"
	case TagParam:
		return "param"
	case TagReturn:
		return "return"
	case TagField:
		return "field"
	case TagGeneric:
		return "generic"
	case TagVarArg:
		return "vararg"
	case TagLang:
		return "lang"
	case TagSee:
		return "see"
	}
	return "unknown"
}
