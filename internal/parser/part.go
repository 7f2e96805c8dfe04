package parser

import (
	"deluded/internal/ast"
)

// Part is the classified outcome of one comment: prose or an attribute.
type Part interface {
	isPart()
}

// Markdown wraps a comment that does not start with a tag. Text is the whole
// original comment, not a remainder.
type Markdown struct {
	Text string
}

// AttrPart wraps a parsed structured annotation.
type AttrPart struct {
	Attr ast.Attr
}

func (Markdown) isPart() {}
func (AttrPart) isPart() {}
