package ast

import (
	"strings"
)

// Type is a parsed type expression.
type Type interface {
	isType()
	String() string
}

// Single is a bare type name, builtin or user-defined. Name resolution is
// not this package's concern.
type Single struct {
	Name string
}

func (Single) isType() {}

func (s Single) String() string { return s.Name }

// AnyType is the permissive placeholder used wherever a type annotation is
// missing or malformed.
func AnyType() Type { return Single{Name: "any"} }

// FunArg is one named argument of a function type.
type FunArg struct {
	Name string
	Type Type
}

// Fun is a function type: ordered arguments plus a return type. Ret is never
// nil; it defaults to any when the annotation omits a return clause.
type Fun struct {
	Args []FunArg
	Ret  Type
}

func (Fun) isType() {}

func (f Fun) String() string {
	var sb strings.Builder
	sb.WriteString("fun(")
	for i, arg := range f.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Name)
		sb.WriteString(": ")
		sb.WriteString(arg.Type.String())
	}
	sb.WriteString("): ")
	sb.WriteString(f.Ret.String())
	return sb.String()
}

// Union is an ordered list of at least two alternative types. A union only
// grows by appending; nested unions are flattened at construction time.
type Union struct {
	Alts []Type
}

func (Union) isType() {}

func (u Union) String() string {
	parts := make([]string, len(u.Alts))
	for i, alt := range u.Alts {
		parts[i] = alt.String()
	}
	return strings.Join(parts, "|")
}
