package ast

// Attr is one fully parsed structured annotation. Comment fields hold the
// untokenized remainder of the line, trimmed.
type Attr interface {
	isAttr()
}

// Class is '@class Name[: Parent] comment'.
type Class struct {
	Type    Type
	Parent  Type // nil when the annotation has no parent clause
	Comment string
}

// TypeAttr is '@type T1|T2|... comment'.
type TypeAttr struct {
	Type    Type
	Comment string
}

// Alias is '@alias NewName OldType'.
type Alias struct {
	NewName string
	OldType Type
}

// Param is '@param name Type comment'.
type Param struct {
	Name    string
	Type    Type
	Comment string
}

// Return is '@return Type comment'.
type Return struct {
	Type    Type
	Comment string
}

// Field is '@field [private|protected|public] name Type comment'.
type Field struct {
	Vis     Visibility
	Name    string
	Type    Type
	Comment string
}

// Generic is one entry of a '@generic' list: a name plus an optional
// constraint type.
type Generic struct {
	Name string
	Type Type // nil when unconstrained
}

// Generics is '@generic name[: Type], name2[: Type2], ...'.
type Generics struct {
	List []Generic
}

// VarArg is '@vararg Type'.
type VarArg struct {
	Type Type
}

// Lang is '@lang name'.
type Lang struct {
	Name string
}

// See is '@see text', verbatim.
type See struct {
	Text string
}

// Unknown is any unrecognized '@word'; Raw keeps the tag text including '@'.
type Unknown struct {
	Raw string
}

func (Class) isAttr()    {}
func (TypeAttr) isAttr() {}
func (Alias) isAttr()    {}
func (Param) isAttr()    {}
func (Return) isAttr()   {}
func (Field) isAttr()    {}
func (Generics) isAttr() {}
func (VarArg) isAttr()   {}
func (Lang) isAttr()     {}
func (See) isAttr()      {}
func (Unknown) isAttr()  {}
