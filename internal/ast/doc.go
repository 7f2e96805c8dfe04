// Package ast defines the parsed representation of EmmyLua doc-comment
// annotations: type expressions (single names, function signatures, unions)
// and the attribute values built from tagged comment lines. Values are
// constructed once per comment and never mutated afterwards.
package ast
