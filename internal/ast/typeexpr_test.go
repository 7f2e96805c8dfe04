package ast

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		ty   Type
		want string
	}{
		{"single", Single{Name: "string"}, "string"},
		{"any placeholder", AnyType(), "any"},
		{
			"union",
			Union{Alts: []Type{Single{Name: "string"}, Single{Name: "number"}, Single{Name: "nil"}}},
			"string|number|nil",
		},
		{
			"fun with args",
			Fun{
				Args: []FunArg{
					{Name: "a", Type: Single{Name: "string"}},
					{Name: "b", Type: Single{Name: "number"}},
				},
				Ret: Single{Name: "boolean"},
			},
			"fun(a: string, b: number): boolean",
		},
		{
			"fun without args defaults ret",
			Fun{Ret: AnyType()},
			"fun(): any",
		},
		{
			"nested fun in union",
			Union{Alts: []Type{
				Fun{Args: []FunArg{{Name: "x", Type: AnyType()}}, Ret: Single{Name: "nil"}},
				Single{Name: "nil"},
			}},
			"fun(x: any): nil|nil",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ty.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupVisibility(t *testing.T) {
	tests := []struct {
		in   string
		vis  Visibility
		ok   bool
	}{
		{"public", VisPublic, true},
		{"private", VisPrivate, true},
		{"protected", VisProtected, true},
		{"Public", VisPublic, false},
		{"", VisPublic, false},
	}
	for _, tt := range tests {
		vis, ok := LookupVisibility(tt.in)
		if vis != tt.vis || ok != tt.ok {
			t.Errorf("LookupVisibility(%q) = (%v, %v), want (%v, %v)",
				tt.in, vis, ok, tt.vis, tt.ok)
		}
	}
}

func TestVisibilityString(t *testing.T) {
	if VisPublic.String() != "public" || VisPrivate.String() != "private" || VisProtected.String() != "protected" {
		t.Error("unexpected visibility strings")
	}
	// zero value is the default
	var v Visibility
	if v != VisPublic {
		t.Error("zero visibility should be public")
	}
}
