package ast

// Visibility описывает доступность поля (public/private/protected).
type Visibility uint8

const (
	// VisPublic is the default when '@field' has no visibility keyword.
	VisPublic Visibility = iota
	VisPrivate
	VisProtected
)

func (v Visibility) String() string {
	switch v {
	case VisPrivate:
		return "private"
	case VisProtected:
		return "protected"
	default:
		return "public"
	}
}

// LookupVisibility resolves a bare lowercase keyword to a visibility.
func LookupVisibility(s string) (Visibility, bool) {
	switch s {
	case "public":
		return VisPublic, true
	case "private":
		return VisPrivate, true
	case "protected":
		return VisProtected, true
	default:
		return VisPublic, false
	}
}
