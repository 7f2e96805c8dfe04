package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"deluded/internal/ast"
	"deluded/internal/lexer"
	"deluded/internal/token"
)

// ErrInvalidType indicates a standalone type string with no recognizable
// type at its start.
var ErrInvalidType = errors.New("invalid type expression")

// ParseTypeString parses a standalone type expression. Unlike the comment
// grammar it reports a typed error for garbage input instead of silently
// producing the any placeholder.
func ParseTypeString(s string) (ast.Type, error) {
	p := &Parser{tz: lexer.New(s)}
	switch p.tz.Peek().Kind {
	case token.Atom, token.FunStart:
		return p.parseType(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// TryType is the loose, line-oriented fallback for '@type' bodies. It keeps
// the historical union-only accumulation: alternates collect ONLY while '|'
// separators appear, so a bare single type with no '|' yields no attribute
// at all. That asymmetry is intentional legacy behavior; see the open
// questions in DESIGN.md before "fixing" it.
func TryType(s string) (ast.Attr, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, nil
	}

	var alts []ast.Type
	sawPipe := false
	for rest != "" {
		end := strings.IndexFunc(rest, func(r rune) bool {
			return unicode.IsSpace(r) || r == '|'
		})
		if end == -1 {
			// последний сегмент строки
			if sawPipe {
				ty, err := ParseTypeString(rest)
				if err != nil {
					return nil, err
				}
				alts = append(alts, ty)
			}
			rest = ""
			break
		}

		seg := rest[:end]
		delim, size := utf8.DecodeRuneInString(rest[end:])
		if unicode.IsSpace(delim) {
			// типы закончились, дальше комментарий
			if sawPipe && seg != "" {
				ty, err := ParseTypeString(seg)
				if err != nil {
					return nil, err
				}
				alts = append(alts, ty)
			}
			rest = rest[end:]
			break
		}

		// '|'
		if seg != "" {
			ty, err := ParseTypeString(seg)
			if err != nil {
				return nil, err
			}
			alts = append(alts, ty)
		}
		sawPipe = true
		rest = rest[end+size:]
	}

	if len(alts) < 2 {
		return nil, nil
	}
	return ast.TypeAttr{
		Type:    ast.Union{Alts: alts},
		Comment: strings.TrimSpace(rest),
	}, nil
}

// TryClass is the line-oriented fallback for '@class' bodies:
//
//	Name[: Parent] comment text
func TryClass(s string) ast.Attr {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	name, rest := splitWord(s)
	var parent ast.Type
	if strings.HasPrefix(rest, ":") {
		pname, r := splitWord(strings.TrimSpace(rest[1:]))
		if pname != "" {
			parent = ast.Single{Name: pname}
		}
		rest = r
	}
	return ast.Class{
		Type:    ast.Single{Name: name},
		Parent:  parent,
		Comment: strings.TrimSpace(rest),
	}
}

// splitWord cuts the leading run up to whitespace or ':'.
func splitWord(s string) (word, rest string) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':'
	})
	if end == -1 {
		return s, ""
	}
	return s[:end], strings.TrimLeft(s[end:], " \t")
}
