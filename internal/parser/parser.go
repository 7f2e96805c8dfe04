package parser

import (
	"strings"

	"deluded/internal/ast"
	"deluded/internal/lexer"
	"deluded/internal/token"
)

// Parser consumes the token stream of one comment with one-token lookahead.
// The lookahead lives in the tokenizer's look buffer; the trailing free-text
// comment is always recovered from the original text via Tokenizer.Rest, not
// by re-scanning tokens.
type Parser struct {
	tz *lexer.Tokenizer
}

// Classify decides whether the comment text is a structured annotation or
// plain prose. Only the very first token matters: anything that is not a tag
// makes the WHOLE original text markdown, discarding the peek attempt.
func Classify(text string) Part {
	p := &Parser{tz: lexer.New(text)}
	first := p.tz.Peek()
	if first.Kind != token.Tag {
		return Markdown{Text: text}
	}
	p.advance()
	return AttrPart{Attr: p.attr(first)}
}

// attr dispatches on the already-consumed leading tag.
func (p *Parser) attr(tag token.Token) ast.Attr {
	switch tag.Tag {
	case token.TagClass:
		return p.class()
	case token.TagType:
		return p.typeAttr()
	case token.TagAlias:
		return p.alias()
	case token.TagParam:
		return p.param()
	case token.TagReturn:
		return p.return_()
	case token.TagField:
		return p.field()
	case token.TagGeneric:
		return p.generic()
	case token.TagVarArg:
		return p.varArg()
	case token.TagLang:
		return p.lang()
	case token.TagSee:
		return p.see()
	default:
		// никакого дальнейшего разбора: всё после тега остаётся как есть
		return ast.Unknown{Raw: tag.Text}
	}
}

// advance съедает следующий токен
func (p *Parser) advance() token.Token {
	return p.tz.Next()
}

// at проверяет вид следующего токена, не потребляя его
func (p *Parser) at(k token.Kind) bool {
	return p.tz.Peek().Kind == k
}

// ident consumes one token and returns its text when it is a name-like
// token. Anything else still gets consumed (forward progress) but yields an
// empty name.
func (p *Parser) ident() string {
	switch tok := p.advance(); tok.Kind {
	case token.Atom, token.FunStart:
		return tok.Text
	default:
		return ""
	}
}

// comment returns the untokenized remainder of the original text, trimmed.
func (p *Parser) comment() string {
	return strings.TrimSpace(p.tz.Rest())
}

func (p *Parser) class() ast.Attr {
	ty := p.parseType()
	var parent ast.Type
	if p.at(token.Colon) {
		p.advance()
		parent = p.parseType()
	}
	return ast.Class{
		Type:    ty,
		Parent:  parent,
		Comment: p.comment(),
	}
}

func (p *Parser) typeAttr() ast.Attr {
	return ast.TypeAttr{
		Type:    p.parseType(),
		Comment: p.comment(),
	}
}

func (p *Parser) alias() ast.Attr {
	return ast.Alias{
		NewName: p.ident(),
		OldType: p.parseType(),
	}
}

func (p *Parser) param() ast.Attr {
	return ast.Param{
		Name:    p.ident(),
		Type:    p.parseType(),
		Comment: p.comment(),
	}
}

func (p *Parser) return_() ast.Attr {
	return ast.Return{
		Type:    p.parseType(),
		Comment: p.comment(),
	}
}

func (p *Parser) field() ast.Attr {
	vis := ast.VisPublic
	if tok := p.tz.Peek(); tok.Kind == token.Atom {
		if v, ok := ast.LookupVisibility(tok.Text); ok {
			p.advance()
			vis = v
		}
	}
	return ast.Field{
		Vis:     vis,
		Name:    p.ident(),
		Type:    p.parseType(),
		Comment: p.comment(),
	}
}

func (p *Parser) generic() ast.Attr {
	var list []ast.Generic
	for {
		name := p.ident()
		var ty ast.Type
		if p.at(token.Colon) {
			p.advance()
			ty = p.parseType()
		}
		list = append(list, ast.Generic{Name: name, Type: ty})
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return ast.Generics{List: list}
}

func (p *Parser) varArg() ast.Attr {
	return ast.VarArg{Type: p.parseType()}
}

func (p *Parser) lang() ast.Attr {
	return ast.Lang{Name: p.comment()}
}

func (p *Parser) see() ast.Attr {
	return ast.See{Text: p.comment()}
}
