package parser

import (
	"deluded/internal/ast"
	"deluded/internal/token"
)

// parseType распознаёт одно типовое выражение:
//
//	имя | fun(...) | объединения через '|'
//
// Пустой или испорченный ввод даёт плейсхолдер any.
func (p *Parser) parseType() ast.Type {
	init := p.baseType()
	for p.at(token.Pipe) {
		p.advance() // '|'
		next := p.baseType()
		// объединение растёт только добавлением в конец
		switch u := init.(type) {
		case ast.Union:
			u.Alts = append(u.Alts, next)
			init = u
		default:
			init = ast.Union{Alts: []ast.Type{init, next}}
		}
	}
	return init
}

func (p *Parser) baseType() ast.Type {
	switch tok := p.advance(); tok.Kind {
	case token.FunStart:
		return p.funType()
	case token.Atom:
		return ast.Single{Name: tok.Text}
	default:
		return ast.AnyType()
	}
}

// funType вызывается сразу после FunStart. Конец ввода закрывает любой
// открытый список аргументов.
func (p *Parser) funType() ast.Type {
	var args []ast.FunArg
	for {
		tok := p.tz.Peek()
		if tok.Kind == token.CloseParen || tok.Kind == token.EOF {
			break
		}
		args = append(args, p.funArg())
		// запятая между аргументами опциональна
		if p.at(token.Comma) {
			p.advance()
		}
	}
	p.advance() // ')' либо EOF

	ret := ast.AnyType()
	if p.at(token.Colon) {
		p.advance()
		ret = p.parseType()
	}
	return ast.Fun{Args: args, Ret: ret}
}

func (p *Parser) funArg() ast.FunArg {
	name := p.ident()
	ty := ast.AnyType()
	if p.at(token.Colon) {
		p.advance()
		ty = p.parseType()
	}
	return ast.FunArg{Name: name, Type: ty}
}
