package parser

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/source"
	"github.com/lambdawg/lambdawg/internal/token"
)

// parseType parses a type expression: a named type (possibly applied to
// arguments), a function type `(T, ...) -> R`, a record type, a list
// type, or a parenthesized type (spec.md §4.2, §3).
func (p *Parser) parseType() ast.Type {
	switch p.cur.Kind {
	case token.IDENT_UPPER:
		return p.parseNamedType()
	case token.LPAREN:
		return p.parseFunctionOrParenType()
	case token.LBRACE:
		return p.parseRecordType()
	case token.LBRACKET:
		return p.parseListType()
	default:
		p.errorf(diagnostics.PExpectedType, p.cur.Span, "expected a type, got %s", p.cur.Kind)
		return &ast.NamedType{NodeSpan: p.cur.Span, Name: "Unit"}
	}
}

func (p *Parser) parseNamedType() ast.Type {
	start := p.cur.Span
	name := p.cur.Lexeme
	nt := &ast.NamedType{NodeSpan: start, Name: name}
	for p.peekIs(token.IDENT_UPPER) || p.peekIs(token.IDENT_LOWER) {
		p.advance()
		nt.Args = append(nt.Args, p.parseTypeAtom())
	}
	if len(nt.Args) > 0 {
		nt.NodeSpan = source.Merge(start, nt.Args[len(nt.Args)-1].Span())
	}
	return nt
}

// parseTypeAtom parses a single type-argument token without consuming a
// following application chain, matching how lowercase type-variable
// arguments and bare uppercase type names appear in application position.
func (p *Parser) parseTypeAtom() ast.Type {
	switch p.cur.Kind {
	case token.IDENT_UPPER, token.IDENT_LOWER:
		return &ast.NamedType{NodeSpan: p.cur.Span, Name: p.cur.Lexeme}
	case token.LBRACKET:
		return p.parseListType()
	case token.LBRACE:
		return p.parseRecordType()
	case token.LPAREN:
		return p.parseFunctionOrParenType()
	default:
		p.errorf(diagnostics.PExpectedType, p.cur.Span, "expected a type, got %s", p.cur.Kind)
		return &ast.NamedType{NodeSpan: p.cur.Span, Name: "Unit"}
	}
}

func (p *Parser) parseFunctionOrParenType() ast.Type {
	start := p.cur.Span
	p.advance()
	var params []ast.Type
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		params = append(params, p.parseType())
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	if p.peekIs(token.ARROW_THIN) {
		p.advance()
		p.advance()
		ret := p.parseType()
		return &ast.FunctionType{NodeSpan: source.Merge(start, ret.Span()), Params: params, Return: ret}
	}
	if len(params) == 1 {
		return &ast.ParenthesizedType{NodeSpan: source.Merge(start, p.cur.Span), Inner: params[0]}
	}
	return &ast.ParenthesizedType{NodeSpan: source.Merge(start, p.cur.Span)}
}

func (p *Parser) parseRecordType() ast.Type {
	start := p.cur.Span
	rt := &ast.RecordType{NodeSpan: start}
	p.advance()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.ELLIPSIS) {
			rt.Open = true
			break
		}
		name := p.cur.Lexeme
		p.expect(token.COLON)
		p.advance()
		rt.Fields = append(rt.Fields, ast.RecordTypeField{Name: name, Type: p.parseType()})
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.Span
	p.expect(token.RBRACE)
	rt.NodeSpan = source.Merge(start, end)
	return rt
}

func (p *Parser) parseListType() ast.Type {
	start := p.cur.Span
	p.advance()
	elem := p.parseType()
	end := p.peek.Span
	p.expect(token.RBRACKET)
	return &ast.ListType{NodeSpan: source.Merge(start, end), Element: elem}
}
