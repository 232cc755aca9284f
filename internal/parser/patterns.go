package parser

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/source"
	"github.com/lambdawg/lambdawg/internal/token"
)

// parsePattern parses one pattern, recording a diagnostic and returning
// a wildcard on failure so callers can keep going (spec.md §4.2).
func (p *Parser) parsePattern() ast.Pattern {
	pat, ok := p.tryParsePattern()
	if !ok {
		p.errorf(diagnostics.PInvalidPattern, p.cur.Span, "expected a pattern, got %s", p.cur.Kind)
		return &ast.WildcardPattern{NodeSpan: p.cur.Span}
	}
	return pat
}

// tryParsePattern parses a pattern starting at p.cur, leaving p.cur on
// its last token, per spec.md §4.2: identifier, type-ident (constructor,
// optionally `{...}` or `(pattern)`), literal, wildcard, list, record,
// or rest.
func (p *Parser) tryParsePattern() (ast.Pattern, bool) {
	switch p.cur.Kind {
	case token.IDENT_LOWER:
		return &ast.IdentifierPattern{NodeSpan: p.cur.Span, Name: p.cur.Lexeme}, true

	case token.WILDCARD:
		return &ast.WildcardPattern{NodeSpan: p.cur.Span}, true

	case token.IDENT_UPPER:
		return p.parseConstructorPattern(), true

	case token.INT, token.FLOAT, token.STRING, token.CHAR, token.TRUE, token.FALSE:
		return p.parseLiteralPattern(), true

	case token.MINUS:
		// A leading `-` on a numeric literal pattern, e.g. `-1`.
		start := p.cur.Span
		p.advance()
		lit := p.parseLiteralPattern()
		lp, ok := lit.(*ast.LiteralPattern)
		if !ok {
			return nil, false
		}
		switch v := lp.Value.(type) {
		case *ast.IntLiteral:
			v.Value = -v.Value
		case *ast.FloatLiteral:
			v.Value = -v.Value
		default:
			return nil, false
		}
		lp.NodeSpan = source.Merge(start, lp.NodeSpan)
		return lp, true

	case token.LBRACKET:
		return p.parseListPattern(), true

	case token.LBRACE:
		return p.parseRecordPattern(), true

	case token.ELLIPSIS:
		return p.parseRestPattern(), true

	default:
		return nil, false
	}
}

func (p *Parser) parseLiteralPattern() ast.Pattern {
	var val ast.Expression
	switch p.cur.Kind {
	case token.INT:
		v, _ := p.cur.Literal.(int64)
		val = &ast.IntLiteral{NodeSpan: p.cur.Span, Value: v}
	case token.FLOAT:
		v, _ := p.cur.Literal.(float64)
		val = &ast.FloatLiteral{NodeSpan: p.cur.Span, Value: v}
	case token.STRING:
		v, _ := p.cur.Literal.(string)
		val = &ast.StringLiteral{NodeSpan: p.cur.Span, Value: v}
	case token.CHAR:
		v, _ := p.cur.Literal.(rune)
		val = &ast.CharLiteral{NodeSpan: p.cur.Span, Value: v}
	case token.TRUE, token.FALSE:
		val = &ast.BoolLiteral{NodeSpan: p.cur.Span, Value: p.cur.Kind == token.TRUE}
	}
	return &ast.LiteralPattern{NodeSpan: p.cur.Span, Value: val}
}

func (p *Parser) parseConstructorPattern() ast.Pattern {
	start := p.cur.Span
	name := p.cur.Lexeme
	cp := &ast.ConstructorPattern{NodeSpan: start, Name: name}

	if p.peekIs(token.LBRACE) {
		p.advance()
		cp.Record = p.parseRecordPattern().(*ast.RecordPattern)
		cp.NodeSpan = source.Merge(start, cp.Record.Span())
	} else if p.peekIs(token.LPAREN) {
		p.advance() // '('
		p.advance()
		cp.Inner = p.parsePattern()
		end := p.peek.Span
		p.expect(token.RPAREN)
		cp.NodeSpan = source.Merge(start, end)
	}
	return cp
}

func (p *Parser) parseListPattern() ast.Pattern {
	start := p.cur.Span
	lp := &ast.ListPattern{NodeSpan: start}
	p.advance()
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		if p.curIs(token.ELLIPSIS) {
			rest := p.parseRestPattern()
			lp.Rest = rest.(*ast.RestPattern)
		} else {
			lp.Elements = append(lp.Elements, p.parsePattern())
		}
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.Span
	p.expect(token.RBRACKET)
	lp.NodeSpan = source.Merge(start, end)
	return lp
}

func (p *Parser) parseRestPattern() ast.Pattern {
	start := p.cur.Span
	name := ""
	if p.peekIs(token.IDENT_LOWER) {
		p.advance()
		name = p.cur.Lexeme
	}
	return &ast.RestPattern{NodeSpan: source.Merge(start, p.cur.Span), Name: name}
}

func (p *Parser) parseRecordPattern() ast.Pattern {
	start := p.cur.Span
	rp := &ast.RecordPattern{NodeSpan: start}
	p.advance()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.ELLIPSIS) {
			rp.HasRest = true
		} else {
			name := p.cur.Lexeme
			field := ast.RecordPatternField{Name: name}
			if p.peekIs(token.COLON) {
				p.advance()
				p.advance()
				field.Pattern = p.parsePattern()
			}
			rp.Fields = append(rp.Fields, field)
		}
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.Span
	p.expect(token.RBRACE)
	rp.NodeSpan = source.Merge(start, end)
	return rp
}
