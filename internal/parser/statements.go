package parser

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/source"
	"github.com/lambdawg/lambdawg/internal/token"
)

// parseStatement dispatches on the leading keyword, defaulting to an
// expression statement, and resynchronizes on error (spec.md §4.2
// "Top level", "Error recovery").
func (p *Parser) parseStatement() ast.Statement {
	before := len(p.diags.All())
	var stmt ast.Statement

	switch p.cur.Kind {
	case token.LET, token.PRIVATE:
		stmt = p.parseLetStatement()
	case token.TYPE:
		stmt = p.parseTypeDefStatement()
	case token.IMPORT:
		stmt = p.parseImportStatement()
	default:
		start := p.cur.Span
		expr := p.parseExpression(lowest)
		span := start
		if expr != nil {
			span = source.Merge(start, expr.Span())
		}
		stmt = &ast.ExpressionStatement{NodeSpan: span, Expression: expr}
	}

	if len(p.diags.All()) > before {
		p.synchronize()
	}
	return stmt
}

// parseLetStatement parses `[private] let name [with a1, a2: T] [: Type] = expr`.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	start := p.cur.Span
	private := false
	if p.curIs(token.PRIVATE) {
		private = true
		p.advance()
	}
	// p.cur is now 'let'
	if !p.curIs(token.LET) {
		p.errorf(diagnostics.PUnexpectedToken, p.cur.Span, "expected 'let', got %s", p.cur.Kind)
	}
	p.advance()
	if !p.curIs(token.IDENT_LOWER) {
		p.errorf(diagnostics.PExpectedIdent, p.cur.Span, "expected a lowercase identifier, got %s", p.cur.Kind)
	}
	name := p.cur.Lexeme

	let := &ast.LetStatement{NodeSpan: start, Private: private, Name: name}

	if p.peekIs(token.WITH) {
		p.advance()
		p.advance()
		for {
			paramName := p.cur.Lexeme
			ap := ast.AmbientParam{Name: paramName}
			if p.peekIs(token.COLON) {
				p.advance()
				p.advance()
				ap.TypeAnnotation = p.parseType()
			}
			let.Ambients = append(let.Ambients, ap)
			if p.peekIs(token.COMMA) {
				p.advance()
				p.advance()
				continue
			}
			break
		}
	}

	if p.peekIs(token.COLON) {
		p.advance()
		p.advance()
		let.TypeAnnotation = p.parseType()
	}

	p.expect(token.ASSIGN)
	p.advance()
	let.Value = p.parseExpression(lowest)

	if let.Value != nil {
		let.NodeSpan = source.Merge(start, let.Value.Span())
	}
	return let
}

// parseTypeDefStatement parses `type Name p1 p2 = variant | variant` or
// `type Name = <type expression>` (an alias), per spec.md §4.2.
func (p *Parser) parseTypeDefStatement() *ast.TypeDefStatement {
	start := p.cur.Span
	p.advance() // 'type'
	if !p.curIs(token.IDENT_UPPER) {
		p.errorf(diagnostics.PExpectedIdent, p.cur.Span, "expected a type identifier, got %s", p.cur.Kind)
	}
	name := p.cur.Lexeme

	def := &ast.TypeDefStatement{NodeSpan: start, Name: name}
	for p.peekIs(token.IDENT_LOWER) {
		p.advance()
		def.Params = append(def.Params, p.cur.Lexeme)
	}

	p.expect(token.ASSIGN)
	p.advance()

	if p.curIs(token.PIPE) {
		p.advance()
	}

	if p.looksLikeSumType() {
		def.Variants = append(def.Variants, p.parseTypeVariant())
		for p.peekIs(token.PIPE) {
			p.advance()
			p.advance()
			def.Variants = append(def.Variants, p.parseTypeVariant())
		}
		def.NodeSpan = source.Merge(start, p.cur.Span)
		return def
	}

	def.AliasOf = p.parseType()
	def.NodeSpan = source.Merge(start, def.AliasOf.Span())
	return def
}

// looksLikeSumType reports whether the upcoming type definition body is a
// sum type: the current token is a type-ident that is either alone or
// followed by a record-type brace, as opposed to a function/list/record
// type alias body.
func (p *Parser) looksLikeSumType() bool {
	return p.curIs(token.IDENT_UPPER) && !p.peekIs(token.IDENT_UPPER) && !p.peekIs(token.IDENT_LOWER)
}

func (p *Parser) parseTypeVariant() ast.TypeVariant {
	name := p.cur.Lexeme
	v := ast.TypeVariant{Name: name}
	if p.peekIs(token.LBRACE) {
		p.advance()
		v.Fields = p.parseRecordType().(*ast.RecordType)
	}
	return v
}

// parseImportStatement parses `import [js] path { * | name [as alias], ... }`.
func (p *Parser) parseImportStatement() *ast.ImportStatement {
	start := p.cur.Span
	p.advance() // 'import'
	imp := &ast.ImportStatement{NodeSpan: start}
	if p.curIs(token.JS) {
		imp.JS = true
		p.advance()
	}
	imp.ModulePath = p.cur.Lexeme
	if p.peekIs(token.LBRACE) {
		p.advance()
		p.advance()
		if p.curIs(token.STAR) {
			imp.ImportAll = true
			p.advance()
		} else {
			for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
				spec := ast.ImportSpec{Name: p.cur.Lexeme}
				if p.peekIs(token.AS) {
					p.advance()
					p.advance()
					spec.Alias = p.cur.Lexeme
				}
				imp.Specs = append(imp.Specs, spec)
				if p.peekIs(token.COMMA) {
					p.advance()
					p.advance()
				} else {
					break
				}
			}
		}
		end := p.peek.Span
		p.expect(token.RBRACE)
		imp.NodeSpan = source.Merge(start, end)
	}
	return imp
}
