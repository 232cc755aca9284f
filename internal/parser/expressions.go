package parser

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/source"
	"github.com/lambdawg/lambdawg/internal/token"
)

// parseExpression is the Pratt engine's core: dispatch a prefix parselet
// for p.cur, then repeatedly fold in infix parselets while the peeked
// operator binds tighter than prec.
func (p *Parser) parseExpression(prec precedence) ast.Expression {
	return p.withDepthGuard(p.cur.Span, func() ast.Expression {
		prefix, ok := p.prefixFns[p.cur.Kind]
		if !ok {
			p.errorf(diagnostics.PExpectedExpr, p.cur.Span, "unexpected token %s in expression", p.cur.Kind)
			return nil
		}
		left := prefix()
		if left == nil {
			return nil
		}

		for !p.peekIs(token.NEWLINE) && prec < p.peekPrecedence() {
			infix, ok := p.infixFns[p.peek.Kind]
			if !ok {
				return left
			}
			p.advance()
			left = infix(left)
		}
		return left
	})
}

func (p *Parser) parseIntLiteral() ast.Expression {
	v, _ := p.cur.Literal.(int64)
	return &ast.IntLiteral{NodeSpan: p.cur.Span, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	v, _ := p.cur.Literal.(float64)
	return &ast.FloatLiteral{NodeSpan: p.cur.Span, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	v, _ := p.cur.Literal.(string)
	return &ast.StringLiteral{NodeSpan: p.cur.Span, Value: v}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	v, _ := p.cur.Literal.(rune)
	return &ast.CharLiteral{NodeSpan: p.cur.Span, Value: v}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{NodeSpan: p.cur.Span, Value: p.cur.Kind == token.TRUE}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{NodeSpan: p.cur.Span, Name: p.cur.Lexeme}
}

// parseIdentifierOrConstructor handles a type-ident in expression
// position: `Name` alone, or `Name { ... }` which becomes a
// ConstructorLiteral (spec.md §4.2 prefix productions).
func (p *Parser) parseIdentifierOrConstructor() ast.Expression {
	start := p.cur.Span
	name := p.cur.Lexeme
	if p.peekIs(token.LBRACE) && p.looksLikeRecordAhead() {
		p.advance()
		rec := p.parseRecordLiteral()
		return &ast.ConstructorLiteral{NodeSpan: source.Merge(start, rec.Span()), Name: name, Record: rec}
	}
	return &ast.Identifier{NodeSpan: start, Name: name}
}

func (p *Parser) parsePlaceholder() ast.Expression {
	return &ast.Placeholder{NodeSpan: p.cur.Span}
}

func (p *Parser) parseSpread() ast.Expression {
	start := p.cur.Span
	p.advance()
	val := p.parseExpression(lowest)
	span := start
	if val != nil {
		span = source.Merge(start, val.Span())
	}
	return &ast.Spread{NodeSpan: span, Value: val}
}

func (p *Parser) parseListLiteral() ast.Expression {
	start := p.cur.Span
	var elems []ast.Expression
	p.advance()
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		elems = append(elems, p.parseExpression(lowest))
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.Span
	p.expect(token.RBRACKET)
	return &ast.ListLiteral{NodeSpan: source.Merge(start, end), Elements: elems}
}

// looksLikeRecordAhead performs the one-shot lookahead of spec.md §4.2:
// `{ }` empty, or the first token is `...`, or the first two tokens are
// ident then `:`.
func (p *Parser) looksLikeRecordAhead() bool {
	// p.peek is the LBRACE; inspect the tokens stream past it without
	// consuming — the lexer already produced the whole stream, so we can
	// look directly at p.tokens using p.pos (which indexes one past peek).
	i := p.pos
	if i >= len(p.tokens) {
		return false
	}
	first := p.tokens[i]
	if first.Kind == token.RBRACE {
		return true
	}
	if first.Kind == token.ELLIPSIS {
		return true
	}
	if (first.Kind == token.IDENT_LOWER || first.Kind == token.IDENT_UPPER) && i+1 < len(p.tokens) {
		return p.tokens[i+1].Kind == token.COLON
	}
	return false
}

func (p *Parser) parseRecordOrBlockLiteral() ast.Expression {
	// Here p.cur is the LBRACE, so the first token inside the braces is
	// p.peek and the second is p.tokens[p.pos] (one step earlier than in
	// looksLikeRecordAhead).
	if p.peekIs(token.RBRACE) || p.peekIs(token.ELLIPSIS) {
		return p.parseRecordLiteral()
	}
	if (p.peekIs(token.IDENT_LOWER) || p.peekIs(token.IDENT_UPPER)) && p.pos < len(p.tokens) && p.tokens[p.pos].Kind == token.COLON {
		return p.parseRecordLiteral()
	}
	return p.parseBlockLiteral()
}

func (p *Parser) parseRecordLiteral() *ast.RecordLiteral {
	start := p.cur.Span // LBRACE
	p.advance()
	rec := &ast.RecordLiteral{NodeSpan: start}
	if p.curIs(token.RBRACE) {
		rec.NodeSpan = source.Merge(start, p.cur.Span)
		return rec
	}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.ELLIPSIS) {
			p.advance()
			rec.Spread = p.parseExpression(lowest)
		} else {
			name := p.cur.Lexeme
			p.expect(token.COLON)
			p.advance()
			rec.Fields = append(rec.Fields, ast.RecordField{Name: name, Value: p.parseExpression(lowest)})
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
	rec.NodeSpan = source.Merge(start, end)
	return rec
}

func (p *Parser) parseBlockLiteral() ast.Expression {
	start := p.cur.Span
	p.advance()
	p.skipNewlines()
	blk := &ast.BlockExpression{NodeSpan: start}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.LET) {
			let := p.parseLetStatement()
			blk.Statements = append(blk.Statements, ast.BlockStatement{Let: let})
		} else {
			expr := p.parseExpression(lowest)
			if p.peekIs(token.NEWLINE) || p.peekIs(token.RBRACE) {
				// A trailing bare expression directly before `}` is the
				// block's value; anything earlier is a statement for effect.
				if p.peekIs(token.RBRACE) {
					blk.Trailing = expr
					p.advance()
					break
				}
			}
			blk.Statements = append(blk.Statements, ast.BlockStatement{Value: expr})
		}
		p.advance()
		p.skipNewlines()
	}
	end := p.cur.Span
	if !p.curIs(token.RBRACE) {
		p.errorf(diagnostics.PUnexpectedToken, p.cur.Span, "expected %s, got %s", token.RBRACE, p.cur.Kind)
	}
	blk.NodeSpan = source.Merge(start, end)
	return blk
}

// parseGroupedOrFunctionLiteral disambiguates `(expr)` from
// `(p1, p2, ...) => body` via a one-shot lookahead, per spec.md §4.2.
func (p *Parser) parseGroupedOrFunctionLiteral() ast.Expression {
	start := p.cur.Span
	savedPos, savedCur, savedPeek := p.pos, p.cur, p.peek

	if fn, ok := p.tryParseFunctionLiteral(start); ok {
		return fn
	}
	p.pos, p.cur, p.peek = savedPos, savedCur, savedPeek

	p.advance() // consume '('
	expr := p.parseExpression(lowest)
	p.expect(token.RPAREN)

	if p.peekIs(token.ARROW_FAT) {
		p.advance()
		p.advance()
		param := exprToParamPattern(expr)
		body := p.parseExpression(lowest)
		span := start
		if body != nil {
			span = source.Merge(start, body.Span())
		}
		return &ast.FunctionLiteral{NodeSpan: span, Params: []ast.Pattern{param}, Body: body}
	}
	return expr
}

func (p *Parser) tryParseFunctionLiteral(start source.Span) (ast.Expression, bool) {
	p.advance() // consume '('
	var params []ast.Pattern
	for !p.curIs(token.RPAREN) {
		pat, ok := p.tryParsePattern()
		if !ok {
			return nil, false
		}
		params = append(params, pat)
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
			continue
		}
		break
	}
	if !p.peekIs(token.RPAREN) {
		return nil, false
	}
	p.advance() // now at RPAREN
	if !p.peekIs(token.ARROW_FAT) {
		return nil, false
	}
	p.advance() // now at =>
	p.advance()
	body := p.parseExpression(lowest)
	span := start
	if body != nil {
		span = source.Merge(start, body.Span())
	}
	return &ast.FunctionLiteral{NodeSpan: span, Params: params, Body: body}, true
}

// exprToParamPattern converts a single parenthesized expression into the
// parameter pattern it denotes when followed by `=>`, per the structural
// map in spec.md §4.2.
func exprToParamPattern(e ast.Expression) ast.Pattern {
	switch v := e.(type) {
	case *ast.Identifier:
		return &ast.IdentifierPattern{NodeSpan: v.NodeSpan, Name: v.Name}
	case *ast.Placeholder:
		return &ast.WildcardPattern{NodeSpan: v.NodeSpan}
	default:
		if e == nil {
			return &ast.WildcardPattern{}
		}
		return &ast.LiteralPattern{NodeSpan: e.Span(), Value: e}
	}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	start := p.cur.Span
	op := p.cur.Lexeme
	p.advance()
	operand := p.parseExpression(unaryPrec)
	span := start
	if operand != nil {
		span = source.Merge(start, operand.Span())
	}
	return &ast.UnaryExpression{NodeSpan: span, Operator: op, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	op := p.cur.Lexeme
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	span := left.Span()
	if right != nil {
		span = source.Merge(left.Span(), right.Span())
	}
	return &ast.BinaryExpression{NodeSpan: span, Operator: op, Left: left, Right: right}
}

func (p *Parser) parsePostfixQuestion(left ast.Expression) ast.Expression {
	return &ast.BinaryExpression{NodeSpan: source.Merge(left.Span(), p.cur.Span), Operator: "?", Left: left, Right: nil}
}

func (p *Parser) parsePipelineExpression(left ast.Expression) ast.Expression {
	pipe := &ast.PipelineExpression{}
	p.advance()
	if p.curIs(token.SEQ) {
		pipe.Seq = true
		p.advance()
	}
	if p.curIs(token.AT) {
		pipe.Parallel = p.parseParallelHint()
	}
	right := p.parseExpression(pipelinePrec - 1)
	pipe.Left = left
	pipe.Right = right
	pipe.NodeSpan = left.Span()
	if right != nil {
		pipe.NodeSpan = source.Merge(left.Span(), right.Span())
	}
	return pipe
}

func (p *Parser) parseParallelHint() *ast.ParallelHint {
	start := p.cur.Span
	p.advance() // '@'
	p.advance() // ident 'parallel', assumed by convention
	hint := &ast.ParallelHint{NodeSpan: start}
	if !p.curIs(token.LPAREN) {
		return hint
	}
	p.advance()
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		name := p.cur.Lexeme
		p.expect(token.COLON)
		p.advance()
		hint.Fields = append(hint.Fields, ast.RecordField{Name: name, Value: p.parseExpression(lowest)})
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	hint.NodeSpan = source.Merge(start, p.cur.Span)
	p.advance()
	return hint
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	start := callee.Span()
	var args []ast.Expression
	p.advance() // consume '('
	if p.curIs(token.RPAREN) {
		return &ast.CallExpression{NodeSpan: source.Merge(start, p.cur.Span), Callee: callee}
	}
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(lowest))
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
		} else {
			break
		}
	}
	end := p.cur.Span
	p.expect(token.RPAREN)
	return &ast.CallExpression{NodeSpan: source.Merge(start, end), Callee: callee, Args: args}
}

func (p *Parser) parseMemberExpression(obj ast.Expression) ast.Expression {
	p.advance() // consume '.'
	field := p.cur.Lexeme
	return &ast.MemberExpression{NodeSpan: source.Merge(obj.Span(), p.cur.Span), Object: obj, Field: field}
}

func (p *Parser) parseIndexExpression(obj ast.Expression) ast.Expression {
	p.advance() // consume '['
	idx := p.parseExpression(lowest)
	end := p.peek.Span
	p.expect(token.RBRACKET)
	return &ast.IndexExpression{NodeSpan: source.Merge(obj.Span(), end), Object: obj, Index: idx}
}

func (p *Parser) parseIfExpression() ast.Expression {
	start := p.cur.Span
	p.advance()
	cond := p.parseExpression(lowest)
	p.expect(token.THEN)
	p.advance()
	then := p.parseExpression(lowest)
	p.expect(token.ELSE)
	p.advance()
	els := p.parseExpression(lowest)
	span := start
	if els != nil {
		span = source.Merge(start, els.Span())
	}
	return &ast.IfExpression{NodeSpan: span, Condition: cond, Then: then, Else: els}
}

func (p *Parser) parseMatchExpression() ast.Expression {
	start := p.cur.Span
	p.advance()
	subject := p.parseExpression(lowest)
	p.expect(token.LBRACE)
	p.advance()
	p.skipNewlines()
	m := &ast.MatchExpression{NodeSpan: start, Subject: subject}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		arm := ast.MatchArm{}
		arm.Pattern = p.parsePattern()
		if p.peekIs(token.IF) {
			p.advance()
			p.advance()
			arm.Guard = p.parseExpression(lowest)
		}
		p.expect(token.ARROW_FAT)
		p.advance()
		arm.Body = p.parseExpression(lowest)
		m.Arms = append(m.Arms, arm)
		p.advance()
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
		}
	}
	end := p.cur.Span
	if !p.curIs(token.RBRACE) {
		p.errorf(diagnostics.PUnexpectedToken, p.cur.Span, "expected %s, got %s", token.RBRACE, p.cur.Kind)
	}
	m.NodeSpan = source.Merge(start, end)
	return m
}

func (p *Parser) parseDoExpression() ast.Expression {
	start := p.cur.Span
	ctx := ast.DoContextPure
	if p.peekIs(token.QUESTION) {
		p.advance()
		ctx = ast.DoContextResult
	}
	p.expect(token.LBRACE)
	p.advance()
	p.skipNewlines()
	d := &ast.DoExpression{NodeSpan: start, Context: ctx}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		d.Statements = append(d.Statements, p.parseDoStatement())
		p.advance()
		p.skipNewlines()
	}
	end := p.cur.Span
	if !p.curIs(token.RBRACE) {
		p.errorf(diagnostics.PUnexpectedToken, p.cur.Span, "expected %s, got %s", token.RBRACE, p.cur.Kind)
	}
	d.NodeSpan = source.Merge(start, end)
	return d
}

func (p *Parser) parseDoStatement() ast.DoStatement {
	if p.curIs(token.LET) {
		p.advance()
		pat := p.parsePattern()
		p.expect(token.ASSIGN)
		p.advance()
		awaited := false
		if p.curIs(token.DO) && p.peekIs(token.BANG) {
			awaited = true
			p.advance()
			p.advance()
		}
		expr := p.parseExpression(lowest)
		return ast.DoStatement{Kind: ast.DoLet, Pattern: pat, Awaited: awaited, Expression: expr}
	}
	if p.curIs(token.DO) && p.peekIs(token.BANG) {
		p.advance()
		p.advance()
		expr := p.parseExpression(lowest)
		return ast.DoStatement{Kind: ast.DoBang, Expression: expr}
	}
	expr := p.parseExpression(lowest)
	return ast.DoStatement{Kind: ast.DoBare, Expression: expr}
}

func (p *Parser) parseProvideExpression() ast.Expression {
	start := p.cur.Span
	p.advance()
	prov := &ast.ProvideExpression{NodeSpan: start}
	for {
		name := p.cur.Lexeme
		p.expect(token.COLON)
		p.advance()
		prov.Provisions = append(prov.Provisions, ast.Provision{Name: name, Value: p.parseExpression(lowest)})
		if p.peekIs(token.COMMA) {
			p.advance()
			p.advance()
			continue
		}
		break
	}
	p.expect(token.IN)
	p.advance()
	body := p.parseExpression(lowest)
	span := start
	if body != nil {
		span = source.Merge(start, body.Span())
	}
	prov.Body = body
	prov.NodeSpan = span
	return prov
}
