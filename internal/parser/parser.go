// Package parser implements a Pratt (precedence-climbing) expression
// parser combined with recursive-descent statement parsing, following
// the structure of the teacher's internal/parser package
// (github.com/funvibe/funxy): curToken/peekToken with prefix/infix
// dispatch maps keyed by token.Kind, and a recursion-depth guard on
// parseExpression.
package parser

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/source"
	"github.com/lambdawg/lambdawg/internal/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2's operator table.
type precedence int

const (
	lowest precedence = iota
	orPrec
	andPrec
	equalsPrec
	compPrec
	sumPrec
	productPrec
	unaryPrec
	pipelinePrec
	postfixQuestionPrec
	callPrec
)

var precedences = map[token.Kind]precedence{
	token.OR:       orPrec,
	token.AND:      andPrec,
	token.EQ:       equalsPrec,
	token.NOT_EQ:   equalsPrec,
	token.LT:       compPrec,
	token.GT:       compPrec,
	token.LTE:      compPrec,
	token.GTE:      compPrec,
	token.PLUS:     sumPrec,
	token.MINUS:    sumPrec,
	token.STAR:     productPrec,
	token.SLASH:    productPrec,
	token.PERCENT:  productPrec,
	token.PIPELINE: pipelinePrec,
	token.QUESTION: postfixQuestionPrec,
	token.LPAREN:   callPrec,
	token.DOT:      callPrec,
	token.LBRACKET: callPrec,
}

const maxRecursionDepth = 250

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into a Program, collecting diagnostics
// into a Bag rather than stopping at the first error (spec.md §5).
type Parser struct {
	tokens []token.Token
	pos    int

	cur  token.Token
	peek token.Token

	diags diagnostics.Bag
	depth int

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New constructs a Parser over tokens, which must be terminated with an
// EOF token (as produced by lexer.Tokenize).
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.prefixFns = map[token.Kind]prefixParseFn{}
	p.infixFns = map[token.Kind]infixParseFn{}

	p.registerPrefix(token.INT, p.parseIntLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.CHAR, p.parseCharLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolLiteral)
	p.registerPrefix(token.FALSE, p.parseBoolLiteral)
	p.registerPrefix(token.IDENT_LOWER, p.parseIdentifier)
	p.registerPrefix(token.IDENT_UPPER, p.parseIdentifierOrConstructor)
	p.registerPrefix(token.WILDCARD, p.parsePlaceholder)
	p.registerPrefix(token.ELLIPSIS, p.parseSpread)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LBRACE, p.parseRecordOrBlockLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrFunctionLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.BANG, p.parseUnaryExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.MATCH, p.parseMatchExpression)
	p.registerPrefix(token.DO, p.parseDoExpression)
	p.registerPrefix(token.PROVIDE, p.parseProvideExpression)

	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.STAR, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.PERCENT, p.parseBinaryExpression)
	p.registerInfix(token.EQ, p.parseBinaryExpression)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.LT, p.parseBinaryExpression)
	p.registerInfix(token.GT, p.parseBinaryExpression)
	p.registerInfix(token.LTE, p.parseBinaryExpression)
	p.registerInfix(token.GTE, p.parseBinaryExpression)
	p.registerInfix(token.AND, p.parseBinaryExpression)
	p.registerInfix(token.OR, p.parseBinaryExpression)
	p.registerInfix(token.QUESTION, p.parsePostfixQuestion)
	p.registerInfix(token.PIPELINE, p.parsePipelineExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(k token.Kind, fn prefixParseFn) { p.prefixFns[k] = fn }
func (p *Parser) registerInfix(k token.Kind, fn infixParseFn)   { p.infixFns[k] = fn }

func (p *Parser) advance() {
	p.cur = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = token.Token{Kind: token.EOF}
	}
	// Statement-level newlines are structurally insignificant to the
	// expression grammar; callers that care (block/do bodies) consume
	// them explicitly via skipNewlines.
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) expect(k token.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}
	p.errorf(diagnostics.PUnexpectedToken, p.peek.Span,
		"expected %s, got %s", k, p.peek.Kind)
	return false
}

func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) errorf(code diagnostics.Code, span source.Span, format string, args ...any) {
	p.diags.Add(diagnostics.NewErrorf(code, span, format, args...))
}

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peek.Kind]; ok {
		return pr
	}
	return lowest
}

func (p *Parser) curPrecedence() precedence {
	if pr, ok := precedences[p.cur.Kind]; ok {
		return pr
	}
	return lowest
}

// Parse consumes the full token stream and returns the resulting
// Program together with every diagnostic collected along the way.
func Parse(tokens []token.Token, filename string) (*ast.Program, diagnostics.Bag) {
	p := New(tokens)
	prog := p.parseProgram()
	p.diags.Attach("", filename)
	return prog, p.diags
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.curIs(token.EOF) {
		if p.curIs(token.MODULE) {
			prog.Modules = append(prog.Modules, p.parseModule())
		} else {
			stmt := p.parseStatement()
			if stmt != nil {
				prog.Statements = append(prog.Statements, stmt)
			}
		}
		p.advance()
		p.skipNewlines()
	}
	return prog
}

func (p *Parser) parseModule() *ast.Module {
	start := p.cur.Span
	p.advance() // consume 'module'
	if !p.curIs(token.IDENT_UPPER) {
		p.errorf(diagnostics.PExpectedIdent, p.cur.Span, "expected a module identifier, got %s", p.cur.Kind)
	}
	name := p.cur.Lexeme
	p.expect(token.LBRACE)
	p.advance()
	p.skipNewlines()

	mod := &ast.Module{Name: name}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			mod.Statements = append(mod.Statements, stmt)
		}
		p.advance()
		p.skipNewlines()
	}
	mod.NodeSpan = source.Merge(start, p.cur.Span)
	if !p.curIs(token.RBRACE) {
		p.errorf(diagnostics.PUnexpectedToken, p.cur.Span, "expected %s, got %s", token.RBRACE, p.cur.Kind)
	}
	return mod
}

func (p *Parser) synchronize() {
	for !p.curIs(token.NEWLINE) && !p.curIs(token.EOF) {
		p.advance()
	}
}

// withDepthGuard runs fn, guarding against runaway recursion the way the
// teacher's parseExpression does: past maxRecursionDepth it records a
// diagnostic and returns nil without calling fn. It does not move the
// token cursor; callers see the nil result and carry on from there.
func (p *Parser) withDepthGuard(span source.Span, fn func() ast.Expression) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxRecursionDepth {
		p.errorf(diagnostics.PUnexpectedToken, span, "expression nested too deeply")
		return nil
	}
	return fn()
}
