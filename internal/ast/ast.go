// Package ast defines the closed family of syntax tree nodes produced by
// the parser and consumed by the inferer and emitter.
package ast

import "github.com/lambdawg/lambdawg/internal/source"

// Node is the base interface every syntax tree node satisfies.
type Node interface {
	Span() source.Span
}

// Statement is a top-level or block-level statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is any node usable on the left of a binding: a `let`, a
// function parameter, or a `match` arm.
type Pattern interface {
	Node
	patternNode()
}

// Type is a type expression appearing in source (an annotation, a type
// alias body, a constructor field).
type Type interface {
	Node
	typeNode()
}

// Program is the root node: zero or more modules followed by zero or
// more top-level statements, in source order.
type Program struct {
	File       string
	Modules    []*Module
	Statements []Statement
}

func (p *Program) Span() source.Span {
	return source.MergeAll(spansOfModules(p.Modules), spansOfStatements(p.Statements))
}

func spansOfModules(ms []*Module) source.Span {
	var s source.Span
	for _, m := range ms {
		s = source.Merge(s, m.Span())
	}
	return s
}

func spansOfStatements(ss []Statement) source.Span {
	var s source.Span
	for _, st := range ss {
		s = source.Merge(s, st.Span())
	}
	return s
}

// Module is a named group of statements: `module Name { ... }`.
type Module struct {
	NodeSpan   source.Span
	Name       string
	Statements []Statement
}

func (m *Module) Span() source.Span { return m.NodeSpan }

// --- Statements ---------------------------------------------------------

// AmbientParam is one entry of a `with` clause on a Let statement:
// `name` or `name: Type`.
type AmbientParam struct {
	Name           string
	TypeAnnotation Type
}

// LetStatement binds an expression to a name, optionally with a type
// annotation, an ambient-dependency list, and a privacy flag.
type LetStatement struct {
	NodeSpan       source.Span
	Private        bool
	Name           string
	Ambients       []AmbientParam
	TypeAnnotation Type
	Value          Expression
}

func (s *LetStatement) Span() source.Span { return s.NodeSpan }
func (*LetStatement) statementNode()      {}

// TypeVariant is one constructor of a sum type: `Name` or
// `Name { field: Type, ... }`.
type TypeVariant struct {
	Name   string
	Fields *RecordType // nil when the variant carries no payload
}

// TypeDefStatement declares a named type: either a sum type (one or
// more variants) or a type alias (any type expression).
type TypeDefStatement struct {
	NodeSpan   source.Span
	Name       string
	Params     []string
	Variants   []TypeVariant // non-nil for a sum type
	AliasOf    Type          // non-nil for a type alias
}

func (s *TypeDefStatement) Span() source.Span { return s.NodeSpan }
func (*TypeDefStatement) statementNode()      {}

// IsAlias reports whether this type definition is a plain alias rather
// than a sum type.
func (s *TypeDefStatement) IsAlias() bool { return s.AliasOf != nil }

// ImportSpec names one imported binding, with an optional local alias.
type ImportSpec struct {
	Name  string
	Alias string // empty when no `as` clause is present
}

// ImportStatement brings bindings from another module (or, when JS is
// true, a host-language module) into scope.
type ImportStatement struct {
	NodeSpan   source.Span
	JS         bool
	ModulePath string
	ImportAll  bool // true for `{ * }`
	Specs      []ImportSpec
}

func (s *ImportStatement) Span() source.Span { return s.NodeSpan }
func (*ImportStatement) statementNode()      {}

// ExpressionStatement is a bare expression used for its effect.
type ExpressionStatement struct {
	NodeSpan   source.Span
	Expression Expression
}

func (s *ExpressionStatement) Span() source.Span { return s.NodeSpan }
func (*ExpressionStatement) statementNode()      {}
