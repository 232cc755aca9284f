package ast

import "github.com/lambdawg/lambdawg/internal/source"

// IdentifierPattern captures the matched value under a name.
type IdentifierPattern struct {
	NodeSpan source.Span
	Name     string
}

func (p *IdentifierPattern) Span() source.Span { return p.NodeSpan }
func (*IdentifierPattern) patternNode()        {}

// LiteralPattern matches a literal value exactly.
type LiteralPattern struct {
	NodeSpan source.Span
	Value    Expression // one of IntLiteral/FloatLiteral/StringLiteral/CharLiteral/BoolLiteral
}

func (p *LiteralPattern) Span() source.Span { return p.NodeSpan }
func (*LiteralPattern) patternNode()        {}

// WildcardPattern is `_`: matches anything, binds nothing.
type WildcardPattern struct {
	NodeSpan source.Span
}

func (p *WildcardPattern) Span() source.Span { return p.NodeSpan }
func (*WildcardPattern) patternNode()        {}

// RestPattern is `...name` or bare `...`, used as the tail of a list
// pattern.
type RestPattern struct {
	NodeSpan source.Span
	Name     string // empty when unnamed
}

func (p *RestPattern) Span() source.Span { return p.NodeSpan }
func (*RestPattern) patternNode()        {}

// ListPattern is `[p1, p2, ..., ...rest]`; Rest is nil when absent.
type ListPattern struct {
	NodeSpan source.Span
	Elements []Pattern
	Rest     *RestPattern
}

func (p *ListPattern) Span() source.Span { return p.NodeSpan }
func (*ListPattern) patternNode()        {}

// RecordPatternField is `name` or `name: pattern` inside a record
// pattern; Pattern is nil when the field binds its own name directly.
type RecordPatternField struct {
	Name    string
	Pattern Pattern
}

// RecordPattern is `{ field[: pattern], ..., ...? }`.
type RecordPattern struct {
	NodeSpan  source.Span
	Fields    []RecordPatternField
	HasRest   bool
}

func (p *RecordPattern) Span() source.Span { return p.NodeSpan }
func (*RecordPattern) patternNode()        {}

// ConstructorPattern matches a tagged value: `Name`, `Name(pattern)`, or
// `Name { field[: pattern], ... }`.
type ConstructorPattern struct {
	NodeSpan source.Span
	Name     string
	Record   *RecordPattern // non-nil for `Name { ... }`
	Inner    Pattern        // non-nil for `Name(pattern)`
}

func (p *ConstructorPattern) Span() source.Span { return p.NodeSpan }
func (*ConstructorPattern) patternNode()        {}
