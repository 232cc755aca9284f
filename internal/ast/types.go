package ast

import "github.com/lambdawg/lambdawg/internal/source"

// NamedType is a bare or applied type constructor reference: `Int`,
// `List a`, `Option String`.
type NamedType struct {
	NodeSpan source.Span
	Name     string
	Args     []Type
}

func (t *NamedType) Span() source.Span { return t.NodeSpan }
func (*NamedType) typeNode()           {}

// FunctionType is `(T1, T2, ...) -> R`.
type FunctionType struct {
	NodeSpan source.Span
	Params   []Type
	Return   Type
}

func (t *FunctionType) Span() source.Span { return t.NodeSpan }
func (*FunctionType) typeNode()           {}

// RecordTypeField is one `name: Type` entry of a record type
// expression.
type RecordTypeField struct {
	Name string
	Type Type
}

// RecordType is `{ field: Type, ... }`, optionally row-open.
type RecordType struct {
	NodeSpan source.Span
	Fields   []RecordTypeField
	Open     bool
}

func (t *RecordType) Span() source.Span { return t.NodeSpan }
func (*RecordType) typeNode()           {}

// ListType is `[T]`.
type ListType struct {
	NodeSpan source.Span
	Element  Type
}

func (t *ListType) Span() source.Span { return t.NodeSpan }
func (*ListType) typeNode()           {}

// ParenthesizedType is `(T)`, kept distinct from its inner type only to
// preserve source spans; it carries no semantic weight of its own.
type ParenthesizedType struct {
	NodeSpan source.Span
	Inner    Type
}

func (t *ParenthesizedType) Span() source.Span { return t.NodeSpan }
func (*ParenthesizedType) typeNode()           {}
