package ast

import "github.com/lambdawg/lambdawg/internal/source"

// --- Literals and identifiers -------------------------------------------

type IntLiteral struct {
	NodeSpan source.Span
	Value    int64
}

func (e *IntLiteral) Span() source.Span { return e.NodeSpan }
func (*IntLiteral) expressionNode()     {}

type FloatLiteral struct {
	NodeSpan source.Span
	Value    float64
}

func (e *FloatLiteral) Span() source.Span { return e.NodeSpan }
func (*FloatLiteral) expressionNode()     {}

type StringLiteral struct {
	NodeSpan source.Span
	Value    string
}

func (e *StringLiteral) Span() source.Span { return e.NodeSpan }
func (*StringLiteral) expressionNode()     {}

type CharLiteral struct {
	NodeSpan source.Span
	Value    rune
}

func (e *CharLiteral) Span() source.Span { return e.NodeSpan }
func (*CharLiteral) expressionNode()     {}

type BoolLiteral struct {
	NodeSpan source.Span
	Value    bool
}

func (e *BoolLiteral) Span() source.Span { return e.NodeSpan }
func (*BoolLiteral) expressionNode()     {}

// Identifier references a value binding (lowercase) or, used in call
// position, a constructor (uppercase); the parser distinguishes these by
// the token's case when building the call.
type Identifier struct {
	NodeSpan source.Span
	Name     string
}

func (e *Identifier) Span() source.Span { return e.NodeSpan }
func (*Identifier) expressionNode()     {}

// Placeholder is `_` in argument position: a hole that turns the
// enclosing call into a function of the remaining arguments.
type Placeholder struct {
	NodeSpan source.Span
}

func (e *Placeholder) Span() source.Span { return e.NodeSpan }
func (*Placeholder) expressionNode()     {}

// Spread is `...expr`, used inside list/record literals and call argument
// lists.
type Spread struct {
	NodeSpan source.Span
	Value    Expression
}

func (e *Spread) Span() source.Span { return e.NodeSpan }
func (*Spread) expressionNode()     {}

// --- Compound literals ---------------------------------------------------

// ListLiteral is `[e1, e2, ...]`.
type ListLiteral struct {
	NodeSpan source.Span
	Elements []Expression
}

func (e *ListLiteral) Span() source.Span { return e.NodeSpan }
func (*ListLiteral) expressionNode()     {}

// RecordField is one `name: value` pair in a record literal.
type RecordField struct {
	Name  string
	Value Expression
}

// RecordLiteral is `{ field: value, ..., ...spread }`. Spread may be nil.
type RecordLiteral struct {
	NodeSpan source.Span
	Fields   []RecordField
	Spread   Expression
}

func (e *RecordLiteral) Span() source.Span { return e.NodeSpan }
func (*RecordLiteral) expressionNode()     {}

// ConstructorLiteral is `Name { field: value, ... }`: syntactically a
// record literal tagged with a constructor name, indistinguishable from
// a plain call until the inferer/emitter resolve `Name`.
type ConstructorLiteral struct {
	NodeSpan source.Span
	Name     string
	Record   *RecordLiteral
}

func (e *ConstructorLiteral) Span() source.Span { return e.NodeSpan }
func (*ConstructorLiteral) expressionNode()     {}

// FunctionLiteral is `(p1, p2, ...) => body`.
type FunctionLiteral struct {
	NodeSpan source.Span
	Params   []Pattern
	Body     Expression
}

func (e *FunctionLiteral) Span() source.Span { return e.NodeSpan }
func (*FunctionLiteral) expressionNode()     {}

// --- Calls, access --------------------------------------------------------

// CallExpression is `callee(arg1, arg2, ...)`. Any argument may be a
// Placeholder or a Spread.
type CallExpression struct {
	NodeSpan source.Span
	Callee   Expression
	Args     []Expression
}

func (e *CallExpression) Span() source.Span { return e.NodeSpan }
func (*CallExpression) expressionNode()     {}

// HasPlaceholder reports whether any top-level argument is a
// Placeholder, which makes this call a partial application
// (spec.md §4.3, §9).
func (e *CallExpression) HasPlaceholder() bool {
	for _, a := range e.Args {
		if _, ok := a.(*Placeholder); ok {
			return true
		}
	}
	return false
}

// MemberExpression is `object.field`.
type MemberExpression struct {
	NodeSpan source.Span
	Object   Expression
	Field    string
}

func (e *MemberExpression) Span() source.Span { return e.NodeSpan }
func (*MemberExpression) expressionNode()     {}

// IndexExpression is `object[index]`.
type IndexExpression struct {
	NodeSpan source.Span
	Object   Expression
	Index    Expression
}

func (e *IndexExpression) Span() source.Span { return e.NodeSpan }
func (*IndexExpression) expressionNode()     {}

// --- Operators -------------------------------------------------------------

// UnaryExpression is a prefix `-` or `!`.
type UnaryExpression struct {
	NodeSpan source.Span
	Operator string
	Operand  Expression
}

func (e *UnaryExpression) Span() source.Span { return e.NodeSpan }
func (*UnaryExpression) expressionNode()     {}

// BinaryExpression covers every left-associative infix operator in the
// precedence table of spec.md §4.2, as well as the postfix `?` operator
// (which is modeled as a BinaryExpression with a nil Right for
// uniformity with the other operator dispatch in the inferer/emitter).
type BinaryExpression struct {
	NodeSpan source.Span
	Operator string
	Left     Expression
	Right    Expression // nil for the postfix `?` operator
}

func (e *BinaryExpression) Span() source.Span { return e.NodeSpan }
func (*BinaryExpression) expressionNode()     {}

// ParallelHint is the optional `@parallel(key: expr, ...)` annotation on
// a pipeline stage. Its fields are recorded verbatim and are not
// otherwise interpreted (spec.md §4.2, §9).
type ParallelHint struct {
	NodeSpan source.Span
	Fields   []RecordField
}

// PipelineExpression is `left |> right`, optionally marked `seq` and/or
// annotated with a `@parallel(...)` hint.
type PipelineExpression struct {
	NodeSpan source.Span
	Left     Expression
	Right    Expression
	Seq      bool
	Parallel *ParallelHint
}

func (e *PipelineExpression) Span() source.Span { return e.NodeSpan }
func (*PipelineExpression) expressionNode()     {}

// --- Control flow ----------------------------------------------------------

// IfExpression is `if cond then thenBranch else elseBranch`.
type IfExpression struct {
	NodeSpan    source.Span
	Condition   Expression
	Then        Expression
	Else        Expression
}

func (e *IfExpression) Span() source.Span { return e.NodeSpan }
func (*IfExpression) expressionNode()     {}

// MatchArm is one `pattern [if guard] => expression` arm of a match.
type MatchArm struct {
	Pattern Pattern
	Guard   Expression // nil when absent
	Body    Expression
}

// MatchExpression is `match subject { arm... }`. Arms are kept in
// source order (spec.md §4.2, §8 property 6).
type MatchExpression struct {
	NodeSpan source.Span
	Subject  Expression
	Arms     []MatchArm
}

func (e *MatchExpression) Span() source.Span { return e.NodeSpan }
func (*MatchExpression) expressionNode()     {}

// --- Do-notation -----------------------------------------------------------

// DoStatementKind distinguishes the three shapes a do-block statement
// can take (spec.md §4.2).
type DoStatementKind int

const (
	DoLet DoStatementKind = iota
	DoBang
	DoBare
)

// DoStatement is one statement inside a `do { ... }` block.
type DoStatement struct {
	Kind       DoStatementKind
	Pattern    Pattern    // set for DoLet
	Awaited    bool       // true when DoLet's value was written `do! expr`
	Expression Expression
}

// DoBlockContext tags whether a do-block is a plain sequencing context
// or a result-propagating one (`do? { ... }`), per spec.md §4.2.
type DoBlockContext int

const (
	DoContextPure DoBlockContext = iota
	DoContextResult
)

// DoExpression is `do { statements }` or `do? { statements }`.
type DoExpression struct {
	NodeSpan   source.Span
	Context    DoBlockContext
	Statements []DoStatement
}

func (e *DoExpression) Span() source.Span { return e.NodeSpan }
func (*DoExpression) expressionNode()     {}

// --- Provide / block ---------------------------------------------------------

// Provision is one `name: expr` entry of a `provide` block, supplying an
// ambient dependency.
type Provision struct {
	Name  string
	Value Expression
}

// ProvideExpression is `provide name: expr, ... in { body }`.
type ProvideExpression struct {
	NodeSpan   source.Span
	Provisions []Provision
	Body       Expression
}

func (e *ProvideExpression) Span() source.Span { return e.NodeSpan }
func (*ProvideExpression) expressionNode()     {}

// BlockStatement is one statement inside a `{ ... }` block expression:
// either a `let` binding or a bare expression.
type BlockStatement struct {
	Let   *LetStatement // non-nil for a `let` binding inside the block
	Value Expression    // non-nil for a bare expression statement
}

// BlockExpression is `{ statements... trailingExpr? }`, distinguished
// from a record literal by the lookahead rule in spec.md §4.2.
type BlockExpression struct {
	NodeSpan   source.Span
	Statements []BlockStatement
	Trailing   Expression // nil when the block has no trailing expression
}

func (e *BlockExpression) Span() source.Span { return e.NodeSpan }
func (*BlockExpression) expressionNode()     {}
