package parser_test

import (
	"strings"
	"testing"

	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/lexer"
	"github.com/lambdawg/lambdawg/internal/parser"
)

func parse(t *testing.T, src string) (*ast.Program, diagnostics.Bag) {
	t.Helper()
	toks, lexDiags := lexer.New(src).Tokenize()
	if len(lexDiags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %v", lexDiags)
	}
	return parser.Parse(toks, "test.lwg")
}

func requireNoErrors(t *testing.T, diags diagnostics.Bag) {
	t.Helper()
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Errors())
	}
}

func TestParseLetStatement(t *testing.T) {
	prog, diags := parse(t, "let x = 1")
	requireNoErrors(t, diags)
	if len(prog.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Statements))
	}
	let, ok := prog.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("want *ast.LetStatement, got %T", prog.Statements[0])
	}
	if let.Name != "x" {
		t.Fatalf("want name x, got %q", let.Name)
	}
	if _, ok := let.Value.(*ast.IntLiteral); !ok {
		t.Fatalf("want IntLiteral value, got %T", let.Value)
	}
}

func TestParsePrivateLetWithAmbients(t *testing.T) {
	prog, diags := parse(t, "private let greet with name = name")
	requireNoErrors(t, diags)
	let := prog.Statements[0].(*ast.LetStatement)
	if !let.Private {
		t.Fatalf("expected private flag")
	}
	if len(let.Ambients) != 1 || let.Ambients[0].Name != "name" {
		t.Fatalf("expected one ambient param 'name', got %v", let.Ambients)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  string // described shape, checked structurally below
	}{
		{"1 + 2 * 3", "+(*)"},
		{"1 * 2 + 3", "+(*)"},
		{"a || b && c", "||(&&)"},
	}
	for _, c := range cases {
		prog, diags := parse(t, "let r = "+c.input)
		requireNoErrors(t, diags)
		let := prog.Statements[0].(*ast.LetStatement)
		bin, ok := let.Value.(*ast.BinaryExpression)
		if !ok {
			t.Fatalf("%s: want top-level BinaryExpression, got %T", c.input, let.Value)
		}
		op, rest, _ := strings.Cut(c.want, "(")
		inner := strings.TrimSuffix(rest, ")")
		if bin.Operator != op {
			t.Fatalf("%s: want top-level operator %s, got %s", c.input, op, bin.Operator)
		}
		l, lok := bin.Left.(*ast.BinaryExpression)
		r, rok := bin.Right.(*ast.BinaryExpression)
		if !(lok && l.Operator == inner) && !(rok && r.Operator == inner) {
			t.Fatalf("%s: want a nested %s operand under %s, got %#v and %#v", c.input, inner, op, bin.Left, bin.Right)
		}
	}
}

func TestPipelineLowerThanCall(t *testing.T) {
	prog, diags := parse(t, "let r = xs |> map(f)")
	requireNoErrors(t, diags)
	let := prog.Statements[0].(*ast.LetStatement)
	pipe, ok := let.Value.(*ast.PipelineExpression)
	if !ok {
		t.Fatalf("want PipelineExpression, got %T", let.Value)
	}
	if _, ok := pipe.Right.(*ast.CallExpression); !ok {
		t.Fatalf("want right side to already be a call, got %T", pipe.Right)
	}
}

func TestPlaceholderCall(t *testing.T) {
	prog, diags := parse(t, "let r = add(_, 1)")
	requireNoErrors(t, diags)
	let := prog.Statements[0].(*ast.LetStatement)
	call := let.Value.(*ast.CallExpression)
	if !call.HasPlaceholder() {
		t.Fatalf("expected HasPlaceholder true")
	}
}

func TestRecordLiteralAndMember(t *testing.T) {
	prog, diags := parse(t, "let r = { x: 1, y: 2 }.x")
	requireNoErrors(t, diags)
	let := prog.Statements[0].(*ast.LetStatement)
	member, ok := let.Value.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("want MemberExpression, got %T", let.Value)
	}
	if member.Field != "x" {
		t.Fatalf("want field x, got %q", member.Field)
	}
	rec, ok := member.Object.(*ast.RecordLiteral)
	if !ok || len(rec.Fields) != 2 {
		t.Fatalf("want 2-field record, got %#v", member.Object)
	}
}

func TestMatchExpressionArms(t *testing.T) {
	src := `let r = match x {
  0 => "zero",
  n => "other"
}`
	prog, diags := parse(t, src)
	requireNoErrors(t, diags)
	let := prog.Statements[0].(*ast.LetStatement)
	m, ok := let.Value.(*ast.MatchExpression)
	if !ok {
		t.Fatalf("want MatchExpression, got %T", let.Value)
	}
	if len(m.Arms) != 2 {
		t.Fatalf("want 2 arms, got %d", len(m.Arms))
	}
}

func TestModuleStatement(t *testing.T) {
	src := `module Math {
  let square = (x) => x * x
}`
	prog, diags := parse(t, src)
	requireNoErrors(t, diags)
	if len(prog.Modules) != 1 {
		t.Fatalf("want 1 module, got %d", len(prog.Modules))
	}
	if prog.Modules[0].Name != "Math" {
		t.Fatalf("want module name Math, got %q", prog.Modules[0].Name)
	}
}

func TestUnclosedParenProducesDiagnostic(t *testing.T) {
	_, diags := parse(t, "let x = (1 + 2")
	if !diags.HasErrors() {
		t.Fatalf("expected a parse error for unclosed paren")
	}
}

func TestDeeplyNestedExpressionDoesNotPanic(t *testing.T) {
	src := "let x = "
	for i := 0; i < 400; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 400; i++ {
		src += ")"
	}
	_, diags := parse(t, src)
	if !diags.HasErrors() {
		t.Fatalf("expected a recursion-depth diagnostic for 400-deep nesting")
	}
}
