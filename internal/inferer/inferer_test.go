package inferer_test

import (
	"testing"

	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/inferer"
	"github.com/lambdawg/lambdawg/internal/lexer"
	"github.com/lambdawg/lambdawg/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexDiags := lexer.New(src).Tokenize()
	if len(lexDiags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %v", lexDiags)
	}
	prog, diags := parser.Parse(toks, "test.lwg")
	if diags.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", diags.Errors())
	}
	return prog
}

func TestInferIntLiteral(t *testing.T) {
	prog := mustParse(t, "let x = 1")
	types, diags := inferer.Infer(prog)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Errors())
	}
	let := prog.Statements[0].(*ast.LetStatement)
	got := types[let.Value]
	if got == nil || got.String() != "Int" {
		t.Fatalf("want Int, got %v", got)
	}
}

func TestInferFunctionLiteralGeneralizes(t *testing.T) {
	prog := mustParse(t, "let id = (x) => x\nlet a = id(1)\nlet b = id(\"s\")")
	_, diags := inferer.Infer(prog)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Errors())
	}
}

func TestInferTypeMismatchReported(t *testing.T) {
	prog := mustParse(t, `let x = 1 + "oops"`)
	_, diags := inferer.Infer(prog)
	if !diags.HasErrors() {
		t.Fatalf("expected a type mismatch diagnostic")
	}
	found := false
	for _, d := range diags.Errors() {
		if d.Code == "T001" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected T001 among %v", diags.Errors())
	}
}

func TestInferSelfRecursiveLet(t *testing.T) {
	src := `let countdown = (n) => if n == 0 then 0 else countdown(n - 1)`
	prog := mustParse(t, src)
	_, diags := inferer.Infer(prog)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Errors())
	}
}

func TestInferOpenRecordMember(t *testing.T) {
	src := `let getX = (r) => r.x`
	prog := mustParse(t, src)
	_, diags := inferer.Infer(prog)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Errors())
	}
}

func TestInferMissingFieldOnClosedRecord(t *testing.T) {
	src := `let r = { x: 1 }.y`
	prog := mustParse(t, src)
	_, diags := inferer.Infer(prog)
	if !diags.HasErrors() {
		t.Fatalf("expected a missing-field diagnostic")
	}
}

func TestInferPlaceholderCallProducesFunction(t *testing.T) {
	src := `
let add = (a, b) => a + b
let addOne = add(_, 1)
`
	prog := mustParse(t, src)
	types, diags := inferer.Infer(prog)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Errors())
	}
	let := prog.Statements[1].(*ast.LetStatement)
	got := types[let.Value]
	if got == nil {
		t.Fatalf("expected a recorded type for addOne's value")
	}
	if got.String() != "(Int) -> Int" {
		t.Fatalf("want (Int) -> Int, got %v", got)
	}
}

func TestInferUndefinedVariable(t *testing.T) {
	prog := mustParse(t, "let x = doesNotExist")
	_, diags := inferer.Infer(prog)
	if !diags.HasErrors() {
		t.Fatalf("expected an undefined-variable diagnostic")
	}
}
