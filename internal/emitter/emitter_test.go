package emitter_test

import (
	"strings"
	"testing"

	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/emitter"
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

func TestEmitIncludesPrelude(t *testing.T) {
	code := emitter.Emit(mustParse(t, "let x = 1"))
	if !strings.Contains(code, "const __lambdawg = {") {
		t.Fatalf("expected prelude object in output:\n%s", code)
	}
	if !strings.Contains(code, "const x = 1;") {
		t.Fatalf("expected const binding in output:\n%s", code)
	}
}

func TestEmitReservedWordRename(t *testing.T) {
	code := emitter.Emit(mustParse(t, "let class = 1"))
	if !strings.Contains(code, "const _class = 1;") {
		t.Fatalf("expected renamed reserved-word binding:\n%s", code)
	}
}

func TestEmitAmbientLetBecomesCurriedFunction(t *testing.T) {
	code := emitter.Emit(mustParse(t, "let greet with name = name"))
	if !strings.Contains(code, "const greet = (name) => name;") {
		t.Fatalf("expected curried function for ambient let:\n%s", code)
	}
}

func TestEmitPlaceholderCallBecomesClosure(t *testing.T) {
	code := emitter.Emit(mustParse(t, `
let add = (a, b) => a + b
let addOne = add(_, 1)
`))
	if !strings.Contains(code, "=> add(") {
		t.Fatalf("expected a fresh closure over the placeholder call:\n%s", code)
	}
}

func TestEmitPipelineBecomesPipeCall(t *testing.T) {
	code := emitter.Emit(mustParse(t, "let r = xs |> map(f)"))
	if !strings.Contains(code, "pipe(xs, map(f))") {
		t.Fatalf("expected pipe() call:\n%s", code)
	}
}

func TestEmitMatchNonExhaustiveThrows(t *testing.T) {
	code := emitter.Emit(mustParse(t, `let r = match x {
  0 => "zero"
}`))
	if !strings.Contains(code, `throw new Error("non-exhaustive pattern match")`) {
		t.Fatalf("expected non-exhaustive throw in match lowering:\n%s", code)
	}
}

func TestEmitConstructorLiteralBecomesCall(t *testing.T) {
	code := emitter.Emit(mustParse(t, `
type Point = { x: Int, y: Int }
let origin = Point{ x: 0, y: 0 }
`))
	if !strings.Contains(code, "origin = Point({ x: 0, y: 0 })") {
		t.Fatalf("expected constructor literal lowered to a call:\n%s", code)
	}
}

func TestEmitErrorPropagationUnwraps(t *testing.T) {
	code := emitter.Emit(mustParse(t, "let r = risky()?"))
	if !strings.Contains(code, "unwrap(risky())") {
		t.Fatalf("expected unwrap() call for '?':\n%s", code)
	}
}

func TestEmitRecordSpreadFieldsOverride(t *testing.T) {
	code := emitter.Emit(mustParse(t, "let r = { ...base, x: 1 }"))
	if !strings.Contains(code, "{ ...base, x: 1 }") {
		t.Fatalf("expected spread-then-explicit-fields ordering:\n%s", code)
	}
}
