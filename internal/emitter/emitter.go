// Package emitter lowers the AST to JavaScript source text per the
// syntax-directed contracts of spec.md §4.4. It never consults inferred
// types; a node's own shape fully determines its lowering.
package emitter

import (
	"fmt"
	"strings"

	"github.com/lambdawg/lambdawg/internal/ast"
)

// reservedWords are target-language identifiers a `let`-bound name would
// collide with; a collision is resolved with a single underscore prefix
// at every use site (spec.md §4.4).
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
	"let": true, "static": true, "await": true, "async": true, "null": true,
	"true": true, "false": true, "undefined": true,
}

// emitter holds the indentation and fresh-name state of one emission
// pass. Fresh names are deterministic (counted, not random) so golden
// fixtures are stable across runs.
type emitter struct {
	buf      strings.Builder
	indent   int
	freshSeq int
}

// Emit lowers prog to a single JavaScript source string, prefixed with
// the runtime prelude (spec.md §4.4).
func Emit(prog *ast.Program) string {
	e := &emitter{}
	e.writeLine(strings.TrimRight(prelude, "\n"))
	e.writeLine("")

	for _, mod := range prog.Modules {
		e.emitModule(mod)
	}
	for _, stmt := range prog.Statements {
		e.emitStatement(stmt)
	}
	return e.buf.String()
}

func (e *emitter) fresh(prefix string) string {
	e.freshSeq++
	return fmt.Sprintf("__%s%d", prefix, e.freshSeq)
}

func jsName(name string) string {
	if reservedWords[name] {
		return "_" + name
	}
	return name
}

func (e *emitter) writeLine(s string) {
	if s == "" {
		e.buf.WriteString("\n")
		return
	}
	e.buf.WriteString(strings.Repeat("  ", e.indent))
	e.buf.WriteString(s)
	e.buf.WriteString("\n")
}

func (e *emitter) write(s string) {
	e.buf.WriteString(s)
}

// emitModule lowers `module Name { ... }` to a self-executing scope
// binding its non-private declarations and yielding a record of their
// names (spec.md §4.4).
func (e *emitter) emitModule(mod *ast.Module) {
	e.writeLine(fmt.Sprintf("const %s = (() => {", jsName(mod.Name)))
	e.indent++

	var exported []string
	for _, stmt := range mod.Statements {
		e.emitStatement(stmt)
		if let, ok := stmt.(*ast.LetStatement); ok && !let.Private {
			exported = append(exported, let.Name)
		}
	}

	e.write(strings.Repeat("  ", e.indent))
	e.write("return { ")
	for i, name := range exported {
		if i > 0 {
			e.write(", ")
		}
		e.write(fmt.Sprintf("%s: %s", name, jsName(name)))
	}
	e.writeLine(" };")

	e.indent--
	e.writeLine("})();")
}

func (e *emitter) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		e.emitLetStatement(s)
	case *ast.TypeDefStatement:
		e.emitTypeDefStatement(s)
	case *ast.ImportStatement:
		e.emitImportStatement(s)
	case *ast.ExpressionStatement:
		if s.Expression != nil {
			e.writeLine(e.expr(s.Expression) + ";")
		}
	}
}

// emitLetStatement lowers a let-statement per spec.md §4.4: with
// ambients it becomes a function of those parameters; without, a direct
// binding. A reserved-word clash is renamed at its binding site (call
// sites go through jsName too, via emitIdentifierRef-equivalent paths in
// expr()).
func (e *emitter) emitLetStatement(s *ast.LetStatement) {
	name := jsName(s.Name)
	if len(s.Ambients) == 0 {
		e.writeLine(fmt.Sprintf("const %s = %s;", name, e.expr(s.Value)))
		return
	}
	params := make([]string, len(s.Ambients))
	for i, a := range s.Ambients {
		params[i] = jsName(a.Name)
	}
	e.writeLine(fmt.Sprintf("const %s = (%s) => %s;", name, strings.Join(params, ", "), e.expr(s.Value)))
}

// emitTypeDefStatement lowers each sum-type variant into a constructor
// function (or a nullary tagged value) bound to its name, so that a
// ConstructorLiteral's callee resolves exactly like any other binding.
func (e *emitter) emitTypeDefStatement(s *ast.TypeDefStatement) {
	for _, v := range s.Variants {
		if v.Fields == nil {
			e.writeLine(fmt.Sprintf("const %s = { __tag: %q };", jsName(v.Name), v.Name))
			continue
		}
		e.writeLine(fmt.Sprintf("const %s = (fields) => ({ __tag: %q, ...fields });", jsName(v.Name), v.Name))
	}
}

func (e *emitter) emitImportStatement(s *ast.ImportStatement) {
	if s.ImportAll {
		e.writeLine(fmt.Sprintf("import * as %s from %q;", jsName(s.ModulePath), s.ModulePath))
		return
	}
	names := make([]string, len(s.Specs))
	for i, spec := range s.Specs {
		if spec.Alias != "" {
			names[i] = fmt.Sprintf("%s as %s", spec.Name, jsName(spec.Alias))
		} else {
			names[i] = jsName(spec.Name)
		}
	}
	e.writeLine(fmt.Sprintf("import { %s } from %q;", strings.Join(names, ", "), s.ModulePath))
}
