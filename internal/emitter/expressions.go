package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lambdawg/lambdawg/internal/ast"
)

// expr lowers e to a single JavaScript expression string.
func (e *emitter) expr(node ast.Expression) string {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return strconv.FormatInt(n.Value, 10)
	case *ast.FloatLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *ast.StringLiteral:
		return strconv.Quote(n.Value)
	case *ast.CharLiteral:
		return strconv.Quote(string(n.Value))
	case *ast.BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return jsName(n.Name)
	case *ast.Placeholder:
		return "undefined"
	case *ast.Spread:
		return "..." + e.expr(n.Value)
	case *ast.ListLiteral:
		return e.listLiteral(n)
	case *ast.RecordLiteral:
		return e.recordLiteral(n)
	case *ast.ConstructorLiteral:
		return fmt.Sprintf("%s(%s)", jsName(n.Name), e.recordLiteral(n.Record))
	case *ast.FunctionLiteral:
		return e.functionLiteral(n)
	case *ast.CallExpression:
		return e.callExpression(n)
	case *ast.MemberExpression:
		return fmt.Sprintf("%s.%s", e.expr(n.Object), n.Field)
	case *ast.IndexExpression:
		return fmt.Sprintf("%s[%s]", e.expr(n.Object), e.expr(n.Index))
	case *ast.UnaryExpression:
		return fmt.Sprintf("(%s%s)", n.Operator, e.expr(n.Operand))
	case *ast.BinaryExpression:
		return e.binaryExpression(n)
	case *ast.PipelineExpression:
		return fmt.Sprintf("pipe(%s, %s)", e.expr(n.Left), e.expr(n.Right))
	case *ast.IfExpression:
		return fmt.Sprintf("(%s ? %s : %s)", e.expr(n.Condition), e.expr(n.Then), e.expr(n.Else))
	case *ast.MatchExpression:
		return e.matchExpression(n)
	case *ast.DoExpression:
		return e.doExpression(n)
	case *ast.ProvideExpression:
		return e.provideExpression(n)
	case *ast.BlockExpression:
		return e.blockExpression(n)
	default:
		return "undefined"
	}
}

func (e *emitter) listLiteral(n *ast.ListLiteral) string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		parts[i] = e.expr(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// recordLiteral emits a spread's fields first, followed by explicit
// fields, so later writes win as spec.md §4.4 requires.
func (e *emitter) recordLiteral(n *ast.RecordLiteral) string {
	if n == nil {
		return "{}"
	}
	var parts []string
	if n.Spread != nil {
		parts = append(parts, "..."+e.expr(n.Spread))
	}
	for _, f := range n.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, e.expr(f.Value)))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (e *emitter) functionLiteral(n *ast.FunctionLiteral) string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = e.patternAsParam(p)
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(params, ", "), e.expr(n.Body))
}

// calleeExpr emits callee, parenthesizing a bare function literal so it
// is called rather than folded into the arrow's body (`(a) => a(x)` vs
// `((a) => a)(x)`).
func (e *emitter) calleeExpr(callee ast.Expression) string {
	if _, ok := callee.(*ast.FunctionLiteral); ok {
		return "(" + e.expr(callee) + ")"
	}
	return e.expr(callee)
}

// patternAsParam emits a parameter pattern as a JS formal parameter,
// using destructuring for compound patterns.
func (e *emitter) patternAsParam(p ast.Pattern) string {
	switch pp := p.(type) {
	case *ast.IdentifierPattern:
		return jsName(pp.Name)
	case *ast.WildcardPattern:
		return e.fresh("_")
	case *ast.RecordPattern:
		names := make([]string, 0, len(pp.Fields))
		for _, f := range pp.Fields {
			names = append(names, f.Name)
		}
		return "{ " + strings.Join(names, ", ") + " }"
	default:
		return e.fresh("arg")
	}
}

// callExpression lowers a call with any placeholder argument to a fresh
// closure whose parameters are the positional fill-ins, invoking the
// original callee with the placeholders substituted at their original
// indices (spec.md §4.4).
func (e *emitter) callExpression(n *ast.CallExpression) string {
	if !n.HasPlaceholder() {
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = e.expr(a)
		}
		return fmt.Sprintf("%s(%s)", e.calleeExpr(n.Callee), strings.Join(args, ", "))
	}

	var holes []string
	callArgs := make([]string, len(n.Args))
	for i, a := range n.Args {
		if _, ok := a.(*ast.Placeholder); ok {
			name := e.fresh("ph")
			holes = append(holes, name)
			callArgs[i] = name
		} else {
			callArgs[i] = e.expr(a)
		}
	}
	return fmt.Sprintf("((%s) => %s(%s))", strings.Join(holes, ", "), e.calleeExpr(n.Callee), strings.Join(callArgs, ", "))
}

func (e *emitter) binaryExpression(n *ast.BinaryExpression) string {
	if n.Operator == "?" {
		// Error-propagation: lowers to a call of the prelude's unwrap,
		// which throws on an Error-tagged value (spec.md §4.4).
		return fmt.Sprintf("unwrap(%s)", e.expr(n.Left))
	}
	op := n.Operator
	if op == "++" {
		op = "+"
	}
	return fmt.Sprintf("(%s %s %s)", e.expr(n.Left), op, e.expr(n.Right))
}

// matchExpression lowers to an immediately-invoked block: bind the
// subject to a fresh name, then in source order emit guarded
// conditionals combining the arm's structural test with its optional
// guard. A non-exhaustive match throws at runtime (spec.md §4.4).
func (e *emitter) matchExpression(n *ast.MatchExpression) string {
	subjectName := e.fresh("subject")
	var b strings.Builder
	fmt.Fprintf(&b, "(() => { const %s = %s;\n", subjectName, e.expr(n.Subject))

	for _, arm := range n.Arms {
		structuralTest, bindings := e.patternTest(arm.Pattern, subjectName)
		guard := structuralTest
		if arm.Guard != nil {
			guard = fmt.Sprintf("(%s && %s)", structuralTest, e.expr(arm.Guard))
		}
		body := e.expr(arm.Body)
		fmt.Fprintf(&b, "  if (%s) { %s return %s; }\n", guard, strings.Join(bindings, " "), body)
	}

	b.WriteString(`  throw new Error("non-exhaustive pattern match"); })()`)
	return b.String()
}

// patternTest returns the structural boolean test for matching subject
// against pat, and appends zero or more `const name = ...;` binding
// statements (as string). matchExpression places them inside the matched
// arm, after the structural test and guard and before the body.
func (e *emitter) patternTest(pat ast.Pattern, subject string) (string, []string) {
	switch p := pat.(type) {
	case *ast.IdentifierPattern:
		return "true", []string{fmt.Sprintf("const %s = %s;", jsName(p.Name), subject)}

	case *ast.WildcardPattern:
		return "true", nil

	case *ast.LiteralPattern:
		return fmt.Sprintf("(%s === %s)", subject, e.expr(p.Value)), nil

	case *ast.ListPattern:
		var conds []string
		var binds []string
		if p.Rest != nil {
			conds = append(conds, fmt.Sprintf("%s.length >= %d", subject, len(p.Elements)))
		} else {
			conds = append(conds, fmt.Sprintf("%s.length === %d", subject, len(p.Elements)))
		}
		for i, el := range p.Elements {
			elSubject := fmt.Sprintf("%s[%d]", subject, i)
			cond, b := e.patternTest(el, elSubject)
			if cond != "true" {
				conds = append(conds, cond)
			}
			binds = append(binds, b...)
		}
		if p.Rest != nil && p.Rest.Name != "" {
			binds = append(binds, fmt.Sprintf("const %s = %s.slice(%d);", jsName(p.Rest.Name), subject, len(p.Elements)))
		}
		return "(" + strings.Join(conds, " && ") + ")", binds

	case *ast.RecordPattern:
		var binds []string
		for _, f := range p.Fields {
			fieldSubject := fmt.Sprintf("%s.%s", subject, f.Name)
			if f.Pattern != nil {
				_, b := e.patternTest(f.Pattern, fieldSubject)
				binds = append(binds, b...)
			} else {
				binds = append(binds, fmt.Sprintf("const %s = %s;", jsName(f.Name), fieldSubject))
			}
		}
		return "true", binds

	case *ast.ConstructorPattern:
		cond := fmt.Sprintf("(%s.__tag === %q)", subject, p.Name)
		var binds []string
		switch {
		case p.Record != nil:
			_, b := e.patternTest(p.Record, subject)
			binds = b
		case p.Inner != nil:
			_, b := e.patternTest(p.Inner, subject+".value")
			binds = b
		}
		return cond, binds

	case *ast.RestPattern:
		if p.Name != "" {
			return "true", []string{fmt.Sprintf("const %s = %s;", jsName(p.Name), subject)}
		}
		return "true", nil

	default:
		return "true", nil
	}
}

// doExpression lowers to an asynchronous self-invoking function; `do!`
// statements are awaited, bare-expression statements are evaluated for
// effect, and the last statement yields the block's value (spec.md
// §4.4). `do?` currently shares the same structural lowering.
func (e *emitter) doExpression(n *ast.DoExpression) string {
	var b strings.Builder
	b.WriteString("(async () => {\n")
	for i, stmt := range n.Statements {
		last := i == len(n.Statements)-1
		rhs := e.expr(stmt.Expression)
		if stmt.Kind == ast.DoBang || stmt.Awaited {
			rhs = "await " + rhs
		}
		switch stmt.Kind {
		case ast.DoLet:
			fmt.Fprintf(&b, "  const %s = %s;\n", e.patternAsParam(stmt.Pattern), rhs)
			if last {
				fmt.Fprintf(&b, "  return %s;\n", e.patternAsParam(stmt.Pattern))
			}
		default:
			if last {
				fmt.Fprintf(&b, "  return %s;\n", rhs)
			} else {
				fmt.Fprintf(&b, "  %s;\n", rhs)
			}
		}
	}
	b.WriteString("})()")
	return b.String()
}

// provideExpression lowers to a self-invoking block binding each
// provision locally, evaluating the body in its scope (spec.md §4.4).
func (e *emitter) provideExpression(n *ast.ProvideExpression) string {
	var b strings.Builder
	b.WriteString("(() => {\n")
	for _, prov := range n.Provisions {
		fmt.Fprintf(&b, "  const %s = %s;\n", jsName(prov.Name), e.expr(prov.Value))
	}
	fmt.Fprintf(&b, "  return %s;\n", e.expr(n.Body))
	b.WriteString("})()")
	return b.String()
}

func (e *emitter) blockExpression(n *ast.BlockExpression) string {
	var b strings.Builder
	b.WriteString("(() => {\n")
	for _, stmt := range n.Statements {
		if stmt.Let != nil {
			name := jsName(stmt.Let.Name)
			fmt.Fprintf(&b, "  const %s = %s;\n", name, e.expr(stmt.Let.Value))
		} else if stmt.Value != nil {
			fmt.Fprintf(&b, "  %s;\n", e.expr(stmt.Value))
		}
	}
	if n.Trailing != nil {
		fmt.Fprintf(&b, "  return %s;\n", e.expr(n.Trailing))
	}
	b.WriteString("})()")
	return b.String()
}
