package inferer

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/types"
)

func (inf *Inferer) inferStatements(stmts []ast.Statement, env *types.Env) {
	for _, stmt := range stmts {
		inf.inferStatement(stmt, env)
	}
}

func (inf *Inferer) inferStatement(stmt ast.Statement, env *types.Env) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		inf.inferLetStatement(s, env)
	case *ast.TypeDefStatement:
		inf.registerTypeDef(s, env)
	case *ast.ImportStatement:
		inf.registerImport(s, env)
	case *ast.ExpressionStatement:
		if s.Expression != nil {
			inf.inferExpr(s.Expression, env)
		}
	}
}

// inferLetStatement infers the bound value, wraps it in a function type
// over any ambient parameters, and generalizes the result into the
// environment — "the sole generalization point" (spec.md §4.3, §9).
func (inf *Inferer) inferLetStatement(s *ast.LetStatement, env *types.Env) {
	bodyEnv := env
	var ambientParams []types.Type
	if len(s.Ambients) > 0 {
		bodyEnv = env.Extend()
		for _, amb := range s.Ambients {
			t := types.Type(inf.fresh())
			if amb.TypeAnnotation != nil {
				t = inf.resolveTypeExpr(amb.TypeAnnotation)
			}
			bodyEnv.Define(amb.Name, types.Mono(t))
			ambientParams = append(ambientParams, t)
		}
	}

	// Allow simple self-recursion: bind the name monomorphically in the
	// body's own scope before inferring the value (spec.md §9's permitted
	// "introduce binder monomorphically, allow direct self-reference"
	// strategy, confirmed against the prototype's direct-recursion codegen).
	selfVar := inf.fresh()
	recEnv := bodyEnv.Extend()
	recEnv.Define(s.Name, types.Mono(selfVar))

	var valueType types.Type = types.TConst{Name: types.Unit}
	if s.Value != nil {
		valueType = inf.inferExpr(s.Value, recEnv)
		inf.unify(selfVar, valueType, s.Value.Span())
	}

	if s.TypeAnnotation != nil {
		inf.unify(valueType, inf.resolveTypeExpr(s.TypeAnnotation), s.Span())
	}

	full := valueType
	if len(ambientParams) > 0 {
		full = types.TFunc{Params: ambientParams, Return: valueType}
	}

	scheme := types.Generalize(full.Apply(inf.subst), env.FreeTypeVars())
	env.Define(s.Name, scheme)
}

// registerTypeDef binds each sum-type variant as a constructor function
// (or a nullary value when it carries no fields) in env, so constructor
// literals and patterns can look the name up like any other identifier.
func (inf *Inferer) registerTypeDef(s *ast.TypeDefStatement, env *types.Env) {
	for _, v := range s.Variants {
		ctorType := types.Type(types.TConst{Name: s.Name})
		if v.Fields != nil {
			fields := make(map[string]types.Type, len(v.Fields.Fields))
			for _, f := range v.Fields.Fields {
				fields[f.Name] = inf.resolveTypeExpr(f.Type)
			}
			ctorType = types.TFunc{
				Params: []types.Type{types.TRecord{Fields: fields}},
				Return: types.TConst{Name: s.Name},
			}
		}
		env.Define(v.Name, types.Generalize(ctorType, env.FreeTypeVars()))
	}
}

// registerImport binds each imported name to a fresh, unconstrained
// scheme. The inferer cannot see across module/host boundaries, so these
// names are opaque until used (spec.md §4.3's ambient codes are reserved
// for this; a named `js` import is surfaced as a warning rather than
// blocking compilation, other imports and `{ * }` imports add none).
func (inf *Inferer) registerImport(s *ast.ImportStatement, env *types.Env) {
	if s.ImportAll {
		return
	}
	for _, spec := range s.Specs {
		name := spec.Name
		if spec.Alias != "" {
			name = spec.Alias
		}
		env.Define(name, types.Generalize(inf.fresh(), env.FreeTypeVars()))
	}
	if s.JS {
		inf.diags.Add(diagnostics.NewWarning(diagnostics.TUnresolvedAmbient, s.Span(),
			"imported host bindings are not type-checked: "+s.ModulePath))
	}
}

// resolveTypeExpr maps a source-level type annotation onto the internal
// type representation. Lowercase names become fresh variables (a new one
// at each occurrence) so a single parameter can appear polymorphic
// without a forall syntax; uppercase names become constants.
func (inf *Inferer) resolveTypeExpr(t ast.Type) types.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		if len(tt.Args) == 0 {
			if isLowerIdent(tt.Name) {
				return inf.fresh()
			}
			return types.TConst{Name: tt.Name}
		}
		args := make([]types.Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = inf.resolveTypeExpr(a)
		}
		if tt.Name == "List" && len(args) == 1 {
			return types.TList{Elem: args[0]}
		}
		return types.TApp{Constructor: tt.Name, Args: args}
	case *ast.FunctionType:
		params := make([]types.Type, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = inf.resolveTypeExpr(p)
		}
		return types.TFunc{Params: params, Return: inf.resolveTypeExpr(tt.Return)}
	case *ast.RecordType:
		fields := make(map[string]types.Type, len(tt.Fields))
		for _, f := range tt.Fields {
			fields[f.Name] = inf.resolveTypeExpr(f.Type)
		}
		return types.TRecord{Fields: fields, Open: tt.Open}
	case *ast.ListType:
		return types.TList{Elem: inf.resolveTypeExpr(tt.Element)}
	case *ast.ParenthesizedType:
		if tt.Inner != nil {
			return inf.resolveTypeExpr(tt.Inner)
		}
		return types.TConst{Name: types.Unit}
	default:
		return inf.fresh()
	}
}

func isLowerIdent(s string) bool {
	return len(s) > 0 && s[0] >= 'a' && s[0] <= 'z'
}

// inferExpr dispatches to the per-kind contract of spec.md §4.3 and
// records the node's type for the final node->type map.
func (inf *Inferer) inferExpr(e ast.Expression, env *types.Env) types.Type {
	t := inf.inferExprRaw(e, env)
	inf.NodeTypes[e] = t
	return t
}

func (inf *Inferer) inferExprRaw(e ast.Expression, env *types.Env) types.Type {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return types.TConst{Name: types.Int}
	case *ast.FloatLiteral:
		return types.TConst{Name: types.Float}
	case *ast.StringLiteral:
		return types.TConst{Name: types.String}
	case *ast.CharLiteral:
		return types.TConst{Name: types.Char}
	case *ast.BoolLiteral:
		return types.TConst{Name: types.Bool}

	case *ast.Identifier:
		scheme, ok := env.Lookup(n.Name)
		if !ok {
			inf.diags.Add(diagnostics.NewErrorf(diagnostics.TUndefinedVar, n.Span(), "undefined name %q", n.Name))
			return inf.fresh()
		}
		return scheme.Instantiate(inf.fresh)

	case *ast.Placeholder:
		return inf.fresh()

	case *ast.Spread:
		if n.Value != nil {
			return inf.inferExpr(n.Value, env)
		}
		return inf.fresh()

	case *ast.ListLiteral:
		return inf.inferListLiteral(n, env)

	case *ast.RecordLiteral:
		return inf.inferRecordLiteral(n, env)

	case *ast.ConstructorLiteral:
		return inf.inferConstructorLiteral(n, env)

	case *ast.FunctionLiteral:
		return inf.inferFunctionLiteral(n, env)

	case *ast.CallExpression:
		return inf.inferCallExpression(n, env)

	case *ast.MemberExpression:
		return inf.inferMemberExpression(n, env)

	case *ast.IndexExpression:
		return inf.inferIndexExpression(n, env)

	case *ast.UnaryExpression:
		return inf.inferUnaryExpression(n, env)

	case *ast.BinaryExpression:
		return inf.inferBinaryExpression(n, env)

	case *ast.PipelineExpression:
		return inf.inferPipelineExpression(n, env)

	case *ast.IfExpression:
		return inf.inferIfExpression(n, env)

	case *ast.MatchExpression:
		return inf.inferMatchExpression(n, env)

	case *ast.DoExpression:
		return inf.inferDoExpression(n, env)

	case *ast.ProvideExpression:
		return inf.inferProvideExpression(n, env)

	case *ast.BlockExpression:
		return inf.inferBlockExpression(n, env)

	default:
		return inf.fresh()
	}
}

func (inf *Inferer) inferListLiteral(n *ast.ListLiteral, env *types.Env) types.Type {
	elem := types.Type(inf.fresh())
	for _, e := range n.Elements {
		et := inf.inferExpr(e, env)
		inf.unify(elem, et, e.Span())
	}
	return types.TList{Elem: elem}
}

func (inf *Inferer) inferRecordLiteral(n *ast.RecordLiteral, env *types.Env) types.Type {
	fields := map[string]types.Type{}
	if n.Spread != nil {
		st := inf.inferExpr(n.Spread, env)
		if rec, ok := st.Apply(inf.subst).(types.TRecord); ok {
			for k, v := range rec.Fields {
				fields[k] = v
			}
		}
	}
	for _, f := range n.Fields {
		fields[f.Name] = inf.inferExpr(f.Value, env)
	}
	return types.TRecord{Fields: fields}
}

func (inf *Inferer) inferConstructorLiteral(n *ast.ConstructorLiteral, env *types.Env) types.Type {
	scheme, ok := env.Lookup(n.Name)
	if !ok {
		inf.diags.Add(diagnostics.NewErrorf(diagnostics.TUndefinedVar, n.Span(), "undefined constructor %q", n.Name))
		return inf.fresh()
	}
	ctorType := scheme.Instantiate(inf.fresh)
	recType := inf.inferExpr(n.Record, env)

	fn, ok := ctorType.(types.TFunc)
	if !ok || len(fn.Params) != 1 {
		inf.diags.Add(diagnostics.NewErrorf(diagnostics.TNotAFunction, n.Span(), "%q is not a record constructor", n.Name))
		return inf.fresh()
	}
	inf.unify(fn.Params[0], recType, n.Record.Span())
	return fn.Return
}

func (inf *Inferer) inferFunctionLiteral(n *ast.FunctionLiteral, env *types.Env) types.Type {
	child := env.Extend()
	params := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		pt := inf.fresh()
		inf.bindPattern(p, pt, child)
		params[i] = pt
	}
	ret := inf.inferExpr(n.Body, child)
	return types.TFunc{Params: params, Return: ret}
}

func (inf *Inferer) inferCallExpression(n *ast.CallExpression, env *types.Env) types.Type {
	calleeType := inf.inferExpr(n.Callee, env)

	if n.HasPlaceholder() {
		var fresh []types.Type
		args := make([]types.Type, len(n.Args))
		for i, a := range n.Args {
			if _, isHole := a.(*ast.Placeholder); isHole {
				fv := inf.fresh()
				args[i] = fv
				fresh = append(fresh, fv)
			} else {
				args[i] = inf.inferExpr(a, env)
			}
		}
		result := inf.fresh()
		inf.unify(calleeType, types.TFunc{Params: args, Return: result}, n.Span())
		return types.TFunc{Params: fresh, Return: result}
	}

	args := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = inf.inferExpr(a, env)
	}
	result := inf.fresh()
	inf.unify(calleeType, types.TFunc{Params: args, Return: result}, n.Span())
	return result
}

func (inf *Inferer) inferMemberExpression(n *ast.MemberExpression, env *types.Env) types.Type {
	objType := inf.inferExpr(n.Object, env).Apply(inf.subst)
	if rec, ok := objType.(types.TRecord); ok {
		if ft, ok := rec.Fields[n.Field]; ok {
			return ft
		}
		if !rec.Open {
			inf.diags.Add(diagnostics.NewErrorf(diagnostics.TMissingField, n.Span(), "missing field %q", n.Field))
			return inf.fresh()
		}
	}
	result := inf.fresh()
	openRec := types.TRecord{Fields: map[string]types.Type{n.Field: result}, Open: true}
	inf.unify(objType, openRec, n.Span())
	return result
}

func (inf *Inferer) inferIndexExpression(n *ast.IndexExpression, env *types.Env) types.Type {
	objType := inf.inferExpr(n.Object, env)
	idxType := inf.inferExpr(n.Index, env)
	inf.unify(idxType, types.TConst{Name: types.Int}, n.Index.Span())
	elem := inf.fresh()
	inf.unify(objType, types.TList{Elem: elem}, n.Object.Span())
	return elem
}

func (inf *Inferer) inferUnaryExpression(n *ast.UnaryExpression, env *types.Env) types.Type {
	operandType := inf.inferExpr(n.Operand, env)
	switch n.Operator {
	case "!":
		inf.unify(operandType, types.TConst{Name: types.Bool}, n.Span())
		return types.TConst{Name: types.Bool}
	default: // unary '-'
		return operandType
	}
}

func (inf *Inferer) inferBinaryExpression(n *ast.BinaryExpression, env *types.Env) types.Type {
	leftType := inf.inferExpr(n.Left, env)

	if n.Operator == "?" {
		// Passes through the left operand's type unchanged; spec.md §9
		// flags this as a known under-specification, not a contract to
		// harden (see the Open Question note).
		return leftType
	}

	rightType := inf.inferExpr(n.Right, env)

	switch n.Operator {
	case "+", "-", "*", "/", "%":
		inf.unify(leftType, rightType, n.Span())
		return leftType
	case "==", "!=", "<", ">", "<=", ">=":
		inf.unify(leftType, rightType, n.Span())
		return types.TConst{Name: types.Bool}
	case "&&", "||":
		inf.unify(leftType, types.TConst{Name: types.Bool}, n.Left.Span())
		inf.unify(rightType, types.TConst{Name: types.Bool}, n.Right.Span())
		return types.TConst{Name: types.Bool}
	default:
		inf.unify(leftType, rightType, n.Span())
		return leftType
	}
}

func (inf *Inferer) inferPipelineExpression(n *ast.PipelineExpression, env *types.Env) types.Type {
	leftType := inf.inferExpr(n.Left, env)
	rightType := inf.inferExpr(n.Right, env).Apply(inf.subst)

	if fn, ok := rightType.(types.TFunc); ok && len(fn.Params) > 0 {
		inf.unify(leftType, fn.Params[len(fn.Params)-1], n.Left.Span())
		return fn.Return
	}

	result := inf.fresh()
	inf.unify(rightType, types.TFunc{Params: []types.Type{leftType}, Return: result}, n.Span())
	return result
}

func (inf *Inferer) inferIfExpression(n *ast.IfExpression, env *types.Env) types.Type {
	condType := inf.inferExpr(n.Condition, env)
	inf.unify(condType, types.TConst{Name: types.Bool}, n.Condition.Span())
	thenType := inf.inferExpr(n.Then, env)
	elseType := inf.inferExpr(n.Else, env)
	inf.unify(thenType, elseType, n.Span())
	return thenType
}

func (inf *Inferer) inferMatchExpression(n *ast.MatchExpression, env *types.Env) types.Type {
	subjType := inf.inferExpr(n.Subject, env)

	var result types.Type
	for i, arm := range n.Arms {
		child := env.Extend()
		inf.bindPattern(arm.Pattern, subjType, child)
		if arm.Guard != nil {
			guardType := inf.inferExpr(arm.Guard, child)
			inf.unify(guardType, types.TConst{Name: types.Bool}, arm.Guard.Span())
		}
		bodyType := inf.inferExpr(arm.Body, child)
		if i == 0 {
			result = bodyType
		} else {
			inf.unify(result, bodyType, arm.Body.Span())
		}
	}
	if result == nil {
		result = inf.fresh()
	}
	return result
}

func (inf *Inferer) inferDoExpression(n *ast.DoExpression, env *types.Env) types.Type {
	child := env.Extend()
	var last types.Type = types.TConst{Name: types.Unit}
	for _, stmt := range n.Statements {
		switch stmt.Kind {
		case ast.DoLet:
			t := inf.inferExpr(stmt.Expression, child)
			inf.bindPattern(stmt.Pattern, t, child)
			last = t
		case ast.DoBang, ast.DoBare:
			last = inf.inferExpr(stmt.Expression, child)
		}
	}
	return last
}

func (inf *Inferer) inferProvideExpression(n *ast.ProvideExpression, env *types.Env) types.Type {
	child := env.Extend()
	for _, prov := range n.Provisions {
		t := inf.inferExpr(prov.Value, env)
		child.Define(prov.Name, types.Mono(t))
	}
	return inf.inferExpr(n.Body, child)
}

func (inf *Inferer) inferBlockExpression(n *ast.BlockExpression, env *types.Env) types.Type {
	child := env.Extend()
	for _, stmt := range n.Statements {
		if stmt.Let != nil {
			inf.inferLetStatement(stmt.Let, child)
		} else if stmt.Value != nil {
			inf.inferExpr(stmt.Value, child)
		}
	}
	if n.Trailing != nil {
		return inf.inferExpr(n.Trailing, child)
	}
	return types.TConst{Name: types.Unit}
}
