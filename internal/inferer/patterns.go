package inferer

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/types"
)

// bindPattern binds pat's captures into env against an expected type,
// per spec.md §4.3 "Pattern binding". Every capture is added as a
// monomorphic scheme — patterns never generalize (only `let` does).
func (inf *Inferer) bindPattern(pat ast.Pattern, expected types.Type, env *types.Env) {
	switch p := pat.(type) {
	case *ast.IdentifierPattern:
		env.Define(p.Name, types.Mono(expected))

	case *ast.WildcardPattern:
		// binds nothing

	case *ast.LiteralPattern:
		if p.Value != nil {
			litType := inf.inferExpr(p.Value, env)
			inf.unify(expected, litType, p.Span())
		}

	case *ast.ListPattern:
		elem := inf.fresh()
		inf.unify(expected, types.TList{Elem: elem}, p.Span())
		for _, el := range p.Elements {
			inf.bindPattern(el, elem, env)
		}
		if p.Rest != nil && p.Rest.Name != "" {
			env.Define(p.Rest.Name, types.Mono(types.TList{Elem: elem}))
		}

	case *ast.RecordPattern:
		fields := map[string]types.Type{}
		for _, f := range p.Fields {
			ft := inf.fresh()
			fields[f.Name] = ft
			if f.Pattern != nil {
				inf.bindPattern(f.Pattern, ft, env)
			} else {
				env.Define(f.Name, types.Mono(ft))
			}
		}
		inf.unify(expected, types.TRecord{Fields: fields, Open: true}, p.Span())

	case *ast.RestPattern:
		if p.Name != "" {
			env.Define(p.Name, types.Mono(expected))
		}

	case *ast.ConstructorPattern:
		inf.bindConstructorPattern(p, expected, env)

	default:
		// unreachable for the closed pattern grammar of spec.md §4.2
	}
}

func (inf *Inferer) bindConstructorPattern(p *ast.ConstructorPattern, expected types.Type, env *types.Env) {
	scheme, ok := env.Lookup(p.Name)
	if !ok {
		inf.diags.Add(diagnostics.NewErrorf(diagnostics.TUndefinedVar, p.Span(), "undefined constructor %q", p.Name))
		return
	}
	ctorType := scheme.Instantiate(inf.fresh)

	switch {
	case p.Record != nil:
		fn, ok := ctorType.(types.TFunc)
		if !ok || len(fn.Params) != 1 {
			return
		}
		inf.unify(expected, fn.Return, p.Span())
		recType, ok := fn.Params[0].Apply(inf.subst).(types.TRecord)
		if !ok {
			return
		}
		for _, f := range p.Record.Fields {
			ft, ok := recType.Fields[f.Name]
			if !ok {
				ft = inf.fresh()
			}
			if f.Pattern != nil {
				inf.bindPattern(f.Pattern, ft, env)
			} else {
				env.Define(f.Name, types.Mono(ft))
			}
		}

	case p.Inner != nil:
		fn, ok := ctorType.(types.TFunc)
		if !ok || len(fn.Params) != 1 {
			return
		}
		inf.unify(expected, fn.Return, p.Span())
		inf.bindPattern(p.Inner, fn.Params[0], env)

	default:
		inf.unify(expected, ctorType, p.Span())
	}
}
