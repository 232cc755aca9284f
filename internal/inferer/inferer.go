// Package inferer implements the Hindley-Milner inference pass of
// spec.md §4.3 over the AST produced by internal/parser, using the
// substitution-based type representation of internal/types.
package inferer

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/source"
	"github.com/lambdawg/lambdawg/internal/types"
)

// Inferer holds the per-compilation state a type-inference pass needs:
// a fresh-variable counter (reset at the start of every Infer call, per
// spec.md §5's "per-compilation" invariant), the running substitution,
// and the diagnostic bag.
type Inferer struct {
	nextVar int
	subst   types.Subst
	diags   diagnostics.Bag

	// NodeTypes records the inferred type of every expression node that
	// was visited, keyed by the node itself. Values are recorded *before*
	// the final substitution pass; Infer applies that substitution when
	// it builds the map it returns.
	NodeTypes map[ast.Expression]types.Type
}

// New creates an Inferer with an empty substitution, a zeroed
// fresh-variable counter and an empty NodeTypes map. It holds no
// environment; GlobalEnv builds the one seeded with the built-in
// combinator schemes.
func New() *Inferer {
	return &Inferer{
		subst:     types.Subst{},
		NodeTypes: make(map[ast.Expression]types.Type),
	}
}

func (inf *Inferer) fresh() types.TVar {
	inf.nextVar++
	return types.TVar{ID: inf.nextVar}
}

// GlobalEnv builds the root environment pre-populated with the built-in
// combinator schemes named in spec.md §4.3.
func GlobalEnv() *types.Env {
	env := types.NewEnv()

	a := types.TVar{ID: -1}
	b := types.TVar{ID: -2}

	def := func(name string, vars []int, t types.Type) {
		env.Define(name, types.Scheme{Vars: vars, Type: t})
	}

	def("map", []int{-1, -2}, types.TFunc{
		Params: []types.Type{types.TFunc{Params: []types.Type{a}, Return: b}, types.TList{Elem: a}},
		Return: types.TList{Elem: b},
	})
	def("filter", []int{-1}, types.TFunc{
		Params: []types.Type{types.TFunc{Params: []types.Type{a}, Return: types.TConst{Name: types.Bool}}, types.TList{Elem: a}},
		Return: types.TList{Elem: a},
	})
	def("fold", []int{-1, -2}, types.TFunc{
		Params: []types.Type{
			types.TFunc{Params: []types.Type{b, a}, Return: b},
			b,
			types.TList{Elem: a},
		},
		Return: b,
	})
	def("sum", nil, types.TFunc{
		Params: []types.Type{types.TList{Elem: types.TConst{Name: types.Int}}},
		Return: types.TConst{Name: types.Int},
	})
	def("length", []int{-1}, types.TFunc{
		Params: []types.Type{types.TList{Elem: a}},
		Return: types.TConst{Name: types.Int},
	})
	def("show", []int{-1}, types.TFunc{
		Params: []types.Type{a},
		Return: types.TConst{Name: types.String},
	})
	def("identity", []int{-1}, types.TFunc{Params: []types.Type{a}, Return: a})
	def("head", []int{-1}, types.TFunc{
		Params: []types.Type{types.TList{Elem: a}},
		Return: types.TApp{Constructor: "Option", Args: []types.Type{a}},
	})
	def("tail", []int{-1}, types.TFunc{
		Params: []types.Type{types.TList{Elem: a}},
		Return: types.TApp{Constructor: "Option", Args: []types.Type{types.TList{Elem: a}}},
	})
	def("tap", []int{-1}, types.TFunc{
		Params: []types.Type{types.TFunc{Params: []types.Type{a}, Return: types.TConst{Name: types.Unit}}, a},
		Return: a,
	})

	return env
}

// Infer runs inference over prog's top-level statements (and module
// bodies) under a fresh global environment, returning the per-node type
// map and the diagnostics produced.
func Infer(prog *ast.Program) (map[ast.Expression]types.Type, diagnostics.Bag) {
	inf := New()
	env := GlobalEnv()

	for _, mod := range prog.Modules {
		inf.inferStatements(mod.Statements, env.Extend())
	}
	inf.inferStatements(prog.Statements, env)

	resolved := make(map[ast.Expression]types.Type, len(inf.NodeTypes))
	for node, t := range inf.NodeTypes {
		resolved[node] = t.Apply(inf.subst)
	}
	return resolved, inf.diags
}

// unify wraps types.Unify, composing the result into the running
// substitution and translating any failure into a diagnostic carrying
// span — the sole bridge between the pure unifier and the diagnostic
// model (spec.md §4.3 "Unification").
func (inf *Inferer) unify(a, b types.Type, span source.Span) bool {
	s, err := types.Unify(a.Apply(inf.subst), b.Apply(inf.subst))
	if err != nil {
		inf.reportUnifyError(err, span)
		return false
	}
	inf.subst = types.Compose(s, inf.subst)
	return true
}

func (inf *Inferer) reportUnifyError(err error, span source.Span) {
	ue, ok := err.(*types.UnifyError)
	if !ok {
		inf.diags.Add(diagnostics.NewError(diagnostics.TMismatch, span, err.Error()))
		return
	}
	switch ue.Kind {
	case types.OccursCheck:
		inf.diags.Add(diagnostics.NewError(diagnostics.TInfiniteType, span, ue.Message))
	case types.MissingFieldErr:
		inf.diags.Add(diagnostics.NewError(diagnostics.TMissingField, span, ue.Message))
	case types.ArityMismatch:
		inf.diags.Add(diagnostics.NewError(diagnostics.TWrongArity, span, ue.Message))
	default:
		inf.diags.Add(diagnostics.NewError(diagnostics.TMismatch, span, ue.Message))
	}
}
