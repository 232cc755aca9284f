package types_test

import (
	"testing"

	"github.com/lambdawg/lambdawg/internal/types"
)

func TestEnvLookupFallsThroughToParent(t *testing.T) {
	root := types.NewEnv()
	root.Define("x", types.Mono(types.TConst{Name: types.Int}))
	child := root.Extend()

	scheme, ok := child.Lookup("x")
	if !ok {
		t.Fatalf("expected to find x in the parent scope")
	}
	if scheme.Type.String() != "Int" {
		t.Fatalf("got %v", scheme.Type)
	}

	child.Define("x", types.Mono(types.TConst{Name: types.Bool}))
	shadowed, _ := child.Lookup("x")
	if shadowed.Type.String() != "Bool" {
		t.Fatalf("expected child binding to shadow parent, got %v", shadowed.Type)
	}
	original, _ := root.Lookup("x")
	if original.Type.String() != "Int" {
		t.Fatalf("expected parent binding to be unaffected by the child's shadow, got %v", original.Type)
	}
}

func TestEnvLookupMissing(t *testing.T) {
	env := types.NewEnv()
	if _, ok := env.Lookup("nope"); ok {
		t.Fatalf("expected lookup of an undefined name to fail")
	}
}

func TestEnvFreeTypeVarsSpansParentChain(t *testing.T) {
	root := types.NewEnv()
	root.Define("x", types.Mono(types.TVar{ID: 1}))
	child := root.Extend()
	child.Define("y", types.Mono(types.TVar{ID: 2}))

	free := child.FreeTypeVars()
	if !free[1] || !free[2] {
		t.Fatalf("expected both var 1 and var 2 free, got %v", free)
	}
}
