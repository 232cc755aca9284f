package types_test

import (
	"testing"

	"github.com/lambdawg/lambdawg/internal/types"
)

func TestUnifyIdenticalConsts(t *testing.T) {
	s, err := types.Unify(types.TConst{Name: types.Int}, types.TConst{Name: types.Int})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("expected an empty substitution, got %v", s)
	}
}

func TestUnifyMismatchedConsts(t *testing.T) {
	_, err := types.Unify(types.TConst{Name: types.Int}, types.TConst{Name: types.String})
	if err == nil {
		t.Fatalf("expected a mismatch error")
	}
	ue, ok := err.(*types.UnifyError)
	if !ok || ue.Kind != types.Mismatch {
		t.Fatalf("expected Mismatch, got %v", err)
	}
}

func TestUnifyVarBindsToConcreteType(t *testing.T) {
	v := types.TVar{ID: 1}
	s, err := types.Unify(v, types.TConst{Name: types.Bool})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.Apply(s)
	if got.String() != "Bool" {
		t.Fatalf("expected Bool, got %v", got)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	v := types.TVar{ID: 1}
	listOfV := types.TList{Elem: v}
	_, err := types.Unify(v, listOfV)
	if err == nil {
		t.Fatalf("expected an occurs-check error")
	}
	ue, ok := err.(*types.UnifyError)
	if !ok || ue.Kind != types.OccursCheck {
		t.Fatalf("expected OccursCheck, got %v", err)
	}
}

func TestUnifyFuncArityMismatch(t *testing.T) {
	a := types.TFunc{Params: []types.Type{types.TConst{Name: types.Int}}, Return: types.TConst{Name: types.Int}}
	b := types.TFunc{
		Params: []types.Type{types.TConst{Name: types.Int}, types.TConst{Name: types.Int}},
		Return: types.TConst{Name: types.Int},
	}
	_, err := types.Unify(a, b)
	if err == nil {
		t.Fatalf("expected an arity-mismatch error")
	}
	ue, ok := err.(*types.UnifyError)
	if !ok || ue.Kind != types.ArityMismatch {
		t.Fatalf("expected ArityMismatch, got %v", err)
	}
}

func TestUnifyOpenRecordToleratesExtraFields(t *testing.T) {
	open := types.TRecord{Fields: map[string]types.Type{"x": types.TVar{ID: 1}}, Open: true}
	closed := types.TRecord{Fields: map[string]types.Type{
		"x": types.TConst{Name: types.Int},
		"y": types.TConst{Name: types.Int},
	}}
	_, err := types.Unify(open, closed)
	if err != nil {
		t.Fatalf("expected an open record to tolerate the extra field, got %v", err)
	}
}

func TestUnifyClosedRecordMissingFieldErrors(t *testing.T) {
	closed := types.TRecord{Fields: map[string]types.Type{"x": types.TConst{Name: types.Int}}}
	needsY := types.TRecord{Fields: map[string]types.Type{
		"x": types.TVar{ID: 1},
		"y": types.TVar{ID: 2},
	}, Open: true}
	_, err := types.Unify(closed, needsY)
	if err == nil {
		t.Fatalf("expected a missing-field error")
	}
	ue, ok := err.(*types.UnifyError)
	if !ok || ue.Kind != types.MissingFieldErr {
		t.Fatalf("expected MissingFieldErr, got %v", err)
	}
}

func TestGeneralizeExcludesEnvFreeVars(t *testing.T) {
	envVars := map[int]bool{1: true}
	scheme := types.Generalize(types.TFunc{
		Params: []types.Type{types.TVar{ID: 1}},
		Return: types.TVar{ID: 2},
	}, envVars)
	if len(scheme.Vars) != 1 || scheme.Vars[0] != 2 {
		t.Fatalf("expected only var 2 quantified, got %v", scheme.Vars)
	}
}

func TestInstantiateReplacesQuantifiedVars(t *testing.T) {
	scheme := types.Scheme{Vars: []int{1}, Type: types.TList{Elem: types.TVar{ID: 1}}}
	next := 100
	fresh := func() types.TVar {
		next++
		return types.TVar{ID: next}
	}
	got := scheme.Instantiate(fresh)
	list, ok := got.(types.TList)
	if !ok {
		t.Fatalf("expected TList, got %T", got)
	}
	if list.Elem.(types.TVar).ID != 101 {
		t.Fatalf("expected the quantified var replaced with a fresh one, got %v", list.Elem)
	}
}
