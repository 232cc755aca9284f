package types

import "fmt"

// UnifyError reports why unification of two types failed. Kind lets
// callers (the inferer) map the failure onto one of the stable
// diagnostic codes in spec.md §6.2 without string-matching Message.
type UnifyError struct {
	Kind    UnifyErrorKind
	Left    Type
	Right   Type
	Field   string // set for MissingField
	Message string
}

func (e *UnifyError) Error() string { return e.Message }

// UnifyErrorKind classifies a UnifyError.
type UnifyErrorKind int

const (
	Mismatch UnifyErrorKind = iota
	OccursCheck
	MissingFieldErr
	ArityMismatch
)

func mismatch(a, b Type) error {
	return &UnifyError{
		Kind:    Mismatch,
		Left:    a,
		Right:   b,
		Message: fmt.Sprintf("type mismatch: %s vs %s", a.String(), b.String()),
	}
}

// Unify attempts to find the most general substitution making a and b
// structurally equal, per the contracts of spec.md §4.3 "Unification".
// It never mutates a or b; the returned Subst is the caller's to apply
// and, typically, compose into a running substitution.
func Unify(a, b Type) (Subst, error) {
	switch at := a.(type) {
	case TVar:
		return bindVar(at, b)
	}

	if bt, ok := b.(TVar); ok {
		return bindVar(bt, a)
	}

	switch at := a.(type) {
	case TConst:
		bt, ok := b.(TConst)
		if !ok || bt.Name != at.Name {
			return nil, mismatch(a, b)
		}
		return Subst{}, nil

	case TFunc:
		bt, ok := b.(TFunc)
		if !ok {
			return nil, mismatch(a, b)
		}
		if len(at.Params) != len(bt.Params) {
			return nil, &UnifyError{Kind: ArityMismatch, Left: a, Right: b,
				Message: fmt.Sprintf("wrong arity: expected %d argument(s), got %d", len(at.Params), len(bt.Params))}
		}
		subst := Subst{}
		for i := range at.Params {
			s, err := Unify(at.Params[i].Apply(subst), bt.Params[i].Apply(subst))
			if err != nil {
				return nil, err
			}
			subst = Compose(s, subst)
		}
		s, err := Unify(at.Return.Apply(subst), bt.Return.Apply(subst))
		if err != nil {
			return nil, err
		}
		return Compose(s, subst), nil

	case TList:
		bt, ok := b.(TList)
		if !ok {
			return nil, mismatch(a, b)
		}
		return Unify(at.Elem, bt.Elem)

	case TApp:
		bt, ok := b.(TApp)
		if !ok || bt.Constructor != at.Constructor || len(bt.Args) != len(at.Args) {
			return nil, mismatch(a, b)
		}
		subst := Subst{}
		for i := range at.Args {
			s, err := Unify(at.Args[i].Apply(subst), bt.Args[i].Apply(subst))
			if err != nil {
				return nil, err
			}
			subst = Compose(s, subst)
		}
		return subst, nil

	case TRecord:
		bt, ok := b.(TRecord)
		if !ok {
			return nil, mismatch(a, b)
		}
		return unifyRecords(at, bt)
	}

	return nil, mismatch(a, b)
}

// unifyRecords unifies the intersection of two records' fields. A field
// missing from a closed side is an error; an open side tolerates the
// other side's extra fields (spec.md §4.3, §9).
func unifyRecords(a, b TRecord) (Subst, error) {
	subst := Subst{}

	for name, at := range a.Fields {
		bt, ok := b.Fields[name]
		if !ok {
			if b.Open {
				continue
			}
			return nil, &UnifyError{Kind: MissingFieldErr, Left: a, Right: b, Field: name,
				Message: fmt.Sprintf("missing field %q", name)}
		}
		s, err := Unify(at.Apply(subst), bt.Apply(subst))
		if err != nil {
			return nil, err
		}
		subst = Compose(s, subst)
	}

	for name, bt := range b.Fields {
		if _, ok := a.Fields[name]; ok {
			continue // already unified above
		}
		if !a.Open {
			return nil, &UnifyError{Kind: MissingFieldErr, Left: a, Right: b, Field: name,
				Message: fmt.Sprintf("missing field %q", name)}
		}
		_ = bt
	}

	return subst, nil
}

func bindVar(v TVar, t Type) (Subst, error) {
	if tv, ok := t.(TVar); ok && tv.ID == v.ID {
		return Subst{}, nil
	}
	if occurs(v.ID, t) {
		return nil, &UnifyError{Kind: OccursCheck, Left: v, Right: t,
			Message: fmt.Sprintf("infinite type: %s occurs in %s", v.String(), t.String())}
	}
	return singleton(v.ID, t), nil
}

// occurs is the occurs check: it reports whether variable id appears
// free inside t, which would make a binding of id to t an infinite type
// (spec.md §3, §4.3, GLOSSARY "Occurs check").
func occurs(id int, t Type) bool {
	for _, v := range t.FreeVars() {
		if v == id {
			return true
		}
	}
	return false
}
