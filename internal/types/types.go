// Package types implements the Hindley-Milner type family of spec.md §3:
// type variables, constants, functions, row-open records, lists, and
// generic applications, plus unification and let-generalization.
//
// The representation follows the teacher's substitution-based style
// (github.com/funvibe/funxy/internal/typesystem: an immutable Subst map
// applied structurally) rather than mutable instance-slot cells; spec.md
// §9 allows either as long as the occurs check and the unification
// contracts are preserved.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the closed interface every member of the type family
// implements.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeVars() []int
}

// TVar is a type variable identified by a globally unique (per
// compilation) integer id.
type TVar struct {
	ID int
}

func (t TVar) String() string { return fmt.Sprintf("t%d", t.ID) }

// Apply looks up a replacement for this variable in s. Substitutions
// built via Compose are already fully resolved, so a single lookup
// suffices — no recursive re-application, which would loop forever on
// the self-referential entries the occurs check is designed to forbid.
func (t TVar) Apply(s Subst) Type {
	if repl, ok := s[t.ID]; ok {
		return repl
	}
	return t
}

func (t TVar) FreeVars() []int { return []int{t.ID} }

// Builtin constant type names (spec.md §3).
const (
	Int    = "Int"
	Float  = "Float"
	String = "String"
	Char   = "Char"
	Bool   = "Bool"
	Unit   = "Unit"
)

// TConst is a named, argument-free type: Int, Float, String, Char, Bool,
// Unit, or a nominal type defined by a `type` statement.
type TConst struct {
	Name string
}

func (t TConst) String() string { return t.Name }
func (t TConst) Apply(Subst) Type { return t }
func (t TConst) FreeVars() []int  { return nil }

// TFunc is a (possibly multi-argument) function type.
type TFunc struct {
	Params []Type
	Return Type
}

func (t TFunc) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Return.String())
}

func (t TFunc) Apply(s Subst) Type {
	params := make([]Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Apply(s)
	}
	return TFunc{Params: params, Return: t.Return.Apply(s)}
}

func (t TFunc) FreeVars() []int {
	var vars []int
	for _, p := range t.Params {
		vars = append(vars, p.FreeVars()...)
	}
	vars = append(vars, t.Return.FreeVars()...)
	return uniqueInts(vars)
}

// TRecord is a record type. When Open is true it tolerates additional,
// unspecified fields during unification — the representation chosen in
// spec.md §9 for "has at least this field" row polymorphism.
type TRecord struct {
	Fields map[string]Type
	Open   bool
}

func (t TRecord) String() string {
	keys := make([]string, 0, len(t.Fields))
	for k := range t.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, t.Fields[k].String()))
	}
	suffix := ""
	if t.Open {
		suffix = ", ..."
	}
	return fmt.Sprintf("{ %s%s }", strings.Join(parts, ", "), suffix)
}

func (t TRecord) Apply(s Subst) Type {
	fields := make(map[string]Type, len(t.Fields))
	for k, v := range t.Fields {
		fields[k] = v.Apply(s)
	}
	return TRecord{Fields: fields, Open: t.Open}
}

func (t TRecord) FreeVars() []int {
	keys := make([]string, 0, len(t.Fields))
	for k := range t.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var vars []int
	for _, k := range keys {
		vars = append(vars, t.Fields[k].FreeVars()...)
	}
	return uniqueInts(vars)
}

// TList is a homogeneous list type.
type TList struct {
	Elem Type
}

func (t TList) String() string     { return fmt.Sprintf("List %s", t.Elem.String()) }
func (t TList) Apply(s Subst) Type { return TList{Elem: t.Elem.Apply(s)} }
func (t TList) FreeVars() []int    { return t.Elem.FreeVars() }

// TApp is a generic type application: a named constructor applied to
// one or more argument types (e.g. `Option a`, `Result e a`).
type TApp struct {
	Constructor string
	Args        []Type
}

func (t TApp) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s %s", t.Constructor, strings.Join(parts, " "))
}

func (t TApp) Apply(s Subst) Type {
	args := make([]Type, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Apply(s)
	}
	return TApp{Constructor: t.Constructor, Args: args}
}

func (t TApp) FreeVars() []int {
	var vars []int
	for _, a := range t.Args {
		vars = append(vars, a.FreeVars()...)
	}
	return uniqueInts(vars)
}

func uniqueInts(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
