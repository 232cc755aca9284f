package types

// Scheme pairs a set of quantified (universally generalized) variable
// ids with a type. Instantiating a scheme replaces every quantified id
// with a fresh variable (spec.md §3, §4.3).
type Scheme struct {
	Vars []int
	Type Type
}

// Mono wraps t as a scheme with no quantified variables: a monomorphic
// binding, used for function parameters, pattern captures, and ambient
// provisions (spec.md §4.3).
func Mono(t Type) Scheme {
	return Scheme{Type: t}
}

// Instantiate replaces every quantified variable in the scheme with a
// fresh one drawn from fresh, and applies that substitution to the
// scheme's type.
func (s Scheme) Instantiate(fresh func() TVar) Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	subst := make(Subst, len(s.Vars))
	for _, v := range s.Vars {
		subst[v] = fresh()
	}
	return s.Type.Apply(subst)
}

// FreeVars returns the type's free variables that are not already bound
// by the scheme's own quantifiers.
func (s Scheme) FreeVars() []int {
	bound := make(map[int]bool, len(s.Vars))
	for _, v := range s.Vars {
		bound[v] = true
	}
	var out []int
	for _, v := range s.Type.FreeVars() {
		if !bound[v] {
			out = append(out, v)
		}
	}
	return out
}

// Generalize builds a scheme quantifying every free variable of t that
// does not occur free in envVars — the sole generalization point,
// applied at `let`-statement boundaries (spec.md §4.3, §9).
func Generalize(t Type, envVars map[int]bool) Scheme {
	var quantified []int
	for _, v := range t.FreeVars() {
		if !envVars[v] {
			quantified = append(quantified, v)
		}
	}
	return Scheme{Vars: quantified, Type: t}
}
