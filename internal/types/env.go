package types

// Env is a linked-scope environment mapping names to type schemes.
// lookup walks outward through parent scopes; extend creates a child.
// Grounded on the teacher's symbol-table scoping
// (github.com/funvibe/funxy/internal/symbols: ScopeType/ScopeGlobal/
// ScopeFunction/ScopeBlock) but narrowed to the single concern the
// inferer needs: name -> Scheme resolution.
type Env struct {
	parent *Env
	table  map[string]Scheme
}

// NewEnv creates a root environment with no parent — used once per
// compilation to hold the built-in combinator schemes (spec.md §4.3).
func NewEnv() *Env {
	return &Env{table: make(map[string]Scheme)}
}

// Extend creates a child scope of e. Bindings added to the child do not
// affect e; lookups in the child fall through to e when not found
// locally.
func (e *Env) Extend() *Env {
	return &Env{parent: e, table: make(map[string]Scheme)}
}

// Define binds name to scheme in this scope (not a parent scope).
func (e *Env) Define(name string, scheme Scheme) {
	e.table[name] = scheme
}

// Lookup walks outward from e, returning the nearest binding for name.
func (e *Env) Lookup(name string) (Scheme, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if s, ok := scope.table[name]; ok {
			return s, true
		}
	}
	return Scheme{}, false
}

// FreeTypeVars returns every free variable id reachable from any scheme
// bound anywhere in e's chain — the "free in the environment" set
// generalization must exclude (spec.md §3, §4.3).
func (e *Env) FreeTypeVars() map[int]bool {
	out := make(map[int]bool)
	for scope := e; scope != nil; scope = scope.parent {
		for _, scheme := range scope.table {
			for _, v := range scheme.FreeVars() {
				out[v] = true
			}
		}
	}
	return out
}
