package pbtenv

import (
	"errors"
	"fmt"
)

// ErrShadowedVariable is returned (wrapped) when a quantifier attempts
// to bind a variable name that is already bound in its enclosing
// environment.
var ErrShadowedVariable = errors.New("pbtenv: variable already bound in enclosing environment")

// Env is an immutable, ordered mapping from variable name to sampled
// value. Each quantifier layers exactly one new binding on top of its
// parent's Env; a fresh Env is never mutated in place, so a quantifier's
// own snapshot stays independent of its siblings and of samples drawn
// after it returns.
//
// The zero value is the empty environment.
type Env struct {
	name   string
	value  any
	parent *Env
}

// Empty returns the empty environment.
func Empty() *Env {
	return nil
}

// Has reports whether name is bound anywhere in e (including parents).
func (e *Env) Has(name string) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return true
		}
	}
	return false
}

// Get returns the value bound to name and whether it was found.
func (e *Env) Get(name string) (any, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}

// Extend returns a new Env with name bound to value, layered on top of
// e. It returns ErrShadowedVariable if name is already bound in e.
func (e *Env) Extend(name string, value any) (*Env, error) {
	if e.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrShadowedVariable, name)
	}
	return &Env{name: name, value: value, parent: e}, nil
}

// Names returns every bound variable name, outermost binding first.
func (e *Env) Names() []string {
	var names []string
	for cur := e; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	// reverse into binding order (outermost first)
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// ToMap flattens e into a plain map, convenient for passing to a
// predicate function or for rendering in a report.
func (e *Env) ToMap() map[string]any {
	m := make(map[string]any)
	for cur := e; cur != nil; cur = cur.parent {
		if _, exists := m[cur.name]; !exists {
			m[cur.name] = cur.value
		}
	}
	return m
}

// String renders e as "name1=value1, name2=value2, ..." in binding
// order, for diagnostics and counterexample reports.
func (e *Env) String() string {
	names := e.Names()
	m := e.ToMap()
	s := ""
	for i, name := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", name, m[name])
	}
	return s
}
