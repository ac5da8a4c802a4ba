package pbtdomain

import (
	"errors"
	"fmt"

	"github.com/dshills/pbt/pkg/pbtenv"
)

// ErrNoFreeVariables is returned by Bound when called with zero
// variable names. Go has no reflection-based way to detect a closure's
// free variables, so the caller names the bound variables explicitly.
// A DomainExpr with no named variables cannot depend on anything a
// quantifier binds, so it is rejected as a configuration error rather
// than silently accepted.
var ErrNoFreeVariables = errors.New("pbtdomain: DomainExpr must name at least one bound variable")

// DomainExpr is a dependent/deferred domain that can only be built once
// its free variables are bound in an enclosing quantifier's Env (e.g.
// "a list whose length is the previously-bound n").
type DomainExpr struct {
	fn   func(env *pbtenv.Env) (any, error)
	vars []string
}

// Bound constructs a DomainExpr. fn is invoked with the Env in effect
// at the point of use, once every name in vars is confirmed bound; its
// return value is coerced via Coerce into a concrete Domain. vars must
// be non-empty.
func Bound(fn func(env *pbtenv.Env) (any, error), vars ...string) (*DomainExpr, error) {
	if len(vars) == 0 {
		return nil, ErrNoFreeVariables
	}
	return &DomainExpr{fn: fn, vars: append([]string(nil), vars...)}, nil
}

// Vars returns the variable names this expression depends on.
func (e *DomainExpr) Vars() []string {
	return append([]string(nil), e.vars...)
}

// Reduce resolves e against env, returning a concrete Domain. It fails
// if any named variable is not yet bound in env.
func (e *DomainExpr) Reduce(env *pbtenv.Env) (Domain, error) {
	for _, name := range e.vars {
		if !env.Has(name) {
			return nil, fmt.Errorf("pbtdomain: DomainExpr references unbound variable %q", name)
		}
	}
	v, err := e.fn(env)
	if err != nil {
		return nil, fmt.Errorf("pbtdomain: DomainExpr reduction failed: %w", err)
	}
	return Coerce(v)
}
