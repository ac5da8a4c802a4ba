package quantifier

import (
	"fmt"

	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
)

// PredicateFunc is a leaf property: given the bound environment, it
// reports whether the property holds. A panic inside fn is recovered by
// Predicate.Evaluate and surfaced as a PredicateError Outcome rather
// than crashing the run — the only place in the engine that recovers a
// panic.
type PredicateFunc func(env *pbtenv.Env) bool

// Predicate is a leaf of the property tree.
type Predicate struct {
	fn   PredicateFunc
	name string
}

// NewPredicate wraps fn as a property tree leaf. name is used only for
// diagnostics (e.g. in report output); pass "" to fall back to a
// generic label.
func NewPredicate(name string, fn PredicateFunc) *Predicate {
	return &Predicate{fn: fn, name: name}
}

func (p *Predicate) String() string {
	if p.name != "" {
		return p.name
	}
	return "predicate"
}

// Evaluate yields exactly one Outcome: Ok, CounterExample, or
// PredicateError, then ErrStreamDone.
func (p *Predicate) Evaluate(env *pbtenv.Env, s *prng.Session) OutcomeIterator {
	done := false
	return OutcomeIteratorFunc(func() (out Outcome, err error) {
		if done {
			return Outcome{}, ErrStreamDone
		}
		done = true
		return p.call(env), nil
	})
}

func (p *Predicate) call(env *pbtenv.Env) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			recovered, ok := r.(error)
			if !ok {
				recovered = fmt.Errorf("%v", r)
			}
			out = Outcome{Kind: PredicateErrorKind, Env: env, Err: recovered}
		}
	}()
	if p.fn(env) {
		return Outcome{Kind: Ok, Env: env}
	}
	return Outcome{Kind: CounterExample, Env: env}
}
