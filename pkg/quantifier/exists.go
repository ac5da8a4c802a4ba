package quantifier

import (
	"errors"
	"fmt"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
)

// Exists quantifies Var over Domain, witnessing Child (which must be a
// Predicate: this precludes nesting another quantifier inside an
// Exists). It yields exactly one Outcome: Ok on the first
// witness, the child's PredicateError if one is raised, or
// CounterExample if the exhaustive domain is exhausted without a
// witness.
type Exists struct {
	Var    string
	Domain DomainArg
	Child  *Predicate
}

// NewExists builds an Exists node. child must be a *Predicate; this is
// a deliberate restriction (no ∃x.∀y... nesting).
func NewExists(varName string, domain DomainArg, child Node) (*Exists, error) {
	pred, ok := child.(*Predicate)
	if !ok {
		return nil, fmt.Errorf("quantifier: Exists child must be a Predicate, got %T", child)
	}
	return &Exists{Var: varName, Domain: domain, Child: pred}, nil
}

// Evaluate implements Node.
func (e *Exists) Evaluate(env *pbtenv.Env, s *prng.Session) OutcomeIterator {
	if env.Has(e.Var) {
		return fatal(errShadowed(e.Var))
	}
	d, err := resolveDomain(e.Domain, env)
	if err != nil {
		return fatal(err)
	}
	if !d.IsExhaustible() {
		return fatal(fmt.Errorf("quantifier: cannot check existence over a non-exhaustible domain for %q", e.Var))
	}
	it, err := d.Exhaustive(s)
	if err != nil {
		return fatal(err)
	}

	done := false
	return OutcomeIteratorFunc(func() (Outcome, error) {
		if done {
			return Outcome{}, ErrStreamDone
		}
		done = true
		for {
			sample, err := it.Next()
			if err != nil {
				if errors.Is(err, pbtdomain.ErrExhausted) {
					return Outcome{Kind: CounterExample, Env: env}, nil
				}
				return Outcome{}, err
			}
			newEnv, err := env.Extend(e.Var, sample)
			if err != nil {
				return Outcome{}, err
			}
			childOut, err := e.Child.Evaluate(newEnv, s).Next()
			if err != nil {
				return Outcome{}, err
			}
			switch childOut.Kind {
			case Ok, PredicateErrorKind:
				return childOut, nil
			default:
				continue
			}
		}
	})
}
