package quantifier

import (
	"errors"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
)

// DefaultNSamples is the canonical-iterator sample budget a ForAll uses
// when none is given explicitly.
const DefaultNSamples = 100

// ForAll quantifies Var over Domain, delegating each sample to Child.
// It is a streaming node: it never decides pass/fail itself, it only
// surfaces every outcome its child produces, letting the runner choose
// when to stop pulling.
type ForAll struct {
	Var      string
	Domain   DomainArg
	Child    Node
	NSamples int
}

// NewForAll builds a ForAll node. nSamples <= 0 falls back to
// DefaultNSamples.
func NewForAll(varName string, domain DomainArg, child Node, nSamples int) *ForAll {
	if nSamples <= 0 {
		nSamples = DefaultNSamples
	}
	return &ForAll{Var: varName, Domain: domain, Child: child, NSamples: nSamples}
}

// Evaluate implements Node.
func (f *ForAll) Evaluate(env *pbtenv.Env, s *prng.Session) OutcomeIterator {
	if env.Has(f.Var) {
		return fatal(errShadowed(f.Var))
	}
	d, err := resolveDomain(f.Domain, env)
	if err != nil {
		return fatal(err)
	}

	var sampleIt pbtdomain.Iterator
	if d.IsExhaustible() {
		it, err := d.Exhaustive(s)
		if err != nil {
			return fatal(err)
		}
		sampleIt = it
	} else {
		sampleIt = pbtdomain.That(d, f.NSamples).Canonical(s)
	}

	var childIt OutcomeIterator
	return OutcomeIteratorFunc(func() (Outcome, error) {
		for {
			if childIt != nil {
				out, err := childIt.Next()
				if err == nil {
					return out, nil
				}
				if errors.Is(err, ErrStreamDone) {
					childIt = nil
					continue
				}
				return Outcome{}, err
			}

			sample, err := sampleIt.Next()
			if err != nil {
				if errors.Is(err, pbtdomain.ErrExhausted) {
					return Outcome{}, ErrStreamDone
				}
				return Outcome{}, err
			}
			newEnv, err := env.Extend(f.Var, sample)
			if err != nil {
				return Outcome{}, err
			}
			childIt = f.Child.Evaluate(newEnv, s)
		}
	})
}
