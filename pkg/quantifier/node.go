package quantifier

import (
	"fmt"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
)

// Node is one vertex of a property tree: a Predicate leaf or a
// quantifier (ForAll/Exists) wrapping a child Node.
type Node interface {
	// Evaluate returns the outcome stream produced by this node against
	// env, drawing samples from s.
	Evaluate(env *pbtenv.Env, s *prng.Session) OutcomeIterator
}

// DomainArg is whatever a quantifier's domain_obj may be: a concrete
// pbtdomain.Domain, a *pbtdomain.DomainExpr to be reduced against the
// current Env, or any value Coerce can turn into a Domain.
type DomainArg any

// resolveDomain reduces arg against env, coercing or deferring as needed.
func resolveDomain(arg DomainArg, env *pbtenv.Env) (pbtdomain.Domain, error) {
	switch v := arg.(type) {
	case *pbtdomain.DomainExpr:
		return v.Reduce(env)
	case pbtdomain.Domain:
		return v, nil
	default:
		return pbtdomain.Coerce(arg)
	}
}

func errShadowed(varName string) error {
	return fmt.Errorf("quantifier: %w: %q", pbtenv.ErrShadowedVariable, varName)
}
