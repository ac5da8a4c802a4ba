package property

import (
	"fmt"

	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/quantifier"
)

// Child is whatever ForAllVar/ExistsVar may wrap: an already-built
// quantifier.Node (to stack quantifiers), or a bare predicate function
// to be lifted into a quantifier.Predicate automatically.
type Child any

// asNode wraps c in a Predicate if it isn't already a quantifier node.
func asNode(c Child) (quantifier.Node, error) {
	switch v := c.(type) {
	case quantifier.Node:
		return v, nil
	case quantifier.PredicateFunc:
		return quantifier.NewPredicate("", v), nil
	case func(*pbtenv.Env) bool:
		return quantifier.NewPredicate("", quantifier.PredicateFunc(v)), nil
	default:
		return nil, fmt.Errorf("property: %T is neither a quantifier.Node nor a predicate function", c)
	}
}

// ForAllVar binds varName over domain and returns a factory that wraps
// child (a quantifier.Node or a bare predicate) into a *quantifier.ForAll.
// nSamples <= 0 falls back to quantifier.DefaultNSamples.
func ForAllVar(varName string, domain quantifier.DomainArg, nSamples int) func(child Child) (*quantifier.ForAll, error) {
	return func(child Child) (*quantifier.ForAll, error) {
		node, err := asNode(child)
		if err != nil {
			return nil, err
		}
		return quantifier.NewForAll(varName, domain, node, nSamples), nil
	}
}

// ExistsVar binds varName over domain and returns a factory that wraps
// child into a *quantifier.Exists. child (after wrapping) must reduce to
// a *quantifier.Predicate; stacking another quantifier under ExistsVar
// is rejected.
func ExistsVar(varName string, domain quantifier.DomainArg) func(child Child) (*quantifier.Exists, error) {
	return func(child Child) (*quantifier.Exists, error) {
		node, err := asNode(child)
		if err != nil {
			return nil, err
		}
		return quantifier.NewExists(varName, domain, node)
	}
}
