package pbtdomain

import "github.com/dshills/pbt/pkg/prng"

// RecursiveOption configures Recursive.
type RecursiveOption func(*recursiveDomain)

// WithMaxDepth overrides the default max recursion depth of 6.
func WithMaxDepth(n int) RecursiveOption {
	return func(d *recursiveDomain) { d.maxDepth = n }
}

// Recursive builds a self-referential domain from step, which receives
// a placeholder "self" Domain to embed in the tree it returns (typically
// inside an Or alongside a non-recursive base case). Every sample drawn
// through self descends one level; once depth exceeds maxDepth (default
// 6), self's iterator raises ErrDepthExceeded instead of recursing
// further. Termination is the caller's responsibility: a Recursive
// domain with no non-recursive Or alternative never produces a sample
// within budget.
func Recursive(step func(self Domain) Domain, opts ...RecursiveOption) Domain {
	d := &recursiveDomain{step: step, maxDepth: 6}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type recursiveDomain struct {
	step     func(self Domain) Domain
	maxDepth int
}

func (d *recursiveDomain) IsExhaustible() bool { return false }

func (d *recursiveDomain) Canonical(s *prng.Session) Iterator {
	depth := new(int)
	self := &recursiveRef{parent: d, depth: depth}
	return d.step(self).Canonical(s)
}

func (d *recursiveDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// recursiveRef is the "self" placeholder handed to step. Sampling it
// increments the shared depth counter for the duration of the
// recursive descent and decrements it again on return, so sibling
// occurrences of self within one step's tree (e.g. both sides of a
// Tuple) are counted independently.
type recursiveRef struct {
	parent *recursiveDomain
	depth  *int
}

func (r *recursiveRef) IsExhaustible() bool { return false }

func (r *recursiveRef) Canonical(s *prng.Session) Iterator {
	return IteratorFunc(func() (any, error) {
		*r.depth++
		defer func() { *r.depth-- }()
		if *r.depth > r.parent.maxDepth {
			return nil, ErrDepthExceeded
		}
		return r.parent.step(r).Canonical(s).Next()
	})
}

func (r *recursiveRef) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}
