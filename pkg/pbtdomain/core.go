package pbtdomain

import (
	"errors"

	"github.com/dshills/pbt/pkg/prng"
)

// ErrExhausted is returned by Iterator.Next when an exhaustive iterator
// (or a canonical iterator wrapped in That) has produced every sample it
// will ever produce.
var ErrExhausted = errors.New("pbtdomain: iterator exhausted")

// ErrDepthExceeded is the internal recursion-depth signal a Recursive
// domain raises once its sub_i exceeds its configured max depth. It is
// not a user-facing error: Or catches it to restart or drop the
// offending alternative. If it escapes every alternative of every
// enclosing Or, it surfaces as a fatal evaluation error.
var ErrDepthExceeded = errors.New("pbtdomain: recursion depth exceeded")

// ErrNotExhaustible is returned by Exhaustive when called on a domain
// that does not report IsExhaustible() true.
var ErrNotExhaustible = errors.New("pbtdomain: domain is not exhaustible")

// Iterator produces one sample per call to Next. A nil error means the
// sample is valid. ErrExhausted means the stream is over (only
// returned by finite streams: exhaustive iterators and canonical
// iterators wrapped by That). ErrDepthExceeded is the internal union
// signal described above. Any other error is a fatal evaluation error.
type Iterator interface {
	Next() (any, error)
}

// IteratorFunc adapts a plain function to the Iterator interface.
type IteratorFunc func() (any, error)

// Next implements Iterator.
func (f IteratorFunc) Next() (any, error) { return f() }

// Domain is a set of values together with a sampling contract. The
// engine's strong typing stops here: every Domain produces `any`, since
// a union of domains of different element types must be able to live
// in a single stream.
type Domain interface {
	// IsExhaustible reports whether Exhaustive is implemented.
	IsExhaustible() bool

	// Canonical returns a fresh, typically-infinite random sample
	// stream. Every call returns an independently-shuffled/seeded
	// iterator drawing from s.
	Canonical(s *prng.Session) Iterator

	// Exhaustive returns a fresh finite iterator enumerating every
	// element of the domain exactly once. Returns ErrNotExhaustible if
	// IsExhaustible() is false.
	Exhaustive(s *prng.Session) (Iterator, error)
}

// Sized is implemented by domains that know their exact finite
// cardinality without having to enumerate. Or uses it to guard
// MaxExhaustiveProduct (see union.go) before committing to an
// exhaustive walk.
type Sized interface {
	Len() int
}

// drain pulls up to n samples from it, stopping early (without error)
// if it returns ErrExhausted, and propagating any other error
// (including ErrDepthExceeded) to the caller.
func drain(it Iterator, n int) ([]any, error) {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := it.Next()
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
