package quantifier

import (
	"errors"
	"fmt"

	"github.com/dshills/pbt/pkg/pbtenv"
)

// ErrStreamDone is returned by OutcomeIterator.Next once a node's
// outcome stream is exhausted. It is the quantifier-tree analogue of
// pbtdomain.ErrExhausted and is never a fatal error: it simply means
// "no more outcomes from this node."
var ErrStreamDone = errors.New("quantifier: outcome stream done")

// Kind classifies an Outcome.
type Kind int

const (
	// Ok means the predicate (or every descendant outcome, for a
	// quantifier) held.
	Ok Kind = iota
	// CounterExample means a predicate returned false for Env, or an
	// Exists domain was exhausted without a witness.
	CounterExample
	// PredicateErrorKind means a predicate panicked while evaluating
	// Env; Err holds the recovered value.
	PredicateErrorKind
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "Ok"
	case CounterExample:
		return "CounterExample"
	case PredicateErrorKind:
		return "PredicateError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of evaluating one sample of a property tree.
type Outcome struct {
	Kind Kind
	Env  *pbtenv.Env
	Err  error // non-nil only when Kind == PredicateErrorKind
}

func (o Outcome) String() string {
	switch o.Kind {
	case PredicateErrorKind:
		return fmt.Sprintf("PredicateError(%v, %s)", o.Err, o.Env)
	default:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Env)
	}
}

// OutcomeIterator produces one Outcome per call to Next. ErrStreamDone
// signals a clean end of stream; any other error is fatal.
type OutcomeIterator interface {
	Next() (Outcome, error)
}

// OutcomeIteratorFunc adapts a plain function to OutcomeIterator.
type OutcomeIteratorFunc func() (Outcome, error)

// Next implements OutcomeIterator.
func (f OutcomeIteratorFunc) Next() (Outcome, error) { return f() }

// fatal returns a single-shot OutcomeIterator that always fails with err.
func fatal(err error) OutcomeIterator {
	return OutcomeIteratorFunc(func() (Outcome, error) { return Outcome{}, err })
}
