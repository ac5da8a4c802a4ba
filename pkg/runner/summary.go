package runner

import "github.com/dshills/pbt/pkg/quantifier"

// Status classifies how a single property's evaluation ended.
type Status int

const (
	// StatusPassed means the outcome stream exhausted cleanly with
	// every sample Ok (ForAll), or a witness was found (Exists).
	StatusPassed Status = iota
	// StatusFailed means a CounterExample or PredicateError outcome was
	// produced.
	StatusFailed
	// StatusErrored means the property tree itself was malformed (a
	// shadowed variable, an unbound DomainExpr, a non-exhaustible
	// Exists domain) — a fatal evaluation error, not a predicate result.
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// PropertyResult is one property's outcome.
type PropertyResult struct {
	Name       string
	Status     Status
	SamplesRun int
	// Failing holds the CounterExample or PredicateError outcome that
	// stopped the property, nil when Status is StatusPassed.
	Failing *quantifier.Outcome
	// Err holds the fatal evaluation error, set only when Status is
	// StatusErrored.
	Err error
}

// Summary aggregates every property's result from one run.
type Summary struct {
	Seed    uint64
	Results []PropertyResult
}

// Passed reports the number of properties that passed.
func (s *Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == StatusPassed {
			n++
		}
	}
	return n
}

// Failed reports the number of properties that failed or errored.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Passed()
}

// AllPassed reports whether every property in the run passed.
func (s *Summary) AllPassed() bool {
	return s.Failed() == 0
}
