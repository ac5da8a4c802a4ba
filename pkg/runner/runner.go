package runner

import (
	"context"
	"errors"

	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
	"github.com/dshills/pbt/pkg/quantifier"
)

// Property pairs a human-readable name with the root of its property
// tree, as collected from a candidate source (pkg/collect) or built
// directly by a caller.
type Property struct {
	Name string
	Root quantifier.Node
}

// Runner drives a set of properties sequentially against one shared
// prng.Session, recording the seed so a failing run can be replayed.
type Runner struct {
	seed  uint64
	sink  EventSink
	clock *prng.Session
}

// NewRunner creates a Runner seeded with seed. A seed of 0 derives one
// from the current time (see prng.NewSession); the resolved seed is
// always available via Seed() so a caller can log it before or after
// the run.
func NewRunner(seed uint64) *Runner {
	s := prng.NewSession(seed)
	return &Runner{seed: s.GetSeed(), clock: s}
}

// NewRunnerWithEventSink is NewRunner plus a per-sample EventSink, for
// callers that want to observe progress as the run proceeds.
func NewRunnerWithEventSink(seed uint64, sink EventSink) *Runner {
	r := NewRunner(seed)
	r.sink = sink
	return r
}

// Seed returns the seed this Runner's session was created with.
func (r *Runner) Seed() uint64 { return r.seed }

// Run reseeds the Runner's shared session with Seed(), then drives every
// property's outcome stream to completion (or to its first failure), in
// order, against that session. It checks ctx at every sample boundary
// and returns the partial Summary built so far if ctx is cancelled
// mid-run.
func (r *Runner) Run(ctx context.Context, properties []Property) (*Summary, error) {
	r.clock.SetSeed(r.seed)
	summary := &Summary{Seed: r.seed}

	for _, prop := range properties {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result, err := r.runOne(ctx, prop)
		if err != nil {
			return summary, err
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

func (r *Runner) runOne(ctx context.Context, prop Property) (PropertyResult, error) {
	result := PropertyResult{Name: prop.Name}
	it := prop.Root.Evaluate(pbtenv.Empty(), r.clock)

	index := 0
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		out, err := it.Next()
		if err != nil {
			if errors.Is(err, quantifier.ErrStreamDone) {
				result.Status = StatusPassed
				result.SamplesRun = index
				return result, nil
			}
			result.Status = StatusErrored
			result.SamplesRun = index
			result.Err = err
			return result, nil
		}

		index++
		if r.sink != nil {
			r.sink(Event{Property: prop.Name, Index: index, Outcome: out})
		}

		switch out.Kind {
		case quantifier.Ok:
			continue
		default: // CounterExample or PredicateError
			outcome := out
			result.Status = StatusFailed
			result.SamplesRun = index
			result.Failing = &outcome
			return result, nil
		}
	}
}
