package runner

import "github.com/dshills/pbt/pkg/quantifier"

// Event is emitted once per outcome while a property is being
// evaluated, giving a caller (such as cmd/pbtcheck's verbose log) a
// live view of the run without the runner itself doing any I/O.
type Event struct {
	Property string
	Index    int
	Outcome  quantifier.Outcome
}

// EventSink receives Events as they occur. A nil sink is always valid:
// Run simply skips emitting.
type EventSink func(Event)
