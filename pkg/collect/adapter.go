package collect

import (
	"github.com/dshills/pbt/pkg/quantifier"
	"github.com/dshills/pbt/pkg/runner"
)

// Adapter recognises one kind of registered Candidate and, if it
// matches, returns the runner.Property it denotes. This is an
// extension point ("ask each adapter 'do you recognise this?' and
// dispatch to the first match") for host applications that want to
// collect more than the library's own property-tree roots.
type Adapter interface {
	Recognize(c Candidate) (runner.Property, bool)
}

// NodeAdapter is the library's own adapter: it recognises a Candidate
// whose Obj is already a runner.Property, or a bare quantifier.Node
// (the root of a property tree) which it wraps using the Candidate's
// registered name.
type NodeAdapter struct{}

// Recognize implements Adapter.
func (NodeAdapter) Recognize(c Candidate) (runner.Property, bool) {
	switch v := c.Obj.(type) {
	case runner.Property:
		return v, true
	case quantifier.Node:
		return runner.Property{Name: c.Name, Root: v}, true
	default:
		return runner.Property{}, false
	}
}
