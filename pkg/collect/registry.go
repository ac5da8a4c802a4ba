package collect

import (
	"path/filepath"
	"runtime"
	"sync"
)

// Candidate is one top-level definition discovered by the collection
// process: a name, the source file it was registered from, and the
// value itself. Adapters decide what, if anything, a Candidate denotes.
type Candidate struct {
	Name string
	File string
	Obj  any
}

var (
	registryMu sync.Mutex
	registered []Candidate
)

// Register records obj under name, callable from a package's init() the
// way a database/sql driver registers itself. The caller's source file
// is captured automatically via runtime.Caller so Collect can filter the
// registry down to the paths a run was asked to cover.
func Register(name string, obj any) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		file = ""
	} else if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = append(registered, Candidate{Name: name, File: file, Obj: obj})
}

// reset clears the registry. It is unexported and has no callers; it is
// not part of the public surface.
func reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = nil
}

func snapshot() []Candidate {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Candidate, len(registered))
	copy(out, registered)
	return out
}
