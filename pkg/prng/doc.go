// Package prng provides the deterministic pseudo-random source shared by
// every domain evaluated within one run.
//
// # Overview
//
// A Session is created once per run and threaded explicitly through the
// evaluation stack (by the runner, then by every domain that draws a
// sample). This is a deliberate departure from a package-level global
// random source: a run-scoped object can be seeded, replayed, and reused
// across properties without any single domain or quantifier reaching
// for ambient global state.
//
// # Reproducibility
//
// Session wraps a single math/rand.Rand. Given the same seed and the
// same ordered sequence of primitive calls (IntRange, Float64Range,
// Bool, Choice, Shuffle, ...), a Session reproduces the same outputs
// every time. Domains must never branch on wall-clock time, map
// iteration order, or any other source not captured by the Session —
// doing so breaks the reproducibility contract every other part of this
// module depends on.
//
// # Thread safety
//
// A Session is NOT safe for concurrent use. Evaluation in this module
// is single-threaded and ordered (see the runner package); a Session
// must never be shared across goroutines that draw samples concurrently.
package prng
