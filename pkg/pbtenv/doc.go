// Package pbtenv provides Env, the ordered mapping from quantified
// variable name to sampled value that every quantifier node builds
// incrementally and every predicate receives.
//
// Variables are introduced top-down, one per enclosing quantifier. A
// name must never rebind an entry already present — shadowing a
// variable is a configuration error, not silently allowed.
package pbtenv
