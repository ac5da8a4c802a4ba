// Package runner drives a collected set of property trees against one
// shared prng.Session, aggregating their outcome streams into a
// Summary.
//
// Outcomes are pulled one at a time: an Ok advances the sample count; a
// CounterExample or PredicateError stops the property immediately and
// records the failing Env; clean exhaustion of the stream records
// StatusPassed with the number of samples run. The runner itself
// performs no I/O — cmd/pbtcheck is
// responsible for turning a Summary into console output or a report.
package runner
