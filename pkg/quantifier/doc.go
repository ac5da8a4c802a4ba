// Package quantifier implements the property tree: Predicate leaves and
// ForAll/Exists quantifier nodes that evaluate against a pbtenv.Env and
// stream Outcome values.
//
// Evaluation is pull-based, mirroring pbtdomain.Iterator: a Node's
// Evaluate returns an OutcomeIterator whose Next is called once per
// outcome. ForAll flattens its child's outcomes into its own stream one
// sample at a time, advancing to the next sample only once the current
// child stream reports ErrStreamDone — the same restart-on-exhaustion
// shape pbtdomain.Or uses for its alternatives.
//
// A Node's Evaluate can fail in two distinct ways: a fatal evaluation
// error (a shadowed variable, a DomainExpr over an unbound name, a
// non-exhaustible Exists domain) surfaces as a non-nil, non-ErrStreamDone
// error from Next — this is a malformed property tree, not a predicate
// result. A predicate that throws is never a fatal error: Predicate
// recovers the panic and reports it as a PredicateError Outcome, exactly
// like a CounterExample, letting the runner decide what to do with it.
package quantifier
