// Package property is a decorator surface: ForAllVar and ExistsVar each
// bind exactly one quantified variable and
// wrap their argument in a quantifier.Predicate if it isn't already a
// quantifier.Node. Multiple quantified variables are expressed by
// stacking calls, outermost first — Go has no anonymous-kwargs
// decorator syntax, so stacking here is ordinary sequential
// construction with explicit error checks rather than chained
// `@forall(...)` annotations.
package property
