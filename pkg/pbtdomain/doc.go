// Package pbtdomain implements the domain algebra: the Domain
// abstraction and the built-in domain constructors a property draws its
// quantified variables from.
//
// A Domain is a set of values of some type, plus two ways to traverse
// it:
//
//   - a canonical iterator, an unbounded lazy sample stream ordered by
//     the shared prng.Session;
//   - an optional exhaustive iterator, a finite lazy enumeration of
//     every element exactly once, available only when the domain
//     reports IsExhaustible() true.
//
// Domains compose: Or builds a union, That bounds a canonical stream to
// a fixed number of samples, Recursive builds a self-referential domain
// whose termination comes from a union alternative that isn't
// recursive. Coerce turns an arbitrary user value — a literal, a slice,
// a lazy generator factory — into a Domain.
//
// Iteration is pull-based: Iterator.Next is called once per sample.
// Union needs this shape because it must catch a depth-exceeded signal
// from one alternative mid-round and restart only that alternative's
// iterator, something a push-based range-over-func iterator cannot
// express.
package pbtdomain
