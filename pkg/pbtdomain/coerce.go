package pbtdomain

import (
	"fmt"
	"reflect"

	"github.com/dshills/pbt/pkg/prng"
)

// Generator is a deferred/callable producing a fresh snapshot of
// values on demand — the lazy-generator-factory case of the coercion
// rules. Coerce runs it once per fresh Canonical/Exhaustive iterator,
// exactly like FromSlice but with the snapshot taken lazily.
type Generator func() []any

// coerceOptions carries the optional is_exhaustible hint accepted by
// Coerce.
type coerceOptions struct {
	hint    bool
	hintSet bool
}

// CoerceOption configures Coerce.
type CoerceOption func(*coerceOptions)

// WithExhaustibleHint marks the coerced domain as exhaustible (or
// explicitly not). Passing a hint that conflicts with a Domain's own
// IsExhaustible() is a configuration error.
func WithExhaustibleHint(exhaustible bool) CoerceOption {
	return func(o *coerceOptions) {
		o.hint = exhaustible
		o.hintSet = true
	}
}

// Coerce canonicalizes an arbitrary user value into a Domain; first
// match wins:
//
//  1. v is already a Domain: returned as-is; a conflicting
//     WithExhaustibleHint is a configuration error.
//  2. v is a slice/array (an eager iterable): wrapped as FromSlice.
//  3. v is a Generator (a lazy generator factory): wrapped as FromFunc.
//  4. otherwise: Singleton(v).
func Coerce(v any, opts ...CoerceOption) (Domain, error) {
	var o coerceOptions
	for _, opt := range opts {
		opt(&o)
	}

	if d, ok := v.(Domain); ok {
		if o.hintSet && o.hint != d.IsExhaustible() {
			return nil, fmt.Errorf("pbtdomain: exhaustible hint %v conflicts with domain's own IsExhaustible()=%v", o.hint, d.IsExhaustible())
		}
		return d, nil
	}

	if gen, ok := v.(Generator); ok {
		return FromFunc(gen, o.hint && o.hintSet), nil
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return FromSlice(items, o.hint && o.hintSet), nil
	}

	return Singleton(v), nil
}

// sliceDomain implements the eager-iterable coercion case: a canonical
// iterator that shuffles a snapshot once per fresh iterator, then loops
// it forever, and (when exhaustible) an exhaustive iterator that yields
// the snapshot once in its original order.
type sliceDomain struct {
	snapshot    func() []any
	exhaustible bool
}

// FromSlice wraps a pre-materialized slice of values as a Domain.
func FromSlice(items []any, exhaustible bool) Domain {
	cp := append([]any(nil), items...)
	return &sliceDomain{
		snapshot:    func() []any { return cp },
		exhaustible: exhaustible,
	}
}

// FromFunc wraps a lazy generator factory as a Domain. The factory is
// invoked once per fresh Canonical/Exhaustive iterator to take a new
// snapshot.
func FromFunc(factory Generator, exhaustible bool) Domain {
	return &sliceDomain{snapshot: func() []any { return factory() }, exhaustible: exhaustible}
}

func (d *sliceDomain) IsExhaustible() bool { return d.exhaustible }

func (d *sliceDomain) Canonical(s *prng.Session) Iterator {
	items := append([]any(nil), d.snapshot()...)
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	idx := 0
	return IteratorFunc(func() (any, error) {
		if len(items) == 0 {
			// Looping an empty domain forever would spin without
			// ever returning; treat it the same as a single-valued
			// singleton would not apply here, so surface exhaustion.
			return nil, ErrExhausted
		}
		v := items[idx%len(items)]
		idx++
		return v, nil
	})
}

func (d *sliceDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	if !d.exhaustible {
		return nil, ErrNotExhaustible
	}
	items := d.snapshot()
	idx := 0
	return IteratorFunc(func() (any, error) {
		if idx >= len(items) {
			return nil, ErrExhausted
		}
		v := items[idx]
		idx++
		return v, nil
	}), nil
}

func (d *sliceDomain) Len() int { return len(d.snapshot()) }

// singletonDomain always yields the same value v.
type singletonDomain struct {
	v any
}

// Singleton returns a domain whose canonical iterator is an infinite
// stream of v and whose exhaustive iterator yields exactly one v.
func Singleton(v any) Domain {
	return &singletonDomain{v: v}
}

// Just is an alias for Singleton kept for readability at call sites
// that build large unions of concrete alternatives.
func Just(v any) Domain {
	return Singleton(v)
}

func (d *singletonDomain) IsExhaustible() bool { return true }

func (d *singletonDomain) Canonical(s *prng.Session) Iterator {
	return IteratorFunc(func() (any, error) { return d.v, nil })
}

func (d *singletonDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	done := false
	return IteratorFunc(func() (any, error) {
		if done {
			return nil, ErrExhausted
		}
		done = true
		return d.v, nil
	}), nil
}

func (d *singletonDomain) Len() int { return 1 }
