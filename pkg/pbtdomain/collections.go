package pbtdomain

import (
	"fmt"

	"github.com/dshills/pbt/pkg/prng"
)

// ListOptions configures List.
type ListOptions struct {
	MinLen int // default 0
	MaxLen int // default 20
}

type listDomain struct {
	elem           Domain
	minLen, maxLen int
}

// List returns a non-exhaustible domain of slices drawn from elem. If
// MinLen is 0, the first sample is the empty slice; subsequent lengths
// are uniform in [max(1,MinLen), MaxLen].
func List(elem Domain, opts ListOptions) (Domain, error) {
	maxLen := opts.MaxLen
	if maxLen == 0 {
		maxLen = 20
	}
	if opts.MinLen < 0 || maxLen < opts.MinLen {
		return nil, fmt.Errorf("pbtdomain: List min_len (%d) must be >= 0 and <= max_len (%d)", opts.MinLen, maxLen)
	}
	return &listDomain{elem: elem, minLen: opts.MinLen, maxLen: maxLen}, nil
}

func (d *listDomain) IsExhaustible() bool { return false }

func (d *listDomain) Canonical(s *prng.Session) Iterator {
	first := true
	elemIt := d.elem.Canonical(s)
	return IteratorFunc(func() (any, error) {
		if first && d.minLen == 0 {
			first = false
			return []any{}, nil
		}
		first = false
		lo := d.minLen
		if lo < 1 {
			lo = 1
		}
		n := s.IntRange(lo, d.maxLen)
		out := make([]any, n)
		for i := 0; i < n; i++ {
			v, err := elemIt.Next()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	})
}

func (d *listDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// Sublists returns a domain over contiguous slices l[a:b] of l. Its
// canonical iterator always yields the empty slice first, then random
// contiguous slices. If exhaustible is true, its exhaustive iterator
// yields [] followed by every l[a:b+1] for 0 <= a <= b < len(l).
func Sublists(l []any, exhaustible bool) Domain {
	return &sublistsDomain{l: append([]any(nil), l...), exhaustible: exhaustible}
}

type sublistsDomain struct {
	l           []any
	exhaustible bool
}

func (d *sublistsDomain) IsExhaustible() bool { return d.exhaustible }

func (d *sublistsDomain) Canonical(s *prng.Session) Iterator {
	first := true
	n := len(d.l)
	return IteratorFunc(func() (any, error) {
		if first {
			first = false
			return []any{}, nil
		}
		if n == 0 {
			return []any{}, nil
		}
		a := s.IntRange(0, n-1)
		b := s.IntRange(a, n-1)
		return append([]any(nil), d.l[a:b+1]...), nil
	})
}

func (d *sublistsDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	if !d.exhaustible {
		return nil, ErrNotExhaustible
	}
	n := len(d.l)
	// state machine: emit [] once, then every l[a:b+1] for a<=b<n
	first := true
	a, b := 0, -1
	return IteratorFunc(func() (any, error) {
		if first {
			first = false
			return []any{}, nil
		}
		b++
		if b >= n {
			a++
			b = a
		}
		if a >= n {
			return nil, ErrExhausted
		}
		return append([]any(nil), d.l[a:b+1]...), nil
	}), nil
}

func (d *sublistsDomain) Len() int {
	n := len(d.l)
	return 1 + n*(n+1)/2
}

// Tuple returns a domain over fixed-length tuples ([]any of len(domains))
// zipping independent draws from each operand. Its canonical iterator
// draws one sample per operand per tuple. Its exhaustive iterator
// requires every operand to be exhaustible; it zips their exhaustive
// streams, terminating with the shortest operand.
func Tuple(domains ...Domain) Domain {
	return &tupleDomain{domains: domains}
}

type tupleDomain struct {
	domains []Domain
}

func (d *tupleDomain) IsExhaustible() bool {
	for _, sub := range d.domains {
		if !sub.IsExhaustible() {
			return false
		}
	}
	return true
}

func (d *tupleDomain) Canonical(s *prng.Session) Iterator {
	iters := make([]Iterator, len(d.domains))
	for i, sub := range d.domains {
		iters[i] = sub.Canonical(s)
	}
	return IteratorFunc(func() (any, error) {
		out := make([]any, len(iters))
		for i, it := range iters {
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	})
}

// Exhaustive zips the operands' exhaustive streams pointwise: each
// Next draws one value from every operand, and the shortest operand
// terminates the stream.
func (d *tupleDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	if !d.IsExhaustible() {
		return nil, ErrNotExhaustible
	}
	return newZipIterator(s, d.domains)
}

// newZipIterator zips the exhaustive streams of domains pointwise,
// ending with the shortest operand. Shared by tupleDomain and
// objectDomain. Zero operands yield a single empty tuple.
func newZipIterator(s *prng.Session, domains []Domain) (Iterator, error) {
	n := len(domains)
	if n == 0 {
		done := false
		return IteratorFunc(func() (any, error) {
			if done {
				return nil, ErrExhausted
			}
			done = true
			return []any{}, nil
		}), nil
	}

	iters := make([]Iterator, n)
	for i, sub := range domains {
		it, err := sub.Exhaustive(s)
		if err != nil {
			return nil, err
		}
		iters[i] = it
	}
	return IteratorFunc(func() (any, error) {
		out := make([]any, n)
		for i, it := range iters {
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}), nil
}

// Len reports the zipped length — the minimum operand size — when every
// operand implements Sized.
func (d *tupleDomain) Len() int {
	if len(d.domains) == 0 {
		return 1
	}
	shortest := -1
	for _, sub := range d.domains {
		sz, ok := sub.(Sized)
		if !ok {
			return -1
		}
		if shortest < 0 || sz.Len() < shortest {
			shortest = sz.Len()
		}
	}
	return shortest
}

// DictOptions configures Dict.
type DictOptions struct {
	MinLen int // default 0
	MaxLen int // default 20
}

// Dict returns a non-exhaustible domain of map[any]any values. Length
// is uniform in [max(1,MinLen), MaxLen]; if MinLen is 0 the first
// sample is the empty map. Duplicate keys collapse per normal map
// semantics.
func Dict(key, value Domain, opts DictOptions) (Domain, error) {
	maxLen := opts.MaxLen
	if maxLen == 0 {
		maxLen = 20
	}
	if opts.MinLen < 0 || maxLen < opts.MinLen {
		return nil, fmt.Errorf("pbtdomain: Dict min_len (%d) must be >= 0 and <= max_len (%d)", opts.MinLen, maxLen)
	}
	return &dictDomain{key: key, value: value, minLen: opts.MinLen, maxLen: maxLen}, nil
}

type dictDomain struct {
	key, value     Domain
	minLen, maxLen int
}

func (d *dictDomain) IsExhaustible() bool { return false }

func (d *dictDomain) Canonical(s *prng.Session) Iterator {
	first := true
	keyIt := d.key.Canonical(s)
	valIt := d.value.Canonical(s)
	return IteratorFunc(func() (any, error) {
		if first && d.minLen == 0 {
			first = false
			return map[any]any{}, nil
		}
		first = false
		lo := d.minLen
		if lo < 1 {
			lo = 1
		}
		n := s.IntRange(lo, d.maxLen)
		out := make(map[any]any, n)
		for i := 0; i < n; i++ {
			k, err := keyIt.Next()
			if err != nil {
				return nil, err
			}
			v, err := valIt.Next()
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	})
}

func (d *dictDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// ObjectFactory builds a user value from the positional samples drawn
// from each argument domain, in order.
type ObjectFactory func(args []any) any

// Object returns a domain whose samples are factory(args...), where
// each element of args is drawn (tuple-zip style) from the
// correspondingly-positioned argument domain. Exhaustible iff every
// argument domain is exhaustible.
func Object(factory ObjectFactory, args ...Domain) Domain {
	return &objectDomain{factory: factory, args: args}
}

type objectDomain struct {
	factory ObjectFactory
	args    []Domain
}

func (d *objectDomain) IsExhaustible() bool {
	for _, a := range d.args {
		if !a.IsExhaustible() {
			return false
		}
	}
	return true
}

func (d *objectDomain) Canonical(s *prng.Session) Iterator {
	iters := make([]Iterator, len(d.args))
	for i, a := range d.args {
		iters[i] = a.Canonical(s)
	}
	return IteratorFunc(func() (any, error) {
		vals := make([]any, len(iters))
		for i, it := range iters {
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return d.factory(vals), nil
	})
}

func (d *objectDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	if !d.IsExhaustible() {
		return nil, ErrNotExhaustible
	}
	zip, err := newZipIterator(s, d.args)
	if err != nil {
		return nil, err
	}
	return IteratorFunc(func() (any, error) {
		v, err := zip.Next()
		if err != nil {
			return nil, err
		}
		return d.factory(v.([]any)), nil
	}), nil
}
