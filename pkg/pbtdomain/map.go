package pbtdomain

import "github.com/dshills/pbt/pkg/prng"

// Map returns a domain whose samples are f(v) for v drawn from d,
// pointwise over both the canonical and (when d is exhaustible) the
// exhaustive stream.
func Map(d Domain, f func(any) any) Domain {
	return &mapDomain{inner: d, f: f}
}

type mapDomain struct {
	inner Domain
	f     func(any) any
}

func (d *mapDomain) IsExhaustible() bool { return d.inner.IsExhaustible() }

func (d *mapDomain) Canonical(s *prng.Session) Iterator {
	it := d.inner.Canonical(s)
	return IteratorFunc(func() (any, error) {
		v, err := it.Next()
		if err != nil {
			return nil, err
		}
		return d.f(v), nil
	})
}

func (d *mapDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	it, err := d.inner.Exhaustive(s)
	if err != nil {
		return nil, err
	}
	return IteratorFunc(func() (any, error) {
		v, err := it.Next()
		if err != nil {
			return nil, err
		}
		return d.f(v), nil
	}), nil
}

func (d *mapDomain) Len() int {
	if sz, ok := d.inner.(Sized); ok {
		return sz.Len()
	}
	return -1
}
