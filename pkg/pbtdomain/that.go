package pbtdomain

import "github.com/dshills/pbt/pkg/prng"

// That wraps d so its canonical iterator stops after limit samples,
// raising ErrExhausted from then on. The exhaustive iterator (if any) is
// untouched: That bounds sampling, not the domain's true extent.
func That(d Domain, limit int) Domain {
	return &thatDomain{inner: d, limit: limit}
}

type thatDomain struct {
	inner Domain
	limit int
}

func (d *thatDomain) IsExhaustible() bool { return d.inner.IsExhaustible() }

func (d *thatDomain) Canonical(s *prng.Session) Iterator {
	it := d.inner.Canonical(s)
	drawn := 0
	return IteratorFunc(func() (any, error) {
		if drawn >= d.limit {
			return nil, ErrExhausted
		}
		drawn++
		return it.Next()
	})
}

func (d *thatDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return d.inner.Exhaustive(s)
}

func (d *thatDomain) Len() int {
	if sz, ok := d.inner.(Sized); ok {
		return sz.Len()
	}
	return -1
}
