package pbtdomain

import (
	"errors"
	"fmt"

	"github.com/dshills/pbt/pkg/prng"
)

// MaxExhaustiveProduct bounds the finite size an exhaustively-walked
// union of exhaustible domains may report before Exhaustive refuses to
// enumerate it. A union of exhaustibles is exhaustible in principle,
// but nested unions can sum to a size beyond any usable bound.
var MaxExhaustiveProduct = 1_000_000

// Or builds the union of one or more domains, flattening nested unions
// into a single list of alternatives (so Or(Or(a,b), c) and Or(a,b,c)
// behave identically). A union is exhaustible iff every alternative is
// exhaustible.
func Or(domains ...Domain) Domain {
	var flat []Domain
	for _, d := range domains {
		if u, ok := d.(*unionDomain); ok {
			flat = append(flat, u.alts...)
		} else {
			flat = append(flat, d)
		}
	}
	return &unionDomain{alts: flat}
}

type unionDomain struct {
	alts []Domain
}

func (d *unionDomain) IsExhaustible() bool {
	for _, a := range d.alts {
		if !a.IsExhaustible() {
			return false
		}
	}
	return true
}

// Len reports the sum of alternative sizes when every alternative
// implements Sized, or -1 if not computable.
func (d *unionDomain) Len() int {
	total := 0
	for _, a := range d.alts {
		sz, ok := a.(Sized)
		if !ok {
			return -1
		}
		total += sz.Len()
	}
	return total
}

// Canonical implements a permute-try-restart loop: each
// round, permute the alternative indices, try each in order; a
// successful draw yields one sample and the round restarts on the next
// call. If an alternative signals ErrDepthExceeded, restart just that
// alternative's iterator and keep trying the remaining alternatives
// this round. If every alternative in a round is depth-exceeded, the
// signal propagates.
func (d *unionDomain) Canonical(s *prng.Session) Iterator {
	n := len(d.alts)
	iters := make([]Iterator, n)
	for i, a := range d.alts {
		iters[i] = a.Canonical(s)
	}
	return IteratorFunc(func() (any, error) {
		order := s.Sample(n, n)
		for _, i := range order {
			v, err := iters[i].Next()
			if err == nil {
				return v, nil
			}
			if errors.Is(err, ErrDepthExceeded) {
				iters[i] = d.alts[i].Canonical(s)
				continue
			}
			return nil, err
		}
		return nil, ErrDepthExceeded
	})
}

// Exhaustive enumerates every alternative's exhaustive stream in turn
// (operand 0 fully, then operand 1, ...), guarded by
// MaxExhaustiveProduct.
func (d *unionDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	if !d.IsExhaustible() {
		return nil, ErrNotExhaustible
	}
	if total := d.Len(); total >= 0 && total > MaxExhaustiveProduct {
		return nil, fmt.Errorf("pbtdomain: union exhaustive size %d exceeds MaxExhaustiveProduct %d", total, MaxExhaustiveProduct)
	}
	idx := 0
	var cur Iterator
	var err error
	return IteratorFunc(func() (any, error) {
		for {
			if cur == nil {
				if idx >= len(d.alts) {
					return nil, ErrExhausted
				}
				cur, err = d.alts[idx].Exhaustive(s)
				if err != nil {
					return nil, err
				}
			}
			v, nextErr := cur.Next()
			if nextErr == nil {
				return v, nil
			}
			if errors.Is(nextErr, ErrExhausted) {
				cur = nil
				idx++
				continue
			}
			return nil, nextErr
		}
	}), nil
}
