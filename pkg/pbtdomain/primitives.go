package pbtdomain

import (
	"fmt"

	"github.com/dshills/pbt/pkg/prng"
)

// IntOptions configures Int with a struct-of-bounds rather than
// positional arguments.
type IntOptions struct {
	Min int // default 0
	Max int // default 10_000
}

type intDomain struct {
	min, max int
}

// Int returns a non-exhaustible domain of integers in [opts.Min,
// opts.Max]. Its canonical iterator yields 0 first whenever 0 falls in
// range — a boundary-bias heuristic load-bearing for divide-by-zero
// style counterexamples.
func Int(opts IntOptions) (Domain, error) {
	min, max := opts.Min, opts.Max
	if max == 0 && min == 0 {
		max = 10_000
	}
	if min > max {
		return nil, fmt.Errorf("pbtdomain: Int min (%d) must be <= max (%d)", min, max)
	}
	return &intDomain{min: min, max: max}, nil
}

func (d *intDomain) IsExhaustible() bool { return false }

func (d *intDomain) Canonical(s *prng.Session) Iterator {
	yielded0 := false
	zeroInRange := d.min <= 0 && 0 <= d.max
	return IteratorFunc(func() (any, error) {
		if zeroInRange && !yielded0 {
			yielded0 = true
			return 0, nil
		}
		return s.IntRange(d.min, d.max), nil
	})
}

func (d *intDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// FloatOptions configures Float.
type FloatOptions struct {
	Min float64 // default 0
	Max float64 // default 1.0
}

type floatDomain struct {
	min, max float64
}

// Float returns a non-exhaustible domain of float64 values in
// [opts.Min, opts.Max), carrying the same zero-in-range boundary bias
// as Int.
func Float(opts FloatOptions) (Domain, error) {
	min, max := opts.Min, opts.Max
	if min == 0 && max == 0 {
		max = 1.0
	}
	if min >= max {
		return nil, fmt.Errorf("pbtdomain: Float min (%v) must be < max (%v)", min, max)
	}
	return &floatDomain{min: min, max: max}, nil
}

func (d *floatDomain) IsExhaustible() bool { return false }

func (d *floatDomain) Canonical(s *prng.Session) Iterator {
	yielded0 := false
	zeroInRange := d.min <= 0 && 0 < d.max
	return IteratorFunc(func() (any, error) {
		if zeroInRange && !yielded0 {
			yielded0 = true
			return 0.0, nil
		}
		return s.Float64Range(d.min, d.max), nil
	})
}

func (d *floatDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// booleanDomain is exhaustible: false, true.
type booleanDomain struct{}

// Boolean returns the exhaustible domain of boolean values.
func Boolean() Domain { return booleanDomain{} }

func (booleanDomain) IsExhaustible() bool { return true }

func (booleanDomain) Canonical(s *prng.Session) Iterator {
	return IteratorFunc(func() (any, error) { return s.Bool(), nil })
}

func (booleanDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	vals := []any{false, true}
	idx := 0
	return IteratorFunc(func() (any, error) {
		if idx >= len(vals) {
			return nil, ErrExhausted
		}
		v := vals[idx]
		idx++
		return v, nil
	}), nil
}

func (booleanDomain) Len() int { return 2 }

// Coding selects the codepoint range Char and String draw from.
type Coding int

const (
	// CodingASCII draws from the full printable+control ASCII range
	// [0, 127].
	CodingASCII Coding = iota
	// CodingASCIIPrintable draws from printable ASCII only [32, 126].
	CodingASCIIPrintable
	// CodingUTF8 draws arbitrary Unicode code points, rejecting the
	// control-character category.
	CodingUTF8
)

func (c Coding) String() string {
	switch c {
	case CodingASCII:
		return "ascii"
	case CodingASCIIPrintable:
		return "ascii.printable"
	case CodingUTF8:
		return "utf-8"
	default:
		return fmt.Sprintf("Coding(%d)", int(c))
	}
}

// CharOptions configures Char.
type CharOptions struct {
	Coding Coding
}

type charDomain struct {
	coding Coding
}

// Char returns a non-exhaustible domain of single runes drawn from the
// requested coding. Returns an error for an unrecognized Coding value.
func Char(opts CharOptions) (Domain, error) {
	switch opts.Coding {
	case CodingASCII, CodingASCIIPrintable, CodingUTF8:
		return &charDomain{coding: opts.Coding}, nil
	default:
		return nil, fmt.Errorf("pbtdomain: unknown char coding %v", opts.Coding)
	}
}

const maxValidRune = 0x10FFFF
const surrogateMin = 0xD800
const surrogateMax = 0xDFFF

func (d *charDomain) IsExhaustible() bool { return false }

func (d *charDomain) Canonical(s *prng.Session) Iterator {
	return IteratorFunc(func() (any, error) { return drawRune(s, d.coding), nil })
}

func (d *charDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// drawRune draws a single rune according to coding, rejection-sampling
// away Unicode control characters and surrogate halves for CodingUTF8.
func drawRune(s *prng.Session, coding Coding) rune {
	switch coding {
	case CodingASCIIPrintable:
		return rune(s.IntRange(32, 126))
	case CodingUTF8:
		for {
			r := rune(s.IntRange(0x20, maxValidRune))
			if r >= surrogateMin && r <= surrogateMax {
				continue
			}
			if isUnicodeControl(r) {
				continue
			}
			return r
		}
	default: // CodingASCII
		return rune(s.IntRange(0, 127))
	}
}

func isUnicodeControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}

// StringOptions configures String.
type StringOptions struct {
	Coding   Coding
	MinLen   int // default 0
	MaxLen   int // default 80
	Alphabet Domain // optional; must be exhaustible if set
}

type stringDomain struct {
	coding   Coding
	minLen   int
	maxLen   int
	alphabet Domain
}

// String returns a non-exhaustible domain of strings whose length is
// uniform in [opts.MinLen, opts.MaxLen]. If MinLen is 0, the first
// sample is the empty string. If Alphabet is supplied it must be an
// exhaustible Domain of chars; otherwise characters are drawn per
// opts.Coding.
func String(opts StringOptions) (Domain, error) {
	maxLen := opts.MaxLen
	if maxLen == 0 {
		maxLen = 80
	}
	if opts.MinLen < 0 || maxLen < opts.MinLen {
		return nil, fmt.Errorf("pbtdomain: String min_len (%d) must be >= 0 and <= max_len (%d)", opts.MinLen, maxLen)
	}
	if opts.Alphabet != nil && !opts.Alphabet.IsExhaustible() {
		return nil, fmt.Errorf("pbtdomain: String alphabet must be an exhaustible domain")
	}
	switch opts.Coding {
	case CodingASCII, CodingASCIIPrintable, CodingUTF8:
	default:
		if opts.Alphabet == nil {
			return nil, fmt.Errorf("pbtdomain: unknown char coding %v", opts.Coding)
		}
	}
	return &stringDomain{coding: opts.Coding, minLen: opts.MinLen, maxLen: maxLen, alphabet: opts.Alphabet}, nil
}

func (d *stringDomain) IsExhaustible() bool { return false }

func (d *stringDomain) Canonical(s *prng.Session) Iterator {
	first := true
	return IteratorFunc(func() (any, error) {
		if first && d.minLen == 0 {
			first = false
			return "", nil
		}
		first = false
		n := s.IntRange(d.minLen, d.maxLen)
		runes := make([]rune, n)
		var alphaIt Iterator
		if d.alphabet != nil {
			alphaIt = d.alphabet.Canonical(s)
		}
		for i := 0; i < n; i++ {
			if alphaIt != nil {
				v, _ := alphaIt.Next()
				runes[i] = v.(rune)
			} else {
				runes[i] = drawRune(s, d.coding)
			}
		}
		return string(runes), nil
	})
}

func (d *stringDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}

// NameOptions configures Name.
type NameOptions struct {
	MinLen int // default 1, must be >= 1
	MaxLen int // default 8, must be >= MinLen
}

type nameDomain struct {
	minLen, maxLen int
}

// Name returns a non-exhaustible domain of identifier-like strings: the
// first character is drawn from [A-Za-z_], the rest from
// [A-Za-z0-9_]. MinLen must be >= 1 because an identifier cannot be
// empty.
func Name(opts NameOptions) (Domain, error) {
	minLen := opts.MinLen
	if minLen == 0 {
		minLen = 1
	}
	maxLen := opts.MaxLen
	if maxLen == 0 {
		maxLen = 8
	}
	if minLen < 1 {
		return nil, fmt.Errorf("pbtdomain: Name min_len (%d) must be >= 1; identifier domains require at least one character", minLen)
	}
	if maxLen < minLen {
		return nil, fmt.Errorf("pbtdomain: Name max_len (%d) cannot be smaller than min_len (%d)", maxLen, minLen)
	}
	return &nameDomain{minLen: minLen, maxLen: maxLen}, nil
}

const nameHeadChars = "_ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const nameTailExtra = "0123456789"

func (d *nameDomain) IsExhaustible() bool { return false }

func (d *nameDomain) Canonical(s *prng.Session) Iterator {
	tailChars := nameHeadChars + nameTailExtra
	return IteratorFunc(func() (any, error) {
		n := s.IntRange(d.minLen, d.maxLen)
		b := make([]byte, n)
		b[0] = nameHeadChars[s.Intn(len(nameHeadChars))]
		for i := 1; i < n; i++ {
			b[i] = tailChars[s.Intn(len(tailChars))]
		}
		return string(b), nil
	})
}

func (d *nameDomain) Exhaustive(s *prng.Session) (Iterator, error) {
	return nil, ErrNotExhaustible
}
