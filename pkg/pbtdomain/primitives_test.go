package pbtdomain_test

import (
	"testing"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/prng"
	"pgregory.net/rapid"
)

func TestIntCanonicalYieldsZeroFirstWhenInRange(t *testing.T) {
	d, err := pbtdomain.Int(pbtdomain.IntOptions{Min: -5, Max: 5})
	if err != nil {
		t.Fatalf("Int() error: %v", err)
	}
	it := d.Canonical(prng.NewSession(1))
	v, err := it.Next()
	if err != nil || v != 0 {
		t.Fatalf("first Canonical() sample = %v, %v; want 0, nil", v, err)
	}
}

func TestIntRejectsInvertedBounds(t *testing.T) {
	if _, err := pbtdomain.Int(pbtdomain.IntOptions{Min: 10, Max: 1}); err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestIntRapidStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-1000, 1000).Draw(rt, "lo")
		span := rapid.IntRange(0, 1000).Draw(rt, "span")
		hi := lo + span
		d, err := pbtdomain.Int(pbtdomain.IntOptions{Min: lo, Max: hi})
		if err != nil {
			rt.Fatalf("Int() error: %v", err)
		}
		s := prng.NewSession(uint64(rapid.Uint64().Draw(rt, "seed")) | 1)
		it := d.Canonical(s)
		for i := 0; i < 20; i++ {
			v, err := it.Next()
			if err != nil {
				rt.Fatalf("Next() error: %v", err)
			}
			n := v.(int)
			if n < lo || n > hi {
				rt.Fatalf("sample %d out of bounds [%d, %d]", n, lo, hi)
			}
		}
	})
}

func TestBooleanExhaustiveCoversBoth(t *testing.T) {
	d := pbtdomain.Boolean()
	it, err := d.Exhaustive(prng.NewSession(1))
	if err != nil {
		t.Fatalf("Exhaustive() error: %v", err)
	}
	seen := map[any]bool{}
	for {
		v, err := it.Next()
		if err != nil {
			break
		}
		seen[v] = true
	}
	if !seen[false] || !seen[true] {
		t.Fatalf("exhaustive Boolean must cover both values, got %v", seen)
	}
}

func TestNameRejectsNegativeMinLen(t *testing.T) {
	if _, err := pbtdomain.Name(pbtdomain.NameOptions{MinLen: -1, MaxLen: 5}); err == nil {
		t.Fatal("identifier domains require at least one character")
	}
}

func TestNameDefaultsMinLenToOne(t *testing.T) {
	d, err := pbtdomain.Name(pbtdomain.NameOptions{})
	if err != nil {
		t.Fatalf("Name() error: %v", err)
	}
	v, err := d.Canonical(prng.NewSession(5)).Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if len(v.(string)) < 1 {
		t.Fatalf("Name sample %q shorter than the required min_len of 1", v)
	}
}

func TestStringEmptyFirstWhenMinLenZero(t *testing.T) {
	d, err := pbtdomain.String(pbtdomain.StringOptions{Coding: pbtdomain.CodingASCIIPrintable, MinLen: 0, MaxLen: 10})
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	it := d.Canonical(prng.NewSession(3))
	v, err := it.Next()
	if err != nil || v != "" {
		t.Fatalf("first sample = %q, %v; want empty string", v, err)
	}
}
