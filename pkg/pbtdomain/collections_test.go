package pbtdomain_test

import (
	"fmt"
	"testing"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/prng"
)

func TestListEmptyFirstWhenMinLenZero(t *testing.T) {
	elem, _ := pbtdomain.Int(pbtdomain.IntOptions{Min: 0, Max: 10})
	d, err := pbtdomain.List(elem, pbtdomain.ListOptions{MinLen: 0, MaxLen: 5})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	v, err := d.Canonical(prng.NewSession(1)).Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	got := v.([]any)
	if len(got) != 0 {
		t.Fatalf("first List() sample = %v, want empty", got)
	}
}

func TestSublistsExhaustiveLen(t *testing.T) {
	l := []any{1, 2, 3}
	d := pbtdomain.Sublists(l, true)
	sz, ok := d.(pbtdomain.Sized)
	if !ok {
		t.Fatal("Sublists domain must implement Sized")
	}
	want := 1 + 3*4/2 // [] plus 6 contiguous runs
	if sz.Len() != want {
		t.Fatalf("Len() = %d, want %d", sz.Len(), want)
	}

	it, err := d.Exhaustive(prng.NewSession(1))
	if err != nil {
		t.Fatalf("Exhaustive() error: %v", err)
	}
	count := 0
	for {
		_, err := it.Next()
		if err != nil {
			break
		}
		count++
	}
	if count != want {
		t.Fatalf("exhaustive walk produced %d samples, want %d", count, want)
	}
}

func TestTupleExhaustibleOnlyWhenAllOperandsAre(t *testing.T) {
	b := pbtdomain.Boolean()
	notExhaustible, _ := pbtdomain.Int(pbtdomain.IntOptions{Min: 0, Max: 5})

	tup := pbtdomain.Tuple(b, b)
	if !tup.IsExhaustible() {
		t.Fatal("tuple of two exhaustible domains must be exhaustible")
	}

	mixed := pbtdomain.Tuple(b, notExhaustible)
	if mixed.IsExhaustible() {
		t.Fatal("tuple with a non-exhaustible operand must not be exhaustible")
	}
	if _, err := mixed.Exhaustive(prng.NewSession(1)); err == nil {
		t.Fatal("Exhaustive() on a non-exhaustible tuple should error")
	}
}

func TestTupleExhaustiveZipsPointwise(t *testing.T) {
	tup := pbtdomain.Tuple(pbtdomain.Boolean(), pbtdomain.Boolean())
	it, err := tup.Exhaustive(prng.NewSession(1))
	if err != nil {
		t.Fatalf("Exhaustive() error: %v", err)
	}
	var got [][]any
	for {
		v, err := it.Next()
		if err != nil {
			break
		}
		got = append(got, v.([]any))
	}
	// Pointwise zip of (false, true) with (false, true): two tuples.
	if len(got) != 2 {
		t.Fatalf("zip walk produced %d tuples, want 2: %v", len(got), got)
	}
	if got[0][0] != false || got[0][1] != false || got[1][0] != true || got[1][1] != true {
		t.Fatalf("zip walk = %v, want [[false false] [true true]]", got)
	}
}

func TestTupleExhaustiveEndsAtShortestOperand(t *testing.T) {
	tup := pbtdomain.Tuple(pbtdomain.Boolean(), pbtdomain.Singleton(7))
	sz, ok := tup.(pbtdomain.Sized)
	if !ok {
		t.Fatal("tuple of Sized operands must implement Sized")
	}
	if sz.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (shortest operand)", sz.Len())
	}
	it, err := tup.Exhaustive(prng.NewSession(1))
	if err != nil {
		t.Fatalf("Exhaustive() error: %v", err)
	}
	v, err := it.Next()
	if err != nil {
		t.Fatalf("first Next() error: %v", err)
	}
	pair := v.([]any)
	if pair[0] != false || pair[1] != 7 {
		t.Fatalf("first tuple = %v, want [false 7]", pair)
	}
	if _, err := it.Next(); err == nil {
		t.Fatal("second Next() should end the stream with the singleton operand")
	}
}

func TestSublistsCanonicalYieldsContiguousSlices(t *testing.T) {
	l := []any{1, 2, 3}
	d := pbtdomain.Sublists(l, false)
	it := d.Canonical(prng.NewSession(5))

	v, err := it.Next()
	if err != nil {
		t.Fatalf("first Next() error: %v", err)
	}
	if len(v.([]any)) != 0 {
		t.Fatalf("first sample = %v, want empty", v)
	}

	valid := map[string]bool{
		"[1]": true, "[2]": true, "[3]": true,
		"[1 2]": true, "[2 3]": true, "[1 2 3]": true,
	}
	for i := 0; i < 500; i++ {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next() iteration %d: %v", i, err)
		}
		key := fmt.Sprintf("%v", v)
		if !valid[key] {
			t.Fatalf("sample %s is not a contiguous non-empty sublist of %v", key, l)
		}
	}
}
