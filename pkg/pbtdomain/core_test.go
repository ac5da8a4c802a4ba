package pbtdomain_test

import (
	"errors"
	"testing"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/prng"
)

func drawN(t *testing.T, it pbtdomain.Iterator, n int) []any {
	t.Helper()
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next() unexpected error: %v", err)
		}
		out = append(out, v)
	}
	return out
}

func TestSingletonCanonicalAndExhaustive(t *testing.T) {
	s := prng.NewSession(1)
	d := pbtdomain.Singleton(42)
	if !d.IsExhaustible() {
		t.Fatal("Singleton must be exhaustible")
	}
	for _, v := range drawN(t, d.Canonical(s), 5) {
		if v != 42 {
			t.Fatalf("Canonical() = %v, want 42", v)
		}
	}
	it, err := d.Exhaustive(s)
	if err != nil {
		t.Fatalf("Exhaustive() error: %v", err)
	}
	v, err := it.Next()
	if err != nil || v != 42 {
		t.Fatalf("first Next() = %v, %v; want 42, nil", v, err)
	}
	if _, err := it.Next(); !errors.Is(err, pbtdomain.ErrExhausted) {
		t.Fatalf("second Next() = %v, want ErrExhausted", err)
	}
}

func TestFromSliceExhaustiveYieldsOriginalOrder(t *testing.T) {
	s := prng.NewSession(7)
	items := []any{"a", "b", "c"}
	d := pbtdomain.FromSlice(items, true)
	it, err := d.Exhaustive(s)
	if err != nil {
		t.Fatalf("Exhaustive() error: %v", err)
	}
	var got []any
	for {
		v, err := it.Next()
		if errors.Is(err, pbtdomain.ErrExhausted) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v, want original order a,b,c", got)
	}
}

func TestCoerceSlicePassthroughAndConflict(t *testing.T) {
	d, err := pbtdomain.Coerce([]any{1, 2, 3})
	if err != nil {
		t.Fatalf("Coerce() error: %v", err)
	}
	if d.IsExhaustible() {
		t.Fatal("bare slice coercion defaults to non-exhaustible")
	}

	single := pbtdomain.Singleton(1)
	if _, err := pbtdomain.Coerce(single, pbtdomain.WithExhaustibleHint(false)); err == nil {
		t.Fatal("conflicting exhaustible hint should error")
	}
	if got, err := pbtdomain.Coerce(single, pbtdomain.WithExhaustibleHint(true)); err != nil || got != single {
		t.Fatalf("matching hint should pass the domain through unchanged, got %v, %v", got, err)
	}
}
