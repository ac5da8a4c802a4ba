package pbtdomain_test

import (
	"testing"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/prng"
)

func TestMapTransformsCanonicalAndExhaustive(t *testing.T) {
	b := pbtdomain.Boolean()
	d := pbtdomain.Map(b, func(v any) any {
		if v.(bool) {
			return "yes"
		}
		return "no"
	})

	if !d.IsExhaustible() {
		t.Fatal("Map preserves the wrapped domain's exhaustibility")
	}

	v, err := d.Canonical(prng.NewSession(1)).Next()
	if err != nil {
		t.Fatalf("Canonical() Next() error: %v", err)
	}
	if v != "yes" && v != "no" {
		t.Fatalf("Canonical() = %v, want \"yes\" or \"no\"", v)
	}

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
	if !seen["yes"] || !seen["no"] {
		t.Fatalf("exhaustive Map walk missing a mapped value, got %v", seen)
	}
}
