package pbtdomain_test

import (
	"errors"
	"testing"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
)

func TestBoundRejectsNoFreeVariables(t *testing.T) {
	_, err := pbtdomain.Bound(func(env *pbtenv.Env) (any, error) {
		return 1, nil
	})
	if !errors.Is(err, pbtdomain.ErrNoFreeVariables) {
		t.Fatalf("Bound() error = %v, want ErrNoFreeVariables", err)
	}
}

func TestDomainExprReduceRequiresBoundVariable(t *testing.T) {
	expr, err := pbtdomain.Bound(func(env *pbtenv.Env) (any, error) {
		n, _ := env.Get("n")
		items := make([]any, n.(int))
		return pbtdomain.Just(items), nil
	}, "n")
	if err != nil {
		t.Fatalf("Bound() error: %v", err)
	}

	if _, err := expr.Reduce(pbtenv.Empty()); err == nil {
		t.Fatal("Reduce() on an Env missing \"n\" should error")
	}

	env, err := pbtenv.Empty().Extend("n", 3)
	if err != nil {
		t.Fatalf("Extend() error: %v", err)
	}
	d, err := expr.Reduce(env)
	if err != nil {
		t.Fatalf("Reduce() error: %v", err)
	}
	v, err := d.Canonical(prng.NewSession(1)).Next()
	if err != nil {
		t.Fatalf("Canonical() Next() error: %v", err)
	}
	if len(v.([]any)) != 3 {
		t.Fatalf("reduced domain sample has len %d, want 3", len(v.([]any)))
	}
}
