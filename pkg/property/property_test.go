package property_test

import (
	"testing"

	"github.com/dshills/pbt/pkg/pbtdomain"
	"github.com/dshills/pbt/pkg/pbtenv"
	"github.com/dshills/pbt/pkg/prng"
	"github.com/dshills/pbt/pkg/property"
	"github.com/dshills/pbt/pkg/quantifier"
)

func TestForAllVarWrapsBarePredicate(t *testing.T) {
	d, _ := pbtdomain.Int(pbtdomain.IntOptions{Min: 0, Max: 10})
	root, err := property.ForAllVar("x", d, 5)(func(env *pbtenv.Env) bool { return true })
	if err != nil {
		t.Fatalf("ForAllVar() error: %v", err)
	}
	it := root.Evaluate(pbtenv.Empty(), prng.NewSession(1))
	n := 0
	for {
		o, err := it.Next()
		if err != nil {
			break
		}
		if o.Kind != quantifier.Ok {
			t.Fatalf("outcome %v, want Ok", o)
		}
		n++
	}
	if n != 5 {
		t.Fatalf("got %d outcomes, want 5", n)
	}
}

func TestStackedForAllVarTwoVariables(t *testing.T) {
	dx, _ := pbtdomain.Int(pbtdomain.IntOptions{Min: 0, Max: 5})
	dy, _ := pbtdomain.Int(pbtdomain.IntOptions{Min: 0, Max: 5})

	leaf := quantifier.NewPredicate("sum-nonneg", func(env *pbtenv.Env) bool {
		xv, _ := env.Get("x")
		yv, _ := env.Get("y")
		return xv.(int)+yv.(int) >= 0
	})

	inner, err := property.ForAllVar("y", dy, 4)(leaf)
	if err != nil {
		t.Fatalf("inner ForAllVar() error: %v", err)
	}
	outer, err := property.ForAllVar("x", dx, 4)(inner)
	if err != nil {
		t.Fatalf("outer ForAllVar() error: %v", err)
	}

	it := outer.Evaluate(pbtenv.Empty(), prng.NewSession(1))
	n := 0
	for {
		o, err := it.Next()
		if err != nil {
			break
		}
		if o.Kind != quantifier.Ok {
			t.Fatalf("outcome %v, want Ok", o)
		}
		n++
	}
	if n != 16 {
		t.Fatalf("got %d outcomes, want 4*4=16 (outer advances slowest)", n)
	}
}

func TestExistsVarRejectsStackedQuantifier(t *testing.T) {
	b := pbtdomain.Boolean()
	inner, err := property.ForAllVar("y", b, 2)(func(env *pbtenv.Env) bool { return true })
	if err != nil {
		t.Fatalf("ForAllVar() error: %v", err)
	}
	if _, err := property.ExistsVar("x", b)(inner); err == nil {
		t.Fatal("ExistsVar must reject a stacked quantifier as its child")
	}
}
