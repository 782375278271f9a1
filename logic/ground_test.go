package logic

import (
	"errors"
	"fmt"
	"testing"
)

func TestInstances(t *testing.T) {
	axiom := ForAll(func(c Term) Form {
		return Implies(Pred("gate", c), Pred("ok", c))
	})
	insts, err := Instances(axiom, []Term{Con("a1"), Con("a2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"or(not(gate(a1)), ok(a1))",
		"or(not(gate(a2)), ok(a2))",
	}
	if len(insts) != len(want) {
		t.Fatalf("expected %d instances, got %d", len(want), len(insts))
	}
	for i, inst := range insts {
		if inst.String() != want[i] {
			t.Errorf("instance %d: expected %q, got %q", i, want[i], inst)
		}
	}
}

func TestInstancesGroundAxiom(t *testing.T) {
	f := And(Pred("gate", Con("a1")), Pred("ok", Con("a1")))
	insts, err := Instances(f, []Term{Con("a1"), Con("a2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(insts) != 1 || insts[0].String() != f.String() {
		t.Errorf("expected the axiom to pass through unchanged, got %v", insts)
	}
}

func TestInstancesEmptyDomain(t *testing.T) {
	axiom := ForAll(func(c Term) Form { return Pred("ok", c) })
	insts, err := Instances(axiom, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(insts) != 0 {
		t.Errorf("expected no instances over the empty domain, got %v", insts)
	}
}

func TestInstancesUnsupported(t *testing.T) {
	nested := ForAll(func(c Term) Form {
		return ForAll(func(d Term) Form { return Pred("conn", c, d) })
	})
	domain := []Term{Con("a1")}
	if _, err := Instances(nested, domain); !errors.Is(err, ErrUnsupportedAxiom) {
		t.Errorf("nested quantifier: expected ErrUnsupportedAxiom, got %v", err)
	}
	negated := Not(ForAll(func(c Term) Form { return Pred("ok", c) }))
	if _, err := Instances(negated, domain); !errors.Is(err, ErrUnsupportedAxiom) {
		t.Errorf("negated quantifier: expected ErrUnsupportedAxiom, got %v", err)
	}
}

func TestIsGround(t *testing.T) {
	q := ForAll(func(c Term) Form { return Pred("ok", c) })
	tests := []struct {
		f    Form
		want bool
	}{
		{True, true},
		{Pred("ok", Con("a1")), true},
		{And(Pred("p"), Or(Pred("q"), Not(Pred("r")))), true},
		{q, false},
		{Not(q), false},
		{And(Pred("p"), q), false},
		{Or(Pred("p"), Not(q)), false},
	}
	for _, test := range tests {
		if got := IsGround(test.f); got != test.want {
			t.Errorf("%s: expected IsGround=%v, got %v", test.f, test.want, got)
		}
	}
}

func ExampleInstances() {
	axiom := ForAll(func(c Term) Form {
		return Implies(And(Pred("and", c), Not(Pred("ab", c))), Pred("ok", c))
	})
	insts, err := Instances(axiom, []Term{Con("a1"), Con("a2")})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, inst := range insts {
		fmt.Println(inst)
	}
	// Output:
	// or(not(and(and(a1), not(ab(a1)))), ok(a1))
	// or(not(and(and(a2), not(ab(a2)))), ok(a2))
}
