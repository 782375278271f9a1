package circuit

import (
	"testing"

	"github.com/diaglab/gopherdiag/logic"
)

func TestGateAxiomBehavior(t *testing.T) {
	g := logic.Con("g")
	tests := []struct {
		kind          string
		in1, in2, out bool
		ok            bool
	}{
		{KindAnd, true, true, true, true},
		{KindAnd, true, false, false, true},
		{KindAnd, true, true, false, false},
		{KindAnd, false, false, true, false},
		{KindOr, false, false, false, true},
		{KindOr, true, false, true, true},
		{KindOr, false, false, true, false},
		{KindXor, true, false, true, true},
		{KindXor, true, true, false, true},
		{KindXor, true, true, true, false},
		{KindNot, true, false, false, true},
		{KindNot, false, false, true, true},
		{KindNot, true, false, true, false},
	}
	for _, test := range tests {
		ax, err := GateAxiom(test.kind)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		insts, err := logic.Instances(ax, []logic.Term{g})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assign := map[string]bool{
			"in1(g)":           test.in1,
			"in2(g)":           test.in2,
			"out(g)":           test.out,
			test.kind + "g(g)": true,
		}
		got := insts[0].Eval(func(a logic.Atom) bool { return assign[a.String()] })
		if got != test.ok {
			t.Errorf("%s gate with in1=%v in2=%v out=%v: expected %v, got %v",
				test.kind, test.in1, test.in2, test.out, test.ok, got)
		}
	}
}

func TestGateAxiomVacuousWhenAbnormal(t *testing.T) {
	g := logic.Con("g")
	ax, err := GateAxiom(KindAnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	insts, err := logic.Instances(ax, []logic.Term{g})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// high inputs, low output: a working AND gate could not do this
	assign := map[string]bool{
		"andg(g)": true, "ab(g)": true,
		"in1(g)": true, "in2(g)": true, "out(g)": false,
	}
	if !insts[0].Eval(func(a logic.Atom) bool { return assign[a.String()] }) {
		t.Errorf("an abnormal gate must satisfy its axiom vacuously")
	}
}

func TestGateAxiomUnknownKind(t *testing.T) {
	if _, err := GateAxiom("nand"); err == nil {
		t.Errorf("expected an error for an unknown kind")
	}
}
