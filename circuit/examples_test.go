package circuit

import (
	"context"
	"reflect"
	"testing"

	"github.com/diaglab/gopherdiag/diag"
	"github.com/diaglab/gopherdiag/logic"
)

func terms(names ...string) []logic.Term {
	out := make([]logic.Term, len(names))
	for i, name := range names {
		out[i] = logic.Con(name)
	}
	return out
}

func diagnose(t *testing.T, name string, hs ...logic.Term) diag.Result {
	t.Helper()
	s, ok := Lookup(name)
	if !ok {
		t.Fatalf("%s is not registered", name)
	}
	var e diag.Engine
	res, err := e.DiagnoseSupplier(context.Background(), s, hs...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	return res
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"crossed-and", "full-adder", "inverter-chain", "two-and"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("built-in %s is not registered", name)
		}
	}
}

func TestTwoAndScenario(t *testing.T) {
	res := diagnose(t, "two-and")
	if res.Status != diag.Conflict {
		t.Fatalf("expected status CONFLICT, got %s", res.Status)
	}
	want := [][]logic.Term{terms("a1"), terms("a2")}
	if !reflect.DeepEqual(res.Conflicts, want) {
		t.Errorf("expected conflicts %v, got %v", want, res.Conflicts)
	}
}

func TestCrossedAndScenario(t *testing.T) {
	res := diagnose(t, "crossed-and")
	if res.Status != diag.Conflict {
		t.Fatalf("expected status CONFLICT, got %s", res.Status)
	}
	want := [][]logic.Term{terms("a1", "a2")}
	if !reflect.DeepEqual(res.Conflicts, want) {
		t.Errorf("expected conflicts %v, got %v", want, res.Conflicts)
	}
}

func TestInverterChainScenario(t *testing.T) {
	res := diagnose(t, "inverter-chain")
	if res.Status != diag.Conflict {
		t.Fatalf("expected status CONFLICT, got %s", res.Status)
	}
	want := [][]logic.Term{terms("n1", "n2", "n3")}
	if !reflect.DeepEqual(res.Conflicts, want) {
		t.Errorf("expected conflicts %v, got %v", want, res.Conflicts)
	}
}

func TestFullAdderScenario(t *testing.T) {
	res := diagnose(t, "full-adder")
	if res.Status != diag.Conflict {
		t.Fatalf("expected status CONFLICT, got %s", res.Status)
	}
	if len(res.Conflicts) != 1 {
		t.Fatalf("expected a single conflict set, got %v", res.Conflicts)
	}
	gates := map[string]bool{"x1": true, "x2": true, "a1": true, "a2": true, "o1": true}
	hasX1 := false
	for _, c := range res.Conflicts[0] {
		if !gates[c.String()] {
			t.Errorf("conflict names %s, which is not a gate", c)
		}
		if c.String() == "x1" {
			hasX1 = true
		}
	}
	// x1 feeds both the sum and the carry path, so every explanation of the
	// two bad outputs goes through it
	if !hasX1 {
		t.Errorf("expected x1 in the conflict, got %v", res.Conflicts[0])
	}
}

func TestFullAdderMinimalRepair(t *testing.T) {
	s, ok := Lookup("full-adder")
	if !ok {
		t.Fatalf("full-adder is not registered")
	}
	var e diag.Engine
	got, err := e.MinimalDiagnosis(context.Background(), s())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := terms("x1"); !reflect.DeepEqual(got, want) {
		t.Errorf("expected diagnosis %v, got %v", want, got)
	}
	res := diagnose(t, "full-adder", got...)
	if res.Status != diag.Consistent {
		t.Errorf("hypothesizing %v: expected CONSISTENT, got %s", got, res.Status)
	}
}
