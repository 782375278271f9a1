package diag

import (
	"reflect"
	"testing"

	"github.com/diaglab/gopherdiag/logic"
)

func ab(name string) logic.Atom { return Ab(logic.Con(name)) }

func TestMineConflicts(t *testing.T) {
	out := logic.Pred("out", logic.Con("a1"))
	tests := []struct {
		name  string
		cores [][]logic.Sequent
		want  [][]logic.Term
	}{
		{
			name:  "unit normalcy assumptions",
			cores: [][]logic.Sequent{{{Ante: []logic.Atom{ab("a2")}}, {Ante: []logic.Atom{ab("a1")}}}},
			want:  [][]logic.Term{terms("a1", "a2")},
		},
		{
			name: "one core per independent contradiction",
			cores: [][]logic.Sequent{
				{{Ante: []logic.Atom{ab("a2")}}},
				{{Ante: []logic.Atom{ab("a1")}}},
			},
			want: [][]logic.Term{terms("a1"), terms("a2")},
		},
		{
			name: "foreign antecedents are skipped",
			cores: [][]logic.Sequent{{
				{Ante: []logic.Atom{out, ab("a1")}},
				{Ante: []logic.Atom{logic.Pred("ab")}},
				{Ante: []logic.Atom{logic.Pred("ab", logic.Con("x"), logic.Con("y"))}},
			}},
			want: [][]logic.Term{terms("a1")},
		},
		{
			name: "only empty-succedent sequents count",
			cores: [][]logic.Sequent{{
				{Ante: []logic.Atom{ab("a1")}, Succ: []logic.Atom{out}},
				{Ante: []logic.Atom{ab("a1")}, Succ: []logic.Atom{ab("a1")}},
				{},
				{Ante: []logic.Atom{ab("a2")}},
			}},
			want: [][]logic.Term{terms("a2")},
		},
		{
			name: "duplicate components and duplicate sets collapse",
			cores: [][]logic.Sequent{
				{{Ante: []logic.Atom{ab("a1"), ab("a1")}}, {Ante: []logic.Atom{ab("a1")}}},
				{{Ante: []logic.Atom{ab("a1")}}},
			},
			want: [][]logic.Term{terms("a1")},
		},
		{
			name: "sets come out ordered",
			cores: [][]logic.Sequent{
				{{Ante: []logic.Atom{ab("b2")}}},
				{{Ante: []logic.Atom{ab("b1"), ab("a9")}}},
				{{Ante: []logic.Atom{ab("a1")}}},
			},
			want: [][]logic.Term{terms("a1"), terms("a9", "b1"), terms("b2")},
		},
		{
			name:  "a component may be called ab",
			cores: [][]logic.Sequent{{{Ante: []logic.Atom{ab("ab")}}}},
			want:  [][]logic.Term{terms("ab")},
		},
		{
			name:  "all-foreign core yields nothing",
			cores: [][]logic.Sequent{{{Ante: []logic.Atom{out}}}},
			want:  nil,
		},
		{
			name:  "no cores",
			cores: nil,
			want:  nil,
		},
	}
	for _, test := range tests {
		if got := mineConflicts(test.cores); !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, got)
		}
	}
}

func TestAbAtomShape(t *testing.T) {
	a := Ab(logic.Con("a1"))
	if got := a.String(); got != "ab(a1)" {
		t.Errorf("expected ab(a1), got %q", got)
	}
	c, ok := abComponent(a)
	if !ok || c != logic.Con("a1") {
		t.Errorf("expected to recover a1, got %v (%v)", c, ok)
	}
	if _, ok := abComponent(logic.Pred("abs", logic.Con("a1"))); ok {
		t.Errorf("abs(a1) must not read as a normalcy atom")
	}
}
