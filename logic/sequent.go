package logic

import (
	"fmt"
	"strings"
)

// A Sequent is a clause written antecedent-to-succedent: the conjunction of
// the atoms in Ante entails the disjunction of the atoms in Succ. A sequent
// with an empty succedent is a denial, stating that its antecedent atoms
// cannot all hold together.
type Sequent struct {
	Ante []Atom
	Succ []Atom
}

// IsTaut reports whether the sequent holds trivially because some atom
// appears on both sides.
func (s Sequent) IsTaut() bool {
	for _, a := range s.Ante {
		for _, b := range s.Succ {
			if a.Equal(b) {
				return true
			}
		}
	}
	return false
}

// IsEmpty reports whether both sides are empty, i.e. the sequent is the
// unsatisfiable empty clause.
func (s Sequent) IsEmpty() bool {
	return len(s.Ante) == 0 && len(s.Succ) == 0
}

// Form converts the sequent back to the formula it denotes.
func (s Sequent) Form() Form {
	subs := make([]Form, 0, len(s.Ante)+len(s.Succ))
	for _, a := range s.Ante {
		subs = append(subs, Not(a))
	}
	for _, a := range s.Succ {
		subs = append(subs, a)
	}
	return Or(subs...)
}

func (s Sequent) String() string {
	left := atomList(s.Ante)
	if left != "" {
		left += " "
	}
	return strings.TrimRight(left+"=> "+atomList(s.Succ), " ")
}

func atomList(atoms []Atom) string {
	strs := make([]string, len(atoms))
	for i, a := range atoms {
		strs[i] = a.String()
	}
	return strings.Join(strs, ", ")
}

// Sequents converts a ground formula to an equivalent list of sequents, one
// per clause of its conjunctive normal form. Clausification distributes
// disjunctions over conjunctions and never introduces auxiliary atoms, so
// every atom of the result occurs in f. Tautological sequents are kept.
func Sequents(f Form) ([]Sequent, error) {
	return seqs(f.nnf())
}

func seqs(f Form) ([]Sequent, error) {
	switch g := f.(type) {
	case tru:
		return nil, nil
	case fls:
		return []Sequent{{}}, nil
	case Atom:
		return []Sequent{{Succ: []Atom{g}}}, nil
	case not:
		at, ok := g.f.(Atom)
		if !ok {
			return nil, fmt.Errorf("negated quantifier: %w", ErrUnsupportedAxiom)
		}
		return []Sequent{{Ante: []Atom{at}}}, nil
	case and:
		var out []Sequent
		for _, sub := range g.subs {
			ss, err := seqs(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, ss...)
		}
		return out, nil
	case or:
		out := []Sequent{{}}
		for _, sub := range g.subs {
			ss, err := seqs(sub)
			if err != nil {
				return nil, err
			}
			merged := make([]Sequent, 0, len(out)*len(ss))
			for _, left := range out {
				for _, right := range ss {
					merged = append(merged, merge(left, right))
				}
			}
			out = merged
		}
		return out, nil
	case forall:
		return nil, fmt.Errorf("quantified formula: %w", ErrUnsupportedAxiom)
	default:
		panic("logic: unknown formula type")
	}
}

// merge joins two sequents side-wise, dropping duplicate atoms.
func merge(a, b Sequent) Sequent {
	return Sequent{
		Ante: union(a.Ante, b.Ante),
		Succ: union(a.Succ, b.Succ),
	}
}

func union(a, b []Atom) []Atom {
	out := make([]Atom, len(a), len(a)+len(b))
	copy(out, a)
	for _, at := range b {
		dup := false
		for _, have := range out {
			if have.Equal(at) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, at)
		}
	}
	return out
}
