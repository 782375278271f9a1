// Package logic provides the vocabulary for describing component models:
// constant terms, ground atoms, the usual propositional connectives and a
// universal quantifier over the component sort. Formulas are immutable values
// built through constructor functions. They can be grounded over a finite
// domain with Instances and converted to clausal form with Sequents.
package logic

import (
	"fmt"
	"strings"
)

// A Term is an individual of the component sort, identified by name.
type Term struct {
	name string
}

// Con returns the constant term with the given name.
func Con(name string) Term {
	return Term{name: name}
}

func (t Term) String() string {
	return t.name
}

// A Form is a formula over ground atoms. The constructor functions are the
// only way to build one.
type Form interface {
	// Eval returns the truth value of the formula once every atom takes the
	// value reported by assign. Eval panics on quantified formulas: ground
	// them with Instances first.
	Eval(assign func(Atom) bool) bool
	String() string
	// nnf returns an equivalent formula in negation normal form, with
	// constants folded away and nested connectives flattened.
	nnf() Form
}

// The "true" constant.
type tru struct{}

// True is the constant denoting a tautology.
var True Form = tru{}

func (tru) Eval(func(Atom) bool) bool { return true }
func (tru) String() string            { return "true" }
func (tru) nnf() Form                 { return True }

// The "false" constant.
type fls struct{}

// False is the constant denoting a contradiction.
var False Form = fls{}

func (fls) Eval(func(Atom) bool) bool { return false }
func (fls) String() string            { return "false" }
func (fls) nnf() Form                 { return False }

// An Atom applies a predicate to zero or more terms. Atoms are compared
// structurally, by predicate name and argument list, never by their printed
// representation.
type Atom struct {
	Name string
	Args []Term
}

// Pred returns the atom applying the named predicate to the given terms.
func Pred(name string, args ...Term) Atom {
	return Atom{Name: name, Args: args}
}

func (a Atom) Eval(assign func(Atom) bool) bool { return assign(a) }

func (a Atom) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	strs := make([]string, len(a.Args))
	for i, arg := range a.Args {
		strs[i] = arg.name
	}
	return fmt.Sprintf("%s(%s)", a.Name, strings.Join(strs, ", "))
}

func (a Atom) nnf() Form { return a }

// Equal reports whether both atoms apply the same predicate to the same
// argument list.
func (a Atom) Equal(b Atom) bool {
	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if a.Args[i] != b.Args[i] {
			return false
		}
	}
	return true
}

// Key returns a collision-free identity for the atom, usable as a map key.
// Printed forms are ambiguous (a term name may contain punctuation), so the
// parts are joined with a separator that cannot occur in a rendering.
func (a Atom) Key() string {
	parts := make([]string, len(a.Args)+1)
	parts[0] = a.Name
	for i, arg := range a.Args {
		parts[i+1] = arg.name
	}
	return strings.Join(parts, "\x00")
}

type not struct {
	f Form
}

// Not returns the negation of f.
func Not(f Form) Form {
	return not{f: f}
}

func (n not) Eval(assign func(Atom) bool) bool { return !n.f.Eval(assign) }
func (n not) String() string                   { return "not(" + n.f.String() + ")" }

func (n not) nnf() Form {
	return negNNF(n.f.nnf())
}

type and struct {
	subs []Form
}

// And returns the conjunction of the given formulas. The empty conjunction
// is True, the conjunction of a single formula is that formula.
func And(subs ...Form) Form {
	switch len(subs) {
	case 0:
		return True
	case 1:
		return subs[0]
	}
	return and{subs: subs}
}

func (f and) Eval(assign func(Atom) bool) bool {
	for _, sub := range f.subs {
		if !sub.Eval(assign) {
			return false
		}
	}
	return true
}

func (f and) String() string { return opString("and", f.subs) }

func (f and) nnf() Form {
	var subs []Form
	for _, sub := range f.subs {
		switch sub2 := sub.nnf().(type) {
		case tru:
			// neutral element, dropped
		case fls:
			return False
		case and:
			subs = append(subs, sub2.subs...)
		default:
			subs = append(subs, sub2)
		}
	}
	return And(subs...)
}

type or struct {
	subs []Form
}

// Or returns the disjunction of the given formulas. The empty disjunction is
// False, the disjunction of a single formula is that formula.
func Or(subs ...Form) Form {
	switch len(subs) {
	case 0:
		return False
	case 1:
		return subs[0]
	}
	return or{subs: subs}
}

func (f or) Eval(assign func(Atom) bool) bool {
	for _, sub := range f.subs {
		if sub.Eval(assign) {
			return true
		}
	}
	return false
}

func (f or) String() string { return opString("or", f.subs) }

func (f or) nnf() Form {
	var subs []Form
	for _, sub := range f.subs {
		switch sub2 := sub.nnf().(type) {
		case fls:
			// neutral element, dropped
		case tru:
			return True
		case or:
			subs = append(subs, sub2.subs...)
		default:
			subs = append(subs, sub2)
		}
	}
	return Or(subs...)
}

// Implies returns the formula "f1 implies f2".
func Implies(f1, f2 Form) Form {
	return Or(Not(f1), f2)
}

// Equiv returns the formula stating that f1 and f2 have the same truth value.
func Equiv(f1, f2 Form) Form {
	return And(Implies(f1, f2), Implies(f2, f1))
}

// Xor returns the formula stating that exactly one of f1, f2 holds.
func Xor(f1, f2 Form) Form {
	return Not(Equiv(f1, f2))
}

// name used when printing the variable bound by a quantifier
const quantVar = "c"

type forall struct {
	body func(Term) Form
}

// ForAll quantifies body universally over the component sort. Grounding with
// Instances applies body once per domain element. The body must not quantify
// again: the engine only supports one level of quantification.
func ForAll(body func(c Term) Form) Form {
	return forall{body: body}
}

func (f forall) Eval(func(Atom) bool) bool {
	panic("logic: cannot evaluate a quantified formula, ground it first")
}

func (f forall) String() string {
	return fmt.Sprintf("forall %s. %s", quantVar, f.body(Con(quantVar)))
}

func (f forall) nnf() Form { return f }

// negNNF negates a formula that is already in negation normal form.
func negNNF(f Form) Form {
	switch g := f.(type) {
	case tru:
		return False
	case fls:
		return True
	case Atom:
		return not{f: g}
	case not:
		return g.f
	case and:
		subs := make([]Form, len(g.subs))
		for i, sub := range g.subs {
			subs[i] = negNNF(sub)
		}
		return Or(subs...)
	case or:
		subs := make([]Form, len(g.subs))
		for i, sub := range g.subs {
			subs[i] = negNNF(sub)
		}
		return And(subs...)
	case forall:
		return not{f: g}
	default:
		panic("logic: unknown formula type")
	}
}

func opString(op string, subs []Form) string {
	strs := make([]string, len(subs))
	for i, sub := range subs {
		strs[i] = sub.String()
	}
	return fmt.Sprintf("%s(%s)", op, strings.Join(strs, ", "))
}
