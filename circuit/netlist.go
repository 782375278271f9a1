package circuit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diaglab/gopherdiag/diag"
	"github.com/diaglab/gopherdiag/logic"
)

// A Gate is one named component of a known kind.
type Gate struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// A Wire equates two ports, each written as "gate.port".
type Wire struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// An Observation fixes the boolean value seen on a port.
type Observation struct {
	Port  string `yaml:"port"`
	Value bool   `yaml:"value"`
}

// A Netlist is a gate-level circuit with observations attached.
type Netlist struct {
	Name  string        `yaml:"name"`
	Gates []Gate        `yaml:"gates"`
	Wires []Wire        `yaml:"wires,omitempty"`
	Obs   []Observation `yaml:"observations,omitempty"`
}

// Problem compiles the netlist into a diagnosis problem: one behavior axiom
// per gate kind in use, a kind fact per gate, an equivalence per wire, and a
// literal per observation. Every gate becomes a component. The netlist is
// validated on the way: gate names must be unique and dot-free, kinds known,
// and every port reference must name an existing port of an existing gate.
func (n Netlist) Problem() (diag.Problem, error) {
	kindOf := make(map[string]string, len(n.Gates))
	var kinds []string
	seenKind := make(map[string]bool)
	for _, g := range n.Gates {
		if g.Name == "" {
			return diag.Problem{}, fmt.Errorf("a gate of kind %q has no name", g.Kind)
		}
		if strings.Contains(g.Name, ".") {
			return diag.Problem{}, fmt.Errorf("gate name %q contains a dot", g.Name)
		}
		if _, ok := gateFns[g.Kind]; !ok {
			return diag.Problem{}, fmt.Errorf("gate %s has unknown kind %q", g.Name, g.Kind)
		}
		if _, dup := kindOf[g.Name]; dup {
			return diag.Problem{}, fmt.Errorf("duplicate gate name %q", g.Name)
		}
		kindOf[g.Name] = g.Kind
		if !seenKind[g.Kind] {
			seenKind[g.Kind] = true
			kinds = append(kinds, g.Kind)
		}
	}
	sort.Strings(kinds)

	var sd []logic.Form
	for _, kind := range kinds {
		ax, err := GateAxiom(kind)
		if err != nil {
			return diag.Problem{}, err
		}
		sd = append(sd, ax)
	}
	for _, g := range n.Gates {
		sd = append(sd, kindFact(g.Kind, logic.Con(g.Name)))
	}
	for i, w := range n.Wires {
		from, err := portAtom(kindOf, w.From)
		if err != nil {
			return diag.Problem{}, fmt.Errorf("wire %d: %v", i, err)
		}
		to, err := portAtom(kindOf, w.To)
		if err != nil {
			return diag.Problem{}, fmt.Errorf("wire %d: %v", i, err)
		}
		sd = append(sd, logic.Equiv(from, to))
	}

	obs := make([]logic.Form, 0, len(n.Obs))
	for i, o := range n.Obs {
		at, err := portAtom(kindOf, o.Port)
		if err != nil {
			return diag.Problem{}, fmt.Errorf("observation %d: %v", i, err)
		}
		if o.Value {
			obs = append(obs, at)
		} else {
			obs = append(obs, logic.Not(at))
		}
	}

	comp := make([]logic.Term, len(n.Gates))
	for i, g := range n.Gates {
		comp[i] = logic.Con(g.Name)
	}
	return diag.Problem{SD: sd, Comp: comp, Obs: obs}, nil
}

// Supplier compiles the netlist once and returns a supplier handing out the
// result.
func (n Netlist) Supplier() (diag.Supplier, error) {
	p, err := n.Problem()
	if err != nil {
		return nil, err
	}
	return func() diag.Problem { return p }, nil
}

// portAtom resolves a "gate.port" reference against the gates seen so far.
func portAtom(kindOf map[string]string, ref string) (logic.Atom, error) {
	name, port, ok := strings.Cut(ref, ".")
	if !ok || name == "" || port == "" {
		return logic.Atom{}, fmt.Errorf("port reference %q is not of the form gate.port", ref)
	}
	kind, ok := kindOf[name]
	if !ok {
		return logic.Atom{}, fmt.Errorf("port reference %q names an unknown gate", ref)
	}
	if !validPort(kind, port) {
		return logic.Atom{}, fmt.Errorf("gate %s of kind %s has no port %q", name, kind, port)
	}
	return logic.Pred(port, logic.Con(name)), nil
}

// validPort reports whether the kind exposes the port. The inverter has a
// single input.
func validPort(kind, port string) bool {
	switch port {
	case "out", "in1":
		return true
	case "in2":
		return kind != KindNot
	default:
		return false
	}
}
