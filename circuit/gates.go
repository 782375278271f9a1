// Package circuit turns gate-level netlists into diagnosis problems. A
// netlist names its gates, wires their ports together, and records observed
// port values; compiling it yields the weak-fault-model theory the diag
// package expects, with one behavior axiom per gate kind and one component
// per gate. Netlists come from Go literals, YAML documents, or the built-in
// example registry.
package circuit

import (
	"fmt"

	"github.com/diaglab/gopherdiag/diag"
	"github.com/diaglab/gopherdiag/logic"
)

// The gate kinds a netlist may use. All but the inverter read two inputs.
const (
	KindAnd = "and"
	KindOr  = "or"
	KindXor = "xor"
	KindNot = "not"
)

// In1 returns the atom for a gate's first input port.
func In1(c logic.Term) logic.Atom { return logic.Pred("in1", c) }

// In2 returns the atom for a gate's second input port.
func In2(c logic.Term) logic.Atom { return logic.Pred("in2", c) }

// Out returns the atom for a gate's output port.
func Out(c logic.Term) logic.Atom { return logic.Pred("out", c) }

// kindFact is the atom recording that c is a gate of the given kind. The
// gate axioms are guarded by these facts, so instantiating every axiom over
// every component stays harmless: for a gate of another kind the guard atom
// never holds and the instance is vacuous.
func kindFact(kind string, c logic.Term) logic.Atom {
	return logic.Pred(kind+"g", c)
}

// function tables the gate behaviors in terms of input ports
var gateFns = map[string]func(logic.Term) logic.Form{
	KindAnd: func(c logic.Term) logic.Form { return logic.And(In1(c), In2(c)) },
	KindOr:  func(c logic.Term) logic.Form { return logic.Or(In1(c), In2(c)) },
	KindXor: func(c logic.Term) logic.Form { return logic.Xor(In1(c), In2(c)) },
	KindNot: func(c logic.Term) logic.Form { return logic.Not(In1(c)) },
}

// GateAxiom returns the quantified behavior of one gate kind under the weak
// fault model: the output is pinned to the gate function only while the
// component is a gate of that kind and is not abnormal. Nothing is said
// about abnormal gates.
func GateAxiom(kind string) (logic.Form, error) {
	fn, ok := gateFns[kind]
	if !ok {
		return nil, fmt.Errorf("unknown gate kind %q", kind)
	}
	return logic.ForAll(func(c logic.Term) logic.Form {
		return logic.Implies(
			logic.And(kindFact(kind, c), logic.Not(diag.Ab(c))),
			logic.Equiv(Out(c), fn(c)),
		)
	}), nil
}
