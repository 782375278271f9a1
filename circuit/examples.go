package circuit

import "github.com/diaglab/gopherdiag/diag"

// The built-in problems, registered at init. They mirror the classic
// scenarios: two independently misbehaving AND gates, a crossed pair whose
// contradiction needs both gates at once, a three-inverter chain, and the
// two-XOR/two-AND/one-OR full adder.
func init() {
	for _, n := range []Netlist{twoAnd, crossedAnd, inverterChain, fullAdder} {
		Register(n.Name, mustSupplier(n))
	}
}

func mustSupplier(n Netlist) diag.Supplier {
	s, err := n.Supplier()
	if err != nil {
		panic("circuit: built-in netlist " + n.Name + ": " + err.Error())
	}
	return s
}

// Both gates read high inputs and show a low output, so each one conflicts
// with the observations on its own.
var twoAnd = Netlist{
	Name:  "two-and",
	Gates: []Gate{{Name: "a1", Kind: KindAnd}, {Name: "a2", Kind: KindAnd}},
	Obs: []Observation{
		{Port: "a1.in1", Value: true}, {Port: "a1.in2", Value: true}, {Port: "a1.out", Value: false},
		{Port: "a2.in1", Value: true}, {Port: "a2.in2", Value: true}, {Port: "a2.out", Value: false},
	},
}

// The first gate feeds the second. No single gate explains the low final
// output, so the conflict names both.
var crossedAnd = Netlist{
	Name:  "crossed-and",
	Gates: []Gate{{Name: "a1", Kind: KindAnd}, {Name: "a2", Kind: KindAnd}},
	Wires: []Wire{{From: "a1.out", To: "a2.in1"}},
	Obs: []Observation{
		{Port: "a1.in1", Value: true}, {Port: "a1.in2", Value: true},
		{Port: "a2.in2", Value: true}, {Port: "a2.out", Value: false},
	},
}

// Three inverters in a row. A high input should come out high only after an
// even number of stages, so a high reading after three implicates the whole
// chain.
var inverterChain = Netlist{
	Name: "inverter-chain",
	Gates: []Gate{
		{Name: "n1", Kind: KindNot}, {Name: "n2", Kind: KindNot}, {Name: "n3", Kind: KindNot},
	},
	Wires: []Wire{{From: "n1.out", To: "n2.in1"}, {From: "n2.out", To: "n3.in1"}},
	Obs: []Observation{
		{Port: "n1.in1", Value: true}, {Port: "n3.out", Value: true},
	},
}

// The classic full adder: x1 and x2 compute the sum bit, a1, a2 and o1 the
// carry. With A high, B low and a high carry-in, the observed sum and
// carry-out are both wrong, and the first XOR gate is the one suspect common
// to every explanation.
var fullAdder = Netlist{
	Name: "full-adder",
	Gates: []Gate{
		{Name: "x1", Kind: KindXor}, {Name: "x2", Kind: KindXor},
		{Name: "a1", Kind: KindAnd}, {Name: "a2", Kind: KindAnd},
		{Name: "o1", Kind: KindOr},
	},
	Wires: []Wire{
		{From: "x1.out", To: "x2.in1"},
		{From: "x1.out", To: "a2.in1"},
		{From: "a2.out", To: "o1.in1"},
		{From: "a1.out", To: "o1.in2"},
		{From: "x1.in1", To: "a1.in1"},
		{From: "x1.in2", To: "a1.in2"},
		{From: "x2.in2", To: "a2.in2"},
	},
	Obs: []Observation{
		{Port: "x1.in1", Value: true},
		{Port: "x1.in2", Value: false},
		{Port: "x2.in2", Value: true},
		{Port: "x2.out", Value: true},
		{Port: "o1.out", Value: false},
	},
}
