package diag

import (
	"sort"

	"github.com/diaglab/gopherdiag/logic"
)

// Status is the outcome of a diagnosis call.
type Status byte

const (
	// Inconclusive means the consistency check found no answer in time.
	Inconclusive = Status(iota)
	// Consistent means the observations agree with the description under the
	// hypothesis.
	Consistent
	// Conflict means the observations contradict the description: some
	// component assumed normal must be abnormal.
	Conflict
)

func (s Status) String() string {
	switch s {
	case Inconclusive:
		return "INCONCLUSIVE"
	case Consistent:
		return "CONSISTENT"
	case Conflict:
		return "CONFLICT"
	default:
		panic("invalid status")
	}
}

// A Result is the outcome of a diagnosis call.
type Result struct {
	Status Status
	// Conflicts holds one component set per contradiction the refutation
	// cited: the components of a set cannot all be normal at once. Sets are
	// sorted, free of duplicates and listed in lexicographic order. A
	// Conflict result may carry no set at all when the refutation implicates
	// no component.
	Conflicts [][]logic.Term
	// Reason documents an Inconclusive status.
	Reason string
}

// Components returns the union of all conflict sets: every component
// implicated anywhere in the refutation, sorted by name.
func (r Result) Components() []logic.Term {
	seen := make(map[logic.Term]bool)
	var out []logic.Term
	for _, set := range r.Conflicts {
		for _, c := range set {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
