package diag

import (
	"sort"
	"strings"

	"github.com/diaglab/gopherdiag/logic"
)

// mineConflicts reduces a refutation's cores to conflict sets. Within each
// core, tautological sequents, empty sequents and sequents with a non-empty
// succedent carry no denial and are discarded; among the rest, every
// antecedent atom applying the abnormality predicate to exactly one term
// names an implicated component. Literals of any other shape are skipped
// without complaint. Cores implicating no component contribute no set.
func mineConflicts(cores [][]logic.Sequent) [][]logic.Term {
	var out [][]logic.Term
	seen := make(map[string]bool)
	for _, core := range cores {
		set := mineCore(core)
		if len(set) == 0 {
			continue
		}
		key := setKey(set)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, set)
	}
	sort.Slice(out, func(i, j int) bool { return setKey(out[i]) < setKey(out[j]) })
	return out
}

func mineCore(core []logic.Sequent) []logic.Term {
	seen := make(map[logic.Term]bool)
	var set []logic.Term
	for _, s := range core {
		if s.IsTaut() || s.IsEmpty() || len(s.Succ) > 0 {
			continue
		}
		for _, at := range s.Ante {
			c, ok := abComponent(at)
			if !ok || seen[c] {
				continue
			}
			seen[c] = true
			set = append(set, c)
		}
	}
	sort.Slice(set, func(i, j int) bool { return set[i].String() < set[j].String() })
	return set
}

// abComponent inspects the atom structurally: the predicate name must be the
// abnormality predicate and the argument list must hold exactly one term.
// Printed forms are never parsed.
func abComponent(at logic.Atom) (logic.Term, bool) {
	if at.Name != abName || len(at.Args) != 1 {
		return logic.Term{}, false
	}
	return at.Args[0], true
}

func setKey(set []logic.Term) string {
	strs := make([]string, len(set))
	for i, c := range set {
		strs[i] = c.String()
	}
	return strings.Join(strs, "\x00")
}
