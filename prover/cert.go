package prover

import (
	"strings"

	"github.com/diaglab/gopherdiag/logic"
)

// A Certificate records why a refutation succeeded. It lists the ground
// sequents of the unsatisfiable cores met while checking the clause set: one
// core for the initial contradiction, then one per further contradiction
// found after relaxing the assumptions cited by the previous ones.
type Certificate struct {
	cores [][]logic.Sequent
}

// Cores returns the certificate's sequents grouped by contradiction, in the
// order the contradictions were found.
func (c *Certificate) Cores() [][]logic.Sequent {
	return c.cores
}

// Sequents returns every sequent the certificate cites, in citation order,
// without duplicates.
func (c *Certificate) Sequents() []logic.Sequent {
	var out []logic.Sequent
	seen := make(map[string]bool)
	for _, core := range c.cores {
		for _, s := range core {
			key := sequentKey(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// Formula returns the conjunction of the cited sequents: a closed formula
// implied by the refuted clause set.
func (c *Certificate) Formula() logic.Form {
	seqs := c.Sequents()
	subs := make([]logic.Form, len(seqs))
	for i, s := range seqs {
		subs[i] = s.Form()
	}
	return logic.And(subs...)
}

func sequentKey(s logic.Sequent) string {
	parts := make([]string, 0, len(s.Ante)+len(s.Succ)+1)
	for _, a := range s.Ante {
		parts = append(parts, "-"+a.Key())
	}
	parts = append(parts, "|")
	for _, a := range s.Succ {
		parts = append(parts, "+"+a.Key())
	}
	return strings.Join(parts, "\x01")
}
