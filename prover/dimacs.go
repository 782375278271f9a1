package prover

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/diaglab/gopherdiag/logic"
)

// an atomTable interns atoms as consecutive DIMACS variables, starting at 1.
type atomTable struct {
	index map[string]int
	atoms []logic.Atom
}

func newAtomTable() *atomTable {
	return &atomTable{index: make(map[string]int)}
}

func (t *atomTable) lit(a logic.Atom, negated bool) int {
	key := a.Key()
	v, ok := t.index[key]
	if !ok {
		t.atoms = append(t.atoms, a)
		v = len(t.atoms)
		t.index[key] = v
	}
	if negated {
		return -v
	}
	return v
}

// clause converts a sequent to a solver clause: antecedent atoms become
// negative literals, succedent atoms positive ones.
func (t *atomTable) clause(s logic.Sequent) []int {
	lits := make([]int, 0, len(s.Ante)+len(s.Succ))
	for _, a := range s.Ante {
		lits = append(lits, t.lit(a, true))
	}
	for _, a := range s.Succ {
		lits = append(lits, t.lit(a, false))
	}
	return lits
}

func (t *atomTable) nbVars() int { return len(t.atoms) }

func clauseLine(clause []int) string {
	strs := make([]string, len(clause)+1)
	for i, lit := range clause {
		strs[i] = strconv.Itoa(lit)
	}
	strs[len(clause)] = "0"
	return strings.Join(strs, " ")
}

// cnfString renders the clause set in DIMACS CNF syntax, without comments.
func cnfString(nbVars int, clauses [][]int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", nbVars, len(clauses))
	for _, clause := range clauses {
		sb.WriteString(clauseLine(clause))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteDimacs writes the clausal form of f and the given assumptions on w in
// DIMACS CNF syntax. One comment line per atom gives its variable index, so
// the output can be handed to any standalone SAT solver and its answer read
// back. Tautological clauses are dropped.
func WriteDimacs(w io.Writer, f logic.Form, assume ...logic.Form) error {
	tbl := newAtomTable()
	var clauses [][]int
	forms := append([]logic.Form{f}, assume...)
	for i, g := range forms {
		ss, err := logic.Sequents(g)
		if err != nil {
			if i == 0 {
				return fmt.Errorf("could not clausify the formula: %w", err)
			}
			return fmt.Errorf("could not clausify assumption %d: %w", i-1, err)
		}
		for _, s := range ss {
			if s.IsTaut() {
				continue
			}
			clauses = append(clauses, tbl.clause(s))
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", tbl.nbVars(), len(clauses)); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	for i, a := range tbl.atoms {
		if _, err := fmt.Fprintf(w, "c %s=%d\n", a, i+1); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, clause := range clauses {
		if _, err := io.WriteString(w, clauseLine(clause)+"\n"); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	return nil
}
