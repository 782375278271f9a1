package prover

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/crillab/gophersat/explain"
	"github.com/crillab/gophersat/solver"

	"github.com/diaglab/gopherdiag/logic"
)

// Status is the outcome of a refutation attempt.
type Status byte

const (
	// Unknown means the attempt was abandoned before an answer was found.
	Unknown = Status(iota)
	// Satisfiable means the negated goal has a model: no proof exists.
	Satisfiable
	// Refuted means the negated goal is unsatisfiable: the goal is proved.
	Refuted
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "UNKNOWN"
	case Satisfiable:
		return "SATISFIABLE"
	case Refuted:
		return "REFUTED"
	default:
		panic("invalid status")
	}
}

// A CoreMethod selects how a refuted clause set is reduced to the
// unsatisfiable cores reported in a certificate.
type CoreMethod byte

const (
	// CoreMinimal extracts a minimal unsatisfiable subset: removing any
	// cited clause would make the rest satisfiable. This is the default.
	CoreMinimal = CoreMethod(iota)
	// CoreSubset extracts a cheaper, possibly larger unsatisfiable subset.
	CoreSubset
)

func (m CoreMethod) String() string {
	switch m {
	case CoreMinimal:
		return "minimal"
	case CoreSubset:
		return "subset"
	default:
		panic("invalid core method")
	}
}

// Options configures a Prover.
type Options struct {
	// Core selects the core extraction strategy for certificates.
	Core CoreMethod
	// Logger receives progress information. Nil disables logging.
	Logger *log.Logger
}

// A Prover attempts to prove formulas by refuting their negations with a SAT
// solver. Use New to create one. A Prover is safe for concurrent use: every
// call works on its own clause set.
type Prover struct {
	core   CoreMethod
	logger *log.Logger
}

// New returns a Prover using the given options.
func New(opts Options) *Prover {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prover{core: opts.Core, logger: logger}
}

// A Verdict is the outcome of a refutation attempt. An expired deadline is
// data, not an error: it comes back as an Unknown verdict.
type Verdict struct {
	Status Status
	// Cert is the refutation certificate, non-nil exactly when Status is
	// Refuted.
	Cert *Certificate
	// Reason documents why no answer was found when Status is Unknown.
	Reason string
}

// an ownedClause ties a solver clause to the sequent it encodes and to the
// index of the assumption it came from, or -1 for the goal itself.
type ownedClause struct {
	seq   logic.Sequent
	lits  []int
	owner int
}

// Refute attempts to prove f: the negation of f is clausified together with
// the assumption formulas and checked for satisfiability. The verdict is
// Refuted, with a certificate, when the clause set has no model, and
// Satisfiable when it has one. Each assumption is tracked through the check
// so the certificate can cite the ones involved in each contradiction.
//
// The context bounds the attempt. The underlying search cannot be
// interrupted, so on expiry the verdict is Unknown and the abandoned search
// finishes in the background, its answer discarded.
func (p *Prover) Refute(ctx context.Context, f logic.Form, assume ...logic.Form) (Verdict, error) {
	tbl := newAtomTable()
	owned, err := ownedClauses(tbl, logic.Not(f), -1)
	if err != nil {
		return Verdict{}, fmt.Errorf("could not clausify the goal: %w", err)
	}
	for i, g := range assume {
		cs, err := ownedClauses(tbl, g, i)
		if err != nil {
			return Verdict{}, fmt.Errorf("could not clausify assumption %d: %w", i, err)
		}
		owned = append(owned, cs...)
	}
	if err := ctx.Err(); err != nil {
		return Verdict{Status: Unknown, Reason: err.Error()}, nil
	}
	type answer struct {
		verdict Verdict
		err     error
	}
	ch := make(chan answer, 1)
	go func() {
		v, err := p.refute(tbl, owned, len(assume))
		ch <- answer{verdict: v, err: err}
	}()
	select {
	case <-ctx.Done():
		p.logger.Warn("refutation abandoned", "reason", ctx.Err())
		return Verdict{Status: Unknown, Reason: ctx.Err().Error()}, nil
	case a := <-ch:
		return a.verdict, a.err
	}
}

// ownedClauses clausifies f and tags every clause with its owner.
// Tautological sequents carry no information and are dropped here.
func ownedClauses(tbl *atomTable, f logic.Form, owner int) ([]ownedClause, error) {
	ss, err := logic.Sequents(f)
	if err != nil {
		return nil, err
	}
	out := make([]ownedClause, 0, len(ss))
	for _, s := range ss {
		if s.IsTaut() {
			continue
		}
		out = append(out, ownedClause{seq: s, lits: tbl.clause(s), owner: owner})
	}
	return out, nil
}

// refute runs the solve-and-relax rounds on the full clause set.
func (p *Prover) refute(tbl *atomTable, owned []ownedClause, nbAssumptions int) (Verdict, error) {
	for _, oc := range owned {
		if oc.seq.IsEmpty() {
			// empty clause: no solving needed
			return Verdict{Status: Refuted, Cert: &Certificate{cores: [][]logic.Sequent{{oc.seq}}}}, nil
		}
	}
	dropped := make([]bool, nbAssumptions)
	var cores [][]logic.Sequent
	for round := 0; ; round++ {
		active := make([]ownedClause, 0, len(owned))
		for _, oc := range owned {
			if oc.owner >= 0 && dropped[oc.owner] {
				continue
			}
			active = append(active, oc)
		}
		if len(active) == 0 {
			if round == 0 {
				return Verdict{Status: Satisfiable}, nil
			}
			break
		}
		clauses := make([][]int, len(active))
		for i, oc := range active {
			clauses[i] = oc.lits
		}
		st := solver.New(solver.ParseSlice(clauses)).Solve()
		p.logger.Debug("solver answered", "round", round, "clauses", len(clauses), "status", st)
		if st == solver.Sat {
			if round == 0 {
				return Verdict{Status: Satisfiable}, nil
			}
			break
		}
		core, owners, err := p.coreOf(tbl, active, clauses)
		if err != nil {
			return Verdict{}, err
		}
		cores = append(cores, core)
		relaxed := false
		for _, owner := range owners {
			if owner >= 0 && !dropped[owner] {
				dropped[owner] = true
				relaxed = true
			}
		}
		p.logger.Debug("core extracted", "round", round, "size", len(core), "relaxed", relaxed)
		if !relaxed {
			// the contradiction rests on no remaining assumption
			break
		}
	}
	return Verdict{Status: Refuted, Cert: &Certificate{cores: cores}}, nil
}

// coreOf reduces the active clause set, known to be unsatisfiable, to one
// unsatisfiable core. It returns the core's sequents along with the owners of
// its clauses.
func (p *Prover) coreOf(tbl *atomTable, active []ownedClause, clauses [][]int) ([]logic.Sequent, []int, error) {
	pb, err := explain.ParseCNF(strings.NewReader(cnfString(tbl.nbVars(), clauses)))
	if err != nil {
		return nil, nil, fmt.Errorf("could not reload the clause set: %v", err)
	}
	var sub *explain.Problem
	switch p.core {
	case CoreMinimal:
		sub, err = pb.MUS()
	case CoreSubset:
		sub, err = pb.UnsatSubset()
	default:
		panic("invalid core method")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not extract an unsatisfiable core: %v", err)
	}
	index := make(map[string][]ownedClause, len(active))
	for _, oc := range active {
		key := clauseKey(oc.lits)
		index[key] = append(index[key], oc)
	}
	var seqs []logic.Sequent
	var owners []int
	seen := make(map[string]bool, len(sub.Clauses))
	for _, clause := range sub.Clauses {
		key := clauseKey(clause)
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, oc := range index[key] {
			seqs = append(seqs, oc.seq)
			owners = append(owners, oc.owner)
		}
	}
	return seqs, owners, nil
}

// clauseKey gives clauses an identity that is insensitive to literal order,
// so core clauses can be matched back to the sequents they encode.
func clauseKey(clause []int) string {
	lits := make([]int, len(clause))
	copy(lits, clause)
	sort.Ints(lits)
	strs := make([]string, len(lits))
	for i, lit := range lits {
		strs[i] = strconv.Itoa(lit)
	}
	return strings.Join(strs, " ")
}
