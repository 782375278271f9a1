package diag

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/diaglab/gopherdiag/logic"
	"github.com/diaglab/gopherdiag/prover"
)

// abName is the predicate reserved for abnormality atoms.
const abName = "ab"

// Ab returns the abnormality atom for component c. Its negation states that
// c behaves as described.
func Ab(c logic.Term) logic.Atom {
	return logic.Pred(abName, c)
}

// A Problem is a diagnosis problem.
type Problem struct {
	// SD is the system description: axioms over the component domain, each
	// either ground or universally quantified at the top level.
	SD []logic.Form
	// Comp is the component domain.
	Comp []logic.Term
	// Obs are the ground observations to reconcile with the description.
	Obs []logic.Form
}

// A Supplier produces a diagnosis problem on demand.
type Supplier func() Problem

// Theory grounds and assembles the problem for a consistency check. It
// returns the conjunction of the grounded description and the observations,
// together with one normalcy assumption per component outside hs, in
// deterministic order. Components in hs get no constraint in either
// polarity.
func (p Problem) Theory(hs ...logic.Term) (logic.Form, []logic.Form, error) {
	if err := p.validate(hs); err != nil {
		return nil, nil, err
	}
	var parts []logic.Form
	for i, axiom := range p.SD {
		insts, err := logic.Instances(axiom, p.Comp)
		if err != nil {
			return nil, nil, fmt.Errorf("could not ground axiom %d: %w", i, err)
		}
		parts = append(parts, insts...)
	}
	for i, obs := range p.Obs {
		if !logic.IsGround(obs) {
			return nil, nil, fmt.Errorf("observation %d is not ground", i)
		}
		parts = append(parts, obs)
	}
	exempt := make(map[logic.Term]bool, len(hs))
	for _, c := range hs {
		exempt[c] = true
	}
	normal := make([]logic.Term, 0, len(p.Comp))
	for _, c := range p.Comp {
		if !exempt[c] {
			normal = append(normal, c)
		}
	}
	sort.Slice(normal, func(i, j int) bool { return normal[i].String() < normal[j].String() })
	assume := make([]logic.Form, len(normal))
	for i, c := range normal {
		assume[i] = logic.Not(Ab(c))
	}
	return logic.And(parts...), assume, nil
}

func (p Problem) validate(hs []logic.Term) error {
	seen := make(map[logic.Term]bool, len(p.Comp))
	for _, c := range p.Comp {
		if seen[c] {
			return fmt.Errorf("duplicate component %s", c)
		}
		seen[c] = true
	}
	for _, c := range hs {
		if !seen[c] {
			return fmt.Errorf("hypothesized component %s is not part of the problem", c)
		}
	}
	return nil
}

// A Refuter attempts to prove a goal formula under assumption formulas.
// *prover.Prover implements it.
type Refuter interface {
	Refute(ctx context.Context, f logic.Form, assume ...logic.Form) (prover.Verdict, error)
}

// An Engine runs diagnosis calls. The zero value is usable: it refutes with
// a default prover and logs nowhere. Every call assembles its own theory, so
// an Engine is safe for concurrent use.
type Engine struct {
	// Prover performs the refutation attempts. Nil means a default
	// prover.New.
	Prover Refuter
	// Logger receives progress information. Nil disables logging.
	Logger *log.Logger
}

var discard = log.New(io.Discard)

func (e *Engine) refuter() Refuter {
	if e.Prover != nil {
		return e.Prover
	}
	return prover.New(prover.Options{})
}

func (e *Engine) log() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return discard
}

// Diagnose checks whether the problem's description and observations can be
// reconciled with every component outside hs behaving normally. The result
// reports consistency, a conflict together with the component sets the
// refutation implicates, or that the check found no answer in time. An
// unanswered check is never reported as consistent.
func (e *Engine) Diagnose(ctx context.Context, p Problem, hs ...logic.Term) (Result, error) {
	goal, assume, err := p.Theory(hs...)
	if err != nil {
		return Result{}, err
	}
	logger := e.log()
	logger.Debug("checking consistency",
		"components", len(p.Comp), "hypothesized", len(hs), "observations", len(p.Obs))
	v, err := e.refuter().Refute(ctx, logic.Not(goal), assume...)
	if err != nil {
		return Result{}, fmt.Errorf("could not refute the theory: %w", err)
	}
	switch v.Status {
	case prover.Satisfiable:
		logger.Info("observations are consistent", "hypothesized", len(hs))
		return Result{Status: Consistent}, nil
	case prover.Unknown:
		logger.Warn("consistency check unanswered", "reason", v.Reason)
		return Result{Status: Inconclusive, Reason: v.Reason}, nil
	case prover.Refuted:
		conflicts := mineConflicts(v.Cert.Cores())
		logger.Info("observations conflict with the description", "conflicts", len(conflicts))
		return Result{Status: Conflict, Conflicts: conflicts}, nil
	default:
		return Result{}, fmt.Errorf("unexpected prover status %s", v.Status)
	}
}

// DiagnoseSupplier asks supply for its problem and diagnoses it.
func (e *Engine) DiagnoseSupplier(ctx context.Context, supply Supplier, hs ...logic.Term) (Result, error) {
	if supply == nil {
		return Result{}, fmt.Errorf("nil problem supplier")
	}
	return e.Diagnose(ctx, supply(), hs...)
}
