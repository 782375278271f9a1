package diag

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/crillab/gophersat/maxsat"

	"github.com/diaglab/gopherdiag/logic"
)

// ErrNoDiagnosis is reported when no abnormality assignment at all can
// reconcile the description with the observations.
var ErrNoDiagnosis = errors.New("no abnormality assignment reconciles the observations")

// MinimalDiagnosis returns a smallest set of components whose abnormality
// reconciles the description with the observations. The theory's clauses are
// hard, each component's normalcy literal is a soft clause, and the abnormal
// components of an optimal model form the diagnosis. An empty result means
// the observations are already consistent with every component normal.
//
// The context bounds the computation; on expiry the context's error is
// returned. When even full abnormality cannot reconcile the observations,
// the error is ErrNoDiagnosis.
func (e *Engine) MinimalDiagnosis(ctx context.Context, p Problem) ([]logic.Term, error) {
	goal, _, err := p.Theory()
	if err != nil {
		return nil, err
	}
	ss, err := logic.Sequents(goal)
	if err != nil {
		return nil, fmt.Errorf("could not clausify the theory: %w", err)
	}
	names := newNameTable()
	var constrs []maxsat.Constr
	for _, s := range ss {
		if s.IsTaut() {
			continue
		}
		if s.IsEmpty() {
			return nil, ErrNoDiagnosis
		}
		lits := make([]maxsat.Lit, 0, len(s.Ante)+len(s.Succ))
		for _, a := range s.Ante {
			lits = append(lits, maxsat.Not(names.name(a)))
		}
		for _, a := range s.Succ {
			lits = append(lits, maxsat.Var(names.name(a)))
		}
		constrs = append(constrs, maxsat.HardClause(lits...))
	}
	abs := make([]string, len(p.Comp))
	for i, c := range p.Comp {
		abs[i] = names.name(Ab(c))
		constrs = append(constrs, maxsat.SoftClause(maxsat.Not(abs[i])))
	}
	if len(constrs) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ch := make(chan maxsat.Model, 1)
	go func() {
		model, _ := maxsat.New(constrs...).Solve()
		ch <- model
	}()
	var model maxsat.Model
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case m := <-ch:
		if m == nil {
			return nil, ErrNoDiagnosis
		}
		model = m
	}
	var out []logic.Term
	for i, c := range p.Comp {
		if model[abs[i]] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	e.log().Debug("minimal diagnosis computed", "abnormal", len(out))
	return out, nil
}

// a nameTable hands atoms serial solver names. Printed forms may collide, so
// they are unusable as solver variables.
type nameTable struct {
	names map[string]string
}

func newNameTable() *nameTable {
	return &nameTable{names: make(map[string]string)}
}

func (t *nameTable) name(a logic.Atom) string {
	key := a.Key()
	if name, ok := t.names[key]; ok {
		return name
	}
	name := "x" + strconv.Itoa(len(t.names)+1)
	t.names[key] = name
	return name
}
