package logic

import (
	"errors"
	"fmt"
)

// ErrUnsupportedAxiom is reported when an axiom uses a quantifier shape the
// engine cannot ground over the component domain.
var ErrUnsupportedAxiom = errors.New("unsupported axiom shape")

// IsGround reports whether f contains no quantifier.
func IsGround(f Form) bool {
	switch g := f.(type) {
	case forall:
		return false
	case not:
		return IsGround(g.f)
	case and:
		for _, sub := range g.subs {
			if !IsGround(sub) {
				return false
			}
		}
		return true
	case or:
		for _, sub := range g.subs {
			if !IsGround(sub) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Instances grounds an axiom over a finite domain. A universally quantified
// axiom yields one instance per domain element; a ground axiom passes through
// as its own single instance. Any other quantifier shape is rejected with an
// error wrapping ErrUnsupportedAxiom: the engine fails fast rather than
// silently mis-instantiating. Quantification over an empty domain yields no
// instances at all, which makes the axiom vacuously true.
func Instances(f Form, domain []Term) ([]Form, error) {
	q, ok := f.(forall)
	if !ok {
		if !IsGround(f) {
			return nil, fmt.Errorf("quantifier below the top level: %w", ErrUnsupportedAxiom)
		}
		return []Form{f}, nil
	}
	insts := make([]Form, 0, len(domain))
	for _, c := range domain {
		inst := q.body(c)
		if !IsGround(inst) {
			return nil, fmt.Errorf("nested quantifier in the instance for %s: %w", c, ErrUnsupportedAxiom)
		}
		insts = append(insts, inst)
	}
	return insts, nil
}
