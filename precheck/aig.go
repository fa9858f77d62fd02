// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package precheck

import (
	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/twosat"
	"github.com/go-air/bmc/z"
)

// AIGResult holds the outcome of AIG-side constraint preprocessing:
// Forced gives the polarity every satisfying assignment must give an
// input variable, and Graph is the residual implication graph. sim.RunAIG
// reads only Forced: it does not consult Graph when it draws the
// remaining inputs at random.
type AIGResult struct {
	Graph  *twosat.Graph
	Forced map[z.Var]bool
}

// AIG walks c's AND array in reverse id order propagating must-be-true
// and must-be-false tags from constraints, builds a 2-SAT instance over
// pairs of input literals that a false-tagged AND forbids from both being
// true, and solves it. It returns a *twosat.UnsatError (spec's
// ConstraintsUnsatisfiable) if the constraints are jointly infeasible.
func AIG(c *aig.C, constraints []z.Lit) (*AIGResult, error) {
	trueTag := make(map[z.Lit]bool)
	for _, m := range constraints {
		trueTag[m] = true
	}
	isTrue := func(l z.Lit) bool { return trueTag[l] }
	isFalse := func(l z.Lit) bool { return trueTag[l.Not()] }
	isInput := func(l z.Lit) bool { return c.Type(l) == aig.SInput }

	g := twosat.New()
	for v := c.Len() - 1; v >= 2; v-- {
		lhs := z.Var(v).Pos()
		if c.Type(lhs) != aig.SAnd {
			continue
		}
		rhs0, rhs1 := c.Ins(lhs)
		switch {
		case isTrue(lhs):
			trueTag[rhs0] = true
			trueTag[rhs1] = true
		case isFalse(lhs) && isInput(rhs0) && isInput(rhs1):
			if rhs0 == rhs1.Not() {
				// rhs0 ∧ rhs1 is already unsatisfiable on its own;
				// nothing more to propagate.
				continue
			}
			g.Implies(rhs0, rhs1.Not())
			g.Implies(rhs1, rhs0.Not())
		}
	}

	// Every input literal tagged true must be forced: add the standard
	// 2-SAT unit-clause edge ¬ℓ -> ℓ so Solve rejects any SCC that also
	// contains ¬ℓ.
	for v := 2; v < c.Len(); v++ {
		l := z.Var(v).Pos()
		if !isInput(l) {
			continue
		}
		if isTrue(l) {
			g.Implies(l.Not(), l)
		}
		if isTrue(l.Not()) {
			g.Implies(l, l.Not())
		}
	}

	forced, err := g.Solve()
	if err != nil {
		return nil, err
	}
	return &AIGResult{Graph: g, Forced: forced}, nil
}
