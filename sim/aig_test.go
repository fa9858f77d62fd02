// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"testing"

	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/precheck"
	"github.com/go-air/bmc/z"
)

// TestRunAIGFingerprintsForcedlyEquivalentGates builds two AND gates
// that are structurally distinct (they strash to different variables)
// but always evaluate the same, because their divergent fan-ins p and r
// are both forced to the same polarity. This is the AIG analog of
// spec's scenario 3 (y = x and x, z = x): the strashing And/Or builders
// in aig.C would collapse a literal syntactic redundancy like y = x AND
// x to the same variable as x itself, so the only way to exercise
// discovery of a *semantic* equivalence the builder does not already
// fold away is to make it depend on a forced-equal input pair instead.
func TestRunAIGFingerprintsForcedlyEquivalentGates(t *testing.T) {
	c := aig.NewC()
	p := c.Lit()
	q := c.Lit()
	r := c.Lit()
	gate1 := c.And(p, q)
	gate2 := c.And(r, q)

	pre := &precheck.AIGResult{Forced: map[z.Var]bool{
		p.Var(): true,
		r.Var(): true,
	}}

	res := RunAIG(c, nil, nil, pre, AIGConfig{Rounds: 100, ValueSeed: 5, HashSeed: 6})
	if res.Successful != res.Rounds {
		t.Fatalf("expected every round to succeed (no constraints), got %d/%d", res.Successful, res.Rounds)
	}

	pairs := CandidatesAIG(res.Fingerprint, 8)
	g1, g2 := int(gate1.Var()), int(gate2.Var())
	found := false
	for _, pr := range pairs {
		if (pr.Lo == g1 && pr.Hi == g2) || (pr.Lo == g2 && pr.Hi == g1) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected candidate pair (%d, %d) among %v", g1, g2, pairs)
	}
}

func TestRunAIGExitsOnFirstBad(t *testing.T) {
	c := aig.NewC()
	_ = c.Lit()

	res := RunAIG(c, nil, []z.Lit{c.T}, nil, AIGConfig{Rounds: 50, ValueSeed: 1, HashSeed: 2})
	if res.BadRound != 0 {
		t.Fatalf("expected the constant-true bad to fire at round 0, got %d", res.BadRound)
	}
	if res.BadLit != c.T {
		t.Errorf("expected BadLit == c.T, got %s", res.BadLit)
	}
	if res.Rounds != 1 {
		t.Errorf("expected simulation to stop immediately, ran %d rounds", res.Rounds)
	}
}

func TestRunAIGConstraintViolationSkipsRound(t *testing.T) {
	c := aig.NewC()
	_ = c.Lit()

	res := RunAIG(c, []z.Lit{c.F}, nil, nil, AIGConfig{Rounds: 10, ValueSeed: 1, HashSeed: 2})
	if res.Successful != 0 {
		t.Errorf("expected every round to violate the always-false constraint, got %d successful", res.Successful)
	}
	if res.Rounds != 10 {
		t.Errorf("expected all 10 rounds to run, got %d", res.Rounds)
	}
}
