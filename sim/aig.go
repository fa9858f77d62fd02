// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"math/rand"

	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/precheck"
	"github.com/go-air/bmc/z"
)

// tri is a three-valued truth: -1 unknown, 0 false, 1 true. Every gate
// evaluation follows the strong Kleene tables so an unknown input never
// silently resolves to a definite value.
type tri int8

const (
	unknown tri = -1
	tfalse  tri = 0
	ttrue   tri = 1
)

func triAnd(a, b tri) tri {
	if a == tfalse || b == tfalse {
		return tfalse
	}
	if a == unknown || b == unknown {
		return unknown
	}
	return ttrue
}

func triNot(a tri) tri {
	switch a {
	case ttrue:
		return tfalse
	case tfalse:
		return ttrue
	default:
		return unknown
	}
}

func litTri(vals []tri, m z.Lit) tri {
	v := vals[m.Var()]
	if v == unknown {
		return unknown
	}
	if m.IsPos() {
		return v
	}
	return triNot(v)
}

// AIGConfig configures an AIG simulation run, mirroring WLConfig.
type AIGConfig struct {
	Rounds    int
	ValueSeed int64
	HashSeed  int64
}

// AIGResult is the outcome of an AIG run. Per spec's open question on
// round 0, round 0 is always treated as a warm-up: it is checked for
// constraint violation and bad triggers like any other round but never
// contributes to Fingerprints.
type AIGResult struct {
	Rounds     int
	Successful int
	BadRound   int   // -1 if no bad literal ever evaluated true
	BadLit     z.Lit // the bad literal that fired, valid iff BadRound >= 0

	// Fingerprint is keyed by variable index (int, not z.Var) so its
	// result passes directly to CandidatesAIG.
	Fingerprint map[int]uint64
}

// RunAIG runs cfg.Rounds rounds of three-valued simulation over c,
// exiting immediately on the round a bad literal first evaluates true.
// pre supplies the forced input polarities computed by precheck.AIG;
// every other input is drawn freely, and pre's residual implication
// graph is not consulted. pre may be nil for a circuit with no
// constraints, in which case every input is drawn freely.
func RunAIG(c *aig.C, constraints, bads []z.Lit, pre *precheck.AIGResult, cfg AIGConfig) *AIGResult {
	valueRNG := rand.New(rand.NewSource(cfg.ValueSeed))
	hashRNG := rand.New(rand.NewSource(cfg.HashSeed))

	res := &AIGResult{BadRound: -1, Fingerprint: make(map[int]uint64)}
	vals := make([]tri, c.Len())

	for round := 0; round < cfg.Rounds; round++ {
		aigRound(c, pre, valueRNG, vals)
		res.Rounds++

		violated := false
		for _, m := range constraints {
			if litTri(vals, m) != ttrue {
				violated = true
				break
			}
		}
		if violated {
			continue
		}
		res.Successful++

		fired := z.LitNull
		for _, m := range bads {
			if litTri(vals, m) == ttrue {
				fired = m
				break
			}
		}
		if fired != z.LitNull {
			res.BadRound = round
			res.BadLit = fired
			return res
		}

		if round == 0 {
			// warm-up round: spec's open question resolves this as
			// policy, not an oversight - no fingerprint contribution.
			continue
		}
		base := hashRNG.Uint64()
		for v := 2; v < c.Len(); v++ {
			if litTri(vals, z.Var(v).Pos()) == ttrue {
				res.Fingerprint[v] ^= base
			}
		}
	}
	return res
}

// aigRound assigns a truth value to every node of c in ascending id
// order: the reserved constant, then each input (from pre.Forced when
// available, otherwise a fresh random bit), then each AND gate by the
// Kleene table over its already-assigned fan-ins.
func aigRound(c *aig.C, pre *precheck.AIGResult, rng *rand.Rand, vals []tri) {
	for v := 1; v < c.Len(); v++ {
		m := z.Var(v).Pos()
		switch c.Type(m) {
		case aig.SConst:
			vals[v] = ttrue // c.F is this var's negative literal
		case aig.SInput:
			vals[v] = aigSeedInput(pre, z.Var(v), rng)
		case aig.SAnd:
			rhs0, rhs1 := c.Ins(m)
			vals[v] = triAnd(litTri(vals, rhs0), litTri(vals, rhs1))
		default:
			vals[v] = unknown
		}
	}
}

func aigSeedInput(pre *precheck.AIGResult, v z.Var, rng *rand.Rand) tri {
	if pre != nil {
		if want, ok := pre.Forced[v]; ok {
			if want {
				return ttrue
			}
			return tfalse
		}
	}
	if rng.Intn(2) == 1 {
		return ttrue
	}
	return tfalse
}
