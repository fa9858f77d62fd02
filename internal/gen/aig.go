// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"

	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/z"
)

// AIGParams sizes a randomized AIG.
type AIGParams struct {
	Inputs int
	Ands   int
}

// RandAIG builds a randomized AIG: Inputs fresh inputs threaded through
// Ands random two-input gates (mixing And/Or/Xor so the strash table
// sees genuine structural sharing, not just repeated And calls), with a
// single literal picked as the bad property. It returns the circuit, its
// input literals in allocation order, and the bad literal.
func RandAIG(rng *rand.Rand, p AIGParams) (c *aig.C, inputs []z.Lit, bad z.Lit) {
	if p.Inputs == 0 {
		p.Inputs = 1
	}
	c = aig.NewC()
	inputs = make([]z.Lit, p.Inputs)
	for i := range inputs {
		inputs[i] = c.Lit()
	}
	pool := append([]z.Lit(nil), inputs...)
	for i := 0; i < p.Ands; i++ {
		a := randLit(rng, pool)
		b := randLit(rng, pool)
		var g z.Lit
		switch rng.Intn(3) {
		case 0:
			g = c.And(a, b)
		case 1:
			g = c.Or(a, b)
		default:
			g = c.Xor(a, b)
		}
		pool = append(pool, g)
	}
	bad = randLit(rng, pool)
	return c, inputs, bad
}

// randLit picks a random literal from pool, negating it about half the
// time.
func randLit(rng *rand.Rand, pool []z.Lit) z.Lit {
	m := pool[rng.Intn(len(pool))]
	if rng.Intn(2) == 0 {
		m = m.Not()
	}
	return m
}
