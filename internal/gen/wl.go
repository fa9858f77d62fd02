// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/go-air/bmc/wlnet"
)

// dataOps is the repertoire RandSequentialNet draws combinational nodes
// from: every tag here takes two same-width operands and produces a
// same-width result, so pool members can be threaded through any of them
// without a sort mismatch.
var dataOps = []wlnet.Tag{
	wlnet.TagAnd, wlnet.TagOr, wlnet.TagXor,
	wlnet.TagAdd, wlnet.TagSub,
}

// boolOps is the repertoire used for a bad or constraint condition: every
// tag here reduces two data-sort operands to a boolean (width-1) result.
var boolOps = []wlnet.Tag{
	wlnet.TagEq, wlnet.TagNeq, wlnet.TagUlt, wlnet.TagUgt,
}

// WLParams sizes a randomized word-level netlist.
type WLParams struct {
	Width  uint32 // uniform bitvector width for every data node
	Inputs int
	States int
	Ops    int // extra combinational operator nodes beyond inputs/states
}

// RandCombinationalNet builds a purely combinational netlist: no states,
// just Inputs seed nodes threaded through Ops random dataOps nodes, with
// one bad node on a random boolOps condition over the result pool.
func RandCombinationalNet(rng *rand.Rand, p WLParams) *wlnet.Net {
	p.States = 0
	return RandSequentialNet(rng, p)
}

// RandSequentialNet builds a randomized word-level netlist with Inputs
// free inputs and States state nodes, threaded through Ops random
// dataOps nodes, and terminated by a single bad node. Every state gets a
// Next value drawn from the node pool built so far (which may include
// the state itself, for direct feedback the way a single flip-flop's
// output feeds back through combinational logic into its own input) and,
// with even odds, an Init value of zero; a state left without an Init is
// evaluated as a free-running (unconstrained-initial-value) latch. The
// simplest instance of this shape, one input wired straight into one
// state's Next with no Init at all, is exactly a single D flip-flop.
func RandSequentialNet(rng *rand.Rand, p WLParams) *wlnet.Net {
	if p.Width == 0 {
		p.Width = 8
	}
	net := wlnet.New()
	dataSort := net.BitvecSort(p.Width)
	boolSort := net.BitvecSort(1)

	var pool []int
	for i := 0; i < p.Inputs; i++ {
		pool = append(pool, net.Input(dataSort, fmt.Sprintf("in%d", i)))
	}

	states := make([]int, p.States)
	for i := range states {
		id := net.State(dataSort, fmt.Sprintf("s%d", i))
		states[i] = id
		pool = append(pool, id)
	}

	if len(pool) == 0 {
		// every generator needs at least one leaf to build from.
		pool = append(pool, net.Input(dataSort, "in0"))
	}

	for i := 0; i < p.Ops; i++ {
		tag := dataOps[rng.Intn(len(dataOps))]
		a := pool[rng.Intn(len(pool))]
		b := pool[rng.Intn(len(pool))]
		pool = append(pool, net.Op(tag, dataSort, a, b))
	}

	for _, s := range states {
		if rng.Intn(2) == 0 {
			zero := net.Const(wlnet.TagZero, dataSort, "")
			net.Init(s, zero)
		}
		val := pool[rng.Intn(len(pool))]
		net.Next(s, val)
	}

	tag := boolOps[rng.Intn(len(boolOps))]
	a := pool[rng.Intn(len(pool))]
	b := pool[rng.Intn(len(pool))]
	cond := net.Op(tag, boolSort, a, b)
	net.Bad(cond, "bad0")

	return net
}
