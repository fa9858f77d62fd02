// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"testing"

	"github.com/go-air/bmc/wlnet"
)

// TestRandSequentialNetTopologicalClosure spot-checks P1 (topological
// closure) on generated netlists: every operand of every node must have
// a smaller id, except a state node's init/next value, which is allowed
// to reference forward (that is exactly how feedback is expressed).
func TestRandSequentialNetTopologicalClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		net := RandSequentialNet(rng, WLParams{Width: 8, Inputs: 3, States: 2, Ops: 10})
		for id := 1; id < net.Len(); id++ {
			nd := net.Node(id)
			if nd == nil || nd.Deleted() {
				continue
			}
			if nd.Tag == wlnet.TagInit || nd.Tag == wlnet.TagNext {
				// args[0] (the state) must still precede this node;
				// args[1] (the value) is exempt.
				if abs(nd.Args[0]) >= id {
					t.Fatalf("trial %d: %s node %d references state %d out of order", trial, nd.Tag, id, nd.Args[0])
				}
				continue
			}
			for _, a := range nd.RefArgs() {
				if abs(a) >= id {
					t.Fatalf("trial %d: node %d (%s) references %d out of order", trial, id, nd.Tag, a)
				}
			}
		}
	}
}

// TestRandCombinationalNetHasNoStates checks RandCombinationalNet really
// drops State/Init/Next entirely rather than just skipping their wiring.
func TestRandCombinationalNetHasNoStates(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	net := RandCombinationalNet(rng, WLParams{Width: 4, Inputs: 2, Ops: 5})
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		if nd.Tag == wlnet.TagState || nd.Tag == wlnet.TagInit || nd.Tag == wlnet.TagNext {
			t.Fatalf("combinational net has a %s node", nd.Tag)
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
