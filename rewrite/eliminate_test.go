// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"testing"

	"github.com/go-air/bmc/wlnet"
)

func TestEliminateConstraintsDropsSupportingState(t *testing.T) {
	n := wlnet.New()
	s8 := n.BitvecSort(8)
	s1 := n.BitvecSort(1)

	st := n.State(s8, "st")
	zero8 := n.Const(wlnet.TagZero, s8, "")
	initNode := n.Init(st, zero8)
	inc := n.Op(wlnet.TagInc, s8, st)
	nextNode := n.Next(st, inc)
	eq := n.Op(wlnet.TagEq, s1, st, zero8)
	con := n.Constraint(eq, "c0")

	st2 := n.State(s8, "st2")
	in2 := n.Input(s8, "in2")
	next2 := n.Next(st2, in2)
	eq2 := n.Op(wlnet.TagEq, s1, st2, zero8)
	bad2 := n.Bad(eq2, "bad2")

	if err := EliminateConstraints(n); err != nil {
		t.Fatalf("EliminateConstraints: %s", err)
	}

	for _, id := range []int{st, inc, eq, con, initNode, nextNode} {
		if !n.Node(id).Deleted() {
			t.Errorf("node %d should have been eliminated with its constraint", id)
		}
	}
	for _, id := range []int{zero8, st2, in2, next2, eq2, bad2} {
		if n.Node(id).Deleted() {
			t.Errorf("node %d is unrelated to the constraint and should survive", id)
		}
	}
}

func TestEliminateConstraintsNoConstraintsIsNoOp(t *testing.T) {
	n := wlnet.New()
	s8 := n.BitvecSort(8)
	st := n.State(s8, "st")
	in := n.Input(s8, "in")
	next := n.Next(st, in)

	if err := EliminateConstraints(n); err != nil {
		t.Fatalf("EliminateConstraints: %s", err)
	}
	for _, id := range []int{st, in, next} {
		if n.Node(id).Deleted() {
			t.Errorf("node %d should survive when the model has no constraints", id)
		}
	}
}
