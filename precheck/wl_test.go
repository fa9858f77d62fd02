// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package precheck

import (
	"math/rand"
	"testing"

	"github.com/go-air/bmc/bv"
	"github.com/go-air/bmc/wlnet"
)

func TestWordLevelFixesInputThroughEq(t *testing.T) {
	n := wlnet.New()
	s4 := n.BitvecSort(4)
	s1 := n.BitvecSort(1)
	a := n.Input(s4, "a")
	five := n.Const(wlnet.TagConstd, s4, "5")
	eq := n.Op(wlnet.TagEq, s1, a, five)
	n.Constraint(eq, "")

	rng := rand.New(rand.NewSource(1))
	if _, err := WordLevel(n, rng); err != nil {
		t.Fatalf("WordLevel: %s", err)
	}

	slot := n.Node(a).FixedInputSlot
	if slot == 0 {
		t.Fatalf("expected input %d to be fixed", a)
	}
	want, _ := bv.FromDecimal(4, "5")
	if !bv.Equal(n.FixedInputs[slot-1], want) {
		t.Errorf("fixed value = %s, want %s", n.FixedInputs[slot-1], want)
	}
}

func TestWordLevelPropagatesThroughAnd(t *testing.T) {
	n := wlnet.New()
	s4 := n.BitvecSort(4)
	s1 := n.BitvecSort(1)
	a := n.Input(s4, "a")
	b := n.Input(s4, "b")
	five := n.Const(wlnet.TagConstd, s4, "5")
	seven := n.Const(wlnet.TagConstd, s4, "7")
	eqA := n.Op(wlnet.TagEq, s1, a, five)
	eqB := n.Op(wlnet.TagEq, s1, b, seven)
	both := n.Op(wlnet.TagAnd, s1, eqA, eqB)
	n.Constraint(both, "")

	rng := rand.New(rand.NewSource(2))
	if _, err := WordLevel(n, rng); err != nil {
		t.Fatalf("WordLevel: %s", err)
	}
	if n.Node(a).FixedInputSlot == 0 {
		t.Errorf("expected a fixed via AND propagation into eqA")
	}
	if n.Node(b).FixedInputSlot == 0 {
		t.Errorf("expected b fixed via AND propagation into eqB")
	}
}
