// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"testing"

	"github.com/go-air/bmc/wlnet"
)

func TestCOIDropsUnreachableNodes(t *testing.T) {
	n := wlnet.New()
	s8 := n.BitvecSort(8)
	s1 := n.BitvecSort(1)

	a := n.Input(s8, "a")
	dead := n.Input(s8, "dead")
	notA := n.Op(wlnet.TagNot, s8, a)
	zero := n.Const(wlnet.TagZero, s8, "")
	deadEq := n.Op(wlnet.TagEq, s1, dead, zero)
	n.Bad(deadEq, "unrelated")
	_ = deadEq

	// key is notA; the constraint's argument must survive even though
	// it is not in notA's fan-in.
	cInput := n.Input(s1, "c")
	n.Constraint(cInput, "")

	if err := COI(n, []int{notA}); err != nil {
		t.Fatalf("COI: %s", err)
	}

	for _, id := range []int{notA, a} {
		if n.Node(id).Deleted() {
			t.Errorf("node %d should survive COI", id)
		}
	}
	for _, id := range []int{dead, zero, deadEq} {
		if !n.Node(id).Deleted() {
			t.Errorf("node %d should have been deleted by COI", id)
		}
	}
	if n.Node(cInput).Deleted() {
		t.Errorf("constraint argument %d must survive COI", cInput)
	}
}

func TestCOIMultipleKeysEmitsEquivalenceBad(t *testing.T) {
	n := wlnet.New()
	s8 := n.BitvecSort(8)
	x := n.Input(s8, "x")
	notX := n.Op(wlnet.TagNot, s8, x)
	notNotX := n.Op(wlnet.TagNot, s8, notX)

	if err := COI(n, []int{x, notNotX}); err != nil {
		t.Fatalf("COI: %s", err)
	}

	found := false
	for id := 1; id < n.Len(); id++ {
		nd := n.Node(id)
		if nd != nil && !nd.Deleted() && nd.Tag == wlnet.TagBad {
			found = true
		}
	}
	if !found {
		t.Errorf("expected COI to append a bad node witnessing the pair (%d, %d)", x, notNotX)
	}
}

func TestCOIThreeKeysChainsConsecutivePairs(t *testing.T) {
	n := wlnet.New()
	s8 := n.BitvecSort(8)
	k0 := n.Input(s8, "k0")
	k1 := n.Input(s8, "k1")
	k2 := n.Input(s8, "k2")

	if err := COI(n, []int{k0, k1, k2}); err != nil {
		t.Fatalf("COI: %s", err)
	}

	pairKey := func(a, b int) [2]int {
		if a > b {
			a, b = b, a
		}
		return [2]int{a, b}
	}
	want := map[[2]int]bool{pairKey(k0, k1): true, pairKey(k1, k2): true}

	got := map[[2]int]bool{}
	for id := 1; id < n.Len(); id++ {
		nd := n.Node(id)
		if nd == nil || nd.Deleted() || nd.Tag != wlnet.TagXor {
			continue
		}
		args := nd.RefArgs()
		if len(args) != 2 {
			t.Fatalf("xor node %d: expected 2 args, got %v", id, args)
		}
		got[pairKey(args[0], args[1])] = true
	}

	if len(got) != len(want) {
		t.Fatalf("expected xor pairs %v, got %v", want, got)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("missing consecutive-pair xor for keys %v; got pairs %v", p, got)
		}
	}
	if got[pairKey(k0, k2)] {
		t.Errorf("COI produced a star-shaped xor(%d, %d) instead of chaining consecutive keys", k0, k2)
	}
}

func TestCOIRejectsUnknownKey(t *testing.T) {
	n := wlnet.New()
	if err := COI(n, []int{99}); err == nil {
		t.Errorf("expected an error for a nonexistent key node")
	}
}
