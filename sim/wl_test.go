// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"testing"

	"github.com/go-air/bmc/wlnet"
)

func TestRunWordLevelFingerprintsEquivalentNodes(t *testing.T) {
	n := wlnet.New()
	s8 := n.BitvecSort(8)
	x := n.Input(s8, "x")
	notx := n.Op(wlnet.TagNot, s8, x)
	notnotx := n.Op(wlnet.TagNot, s8, notx)

	res, err := RunWordLevel(n, WLConfig{Rounds: 200, ValueSeed: 7, HashSeed: 11})
	if err != nil {
		t.Fatalf("RunWordLevel: %s", err)
	}
	if res.Successful != res.Rounds {
		t.Fatalf("expected every round to succeed (no constraints), got %d/%d", res.Successful, res.Rounds)
	}

	pairs := Candidates(res.Fingerprints, res.Widths, 4)
	found := false
	for _, p := range pairs {
		if p.Lo == x && p.Hi == notnotx {
			found = true
		}
	}
	if !found {
		t.Errorf("expected candidate pair (%d, %d), got %v", x, notnotx, pairs)
	}
}

func TestRunWordLevelBadTriggersImmediately(t *testing.T) {
	n := wlnet.New()
	s1 := n.BitvecSort(1)
	one := n.Const(wlnet.TagOne, s1, "")
	bad := n.Bad(one, "")

	res, err := RunWordLevel(n, WLConfig{Rounds: 100, ValueSeed: 1, HashSeed: 2})
	if err != nil {
		t.Fatalf("RunWordLevel: %s", err)
	}
	if round, hit := res.BadRound[bad]; !hit || round != 0 {
		t.Fatalf("expected bad %d to fire at round 0, got %v", bad, res.BadRound)
	}
	if res.Rounds != 1 {
		t.Errorf("expected simulation to stop after the round every bad fired, ran %d rounds", res.Rounds)
	}
}

func TestRunWordLevelSkipsViolatedRounds(t *testing.T) {
	n := wlnet.New()
	s1 := n.BitvecSort(1)
	zero := n.Const(wlnet.TagZero, s1, "")
	n.Constraint(zero, "") // always violated: nothing ever succeeds

	res, err := RunWordLevel(n, WLConfig{Rounds: 20, ValueSeed: 3, HashSeed: 4})
	if err != nil {
		t.Fatalf("RunWordLevel: %s", err)
	}
	if res.Rounds != 20 {
		t.Errorf("expected all 20 rounds to run, got %d", res.Rounds)
	}
	if res.Successful != 0 {
		t.Errorf("expected no successful rounds, got %d", res.Successful)
	}
	if len(res.Fingerprints) != 0 {
		t.Errorf("expected no fingerprint contributions from violated rounds, got %d entries", len(res.Fingerprints))
	}
}
