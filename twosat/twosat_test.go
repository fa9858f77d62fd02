// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package twosat

import (
	"testing"

	"github.com/go-air/bmc/z"
)

func TestSolveForcesImpliedLiteral(t *testing.T) {
	g := New()
	p := z.Var(1).Pos()
	q := z.Var(2).Pos()
	// p -> q and q -> p: p and q must agree; seed p true via a
	// self-implication from an already-forced literal is not how real
	// preprocessing builds this, but a plain p<->q cycle should not by
	// itself force anything since both polarities remain reachable from
	// each other symmetrically. Add p -> q, q.Not() -> p.Not() to force
	// q true whenever p is true, and independently force p true with
	// p.Not() -> p.
	g.Implies(p, q)
	g.Implies(q.Not(), p.Not())
	g.Implies(p.Not(), p)

	forced, err := g.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !forced[z.Var(1)] {
		t.Errorf("expected var 1 forced true")
	}
	if !forced[z.Var(2)] {
		t.Errorf("expected var 2 forced true (implied by var 1)")
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	g := New()
	p := z.Var(1).Pos()
	// p -> not(p) and not(p) -> p put p and its negation in the same SCC.
	g.Implies(p, p.Not())
	g.Implies(p.Not(), p)

	_, err := g.Solve()
	if err == nil {
		t.Fatalf("expected an UnsatError")
	}
	if _, ok := err.(*UnsatError); !ok {
		t.Fatalf("expected *UnsatError, got %T: %s", err, err)
	}
}

func TestPropagateTransitive(t *testing.T) {
	g := New()
	a := z.Var(1).Pos()
	b := z.Var(2).Pos()
	c := z.Var(3).Pos()
	g.Implies(a, b)
	g.Implies(b, c)

	got := g.Propagate(a)
	want := map[z.Lit]bool{b: true, c: true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want closure of size %d", got, len(want))
	}
	for _, l := range got {
		if !want[l] {
			t.Errorf("unexpected literal %s in closure", l)
		}
	}
}

func TestNVars(t *testing.T) {
	g := New()
	g.Implies(z.Var(1).Pos(), z.Var(2).Pos())
	if g.NVars() != 2 {
		t.Errorf("expected 2 vars, got %d", g.NVars())
	}
}
