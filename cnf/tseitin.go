// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/z"
)

// Options controls Encode's mode.
type Options struct {
	// Pg, when true, selects pseudo-polarity mode: every AND gate in
	// the reference set emits all three defining clauses regardless of
	// which polarity is actually referenced. When false (the default),
	// only the clause directions the reference set actually needs are
	// emitted.
	Pg bool

	// OnMap, if non-nil, is called exactly once per aig.C variable the
	// first time Encode maps it into the CNF variable space, as
	// (that variable's positive aig literal, its CNF variable).
	// DimacsWriter.MapComment matches this signature, for spec's
	// "c <aig-lit> -> <cnf-var>" mapping comments.
	OnMap func(aigLit z.Lit, cnfVar z.Var)
}

// Encode Tseitin-encodes c into dst, restricted to the fan-in of
// constraints and bads: an assignment satisfies the emitted clauses iff
// it satisfies every constraint and sets at least one bad literal, i.e.
// some bad property is reachable under the constraints. vs maps c's
// variables into dst's dense CNF variable space; passing a fresh
// *z.Vars lets a caller later decode a model back through vs.ToOuter.
func Encode(c *aig.C, constraints, bads []z.Lit, vs *z.Vars, dst Sink, opts Options) {
	seen := make(map[z.Var]bool)
	fconst := c.F.Var()
	var toInner func(m z.Lit) z.Lit
	toInner = func(m z.Lit) z.Lit {
		v := m.Var()
		inner := vs.ToInner(m)
		if !seen[v] {
			seen[v] = true
			if opts.OnMap != nil {
				opts.OnMap(v.Pos(), inner.Var())
			}
			// c.And already constant-folds away any AND gate with a
			// constant fan-in, so the only place c.F/c.T can reach this
			// encoding is as a root itself (a trivially-true constraint,
			// or a trivially-reached bad). Anchor it the first time it is
			// actually referenced, rather than unconditionally, so a
			// circuit that never touches the constant doesn't pay for an
			// unused CNF variable and clause.
			if v == fconst {
				addClause(dst, toInner(c.T))
			}
		}
		return inner
	}

	refPos := make([]bool, c.Len())
	refNeg := make([]bool, c.Len())
	mark := func(m z.Lit) {
		if opts.Pg {
			return
		}
		if m.IsPos() {
			refPos[m.Var()] = true
		} else {
			refNeg[m.Var()] = true
		}
	}

	// A bad/output/constraint root needs its full definitional
	// equivalence, not just the direction its own polarity would need in
	// isolation: both directions are marked referenced for a root's
	// variable, matching the fully-defined gates a root's fan-in gets in
	// scenario 1's worked CNF ("two-input AND bad").
	markRoot := func(m z.Lit) {
		if opts.Pg {
			return
		}
		refPos[m.Var()] = true
		refNeg[m.Var()] = true
	}
	for _, m := range constraints {
		markRoot(m)
	}
	for _, m := range bads {
		markRoot(m)
	}
	if opts.Pg {
		for v := 1; v < c.Len(); v++ {
			if c.Type(z.Var(v).Pos()) == aig.SAnd {
				refPos[v] = true
				refNeg[v] = true
			}
		}
	}

	// Walk AND gates in reverse: referencing lhs propagates the
	// reference to its fan-ins, in the corresponding polarity.
	for v := c.Len() - 1; v >= 1; v-- {
		if c.Type(z.Var(v).Pos()) != aig.SAnd {
			continue
		}
		a, b := c.Ins(z.Var(v).Pos())
		if refPos[v] {
			mark(a)
			mark(b)
		}
		if refNeg[v] {
			mark(a.Not())
			mark(b.Not())
		}
	}

	for v := 1; v < c.Len(); v++ {
		if !refPos[v] && !refNeg[v] {
			continue
		}
		if c.Type(z.Var(v).Pos()) != aig.SAnd {
			continue
		}
		g := z.Var(v).Pos()
		a, b := c.Ins(g)
		gi, ai, bi := toInner(g), toInner(a), toInner(b)
		if refPos[v] {
			addClause(dst, gi.Not(), ai)
			addClause(dst, gi.Not(), bi)
		}
		if refNeg[v] {
			addClause(dst, ai.Not(), bi.Not(), gi)
		}
	}

	for _, m := range constraints {
		addClause(dst, toInner(m))
	}

	if len(bads) > 0 {
		lits := make([]z.Lit, len(bads))
		for i, m := range bads {
			lits[i] = toInner(m)
		}
		addClause(dst, lits...)
	}
}

func addClause(dst Sink, ms ...z.Lit) {
	for _, m := range ms {
		dst.Add(m)
	}
	dst.Add(z.LitNull)
}
