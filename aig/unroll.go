// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "github.com/go-air/bmc/z"

// Unroll builds a combinational copy of a sequential S by memoizing, for
// each (variable, depth) pair, the literal in the unrolled circuit C
// standing for that variable's value at that depth. It is the AIG-level
// analog of rewrite.Unroll (which works over the word-level IR and does
// the symbol bookkeeping spec R3 asks for). No pipeline stage calls it:
// the AIGER loader rejects latch-bearing models, so it only unrolls an S
// built directly in code.
type Unroll struct {
	S    *S
	C    *C
	dmap [][]z.Lit
}

// NewUnroll creates a new unroller for s.
func NewUnroll(s *S) *Unroll {
	return &Unroll{
		S:    s,
		C:    NewCCap(s.Len() * 4),
		dmap: make([][]z.Lit, s.Len()),
	}
}

// At returns the value of literal m from the sequential circuit at time
// d, as a literal in the unrolled combinational circuit u.C. At panics
// if d < 0.
func (u *Unroll) At(m z.Lit, d int) z.Lit {
	if d < 0 {
		panic("aig: Unroll.At with negative depth")
	}
	v := m.Var()
	for len(u.dmap[v]) <= d {
		u.dmap[v] = append(u.dmap[v], z.LitNull)
	}
	if u.dmap[v][d] == z.LitNull {
		u.dmap[v][d] = u.compute(v, d)
	}
	res := u.dmap[v][d]
	if !m.IsPos() {
		return res.Not()
	}
	return res
}

func (u *Unroll) compute(v z.Var, d int) z.Lit {
	pos := v.Pos()
	switch u.S.Type(pos) {
	case SConst:
		return u.C.T
	case SInput:
		return u.C.Lit()
	case SLatch:
		if d == 0 {
			init := u.S.Init(pos)
			if init == z.LitNull {
				return u.C.Lit()
			}
			return u.At(init, 0)
		}
		next := u.S.Next(pos)
		return u.At(next, d-1)
	default: // SAnd
		a, b := u.S.Ins(pos)
		return u.C.And(u.At(a, d), u.At(b, d))
	}
}
