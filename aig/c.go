// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig is the bit-level And-Inverter Graph representation: a
// strashed arena of two-input AND nodes addressed by literal, the same
// hash-consing shape as a word-level strashed circuit builder but
// specialized to the single AIG gate. C is combinational; S adds latches
// on top of C for circuits built directly in code. The AIGER reader
// never builds an S: it rejects a latch-bearing model from its header
// (see aiger.ReadBinary/ReadAscii).
package aig

import "github.com/go-air/bmc/z"

// Type classifies a literal's underlying node.
type Type int

const (
	SConst Type = iota
	SInput
	SAnd
	SLatch
)

// C is a combinational And-Inverter circuit: a strashed arena of AND
// nodes plus a reserved constant-false/true pair. Structural sharing is
// looked up through a plain Go map keyed on the fan-in pair rather than
// a hand-rolled hash table, so the arena never needs its own resize
// logic: growing c.nodes and growing the strash map are two independent,
// unrelated concerns.
type C struct {
	nodes  []node
	strash map[uint64]uint32
	F      z.Lit
	T      z.Lit
}

type node struct {
	a, b z.Lit
}

// NewC creates an empty circuit with a small default capacity.
func NewC() *C {
	c := &C{}
	initC(c, 128)
	return c
}

// NewCCap creates an empty circuit with capacity hint capHint.
func NewCCap(capHint int) *C {
	c := &C{}
	initC(c, capHint)
	return c
}

func initC(c *C, capHint int) {
	if capHint < 2 {
		capHint = 2
	}
	c.nodes = make([]node, 2, capHint)
	c.strash = make(map[uint64]uint32, capHint)
	c.F = z.Var(1).Neg()
	c.T = c.F.Not()
}

// strashKey packs an already-canonicalized fan-in pair into one map key.
// z.Lit is a uint32, so the pair fits losslessly in a uint64 with no
// mixing needed: the map's own hashing does the scrambling.
func strashKey(a, b z.Lit) uint64 {
	return uint64(a)<<32 | uint64(b)
}

// Len returns the number of internal slots used, including the reserved
// constant slot. Elements 1..Len()-1 are in topological order: for any i
// < j, c.At(j) is never a fan-in of c.At(i).
func (c *C) Len() int {
	return len(c.nodes)
}

// At returns the positive literal of the i'th node.
func (c *C) At(i int) z.Lit {
	return z.Var(i).Pos()
}

// Lit allocates a fresh input variable and returns its positive literal.
func (c *C) Lit() z.Lit {
	m := len(c.nodes)
	c.newNode()
	return z.Var(m).Pos()
}

// Type reports whether m's variable is the constant, an input, or an AND
// gate.
func (c *C) Type(m z.Lit) Type {
	v := m.Var()
	if v == c.F.Var() {
		return SConst
	}
	n := c.nodes[v]
	if n.a == z.LitNull {
		return SInput
	}
	return SAnd
}

// Ins returns the two fan-ins of an AND node. For an input or the
// constant it returns z.LitNull twice.
func (c *C) Ins(m z.Lit) (z.Lit, z.Lit) {
	n := c.nodes[m.Var()]
	return n.a, n.b
}

// InPos appends the positions of every input node to dst and returns it.
func (c *C) InPos(dst []int) []int {
	for i, n := range c.nodes {
		if i == 0 || i == int(c.F.Var()) {
			continue
		}
		if n.a == z.LitNull {
			dst = append(dst, i)
		}
	}
	return dst
}

// And returns a literal equivalent to a AND b, reusing an existing node
// via the strash table when one already computes the same conjunction.
func (c *C) And(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return c.F
	}
	if a > b {
		a, b = b, a
	}
	if a == c.F {
		return c.F
	}
	if a == c.T {
		return b
	}
	key := strashKey(a, b)
	if si, ok := c.strash[key]; ok {
		return z.Var(si).Pos()
	}
	nn, j := c.newNode()
	nn.a, nn.b = a, b
	c.strash[key] = j
	return z.Var(j).Pos()
}

// Ands conjoins a sequence of literals, returning T for an empty
// sequence.
func (c *C) Ands(ms ...z.Lit) z.Lit {
	r := c.T
	for _, m := range ms {
		r = c.And(r, m)
	}
	return r
}

// Or returns a literal equivalent to a OR b.
func (c *C) Or(a, b z.Lit) z.Lit {
	return c.And(a.Not(), b.Not()).Not()
}

// Ors disjoins a sequence of literals, returning F for an empty
// sequence.
func (c *C) Ors(ms ...z.Lit) z.Lit {
	r := c.F
	for _, m := range ms {
		r = c.Or(r, m)
	}
	return r
}

// Xor returns a literal equivalent to a XOR b.
func (c *C) Xor(a, b z.Lit) z.Lit {
	return c.Or(c.And(a, b.Not()), c.And(a.Not(), b))
}

// Implies returns a literal equivalent to (a implies b).
func (c *C) Implies(a, b z.Lit) z.Lit {
	return c.Or(a.Not(), b)
}

// Choice returns a literal equivalent to "if i then t else e".
func (c *C) Choice(i, t, e z.Lit) z.Lit {
	return c.Or(c.And(i, t), c.And(i.Not(), e))
}

// newNode appends a fresh, empty node slot, growing the backing slice
// via append's own doubling policy. The strash map needs no equivalent
// resize step: it holds no reference into c.nodes, only integer ids, so
// c.nodes moving to a new backing array never invalidates it.
func (c *C) newNode() (*node, uint32) {
	id := len(c.nodes)
	c.nodes = append(c.nodes, node{})
	return &c.nodes[id], uint32(id)
}
