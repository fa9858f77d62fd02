// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the literal/variable encoding shared by the AIG and
// word-level circuit representations: a variable is a dense positive
// integer, and a literal packs a variable with a polarity bit the way
// AIGER and DIMACS both do it, so conversion to either wire format is a
// shift and an and, not a lookup.
package z

import "fmt"

// Var is a dense variable index. 0 is reserved and never denotes a real
// variable.
type Var uint32

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1) ^ 1
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}

// Lit is a literal: a variable and a polarity, encoded as 2*var for the
// positive occurrence and 2*var+1 for the negative one.
type Lit uint32

// LitNull is not a valid literal of any variable; it terminates clauses
// in Adder-style streaming interfaces and marks "no argument" in circuit
// node slots.
const LitNull Lit = 0

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Sign returns 1 if m is positive, -1 if m is negative.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// IsPos is true iff m is the positive occurrence of its variable.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Dimacs2Lit converts a non-zero signed dimacs integer into a Lit.
func Dimacs2Lit(d int) Lit {
	if d < 0 {
		return Var(-d).Neg()
	}
	return Var(d).Pos()
}

// Dimacs converts m back into a signed dimacs integer.
func (m Lit) Dimacs() int {
	d := int(m.Var())
	if !m.IsPos() {
		return -d
	}
	return d
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%s", m.Var())
	}
	return fmt.Sprintf("-%s", m.Var())
}
