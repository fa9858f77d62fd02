// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "github.com/go-air/bmc/z"

// S is a sequential And-Inverter Graph: a combinational C plus latches,
// each with an init and next literal. Nothing in this toolkit's pipeline
// builds an S: the loader rejects any AIGER file declaring one or more
// latches straight from its header (see aiger.ReadBinary/ReadAscii),
// before any latch is read. S is only built directly in code, and is
// what Unroll consumes.
type S struct {
	*C
	Latches []z.Lit
	inits   []z.Lit
	nexts   []z.Lit
}

// NewS creates an empty sequential circuit.
func NewS() *S {
	return &S{C: NewC()}
}

// NewSCap creates an empty sequential circuit with capacity hint capHint.
func NewSCap(capHint int) *S {
	return &S{C: NewCCap(capHint)}
}

func (s *S) growSeq() {
	n := s.C.Len()
	for len(s.inits) < n {
		s.inits = append(s.inits, z.LitNull)
		s.nexts = append(s.nexts, z.LitNull)
	}
}

// Latch allocates a new latch with the given init literal (which may be
// z.LitNull for "uninitialized").
func (s *S) Latch(init z.Lit) z.Lit {
	m := s.Lit()
	s.growSeq()
	s.Latches = append(s.Latches, m)
	s.inits[m.Var()] = init
	return m
}

// SetNext sets the next-state literal for latch m.
func (s *S) SetNext(m, next z.Lit) {
	s.growSeq()
	s.nexts[m.Var()] = next
}

// Next returns the next-state literal for latch m, or z.LitNull if none
// was set.
func (s *S) Next(m z.Lit) z.Lit {
	v := int(m.Var())
	if v >= len(s.nexts) {
		return z.LitNull
	}
	return s.nexts[v]
}

// SetInit sets the init literal for latch m.
func (s *S) SetInit(m, init z.Lit) {
	s.growSeq()
	s.inits[m.Var()] = init
}

// Init returns the init literal for latch m, or z.LitNull if none was
// set.
func (s *S) Init(m z.Lit) z.Lit {
	v := int(m.Var())
	if v >= len(s.inits) {
		return z.LitNull
	}
	return s.inits[v]
}

// Type reports SLatch for a latch's variable in addition to the C.Type
// classifications.
func (s *S) Type(m z.Lit) Type {
	v := m.Var()
	for _, l := range s.Latches {
		if l.Var() == v {
			return SLatch
		}
	}
	return s.C.Type(m)
}

// Copy returns a deep copy of s.
func Copy(s *S) *S {
	strash := make(map[uint64]uint32, len(s.C.strash))
	for k, v := range s.C.strash {
		strash[k] = v
	}
	c := &C{
		nodes:  append([]node(nil), s.C.nodes...),
		strash: strash,
		F:      s.C.F,
		T:      s.C.T,
	}
	return &S{
		C:       c,
		Latches: append([]z.Lit(nil), s.Latches...),
		inits:   append([]z.Lit(nil), s.inits...),
		nexts:   append([]z.Lit(nil), s.nexts...),
	}
}
