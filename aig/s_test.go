// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "testing"

func TestSLatch(t *testing.T) {
	s := NewS()
	toggle := s.Lit()
	r := s.Latch(s.F)
	c := s.Choice(toggle, r, r.Not())
	s.SetNext(r, c)

	if s.Next(r) != c {
		t.Errorf("next: expected %s got %s", c, s.Next(r))
	}
	if s.Init(r) != s.F {
		t.Errorf("init: expected %s got %s", s.F, s.Init(r))
	}
	if s.Type(r) != SLatch {
		t.Errorf("expected SLatch type for r")
	}
}

func TestSCopyIndependent(t *testing.T) {
	s := NewS()
	m := s.Latch(s.F)
	s.SetNext(m, m.Not())
	cp := Copy(s)
	before := s.Len()
	cp.Lit()
	if s.Len() != before {
		t.Errorf("mutating the copy affected the original: %d != %d", s.Len(), before)
	}
	if len(cp.Latches) != len(s.Latches) {
		t.Errorf("copy should start with the same latches")
	}
}
