// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package uf

import "testing"

func TestUnionSmallerCanonical(t *testing.T) {
	u := New(10)
	u.Union(7, 3)
	u.Union(3, 5)
	r := u.Find(7)
	if r != 3 {
		t.Errorf("expected canonical 3, got %d", r)
	}
	if !u.Same(5, 7) {
		t.Errorf("5 and 7 should be joined via 3")
	}
	if u.Same(1, 7) {
		t.Errorf("1 should not be joined to 7")
	}
}

func TestGrow(t *testing.T) {
	u := New(2)
	u.Grow(5)
	if u.Len() != 5 {
		t.Errorf("expected len 5, got %d", u.Len())
	}
	u.Union(0, 4)
	if !u.Same(0, 4) {
		t.Errorf("grown ids should be unionable")
	}
}
