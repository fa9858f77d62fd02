// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"testing"

	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/z"
)

func TestCOIAigSynthesizesDifferBads(t *testing.T) {
	c := aig.NewC()
	x0 := c.Lit()
	x1 := c.Lit()
	x2 := c.Lit()

	bads := COIAig(c, []z.Lit{x0, x1, x2})
	if len(bads) != 2 {
		t.Fatalf("expected one bad per extra key, got %d", len(bads))
	}
	if bads[0] != c.Xor(x0, x1) {
		t.Errorf("bads[0] does not match c.Xor(x0, x1)")
	}
	if bads[1] != c.Xor(x0, x2) {
		t.Errorf("bads[1] does not match c.Xor(x0, x2)")
	}
}

func TestCOIAigSingleKeyIsNoOp(t *testing.T) {
	c := aig.NewC()
	x0 := c.Lit()
	if bads := COIAig(c, []z.Lit{x0}); bads != nil {
		t.Errorf("expected no bads for a single key, got %v", bads)
	}
}
