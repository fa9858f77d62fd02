// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/z"
)

// COIAig is R1's AIG variant. aig.C is already a strashed, fully shared
// structure with no explicit deletion (every literal is reachable from
// somewhere or it simply costs nothing to keep), so unlike the
// word-level COI there is nothing to delete: this function's only job is
// synthesizing the pairwise "differ" bad literals spec describes as
// "three AND nodes encoding (u AND NOT v) OR (NOT u AND v)" between the
// first key and each other key, i.e. c.Xor built from primitive Ands.
func COIAig(c *aig.C, keys []z.Lit) []z.Lit {
	if len(keys) < 2 {
		return nil
	}
	x0 := keys[0]
	bads := make([]z.Lit, 0, len(keys)-1)
	for _, xi := range keys[1:] {
		differ := c.Xor(x0, xi)
		bads = append(bads, differ)
	}
	return bads
}
