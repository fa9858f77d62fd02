// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"fmt"

	"github.com/go-air/bmc/wlnet"
)

// Unroll is R3: it appends k+1 time-step copies of net's combinational
// structure to net itself (new nodes only; nothing existing is
// reallocated or deleted), producing a purely combinational model in
// which every bad/constraint copy at every time step 0..k is live
// simultaneously. Sort and const nodes are never duplicated: every
// timestep's copies reference the originals directly. It returns, for
// each original bad node id, the ids of its k+1 per-timestep copies, so
// a caller can OR them into a single "property reached within k steps"
// query.
func Unroll(net *wlnet.Net, k int) (map[int][]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("rewrite: Unroll: k must be >= 0, got %d", k)
	}
	origLen := net.Len()
	zeroOf := make(map[int]int)
	getZero := func(sortID int) int {
		if z, ok := zeroOf[sortID]; ok {
			return z
		}
		z := net.Const(wlnet.TagZero, sortID, "")
		zeroOf[sortID] = z
		return z
	}

	// copyID[t][id] is the timestep-t copy of original node id, or id
	// itself for a sort or const node (those are shared, never copied).
	copyID := make([][]int, k+1)
	for t := range copyID {
		copyID[t] = make([]int, origLen)
	}
	remap := func(t, ref int) int {
		if ref == 0 {
			return 0
		}
		id := absID(ref)
		c := copyID[t][id]
		if nd := net.Node(id); nd != nil && (nd.Tag == wlnet.TagSort || nd.Tag.IsConst()) {
			c = id // shared, even when a state's init reaches it first
		}
		if ref < 0 {
			return -c
		}
		return c
	}

	badCopies := make(map[int][]int)

	for t := 0; t <= k; t++ {
		for id := 1; id < origLen; id++ {
			nd := net.Node(id)
			if nd == nil || nd.Deleted() {
				continue
			}
			switch {
			case nd.Tag == wlnet.TagSort, nd.Tag.IsConst():
				copyID[t][id] = id
			case nd.Tag == wlnet.TagInit, nd.Tag == wlnet.TagNext:
				// carried via the owning state's own copy, below.
			case nd.Tag == wlnet.TagInput:
				sym := FormatUnrolled(nd.Symbol, RoleInput, id, t)
				copyID[t][id] = net.Input(nd.SortID, sym)
			case nd.Tag == wlnet.TagState:
				copyID[t][id] = unrollState(net, nd, t, copyID, remap, getZero)
			case nd.Tag == wlnet.TagBad:
				nb := net.Bad(remap(t, nd.Args[0]), nd.Symbol)
				copyID[t][id] = nb
				badCopies[id] = append(badCopies[id], nb)
			case nd.Tag == wlnet.TagConstraint:
				copyID[t][id] = net.Constraint(remap(t, nd.Args[0]), nd.Symbol)
			case nd.Tag == wlnet.TagSlice:
				hi, lo := uint32(nd.Args[1]), uint32(nd.Args[2])
				copyID[t][id] = net.Slice(nd.SortID, remap(t, nd.Args[0]), hi, lo)
			case nd.Tag == wlnet.TagUext, nd.Tag == wlnet.TagSext:
				copyID[t][id] = net.Extend(nd.Tag, nd.SortID, remap(t, nd.Args[0]), uint32(nd.Pad))
			default:
				orig := nd.RefArgs()
				args := make([]int, len(orig))
				for i, a := range orig {
					args[i] = remap(t, a)
				}
				copyID[t][id] = net.Op(nd.Tag, nd.SortID, args...)
			}
		}
	}
	return badCopies, nil
}

func unrollState(net *wlnet.Net, nd *wlnet.Node, t int, copyID [][]int, remap func(int, int) int, getZero func(int) int) int {
	sym := FormatUnrolled(nd.Symbol, RoleState, nd.ID, t)
	var id int
	switch {
	case t == 0 && nd.InitNode != 0:
		val := remap(0, net.Node(nd.InitNode).Args[1])
		id = net.Op(wlnet.TagAdd, nd.SortID, getZero(nd.SortID), val)
	case t > 0 && nd.NextNode != 0:
		val := remap(t-1, net.Node(nd.NextNode).Args[1])
		id = net.Op(wlnet.TagAdd, nd.SortID, getZero(nd.SortID), val)
	default:
		id = net.Input(nd.SortID, sym)
		return id
	}
	net.Node(id).Symbol = sym
	return id
}
