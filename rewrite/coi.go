// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"fmt"

	"github.com/go-air/bmc/wlnet"
)

func absID(ref int) int {
	if ref < 0 {
		return -ref
	}
	return ref
}

// COI is R1: cone-of-influence extraction. It keeps the transitive
// fan-in of keys union every constraint's argument, deletes every other
// node, and, when keys names more than one node, appends a synthetic bad
// property for each pair of consecutive keys so an external solver can
// search for an input that distinguishes the alleged equivalents. Sorts
// referenced only by a deleted node are deleted along with it.
func COI(net *wlnet.Net, keys []int) error {
	for _, k := range keys {
		if net.Node(absID(k)) == nil {
			return fmt.Errorf("rewrite: COI: key node %d does not exist", k)
		}
	}

	keep := make(map[int]bool, net.Len())
	var walk func(ref int)
	walk = func(ref int) {
		id := absID(ref)
		if id <= 0 || id >= net.Len() || keep[id] {
			return
		}
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			return
		}
		keep[id] = true
		for _, a := range nd.RefArgs() {
			walk(a)
		}
		if nd.SortID != 0 {
			walk(nd.SortID)
		}
		if nd.Tag == wlnet.TagSort && nd.SortIsArray {
			walk(nd.IndexSort)
			walk(nd.ElemSort)
		}
		if nd.Tag == wlnet.TagState {
			if nd.InitNode != 0 {
				walk(nd.InitNode)
			}
			if nd.NextNode != 0 {
				walk(nd.NextNode)
			}
		}
	}

	for _, k := range keys {
		walk(k)
	}
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd != nil && !nd.Deleted() && nd.Tag == wlnet.TagConstraint {
			walk(id)
		}
	}

	if len(keys) > 1 {
		s1 := net.BitvecSort(1)
		keep[s1] = true
		prev := keys[0]
		for i := 1; i < len(keys); i++ {
			xi := keys[i]
			sortPrev := net.SortOf(prev)
			xorID := net.Op(wlnet.TagXor, sortPrev, prev, xi)
			zero := net.Const(wlnet.TagZero, sortPrev, "")
			neqID := net.Op(wlnet.TagNeq, s1, xorID, zero)
			badID := net.Bad(neqID, "")
			keep[xorID], keep[zero], keep[neqID], keep[badID] = true, true, true, true
			keep[sortPrev] = true
			prev = xi
		}
	}

	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		if !keep[id] {
			net.Delete(id)
		}
	}
	return nil
}
