// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"fmt"

	"github.com/go-air/bmc/uf"
	"github.com/go-air/bmc/wlnet"
)

// EquivPair is one asserted-equivalent node id pair, as read by
// ReadEquivPairs or supplied programmatically to Merge.
type EquivPair struct{ X, Y int }

// Merge is R2: union-merging. It builds a union-find over node ids
// (uf.T, canonical = smaller id) from pairs, substitutes every operand
// reference through the resulting representative while preserving sign,
// restores the rhs0 >= rhs1 ordering AND-family nodes with commutative
// operands rely on, and finally drops every node no longer reachable
// from a constraint or bad property.
//
// A node transitively driving a constraint is marked Fixed by
// markFixed before substitution and is excluded from having its own
// operands rewritten, so merging cannot silently change what a
// constraint asserts.
func Merge(net *wlnet.Net, pairs []EquivPair) error {
	u := uf.New(net.Len())
	for _, p := range pairs {
		if net.Node(p.X) == nil || net.Node(p.Y) == nil {
			return fmt.Errorf("rewrite: Merge: pair (%d, %d): node does not exist", p.X, p.Y)
		}
		u.Union(p.X, p.Y)
	}

	markFixed(net)

	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() || nd.Fixed {
			continue
		}
		refs := nd.RefArgs()
		for i, r := range refs {
			target := absID(r)
			rep := u.Find(target)
			if rep == target {
				continue
			}
			if r < 0 {
				refs[i] = -rep
			} else {
				refs[i] = rep
			}
		}
		if isCommutativeBinary(nd.Tag) && len(refs) == 2 && refs[0] < refs[1] {
			refs[0], refs[1] = refs[1], refs[0]
		}
	}

	keep := reachableFromProperties(net)
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd != nil && !nd.Deleted() && !keep[id] {
			net.Delete(id)
		}
	}
	return nil
}

// markFixed flags every node on the fan-in cone of some constraint,
// exactly the set Merge must not rewrite the operands of.
func markFixed(net *wlnet.Net) {
	var walk func(id int)
	walk = func(id int) {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() || nd.Fixed {
			return
		}
		nd.Fixed = true
		for _, r := range nd.RefArgs() {
			walk(absID(r))
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
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd != nil && !nd.Deleted() && nd.Tag == wlnet.TagConstraint {
			walk(absID(nd.Args[0]))
		}
	}
}

func reachableFromProperties(net *wlnet.Net) map[int]bool {
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
		for _, r := range nd.RefArgs() {
			walk(r)
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
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		if nd.Tag == wlnet.TagBad || nd.Tag == wlnet.TagConstraint {
			walk(id)
		}
	}
	return keep
}

func isCommutativeBinary(t wlnet.Tag) bool {
	switch t {
	case wlnet.TagAnd, wlnet.TagOr, wlnet.TagXor, wlnet.TagNand, wlnet.TagNor, wlnet.TagXnor,
		wlnet.TagAdd, wlnet.TagMul, wlnet.TagEq, wlnet.TagNeq:
		return true
	}
	return false
}
