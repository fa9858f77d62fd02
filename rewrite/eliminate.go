// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import "github.com/go-air/bmc/wlnet"

// EliminateConstraints deletes every state a real invariant constraint
// transitively depends on, together with the constraint itself and
// everything downstream of that state through an operator or another
// constraint. What remains is the constraint-independent residual of
// the model: a downstream consumer no longer needs to re-derive an
// invariant this pass has already used to prune the states that made it
// necessary in the first place.
func EliminateConstraints(net *wlnet.Net) error {
	n := net.Len()
	mark := make([]bool, n)

	for id := 1; id < n; id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		if nd.EffectiveClass() == wlnet.ClassState {
			mark[id] = true
		}
	}
	spread(net, mark)

	for id := 1; id < n; id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		if nd.Tag != wlnet.TagConstraint {
			mark[id] = false
		}
	}

	for id := n - 1; id >= 1; id-- {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() || !mark[id] {
			continue
		}
		cls := nd.EffectiveClass()
		if cls != wlnet.ClassProperty && cls != wlnet.ClassOp {
			continue
		}
		for _, a := range nd.RefArgs() {
			mark[absID(a)] = true
		}
	}

	for id := 1; id < n; id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		if nd.EffectiveClass() != wlnet.ClassState {
			mark[id] = false
		}
	}
	spread(net, mark)

	for id := 1; id < n; id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() || !mark[id] {
			continue
		}
		// a state's init/next side-records are never reached by spread
		// (they classify as ClassNext, not state/eq/constraint), so an
		// eliminated state must take them down explicitly or a rewrite
		// downstream of this one would find a next referencing a dead id.
		if nd.EffectiveClass() == wlnet.ClassState {
			if nd.InitNode != 0 {
				net.Delete(nd.InitNode)
			}
			if nd.NextNode != 0 {
				net.Delete(nd.NextNode)
			}
		}
		net.Delete(id)
	}
	return nil
}

// spread propagates mark forward along ascending ids, from an already
// marked argument onto any constraint, operator or state node that
// consumes it. Sort references and a state's own init/next side-records
// are never walked, matching the fan-in shape the mark started from.
func spread(net *wlnet.Net, mark []bool) {
	n := net.Len()
	for id := 1; id < n; id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		cls := nd.EffectiveClass()
		if cls != wlnet.ClassProperty && cls != wlnet.ClassOp && cls != wlnet.ClassState {
			continue
		}
		for _, a := range nd.RefArgs() {
			if mark[absID(a)] {
				mark[id] = true
				break
			}
		}
	}
}
