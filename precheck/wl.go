// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package precheck

import (
	"math/rand"

	"github.com/go-air/bmc/bv"
	"github.com/go-air/bmc/eval"
	"github.com/go-air/bmc/wlnet"
)

// WordLevel runs one warm-up simulation round with rng and marks
// must-be-1/must-be-0 requirements backward from every constraint
// through AND, OR and EQ nodes, fixing whole input vectors where an EQ
// pins an input against an already-computed value. Fixed inputs are
// recorded on net (Node.FixedInputSlot and net.FixedInputs) so later
// simulation rounds load them instead of drawing fresh random values.
// The warm-up round's own env is returned so callers that also want its
// values (round 0 is a real, if unfingerprinted, round) don't have to
// re-run it.
func WordLevel(net *wlnet.Net, rng *rand.Rand) (*eval.Env, error) {
	env := eval.NewEnv(net)
	if err := env.Round(rng); err != nil {
		return nil, err
	}

	mark := make(map[int]bool)
	seed := func(ref int, want bool) {
		id := absID(ref)
		w := want != (ref < 0)
		if _, ok := mark[id]; !ok {
			mark[id] = w
		}
	}
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() || nd.Tag != wlnet.TagConstraint {
			continue
		}
		seed(nd.Args[0], true)
	}

	for id := net.Len() - 1; id >= 1; id-- {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		want, ok := mark[id]
		if !ok {
			continue
		}
		switch {
		case nd.Tag == wlnet.TagAnd && want:
			seed(nd.Args[0], true)
			seed(nd.Args[1], true)
		case nd.Tag == wlnet.TagOr && !want:
			seed(nd.Args[0], false)
			seed(nd.Args[1], false)
		case nd.Tag == wlnet.TagEq && want:
			fixEqInput(net, env, nd)
		}
	}
	return env, nil
}

func absID(ref int) int {
	if ref < 0 {
		return -ref
	}
	return ref
}

// fixEqInput implements spec's "EQ with mark 1 between exactly one
// input-tagged operand p and one non-input operand q" rule.
func fixEqInput(net *wlnet.Net, env *eval.Env, nd *wlnet.Node) {
	a, b := nd.Args[0], nd.Args[1]
	aIn := net.Node(absID(a)).Tag == wlnet.TagInput
	bIn := net.Node(absID(b)).Tag == wlnet.TagInput
	if aIn == bIn {
		return // need exactly one input operand
	}
	pRef, qRef := a, b
	if bIn {
		pRef, qRef = b, a
	}
	p := net.Node(absID(pRef))
	if p.FixedInputSlot != 0 {
		return // already fixed by an earlier constraint
	}
	qv, ok := env.Values[absID(qRef)].(eval.Bv)
	if !ok {
		return // q isn't a bit-vector value; nothing to fix against
	}
	val := bv.Copy(qv.V)
	if qRef < 0 {
		val = bv.Not(val)
	}
	if pRef < 0 {
		val = bv.Not(val)
	}
	slot := net.AddFixedInput(val)
	p.FixedInputSlot = slot
}
