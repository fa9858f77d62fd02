// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package eval

import (
	"fmt"
	"math/rand"

	"github.com/go-air/bmc/bv"
	"github.com/go-air/bmc/wlnet"
)

// AssertionViolation reports that a node's operand did not have the sort
// its operator expects. It corresponds to spec's SimulationAssertionViolation:
// an internal-bug-grade error rather than a malformed-input error, since
// a netlist that reached simulation is assumed to already satisfy sort
// consistency.
type AssertionViolation struct {
	Node int
	Msg  string
}

func (e *AssertionViolation) Error() string {
	return fmt.Sprintf("eval: node %d: %s", e.Node, e.Msg)
}

// Env holds one round's worth of node values for a netlist. Round seeds
// every input and state node itself and fills in every other reachable
// node.
type Env struct {
	Net    *wlnet.Net
	Values map[int]Value
}

// NewEnv returns an Env with an empty value table sized for net.
func NewEnv(net *wlnet.Net) *Env {
	return &Env{Net: net, Values: make(map[int]Value, net.Len())}
}

// Reset clears every value, keeping the underlying map allocation.
func (e *Env) Reset() {
	for k := range e.Values {
		delete(e.Values, k)
	}
}

// Round evaluates every reachable node in a single ascending-id pass:
// inputs and states are seeded as it reaches them (from a fixed-input
// slot or an init expression when one applies, otherwise drawn from rng),
// and every other node is computed from operands already seeded or
// computed earlier in the same pass. A state's init expression may sit
// at larger ids than the state: seeding the state then computes that
// expression's operator and constant nodes on demand, but an input or
// state the expression references must still precede the state.
// Bad and constraint nodes get a value like any unary operator (their
// own argument's value), so callers can read e.Values[badID] directly.
func (e *Env) Round(rng *rand.Rand) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if av, ok := r.(*AssertionViolation); ok {
				err = av
				return
			}
			panic(r)
		}
	}()
	for id := 1; id < e.Net.Len(); id++ {
		nd := e.Net.Node(id)
		if nd == nil || nd.Deleted() {
			continue
		}
		switch nd.Tag {
		case wlnet.TagSort, wlnet.TagInit, wlnet.TagNext:
			continue
		case wlnet.TagInput:
			e.Values[id] = e.seedInput(nd, rng)
			continue
		case wlnet.TagState:
			e.Values[id] = e.seedState(nd, rng)
			continue
		}
		e.Values[id] = e.evalNode(nd)
	}
	return nil
}

func (e *Env) seedInput(nd *wlnet.Node, rng *rand.Rand) Value {
	if nd.FixedInputSlot > 0 {
		slot := nd.FixedInputSlot - 1
		if slot >= len(e.Net.FixedInputs) {
			fail(nd.ID, "fixed input slot %d out of range", nd.FixedInputSlot)
		}
		return Bv{V: bv.Copy(e.Net.FixedInputs[slot])}
	}
	return e.randomValue(nd.ID, nd.SortID, rng)
}

func (e *Env) seedState(nd *wlnet.Node, rng *rand.Rand) Value {
	if nd.InitNode != 0 {
		init := e.Net.Node(nd.InitNode)
		return e.demand(nd.ID, init.Args[1])
	}
	return e.randomValue(nd.ID, nd.SortID, rng)
}

// demand returns the value of reference r for node id, first computing
// r's node (and, in turn, its operands) if the pass has not reached it
// yet. Input and state nodes are never seeded here, so a reference to
// one the pass has not reached still fails.
func (e *Env) demand(id, r int) Value {
	nd := e.Net.Node(refID(r))
	if _, ok := e.Values[refID(r)]; !ok && nd != nil && nd.Tag != wlnet.TagInput && nd.Tag != wlnet.TagState {
		for _, a := range nd.RefArgs() {
			e.demand(nd.ID, a)
		}
		e.Values[nd.ID] = e.evalNode(nd)
	}
	return e.ref(id, r)
}

func (e *Env) randomValue(id, sortID int, rng *rand.Rand) Value {
	sort := e.Net.Node(sortID)
	if sort == nil || sort.Tag != wlnet.TagSort {
		fail(id, "invalid sort id %d", sortID)
	}
	if sort.SortIsArray {
		idxW := e.width(id, sort.IndexSort)
		elemW := e.width(id, sort.ElemSort)
		return Arr{V: bv.RandomArray(idxW, elemW, rng)}
	}
	return Bv{V: bv.Random(sort.Width, rng)}
}

func fail(id int, format string, args ...interface{}) {
	panic(&AssertionViolation{Node: id, Msg: fmt.Sprintf(format, args...)})
}

func refID(r int) int {
	if r < 0 {
		return -r
	}
	return r
}

func (e *Env) ref(id, r int) Value {
	v, ok := e.Values[refID(r)]
	if !ok {
		fail(id, "operand %d has no value", refID(r))
	}
	if r >= 0 {
		return v
	}
	bvv, ok := v.(Bv)
	if !ok {
		fail(id, "negated reference to non-bitvec operand %d", refID(r))
	}
	return Bv{V: bv.Not(bvv.V)}
}

func (e *Env) refBv(id, r int) bv.BitVec {
	v := e.ref(id, r)
	bvv, ok := v.(Bv)
	if !ok {
		fail(id, "expected bit-vector operand %d, got array", refID(r))
	}
	return bvv.V
}

func (e *Env) refArr(id, r int) bv.Array {
	if r < 0 {
		fail(id, "array operand %d cannot be negated", refID(r))
	}
	v := e.ref(id, r)
	av, ok := v.(Arr)
	if !ok {
		fail(id, "expected array operand %d, got bit-vector", refID(r))
	}
	return av.V
}

// Value returns the value computed for node id in the current round, and
// whether one exists. Callers outside this package (simulation and
// constraint resolution) use this instead of reaching into Values
// directly so a future change to how values are keyed doesn't leak.
func (e *Env) Value(id int) (Value, bool) {
	v, ok := e.Values[id]
	return v, ok
}

// SignedBv resolves a signed operand reference r the same way Round
// itself does: r's absolute value looks up a node's value, and a
// negative r negates a bit-vector result. It reports ok=false if the
// referenced node has no value yet or evaluated to an array.
func (e *Env) SignedBv(r int) (bv.BitVec, bool) {
	v, ok := e.Values[refID(r)]
	if !ok {
		return bv.BitVec{}, false
	}
	bvv, ok := v.(Bv)
	if !ok {
		return bv.BitVec{}, false
	}
	if r < 0 {
		return bv.Not(bvv.V), true
	}
	return bvv.V, true
}

func (e *Env) width(id, sortID int) uint32 {
	w := e.Net.Width(sortID)
	if w == 0 {
		fail(id, "sort %d is not a bitvec sort", sortID)
	}
	return w
}

func (e *Env) evalNode(nd *wlnet.Node) Value {
	switch {
	case nd.Tag.IsConst():
		return e.evalConst(nd)
	case nd.Tag == wlnet.TagSlice:
		hi, lo := uint32(nd.Args[1]), uint32(nd.Args[2])
		return Bv{V: bv.Slice(e.refBv(nd.ID, nd.Args[0]), hi, lo)}
	case nd.Tag == wlnet.TagUext:
		return Bv{V: bv.Uext(e.refBv(nd.ID, nd.Args[0]), uint32(nd.Pad))}
	case nd.Tag == wlnet.TagSext:
		return Bv{V: bv.Sext(e.refBv(nd.ID, nd.Args[0]), uint32(nd.Pad))}
	case nd.Tag == wlnet.TagIte:
		return e.evalIte(nd)
	case nd.Tag == wlnet.TagRead:
		a := e.refArr(nd.ID, nd.Args[0])
		i := e.refBv(nd.ID, nd.Args[1])
		return Bv{V: bv.ArrayRead(a, i)}
	case nd.Tag == wlnet.TagWrite:
		a := e.refArr(nd.ID, nd.Args[0])
		i := e.refBv(nd.ID, nd.Args[1])
		v := e.refBv(nd.ID, nd.Args[2])
		return Arr{V: bv.ArrayWrite(a, i, v)}
	case nd.Tag == wlnet.TagBad, nd.Tag == wlnet.TagConstraint:
		return e.ref(nd.ID, nd.Args[0])
	case nd.Tag.IsUnary():
		fn, ok := unaryFn[nd.Tag]
		if !ok {
			fail(nd.ID, "unhandled unary op %s", nd.Tag)
		}
		return Bv{V: fn(e.refBv(nd.ID, nd.Args[0]))}
	case nd.Tag.IsBinary():
		return e.evalBinary(nd)
	default:
		fail(nd.ID, "unhandled op %s", nd.Tag)
	}
	panic("unreachable")
}

func (e *Env) evalConst(nd *wlnet.Node) Value {
	w := e.width(nd.ID, nd.SortID)
	var v bv.BitVec
	var err error
	switch nd.Tag {
	case wlnet.TagConst:
		v, err = bv.FromBinary(w, nd.Literal)
	case wlnet.TagConstd:
		v, err = bv.FromDecimal(w, nd.Literal)
	case wlnet.TagConsth:
		v, err = bv.FromHex(w, nd.Literal)
	case wlnet.TagZero:
		v = bv.Zero(w)
	case wlnet.TagOne:
		v = bv.FromUint64(w, 1)
	case wlnet.TagOnes:
		v = bv.Ones(w)
	}
	if err != nil {
		fail(nd.ID, "malformed constant literal: %s", err)
	}
	return Bv{V: v}
}

func (e *Env) evalIte(nd *wlnet.Node) Value {
	cond := e.refBv(nd.ID, nd.Args[0])
	tv := e.ref(nd.ID, nd.Args[1])
	switch t := tv.(type) {
	case Bv:
		ev, ok := e.ref(nd.ID, nd.Args[2]).(Bv)
		if !ok {
			fail(nd.ID, "ite branches disagree: bit-vector vs array")
		}
		return Bv{V: bv.Ite(cond, t.V, ev.V)}
	case Arr:
		ev, ok := e.ref(nd.ID, nd.Args[2]).(Arr)
		if !ok {
			fail(nd.ID, "ite branches disagree: array vs bit-vector")
		}
		return Arr{V: bv.ArrayIte(cond, t.V, ev.V)}
	}
	fail(nd.ID, "ite: unsupported branch value")
	panic("unreachable")
}

func (e *Env) evalBinary(nd *wlnet.Node) Value {
	if nd.Tag == wlnet.TagEq || nd.Tag == wlnet.TagNeq {
		a := e.ref(nd.ID, nd.Args[0])
		if av, ok := a.(Arr); ok {
			bvv := e.refArr(nd.ID, nd.Args[1])
			eq := bv.ArrayEq(av.V, bvv)
			if nd.Tag == wlnet.TagNeq {
				eq = !eq
			}
			w := e.width(nd.ID, nd.SortID)
			return Bv{V: bv.FromUint64(w, boolBit(eq))}
		}
	}
	fn, ok := binaryFn[nd.Tag]
	if !ok {
		fail(nd.ID, "unhandled binary op %s", nd.Tag)
	}
	x := e.refBv(nd.ID, nd.Args[0])
	y := e.refBv(nd.ID, nd.Args[1])
	return Bv{V: fn(x, y)}
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

var unaryFn = map[wlnet.Tag]func(bv.BitVec) bv.BitVec{
	wlnet.TagNot:    bv.Not,
	wlnet.TagNeg:    bv.Neg,
	wlnet.TagInc:    bv.Inc,
	wlnet.TagDec:    bv.Dec,
	wlnet.TagRedand: bv.RedAnd,
	wlnet.TagRedor:  bv.RedOr,
	wlnet.TagRedxor: bv.RedXor,
}

var binaryFn = map[wlnet.Tag]func(bv.BitVec, bv.BitVec) bv.BitVec{
	wlnet.TagAnd:    bv.And,
	wlnet.TagOr:     bv.Or,
	wlnet.TagXor:    bv.Xor,
	wlnet.TagNand:   bv.Nand,
	wlnet.TagNor:    bv.Nor,
	wlnet.TagXnor:   bv.Xnor,
	wlnet.TagAdd:    bv.Add,
	wlnet.TagSub:    bv.Sub,
	wlnet.TagMul:    bv.Mul,
	wlnet.TagUdiv:   bv.Udiv,
	wlnet.TagUrem:   bv.Urem,
	wlnet.TagSdiv:   bv.Sdiv,
	wlnet.TagSrem:   bv.Srem,
	wlnet.TagEq:     bv.Eq,
	wlnet.TagNeq:    bv.Neq,
	wlnet.TagUlt:    bv.Ult,
	wlnet.TagUlte:   bv.Ulte,
	wlnet.TagUgt:    bv.Ugt,
	wlnet.TagUgte:   bv.Ugte,
	wlnet.TagSlt:    bv.Slt,
	wlnet.TagSlte:   bv.Slte,
	wlnet.TagSgt:    bv.Sgt,
	wlnet.TagSgte:   bv.Sgte,
	wlnet.TagSll:    bv.Sll,
	wlnet.TagSrl:    bv.Srl,
	wlnet.TagSra:    bv.Sra,
	wlnet.TagConcat: bv.Concat,
}
