// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bv

import "math/rand"

// Array is a word-level array value: a mapping from index bit-vectors of
// width IdxW to element bit-vectors of width ElemW. It may be backed by
// an explicit store (built up by Write), a constant scalar every unread
// index resolves to, or a lazily-materialized random seed used by the
// simulation engine when a state array has no init expression.
type Array struct {
	IdxW, ElemW uint32
	store       map[string]BitVec
	constInit   *BitVec
	seed        *rand.Rand
	lazy        map[string]BitVec
}

// ConstArray builds an array of the given sorts where every index reads
// as elem.
func ConstArray(idxW, elemW uint32, elem BitVec) Array {
	return Array{IdxW: idxW, ElemW: elemW, constInit: &elem}
}

// RandomArray builds an array whose unread indices lazily resolve to an
// independent random element the first time they're read, using seed as
// the source. Two RandomArrays with distinct *rand.Rand seeds are
// independent even if built with the same IdxW/ElemW.
func RandomArray(idxW, elemW uint32, seed *rand.Rand) Array {
	return Array{IdxW: idxW, ElemW: elemW, seed: seed, lazy: make(map[string]BitVec)}
}

// EmptyArray builds an array with an explicit, initially-empty store and
// no default; ArrayRead on an unwritten index panics, since such an
// index is only reachable if the netlist's sort discipline was violated
// upstream (an array-sorted state with neither an init store, a
// constant, nor a random seed).
func EmptyArray(idxW, elemW uint32) Array {
	return Array{IdxW: idxW, ElemW: elemW, store: make(map[string]BitVec)}
}

func idxKey(idx BitVec) string {
	return idx.v.Text(16)
}

// ArrayRead returns the element stored at idx.
func ArrayRead(a Array, idx BitVec) BitVec {
	if idx.W != a.IdxW {
		panic(WidthMismatch{a.IdxW, idx.W})
	}
	k := idxKey(idx)
	if a.store != nil {
		if v, ok := a.store[k]; ok {
			return Copy(v)
		}
	}
	if a.constInit != nil {
		return Copy(*a.constInit)
	}
	if a.seed != nil {
		if v, ok := a.lazy[k]; ok {
			return Copy(v)
		}
		v := Random(a.ElemW, a.seed)
		a.lazy[k] = v
		return Copy(v)
	}
	panic("bv: read of array with no store, constant, or seed")
}

// ArrayWrite returns a new array equal to a except that idx now reads as
// val. The original array is not mutated.
func ArrayWrite(a Array, idx, val BitVec) Array {
	if idx.W != a.IdxW {
		panic(WidthMismatch{a.IdxW, idx.W})
	}
	if val.W != a.ElemW {
		panic(WidthMismatch{a.ElemW, val.W})
	}
	next := Array{IdxW: a.IdxW, ElemW: a.ElemW, constInit: a.constInit, seed: a.seed}
	next.store = make(map[string]BitVec, len(a.store)+1)
	for k, v := range a.store {
		next.store[k] = v
	}
	if a.lazy != nil {
		next.lazy = make(map[string]BitVec, len(a.lazy))
		for k, v := range a.lazy {
			next.lazy[k] = v
		}
	}
	next.store[idxKey(idx)] = Copy(val)
	return next
}

// ArrayEq is extensional equality over every index materialized so far
// in either array's explicit store or lazy cache, plus their defaults.
// This is a sound approximation for simulation purposes: two arrays
// built from the same sequence of random reads/writes along a
// successful round compare equal iff they were observably equal on
// every index touched during that round.
func ArrayEq(a, b Array) bool {
	if a.IdxW != b.IdxW || a.ElemW != b.ElemW {
		return false
	}
	touched := make(map[string]bool)
	for k := range a.store {
		touched[k] = true
	}
	for k := range b.store {
		touched[k] = true
	}
	for k := range a.lazy {
		touched[k] = true
	}
	for k := range b.lazy {
		touched[k] = true
	}
	for k := range touched {
		va, oka := lookupOnly(a, k)
		vb, okb := lookupOnly(b, k)
		if !oka {
			va = defaultOf(a, vb)
		}
		if !okb {
			vb = defaultOf(b, va)
		}
		if !Equal(va, vb) {
			return false
		}
	}
	return true
}

// defaultOf returns a's default element (its constant fill, if any) or
// fallback when a has no default to fall back on.
func defaultOf(a Array, fallback BitVec) BitVec {
	if a.constInit != nil {
		return *a.constInit
	}
	return fallback
}

func lookupOnly(a Array, k string) (BitVec, bool) {
	if v, ok := a.store[k]; ok {
		return v, true
	}
	if v, ok := a.lazy[k]; ok {
		return v, true
	}
	return BitVec{}, false
}

// ArrayNeq is the negation of ArrayEq.
func ArrayNeq(a, b Array) bool {
	return !ArrayEq(a, b)
}

// ArrayIte selects t if cond is non-zero, else e.
func ArrayIte(cond BitVec, t, e Array) Array {
	if cond.W != 1 {
		panic("bv: ArrayIte condition must have width 1")
	}
	if cond.v.Sign() != 0 {
		return t
	}
	return e
}
