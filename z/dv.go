// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

// Vars maps an "outer" variable space (arbitrary variables coming from a
// caller, such as a CNF encoder's referenced-literal set) to a densely
// packed "inner" variable space, with the ability to free and recycle
// inner variables no longer needed. The mapping from a given outer
// variable to its inner variable is stable for the life of the Vars, and
// the mapping is polarity-preserving: ToInner(m) and ToInner(m.Not())
// always share a variable and differ only in sign.
type Vars struct {
	outer2inner map[Var]Var
	inner2outer []Lit // indexed by inner Var; LitNull if allocated anonymously via Inner
	free        []Var
	next        Var
}

// NewVars creates an empty variable mapping.
func NewVars() *Vars {
	return &Vars{
		outer2inner: make(map[Var]Var),
		inner2outer: []Lit{LitNull},
		next:        1,
	}
}

func (vs *Vars) alloc() Var {
	if n := len(vs.free); n > 0 {
		v := vs.free[n-1]
		vs.free = vs.free[:n-1]
		return v
	}
	v := vs.next
	vs.next++
	vs.inner2outer = append(vs.inner2outer, LitNull)
	return v
}

// ToInner returns the (memoized) inner literal for outer literal m,
// allocating a fresh inner variable the first time m's variable is seen.
func (vs *Vars) ToInner(m Lit) Lit {
	ov := m.Var()
	iv, ok := vs.outer2inner[ov]
	if !ok {
		iv = vs.alloc()
		vs.outer2inner[ov] = iv
		vs.inner2outer[iv] = ov.Pos()
	}
	if m.IsPos() {
		return iv.Pos()
	}
	return iv.Neg()
}

// ToOuter is the inverse of ToInner: given an inner literal previously
// returned by ToInner, it returns the original outer literal. The result
// is undefined for literals returned by Inner (which have no outer
// counterpart).
func (vs *Vars) ToOuter(m Lit) Lit {
	iv := m.Var()
	ov := vs.inner2outer[iv].Var()
	if m.IsPos() {
		return ov.Pos()
	}
	return ov.Neg()
}

// Inner allocates a fresh inner variable with no corresponding outer
// variable, returning its positive literal.
func (vs *Vars) Inner() Lit {
	v := vs.alloc()
	vs.inner2outer[v] = LitNull
	return v.Pos()
}

// Free releases the inner variable of m, allowing it to be recycled by a
// later Inner or ToInner call. Freeing a variable obtained via ToInner
// also drops its outer mapping.
func (vs *Vars) Free(m Lit) {
	v := m.Var()
	if ov := vs.inner2outer[v]; ov != LitNull {
		delete(vs.outer2inner, ov.Var())
	}
	vs.inner2outer[v] = LitNull
	vs.free = append(vs.free, v)
}

func (vs *Vars) String() string {
	return "z.Vars"
}
