// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package eval

import "github.com/go-air/bmc/bv"

// Value is a word-level simulation value: either a bit-vector or an
// array. Evaluators know which variant a node's sort implies before they
// touch its value, so callers type-assert to the variant they expect
// rather than branching on a stored kind field.
type Value interface {
	value()
}

// Bv wraps a bit-vector value.
type Bv struct{ V bv.BitVec }

// Arr wraps an array value.
type Arr struct{ V bv.Array }

func (Bv) value()  {}
func (Arr) value() {}
