// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bv is the bit-vector and array kernel that the simulation
// engine and word-level constraint preprocessor evaluate word-level
// netlist operators against.
//
// Every function here is total under the sort discipline the caller is
// responsible for enforcing (matching widths on binary operators,
// in-bounds slice indices, and so on). bv does not report a violation as
// an error: a binary operator given operands of differing widths panics
// with a WidthMismatch value, and an out-of-range slice or a non-1-bit
// Ite condition panics with a message, for the caller to recover at its
// evaluation boundary.
package bv
