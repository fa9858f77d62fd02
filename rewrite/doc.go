// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package rewrite implements the model transformations that sit between
// loading a netlist and handing it to simulation or CNF encoding:
// cone-of-influence extraction (COI, R1), union-find based signal
// merging (Merge, R2), and sequential k-unrolling (Unroll, R3). Every
// rewrite mutates its net's deletion flags and operand references in
// place rather than reallocating nodes, so ids a caller already holds
// stay valid across a rewrite.
package rewrite
