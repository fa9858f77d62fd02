// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package precheck runs constraint preprocessing ahead of simulation: on
// an AIG, it propagates known-must-be-1 constraint tags backward through
// AND gates to build a 2-SAT instance over input literals and solve it
// for a feasible forced polarity; on a word-level netlist, it runs one
// warm-up simulation round and propagates must-be-1/must-be-0 marks
// backward through AND/OR/EQ nodes to fix whole input vectors to the
// values that make an equality constraint hold.
package precheck
