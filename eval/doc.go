// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package eval is the word-level forward evaluator: one ascending-id pass
// over a netlist that seeds every input and state as it reaches it (from
// a random draw, an init expression, or a constraint-preprocessing fixed
// value) and computes every other node from operands already available
// earlier in the same pass. It has no notion of a multi-round simulation
// or fingerprints; sim calls Round once per round, and precheck calls it
// once for the constraint-marking warm-up round described by the
// word-level preprocessing algorithm.
package eval
