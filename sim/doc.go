// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sim runs randomized simulation over a netlist under its
// constraints and turns the resulting per-node value sequences into
// candidate equivalence pairs. There are two engines: RunWordLevel
// drives the bit-vector/array IR through eval.Env round by round and
// keeps a 128-bit Fingerprint per node, and RunAIG drives an aig.C
// through a three-valued Kleene evaluation and keeps a single 64-bit
// hash per variable. Candidates and CandidatesAIG group the respective
// fingerprints into equivalence-class pairs.
package sim
