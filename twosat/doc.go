// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package twosat is a small SCC-based 2-SAT feasibility solver over an
// implication graph of z.Lits. It is used by constraint preprocessing to
// decide, for each input literal touched by a constraint, which polarity
// every satisfying assignment must give it, and to detect the case where
// no assignment can satisfy the constraints at all.
package twosat
