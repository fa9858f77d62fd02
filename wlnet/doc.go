// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package wlnet is a word-level netlist intermediate representation: bit
// vectors and arrays over dense integer node ids, plus a line-oriented text
// format reader and writer. A Net holds inputs, states with their init and
// next functions, bad and constraint properties, and the operator nodes
// wiring them together, in the style of logic.C's AND-gate arena but with
// one tag per word-level operator instead of a single AND tag.
package wlnet
