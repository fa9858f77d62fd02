// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cnf is R4: Tseitin encoding of an aig.C into conjunctive
// normal form. Encode walks the reference set of the bad and constraint
// literals it is given and emits clauses only for the AND
// gates that set actually depends on, in one of two modes: the default
// simplified mode emits only the clause directions a referenced literal
// actually needs, and pg (pseudo-polarity) mode emits the full,
// unsimplified three-clause definition for every AND gate regardless of
// how it is referenced.
//
// Encode writes to a Sink, an Adder-shaped interface in the tradition of
// this toolkit's inter.Adder: DimacsWriter implements it for file
// output with a DIMACS header and cnf-var mapping comments, and MemSink
// implements it for in-process tests that want the clause set without
// touching disk.
package cnf
