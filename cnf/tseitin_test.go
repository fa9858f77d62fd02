// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/go-air/bmc/aig"
	"github.com/go-air/bmc/z"
)

// TestEncodeTwoInputAndBad reproduces the "two-input AND bad" scenario:
// two inputs, a single AND gate, one bad literal on the gate's output.
// Even though the bad only ever references the gate positively, both
// defining directions are expected, since a bad/constraint root always
// gets full definitional treatment.
func TestEncodeTwoInputAndBad(t *testing.T) {
	c := aig.NewC()
	a := c.Lit()
	b := c.Lit()
	g := c.And(a, b)

	vs := z.NewVars()
	var sink MemSink
	Encode(c, nil, []z.Lit{g}, vs, &sink, Options{})

	want := [][]z.Lit{
		{vs.ToInner(g).Not(), vs.ToInner(a)},
		{vs.ToInner(g).Not(), vs.ToInner(b)},
		{vs.ToInner(a).Not(), vs.ToInner(b).Not(), vs.ToInner(g)},
		{vs.ToInner(g)},
	}
	if !reflect.DeepEqual(sink.Clauses, want) {
		t.Fatalf("clauses = %v, want %v", sink.Clauses, want)
	}
}

// TestEncodeDimacsOutput checks the same scenario's textual DIMACS form.
func TestEncodeDimacsOutput(t *testing.T) {
	c := aig.NewC()
	a := c.Lit()
	b := c.Lit()
	g := c.And(a, b)

	vs := z.NewVars()
	dw := NewDimacsWriter()
	Encode(c, nil, []z.Lit{g}, vs, dw, Options{OnMap: dw.MapComment})

	var buf bytes.Buffer
	if err := dw.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	// toInner is first called, in map order, on the gate itself (the
	// clause-emission loop resolves g before a and b), so the gate gets
	// cnf var 1 and the inputs get 2 and 3.
	want := "c 4 -> 1\nc 2 -> 2\nc 3 -> 3\np cnf 3 4\n-1 2 0\n-1 3 0\n-2 -3 1 0\n1 0\n"
	if got != want {
		t.Fatalf("dimacs output = %q, want %q", got, want)
	}
}

// TestEncodeConstraintUnitClause checks a constraint literal produces a
// unit clause and participates in reference propagation like a bad.
func TestEncodeConstraintUnitClause(t *testing.T) {
	c := aig.NewC()
	a := c.Lit()
	b := c.Lit()
	g := c.And(a, b)

	vs := z.NewVars()
	var sink MemSink
	Encode(c, []z.Lit{g}, nil, vs, &sink, Options{})

	if len(sink.Clauses) != 4 {
		t.Fatalf("expected 4 clauses (full gate definition + 1 constraint unit), got %d: %v", len(sink.Clauses), sink.Clauses)
	}
	last := sink.Clauses[len(sink.Clauses)-1]
	if len(last) != 1 || last[0] != vs.ToInner(g) {
		t.Fatalf("expected trailing unit clause asserting the constraint, got %v", last)
	}
}

// TestEncodePgModeEmitsAllClauses checks that Pg mode gives every AND
// gate its full three-clause definition regardless of how (or whether)
// its own polarity is referenced by a root.
func TestEncodePgModeEmitsAllClauses(t *testing.T) {
	c := aig.NewC()
	a := c.Lit()
	b := c.Lit()
	g := c.And(a, b)

	vs := z.NewVars()
	var sink MemSink
	Encode(c, nil, []z.Lit{g}, vs, &sink, Options{Pg: true})

	if len(sink.Clauses) != 4 {
		t.Fatalf("expected 4 clauses in pg mode, got %d: %v", len(sink.Clauses), sink.Clauses)
	}
}

// TestEncodeUnreferencedGateOmitted checks that a gate outside every
// root's fan-in gets no clauses at all.
func TestEncodeUnreferencedGateOmitted(t *testing.T) {
	c := aig.NewC()
	a := c.Lit()
	b := c.Lit()
	d := c.Lit()
	g := c.And(a, b)
	dead := c.And(a, d)
	_ = dead

	vs := z.NewVars()
	var sink MemSink
	Encode(c, nil, []z.Lit{g}, vs, &sink, Options{})

	if len(sink.Clauses) != 4 {
		t.Fatalf("expected 4 clauses (dead gate excluded), got %d: %v", len(sink.Clauses), sink.Clauses)
	}
}
