// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-air/bmc/z"
)

func makeExample() *T {
	g := Make(10)
	i0 := g.NewIn()
	i1 := g.NewIn()
	a := g.And(i0, i1)
	g.SetOutput(a)
	g.SetOutput(a.Not())
	return g
}

func TestWriteAscii(t *testing.T) {
	g := makeExample()
	var buf bytes.Buffer
	if err := g.WriteAscii(&buf); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, err := ReadAscii(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("round trip failed: %s", err)
	}
	if len(got.Inputs) != 2 || len(got.Outputs) != 2 {
		t.Errorf("round trip lost interface: %d inputs %d outputs", len(got.Inputs), len(got.Outputs))
	}
}

func TestWriteBinaryRoundTrip(t *testing.T) {
	g := makeExample()
	var buf bytes.Buffer
	if err := g.WriteBinary(&buf); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, err := ReadBinary(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("round trip failed: %s", err)
	}
	if len(got.Inputs) != 2 || len(got.Outputs) != 2 {
		t.Errorf("round trip lost interface: %d inputs %d outputs", len(got.Inputs), len(got.Outputs))
	}
	if got.Outputs[0] != got.Outputs[1].Not() {
		t.Errorf("round trip lost the outputs' complementary relation")
	}
}

func TestNameInputRoundTrip(t *testing.T) {
	g := Make(10)
	g.NewIn()
	if err := g.NameInput(0, "req"); err != nil {
		t.Fatalf("couldn't name input 0: %s", err)
	}
	nm, ok := g.InputName(0)
	if !ok || nm != "req" {
		t.Errorf("name didn't round trip: %q ok=%v", nm, ok)
	}

	var buf bytes.Buffer
	if err := g.WriteBinary(&buf); err != nil {
		t.Fatalf("write: %s", err)
	}
	got, err := ReadBinary(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if nm, _ := got.InputName(0); nm != "req" {
		t.Errorf("name lost across write/read: %q", nm)
	}
}

func TestReadRejectsLatches(t *testing.T) {
	src := "aag 3 1 1 1 0\n2\n4 4\n4\n"
	_, err := ReadAscii(bytes.NewReader([]byte(src)))
	if !errors.Is(err, Unsupported) {
		t.Fatalf("expected an Unsupported error, got %v", err)
	}
}

func TestReadAcceptsJustice(t *testing.T) {
	src := "aag 1 1 0 0 0 0 0 1 0\n2\n1\n2\n"
	got, err := ReadAscii(bytes.NewReader([]byte(src)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got.Justice) != 1 || len(got.Justice[0]) != 1 {
		t.Fatalf("justice property not parsed: %v", got.Justice)
	}
}

func TestReadAcceptsFairness(t *testing.T) {
	src := "aag 1 1 0 0 0 0 0 0 1\n2\n2\n"
	got, err := ReadAscii(bytes.NewReader([]byte(src)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got.Fairness) != 1 {
		t.Fatalf("fairness constraint not parsed: %v", got.Fairness)
	}
}

func TestJusticeFairnessRoundTrip(t *testing.T) {
	g := Make(10)
	i0 := g.NewIn()
	i1 := g.NewIn()
	g.Justice = [][]z.Lit{{i0, i1.Not()}}
	g.Fairness = []z.Lit{i1}
	if err := g.NameJustice(0, "alive"); err != nil {
		t.Fatalf("NameJustice: %s", err)
	}

	var buf bytes.Buffer
	if err := g.WriteBinary(&buf); err != nil {
		t.Fatalf("write: %s", err)
	}
	got, err := ReadBinary(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %s", err)
	}
	if len(got.Justice) != 1 || len(got.Justice[0]) != 2 {
		t.Fatalf("justice didn't round trip: %v", got.Justice)
	}
	if len(got.Fairness) != 1 {
		t.Fatalf("fairness didn't round trip: %v", got.Fairness)
	}
	if nm, _ := got.JusticeName(0); nm != "alive" {
		t.Errorf("justice name lost across write/read: %q", nm)
	}
}

func TestReadBinaryMismatch(t *testing.T) {
	src := "aag 0 0 0 0 0\n"
	_, err := ReadBinary(bytes.NewReader([]byte(src)))
	if !errors.Is(err, ErrBinaryMismatch) {
		t.Fatalf("expected ErrBinaryMismatch, got %v", err)
	}
}
