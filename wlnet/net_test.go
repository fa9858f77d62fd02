// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wlnet

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseWriteRoundTrip(t *testing.T) {
	src := `1 sort bitvec 8
2 input 1 x
3 input 1 y
4 add 1 2 3
5 const 1 00000001
6 add 1 4 5
7 bad 6
`
	n, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	if n.Node(4).Tag != TagAdd {
		t.Fatalf("expected node 4 to be add, got %s", n.Node(4).Tag)
	}
	if n.Node(2).Symbol != "x" {
		t.Fatalf("expected symbol x on node 2, got %q", n.Node(2).Symbol)
	}

	var buf bytes.Buffer
	if err := n.Write(&buf); err != nil {
		t.Fatalf("Write: %s", err)
	}
	n2, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-Read: %s\n%s", err, buf.String())
	}
	if n2.Len() != n.Len() {
		t.Fatalf("round trip changed node count: %d vs %d", n2.Len(), n.Len())
	}
	if n2.Node(6).Args[0] != 4 || n2.Node(6).Args[1] != 5 {
		t.Errorf("round trip changed node 6 args: %v", n2.Node(6).Args)
	}
}

func TestDeletedNodesSuppressed(t *testing.T) {
	n := New()
	s1 := n.BitvecSort(4)
	a := n.Input(s1, "a")
	b := n.Const(TagConst, s1, "0001")
	sum := n.Op(TagAdd, s1, a, b)
	n.Bad(sum, "")

	n.Delete(b)
	var buf bytes.Buffer
	if err := n.Write(&buf); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if strings.Contains(buf.String(), "\n3 const") || strings.HasPrefix(buf.String(), "3 const") {
		t.Errorf("deleted node written out:\n%s", buf.String())
	}
}

func TestStateInitNextBackrefs(t *testing.T) {
	n := New()
	s1 := n.BitvecSort(1)
	st := n.State(s1, "flag")
	zero := n.Const(TagZero, s1, "")
	n.Init(st, zero)
	one := n.Const(TagOne, s1, "")
	n.Next(st, one)

	if n.Node(st).InitNode == 0 || n.Node(st).NextNode == 0 {
		t.Fatalf("state missing init/next backrefs: %+v", n.Node(st))
	}

	var buf bytes.Buffer
	if err := n.Write(&buf); err != nil {
		t.Fatalf("Write: %s", err)
	}
	n2, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-Read: %s\n%s", err, buf.String())
	}
	if n2.Node(st).InitNode != n.Node(st).InitNode {
		t.Errorf("init backref lost on round trip")
	}
}

func TestSliceAndExtend(t *testing.T) {
	n := New()
	s8 := n.BitvecSort(8)
	s4 := n.BitvecSort(4)
	x := n.Input(s8, "x")
	lo := n.Slice(s4, x, 3, 0)
	back := n.Extend(TagUext, s8, lo, 4)
	n.Bad(back, "")

	var buf bytes.Buffer
	if err := n.Write(&buf); err != nil {
		t.Fatalf("Write: %s", err)
	}
	n2, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-Read: %s\n%s", err, buf.String())
	}
	sl := n2.Node(lo)
	if sl.Args[1] != 3 || sl.Args[2] != 0 {
		t.Errorf("slice hi/lo lost: %v", sl.Args)
	}
	ext := n2.Node(back)
	if ext.Pad != 4 {
		t.Errorf("extend padding lost: %d", ext.Pad)
	}
}

func TestForwardReferenceRejected(t *testing.T) {
	src := "1 sort bitvec 1\n2 bad 3\n3 input 1\n"
	if _, err := Read(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an error for a forward reference")
	}
}
