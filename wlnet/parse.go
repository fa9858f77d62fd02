// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wlnet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// hasSortField reports whether a line for tag carries a sort-id token
// right after the operator keyword. sort itself defines a sort rather than
// referencing one, and bad/constraint are implicitly single-bit.
func hasSortField(t Tag) bool {
	switch t {
	case TagSort, TagBad, TagConstraint:
		return false
	}
	return true
}

// Read parses a word-level netlist in the line-oriented text format
// that Write emits. Node ids need not be contiguous with the
// line count (deleted lines are simply absent from a freshly-read net),
// but a later id may not reference an id greater than itself: forward
// references are rejected.
func Read(r io.Reader) (*Net, error) {
	n := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if err := n.parseLine(line, lineno); err != nil {
			return nil, fmt.Errorf("wlnet: line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Net) parseLine(line string, lineno int) error {
	fs := strings.Fields(line)
	if len(fs) < 2 {
		return fmt.Errorf("expected at least an id and an op, got %q", line)
	}
	id, err := strconv.Atoi(fs[0])
	if err != nil {
		return fmt.Errorf("bad id %q: %w", fs[0], err)
	}
	if id < len(n.Nodes) {
		return fmt.Errorf("id %d not increasing (already have %d nodes)", id, len(n.Nodes)-1)
	}
	// ids of deleted nodes are never written back out, so a gap between
	// the previous id and this one just means intervening nodes were
	// retired. Pad with nil placeholders so ids keep lining up with
	// their original slot.
	for len(n.Nodes) < id {
		n.Nodes = append(n.Nodes, nil)
	}
	op := fs[1]
	rest := fs[2:]

	if op == "sort" {
		return n.parseSort(rest, lineno)
	}
	tag, ok := TagFromString(op)
	if !ok {
		return fmt.Errorf("unknown op %q", op)
	}
	sh, known := shapes[tag]
	if !known {
		return fmt.Errorf("op %q not valid on a node line", op)
	}

	nd := n.alloc(tag)
	nd.Lineno = lineno

	if hasSortField(tag) {
		if len(rest) < 1 {
			return fmt.Errorf("%s: missing sort id", op)
		}
		sortID, err := strconv.Atoi(rest[0])
		if err != nil || sortID <= 0 || sortID >= len(n.Nodes) {
			return fmt.Errorf("%s: bad sort id %q", op, rest[0])
		}
		nd.SortID = sortID
		rest = rest[1:]
	}

	switch {
	case sh.hasPayload:
		if len(rest) < 1 {
			return fmt.Errorf("%s: missing literal", op)
		}
		nd.Literal = rest[0]
		rest = rest[1:]
	case sh.hasSlice:
		if len(rest) < 3 {
			return fmt.Errorf("%s: expected arg hi lo", op)
		}
		arg, e1 := strconv.Atoi(rest[0])
		hi, e2 := strconv.Atoi(rest[1])
		lo, e3 := strconv.Atoi(rest[2])
		if e1 != nil || e2 != nil || e3 != nil {
			return fmt.Errorf("%s: bad slice args %v", op, rest[:3])
		}
		if err := n.checkRef(arg); err != nil {
			return err
		}
		nd.Args = []int{arg, hi, lo}
		rest = rest[3:]
	case sh.hasPad:
		if len(rest) < 2 {
			return fmt.Errorf("%s: expected arg pad", op)
		}
		arg, e1 := strconv.Atoi(rest[0])
		pad, e2 := strconv.Atoi(rest[1])
		if e1 != nil || e2 != nil {
			return fmt.Errorf("%s: bad extend args %v", op, rest[:2])
		}
		if err := n.checkRef(arg); err != nil {
			return err
		}
		nd.Args = []int{arg}
		nd.Pad = pad
		rest = rest[2:]
	default:
		if len(rest) < sh.nargs {
			return fmt.Errorf("%s: expected %d args, got %d", op, sh.nargs, len(rest))
		}
		args := make([]int, sh.nargs)
		for i := 0; i < sh.nargs; i++ {
			a, err := strconv.Atoi(rest[i])
			if err != nil {
				return fmt.Errorf("%s: bad arg %q", op, rest[i])
			}
			if err := n.checkRef(a); err != nil {
				return err
			}
			args[i] = a
		}
		nd.Args = args
		rest = rest[sh.nargs:]
	}

	if len(rest) > 0 {
		nd.Symbol = rest[0]
	}

	switch tag {
	case TagInit:
		s := n.Node(nd.Args[0])
		if s == nil || s.Tag != TagState {
			return fmt.Errorf("init: %d is not a state", nd.Args[0])
		}
		s.InitNode = nd.ID
	case TagNext:
		s := n.Node(nd.Args[0])
		if s == nil || s.Tag != TagState {
			return fmt.Errorf("next: %d is not a state", nd.Args[0])
		}
		s.NextNode = nd.ID
	}
	return nil
}

func (n *Net) checkRef(ref int) error {
	id := refAbs(ref)
	if id <= 0 || id >= len(n.Nodes) || n.Nodes[id] == nil {
		return fmt.Errorf("reference to undefined id %d", id)
	}
	return nil
}

func (n *Net) parseSort(rest []string, lineno int) error {
	if len(rest) < 2 {
		return fmt.Errorf("sort: expected a kind and payload")
	}
	nd := n.alloc(TagSort)
	nd.Lineno = lineno
	switch rest[0] {
	case "bitvec":
		w, err := strconv.Atoi(rest[1])
		if err != nil || w <= 0 {
			return fmt.Errorf("sort bitvec: bad width %q", rest[1])
		}
		nd.Width = uint32(w)
	case "array":
		if len(rest) < 3 {
			return fmt.Errorf("sort array: expected index and element sort ids")
		}
		idx, e1 := strconv.Atoi(rest[1])
		elem, e2 := strconv.Atoi(rest[2])
		if e1 != nil || e2 != nil {
			return fmt.Errorf("sort array: bad sort ids %v", rest[1:3])
		}
		if err := n.checkRef(idx); err != nil {
			return fmt.Errorf("sort array: index sort: %w", err)
		}
		if err := n.checkRef(elem); err != nil {
			return fmt.Errorf("sort array: element sort: %w", err)
		}
		nd.SortIsArray = true
		nd.IndexSort = idx
		nd.ElemSort = elem
	default:
		return fmt.Errorf("sort: unknown kind %q", rest[0])
	}
	return nil
}
