// Copyright 2018 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import "github.com/go-air/bmc/z"

// Dfs is a reusable post-order visitor over a C's AND-gate DAG, used by
// the AIGER writer to walk each root's transitive fan-in. Visiting m
// calls fn on m's fan-ins before m itself; visiting a literal already
// finished is a no-op. The walk is iterative, with an explicit stack
// standing in for the call stack, so it cannot overflow on a deeply
// chained AIG.
type Dfs struct {
	marks []byte // 0 unvisited, 1 on stack, 2 done
	c     *C
	fn    func(c *C, m z.Lit)
}

// NewDfs creates a Dfs over c that calls fn on each AND node it visits,
// in fan-in-before-fan-out order, passing the node's positive literal.
func NewDfs(c *C, fn func(c *C, m z.Lit)) *Dfs {
	return &Dfs{marks: make([]byte, c.Len()), c: c, fn: fn}
}

// Reset clears every visited mark so the Dfs can be reused for another
// pass over the same circuit.
func (d *Dfs) Reset() {
	for i := range d.marks {
		d.marks[i] = 0
	}
}

// Post visits every literal in ms, and their transitive fan-in, calling
// fn once per AND node the first time it is reached.
func (d *Dfs) Post(ms ...z.Lit) {
	for _, m := range ms {
		d.visit(m)
	}
}

// dfsFrame tracks one pending visit: expand pushes m's fan-ins (b, then
// a on top, so a is popped and finished first, matching a recursive
// d.visit(a); d.visit(b) call order), finish calls fn on m once both are
// done.
type dfsFrame struct {
	m        z.Lit
	expanded bool
}

func (d *Dfs) visit(root z.Lit) {
	if d.marks[root.Var()] == 2 {
		return
	}
	stack := []dfsFrame{{m: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.m.Var()
		if d.marks[v] == 2 {
			stack = stack[:len(stack)-1]
			continue
		}
		if !top.expanded {
			if d.marks[v] == 1 {
				panic("aig: combinational loop")
			}
			d.marks[v] = 1
			top.expanded = true
			if d.c.Type(top.m) == SAnd {
				a, b := d.c.Ins(top.m)
				stack = append(stack, dfsFrame{m: b}, dfsFrame{m: a})
			}
			continue
		}
		if d.c.Type(top.m) == SAnd {
			d.fn(d.c, v.Pos())
		}
		d.marks[v] = 2
		stack = stack[:len(stack)-1]
	}
}
