// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package twosat

import (
	"fmt"
	"sort"

	"github.com/go-air/bmc/z"
)

// Graph is an implication graph over literals: an edge a -> b means "a
// implies b". Constraint preprocessing builds one edge at a time from
// AND-gate propagation and later asks Solve for a satisfying polarity of
// every literal it touched.
type Graph struct {
	adj  map[z.Lit][]z.Lit
	vars map[z.Var]bool
}

// New creates an empty implication graph.
func New() *Graph {
	return &Graph{adj: make(map[z.Lit][]z.Lit), vars: make(map[z.Var]bool)}
}

// Implies records the edge a -> b (a implies b). Both a and b become
// "appearing" literals: Solve reports their variables' polarity when it
// is forced, and Propagate can walk through them.
func (g *Graph) Implies(a, b z.Lit) {
	g.adj[a] = append(g.adj[a], b)
	g.vars[a.Var()] = true
	g.vars[b.Var()] = true
}

// NVars returns the number of distinct variables appearing in the graph.
func (g *Graph) NVars() int { return len(g.vars) }

// UnsatError reports that a variable's two literals landed in the same
// strongly connected component: no assignment can satisfy every
// implication the graph encodes.
type UnsatError struct {
	Var z.Var
}

func (e *UnsatError) Error() string {
	return fmt.Sprintf("twosat: %s and its negation are mutually implied: unsatisfiable", e.Var)
}

// Solve runs Tarjan's SCC algorithm over the implication graph restricted
// to appearing literals and returns, for every appearing variable v that
// every satisfying assignment sets the same way, whether v.Pos() (true)
// or v.Neg() (false) is forced; a variable that can take either value is
// absent from the result. It returns an *UnsatError if some variable's
// two literals collapse into one SCC.
func (g *Graph) Solve() (map[z.Var]bool, error) {
	tj := newTarjan(g)
	tj.run()
	forced := make(map[z.Var]bool, len(g.vars))
	for v := range g.vars {
		pos, neg := tj.comp[v.Pos()], tj.comp[v.Neg()]
		if pos == neg {
			return nil, &UnsatError{Var: v}
		}
		// in a satisfiable graph a literal holds in every satisfying
		// assignment exactly when its own negation implies it.
		for _, l := range g.Propagate(v.Neg()) {
			if l == v.Pos() {
				forced[v] = true
			}
		}
		for _, l := range g.Propagate(v.Pos()) {
			if l == v.Neg() {
				forced[v] = false
			}
		}
	}
	return forced, nil
}

// Propagate returns every literal transitively implied by seed, as if
// seed had just been forced true. Solve uses it to find forced
// literals; no other package in this module calls it.
func (g *Graph) Propagate(seed z.Lit) []z.Lit {
	seen := map[z.Lit]bool{seed: true}
	var out []z.Lit
	queue := []z.Lit{seed}
	for len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]
		for _, w := range g.adj[l] {
			if seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
			queue = append(queue, w)
		}
	}
	return out
}

type tarjan struct {
	g       *Graph
	index   map[z.Lit]int
	low     map[z.Lit]int
	onStack map[z.Lit]bool
	stack   []z.Lit
	counter int
	comp    map[z.Lit]int
	next    int
}

func newTarjan(g *Graph) *tarjan {
	return &tarjan{
		g:       g,
		index:   make(map[z.Lit]int),
		low:     make(map[z.Lit]int),
		onStack: make(map[z.Lit]bool),
		comp:    make(map[z.Lit]int),
	}
}

// run visits both literals of every appearing variable in a fixed order
// so Solve's result does not depend on Go's map iteration order.
func (tj *tarjan) run() {
	vs := make([]z.Var, 0, len(tj.g.vars))
	for v := range tj.g.vars {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	for _, v := range vs {
		for _, l := range [2]z.Lit{v.Pos(), v.Neg()} {
			if _, ok := tj.index[l]; !ok {
				tj.strongconnect(l)
			}
		}
	}
}

func (tj *tarjan) strongconnect(v z.Lit) {
	tj.index[v] = tj.counter
	tj.low[v] = tj.counter
	tj.counter++
	tj.stack = append(tj.stack, v)
	tj.onStack[v] = true

	for _, w := range tj.g.adj[v] {
		if _, ok := tj.index[w]; !ok {
			tj.strongconnect(w)
			if tj.low[w] < tj.low[v] {
				tj.low[v] = tj.low[w]
			}
		} else if tj.onStack[w] {
			if tj.index[w] < tj.low[v] {
				tj.low[v] = tj.index[w]
			}
		}
	}

	if tj.low[v] != tj.index[v] {
		return
	}
	for {
		n := len(tj.stack) - 1
		w := tj.stack[n]
		tj.stack = tj.stack[:n]
		tj.onStack[w] = false
		tj.comp[w] = tj.next
		if w == v {
			break
		}
	}
	tj.next++
}
