// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wlnet

import (
	"fmt"
	"strings"

	"github.com/go-air/bmc/bv"
)

// Node is one line of a word-level netlist: a sort, an input or state
// declaration, an operator application, or a bad/constraint/init/next
// side-record. Args holds signed references to earlier nodes: a negative
// entry names the bitwise complement of the referenced node's value (BTOR2
// style), except where a shape's fields are documented otherwise (init,
// next, read, write args are unsigned node ids, not negatable values).
//
// Lineno doubles as a deletion flag: rewrites that retire a node set it to
// -1 rather than compacting the arena, so every other node's id stays
// valid. Lineno holds the 1-based source line number for nodes read from
// text, and 0 for nodes built programmatically that have never been
// written out.
type Node struct {
	ID     int
	Tag    Tag
	Symbol string
	Lineno int

	// sort payload, valid when Tag == TagSort
	SortIsArray bool
	Width       uint32 // bitvec width, or array's element/index width n/a here
	IndexSort   int
	ElemSort    int

	SortID int // result sort of this node; unused for TagSort itself

	Args    []int // signed node references, meaning depends on Tag
	Literal string
	Pad     int // uext/sext padding width

	InitNode int // state: id of its init node, 0 if none
	NextNode int // state: id of its next node, 0 if none

	Fixed          bool // R2: node is on the fan-in cone of a constraint and must not be merged away
	FixedInputSlot int  // C3: >0 means this input's value is forced, see Net.FixedInputs
}

// Deleted reports whether the node has been retired by a rewrite.
func (n *Node) Deleted() bool { return n.Lineno == -1 }

// RefArgs returns the subslice of Args that are true node references,
// excluding any trailing non-reference integers a shape appends after its
// operand refs (slice's hi/lo bit positions). The result aliases Args, so
// a rewrite may assign through it (e.g. n.RefArgs()[0] = newRef) to retarget
// an operand in place while preserving sign.
func (n *Node) RefArgs() []int {
	switch n.Tag {
	case TagInit, TagNext, TagBad, TagConstraint:
		return n.Args
	}
	sh, ok := shapes[n.Tag]
	if !ok || sh.nargs == 0 || sh.nargs > len(n.Args) {
		return nil
	}
	return n.Args[:sh.nargs]
}

// EffectiveClass is Tag.Class() except a node whose symbol carries R3's
// unrolling marker ".state.id_" is always reported as ClassState,
// matching the recognition protocol an unrolled model relies on: an
// unrolled state is emitted as an ordinary input or add node, not as a
// TagState node, so a rewrite that classifies by tag alone would miss it.
func (n *Node) EffectiveClass() Class {
	if strings.Contains(n.Symbol, ".state.id_") {
		return ClassState
	}
	return n.Tag.Class()
}

// Ref is a node id together with a sign: negative means "the bitwise
// complement of the value of -ref".
type Ref = int

// Net is a word-level netlist: a dense arena of Nodes indexed by id, plus
// the C3 fixed-input value table consulted by wlnet-aware constraint
// preprocessing.
type Net struct {
	Nodes       []*Node // Nodes[0] is nil; real ids start at 1
	FixedInputs []bv.BitVec
}

// AddFixedInput appends v to the fixed-input table and returns its
// 1-based slot number, the value stored in Node.FixedInputSlot by
// constraint preprocessing.
func (n *Net) AddFixedInput(v bv.BitVec) int {
	n.FixedInputs = append(n.FixedInputs, v)
	return len(n.FixedInputs)
}

// New returns an empty netlist.
func New() *Net {
	return &Net{Nodes: []*Node{nil}}
}

func (n *Net) alloc(tag Tag) *Node {
	nd := &Node{ID: len(n.Nodes), Tag: tag}
	n.Nodes = append(n.Nodes, nd)
	return nd
}

// Node returns the node with the given id, or nil if id is out of range.
func (n *Net) Node(id int) *Node {
	if id <= 0 || id >= len(n.Nodes) {
		return nil
	}
	return n.Nodes[id]
}

// Len returns one past the largest id ever allocated.
func (n *Net) Len() int { return len(n.Nodes) }

// Delete marks id as retired. Its slot stays allocated so later ids remain
// valid, but the id is skipped on write and by iteration helpers that
// check Deleted.
func (n *Net) Delete(id int) {
	nd := n.Node(id)
	if nd == nil {
		return
	}
	nd.Lineno = -1
}

// BitvecSort returns the id of a sort node of the given width, allocating
// one if none exists yet.
func (n *Net) BitvecSort(w uint32) int {
	for _, nd := range n.Nodes {
		if nd != nil && nd.Tag == TagSort && !nd.SortIsArray && nd.Width == w {
			return nd.ID
		}
	}
	nd := n.alloc(TagSort)
	nd.Width = w
	return nd.ID
}

// ArraySort returns the id of an array sort node mapping indexSort to
// elemSort, allocating one if none exists yet.
func (n *Net) ArraySort(indexSort, elemSort int) int {
	for _, nd := range n.Nodes {
		if nd != nil && nd.Tag == TagSort && nd.SortIsArray && nd.IndexSort == indexSort && nd.ElemSort == elemSort {
			return nd.ID
		}
	}
	nd := n.alloc(TagSort)
	nd.SortIsArray = true
	nd.IndexSort = indexSort
	nd.ElemSort = elemSort
	return nd.ID
}

// Width returns the bit width of a bitvec sort node, or 0 if sortID does
// not name a bitvec sort.
func (n *Net) Width(sortID int) uint32 {
	nd := n.Node(sortID)
	if nd == nil || nd.Tag != TagSort || nd.SortIsArray {
		return 0
	}
	return nd.Width
}

// SortOf returns the sort id of the value produced by node id, following
// the args of const-family and operator nodes back to their own SortID
// field, and reading state/input sorts directly.
func (n *Net) SortOf(id int) int {
	nd := n.Node(refAbs(id))
	if nd == nil {
		return 0
	}
	return nd.SortID
}

func refAbs(r int) int {
	if r < 0 {
		return -r
	}
	return r
}

// Input allocates an input node of the given sort.
func (n *Net) Input(sortID int, sym string) int {
	nd := n.alloc(TagInput)
	nd.SortID = sortID
	nd.Symbol = sym
	return nd.ID
}

// State allocates a state node of the given sort. Init and Next attach its
// initial value and transition function.
func (n *Net) State(sortID int, sym string) int {
	nd := n.alloc(TagState)
	nd.SortID = sortID
	nd.Symbol = sym
	return nd.ID
}

// Init records that state's initial value is val, and returns the new
// init node's id.
func (n *Net) Init(state, val int) int {
	nd := n.alloc(TagInit)
	s := n.Node(state)
	nd.SortID = s.SortID
	nd.Args = []int{state, val}
	s.InitNode = nd.ID
	return nd.ID
}

// Next records that state's value in the following round is val, and
// returns the new next node's id.
func (n *Net) Next(state, val int) int {
	nd := n.alloc(TagNext)
	s := n.Node(state)
	nd.SortID = s.SortID
	nd.Args = []int{state, val}
	s.NextNode = nd.ID
	return nd.ID
}

// Bad marks arg as a bad-state property.
func (n *Net) Bad(arg int, sym string) int {
	nd := n.alloc(TagBad)
	nd.Args = []int{arg}
	nd.Symbol = sym
	return nd.ID
}

// Constraint marks arg as an invariant constraint restricting which input
// and state sequences are considered.
func (n *Net) Constraint(arg int, sym string) int {
	nd := n.alloc(TagConstraint)
	nd.Args = []int{arg}
	nd.Symbol = sym
	return nd.ID
}

// Const allocates a const-family leaf of the given sort and tag. lit is
// the encoded literal text for TagConst/TagConstd/TagConsth and is ignored
// for TagZero/TagOne/TagOnes.
func (n *Net) Const(tag Tag, sortID int, lit string) int {
	nd := n.alloc(tag)
	nd.SortID = sortID
	nd.Literal = lit
	return nd.ID
}

// Op allocates a unary, binary or ternary operator node.
func (n *Net) Op(tag Tag, sortID int, args ...int) int {
	sh, ok := shapes[tag]
	if !ok || sh.nargs != len(args) {
		panic(fmt.Sprintf("wlnet: Op(%s): wrong arg count %d", tag, len(args)))
	}
	nd := n.alloc(tag)
	nd.SortID = sortID
	nd.Args = append([]int(nil), args...)
	return nd.ID
}

// Slice extracts bits [lo, hi] of arg, inclusive, as a value of sortID.
func (n *Net) Slice(sortID, arg int, hi, lo uint32) int {
	nd := n.alloc(TagSlice)
	nd.SortID = sortID
	nd.Args = []int{arg, int(hi), int(lo)}
	return nd.ID
}

// Extend zero- or sign-extends arg by pad bits, per tag (TagUext or
// TagSext).
func (n *Net) Extend(tag Tag, sortID, arg int, pad uint32) int {
	nd := n.alloc(tag)
	nd.SortID = sortID
	nd.Args = []int{arg}
	nd.Pad = int(pad)
	return nd.ID
}

// Read indexes array with idx.
func (n *Net) Read(sortID, array, idx int) int {
	return n.Op(TagRead, sortID, array, idx)
}

// Store writes val at idx in array, producing a new array value node
// (the write operator).
func (n *Net) Store(sortID, array, idx, val int) int {
	return n.Op(TagWrite, sortID, array, idx, val)
}
