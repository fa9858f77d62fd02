// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wlnet

import (
	"bufio"
	"fmt"
	"io"
)

// Write emits n in the line-oriented text format Read parses. Deleted
// nodes are suppressed, and every surviving node's original id is
// preserved so a rewrite that only deletes nodes still round-trips the
// ids everything else refers to.
func (n *Net) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id := 1; id < len(n.Nodes); id++ {
		nd := n.Nodes[id]
		if nd == nil || nd.Deleted() {
			continue
		}
		if err := n.writeLine(bw, nd); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (n *Net) writeLine(w *bufio.Writer, nd *Node) error {
	if nd.Tag == TagSort {
		if nd.SortIsArray {
			_, err := fmt.Fprintf(w, "%d sort array %d %d\n", nd.ID, nd.IndexSort, nd.ElemSort)
			return err
		}
		_, err := fmt.Fprintf(w, "%d sort bitvec %d\n", nd.ID, nd.Width)
		return err
	}

	fmt.Fprintf(w, "%d %s", nd.ID, nd.Tag)
	if hasSortField(nd.Tag) {
		fmt.Fprintf(w, " %d", nd.SortID)
	}

	sh := shapes[nd.Tag]
	switch {
	case sh.hasPayload:
		fmt.Fprintf(w, " %s", nd.Literal)
	case sh.hasSlice:
		fmt.Fprintf(w, " %d %d %d", nd.Args[0], nd.Args[1], nd.Args[2])
	case sh.hasPad:
		fmt.Fprintf(w, " %d %d", nd.Args[0], nd.Pad)
	default:
		for _, a := range nd.Args {
			fmt.Fprintf(w, " %d", a)
		}
	}

	if nd.Symbol != "" {
		fmt.Fprintf(w, " %s", nd.Symbol)
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}
