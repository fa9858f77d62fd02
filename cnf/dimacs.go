// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-air/bmc/z"
)

// DimacsWriter is a Sink that buffers clauses and, on WriteTo, emits a
// standard DIMACS CNF file: optional "c <aig-lit> -> <cnf-var>" mapping
// comments, the "p cnf <nvars> <nclauses>" header, then one line per
// clause. Buffering is unavoidable here since the header needs the
// final variable and clause counts before any clause line is written.
type DimacsWriter struct {
	mem      MemSink
	maxVar   z.Var
	comments []string
}

// NewDimacsWriter returns an empty writer.
func NewDimacsWriter() *DimacsWriter {
	return &DimacsWriter{}
}

// Add implements Sink.
func (d *DimacsWriter) Add(m z.Lit) {
	if m != z.LitNull {
		if v := m.Var(); v > d.maxVar {
			d.maxVar = v
		}
	}
	d.mem.Add(m)
}

// MapComment records a "c <aigLit> -> <cnfVar>" comment line, written
// before the header. Callers building the CNF variable space with
// z.Vars typically call this once per newly-allocated inner variable.
func (d *DimacsWriter) MapComment(aigLit z.Lit, cnfVar z.Var) {
	d.comments = append(d.comments, fmt.Sprintf("c %d -> %d", aigLit.Dimacs(), cnfVar))
}

// WriteTo emits the buffered CNF to w.
func (d *DimacsWriter) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range d.comments {
		if _, err := fmt.Fprintln(bw, c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", d.maxVar, len(d.mem.Clauses)); err != nil {
		return err
	}
	for _, clause := range d.mem.Clauses {
		for _, m := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", m.Dimacs()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
