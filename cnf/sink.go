// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import "github.com/go-air/bmc/z"

// Sink receives a CNF clause stream: a sequence of Add calls naming a
// clause's literals, terminated by z.LitNull. Literals are already in
// the CNF's own dense variable space, not the source circuit's.
type Sink interface {
	Add(m z.Lit)
}

// MemSink collects every clause into memory, for tests that want to
// inspect or resolve the CNF directly without writing DIMACS text.
type MemSink struct {
	Clauses [][]z.Lit
	cur     []z.Lit
}

// Add implements Sink.
func (s *MemSink) Add(m z.Lit) {
	if m == z.LitNull {
		s.Clauses = append(s.Clauses, s.cur)
		s.cur = nil
		return
	}
	s.cur = append(s.cur, m)
}
