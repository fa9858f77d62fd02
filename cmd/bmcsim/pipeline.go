// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"

	"github.com/go-air/bmc/aig/aiger"
	"github.com/go-air/bmc/bmcerr"
	"github.com/go-air/bmc/cnf"
	"github.com/go-air/bmc/precheck"
	"github.com/go-air/bmc/rewrite"
	"github.com/go-air/bmc/sim"
	"github.com/go-air/bmc/wlnet"
	"github.com/go-air/bmc/z"
)

// config holds every pipeline knob cmd/bmcsim's flags fill in. It is
// kept separate from the flag.Value globals so the pipeline itself can
// be exercised directly from a test without touching os.Args.
type config struct {
	nodes     []int
	equiv     []rewrite.EquivPair
	eliminate bool
	k         int // -1 means "do not unroll"
	pg        bool
	rounds    int
	capacity  int
	valueSeed int64
	hashSeed  int64
}

// runWordLevel executes the word-level pipeline: Loader -> (R3/R1.5/R1/R2)
// -> C3 -> C1/C2, reporting bad rounds and candidate equivalence pairs on
// stdout. rewritten, if non-nil, receives the model after rewriting
// (spec's environment convention: absence of a path skips the write).
// Rewrites run unroll, then constraint elimination, then cone-of-influence,
// then merge, matching the one order the reference tooling's own sweeping
// scripts chain these same passes in.
func runWordLevel(r io.Reader, rewritten io.Writer, cfg config) error {
	net, err := wlnet.Read(r)
	if err != nil {
		return bmcerr.Wrap("bmcsim: read", err)
	}

	if cfg.k >= 0 {
		if _, err := rewrite.Unroll(net, cfg.k); err != nil {
			return bmcerr.Wrap("bmcsim: unroll", err)
		}
	}
	if cfg.eliminate {
		if err := rewrite.EliminateConstraints(net); err != nil {
			return bmcerr.Wrap("bmcsim: eliminate", err)
		}
	}
	if len(cfg.nodes) > 0 {
		if err := rewrite.COI(net, cfg.nodes); err != nil {
			return bmcerr.Wrap("bmcsim: coi", err)
		}
	}
	if len(cfg.equiv) > 0 {
		if err := rewrite.Merge(net, cfg.equiv); err != nil {
			return bmcerr.Wrap("bmcsim: merge", err)
		}
	}
	if rewritten != nil {
		if err := net.Write(rewritten); err != nil {
			return bmcerr.Wrap("bmcsim: write", err)
		}
	}

	rng := rand.New(rand.NewSource(cfg.valueSeed))
	if _, err := precheck.WordLevel(net, rng); err != nil {
		return bmcerr.Wrap("bmcsim: precheck", err)
	}

	res, err := sim.RunWordLevel(net, sim.WLConfig{
		Rounds:    cfg.rounds,
		ValueSeed: cfg.valueSeed,
		HashSeed:  cfg.hashSeed,
	})
	if err != nil {
		return bmcerr.Wrap("bmcsim: simulate", err)
	}
	reportWordLevel(net, res, cfg.capacity)
	return nil
}

func reportWordLevel(net *wlnet.Net, res *sim.WLResult, capacity int) {
	fmt.Printf("rounds %d successful %d\n", res.Rounds, res.Successful)
	badIDs := make([]int, 0, len(res.BadRound))
	for id := range res.BadRound {
		badIDs = append(badIDs, id)
	}
	sort.Ints(badIDs)
	for _, id := range badIDs {
		fmt.Printf("bad %d reached at round %d\n", id, res.BadRound[id])
	}
	for _, p := range sim.Candidates(res.Fingerprints, res.Widths, capacity) {
		fmt.Printf("candidate %d %d\n", p.Lo, p.Hi)
	}
	if len(badIDs) > 0 {
		log.Printf("%d of %d bad properties reached", len(badIDs), badPropertyCount(net))
	}
}

func badPropertyCount(net *wlnet.Net) int {
	n := 0
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd != nil && !nd.Deleted() && nd.Tag == wlnet.TagBad {
			n++
		}
	}
	return n
}

// runAIG executes the bit-level pipeline. When cnfOut is non-nil, R4 is
// run as the terminal sink per spec's control-flow statement and the
// function returns without simulating; otherwise it runs C3/C1/C2 and
// returns a *bmcerr.Error with Kind PropertyReached (not a true failure)
// if some bad literal fires.
func runAIG(r io.Reader, ascii bool, rewritten io.Writer, cnfOut io.Writer, cfg config) error {
	var t *aiger.T
	var err error
	if ascii {
		t, err = aiger.ReadAscii(r)
	} else {
		t, err = aiger.ReadBinary(r)
	}
	if err != nil {
		return bmcerr.Wrap("bmcsim: read", err)
	}
	c := t.C

	bads := append([]z.Lit(nil), t.Bad...)
	if len(cfg.nodes) > 0 {
		keys := make([]z.Lit, len(cfg.nodes))
		for i, id := range cfg.nodes {
			v := z.Var(id)
			if int(v) >= c.Len() {
				return bmcerr.New(bmcerr.Usage, "bmcsim: coi", fmt.Errorf("node %d: no such variable", id))
			}
			keys[i] = v.Pos()
		}
		bads = append(bads, rewrite.COIAig(c, keys)...)
	}

	if cnfOut != nil {
		vs := z.NewVars()
		dw := cnf.NewDimacsWriter()
		cnf.Encode(c, t.Constraints, bads, vs, dw, cnf.Options{Pg: cfg.pg, OnMap: dw.MapComment})
		if err := dw.WriteTo(cnfOut); err != nil {
			return bmcerr.Wrap("bmcsim: cnf", err)
		}
		return nil
	}

	if rewritten != nil {
		t.Bad = bads
		if ascii {
			err = t.WriteAscii(rewritten)
		} else {
			err = t.WriteBinary(rewritten)
		}
		if err != nil {
			return bmcerr.Wrap("bmcsim: write", err)
		}
	}

	pre, err := precheck.AIG(c, t.Constraints)
	if err != nil {
		return bmcerr.Wrap("bmcsim: precheck", err)
	}

	res := sim.RunAIG(c, t.Constraints, bads, pre, sim.AIGConfig{
		Rounds:    cfg.rounds,
		ValueSeed: cfg.valueSeed,
		HashSeed:  cfg.hashSeed,
	})
	reportAIG(res, cfg.capacity)
	if res.BadRound >= 0 {
		return bmcerr.New(bmcerr.PropertyReached, "bmcsim: simulate",
			fmt.Errorf("bad literal %d reached at round %d", res.BadLit.Dimacs(), res.BadRound))
	}
	return nil
}

func reportAIG(res *sim.AIGResult, capacity int) {
	fmt.Printf("rounds %d successful %d\n", res.Rounds, res.Successful)
	if res.BadRound >= 0 {
		fmt.Printf("bad %d reached at round %d\n", res.BadLit.Dimacs(), res.BadRound)
		return
	}
	for _, p := range sim.CandidatesAIG(res.Fingerprint, capacity) {
		fmt.Printf("candidate %d %d\n", p.Lo, p.Hi)
	}
}
