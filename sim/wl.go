// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"math/rand"

	"github.com/go-air/bmc/eval"
	"github.com/go-air/bmc/wlnet"
)

// WLConfig configures a word-level simulation run. ValueSeed and
// HashSeed drive two independent RNGs (spec's "keep the hash-base RNG
// independent from the value RNG") so retuning one does not perturb the
// other's draw sequence.
type WLConfig struct {
	Rounds    int
	ValueSeed int64
	HashSeed  int64
}

// WLResult is the outcome of a word-level run.
type WLResult struct {
	Rounds     int
	Successful int

	// BadRound maps a bad node's id to the 0-based round index at which
	// it was first observed non-zero. A bad id absent from the map never
	// fired.
	BadRound map[int]int

	Fingerprints map[int]Fingerprint
	Widths       map[int]uint32
}

// RunWordLevel runs cfg.Rounds rounds of simulation over net, stopping
// early once every bad property has fired. Callers that use precheck.WordLevel
// for constraint resolution should run it first so fixed inputs are
// already recorded on net's nodes; RunWordLevel does not call it itself
// since a caller re-running simulation with an already-preprocessed net
// (e.g. across several capacity settings) should not redo that work.
func RunWordLevel(net *wlnet.Net, cfg WLConfig) (*WLResult, error) {
	valueRNG := rand.New(rand.NewSource(cfg.ValueSeed))
	hashRNG := rand.New(rand.NewSource(cfg.HashSeed))
	env := eval.NewEnv(net)

	var bads []int
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd != nil && !nd.Deleted() && nd.Tag == wlnet.TagBad {
			bads = append(bads, id)
		}
	}

	res := &WLResult{
		BadRound:     make(map[int]int),
		Fingerprints: make(map[int]Fingerprint),
		Widths:       make(map[int]uint32),
	}

	for round := 0; round < cfg.Rounds; round++ {
		env.Reset()
		if err := env.Round(valueRNG); err != nil {
			return res, err
		}
		res.Rounds++

		if wlConstraintsViolated(net, env) {
			continue
		}
		res.Successful++

		for _, id := range bads {
			if _, hit := res.BadRound[id]; hit {
				continue
			}
			v, ok := env.SignedBv(net.Node(id).Args[0])
			if ok && !v.IsZero() {
				res.BadRound[id] = round
			}
		}

		accumulateWLFingerprints(env, hashRNG, res)

		if len(bads) > 0 && len(res.BadRound) == len(bads) {
			break
		}
	}
	return res, nil
}

func wlConstraintsViolated(net *wlnet.Net, env *eval.Env) bool {
	for id := 1; id < net.Len(); id++ {
		nd := net.Node(id)
		if nd == nil || nd.Deleted() || nd.Tag != wlnet.TagConstraint {
			continue
		}
		v, ok := env.SignedBv(nd.Args[0])
		if ok && v.IsZero() {
			return true
		}
	}
	return false
}

func accumulateWLFingerprints(env *eval.Env, hashRNG *rand.Rand, res *WLResult) {
	b1, b2 := hashRNG.Uint64(), hashRNG.Uint64()
	for id, val := range env.Values {
		bvv, ok := val.(eval.Bv)
		if !ok {
			continue
		}
		buf := bvv.V.ToBigInt().Bytes()
		fp := res.Fingerprints[id]
		fp.H1 ^= fold(b1, buf)
		fp.H2 ^= fold(b2, buf)
		res.Fingerprints[id] = fp
		res.Widths[id] = bvv.V.W
	}
}
