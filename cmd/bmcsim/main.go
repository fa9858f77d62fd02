// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command bmcsim runs the bounded model checking core's pipeline over a
// single word-level or AIG netlist: optional cone-of-influence
// extraction, union merging and k-unrolling, then constraint
// preprocessing and randomized simulation, reporting bad rounds and
// candidate equivalence pairs. Given -cnf, it instead runs the AIG
// Tseitin encoder as a terminal sink and exits without simulating.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-air/bmc/bmcerr"
	"github.com/go-air/bmc/rewrite"
)

const usage = `usage:
  %s [flags] model

model is a word-level netlist by default; -aig or a .aag/.aig(.gz|.bz2)
extension selects the AIG pipeline. "-" reads stdin. Absence of -o or
-cnf means the rewritten model or CNF, respectively, is not written.

flags:
`

var (
	aigFlag   = flag.Bool("aig", false, "force AIG-format interpretation regardless of extension")
	asciiFlag = flag.Bool("ascii", false, "read/write ascii AIGER instead of binary")
	equivPath = flag.String("equiv", "", "R2: path to an equivalence-pair list (word-level only)")
	eliminate = flag.Bool("eliminate", false, "R1.5: drop states that only support already-known-true constraints (word-level only)")
	unrollK   = flag.Int("k", -1, "R3: unroll depth; -1 skips unrolling")
	cnfPath   = flag.String("cnf", "", "R4: write Tseitin CNF here and exit (AIG only)")
	pgFlag    = flag.Bool("pg", false, "R4: pseudo-polarity (unsimplified) CNF encoding")
	outPath   = flag.String("o", "", "write the rewritten model here before simulating")
	rounds    = flag.Int("rounds", 10000, "C1: number of simulation rounds")
	capacity  = flag.Int("capacity", 8, "C2: max candidate-group size")
	valueSeed = flag.Int64("value-seed", 1, "C1: seed for the value RNG")
	hashSeed  = flag.Int64("hash-seed", 2, "C1: seed for the fingerprint hash-base RNG")
	logPath   = flag.String("log", "", "write log output here instead of stderr")

	keys nodeList
)

func main() {
	flag.Usage = func() {
		p := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, usage, p)
		flag.PrintDefaults()
	}
	flag.Var(&keys, "node", "R1: space-separated key node ids terminated by the sentinel 0")
	log.SetPrefix("c [bmcsim] ")
	flag.Parse()
	os.Exit(run())
}

// run does the real work and returns the process exit code. Keeping it
// separate from main lets every output file's defer'd Close fire before
// the process exits, since os.Exit itself skips deferred calls.
func run() int {
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Println(err)
			return bmcerr.Io.ExitCode()
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "bmcsim: exactly one model argument is required")
		flag.Usage()
		return bmcerr.Usage.ExitCode()
	}

	cfg := config{
		nodes:     []int(keys),
		eliminate: *eliminate,
		k:         *unrollK,
		pg:        *pgFlag,
		rounds:    *rounds,
		capacity:  *capacity,
		valueSeed: *valueSeed,
		hashSeed:  *hashSeed,
	}
	if *equivPath != "" {
		pairs, err := readEquiv(*equivPath)
		if err != nil {
			log.Println(err)
			return bmcerr.ExitCode(err)
		}
		cfg.equiv = pairs
	}

	path := flag.Arg(0)
	r, err := path2Reader(path)
	if err != nil {
		err = bmcerr.New(bmcerr.Io, "bmcsim: open model", err)
		log.Println(err)
		return bmcerr.ExitCode(err)
	}

	rewritten, err := path2Writer(*outPath)
	if err != nil {
		err = bmcerr.New(bmcerr.Io, "bmcsim: open -o", err)
		log.Println(err)
		return bmcerr.ExitCode(err)
	}
	if rewritten != nil {
		defer rewritten.Close()
	}

	aigFmt, binary := isAIGPath(path)
	aigFmt = aigFmt || *aigFlag
	ascii := *asciiFlag || (!binary && aigFmt)

	if aigFmt {
		var cnfOut io.Writer
		if *cnfPath != "" {
			w, err := path2Writer(*cnfPath)
			if err != nil {
				err = bmcerr.New(bmcerr.Io, "bmcsim: open -cnf", err)
				log.Println(err)
				return bmcerr.ExitCode(err)
			}
			defer w.Close()
			cnfOut = w
		}
		err = runAIG(r, ascii, rewritten, cnfOut, cfg)
	} else {
		err = runWordLevel(r, rewritten, cfg)
	}

	code := bmcerr.ExitCode(err)
	if err != nil && code != 0 {
		log.Println(err)
	}
	return code
}

func readEquiv(path string) ([]rewrite.EquivPair, error) {
	r, err := path2Reader(path)
	if err != nil {
		return nil, bmcerr.New(bmcerr.Io, "bmcsim: open -equiv", err)
	}
	if c, ok := r.(interface{ Close() error }); ok {
		defer c.Close()
	}
	pairs, err := rewrite.ReadEquivPairs(r)
	if err != nil {
		return nil, bmcerr.Wrap("bmcsim: -equiv", err)
	}
	return pairs, nil
}
