// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"bufio"
	"fmt"
	"io"
)

// ReadEquivPairs reads an equivalence list: ASCII, whitespace-separated
// unsigned integer pairs, each asserting that two node ids are
// equivalent, terminated by EOF. A malformed pair or a stray unpaired
// trailing integer is an error.
func ReadEquivPairs(r io.Reader) ([]EquivPair, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var pairs []EquivPair
	for {
		a, aok, err := scanUint(sc)
		if err != nil {
			return nil, err
		}
		if !aok {
			return pairs, nil
		}
		b, bok, err := scanUint(sc)
		if err != nil {
			return nil, err
		}
		if !bok {
			return nil, fmt.Errorf("rewrite: ReadEquivPairs: node %d has no equivalence partner", a)
		}
		pairs = append(pairs, EquivPair{X: a, Y: b})
	}
}

func scanUint(sc *bufio.Scanner) (int, bool, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, false, fmt.Errorf("rewrite: ReadEquivPairs: %s", err)
		}
		return 0, false, nil
	}
	tok := sc.Text()
	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, false, fmt.Errorf("rewrite: ReadEquivPairs: %q is not an unsigned integer", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, true, nil
}
