// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"strings"
	"testing"
)

func TestReadEquivPairs(t *testing.T) {
	pairs, err := ReadEquivPairs(strings.NewReader("5 9\n12   4\n7 7"))
	if err != nil {
		t.Fatalf("ReadEquivPairs: %s", err)
	}
	want := []EquivPair{{5, 9}, {12, 4}, {7, 7}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if p != want[i] {
			t.Errorf("pair %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestReadEquivPairsEmpty(t *testing.T) {
	pairs, err := ReadEquivPairs(strings.NewReader("  \n  "))
	if err != nil {
		t.Fatalf("ReadEquivPairs: %s", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no pairs, got %v", pairs)
	}
}

func TestReadEquivPairsOddCount(t *testing.T) {
	if _, err := ReadEquivPairs(strings.NewReader("1 2 3")); err == nil {
		t.Errorf("expected an error for an unpaired trailing integer")
	}
}

func TestReadEquivPairsBadToken(t *testing.T) {
	if _, err := ReadEquivPairs(strings.NewReader("1 -2")); err == nil {
		t.Errorf("expected an error for a non-unsigned token")
	}
}
