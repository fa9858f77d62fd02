// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import "sort"

// Pair is a candidate equivalence pair discovered by grouping nodes with
// identical fingerprints. Lo is always the smaller of the two node ids.
type Pair struct {
	Lo, Hi int
}

// Candidates groups fps by (H1, H2, width) and emits every ordered
// (low, high) pair within each group whose size lies in the interval
// (1, capacity]. A group of size 1 is a singleton with nothing to pair;
// a group larger than capacity is discarded as a probably-spurious
// "super-equivalence" class. The result is sorted by (Lo, Hi) so it is
// deterministic regardless of map iteration order.
func Candidates(fps map[int]Fingerprint, widths map[int]uint32, capacity int) []Pair {
	type key struct {
		h1, h2 uint64
		w      uint32
	}
	groups := make(map[key][]int)
	for id, fp := range fps {
		k := key{fp.H1, fp.H2, widths[id]}
		groups[k] = append(groups[k], id)
	}

	var out []Pair
	for _, ids := range groups {
		if len(ids) <= 1 || len(ids) > capacity {
			continue
		}
		sort.Ints(ids)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				out = append(out, Pair{Lo: ids[i], Hi: ids[j]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lo != out[j].Lo {
			return out[i].Lo < out[j].Lo
		}
		return out[i].Hi < out[j].Hi
	})
	return out
}

// CandidatesAIG is Candidates specialized to the AIG engine's single
// 64-bit fingerprint: it groups by that hash alone since AIG literals
// carry no width.
func CandidatesAIG(fps map[int]uint64, capacity int) []Pair {
	groups := make(map[uint64][]int)
	for id, h := range fps {
		groups[h] = append(groups[h], id)
	}
	var out []Pair
	for _, ids := range groups {
		if len(ids) <= 1 || len(ids) > capacity {
			continue
		}
		sort.Ints(ids)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				out = append(out, Pair{Lo: ids[i], Hi: ids[j]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lo != out[j].Lo {
			return out[i].Lo < out[j].Lo
		}
		return out[i].Hi < out[j].Hi
	})
	return out
}
