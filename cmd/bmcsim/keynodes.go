// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// nodeList is a flag.Value for R1's "-node v1 v2 ... 0" key-node option:
// a whitespace-separated list of node ids terminated by the sentinel 0,
// in the tradition of cmd/gini's comma-separated -assume flag. Repeating
// the flag appends to the same list.
type nodeList []int

func (n *nodeList) String() string {
	return fmt.Sprintf("%v", []int(*n))
}

func (n *nodeList) Set(val string) error {
	fields := strings.Fields(val)
	if len(fields) == 0 {
		return fmt.Errorf("-node: empty list")
	}
	if fields[len(fields)-1] != "0" {
		return fmt.Errorf("-node: list must be terminated by the sentinel 0")
	}
	for _, f := range fields[:len(fields)-1] {
		id, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("-node: %q is not an integer", f)
		}
		if id == 0 {
			return fmt.Errorf("-node: 0 is only valid as the terminating sentinel")
		}
		*n = append(*n, id)
	}
	return nil
}
