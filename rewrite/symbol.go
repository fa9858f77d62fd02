// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package rewrite

import (
	"fmt"
	"strconv"
	"strings"
)

// Role distinguishes the two kinds of node an unrolled model produces in
// place of a sequential state.
type Role int

const (
	RoleState Role = iota
	RoleInput
)

func (r Role) String() string {
	if r == RoleInput {
		return "input"
	}
	return "state"
}

// UnrolledSymbol is the decoded form of an R3 symbol
// "<original>.<role>.id_<N>.time_<T>".
type UnrolledSymbol struct {
	Original string
	Role     Role
	ID       int
	Time     int
}

// FormatUnrolled builds the symbol R3 attaches to a per-timestep copy.
func FormatUnrolled(original string, role Role, id, time int) string {
	return fmt.Sprintf("%s.%s.id_%d.time_%d", original, role, id, time)
}

// ParseUnrolled decodes a symbol built by FormatUnrolled. It scans from
// the end of the string rather than the front, since original may itself
// contain dots; a symbol that does not match the grammar exactly is a
// hard error rather than a best-effort partial parse, per spec's "fail
// closed... such symbols indicate a malformed producer".
func ParseUnrolled(sym string) (UnrolledSymbol, error) {
	timeSep := strings.LastIndexByte(sym, '.')
	if timeSep < 0 {
		return UnrolledSymbol{}, fmt.Errorf("rewrite: %q: missing .time_ suffix", sym)
	}
	time, err := trailingInt(sym[timeSep+1:], "time_")
	if err != nil {
		return UnrolledSymbol{}, fmt.Errorf("rewrite: %q: %s", sym, err)
	}

	rest := sym[:timeSep]
	idSep := strings.LastIndexByte(rest, '.')
	if idSep < 0 {
		return UnrolledSymbol{}, fmt.Errorf("rewrite: %q: missing .id_ segment", sym)
	}
	id, err := trailingInt(rest[idSep+1:], "id_")
	if err != nil {
		return UnrolledSymbol{}, fmt.Errorf("rewrite: %q: %s", sym, err)
	}

	rest = rest[:idSep]
	roleSep := strings.LastIndexByte(rest, '.')
	if roleSep < 0 {
		return UnrolledSymbol{}, fmt.Errorf("rewrite: %q: missing role segment", sym)
	}
	var role Role
	switch rest[roleSep+1:] {
	case "state":
		role = RoleState
	case "input":
		role = RoleInput
	default:
		return UnrolledSymbol{}, fmt.Errorf("rewrite: %q: unknown role %q", sym, rest[roleSep+1:])
	}

	return UnrolledSymbol{Original: rest[:roleSep], Role: role, ID: id, Time: time}, nil
}

func trailingInt(s, prefix string) (int, error) {
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("segment %q missing prefix %q", s, prefix)
	}
	n, err := strconv.Atoi(s[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("segment %q: %s", s, err)
	}
	return n, nil
}
