// Copyright 2016 The BMC Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bmcerr is the toolkit's error taxonomy: a small Kind
// enumeration and an Error type carrying one, so cmd/bmcsim can map any
// error the pipeline produces to the right exit code and diagnostic
// without every package underneath having to agree on exit codes itself.
// Classify bridges the taxonomy-unaware errors this toolkit's own
// packages already return (aiger.Unsupported, *twosat.UnsatError,
// *eval.AssertionViolation) into a Kind, so a command only has to call
// Classify once on whatever error it got back.
package bmcerr

import (
	"errors"
	"fmt"

	"github.com/go-air/bmc/aig/aiger"
	"github.com/go-air/bmc/eval"
	"github.com/go-air/bmc/twosat"
)

// Kind classifies a failure the way the pipeline's exit-code policy
// needs it classified. PropertyReached is not a failure: it exists so a
// command can report "property reached" through the same Error value it
// uses for everything else, without conflating it with true errors when
// deciding whether to exit non-zero.
type Kind int

const (
	// Usage covers a malformed command line: missing arguments, an
	// out-of-range integer literal, an unknown flag.
	Usage Kind = iota
	// Io covers a path that cannot be opened for reading or writing.
	Io
	// Parse covers a model file an underlying parser rejected.
	Parse
	// Unsupported covers a construct this toolkit does not model:
	// latches, or outputs where they are forbidden.
	Unsupported
	// ConstraintsUnsatisfiable covers a 2-SAT preprocessing pass finding
	// both literals of some input in the same implication SCC.
	ConstraintsUnsatisfiable
	// SimulationAssertion covers an operand with an unexpected sort
	// during evaluation: an internal-bug-grade failure, not a
	// malformed-input one.
	SimulationAssertion
	// PropertyReached is not an error: the AIG BMC loop uses it to carry
	// "a bad property fired at this depth" back to the command layer
	// through the same channel as a real failure, since both end the
	// run early.
	PropertyReached
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage error"
	case Io:
		return "i/o error"
	case Parse:
		return "parse error"
	case Unsupported:
		return "unsupported construct"
	case ConstraintsUnsatisfiable:
		return "constraints unsatisfiable"
	case SimulationAssertion:
		return "simulation assertion violation"
	case PropertyReached:
		return "property reached"
	default:
		return "unknown error"
	}
}

// ExitCode returns the process exit code spec's exit-code policy assigns
// to k: 0 for success/PropertyReached, 1 for every kind of failure.
func (k Kind) ExitCode() int {
	if k == PropertyReached {
		return 0
	}
	return 1
}

// Error pairs a Kind with the underlying cause and an optional operation
// label, in the tradition of this toolkit's other *Error types
// (twosat.UnsatError, eval.AssertionViolation) but general enough for
// cmd/bmcsim to build directly at the command layer as well as to wrap
// an error surfacing from underneath.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error of kind k for operation op wrapping err.
func New(k Kind, op string, err error) *Error {
	return &Error{Kind: k, Op: op, Err: err}
}

// Usagef builds a Usage *Error with a formatted message and no wrapped
// cause.
func Usagef(op, format string, args ...interface{}) *Error {
	return &Error{Kind: Usage, Op: op, Err: fmt.Errorf(format, args...)}
}

// Classify maps err to the Kind it belongs to, recognizing this
// toolkit's own sentinel and typed errors along the way:
// aiger.Unsupported (or anything wrapping it) becomes Unsupported,
// *twosat.UnsatError becomes ConstraintsUnsatisfiable, and
// *eval.AssertionViolation becomes SimulationAssertion. An err that is
// already a *bmcerr.Error keeps its own Kind. Anything else is
// classified as Parse, since by the time a bare error reaches this far
// down the pipeline it almost always came from a file the caller asked
// this toolkit to read.
func Classify(err error) Kind {
	if err == nil {
		return -1
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	if errors.Is(err, aiger.Unsupported) {
		return Unsupported
	}
	var ue *twosat.UnsatError
	if errors.As(err, &ue) {
		return ConstraintsUnsatisfiable
	}
	var av *eval.AssertionViolation
	if errors.As(err, &av) {
		return SimulationAssertion
	}
	return Parse
}

// Wrap classifies err via Classify and returns an *Error carrying the
// result, or nil if err is nil. It leaves an existing *bmcerr.Error
// untouched rather than double-wrapping it.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	return &Error{Kind: Classify(err), Op: op, Err: err}
}

// ExitCode returns the process exit code err maps to: 0 for a nil error
// or one classified as PropertyReached, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return Classify(err).ExitCode()
}
