// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// errors.go - sentinel errors for the linear package.
//
// Policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Call sites attach a method tag and the offending values with %w.
//   • Nothing in this package panics on user input.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey indicates an Insert for a key that is already present.
	ErrDuplicateKey = errors.New("linear: key already present")

	// ErrKeyNotFound indicates a lookup or Update for an absent key.
	ErrKeyNotFound = errors.New("linear: key not found")

	// ErrNoKeys indicates a factor constructed without any terms.
	ErrNoKeys = errors.New("linear: factor needs at least one key")

	// ErrDuplicateFactorKey indicates the same key appearing twice in one factor.
	ErrDuplicateFactorKey = errors.New("linear: key repeated within factor")

	// ErrDimensionMismatch indicates incompatible shapes between blocks,
	// targets, noise models or values.
	ErrDimensionMismatch = errors.New("linear: dimension mismatch")

	// ErrNilModel indicates a factor built without a noise model.
	ErrNilModel = errors.New("linear: noise model is nil")

	// ErrNilFactor indicates a nil factor pushed into a graph.
	ErrNilFactor = errors.New("linear: factor is nil")

	// ErrNaNInf indicates a NaN or ±Inf coefficient or target entry.
	ErrNaNInf = errors.New("linear: NaN or Inf encountered")
)

// linearErrorf prefixes err with a method tag, keeping the sentinel for errors.Is.
func linearErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
