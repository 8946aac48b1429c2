// SPDX-License-Identifier: MIT
// Package: factorgraph/mrf
//
// errors.go - sentinel errors for the mrf package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Builders attach the method tag and offending values with %w.
//   • Builders never panic on user input; bad option values surface as
//     errors when the configuration is resolved.
//
// Priority when several checks fail: dimensions → row scheme → sigmas.

package mrf

import "errors"

var (
	// ErrBadDimension indicates a grid with fewer than one row or column.
	ErrBadDimension = errors.New("mrf: rows and cols must be >= 1")

	// ErrTooManyRows indicates more rows than the letter scheme can label.
	ErrTooManyRows = errors.New("mrf: letter row labels support at most 26 rows")

	// ErrGridTooLarge indicates a grid that does not fit the numbered key layout.
	ErrGridTooLarge = errors.New("mrf: grid exceeds numbered key layout")

	// ErrInvalidSigma indicates a noise sigma that is not finite and positive.
	ErrInvalidSigma = errors.New("mrf: sigma must be finite and > 0")

	// ErrUnknownScheme indicates an undefined RowScheme.
	ErrUnknownScheme = errors.New("mrf: unknown row scheme")
)
