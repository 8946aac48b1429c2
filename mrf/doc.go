// SPDX-License-Identifier: MIT

// Package mrf builds synthetic Markov Random Field denoising problems as
// linear Gaussian factor graphs over an M×N grid.
//
// What:
//
//   - DenoisingMRF(M, N, opts...) samples one noisy scalar per cell and emits
//     one data factor per cell plus one smoothness factor per horizontal and
//     vertical neighbour pair. It returns the graph and the row labels.
//   - NewDenoisingProblem returns the same graph together with the keys,
//     observations and resolved parameters.
//   - VectorValues converts a Key → vector map into a linear.VectorValues.
//
// Model (per cell (r,c) with key x_rc and observation z_rc):
//
//	data:        x_rc − z_rc            ~ N(0, σ²)
//	smoothness:  x_rc − x_r(c−1)        ~ N(0, σ_s²)   if c > 0
//	             x_rc − x_(r−1)c        ~ N(0, σ_s²)   if r > 0
//
// Factors are emitted in row-major order (row outer, column inner), data
// first, then left neighbour, then upper neighbour. The total factor count is
// MN + M(N−1) + (M−1)N.
//
// Options:
//
//   - WithSigma (default 0.5), WithSmoothnessSigma (default 0.5).
//   - WithSeed (default 42): observations are drawn from a PCG source owned by
//     the call, so equal seeds give bit-identical graphs and concurrent calls
//     never share state.
//   - WithRowScheme: LetterRows ("a".."z", at most 26 rows, keys a1, a2, …)
//     or NumberedRows (zero-padded decimal labels, no row ceiling).
//   - WithLogger: zerolog logger for a debug summary; silent by default.
//
// Errors:
//
//   - ErrBadDimension: M < 1 or N < 1.
//   - ErrTooManyRows: LetterRows with M > 26.
//   - ErrGridTooLarge: NumberedRows with M or N beyond the key layout.
//   - ErrInvalidSigma: a sigma that is NaN, ±Inf, zero or negative.
//   - ErrUnknownScheme: an undefined RowScheme value.
//
// Complexity: O(M·N) time and memory.
package mrf
