// SPDX-License-Identifier: MIT

// Package noise provides Gaussian noise models for linear factors.
//
// A Model describes the covariance of a factor residual. Factors never use the
// covariance directly; they whiten residuals and Jacobians instead, so that
// every factor contributes ½‖W(Ax − b)‖² with W = Σ^{-1/2}.
//
// Models:
//
//   - Isotropic: one sigma shared by every dimension (W = I/σ).
//   - Diagonal:  per-dimension sigmas (W = diag(1/σ_i)).
//   - Unit:      Isotropic with σ = 1 (whitening is the identity).
//
// FromSigmas picks the tightest representation: identical sigmas yield an
// Isotropic model, anything else a Diagonal one.
//
// Numeric policy: sigmas must be finite and strictly positive. Whitening
// validates operand shapes and returns ErrDimensionMismatch instead of
// panicking.
package noise
