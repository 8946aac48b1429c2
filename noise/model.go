// SPDX-License-Identifier: MIT
// Package: factorgraph/noise
//
// model.go - isotropic and diagonal Gaussian noise models.
//
// Contract:
//   • Sigmas are finite and > 0; dimensions are ≥ 1.
//   • Whiten, WhitenMatrix and SquaredMahalanobis reject size mismatches
//     with an error and never modify their input.

package noise

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors. Callers branch with errors.Is; messages are stable.
var (
	// ErrBadDimension indicates a model dimension below 1.
	ErrBadDimension = errors.New("noise: dimension must be >= 1")
	// ErrInvalidSigma indicates a sigma that is NaN, ±Inf, zero or negative.
	ErrInvalidSigma = errors.New("noise: sigma must be finite and > 0")
	// ErrDimensionMismatch indicates an operand whose length or row count
	// differs from the model dimension.
	ErrDimensionMismatch = errors.New("noise: dimension mismatch")
)

// Model is a zero-mean Gaussian noise model on a residual of fixed size.
type Model interface {
	// Dim is the residual dimension the model applies to.
	Dim() int
	// Sigmas returns a copy of the per-dimension standard deviations.
	Sigmas() []float64
	// IsIsotropic reports whether all sigmas are equal.
	IsIsotropic() bool
	// Whiten returns W·v.
	Whiten(v []float64) ([]float64, error)
	// WhitenMatrix returns W·A as a new dense matrix.
	WhitenMatrix(A mat.Matrix) (*mat.Dense, error)
	// SquaredMahalanobis returns ‖W·v‖².
	SquaredMahalanobis(v []float64) (float64, error)
}

// Compile-time interface checks.
var (
	_ Model = (*Isotropic)(nil)
	_ Model = (*Diagonal)(nil)
)

// Isotropic assigns the same sigma to every dimension.
type Isotropic struct {
	dim   int
	sigma float64
}

// NewIsotropic returns an isotropic model of the given dimension.
func NewIsotropic(dim int, sigma float64) (*Isotropic, error) {
	if dim < 1 {
		return nil, fmt.Errorf("NewIsotropic(dim=%d): %w", dim, ErrBadDimension)
	}
	if err := validateSigma(sigma); err != nil {
		return nil, fmt.Errorf("NewIsotropic(sigma=%g): %w", sigma, err)
	}
	return &Isotropic{dim: dim, sigma: sigma}, nil
}

// NewUnit returns the isotropic model with sigma 1.
func NewUnit(dim int) (*Isotropic, error) { return NewIsotropic(dim, 1) }

// Dim implements Model.
func (m *Isotropic) Dim() int { return m.dim }

// Sigma returns the shared standard deviation.
func (m *Isotropic) Sigma() float64 { return m.sigma }

// Sigmas implements Model.
func (m *Isotropic) Sigmas() []float64 {
	out := make([]float64, m.dim)
	for i := range out {
		out[i] = m.sigma
	}
	return out
}

// IsIsotropic implements Model.
func (m *Isotropic) IsIsotropic() bool { return true }

// IsUnit reports whether the model whitens with the identity.
func (m *Isotropic) IsUnit() bool { return m.sigma == 1 }

// Whiten implements Model.
func (m *Isotropic) Whiten(v []float64) ([]float64, error) {
	if len(v) != m.dim {
		return nil, mismatch("Isotropic.Whiten", len(v), m.dim)
	}
	out := make([]float64, len(v))
	floats.ScaleTo(out, 1/m.sigma, v)
	return out, nil
}

// WhitenMatrix implements Model.
func (m *Isotropic) WhitenMatrix(A mat.Matrix) (*mat.Dense, error) {
	r, _ := A.Dims()
	if r != m.dim {
		return nil, mismatch("Isotropic.WhitenMatrix", r, m.dim)
	}
	var out mat.Dense
	out.Scale(1/m.sigma, A)
	return &out, nil
}

// SquaredMahalanobis implements Model.
func (m *Isotropic) SquaredMahalanobis(v []float64) (float64, error) {
	w, err := m.Whiten(v)
	if err != nil {
		return 0, err
	}
	return floats.Dot(w, w), nil
}

// String renders "Isotropic(dim=1, sigma=0.5)".
func (m *Isotropic) String() string {
	return fmt.Sprintf("Isotropic(dim=%d, sigma=%g)", m.dim, m.sigma)
}

// Diagonal carries one sigma per dimension.
type Diagonal struct {
	sigmas []float64
}

// NewDiagonal returns a diagonal model; the slice is copied.
func NewDiagonal(sigmas []float64) (*Diagonal, error) {
	if len(sigmas) < 1 {
		return nil, fmt.Errorf("NewDiagonal(len=0): %w", ErrBadDimension)
	}
	for i, s := range sigmas {
		if err := validateSigma(s); err != nil {
			return nil, fmt.Errorf("NewDiagonal(sigmas[%d]=%g): %w", i, s, err)
		}
	}
	cp := make([]float64, len(sigmas))
	copy(cp, sigmas)
	return &Diagonal{sigmas: cp}, nil
}

// FromSigmas returns an Isotropic model when all sigmas are equal and a
// Diagonal model otherwise.
func FromSigmas(sigmas []float64) (Model, error) {
	d, err := NewDiagonal(sigmas)
	if err != nil {
		return nil, err
	}
	if d.IsIsotropic() {
		return &Isotropic{dim: len(sigmas), sigma: sigmas[0]}, nil
	}
	return d, nil
}

// Dim implements Model.
func (m *Diagonal) Dim() int { return len(m.sigmas) }

// Sigmas implements Model.
func (m *Diagonal) Sigmas() []float64 {
	out := make([]float64, len(m.sigmas))
	copy(out, m.sigmas)
	return out
}

// IsIsotropic implements Model.
func (m *Diagonal) IsIsotropic() bool {
	for _, s := range m.sigmas[1:] {
		if s != m.sigmas[0] {
			return false
		}
	}
	return true
}

// Whiten implements Model.
func (m *Diagonal) Whiten(v []float64) ([]float64, error) {
	if len(v) != len(m.sigmas) {
		return nil, mismatch("Diagonal.Whiten", len(v), len(m.sigmas))
	}
	out := make([]float64, len(v))
	floats.DivTo(out, v, m.sigmas)
	return out, nil
}

// WhitenMatrix implements Model.
func (m *Diagonal) WhitenMatrix(A mat.Matrix) (*mat.Dense, error) {
	r, _ := A.Dims()
	if r != len(m.sigmas) {
		return nil, mismatch("Diagonal.WhitenMatrix", r, len(m.sigmas))
	}
	out := mat.DenseCopyOf(A)
	for i, s := range m.sigmas {
		floats.Scale(1/s, out.RawRowView(i))
	}
	return out, nil
}

// SquaredMahalanobis implements Model.
func (m *Diagonal) SquaredMahalanobis(v []float64) (float64, error) {
	w, err := m.Whiten(v)
	if err != nil {
		return 0, err
	}
	return floats.Dot(w, w), nil
}

// String renders "Diagonal(sigmas=[...])".
func (m *Diagonal) String() string {
	return fmt.Sprintf("Diagonal(sigmas=%v)", m.sigmas)
}

// Equal reports whether a and b have the same dimension and sigmas within tol.
// Isotropic and Diagonal models with identical sigmas compare equal.
func Equal(a, b Model, tol float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Dim() != b.Dim() {
		return false
	}
	return floats.EqualApprox(a.Sigmas(), b.Sigmas(), tol)
}

func validateSigma(s float64) error {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return ErrInvalidSigma
	}
	return nil
}

func mismatch(method string, got, want int) error {
	return fmt.Errorf("%s(len=%d, dim=%d): %w", method, got, want, ErrDimensionMismatch)
}
