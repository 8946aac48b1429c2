// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// factor.go - JacobianFactor, a linear Gaussian constraint.
//
// Contract:
//   • Keys are distinct; every block has Rows() rows; the noise model has
//     dimension Rows().
//   • Accessors return copies; a factor is immutable after construction.

package linear

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/noise"
	"github.com/katalvlaran/factorgraph/symbol"
)

// Term pairs a variable key with its coefficient block.
type Term struct {
	Key symbol.Key
	A   mat.Matrix
}

// JacobianFactor is the linear Gaussian constraint Σ A_i·x_i − b ~ N(0, Σ).
//   - keys and blocks are parallel; block i has Rows() rows and Dim(i) cols.
//   - blocks and b are private copies; the factor is immutable.
type JacobianFactor struct {
	keys   []symbol.Key
	blocks []*mat.Dense
	b      []float64
	model  noise.Model
}

// NewJacobianFactor validates and copies the terms, target and model.
//
// Contract:
//   - at least one term (ErrNoKeys), keys distinct (ErrDuplicateFactorKey);
//   - model non-nil (ErrNilModel) with Dim() == len(b);
//   - every block has len(b) rows and at least one column;
//   - all entries finite (ErrNaNInf).
//
// Complexity: O(Σ rows·cols).
func NewJacobianFactor(terms []Term, b []float64, model noise.Model) (*JacobianFactor, error) {
	const method = "NewJacobianFactor"
	if len(terms) == 0 {
		return nil, linearErrorf(method, ErrNoKeys)
	}
	if model == nil {
		return nil, linearErrorf(method, ErrNilModel)
	}
	if len(b) != model.Dim() {
		return nil, fmt.Errorf("%s: len(b)=%d, model dim=%d: %w",
			method, len(b), model.Dim(), ErrDimensionMismatch)
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: b[%d]: %w", method, i, ErrNaNInf)
		}
	}

	f := &JacobianFactor{
		keys:   make([]symbol.Key, 0, len(terms)),
		blocks: make([]*mat.Dense, 0, len(terms)),
		b:      cloneVec(b),
		model:  model,
	}
	seen := make(map[symbol.Key]struct{}, len(terms))
	for _, t := range terms {
		if _, dup := seen[t.Key]; dup {
			return nil, fmt.Errorf("%s(%s): %w", method, t.Key, ErrDuplicateFactorKey)
		}
		seen[t.Key] = struct{}{}

		if t.A == nil {
			return nil, fmt.Errorf("%s(%s): nil block: %w", method, t.Key, ErrDimensionMismatch)
		}
		r, c := t.A.Dims()
		if r != len(b) || c < 1 {
			return nil, fmt.Errorf("%s(%s): block %dx%d, want %d rows: %w",
				method, t.Key, r, c, len(b), ErrDimensionMismatch)
		}
		A := mat.DenseCopyOf(t.A)
		for _, v := range A.RawMatrix().Data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s(%s): %w", method, t.Key, ErrNaNInf)
			}
		}
		f.keys = append(f.keys, t.Key)
		f.blocks = append(f.blocks, A)
	}

	return f, nil
}

// NewUnaryFactor builds A·x_j − b.
func NewUnaryFactor(j symbol.Key, A mat.Matrix, b []float64, model noise.Model) (*JacobianFactor, error) {
	return NewJacobianFactor([]Term{{Key: j, A: A}}, b, model)
}

// NewBinaryFactor builds A1·x_j1 + A2·x_j2 − b.
func NewBinaryFactor(j1 symbol.Key, A1 mat.Matrix, j2 symbol.Key, A2 mat.Matrix,
	b []float64, model noise.Model) (*JacobianFactor, error) {
	return NewJacobianFactor([]Term{{Key: j1, A: A1}, {Key: j2, A: A2}}, b, model)
}

// Keys returns the factor keys in term order.
func (f *JacobianFactor) Keys() []symbol.Key {
	out := make([]symbol.Key, len(f.keys))
	copy(out, f.keys)
	return out
}

// Arity is the number of variables the factor touches.
func (f *JacobianFactor) Arity() int { return len(f.keys) }

// Rows is the residual dimension.
func (f *JacobianFactor) Rows() int { return len(f.b) }

// Dim returns the column count of block i.
func (f *JacobianFactor) Dim(i int) int {
	_, c := f.blocks[i].Dims()
	return c
}

// A returns a copy of block i. Panics if i is out of range, like slice indexing.
func (f *JacobianFactor) A(i int) *mat.Dense { return mat.DenseCopyOf(f.blocks[i]) }

// B returns a copy of the target vector.
func (f *JacobianFactor) B() []float64 { return cloneVec(f.b) }

// Model returns the noise model. Models are immutable, so it is shared.
func (f *JacobianFactor) Model() noise.Model { return f.model }

// Residual returns Σ A_i·x_i − b (unwhitened).
// Errors: ErrKeyNotFound for a missing key, ErrDimensionMismatch when a value
// length differs from its block width.
func (f *JacobianFactor) Residual(x *VectorValues) ([]float64, error) {
	r := make([]float64, len(f.b))
	floats.ScaleTo(r, -1, f.b)

	var Ax mat.VecDense
	for i, k := range f.keys {
		xi, ok := x.at(k)
		if !ok {
			return nil, fmt.Errorf("JacobianFactor.Residual(%s): %w", k, ErrKeyNotFound)
		}
		if len(xi) != f.Dim(i) {
			return nil, fmt.Errorf("JacobianFactor.Residual(%s): len=%d, want %d: %w",
				k, len(xi), f.Dim(i), ErrDimensionMismatch)
		}
		Ax.Reset()
		Ax.MulVec(f.blocks[i], mat.NewVecDense(len(xi), xi))
		floats.Add(r, Ax.RawVector().Data)
	}
	return r, nil
}

// Error returns ½‖W·(Σ A_i·x_i − b)‖².
func (f *JacobianFactor) Error(x *VectorValues) (float64, error) {
	r, err := f.Residual(x)
	if err != nil {
		return 0, err
	}
	d2, err := f.model.SquaredMahalanobis(r)
	if err != nil {
		return 0, linearErrorf("JacobianFactor.Error", err)
	}
	return 0.5 * d2, nil
}

// whitened returns W·A_i for every block and W·b.
func (f *JacobianFactor) whitened() ([]*mat.Dense, []float64, error) {
	blocks := make([]*mat.Dense, len(f.blocks))
	for i, A := range f.blocks {
		WA, err := f.model.WhitenMatrix(A)
		if err != nil {
			return nil, nil, err
		}
		blocks[i] = WA
	}
	wb, err := f.model.Whiten(f.b)
	if err != nil {
		return nil, nil, err
	}
	return blocks, wb, nil
}

// Equal compares keys (in order), blocks, targets and models within tol.
func (f *JacobianFactor) Equal(o *JacobianFactor, tol float64) bool {
	if o == nil || len(f.keys) != len(o.keys) {
		return false
	}
	for i := range f.keys {
		if f.keys[i] != o.keys[i] || !mat.EqualApprox(f.blocks[i], o.blocks[i], tol) {
			return false
		}
	}
	return floats.EqualApprox(f.b, o.b, tol) && noise.Equal(f.model, o.model, tol)
}

// String renders the keys, blocks, target and model on a few lines.
func (f *JacobianFactor) String() string {
	var sb strings.Builder
	sb.WriteString("JacobianFactor")
	for i, k := range f.keys {
		fmt.Fprintf(&sb, "\n  A[%s] = %v", k, mat.Formatted(f.blocks[i], mat.Squeeze()))
	}
	fmt.Fprintf(&sb, "\n  b = %v\n  noise = %v", f.b, f.model)
	return sb.String()
}
