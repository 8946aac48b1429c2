// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// graph.go - GaussianFactorGraph container.

package linear

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/noise"
	"github.com/katalvlaran/factorgraph/symbol"
)

// GaussianFactorGraph is a collection of JacobianFactors.
// The graph is semantically unordered; factors are stored in insertion order
// so serialisation and iteration are reproducible.
type GaussianFactorGraph struct {
	factors []*JacobianFactor
}

// NewGaussianFactorGraph returns an empty graph.
func NewGaussianFactorGraph() *GaussianFactorGraph {
	return &GaussianFactorGraph{}
}

// Push appends an already-built factor. Returns ErrNilFactor for nil.
func (g *GaussianFactorGraph) Push(f *JacobianFactor) error {
	if f == nil {
		return linearErrorf("GaussianFactorGraph.Push", ErrNilFactor)
	}
	g.factors = append(g.factors, f)
	return nil
}

// Add builds and appends the unary factor A·x_j − b.
func (g *GaussianFactorGraph) Add(j symbol.Key, A mat.Matrix, b []float64, model noise.Model) error {
	f, err := NewUnaryFactor(j, A, b, model)
	if err != nil {
		return linearErrorf("GaussianFactorGraph.Add", err)
	}
	g.factors = append(g.factors, f)
	return nil
}

// AddBinary builds and appends A1·x_j1 + A2·x_j2 − b.
func (g *GaussianFactorGraph) AddBinary(j1 symbol.Key, A1 mat.Matrix, j2 symbol.Key, A2 mat.Matrix,
	b []float64, model noise.Model) error {
	f, err := NewBinaryFactor(j1, A1, j2, A2, b, model)
	if err != nil {
		return linearErrorf("GaussianFactorGraph.AddBinary", err)
	}
	g.factors = append(g.factors, f)
	return nil
}

// Len is the number of factors.
func (g *GaussianFactorGraph) Len() int { return len(g.factors) }

// At returns factor i (factors are immutable, so no copy is made).
func (g *GaussianFactorGraph) At(i int) *JacobianFactor { return g.factors[i] }

// Factors returns the factors in insertion order. The slice is a copy.
func (g *GaussianFactorGraph) Factors() []*JacobianFactor {
	out := make([]*JacobianFactor, len(g.factors))
	copy(out, g.factors)
	return out
}

// Keys returns every variable key referenced by the graph, ascending.
func (g *GaussianFactorGraph) Keys() []symbol.Key {
	seen := make(map[symbol.Key]struct{})
	var keys []symbol.Key
	for _, f := range g.factors {
		for _, k := range f.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	symbol.SortKeys(keys)
	return keys
}

// Error sums the factor errors at x.
func (g *GaussianFactorGraph) Error(x *VectorValues) (float64, error) {
	total := 0.0
	for i, f := range g.factors {
		e, err := f.Error(x)
		if err != nil {
			return 0, fmt.Errorf("GaussianFactorGraph.Error(factor %d): %w", i, err)
		}
		total += e
	}
	return total, nil
}

// Equal compares factor-by-factor in insertion order.
func (g *GaussianFactorGraph) Equal(o *GaussianFactorGraph, tol float64) bool {
	if o == nil || len(g.factors) != len(o.factors) {
		return false
	}
	for i := range g.factors {
		if !g.factors[i].Equal(o.factors[i], tol) {
			return false
		}
	}
	return true
}

// String lists the factors, one block per factor.
func (g *GaussianFactorGraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GaussianFactorGraph (%d factors)\n", len(g.factors))
	for i, f := range g.factors {
		fmt.Fprintf(&sb, "[%d] %s\n", i, f)
	}
	return sb.String()
}
