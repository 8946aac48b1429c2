// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// system.go - dense whitened least-squares system for external solvers.
//
// Contract:
//   • Ordering fixes the column layout: key ord[i] owns a contiguous column
//     range whose width is the block width used by the factors.
//   • Factors fill rows in insertion order; factor i owns rows
//     [off_i, off_i + Rows_i).
//   • Entries are whitened: rows are W·A and W·b, so the least-squares
//     problem is min ‖A x − b‖² with unit noise.
//
// Complexity:
//   • Time:  O(R·C) for zero-fill plus O(Σ block sizes).
//   • Space: O(R·C) dense output.

package linear

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/symbol"
)

// Ordering is a sequence of distinct keys that fixes variable layout.
type Ordering []symbol.Key

// NaturalOrdering returns the graph keys ascending.
func NaturalOrdering(g *GaussianFactorGraph) Ordering { return Ordering(g.Keys()) }

// Index returns the position of k, or -1 when absent.
func (o Ordering) Index(k symbol.Key) int {
	for i, key := range o {
		if key == k {
			return i
		}
	}
	return -1
}

// Dims returns the per-key block width used by the graph factors.
// Returns ErrDimensionMismatch when two factors disagree on a key width.
func (g *GaussianFactorGraph) Dims() (map[symbol.Key]int, error) {
	dims := make(map[symbol.Key]int)
	for fi, f := range g.factors {
		for i, k := range f.keys {
			d := f.Dim(i)
			if prev, ok := dims[k]; ok && prev != d {
				return nil, fmt.Errorf("GaussianFactorGraph.Dims(factor %d, %s): width %d vs %d: %w",
					fi, k, d, prev, ErrDimensionMismatch)
			}
			dims[k] = d
		}
	}
	return dims, nil
}

// Jacobian assembles the whitened dense system (A, b) in the given ordering.
// Every graph key must appear in ord (ErrKeyNotFound otherwise); keys of ord
// not used by any factor produce ErrKeyNotFound too, since their width is
// unknown. An empty graph yields ErrNoKeys.
func (g *GaussianFactorGraph) Jacobian(ord Ordering) (*mat.Dense, *mat.VecDense, error) {
	const method = "GaussianFactorGraph.Jacobian"
	if len(g.factors) == 0 {
		return nil, nil, linearErrorf(method, ErrNoKeys)
	}
	dims, err := g.Dims()
	if err != nil {
		return nil, nil, linearErrorf(method, err)
	}

	// Column offsets follow the ordering.
	colOff := make(map[symbol.Key]int, len(ord))
	cols := 0
	for _, k := range ord {
		d, ok := dims[k]
		if !ok {
			return nil, nil, fmt.Errorf("%s: ordering key %s unused: %w", method, k, ErrKeyNotFound)
		}
		if _, dup := colOff[k]; dup {
			return nil, nil, fmt.Errorf("%s: ordering key %s repeated: %w", method, k, ErrDuplicateKey)
		}
		colOff[k] = cols
		cols += d
	}
	if len(colOff) != len(dims) {
		var missing []symbol.Key
		for k := range dims {
			if _, ok := colOff[k]; !ok {
				missing = append(missing, k)
			}
		}
		symbol.SortKeys(missing)
		return nil, nil, fmt.Errorf("%s: keys %v missing from ordering: %w", method, missing, ErrKeyNotFound)
	}

	rows := 0
	for _, f := range g.factors {
		rows += f.Rows()
	}

	A := mat.NewDense(rows, cols, nil)
	b := mat.NewVecDense(rows, nil)
	r0 := 0
	for _, f := range g.factors {
		blocks, wb, err := f.whitened()
		if err != nil {
			return nil, nil, linearErrorf(method, err)
		}
		n := f.Rows()
		for i, k := range f.keys {
			c0 := colOff[k]
			dst := A.Slice(r0, r0+n, c0, c0+f.Dim(i)).(*mat.Dense)
			dst.Copy(blocks[i])
		}
		for i, v := range wb {
			b.SetVec(r0+i, v)
		}
		r0 += n
	}

	return A, b, nil
}
