// SPDX-License-Identifier: MIT
// Package: factorgraph/mrf
//
// denoising.go - M×N grid denoising MRF as a GaussianFactorGraph.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrBadDimension); the row scheme must fit
//     the grid; both sigmas finite and > 0.
//   • Observations: one N(0, σ²) draw per cell, row-major, seeded per call.
//   • Factors, for each cell in row-major order:
//       1. data       I·x_rc = z_rc                 (σ)
//       2. left       I·x_rc − I·x_r(c−1) = 0       (σ_s)  if c > 0
//       3. up         I·x_rc − I·x_(r−1)c = 0       (σ_s)  if r > 0
//   • Returns only sentinel-wrapped errors; never panics.
//
// Complexity:
//   • Time:  O(M·N) samples and factors.
//   • Space: O(M·N) for keys, observations and the graph.

package mrf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/linear"
	"github.com/katalvlaran/factorgraph/noise"
	"github.com/katalvlaran/factorgraph/symbol"
)

const methodDenoising = "DenoisingMRF"

// Problem is a built denoising MRF with everything needed to read results
// back by row and column.
type Problem struct {
	// Graph holds the factors in emission order.
	Graph *linear.GaussianFactorGraph
	// RowLabels has one label per row, in row order.
	RowLabels []string
	// Grid is the cell layout.
	Grid Grid
	// Keys[r][c] is the variable key of cell (r,c).
	Keys [][]symbol.Key
	// Observations[r][c] is the sampled noisy value of cell (r,c).
	Observations [][]float64

	Sigma           float64
	SmoothnessSigma float64
	Seed            int64
	Scheme          RowScheme
}

// DenoisingMRF builds the M×N denoising graph and returns it with the row
// labels. See NewDenoisingProblem for the full result.
func DenoisingMRF(rows, cols int, opts ...Option) (*linear.GaussianFactorGraph, []string, error) {
	p, err := NewDenoisingProblem(rows, cols, opts...)
	if err != nil {
		return nil, nil, err
	}
	return p.Graph, p.RowLabels, nil
}

// NewDenoisingProblem builds the M×N denoising graph.
func NewDenoisingProblem(rows, cols int, opts ...Option) (*Problem, error) {
	cfg := newConfig(opts...)

	// 1) Validate in priority order: dimensions, scheme, sigmas.
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}
	if err = cfg.scheme.validate(grid); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}

	// 2) Row labels and per-cell keys.
	labels, err := cfg.scheme.Labels(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}
	keys, err := cfg.scheme.keyGrid(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}

	// 3) Noisy observations from a call-local source.
	obs := sampleObservations(grid, cfg.sigma, cfg.seed)

	// 4) Noise models and shared 1×1 blocks.
	dataModel, err := noise.FromSigmas([]float64{cfg.sigma})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}
	smoothModel, err := noise.FromSigmas([]float64{cfg.smoothnessSigma})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDenoising, err)
	}
	I := mat.NewDense(1, 1, []float64{1})
	negI := mat.NewDense(1, 1, []float64{-1})
	zero := []float64{0}

	// 5) Emit factors row-major: data, then left, then up.
	g := linear.NewGaussianFactorGraph()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			j := keys[r][c]
			if err = g.Add(j, I, []float64{obs[r][c]}, dataModel); err != nil {
				return nil, fmt.Errorf("%s: data(%d,%d): %w", methodDenoising, r, c, err)
			}
			for _, nb := range grid.PriorNeighbors(r, c) {
				jn := keys[nb[0]][nb[1]]
				if err = g.AddBinary(j, I, jn, negI, zero, smoothModel); err != nil {
					return nil, fmt.Errorf("%s: smoothness(%d,%d)-(%d,%d): %w",
						methodDenoising, r, c, nb[0], nb[1], err)
				}
			}
		}
	}

	cfg.logger.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Str("scheme", cfg.scheme.String()).
		Float64("sigma", cfg.sigma).
		Float64("smoothness_sigma", cfg.smoothnessSigma).
		Int64("seed", cfg.seed).
		Int("factors", g.Len()).
		Msg("denoising MRF built")

	return &Problem{
		Graph:           g,
		RowLabels:       labels,
		Grid:            grid,
		Keys:            keys,
		Observations:    obs,
		Sigma:           cfg.sigma,
		SmoothnessSigma: cfg.smoothnessSigma,
		Seed:            cfg.seed,
		Scheme:          cfg.scheme,
	}, nil
}

// FactorCount is the number of factors DenoisingMRF emits for an M×N grid:
// MN data factors plus M(N−1) + (M−1)N smoothness factors.
func FactorCount(rows, cols int) int {
	if rows < 1 || cols < 1 {
		return 0
	}
	g := Grid{Rows: rows, Cols: cols}
	return g.Size() + g.EdgeCount()
}

// Key returns the key of cell (row,col).
func (p *Problem) Key(row, col int) (symbol.Key, error) {
	if !p.Grid.InBounds(row, col) {
		return 0, fmt.Errorf("Problem.Key(%d,%d): outside %dx%d grid: %w",
			row, col, p.Grid.Rows, p.Grid.Cols, ErrBadDimension)
	}
	return p.Keys[row][col], nil
}

// ObservationValues returns the observations as a VectorValues (one
// 1-vector per key), a natural initial estimate for a solver.
func (p *Problem) ObservationValues() *linear.VectorValues {
	m := make(map[symbol.Key][]float64, p.Grid.Size())
	for r, row := range p.Keys {
		for c, k := range row {
			m[k] = []float64{p.Observations[r][c]}
		}
	}
	return VectorValues(m)
}

// VectorValues converts a Key → vector map into a linear.VectorValues with
// one entry per pair, values copied, keys in ascending order.
func VectorValues(m map[symbol.Key][]float64) *linear.VectorValues {
	return linear.FromMap(m)
}
