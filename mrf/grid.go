// SPDX-License-Identifier: MIT
// Package: factorgraph/mrf
//
// grid.go - row-major M×N cell arithmetic.

package mrf

import "fmt"

// priorOffsets lists the neighbours of (r,c) already visited in row-major
// order: left (r, c−1) first, then up (r−1, c).
var priorOffsets = [2][2]int{{0, -1}, {-1, 0}}

// Grid is an immutable M×N row-major cell layout.
type Grid struct {
	Rows, Cols int
}

// NewGrid validates rows ≥ 1 and cols ≥ 1.
// Complexity: O(1).
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("NewGrid: rows=%d, cols=%d: %w", rows, cols, ErrBadDimension)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Size is the number of cells.
func (g Grid) Size() int { return g.Rows * g.Cols }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index maps (row,col) to the row-major index row*Cols + col.
// Complexity: O(1).
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (row, col int) { return idx / g.Cols, idx % g.Cols }

// PriorNeighbors returns the in-bounds left and upper neighbours of
// (row,col), in that order. Row 0 has no upper neighbour and column 0 no
// left one, so a corner cell (0,0) has none.
// Complexity: O(1).
func (g Grid) PriorNeighbors(row, col int) [][2]int {
	out := make([][2]int, 0, len(priorOffsets))
	for _, d := range priorOffsets {
		nr, nc := row+d[0], col+d[1]
		if g.InBounds(nr, nc) {
			out = append(out, [2]int{nr, nc})
		}
	}
	return out
}

// EdgeCount is the number of horizontal plus vertical neighbour pairs:
// M(N−1) + (M−1)N.
func (g Grid) EdgeCount() int {
	return g.Rows*(g.Cols-1) + (g.Rows-1)*g.Cols
}
