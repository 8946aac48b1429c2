// SPDX-License-Identifier: MIT
// Package: factorgraph/mrf
//
// rng.go - deterministic sampling of synthetic observations.
//
// Goals:
//   • Determinism: same seed ⇒ identical observations on every platform.
//   • Encapsulation: one source per call; nothing time-based or global.
//
// Concurrency:
//   • rand.PCG is not goroutine-safe. Sources never escape the builder call.

package mrf

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// newSource returns a PCG source for seed. The second PCG word is derived
// from the seed with a SplitMix64 finalizer so nearby seeds do not start
// from correlated states.
// Complexity: O(1).
func newSource(seed int64) *rand.PCG {
	s := uint64(seed)
	return rand.NewPCG(s, splitMix64(s))
}

// splitMix64 is the SplitMix64 output function (Vigna 2014).
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// sampleObservations draws one N(0, sigma²) scalar per cell of g in
// row-major order and returns them as obs[row][col].
// Complexity: O(M·N) time and memory.
func sampleObservations(g Grid, sigma float64, seed int64) [][]float64 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: newSource(seed)}
	obs := make([][]float64, g.Rows)
	for r := 0; r < g.Rows; r++ {
		obs[r] = make([]float64, g.Cols)
		for c := 0; c < g.Cols; c++ {
			obs[r][c] = dist.Rand()
		}
	}
	return obs
}
