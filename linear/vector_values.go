// SPDX-License-Identifier: MIT
// Package: factorgraph/linear
//
// vector_values.go - ordered Key → vector container.
//
// Contract:
//   • Keys iterate in insertion order; FromMap inserts in ascending key order.
//   • Stored vectors are copied on the way in and on the way out.

package linear

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/factorgraph/symbol"
)

// VectorValues is an ordered Key → vector container.
//   - order keeps first-insertion order; it drives Keys() and String().
//   - values are owned copies; callers never alias internal storage.
//
// The zero value is not usable; call NewVectorValues or FromMap.
type VectorValues struct {
	order  []symbol.Key
	values map[symbol.Key][]float64
}

// NewVectorValues returns an empty container.
func NewVectorValues() *VectorValues {
	return &VectorValues{values: make(map[symbol.Key][]float64)}
}

// FromMap builds a VectorValues with one entry per map pair.
// Keys are inserted in ascending order so the result does not depend on map
// iteration. Vector dimensions are not validated; consumers that need a
// particular size check it when they read the values.
// Complexity: O(n log n + Σd).
func FromMap(m map[symbol.Key][]float64) *VectorValues {
	keys := make([]symbol.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	symbol.SortKeys(keys)

	vv := NewVectorValues()
	for _, k := range keys {
		vv.order = append(vv.order, k)
		vv.values[k] = cloneVec(m[k])
	}
	return vv
}

// ZeroLike returns a container with the same keys and dimensions as vv,
// all entries zero.
func ZeroLike(vv *VectorValues) *VectorValues {
	out := NewVectorValues()
	for _, k := range vv.order {
		out.order = append(out.order, k)
		out.values[k] = make([]float64, len(vv.values[k]))
	}
	return out
}

// Insert adds a copy of v under k. Returns ErrDuplicateKey if k exists.
func (vv *VectorValues) Insert(k symbol.Key, v []float64) error {
	if _, ok := vv.values[k]; ok {
		return fmt.Errorf("VectorValues.Insert(%s): %w", k, ErrDuplicateKey)
	}
	vv.order = append(vv.order, k)
	vv.values[k] = cloneVec(v)
	return nil
}

// Update replaces the value under an existing key with a copy of v.
// The new vector must keep the stored dimension.
func (vv *VectorValues) Update(k symbol.Key, v []float64) error {
	cur, ok := vv.values[k]
	if !ok {
		return fmt.Errorf("VectorValues.Update(%s): %w", k, ErrKeyNotFound)
	}
	if len(v) != len(cur) {
		return fmt.Errorf("VectorValues.Update(%s): len=%d, want %d: %w",
			k, len(v), len(cur), ErrDimensionMismatch)
	}
	copy(cur, v)
	return nil
}

// At returns a copy of the vector stored under k.
func (vv *VectorValues) At(k symbol.Key) ([]float64, error) {
	v, ok := vv.values[k]
	if !ok {
		return nil, fmt.Errorf("VectorValues.At(%s): %w", k, ErrKeyNotFound)
	}
	return cloneVec(v), nil
}

// Has reports whether k is present.
func (vv *VectorValues) Has(k symbol.Key) bool {
	_, ok := vv.values[k]
	return ok
}

// Len is the number of keys.
func (vv *VectorValues) Len() int { return len(vv.order) }

// Keys returns the keys in insertion order.
func (vv *VectorValues) Keys() []symbol.Key {
	out := make([]symbol.Key, len(vv.order))
	copy(out, vv.order)
	return out
}

// Dim returns the dimension stored under k, or 0 when absent.
func (vv *VectorValues) Dim(k symbol.Key) int { return len(vv.values[k]) }

// TotalDim sums the dimensions of all entries.
func (vv *VectorValues) TotalDim() int {
	n := 0
	for _, v := range vv.values {
		n += len(v)
	}
	return n
}

// Clone returns a deep copy.
func (vv *VectorValues) Clone() *VectorValues {
	out := NewVectorValues()
	for _, k := range vv.order {
		out.order = append(out.order, k)
		out.values[k] = cloneVec(vv.values[k])
	}
	return out
}

// Equal reports whether both containers hold the same key set with
// element-wise equal vectors (|a-b| ≤ tol). Insertion order is ignored.
func (vv *VectorValues) Equal(o *VectorValues, tol float64) bool {
	if o == nil || len(vv.values) != len(o.values) {
		return false
	}
	for k, a := range vv.values {
		b, ok := o.values[k]
		if !ok || len(a) != len(b) || !floats.EqualApprox(a, b, tol) {
			return false
		}
	}
	return true
}

// Vector concatenates the values in the given key order.
// Every key in ord must be present.
func (vv *VectorValues) Vector(ord Ordering) ([]float64, error) {
	var out []float64
	for _, k := range ord {
		v, ok := vv.values[k]
		if !ok {
			return nil, fmt.Errorf("VectorValues.Vector(%s): %w", k, ErrKeyNotFound)
		}
		out = append(out, v...)
	}
	return out, nil
}

// String renders one "key: [v...]" line per entry in insertion order.
func (vv *VectorValues) String() string {
	var sb strings.Builder
	for _, k := range vv.order {
		fmt.Fprintf(&sb, "%s: %v\n", k, vv.values[k])
	}
	return sb.String()
}

// at returns the stored slice without copying; internal readers only.
func (vv *VectorValues) at(k symbol.Key) ([]float64, bool) {
	v, ok := vv.values[k]
	return v, ok
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
