package linear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/linear"
	"github.com/katalvlaran/factorgraph/symbol"
)

const tol = 1e-12

var (
	x1 = symbol.MustNew('x', 1)
	x2 = symbol.MustNew('x', 2)
	x3 = symbol.MustNew('x', 3)
)

// TestFromMap_OneEntryPerKey checks size, values and ascending insertion.
func TestFromMap_OneEntryPerKey(t *testing.T) {
	in := map[symbol.Key][]float64{
		x3: {3},
		x1: {1},
		x2: {2, 20},
	}
	vv := linear.FromMap(in)

	require.Equal(t, len(in), vv.Len())
	assert.Equal(t, []symbol.Key{x1, x2, x3}, vv.Keys())
	for k, want := range in {
		got, err := vv.At(k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "key %s", k)
	}
	assert.Equal(t, 4, vv.TotalDim())
	assert.Equal(t, 2, vv.Dim(x2))
}

// TestFromMap_CopiesValues ensures the builder does not alias caller slices.
func TestFromMap_CopiesValues(t *testing.T) {
	v := []float64{1}
	vv := linear.FromMap(map[symbol.Key][]float64{x1: v})
	v[0] = 99

	got, err := vv.At(x1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)

	got[0] = 42
	again, _ := vv.At(x1)
	assert.Equal(t, []float64{1}, again, "At must return a copy")
}

// TestFromMap_Deterministic builds twice from the same map and compares.
func TestFromMap_Deterministic(t *testing.T) {
	in := map[symbol.Key][]float64{x1: {1}, x2: {2}, x3: {3}}
	a := linear.FromMap(in)
	b := linear.FromMap(in)
	assert.Equal(t, a.Keys(), b.Keys())
	assert.True(t, a.Equal(b, 0))
	assert.Equal(t, a.String(), b.String())
}

// TestFromMap_Empty yields an empty container.
func TestFromMap_Empty(t *testing.T) {
	vv := linear.FromMap(nil)
	assert.Equal(t, 0, vv.Len())
	assert.Empty(t, vv.Keys())
}

// TestVectorValues_InsertUpdate covers duplicate and missing-key errors.
func TestVectorValues_InsertUpdate(t *testing.T) {
	vv := linear.NewVectorValues()
	require.NoError(t, vv.Insert(x2, []float64{1}))
	require.NoError(t, vv.Insert(x1, []float64{2}))
	assert.ErrorIs(t, vv.Insert(x2, []float64{3}), linear.ErrDuplicateKey)
	assert.Equal(t, []symbol.Key{x2, x1}, vv.Keys(), "insertion order is kept")

	require.NoError(t, vv.Update(x2, []float64{5}))
	got, _ := vv.At(x2)
	assert.Equal(t, []float64{5}, got)

	assert.ErrorIs(t, vv.Update(x3, []float64{1}), linear.ErrKeyNotFound)
	assert.ErrorIs(t, vv.Update(x2, []float64{1, 2}), linear.ErrDimensionMismatch)

	_, err := vv.At(x3)
	assert.ErrorIs(t, err, linear.ErrKeyNotFound)
	assert.True(t, vv.Has(x1))
	assert.False(t, vv.Has(x3))
}

// TestVectorValues_CloneZeroVector covers Clone, ZeroLike, Vector and Equal.
func TestVectorValues_CloneZeroVector(t *testing.T) {
	vv := linear.FromMap(map[symbol.Key][]float64{x1: {1, 2}, x2: {3}})

	c := vv.Clone()
	require.True(t, vv.Equal(c, 0))
	require.NoError(t, c.Update(x2, []float64{4}))
	assert.False(t, vv.Equal(c, tol))

	z := linear.ZeroLike(vv)
	zv, err := z.Vector(linear.Ordering{x1, x2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, zv)

	cat, err := vv.Vector(linear.Ordering{x2, x1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, cat)

	_, err = vv.Vector(linear.Ordering{x3})
	assert.ErrorIs(t, err, linear.ErrKeyNotFound)

	assert.False(t, vv.Equal(nil, 0))
}
