package mwf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/artisep/gevd"
	"github.com/katalvlaran/artisep/mwf"
)

// TestBuildFilter_IdentityBasis pins the construction on the standard
// basis: with V = I, W = V·Δ·V⁻¹ reduces to the diagonal attenuation
// matrix Δ itself.
func TestBuildFilter_IdentityBasis(t *testing.T) {
	dec := decompositionWithValues(t, 4, 0.25)

	w, err := mwf.BuildFilter(dec, 1, mwf.DefaultMaxCondition)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, w.At(0, 0), 1e-12, "(λ−1)/λ for λ=4")
	assert.InDelta(t, 0.0, w.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, w.At(1, 0), 1e-12)
	assert.InDelta(t, 0.0, w.At(1, 1), 1e-12, "discarded direction carries no action")
}

// TestBuildFilter_RankZero verifies the identity-filter degenerate case:
// the zero matrix, no error.
func TestBuildFilter_RankZero(t *testing.T) {
	dec := decompositionWithValues(t, 0.9, 0.1)

	w, err := mwf.BuildFilter(dec, 0, mwf.DefaultMaxCondition)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, 0.0, w.At(i, j))
		}
	}
}

// TestBuildFilter_ObliqueBasis verifies the solve against a hand-invertible
// non-orthogonal basis: V = [[1,1],[0,1]], Δ = diag(1/2, 0) gives
// W = V·Δ·V⁻¹ = [[1/2, -1/2],[0, 0]].
func TestBuildFilter_ObliqueBasis(t *testing.T) {
	dec, err := gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: 2, Vector: []float64{1, 0}},
		{Value: 0.5, Vector: []float64{1, 1}},
	})
	require.NoError(t, err)

	w, err := mwf.BuildFilter(dec, 1, mwf.DefaultMaxCondition)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, w.At(0, 0), 1e-12)
	assert.InDelta(t, -0.5, w.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, w.At(1, 0), 1e-12)
	assert.InDelta(t, 0.0, w.At(1, 1), 1e-12)
}

// TestBuildFilter_CollinearBasis verifies the conditioning gate: an almost
// collinear eigenvector basis must fail, not distort.
func TestBuildFilter_CollinearBasis(t *testing.T) {
	dec, err := gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: 3, Vector: []float64{1, 1}},
		{Value: 2, Vector: []float64{1, 1 + 1e-14}},
	})
	require.NoError(t, err)

	_, err = mwf.BuildFilter(dec, 1, mwf.DefaultMaxCondition)
	assert.ErrorIs(t, err, gevd.ErrNumericalInstability)
}

// TestBuildFilter_Preconditions covers rank bounds and the full-basis
// requirement.
func TestBuildFilter_Preconditions(t *testing.T) {
	dec := decompositionWithValues(t, 2, 0.5)

	_, err := mwf.BuildFilter(dec, 3, mwf.DefaultMaxCondition)
	assert.ErrorIs(t, err, mwf.ErrInvalidRank, "rank beyond dimension")

	_, err = mwf.BuildFilter(dec, -1, mwf.DefaultMaxCondition)
	assert.ErrorIs(t, err, mwf.ErrInvalidRank, "negative rank")

	partial, err := gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: 2, Vector: []float64{1, 0, 0}},
	})
	require.NoError(t, err)
	_, err = mwf.BuildFilter(partial, 1, mwf.DefaultMaxCondition)
	assert.ErrorIs(t, err, gevd.ErrBadDecomposition, "partial basis cannot be inverted")
}
