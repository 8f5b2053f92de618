package gevd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artisep/cov"
	"github.com/katalvlaran/artisep/gevd"
)

func symFromFlat(dim int, flat []float64) *mat.SymDense {
	s := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			s.SetSym(i, j, flat[i*dim+j])
		}
	}

	return s
}

// TestSolve_DiagonalPencil pins Solve against an analytically known case:
// Rd = diag(2, 0.5), Ry = I ⇒ eigenvalues {2, 0.5}, descending.
func TestSolve_DiagonalPencil(t *testing.T) {
	pair := &cov.Pair{
		Rd: symFromFlat(2, []float64{2, 0, 0, 0.5}),
		Ry: symFromFlat(2, []float64{1, 0, 0, 1}),
	}

	dec, err := gevd.Solve(pair, 0)
	require.NoError(t, err)

	require.Equal(t, 2, dec.Len())
	assert.InDelta(t, 2.0, dec.Pair(0).Value, 1e-10)
	assert.InDelta(t, 0.5, dec.Pair(1).Value, 1e-10)
}

// TestSolve_PencilResidual verifies the defining identity Rd·v = λ·Ry·v for
// every returned pair of a generic positive-definite pencil (ε = 0 so the
// residual closes exactly), plus ordering and Ry-orthonormality of the
// eigenvector basis.
func TestSolve_PencilResidual(t *testing.T) {
	rd := symFromFlat(3, []float64{
		2, 0, 1,
		0, 2, 0,
		1, 0, 5,
	})
	ry := symFromFlat(3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	pair := &cov.Pair{Rd: rd, Ry: ry}

	dec, err := gevd.Solve(pair, 0)
	require.NoError(t, err)
	require.Equal(t, 3, dec.Len())

	for k := 0; k < dec.Len(); k++ {
		if k > 0 {
			assert.GreaterOrEqual(t, dec.Pair(k-1).Value, dec.Pair(k).Value, "eigenvalues must be non-increasing")
		}

		p := dec.Pair(k)
		v := mat.NewVecDense(3, p.Vector)
		var lhs, rhs mat.VecDense
		lhs.MulVec(rd, v)
		rhs.MulVec(ry, v)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, lhs.AtVec(i), p.Value*rhs.AtVec(i), 1e-8, "pencil residual, pair %d row %d", k, i)
		}

		// v_kᵀ·Ry·v_k == 1 under the whitening normalization.
		var ryv mat.VecDense
		ryv.MulVec(ry, v)
		assert.InDelta(t, 1.0, mat.Dot(v, &ryv), 1e-8, "Ry-orthonormality, pair %d", k)
	}
}

// TestSolve_SingularBackground verifies that a hopeless background
// covariance (all zeros, no regularization) fails loudly.
func TestSolve_SingularBackground(t *testing.T) {
	pair := &cov.Pair{
		Rd: symFromFlat(2, []float64{1, 0, 0, 1}),
		Ry: mat.NewSymDense(2, nil),
	}

	_, err := gevd.Solve(pair, 0)
	assert.ErrorIs(t, err, gevd.ErrNumericalInstability)
}

// TestSolve_RegularizationRescues verifies that the unconditional
// ε·(trace/dim)·I shift makes a rank-deficient but non-zero background
// usable: two perfectly correlated channels.
func TestSolve_RegularizationRescues(t *testing.T) {
	pair := &cov.Pair{
		Rd: symFromFlat(2, []float64{3, 0, 0, 3}),
		Ry: symFromFlat(2, []float64{1, 1, 1, 1}),
	}

	_, err := gevd.Solve(pair, 0)
	assert.ErrorIs(t, err, gevd.ErrNumericalInstability, "singular without regularization")

	dec, err := gevd.Solve(pair, 1e-8)
	require.NoError(t, err, "regularized pencil must solve")
	assert.Equal(t, 2, dec.Len())
	assert.GreaterOrEqual(t, dec.Pair(0).Value, dec.Pair(1).Value)
}

// TestNewDecomposition_Validation covers the external-assembly invariants.
func TestNewDecomposition_Validation(t *testing.T) {
	_, err := gevd.NewDecomposition(nil)
	assert.ErrorIs(t, err, gevd.ErrBadDecomposition, "empty set")

	_, err = gevd.NewDecomposition([]gevd.Eigenpair{{Value: 1, Vector: nil}})
	assert.ErrorIs(t, err, gevd.ErrBadDecomposition, "empty vector")

	_, err = gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: 1, Vector: []float64{1, 0}},
		{Value: 2, Vector: []float64{0, 1}},
	})
	assert.ErrorIs(t, err, gevd.ErrBadDecomposition, "ascending order rejected")

	_, err = gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: math.Inf(1), Vector: []float64{1, 0}},
	})
	assert.ErrorIs(t, err, gevd.ErrBadDecomposition, "non-finite eigenvalue")

	_, err = gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: 2, Vector: []float64{1, 0}},
		{Value: 1, Vector: []float64{0, 1, 0}},
	})
	assert.ErrorIs(t, err, gevd.ErrBadDecomposition, "ragged vectors")

	dec, err := gevd.NewDecomposition([]gevd.Eigenpair{
		{Value: 2, Vector: []float64{1, 0}},
		{Value: 1, Vector: []float64{0, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, dec.Dim())
	assert.Equal(t, []float64{2, 1}, dec.Values())
}

// TestDecomposition_Immutable verifies that NewDecomposition copies its
// input vectors.
func TestDecomposition_Immutable(t *testing.T) {
	vec := []float64{1, 0}
	dec, err := gevd.NewDecomposition([]gevd.Eigenpair{{Value: 2, Vector: vec}})
	require.NoError(t, err)

	vec[0] = 99
	assert.Equal(t, 1.0, dec.Pair(0).Vector[0])
}
