package mwf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artisep/gevd"
)

// BuildFilter assembles the filter matrix W from a full eigendecomposition
// and a retained rank.
//
// With V the full eigenvector basis and Δ diagonal with Δₖ = (λₖ−1)/λₖ for
// retained k and zero otherwise, W = V·Δ·V⁻¹. The construction zeroes the
// filter's action outside the retained subspace and applies, inside it, the
// minimum-mean-square-error attenuation implied by the artifact-to-background
// ratio λₖ. V⁻¹ is never formed explicitly: the product is obtained from an
// LU solve of X·V = V·Δ, which keeps conditioning error down.
//
// rank 0 returns the zero matrix (identity filter action). The basis
// condition estimate is checked against maxCondition; a nearly collinear
// basis fails with gevd.ErrNumericalInstability instead of silently
// producing a distorted filter.
func BuildFilter(d *gevd.Decomposition, rank int, maxCondition float64) (*mat.Dense, error) {
	dim := d.Dim()
	if d.Len() != dim {
		return nil, fmt.Errorf("BuildFilter: %d eigenpairs for dim %d, need a full basis: %w", d.Len(), dim, gevd.ErrBadDecomposition)
	}
	if rank < 0 || rank > dim {
		return nil, fmt.Errorf("BuildFilter: rank %d outside [0,%d]: %w", rank, dim, ErrInvalidRank)
	}

	w := mat.NewDense(dim, dim, nil)
	if rank == 0 {
		return w, nil
	}

	// V with all eigenvectors, A = V·Δ (only the retained columns survive).
	v := mat.NewDense(dim, dim, nil)
	a := mat.NewDense(dim, dim, nil)
	scaled := make([]float64, dim)
	for k := 0; k < dim; k++ {
		p := d.Pair(k)
		v.SetCol(k, p.Vector)
		if k >= rank {
			continue
		}
		delta := (p.Value - 1) / p.Value
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			return nil, fmt.Errorf("BuildFilter: attenuation for eigenvalue %v is not finite: %w", p.Value, gevd.ErrNumericalInstability)
		}
		for i := 0; i < dim; i++ {
			scaled[i] = p.Vector[i] * delta
		}
		a.SetCol(k, scaled)
	}

	var lu mat.LU
	lu.Factorize(v)
	if cond := lu.Cond(); cond > maxCondition || math.IsNaN(cond) {
		return nil, fmt.Errorf("BuildFilter: eigenvector basis condition %.3g exceeds limit %.3g: %w", cond, maxCondition, gevd.ErrNumericalInstability)
	}

	// X·V = A  ⇔  Vᵀ·Xᵀ = Aᵀ, solved against the factorized V.
	var xt mat.Dense
	if err := lu.SolveTo(&xt, true, a.T()); err != nil {
		return nil, fmt.Errorf("BuildFilter: basis solve: %v: %w", err, gevd.ErrNumericalInstability)
	}
	w.CloneFrom(xt.T())

	return w, nil
}
