package gevd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artisep/cov"
)

// Solve decomposes the pencil Rd·v = λ·Ry·v for the given covariance pair.
//
// Ry is first regularized to Ry' = Ry + ε·(trace(Ry)/dim)·I, applied
// unconditionally: correlated channels routinely push Ry to the edge of
// singularity, and the trace scaling keeps the shift proportional to the
// signal's energy rather than an absolute magic number. epsilon must be
// non-negative; the engine's options layer supplies and validates it.
//
// The reduction is Cholesky whitening (see the package doc), so the
// eigenvector basis is Ry'-orthonormal. Eigenpairs are returned descending;
// the ascending order of the symmetric eigensolver is reversed, which keeps
// ties in a stable, deterministic order.
//
// Errors: ErrNumericalInstability when the regularized Ry fails to
// factorize, a whitening solve reports ill-conditioning, or any eigenvalue
// is NaN/Inf.
func Solve(p *cov.Pair, epsilon float64) (*Decomposition, error) {
	dim := p.Ry.SymmetricDim()

	// Regularize the background covariance.
	ry := mat.NewSymDense(dim, nil)
	ry.CopySym(p.Ry)
	shift := epsilon * mat.Trace(p.Ry) / float64(dim)
	for i := 0; i < dim; i++ {
		ry.SetSym(i, i, ry.At(i, i)+shift)
	}

	// Whitening factor Ry' = L·Lᵀ.
	var chol mat.Cholesky
	if ok := chol.Factorize(ry); !ok {
		return nil, fmt.Errorf("Solve: background covariance not positive definite after regularization: %w", ErrNumericalInstability)
	}
	var l mat.TriDense
	chol.LTo(&l)

	// C = L⁻¹·Rd·L⁻ᵀ via two triangular solves.
	var y mat.Dense
	if err := y.Solve(&l, p.Rd); err != nil {
		return nil, fmt.Errorf("Solve: whitening solve: %v: %w", err, ErrNumericalInstability)
	}
	var c mat.Dense
	if err := c.Solve(&l, y.T()); err != nil {
		return nil, fmt.Errorf("Solve: whitening solve: %v: %w", err, ErrNumericalInstability)
	}

	// Symmetrize before the symmetric eigensolver; the two solves leave
	// float-level asymmetry.
	sym := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			sym.SetSym(i, j, (c.At(i, j)+c.At(j, i))/2)
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("Solve: eigendecomposition failed: %w", ErrNumericalInstability)
	}
	vals := es.Values(nil)
	var u mat.Dense
	es.VectorsTo(&u)

	// Back-transform the whitened eigenvectors: Lᵀ·V = U.
	var v mat.Dense
	if err := v.Solve(l.T(), &u); err != nil {
		return nil, fmt.Errorf("Solve: back-transform solve: %v: %w", err, ErrNumericalInstability)
	}

	// Ascending → descending.
	pairs := make([]Eigenpair, 0, dim)
	for k := dim - 1; k >= 0; k-- {
		if math.IsNaN(vals[k]) || math.IsInf(vals[k], 0) {
			return nil, fmt.Errorf("Solve: non-finite eigenvalue: %w", ErrNumericalInstability)
		}
		vec := make([]float64, dim)
		mat.Col(vec, k, &v)
		pairs = append(pairs, Eigenpair{Value: vals[k], Vector: vec})
	}

	return &Decomposition{dim: dim, pairs: pairs}, nil
}
