// Package gevd solves the symmetric-definite generalized eigenproblem
// Rd·v = λ·Ry·v that underlies the artifact filter: eigenvalues are
// artifact-to-background energy ratios, eigenvectors the directions that
// realize them.
//
// The pencil is reduced by Cholesky whitening: Ry is regularized by
// ε·(trace/dim)·I, factorized as L·Lᵀ, the symmetric matrix L⁻¹·Rd·L⁻ᵀ is
// eigendecomposed, and the eigenvectors are transformed back through Lᵀ.
// The returned basis therefore satisfies Vᵀ·Ry'·V = I with Ry' the
// regularized background covariance. Eigenpairs come back sorted by
// eigenvalue, descending; ties keep the solver's ordering.
package gevd
