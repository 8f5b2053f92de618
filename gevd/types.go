package gevd

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNumericalInstability indicates that the pencil could not be solved to
	// working precision: the regularized background covariance is still
	// singular, a whitening solve was ill-conditioned, or an eigenvalue came
	// back non-finite. Propagated rather than degraded — a garbage filter on
	// physiological data is worse than a visible failure.
	ErrNumericalInstability = errors.New("gevd: numerically unstable problem")

	// ErrBadDecomposition indicates an externally assembled Decomposition that
	// violates the package invariants (empty, ragged vectors, unsorted or
	// non-finite eigenvalues).
	ErrBadDecomposition = errors.New("gevd: invalid decomposition")
)

// Eigenpair is one generalized eigenvalue with its eigenvector in the
// embedded-channel space. Value is the artifact-to-background energy ratio
// along Vector; Value > 1 means artifact-dominated.
type Eigenpair struct {
	Value  float64
	Vector []float64
}

// Decomposition is an ordered set of eigenpairs of one pencil, sorted by
// eigenvalue descending. Immutable after construction.
type Decomposition struct {
	dim   int
	pairs []Eigenpair
}

// NewDecomposition assembles a Decomposition from pre-computed eigenpairs.
// Pairs must be non-empty, share one vector dimension, be sorted descending
// by eigenvalue and contain only finite values. Exists so that rank
// selection and filter construction can be driven by decompositions built
// outside Solve (tests, externally whitened problems).
func NewDecomposition(pairs []Eigenpair) (*Decomposition, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("NewDecomposition: no eigenpairs: %w", ErrBadDecomposition)
	}
	dim := len(pairs[0].Vector)
	if dim == 0 {
		return nil, fmt.Errorf("NewDecomposition: empty eigenvector: %w", ErrBadDecomposition)
	}
	for i, p := range pairs {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return nil, fmt.Errorf("NewDecomposition: non-finite eigenvalue at %d: %w", i, ErrBadDecomposition)
		}
		if len(p.Vector) != dim {
			return nil, fmt.Errorf("NewDecomposition: eigenvector %d has dim %d, want %d: %w", i, len(p.Vector), dim, ErrBadDecomposition)
		}
		if i > 0 && pairs[i-1].Value < p.Value {
			return nil, fmt.Errorf("NewDecomposition: eigenvalues not descending at %d: %w", i, ErrBadDecomposition)
		}
	}

	own := make([]Eigenpair, len(pairs))
	for i, p := range pairs {
		v := make([]float64, dim)
		copy(v, p.Vector)
		own[i] = Eigenpair{Value: p.Value, Vector: v}
	}

	return &Decomposition{dim: dim, pairs: own}, nil
}

// Dim returns the embedded-channel dimension of the eigenvectors.
func (d *Decomposition) Dim() int { return d.dim }

// Len returns the number of eigenpairs.
func (d *Decomposition) Len() int { return len(d.pairs) }

// Pair returns the i-th eigenpair (0 = largest eigenvalue). The returned
// vector is a view; callers must not modify it.
func (d *Decomposition) Pair(i int) Eigenpair { return d.pairs[i] }

// Values returns the eigenvalues, descending, as a fresh slice.
func (d *Decomposition) Values() []float64 {
	out := make([]float64, len(d.pairs))
	for i, p := range d.pairs {
		out[i] = p.Value
	}

	return out
}
