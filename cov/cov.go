package cov

import (
	"errors"
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artisep/embed"
	"github.com/katalvlaran/artisep/signal"
)

// ErrInsufficientData indicates that one of the mask classes has fewer valid
// (non-edge) samples than the embedded dimension, so its covariance would be
// rank-deficient beyond usable repair. This is reported rather than patched:
// a degenerate covariance silently yields a meaningless filter.
var ErrInsufficientData = errors.New("cov: not enough samples in segment")

// Pair holds the two covariance matrices of the embedded signal, both
// dim×dim symmetric positive semi-definite, plus the sample counts they
// were estimated from.
//
// Rd is the artifact-segment covariance, Ry the background-segment
// covariance (background-only convention, see the package doc).
type Pair struct {
	Rd *mat.SymDense
	Ry *mat.SymDense

	// ArtifactSamples and BackgroundSamples are the valid sample counts
	// underlying Rd and Ry respectively.
	ArtifactSamples   int
	BackgroundSamples int
}

// Estimate computes the covariance pair of the embedded view restricted to
// the valid (full-window) sample range, split by the mask.
//
// Errors:
//   - signal.ErrInvalidMask — mask length mismatch or a class with no
//     members at all.
//   - ErrInsufficientData — a class has fewer valid samples than the
//     embedded dimension (or fewer than two, which the n−1 normalization
//     cannot handle).
func Estimate(e *embed.Embedding, m signal.Mask) (*Pair, error) {
	if err := m.Validate(e.Signal().Samples()); err != nil {
		return nil, fmt.Errorf("Estimate: %w", err)
	}

	dim := e.Dim()
	lo, hi := e.ValidRange()

	// Count class membership inside the valid range first, so the
	// insufficiency check fires before any accumulation work.
	var nArt, nBg int
	for t := lo; t < hi; t++ {
		if m[t] {
			nArt++
		} else {
			nBg++
		}
	}
	if nArt < dim || nArt < 2 {
		return nil, fmt.Errorf("Estimate: artifact segment has %d valid samples, embedded dim %d: %w", nArt, dim, ErrInsufficientData)
	}
	if nBg < dim || nBg < 2 {
		return nil, fmt.Errorf("Estimate: background segment has %d valid samples, embedded dim %d: %w", nBg, dim, ErrInsufficientData)
	}

	rd := estimateClass(e, m, true, nArt)
	ry := estimateClass(e, m, false, nBg)

	return &Pair{
		Rd:                rd,
		Ry:                ry,
		ArtifactSamples:   nArt,
		BackgroundSamples: nBg,
	}, nil
}

// estimateClass accumulates the centered covariance of one mask class.
// Two passes in ascending sample order: mean, then centered outer products.
// The fixed order is what makes the reduction deterministic; do not
// parallelize across samples without a fixed-order merge.
func estimateClass(e *embed.Embedding, m signal.Mask, artifact bool, n int) *mat.SymDense {
	dim := e.Dim()
	lo, hi := e.ValidRange()

	vec := make([]float64, dim)
	mean := make([]float64, dim)
	for t := lo; t < hi; t++ {
		if m[t] != artifact {
			continue
		}
		e.VectorInto(vec, t)
		vek.Add_Inplace(mean, vec)
	}
	vek.DivNumber_Inplace(mean, float64(n))

	centered := make([]float64, dim)
	scratch := make([]float64, dim)
	acc := make([]float64, dim*dim)
	for t := lo; t < hi; t++ {
		if m[t] != artifact {
			continue
		}
		e.VectorInto(vec, t)
		vek.Sub_Into(centered, vec, mean)
		for i := 0; i < dim; i++ {
			xi := centered[i]
			if xi == 0 {
				continue
			}
			vek.MulNumber_Into(scratch, centered, xi)
			vek.Add_Inplace(acc[i*dim:(i+1)*dim], scratch)
		}
	}
	vek.DivNumber_Inplace(acc, float64(n-1))

	// acc is exactly symmetric by construction (commuting products summed in
	// identical order per mirrored entry); read the upper triangle.
	sym := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			sym.SetSym(i, j, acc[i*dim+j])
		}
	}

	return sym
}
