package mwf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/artisep/cov"
	"github.com/katalvlaran/artisep/embed"
	"github.com/katalvlaran/artisep/gevd"
	"github.com/katalvlaran/artisep/signal"
)

// Run executes the full artifact-separation pipeline on one signal/mask
// pair: embed → covariance pair → generalized eigendecomposition → rank
// selection → filter construction → filter application.
//
// opts may be nil for DefaultOptions. Zero-valued Epsilon/MaxCondition fall
// back to their defaults; negative Epsilon or MaxCondition ≤ 1 is
// ErrBadOptions.
//
// All input violations surface eagerly, before any numerical work:
// signal.ErrInvalidMask (length mismatch or single-class mask),
// embed.ErrInvalidEmbedding (delay too large), cov.ErrInsufficientData
// (segment shorter than the embedded dimension). Numerical failures surface
// as gevd.ErrNumericalInstability. None are retried — the pipeline is a pure
// computation with no transient failure modes; the caller adjusts the
// configuration and calls again.
func Run(sig *signal.Buffer, m signal.Mask, opts *Options) (*Result, error) {
	if sig == nil {
		return nil, fmt.Errorf("Run: nil signal: %w", signal.ErrInvalidSignal)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxCondition == 0 {
		o.MaxCondition = DefaultMaxCondition
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) {
		return nil, fmt.Errorf("Run: epsilon %v: %w", o.Epsilon, ErrBadOptions)
	}
	if o.MaxCondition <= 1 || math.IsNaN(o.MaxCondition) {
		return nil, fmt.Errorf("Run: condition limit %v: %w", o.MaxCondition, ErrBadOptions)
	}

	if err := m.Validate(sig.Samples()); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	emb, err := embed.New(sig, o.Delay)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	pair, err := cov.Estimate(emb, m)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	dec, err := gevd.Solve(pair, o.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rank, err := SelectRank(dec, o.Rank)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	w, err := BuildFilter(dec, rank, o.MaxCondition)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	artifact, cleaned, err := Apply(emb, w)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return &Result{
		Cleaned:     cleaned,
		Artifact:    artifact,
		Rank:        rank,
		Eigenvalues: dec.Values(),
	}, nil
}
