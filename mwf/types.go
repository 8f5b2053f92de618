package mwf

import (
	"errors"

	"github.com/katalvlaran/artisep/signal"
)

// Numeric policy defaults. DefaultOptions is the single source of truth for
// zero-value behavior; these constants MUST match it.
const (
	// DefaultEpsilon scales the unconditional diagonal regularization of the
	// background covariance, relative to its mean diagonal energy
	// (trace/dim).
	DefaultEpsilon = 1e-8

	// DefaultMaxCondition bounds the eigenvector-basis condition estimate
	// accepted by the filter builder. Beyond it the basis is treated as
	// numerically collinear and the computation fails loudly.
	DefaultMaxCondition = 1e12
)

var (
	// ErrInvalidRank indicates a fixed rank request of K ≤ 0.
	ErrInvalidRank = errors.New("mwf: fixed rank must be positive")

	// ErrBadOptions indicates a negative Epsilon or a MaxCondition ≤ 1;
	// zero values mean "use the default" and are always accepted.
	ErrBadOptions = errors.New("mwf: invalid options")
)

// RankMode selects how many leading eigenpairs form the artifact subspace.
type RankMode int

const (
	// PositiveEigenvalueCount retains the longest leading prefix of
	// eigenpairs with λ > 1 (artifact energy exceeding background energy).
	// Because eigenvalues are sorted descending this is a prefix, not a
	// filter: an isolated λ > 1 appearing after a smaller eigenvalue is
	// deliberately ignored — only the dominant contiguous artifact subspace
	// is trusted.
	PositiveEigenvalueCount RankMode = iota

	// FixedRank retains the first K eigenpairs regardless of eigenvalue.
	FixedRank
)

// RankPolicy is the rank selection rule: a mode plus, for FixedRank, the
// requested K.
type RankPolicy struct {
	Mode RankMode
	K    int
}

// Fixed returns a FixedRank policy retaining the first k eigenpairs.
func Fixed(k int) RankPolicy { return RankPolicy{Mode: FixedRank, K: k} }

// Options configures one engine run.
//
// Fields:
//   - Delay        — taps of delay embedding each side of zero lag;
//     0 disables embedding.
//   - Rank         — rank selection policy (zero value:
//     PositiveEigenvalueCount).
//   - Epsilon      — relative diagonal regularization of the background
//     covariance; 0 means DefaultEpsilon.
//   - MaxCondition — eigenvector-basis condition limit; 0 means
//     DefaultMaxCondition.
type Options struct {
	Delay        int
	Rank         RankPolicy
	Epsilon      float64
	MaxCondition float64
}

// DefaultOptions returns the documented defaults: no embedding, λ>1 rank
// policy, DefaultEpsilon, DefaultMaxCondition.
func DefaultOptions() Options {
	return Options{
		Delay:        0,
		Rank:         RankPolicy{Mode: PositiveEigenvalueCount},
		Epsilon:      DefaultEpsilon,
		MaxCondition: DefaultMaxCondition,
	}
}

// Result is the outcome of one engine run. Cleaned and Artifact have exactly
// the input signal's shape and satisfy Cleaned + Artifact == original,
// sample for sample. Rank reports how many eigendirections were filtered
// (0 means the filter degenerated to identity and Artifact is all-zero).
// Eigenvalues is the full generalized spectrum, descending — the
// artifact-to-background energy ratio per direction.
type Result struct {
	Cleaned     *signal.Buffer
	Artifact    *signal.Buffer
	Rank        int
	Eigenvalues []float64
}
