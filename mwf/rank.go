package mwf

import (
	"fmt"

	"github.com/katalvlaran/artisep/gevd"
)

// SelectRank applies a rank policy to a decomposition and returns the number
// of leading eigenpairs that form the artifact subspace.
//
// FixedRank(K): the first min(K, available) pairs; K ≤ 0 is ErrInvalidRank.
// PositiveEigenvalueCount: the longest leading prefix with λ > 1, stopping
// at the first λ ≤ 1. A result of 0 is valid — the filter then removes
// nothing.
func SelectRank(d *gevd.Decomposition, p RankPolicy) (int, error) {
	switch p.Mode {
	case FixedRank:
		if p.K <= 0 {
			return 0, fmt.Errorf("SelectRank: K=%d: %w", p.K, ErrInvalidRank)
		}
		if p.K > d.Len() {
			return d.Len(), nil
		}

		return p.K, nil

	case PositiveEigenvalueCount:
		rank := 0
		for rank < d.Len() && d.Pair(rank).Value > 1 {
			rank++
		}

		return rank, nil

	default:
		return 0, fmt.Errorf("SelectRank: unknown mode %d: %w", p.Mode, ErrBadOptions)
	}
}
