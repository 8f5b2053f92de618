// Package cov estimates the second-order statistics the filter engine
// contrasts: the covariance of the delay-embedded signal over the artifact
// segments (Rd) and over the background segments (Ry).
//
// Convention: Ry is estimated over background samples only, not over the
// whole recording. The generalized eigenvalues downstream are then exactly
// artifact-to-background energy ratios, which is the criterion the rank
// selector thresholds at λ > 1. Estimation and filter construction share
// this convention; they must never be mixed.
//
// Both matrices are sample covariances: per-matrix mean removal and n−1
// normalization, accumulated in a fixed sample order so results are
// bit-reproducible across runs.
package cov
