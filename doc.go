// Package artisep removes structured artifacts (eye movement, muscle
// activity, motion) from multichannel time-series recordings such as EEG.
//
// 🚀 What is artisep?
//
//	A pure-Go artifact-separation toolkit built around a multichannel Wiener
//	filter engine:
//		• signal/ — immutable multichannel Buffer + per-sample artifact Mask
//		• embed/  — lazy delay-embedded view (temporal context for the filter)
//		• cov/    — artifact vs. background covariance estimation
//		• gevd/   — regularized generalized eigensolver over the pair
//		• mwf/    — rank selection, MMSE filter construction and application
//
// ✨ Why artisep?
//
//   - Deterministic – fixed accumulation orders, no randomness, identical
//     inputs give identical outputs
//   - Fail-fast – every precondition violation is a sentinel error at the
//     earliest boundary; nothing is silently degraded
//   - Exact bookkeeping – cleaned + artifact == original, sample for sample
//
// This root package is the strategy boundary: the Method interface abstracts
// over structurally different identification front ends. MWFMethod couples
// the filter engine to a MaskSource (an interactive annotation tool or an
// automatic detector); ICAMethod remixes externally decomposed components
// chosen by a ComponentSelector. Both consume the same signal type and
// produce the same Result; they share nothing else.
//
// Quick start:
//
//	sig, _ := signal.FromRows(rows, 250) // channels×samples at 250 Hz
//	res, err := mwf.Run(sig, mask, nil)  // defaults: delay 0, λ>1 policy
//
// Mask drawing, ICA decomposition itself, plotting and persistence are
// external collaborators, not part of this module.
//
//	go get github.com/katalvlaran/artisep
package artisep
