// Package mwf implements the multichannel Wiener filter engine for artifact
// removal from multichannel recordings.
//
// 🚀 What does it do?
//
//	Given a channels×samples signal and a per-sample mask separating
//	"contaminated" from "clean" intervals, the engine learns a linear filter
//	that maximally suppresses the artifact subspace while leaving the rest
//	of the signal untouched:
//	  1. delay-embed the signal (embed) to give the spatial filter access to
//	     short-time temporal structure,
//	  2. estimate artifact and background covariances (cov),
//	  3. solve the generalized eigenproblem between them (gevd),
//	  4. retain the leading artifact-dominated directions (rank selection),
//	  5. build W = V·Δ·V⁻¹ with the MMSE attenuation Δₖ = (λₖ−1)/λₖ,
//	  6. apply Wᵀ per sample and read back the zero-lag block.
//
// ✨ Key properties:
//   - cleaned + artifact == original, exactly, for every sample
//   - rank 0 degenerates to the identity filter (nothing removed) — a valid,
//     reportable outcome, not an error
//   - deterministic: fixed accumulation orders, no randomness, identical
//     inputs give identical outputs
//   - all failure modes surface as sentinel errors; nothing is retried or
//     silently degraded
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/artisep/mwf"
//
//	opts := mwf.DefaultOptions() // delay 0, rank policy λ>1, ε=1e-8
//	opts.Delay = 3               // ±3 taps of temporal context
//
//	res, err := mwf.Run(sig, mask, &opts)
//	if err != nil { ... }
//	_ = res.Cleaned  // signal with the artifact contribution subtracted
//	_ = res.Artifact // the subtracted estimate itself
//	_ = res.Rank     // how many directions were filtered
//
// The engine is a pure batch computation: one call, one result, no retained
// state. Bounding delay and channel count is the caller's concern; there is
// no cancellation model at this layer.
package mwf
