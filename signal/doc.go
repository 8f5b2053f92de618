// Package signal defines the leaf data types shared by every stage of the
// artifact-separation pipeline: an immutable multichannel Buffer and a
// per-sample artifact Mask.
//
// Both types validate eagerly at construction — non-finite values, empty
// shapes, length mismatches and single-class masks are rejected with the
// package sentinels before any numerical stage can observe them. A Buffer is
// never mutated after construction; every pipeline stage that produces a new
// channels×samples matrix allocates a fresh Buffer.
package signal
