// Package embed provides the delay-embedded view of a multichannel signal.
//
// Delay embedding expands each channel into 2·delay+1 time-shifted copies so
// that a purely spatial filter estimated on the embedded space can also
// capture short-time temporal structure. The view is lazy: embedded vectors
// are materialized one sample at a time into a caller-supplied slice, so the
// memory footprint stays bounded for large delays instead of growing by a
// factor of 2·delay+1.
//
// Samples whose embedding window would run outside the recording are excluded
// from the valid range rather than zero-padded; padding would bias every
// covariance estimated downstream.
package embed
