// Package signal: sentinel error set.
// All constructors and validators in this package return these sentinels and
// tests match them via errors.Is. Callers that need extra context wrap with
// fmt.Errorf("ctx: %w", ErrX) at their own boundary.

package signal

import "errors"

var (
	// ErrInvalidSignal indicates an unusable input matrix: non-positive
	// channel/sample counts, a non-positive sample rate, a backing slice of
	// the wrong length, or a NaN/±Inf value.
	ErrInvalidSignal = errors.New("signal: invalid signal")

	// ErrInvalidMask indicates a mask whose length does not match the signal,
	// or a mask with an empty class: both artifact and background samples are
	// required before any second-order statistics can be estimated.
	ErrInvalidMask = errors.New("signal: invalid mask")

	// ErrOutOfRange indicates a channel or sample index outside the buffer.
	ErrOutOfRange = errors.New("signal: index out of range")
)
