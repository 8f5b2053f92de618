package signal

import (
	"fmt"
	"math"
)

// Buffer is an immutable view of a channels×samples recording plus its
// sample rate. The backing storage is flat row-major: channel ch occupies
// data[ch*samples : (ch+1)*samples].
//
// Invariants (enforced at construction, relied on everywhere else):
//   - channels ≥ 1, samples ≥ 1, sampleRate > 0 and finite
//   - every value is finite (no NaN, no ±Inf)
//
// A Buffer is owned by the caller for the duration of a filter computation
// and is never mutated by any pipeline stage.
type Buffer struct {
	channels   int
	samples    int
	sampleRate float64
	data       []float64
}

// New constructs a Buffer from a flat row-major slice of length
// channels*samples. The slice is copied; the caller keeps ownership of its
// argument. Returns ErrInvalidSignal on non-positive dimensions or rate,
// length mismatch, or any non-finite value.
func New(channels, samples int, sampleRate float64, data []float64) (*Buffer, error) {
	if channels <= 0 || samples <= 0 {
		return nil, fmt.Errorf("New: %d×%d: %w", channels, samples, ErrInvalidSignal)
	}
	if sampleRate <= 0 || math.IsInf(sampleRate, 0) || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("New: sample rate %v: %w", sampleRate, ErrInvalidSignal)
	}
	if len(data) != channels*samples {
		return nil, fmt.Errorf("New: got %d values, want %d: %w", len(data), channels*samples, ErrInvalidSignal)
	}
	// Eager finiteness scan: a NaN reaching the covariance stage would poison
	// every statistic downstream, so it is rejected here, before any math.
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New: non-finite value at flat index %d: %w", i, ErrInvalidSignal)
		}
	}

	buf := &Buffer{
		channels:   channels,
		samples:    samples,
		sampleRate: sampleRate,
		data:       make([]float64, len(data)),
	}
	copy(buf.data, data)

	return buf, nil
}

// FromRows constructs a Buffer from per-channel rows. All rows must have the
// same positive length. Validation rules match New.
func FromRows(rows [][]float64, sampleRate float64) (*Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrInvalidSignal)
	}
	samples := len(rows[0])
	flat := make([]float64, 0, len(rows)*samples)
	for ch, row := range rows {
		if len(row) != samples {
			return nil, fmt.Errorf("FromRows: row %d has %d samples, want %d: %w", ch, len(row), samples, ErrInvalidSignal)
		}
		flat = append(flat, row...)
	}

	return New(len(rows), samples, sampleRate, flat)
}

// Channels reports the channel count.
func (b *Buffer) Channels() int { return b.channels }

// Samples reports the per-channel sample count.
func (b *Buffer) Samples() int { return b.samples }

// SampleRate reports the sampling rate in Hz.
func (b *Buffer) SampleRate() float64 { return b.sampleRate }

// At returns the value of channel ch at sample t.
// Returns ErrOutOfRange for indices outside the buffer.
func (b *Buffer) At(ch, t int) (float64, error) {
	if ch < 0 || ch >= b.channels || t < 0 || t >= b.samples {
		return 0, fmt.Errorf("At(%d,%d): %w", ch, t, ErrOutOfRange)
	}

	return b.data[ch*b.samples+t], nil
}

// Channel returns the row slice of channel ch as a read-only view into the
// buffer's backing storage. Callers must not modify the returned slice;
// copy it first if mutation is needed.
func (b *Buffer) Channel(ch int) ([]float64, error) {
	if ch < 0 || ch >= b.channels {
		return nil, fmt.Errorf("Channel(%d): %w", ch, ErrOutOfRange)
	}

	return b.data[ch*b.samples : (ch+1)*b.samples], nil
}

// Flat returns a copy of the whole buffer in flat row-major layout.
func (b *Buffer) Flat() []float64 {
	out := make([]float64, len(b.data))
	copy(out, b.data)

	return out
}
