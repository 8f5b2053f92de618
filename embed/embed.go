package embed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/artisep/signal"
)

// ErrInvalidEmbedding indicates a delay that is negative or so large that no
// sample has a complete embedding window (2·delay+1 > samples).
var ErrInvalidEmbedding = errors.New("embed: invalid embedding delay")

// Embedding is a lazy, restartable view of a signal.Buffer in which every
// valid sample index t maps to an embedded column vector of dimension
// channels·(2·delay+1). The vector layout is lag-major: for lag
// l = -delay..+delay (in that order) and channel ch, element
// (l+delay)·channels + ch holds channel ch at sample t+l. The zero-lag block
// therefore sits at offset delay·channels and is the inverse mapping used to
// read an embedded artifact estimate back into the original channel layout.
type Embedding struct {
	sig   *signal.Buffer
	rows  [][]float64 // per-channel views, fetched once
	delay int
	dim   int
}

// New builds an Embedding over sig with the given delay (taps each side of
// zero lag). delay=0 degenerates to the identity view. Returns
// ErrInvalidEmbedding when delay < 0 or when 2·delay+1 exceeds the sample
// count, i.e. no valid sample remains.
func New(sig *signal.Buffer, delay int) (*Embedding, error) {
	if delay < 0 {
		return nil, fmt.Errorf("New: delay %d: %w", delay, ErrInvalidEmbedding)
	}
	if 2*delay+1 > sig.Samples() {
		return nil, fmt.Errorf("New: delay %d with %d samples: %w", delay, sig.Samples(), ErrInvalidEmbedding)
	}

	rows := make([][]float64, sig.Channels())
	for ch := range rows {
		row, err := sig.Channel(ch)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		rows[ch] = row
	}

	return &Embedding{
		sig:   sig,
		rows:  rows,
		delay: delay,
		dim:   sig.Channels() * (2*delay + 1),
	}, nil
}

// Signal returns the underlying buffer.
func (e *Embedding) Signal() *signal.Buffer { return e.sig }

// Delay returns the embedding delay in taps.
func (e *Embedding) Delay() int { return e.delay }

// Dim returns the embedded dimension channels·(2·delay+1).
func (e *Embedding) Dim() int { return e.dim }

// ValidRange returns the half-open sample range [lo, hi) for which a full
// embedding window exists. Samples outside this range carry no embedded
// vector and must be skipped by all statistics.
func (e *Embedding) ValidRange() (lo, hi int) {
	return e.delay, e.sig.Samples() - e.delay
}

// ZeroLagBlock returns the half-open index range [lo, hi) of the zero-lag
// channel block inside an embedded vector. Reading only this block realizes
// the inverse of the embedding for a single output sample.
func (e *Embedding) ZeroLagBlock() (lo, hi int) {
	lo = e.delay * e.sig.Channels()

	return lo, lo + e.sig.Channels()
}

// VectorInto fills dst with the embedded vector at sample t. dst must have
// length Dim() and t must lie inside ValidRange; both are programmer-error
// preconditions of the hot path, so violations panic rather than allocate an
// error per sample.
func (e *Embedding) VectorInto(dst []float64, t int) {
	if len(dst) != e.dim {
		panic(fmt.Sprintf("embed: VectorInto dst length %d, want %d", len(dst), e.dim))
	}
	lo, hi := e.ValidRange()
	if t < lo || t >= hi {
		panic(fmt.Sprintf("embed: VectorInto sample %d outside valid range [%d,%d)", t, lo, hi))
	}

	channels := len(e.rows)
	idx := 0
	for lag := -e.delay; lag <= e.delay; lag++ {
		src := t + lag
		for ch := 0; ch < channels; ch++ {
			dst[idx] = e.rows[ch][src]
			idx++
		}
	}
}
