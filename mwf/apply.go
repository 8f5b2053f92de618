package mwf

import (
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artisep/embed"
	"github.com/katalvlaran/artisep/signal"
)

// Apply projects the filter onto the original signal. For every valid sample
// it forms the embedded vector y, computes the embedded artifact estimate
// Wᵀ·y and reads back only the zero-lag channel block; the other lags inform
// the estimate but are never reconstructed into separate output samples. Edge
// samples (the first and last delay positions) carry no estimate and pass
// through with an artifact value of zero.
//
// Returns (artifact, cleaned), both shaped exactly like the input, with
// cleaned = original − artifact as an exact elementwise subtraction.
func Apply(e *embed.Embedding, w *mat.Dense) (artifact, cleaned *signal.Buffer, err error) {
	dim := e.Dim()
	if r, c := w.Dims(); r != dim || c != dim {
		return nil, nil, fmt.Errorf("Apply: filter is %d×%d, embedded dim is %d: %w", r, c, dim, signal.ErrInvalidSignal)
	}

	sig := e.Signal()
	channels, samples := sig.Channels(), sig.Samples()
	lo, hi := e.ValidRange()
	zlo, _ := e.ZeroLagBlock()

	// (Wᵀ·y)[j] is the dot product of W's column j with y; only the zero-lag
	// columns are ever read back, so extract exactly those once.
	cols := make([][]float64, channels)
	for ch := 0; ch < channels; ch++ {
		col := make([]float64, dim)
		mat.Col(col, zlo+ch, w)
		cols[ch] = col
	}

	artFlat := make([]float64, channels*samples) // edges stay zero
	vec := make([]float64, dim)
	for t := lo; t < hi; t++ {
		e.VectorInto(vec, t)
		for ch := 0; ch < channels; ch++ {
			artFlat[ch*samples+t] = vek.Dot(cols[ch], vec)
		}
	}

	cleanFlat := sig.Flat()
	vek.Sub_Inplace(cleanFlat, artFlat)

	if artifact, err = signal.New(channels, samples, sig.SampleRate(), artFlat); err != nil {
		return nil, nil, fmt.Errorf("Apply: artifact estimate: %w", err)
	}
	if cleaned, err = signal.New(channels, samples, sig.SampleRate(), cleanFlat); err != nil {
		return nil, nil, fmt.Errorf("Apply: cleaned signal: %w", err)
	}

	return artifact, cleaned, nil
}
