package artisep

import (
	"errors"
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/artisep/signal"
)

var (
	// ErrBadDecomposition indicates a decomposition whose mixing matrix and
	// activations disagree with each other or with the signal's shape.
	ErrBadDecomposition = errors.New("artisep: decomposition shape mismatch")

	// ErrBadSelection indicates a component index outside the decomposition
	// or a duplicated index.
	ErrBadSelection = errors.New("artisep: invalid component selection")
)

// Decomposition is the output of a black-box source-separation routine:
// a channels×components mixing matrix and the components×samples activation
// signals, such that Mixing·Activations reconstructs the recording's modeled
// part. The decomposition algorithm itself (ICA or otherwise) is an external
// collaborator.
type Decomposition struct {
	Mixing      *mat.Dense
	Activations *signal.Buffer
}

// Components returns the component count.
func (d *Decomposition) Components() int { return d.Activations.Channels() }

// Decomposer produces a Decomposition for a signal. Typically an external
// ICA implementation; any stochastic initialization it uses stays on its
// side of the boundary.
type Decomposer interface {
	Decompose(sig *signal.Buffer) (*Decomposition, error)
}

// ComponentSelector picks the artifact components of a decomposition,
// usually a human in the loop inspecting component topographies and time
// courses. Returns the selected component indices; ErrAborted when the user
// cancelled. An empty selection is valid and removes nothing.
type ComponentSelector interface {
	Select(d *Decomposition) ([]int, error)
}

// SelectorFunc adapts a plain function to the ComponentSelector interface.
type SelectorFunc func(d *Decomposition) ([]int, error)

// Select calls f.
func (f SelectorFunc) Select(d *Decomposition) ([]int, error) { return f(d) }

// ICAMethod is the component-based strategy: decompose the recording,
// let the selector pick artifact components, remix exactly those into an
// artifact estimate and subtract it. It shares only the signal/result types
// with the filter engine — no masks, no covariances, no internal state.
type ICAMethod struct {
	Decomposer Decomposer
	Selector   ComponentSelector
}

// Name implements Method.
func (m *ICAMethod) Name() string { return "ica" }

// Separate implements Method.
func (m *ICAMethod) Separate(sig *signal.Buffer) (Result, error) {
	if m.Decomposer == nil || m.Selector == nil {
		return Result{}, fmt.Errorf("Separate: decomposer/selector: %w", ErrNoSource)
	}

	dec, err := m.Decomposer.Decompose(sig)
	if err != nil {
		return Result{}, fmt.Errorf("Separate: %w", err)
	}
	if err = validateDecomposition(sig, dec); err != nil {
		return Result{}, fmt.Errorf("Separate: %w", err)
	}

	sel, err := m.Selector.Select(dec)
	if err != nil {
		return Result{}, fmt.Errorf("Separate: %w", err)
	}
	comps := dec.Components()
	seen := make(map[int]bool, len(sel))
	for _, k := range sel {
		if k < 0 || k >= comps {
			return Result{}, fmt.Errorf("Separate: component %d of %d: %w", k, comps, ErrBadSelection)
		}
		if seen[k] {
			return Result{}, fmt.Errorf("Separate: component %d selected twice: %w", k, ErrBadSelection)
		}
		seen[k] = true
	}

	artifact, err := remix(sig, dec, sel)
	if err != nil {
		return Result{}, fmt.Errorf("Separate: %w", err)
	}

	cleanFlat := sig.Flat()
	vek.Sub_Inplace(cleanFlat, artifact.Flat())
	cleaned, err := signal.New(sig.Channels(), sig.Samples(), sig.SampleRate(), cleanFlat)
	if err != nil {
		return Result{}, fmt.Errorf("Separate: cleaned signal: %w", err)
	}

	return Result{Cleaned: cleaned, Artifact: artifact}, nil
}

func validateDecomposition(sig *signal.Buffer, d *Decomposition) error {
	if d == nil || d.Mixing == nil || d.Activations == nil {
		return fmt.Errorf("validateDecomposition: nil decomposition: %w", ErrBadDecomposition)
	}
	r, c := d.Mixing.Dims()
	if r != sig.Channels() {
		return fmt.Errorf("validateDecomposition: mixing has %d rows, signal has %d channels: %w", r, sig.Channels(), ErrBadDecomposition)
	}
	if c != d.Activations.Channels() {
		return fmt.Errorf("validateDecomposition: mixing has %d columns, %d activation components: %w", c, d.Activations.Channels(), ErrBadDecomposition)
	}
	if d.Activations.Samples() != sig.Samples() {
		return fmt.Errorf("validateDecomposition: activations have %d samples, signal has %d: %w", d.Activations.Samples(), sig.Samples(), ErrBadDecomposition)
	}

	return nil
}

// remix reconstructs the contribution of the selected components:
// Mixing[:,sel] · Activations[sel,:]. An empty selection yields the all-zero
// artifact buffer.
func remix(sig *signal.Buffer, d *Decomposition, sel []int) (*signal.Buffer, error) {
	channels, samples := sig.Channels(), sig.Samples()
	flat := make([]float64, channels*samples)

	if len(sel) > 0 {
		msel := mat.NewDense(channels, len(sel), nil)
		asel := mat.NewDense(len(sel), samples, nil)
		colBuf := make([]float64, channels)
		for j, k := range sel {
			mat.Col(colBuf, k, d.Mixing)
			msel.SetCol(j, colBuf)
			row, err := d.Activations.Channel(k)
			if err != nil {
				return nil, err
			}
			asel.SetRow(j, row)
		}

		var prod mat.Dense
		prod.Mul(msel, asel)
		for ch := 0; ch < channels; ch++ {
			for t := 0; t < samples; t++ {
				flat[ch*samples+t] = prod.At(ch, t)
			}
		}
	}

	return signal.New(channels, samples, sig.SampleRate(), flat)
}
