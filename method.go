package artisep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/artisep/mwf"
	"github.com/katalvlaran/artisep/signal"
)

var (
	// ErrAborted reports that an interactive collaborator (mask annotation,
	// component picking) was cancelled by the user. No computation was
	// performed; the engine never enters a partial state on abort.
	ErrAborted = errors.New("artisep: aborted by collaborator")

	// ErrNoSource indicates a method invoked without its required
	// collaborator (mask source, decomposer or selector) configured.
	ErrNoSource = errors.New("artisep: collaborator not configured")
)

// Result is the shared outcome of every separation method: the cleaned
// signal and the removed artifact estimate, both shaped exactly like the
// input and summing back to it sample for sample.
type Result struct {
	Cleaned  *signal.Buffer
	Artifact *signal.Buffer
}

// Method is a strategy for identifying and removing artifacts from a
// recording. Implementations share the external signal/result types and
// nothing else.
type Method interface {
	// Name identifies the strategy ("mwf", "ica").
	Name() string

	// Separate runs the strategy on sig. A user abort in an interactive
	// collaborator surfaces as ErrAborted with no partial result.
	Separate(sig *signal.Buffer) (Result, error)
}

// MaskSource supplies the contamination mask for a signal. Implementations
// range from interactive annotation tools to automatic detectors; the single
// blocking call either returns a usable mask or an error (ErrAborted when
// the user cancelled).
type MaskSource interface {
	ObtainMask(sig *signal.Buffer) (signal.Mask, error)
}

// MaskFunc adapts a plain function to the MaskSource interface.
type MaskFunc func(sig *signal.Buffer) (signal.Mask, error)

// ObtainMask calls f.
func (f MaskFunc) ObtainMask(sig *signal.Buffer) (signal.Mask, error) { return f(sig) }

// MWFMethod is the mask-driven multichannel Wiener filter strategy: obtain a
// mask from Source, run the mwf engine with Options (nil for defaults).
type MWFMethod struct {
	Source  MaskSource
	Options *mwf.Options
}

// Name implements Method.
func (m *MWFMethod) Name() string { return "mwf" }

// Separate implements Method. The mask is obtained through the blocking
// Source call; an aborted source means no computation is performed.
func (m *MWFMethod) Separate(sig *signal.Buffer) (Result, error) {
	if m.Source == nil {
		return Result{}, fmt.Errorf("Separate: mask source: %w", ErrNoSource)
	}

	mask, err := m.Source.ObtainMask(sig)
	if err != nil {
		return Result{}, fmt.Errorf("Separate: %w", err)
	}

	res, err := mwf.Run(sig, mask, m.Options)
	if err != nil {
		return Result{}, fmt.Errorf("Separate: %w", err)
	}

	return Result{Cleaned: res.Cleaned, Artifact: res.Artifact}, nil
}
