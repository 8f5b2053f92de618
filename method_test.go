package artisep_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/artisep"
	"github.com/katalvlaran/artisep/signal"
)

// burstSignal builds a two-channel recording whose second channel carries a
// large burst on samples 4..6, plus the mask marking that interval.
func burstSignal(t *testing.T) (*signal.Buffer, signal.Mask) {
	t.Helper()
	baseline := []float64{0.3, -0.1, 0.25, -0.2, 0.15, -0.3, 0.1, 0.2, -0.15, 0.05}
	burst := []float64{0, 0, 0, 0, 30, 60, 25, 0, 0, 0}

	ch2 := make([]float64, len(baseline))
	for i := range ch2 {
		ch2[i] = baseline[i] + burst[i]
	}
	sig, err := signal.FromRows([][]float64{baseline, ch2}, 100)
	require.NoError(t, err)

	mask := make(signal.Mask, len(baseline))
	mask[4], mask[5], mask[6] = true, true, true

	return sig, mask
}

// TestMWFMethod_Separate drives the filter strategy through the Method
// interface with a fixed mask source and checks the additivity contract.
func TestMWFMethod_Separate(t *testing.T) {
	sig, mask := burstSignal(t)

	m := &artisep.MWFMethod{
		Source: artisep.MaskFunc(func(_ *signal.Buffer) (signal.Mask, error) {
			return mask, nil
		}),
	}
	assert.Equal(t, "mwf", m.Name())

	res, err := m.Separate(sig)
	require.NoError(t, err)

	orig := sig.Flat()
	clean := res.Cleaned.Flat()
	art := res.Artifact.Flat()
	for i := range orig {
		assert.InDelta(t, orig[i], clean[i]+art[i], 1e-9)
	}

	clean2, err := res.Cleaned.Channel(1)
	require.NoError(t, err)
	assert.Less(t, math.Abs(clean2[5]), 1.0, "burst peak must be suppressed")
}

// TestMWFMethod_SourceErrors covers the collaborator boundary: missing
// source, aborted annotation, and a source returning an unusable mask.
func TestMWFMethod_SourceErrors(t *testing.T) {
	sig, _ := burstSignal(t)

	m := &artisep.MWFMethod{}
	_, err := m.Separate(sig)
	assert.ErrorIs(t, err, artisep.ErrNoSource)

	m = &artisep.MWFMethod{
		Source: artisep.MaskFunc(func(_ *signal.Buffer) (signal.Mask, error) {
			return nil, artisep.ErrAborted
		}),
	}
	_, err = m.Separate(sig)
	assert.ErrorIs(t, err, artisep.ErrAborted)

	m = &artisep.MWFMethod{
		Source: artisep.MaskFunc(func(s *signal.Buffer) (signal.Mask, error) {
			return make(signal.Mask, s.Samples()), nil // all background
		}),
	}
	_, err = m.Separate(sig)
	assert.ErrorIs(t, err, signal.ErrInvalidMask)
}

// TestMWFMethod_SourceErrorNotWrappedAsAbort verifies that an arbitrary
// source failure passes through unchanged rather than being mistaken for
// a cancellation.
func TestMWFMethod_SourceErrorNotWrappedAsAbort(t *testing.T) {
	sig, _ := burstSignal(t)
	boom := errors.New("annotation backend unreachable")

	m := &artisep.MWFMethod{
		Source: artisep.MaskFunc(func(_ *signal.Buffer) (signal.Mask, error) {
			return nil, boom
		}),
	}
	_, err := m.Separate(sig)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, artisep.ErrAborted)
}
