package signal

import "fmt"

// Mask annotates each sample as artifact (true) or background (false).
// It partitions sample indices into the two classes whose second-order
// statistics the filter engine contrasts. A usable mask has at least one
// sample in each class; masks are supplied by an external annotation source
// and validated here before any estimation runs.
type Mask []bool

// MaskFromWeights coerces an externally computed per-sample weighting into a
// Mask: any non-zero value marks the sample as artifact. NaN compares
// non-zero and therefore also marks artifact, which matches the "anything
// not explicitly clean is contaminated" reading of detector outputs.
func MaskFromWeights(w []float64) Mask {
	m := make(Mask, len(w))
	for i, v := range w {
		m[i] = v != 0
	}

	return m
}

// Validate checks the mask against a signal of the given sample count.
// Returns ErrInvalidMask on length mismatch or when either class is empty:
// an all-artifact or all-background mask leaves one covariance with no data,
// which cannot be repaired downstream.
func (m Mask) Validate(samples int) error {
	if len(m) != samples {
		return fmt.Errorf("Validate: mask length %d, signal has %d samples: %w", len(m), samples, ErrInvalidMask)
	}
	artifact, background := m.Counts()
	if artifact == 0 {
		return fmt.Errorf("Validate: no artifact samples marked: %w", ErrInvalidMask)
	}
	if background == 0 {
		return fmt.Errorf("Validate: no background samples left: %w", ErrInvalidMask)
	}

	return nil
}

// Counts reports the number of artifact and background samples.
func (m Mask) Counts() (artifact, background int) {
	for _, v := range m {
		if v {
			artifact++
		} else {
			background++
		}
	}

	return artifact, background
}
