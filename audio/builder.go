// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Builder is an appendable mono buffer. The zero-length Builder returned by
// NewBuilder is the identity for Append, and Append is plain concatenation,
// so appending a sequence of tracks in any grouping yields the same result.
type Builder struct {
	samples    []float32
	sampleRate int
	unit       time.Duration
	units      int
}

func NewBuilder(sampleRate int, unit time.Duration) *Builder {
	return &Builder{
		sampleRate: sampleRate,
		unit:       unit,
	}
}

// Grow reserves room for frames more frames.
func (b *Builder) Grow(frames int) {
	if frames <= 0 || cap(b.samples)-len(b.samples) >= frames {
		return
	}

	grown := make([]float32, len(b.samples), len(b.samples)+frames)
	copy(grown, b.samples)
	b.samples = grown
}

// Append copies t onto the end of the buffer. The result is t.Len() slices
// longer.
func (b *Builder) Append(t *Track) error {
	if t.sampleRate != b.sampleRate || t.unit != b.unit {
		return fmt.Errorf("%w: %d Hz/%s onto %d Hz/%s",
			ErrFormatMismatch, t.sampleRate, t.unit, b.sampleRate, b.unit)
	}

	b.samples = append(b.samples, t.samples...)
	b.units += t.units
	return nil
}

// Frames is the number of mono frames appended so far.
func (b *Builder) Frames() int { return len(b.samples) }

// Track returns the accumulated audio. The Builder must not be used after.
func (b *Builder) Track() (*Track, error) {
	t, err := newTrack(b.samples, b.sampleRate, b.unit)
	if err != nil {
		return nil, err
	}
	t.units = b.units

	b.samples = nil
	b.units = 0
	return t, nil
}
