// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

// DefaultUnit is the width of one addressable slice of a Track.
const DefaultUnit = time.Millisecond

// Track is a read-only, in-memory mono PCM buffer addressed by fixed-width
// time slices. Slice i starts at frame floor(i*sampleRate*unit/1s), so at
// rates where a unit is not a whole number of frames the slices alternate
// between two widths and always add up to true time. A trailing remainder
// shorter than one unit is not addressable.
//
// Methods never modify the samples, so a Track may be shared freely between
// goroutines once built.
type Track struct {
	samples    []float32
	sampleRate int
	unit       time.Duration

	// frame(i) = floor(i*num/den), with num/den = sampleRate*unit/1s
	// reduced to lowest terms.
	num, den int64

	// first is the index of slice 0 in the track this one was cut from, so
	// a slice keeps the boundaries of its parent.
	first int
	units int
}

// NewTrack wraps mono samples. The slice is retained, not copied; callers
// must not modify it afterwards.
func NewTrack(samples []float32, sampleRate int, unit time.Duration) (*Track, error) {
	t, err := newTrack(samples, sampleRate, unit)
	if err != nil {
		return nil, err
	}

	t.units = t.unitsIn(len(samples))
	t.samples = samples[:t.frame(t.units)]

	return t, nil
}

// newTrack validates the format and leaves units at zero.
func newTrack(samples []float32, sampleRate int, unit time.Duration) (*Track, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	num := int64(sampleRate) * int64(unit)
	den := int64(time.Second)
	if unit <= 0 || num < den {
		return nil, fmt.Errorf("%w: %s at %d Hz", ErrInvalidUnit, unit, sampleRate)
	}

	g := gcd(num, den)

	return &Track{
		samples:    samples,
		sampleRate: sampleRate,
		unit:       unit,
		num:        num / g,
		den:        den / g,
	}, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// boundary is the absolute frame where slice i of the parent track starts.
func (t *Track) boundary(i int) int {
	return int(int64(i) * t.num / t.den)
}

// frame is the offset of slice i from the start of t's samples.
func (t *Track) frame(i int) int {
	return t.boundary(t.first+i) - t.boundary(t.first)
}

// unitsIn is the number of whole slices that fit in frames frames, counted
// from slice 0 of a fresh track.
func (t *Track) unitsIn(frames int) int {
	return int((int64(frames+1)*t.den - 1) / t.num)
}

// ReadTrack drains src, mixing it down to mono, and closes it.
func ReadTrack(src Source, unit time.Duration) (*Track, error) {
	mono := NewMonoMixer(src)
	defer mono.Close()

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	samples := make([]float32, 0, src.SampleRate())
	buf := make([]float32, size)

	for {
		n, err := mono.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return NewTrack(samples, src.SampleRate(), unit)
}

func (t *Track) SampleRate() int         { return t.sampleRate }
func (t *Track) Unit() time.Duration     { return t.unit }
func (t *Track) Frames() int             { return len(t.samples) }
func (t *Track) Len() int                { return t.units }
func (t *Track) Duration() time.Duration { return time.Duration(t.units) * t.unit }
func (t *Track) Builder() *Builder       { return NewBuilder(t.sampleRate, t.unit) }

// edge is where slice i starts in t.samples. The end of the last slice is
// the end of the samples, which absorbs any rounding left by joining or
// resampling.
func (t *Track) edge(i int) int {
	if i >= t.units {
		return len(t.samples)
	}
	return min(t.frame(i), len(t.samples))
}

// Volume returns the loudness of slice i in dBFS, relative to a full-scale
// amplitude of 1.0. Digital silence is negative infinity.
//
// Volume panics if i is outside [0, Len()).
func (t *Track) Volume(i int) float64 {
	if i < 0 || i >= t.units {
		panic(fmt.Sprintf("audio: slice %d out of range [0, %d)", i, t.units))
	}
	return DBFS(t.samples[t.edge(i):t.edge(i+1)])
}

// Samples returns a copy of the samples.
func (t *Track) Samples() []float32 {
	out := make([]float32, len(t.samples))
	copy(out, t.samples)
	return out
}

// Slice returns the half-open unit range [start, end) as a new Track that
// shares the receiver's backing array.
func (t *Track) Slice(start, end int) (*Track, error) {
	if start < 0 || end < start || end > t.units {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrSliceOutOfRange, start, end, t.units)
	}

	lo := t.edge(start)
	hi := t.edge(end)

	s := *t
	s.samples = t.samples[lo:hi:hi]
	s.first = t.first + start
	s.units = end - start

	return &s, nil
}

// DBFS is the RMS level of samples in decibels relative to full scale.
func DBFS(samples []float32) float64 {
	if len(samples) == 0 {
		return math.Inf(-1)
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	rms := math.Sqrt(sum / float64(len(samples)))

	return 20 * math.Log10(rms)
}
