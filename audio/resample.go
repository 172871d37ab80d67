// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/loudcut/utils"
)

// Resample converts t to rate Hz with Catmull-Rom interpolation, keeping the
// time unit and the number of slices. When downsampling, a one-pole low-pass runs over the input first
// to tame aliasing.
func Resample(t *Track, rate int) (*Track, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}
	if rate == t.sampleRate {
		return t, nil
	}

	src := t.samples
	ratio := float64(t.sampleRate) / float64(rate)

	if ratio > 1 {
		src = lowPass(src, 0.5)
	}

	n := int(math.Round(float64(len(src)) / ratio))
	out := make([]float32, n)

	at := func(i int) float32 {
		switch {
		case i < 0:
			return src[0]
		case i >= len(src):
			return src[len(src)-1]
		}
		return src[i]
	}

	for j := range out {
		pos := float64(j) * ratio
		i := int(pos)
		x := float32(pos - float64(i))
		out[j] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), x)
	}

	res, err := newTrack(out, rate, t.unit)
	if err != nil {
		return nil, err
	}
	res.units = t.units

	return res, nil
}

// lowPass is y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0].
func lowPass(x []float32, alpha float32) []float32 {
	y := make([]float32, len(x))
	if len(x) == 0 {
		return y
	}

	prev := x[0]
	for i, v := range x {
		prev = alpha*v + (1-alpha)*prev
		y[i] = prev
	}
	return y
}
