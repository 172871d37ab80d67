// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"
	"math"
)

// Series is a time-indexed sequence of volume measurements.
type Series interface {
	Len() int
	Volume(i int) float64
}

// Range is the half-open interval [Start, End) of time-unit indices.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.End) }

// ScanResult holds the loud runs of a series in ascending order, and the
// maximum volume over the whole series.
type ScanResult struct {
	Ranges    []Range
	MaxVolume float64
}

// Scan returns every maximal run of indices whose volume is >= threshold.
// It never fails; an empty series gives no ranges and a MaxVolume of -Inf.
func Scan(s Series, threshold float64) ScanResult {
	n := s.Len()
	res := ScanResult{
		Ranges:    []Range{},
		MaxVolume: math.Inf(-1),
	}

	inRun := false
	runStart := 0

	for i := range n {
		v := s.Volume(i)
		if v > res.MaxVolume {
			res.MaxVolume = v
		}

		if !inRun && v >= threshold {
			inRun = true
			runStart = i
		} else if inRun && v < threshold {
			res.Ranges = append(res.Ranges, Range{Start: runStart, End: i})
			inRun = false
		}

		// A run still open at the last index ends with the series.
		if inRun && i == n-1 {
			res.Ranges = append(res.Ranges, Range{Start: runStart, End: n})
			inRun = false
		}
	}

	return res
}

// Volumes is a Series backed by a slice, one volume per time unit.
type Volumes []float64

func (v Volumes) Len() int             { return len(v) }
func (v Volumes) Volume(i int) float64 { return v[i] }
