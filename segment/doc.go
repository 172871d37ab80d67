// SPDX-License-Identifier: EPL-2.0

// Package segment finds the loud parts of a track and joins them together.
//
// Scan walks a volume series once and reports every maximal run of slices
// whose volume is greater than or equal to a threshold, together with the
// loudest volume seen anywhere in the series:
//
//	res := segment.Scan(track, -20)
//	if len(res.Ranges) == 0 {
//	    fmt.Printf("nothing at -20 dBFS, loudest slice is %.1f dBFS\n", res.MaxVolume)
//	    return
//	}
//
// Stitch concatenates the audio of those ranges, in order, into a new track:
//
//	clip, err := segment.Stitch(track, res.Ranges)
//
// Segments are butted directly together. There is no cross-fade, padding or
// normalisation, and adjacent runs separated by a short dip are never merged.
//
// # Known limitations
//
// Volumes are compared with the ordinary float64 operators, so a NaN volume
// is neither loud nor quiet. Outside a run it does not start one; inside a
// run it does not end it and is kept as part of the range. It never raises
// MaxVolume. NaN is not reported as an error.
package segment
