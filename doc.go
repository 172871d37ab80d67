// SPDX-License-Identifier: EPL-2.0

// Package loudcut cuts the loudest parts out of an audio file and joins them
// into a single clip.
//
// The track is measured one time unit at a time (a millisecond by default).
// Every slice whose RMS level is at or above a threshold in dBFS is kept,
// consecutive kept slices form a segment, and the segments are stitched back
// to back in their original order.
//
// # Supported Formats
//
// Input is decoded by extension:
//   - WAV (integer PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Output is always mono 16-bit PCM WAV.
//
// # Quick Start
//
//	reg := loudcut.DefaultRegistry()
//	track, err := loudcut.Load(reg, "talk.mp3", audio.DefaultUnit)
//	if err != nil {
//	    return err
//	}
//
//	res, err := loudcut.Extract(track, -18)
//	if err != nil {
//	    return err
//	}
//	if res.Clip == nil {
//	    fmt.Printf("nothing at -18 dBFS; loudest slice is %.1f dBFS\n", res.MaxVolume)
//	    return nil
//	}
//
//	err = loudcut.Save("loudest.wav", res.Clip, 0)
//
// # Lower Level
//
// The segment package holds the detection (Scan) and joining (Stitch) steps,
// and the audio package the Track they work on. Both are pure and can be used
// with any source of volumes or audio.
//
// # Errors
//
// Load failures wrap ErrInvalidInput and Save failures wrap ErrEncoding, so
// callers can tell a bad input file from a failed write with errors.Is.
package loudcut
