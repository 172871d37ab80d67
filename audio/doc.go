// SPDX-License-Identifier: EPL-2.0

// Package audio provides the audio primitives loudcut is built from.
//
// This package contains:
//   - Source interface for decoded PCM streams
//   - Format registry for decoder lookup by file extension
//   - MonoMixer for channel mixing
//   - Track, an in-memory mono buffer addressed by time slices
//   - Builder, an appendable buffer used to join slices of a Track
//   - Resample for sample rate conversion of a Track
//
// # Source Interface
//
// Every format decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is finished.
//
// # Tracks
//
// ReadTrack drains a Source through a MonoMixer and keeps the result in
// memory. The track is then addressed by unit, one millisecond by default:
//
//	track, err := audio.ReadTrack(src, audio.DefaultUnit)
//	for i := range track.Len() {
//	    fmt.Println(i, track.Volume(i)) // dBFS of the i-th millisecond
//	}
//
// Slice boundaries fall on true time: at 44.1 kHz a millisecond is 44 or 45
// frames, and 60 seconds is always 60000 slices.
//
// Volume is the RMS level of the slice relative to full scale (1.0), so a
// full-scale square wave reads 0 dBFS and digital silence reads -Inf.
//
// A Track is never modified after construction. Slice returns views that
// share the backing array; Builder copies the samples it is given.
//
// # Sample Format
//
// Audio samples are float32 in the range [-1.0, 1.0]. 0.0 is silence.
package audio
