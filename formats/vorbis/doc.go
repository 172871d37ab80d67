// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("interview.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Samples come back interleaved, already normalised to [-1, 1]. Reads are
// trimmed to a whole number of frames.
package vorbis
