// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields two interleaved channels, even for mono files,
// because that is what go-mp3 produces. Use audio.MonoMixer (or
// audio.ReadTrack, which applies one) to fold them down.
//
//	file, _ := os.Open("episode.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3) {
//	    // not an MP3 stream
//	}
package mp3
