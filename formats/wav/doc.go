// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use github.com/go-audio/wav, so files with extra chunks
// (LIST, smpl, odd-sized padding) are read without trouble.
//
// # Supported Formats
//
// Decoding:
//   - integer PCM at 8, 16, 24 and 32 bits
//   - any channel count and sample rate
//
// Encoding:
//   - mono 16-bit PCM, the layout loudcut writes its clips in
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	defer file.Close()
//	err := wav.Encode(file, track)
//
// Encode needs an io.WriteSeeker because the RIFF and data sizes are patched
// in after the samples are written.
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header or no fmt chunk
//   - ErrOnlyPCMSupported: float or compressed WAV
//   - ErrUnsupportedWavChunks: no data chunk could be found
//   - ErrEncode: the writer failed while encoding
package wav
