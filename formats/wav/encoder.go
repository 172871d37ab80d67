// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/loudcut/audio"
	"github.com/ik5/loudcut/utils"
)

const encodeChunk = 8192

// Encode writes t as a mono 16-bit PCM WAV file. w must be seekable so the
// header sizes can be filled in once all samples are written.
func Encode(w io.WriteSeeker, t *audio.Track) error {
	enc := gowav.NewEncoder(w, t.SampleRate(), 16, 1, formatPCM)

	samples := t.Samples()
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: t.SampleRate()},
		Data:           make([]int, 0, min(len(samples), encodeChunk)),
		SourceBitDepth: 16,
	}

	// The encoder writes its headers on the first Write, so always make one.
	for i := 0; i == 0 || i < len(samples); i += encodeChunk {
		end := min(i+encodeChunk, len(samples))

		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, int(utils.Float32ToInt16(s)))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}
