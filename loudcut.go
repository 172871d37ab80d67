// SPDX-License-Identifier: EPL-2.0

package loudcut

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/loudcut/audio"
	"github.com/ik5/loudcut/formats/aiff"
	"github.com/ik5/loudcut/formats/mp3"
	"github.com/ik5/loudcut/formats/vorbis"
	"github.com/ik5/loudcut/formats/wav"
	"github.com/ik5/loudcut/segment"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Load decodes the file at path into a mono track addressed by unit.
// Every failure wraps ErrInvalidInput and names the path.
func Load(reg *audio.Registry, path string, unit time.Duration) (*audio.Track, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, path, err)
	}

	track, err := audio.ReadTrack(src, unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, path, err)
	}

	return track, nil
}

// Result is the outcome of Extract.
type Result struct {
	// Ranges are the loud runs, in track order.
	Ranges []segment.Range
	// MaxVolume is the loudest slice of the whole track, in dBFS.
	MaxVolume float64
	// Clip holds the stitched ranges. It is nil when no range qualified.
	Clip *audio.Track
}

// Extract keeps the parts of track at or above threshold dBFS. Finding
// nothing loud enough is not an error: the Result then has no ranges and no
// clip, and MaxVolume tells the caller what threshold would have matched.
func Extract(track *audio.Track, threshold float64) (*Result, error) {
	scan := segment.Scan(track, threshold)

	res := &Result{
		Ranges:    scan.Ranges,
		MaxVolume: scan.MaxVolume,
	}
	if len(scan.Ranges) == 0 {
		return res, nil
	}

	clip, err := segment.Stitch(track, scan.Ranges)
	if err != nil {
		return nil, fmt.Errorf("stitching %d ranges: %w", len(scan.Ranges), err)
	}
	res.Clip = clip

	return res, nil
}

// Save writes track to path as a mono 16-bit WAV, first converting it to
// sampleRate Hz when sampleRate is positive. Every failure wraps
// ErrEncoding and names the path.
func Save(path string, track *audio.Track, sampleRate int) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".wav" && ext != ".wave" {
		return fmt.Errorf("%w: %s: %w", ErrEncoding, path, ErrUnsupportedOutput)
	}

	if sampleRate > 0 {
		resampled, err := audio.Resample(track, sampleRate)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEncoding, path, err)
		}
		track = resampled
	}

	return writeFile(path, func(w io.WriteSeeker) error {
		return wav.Encode(w, track)
	})
}

// writeFile creates path and fills it with write. A failed write removes the
// partial file.
func writeFile(path string, write func(w io.WriteSeeker) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %s: %w", ErrEncoding, path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	return nil
}
