// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"

	"github.com/ik5/loudcut/audio"
)

// Clipper is a track that can hand out sub-ranges of itself and an empty
// buffer of the same format to append them to.
type Clipper interface {
	Len() int
	Slice(start, end int) (*audio.Track, error)
	Builder() *audio.Builder
}

// Stitch concatenates the audio of ranges, in the given order, into a new
// track. The result's Len is the sum of the ranges' lengths.
//
// Callers should check for an empty ranges list themselves; Stitch reports
// it as ErrNoRanges.
func Stitch(track Clipper, ranges []Range) (*audio.Track, error) {
	if len(ranges) == 0 {
		return nil, ErrNoRanges
	}

	n := track.Len()
	for _, r := range ranges {
		if r.Start < 0 || r.Start >= r.End || r.End > n {
			return nil, fmt.Errorf("%w: %s of %d", ErrInvalidRange, r, n)
		}
	}

	clips := make([]*audio.Track, len(ranges))
	frames := 0
	for i, r := range ranges {
		clip, err := track.Slice(r.Start, r.End)
		if err != nil {
			return nil, fmt.Errorf("slicing %s: %w", r, err)
		}
		clips[i] = clip
		frames += clip.Frames()
	}

	out := track.Builder()
	out.Grow(frames)
	for i, clip := range clips {
		if err := out.Append(clip); err != nil {
			return nil, fmt.Errorf("appending %s: %w", ranges[i], err)
		}
	}

	return out.Track()
}
