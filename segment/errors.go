// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	// ErrNoRanges is returned by Stitch when there is nothing to join.
	ErrNoRanges = errors.New("no ranges to stitch")

	// ErrInvalidRange is returned by Stitch for a range that is empty,
	// reversed or outside the track.
	ErrInvalidRange = errors.New("invalid range")
)
