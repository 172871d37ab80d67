// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("no decoder registered for format")
	ErrInvalidUnit       = errors.New("time unit is shorter than one sample frame")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrSliceOutOfRange   = errors.New("slice out of range")
	ErrFormatMismatch    = errors.New("tracks differ in sample rate or time unit")
)
