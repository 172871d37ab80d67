// SPDX-License-Identifier: EPL-2.0

package loudcut

import "errors"

var (
	// ErrInvalidInput marks a source file that is missing, unreadable or
	// in a format no registered decoder understands.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncoding marks a failure to write the output file.
	ErrEncoding = errors.New("encoding failed")

	// ErrUnsupportedOutput is returned by Save for non-WAV output paths.
	ErrUnsupportedOutput = errors.New("only WAV output is supported")
)
