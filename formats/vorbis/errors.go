// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")
