// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrSeekUnsupported is returned by sources that can only be read
	// sequentially. The read pipeline recovers from it by decoding and
	// discarding up to the window start.
	ErrSeekUnsupported = errors.New("source does not support seeking")

	// ErrChannelRange reports a channel selection that does not fit the
	// source's channel count.
	ErrChannelRange = errors.New("requested channel range is invalid for the source")

	// ErrUnknownFormat is returned when no registered decoder recognizes
	// the input header.
	ErrUnknownFormat = errors.New("no registered decoder recognizes the data")
)
