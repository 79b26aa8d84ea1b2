// SPDX-License-Identifier: EPL-2.0

package block

import "errors"

var (
	// ErrShapeMismatch reports memory whose size does not match the declared
	// channel/frame dimensions. Views never truncate or pad silently.
	ErrShapeMismatch = errors.New("memory size does not match channels and frames")

	// ErrIndexOutOfRange reports a (channel, frame) access outside the view.
	ErrIndexOutOfRange = errors.New("channel or frame index out of range")
)
