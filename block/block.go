// SPDX-License-Identifier: EPL-2.0

package block

import "fmt"

// Block gives uniform read/write access to multi-channel sample data
// regardless of how the samples are laid out in memory. Views never own or
// copy the memory they are built over.
//
// Frame traversal (Frame for every index from 0 to Frames()-1) is the
// canonical order for cross-layout copies and for serialization.
type Block interface {
	// Channels returns the channel count fixed at construction.
	Channels() int
	// Frames returns the frame count fixed at construction.
	Frames() int
	// Sample returns the value at (channel, frame).
	Sample(channel, frame int) (float32, error)
	// SetSample stores v at (channel, frame).
	SetSample(channel, frame int, v float32) error
	// Frame copies one frame, all channels in channel order, into dst.
	// dst must hold at least Channels() values.
	Frame(frame int, dst []float32) error
}

// checkShape validates the channel/frame dimensions shared by all layouts.
func checkShape(channels, frames int) error {
	if channels <= 0 {
		return fmt.Errorf("%w: channel count %d must be positive", ErrShapeMismatch, channels)
	}
	if frames < 0 {
		return fmt.Errorf("%w: negative frame count %d", ErrShapeMismatch, frames)
	}

	return nil
}

// checkIndex validates a (channel, frame) pair against the view dimensions.
func checkIndex(channel, frame, channels, frames int) error {
	if channel < 0 || channel >= channels {
		return fmt.Errorf("%w: channel %d of %d", ErrIndexOutOfRange, channel, channels)
	}
	if frame < 0 || frame >= frames {
		return fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfRange, frame, frames)
	}

	return nil
}

// checkFrameDst validates the destination slice of a Frame call.
func checkFrameDst(dst []float32, channels int) error {
	if len(dst) < channels {
		return fmt.Errorf("%w: frame buffer holds %d values, need %d", ErrShapeMismatch, len(dst), channels)
	}

	return nil
}
