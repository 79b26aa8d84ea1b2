// SPDX-License-Identifier: EPL-2.0

package block

import "fmt"

// Interleaved is a view over one flat buffer where the channels of a frame
// sit next to each other: the sample at (c, f) lives at index f*channels+c.
// This is the layout audio hardware and container formats typically use.
type Interleaved struct {
	data     []float32
	channels int
	frames   int
}

// NewInterleaved builds an interleaved view over data. The buffer length
// must equal channels*frames exactly.
func NewInterleaved(data []float32, channels, frames int) (*Interleaved, error) {
	if err := checkShape(channels, frames); err != nil {
		return nil, err
	}
	if len(data) != channels*frames {
		return nil, fmt.Errorf("%w: %d values for %d channels x %d frames",
			ErrShapeMismatch, len(data), channels, frames)
	}

	return &Interleaved{data: data, channels: channels, frames: frames}, nil
}

func (b *Interleaved) Channels() int { return b.channels }
func (b *Interleaved) Frames() int   { return b.frames }

// Data exposes the backing buffer. Mutating it mutates the view.
func (b *Interleaved) Data() []float32 { return b.data }

func (b *Interleaved) Sample(channel, frame int) (float32, error) {
	if err := checkIndex(channel, frame, b.channels, b.frames); err != nil {
		return 0, err
	}

	return b.data[frame*b.channels+channel], nil
}

func (b *Interleaved) SetSample(channel, frame int, v float32) error {
	if err := checkIndex(channel, frame, b.channels, b.frames); err != nil {
		return err
	}

	b.data[frame*b.channels+channel] = v
	return nil
}

func (b *Interleaved) Frame(frame int, dst []float32) error {
	if frame < 0 || frame >= b.frames {
		return fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfRange, frame, b.frames)
	}
	if err := checkFrameDst(dst, b.channels); err != nil {
		return err
	}

	base := frame * b.channels
	copy(dst, b.data[base:base+b.channels])
	return nil
}
