// SPDX-License-Identifier: EPL-2.0

package block

import "fmt"

// Sequential is a view over one flat buffer where each channel's samples
// form a contiguous run: the sample at (c, f) lives at index c*frames+f.
type Sequential struct {
	data     []float32
	channels int
	frames   int
}

// NewSequential builds a sequential view over data. The buffer length must
// equal channels*frames exactly.
func NewSequential(data []float32, channels, frames int) (*Sequential, error) {
	if err := checkShape(channels, frames); err != nil {
		return nil, err
	}
	if len(data) != channels*frames {
		return nil, fmt.Errorf("%w: %d values for %d channels x %d frames",
			ErrShapeMismatch, len(data), channels, frames)
	}

	return &Sequential{data: data, channels: channels, frames: frames}, nil
}

func (b *Sequential) Channels() int { return b.channels }
func (b *Sequential) Frames() int   { return b.frames }

// Data exposes the backing buffer. Mutating it mutates the view.
func (b *Sequential) Data() []float32 { return b.data }

func (b *Sequential) Sample(channel, frame int) (float32, error) {
	if err := checkIndex(channel, frame, b.channels, b.frames); err != nil {
		return 0, err
	}

	return b.data[channel*b.frames+frame], nil
}

func (b *Sequential) SetSample(channel, frame int, v float32) error {
	if err := checkIndex(channel, frame, b.channels, b.frames); err != nil {
		return err
	}

	b.data[channel*b.frames+frame] = v
	return nil
}

func (b *Sequential) Frame(frame int, dst []float32) error {
	if frame < 0 || frame >= b.frames {
		return fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfRange, frame, b.frames)
	}
	if err := checkFrameDst(dst, b.channels); err != nil {
		return err
	}

	for c := 0; c < b.channels; c++ {
		dst[c] = b.data[c*b.frames+frame]
	}
	return nil
}
