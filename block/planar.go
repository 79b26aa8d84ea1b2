// SPDX-License-Identifier: EPL-2.0

package block

import "fmt"

// Planar is a view over one separate buffer per channel: the sample at
// (c, f) lives at index f of buffer c. Decoders that emit per-channel
// subframes map onto this layout without copying.
type Planar struct {
	data   [][]float32
	frames int
}

// NewPlanar builds a planar view over data. The outer slice must hold
// exactly channels buffers and every buffer must hold exactly frames
// values.
func NewPlanar(data [][]float32, channels, frames int) (*Planar, error) {
	if err := checkShape(channels, frames); err != nil {
		return nil, err
	}
	if len(data) != channels {
		return nil, fmt.Errorf("%w: %d channel buffers, declared %d",
			ErrShapeMismatch, len(data), channels)
	}
	for c, ch := range data {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d holds %d frames, declared %d",
				ErrShapeMismatch, c, len(ch), frames)
		}
	}

	return &Planar{data: data, frames: frames}, nil
}

func (b *Planar) Channels() int { return len(b.data) }
func (b *Planar) Frames() int   { return b.frames }

// Data exposes the backing buffers. Mutating them mutates the view.
func (b *Planar) Data() [][]float32 { return b.data }

func (b *Planar) Sample(channel, frame int) (float32, error) {
	if err := checkIndex(channel, frame, len(b.data), b.frames); err != nil {
		return 0, err
	}

	return b.data[channel][frame], nil
}

func (b *Planar) SetSample(channel, frame int, v float32) error {
	if err := checkIndex(channel, frame, len(b.data), b.frames); err != nil {
		return err
	}

	b.data[channel][frame] = v
	return nil
}

func (b *Planar) Frame(frame int, dst []float32) error {
	if frame < 0 || frame >= b.frames {
		return fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfRange, frame, b.frames)
	}
	if err := checkFrameDst(dst, len(b.data)); err != nil {
		return err
	}

	for c := range b.data {
		dst[c] = b.data[c][frame]
	}
	return nil
}
