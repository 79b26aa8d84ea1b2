// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audclip/block"
)

// Clip is fully decoded PCM owned by the caller: one contiguous interleaved
// float32 buffer plus its sample rate and channel count. The frame count is
// always derived from the buffer length, so the two can never fall out of
// sync. A Clip is immutable once produced.
type Clip struct {
	sampleRate int
	channels   int
	samples    []float32
}

// NewClip wraps samples as a Clip. The buffer must hold a whole number of
// interleaved frames for the given channel count.
func NewClip(samples []float32, sampleRate, channels int) (*Clip, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", block.ErrShapeMismatch, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count %d must be positive", block.ErrShapeMismatch, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a whole number of %d-channel frames",
			block.ErrShapeMismatch, len(samples), channels)
	}

	return &Clip{sampleRate: sampleRate, channels: channels, samples: samples}, nil
}

func (c *Clip) SampleRate() int { return c.sampleRate }
func (c *Clip) Channels() int   { return c.channels }

// Frames returns the frame count, derived from the buffer length.
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

// Samples exposes the interleaved backing buffer.
func (c *Clip) Samples() []float32 { return c.samples }

// Duration returns the clip length as wall time.
func (c *Clip) Duration() time.Duration {
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.sampleRate)
}

// Block returns an interleaved view over the clip's buffer. Sequential or
// planar views can be produced from it with block.Copy.
func (c *Clip) Block() *block.Interleaved {
	// The shape invariant is enforced at construction, so this cannot fail.
	b, _ := block.NewInterleaved(c.samples, c.channels, c.Frames())
	return b
}

// ReadAll drives src through the window selected by cfg and collects the
// retained samples into a Clip.
//
// The pipeline first tries Seek to reach the window start; sources that
// report ErrSeekUnsupported are decoded and discarded up to the start
// instead, which yields identical output. Batches are pulled until the
// window is full or the source is exhausted, keeping only the selected
// channel range of each frame. Reading is all-or-nothing: any decode error
// aborts with no partial Clip.
//
// ReadAll does not close src; the caller owns the session.
func ReadAll(src Source, cfg ReadConfig) (*Clip, error) {
	total, known := src.Frames()
	win, err := ResolveWindow(cfg, src.SampleRate(), src.Channels(), total, known)
	if err != nil {
		return nil, err
	}

	srcCh := src.Channels()
	keep := win.ChannelCount()

	var out []float32
	if n, ok := win.FrameCount(); ok {
		out = make([]float32, 0, n*int64(keep))
	}

	pos := int64(0)
	if win.Start > 0 {
		switch err := src.Seek(win.Start); {
		case err == nil:
			pos = win.Start
		case errors.Is(err, ErrSeekUnsupported):
			// Fall back to decoding and dropping frames below.
		default:
			return nil, fmt.Errorf("seeking to frame %d: %w", win.Start, err)
		}
	}

	bufFrames := src.BufSize() / srcCh
	if bufFrames < 1 {
		bufFrames = 1024
	}
	buf := make([]float32, bufFrames*srcCh)

	for {
		if win.Bounded() && pos >= win.Stop {
			break
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			frames := n / srcCh
			for f := 0; f < frames; f++ {
				if win.Bounded() && pos >= win.Stop {
					break
				}
				if pos >= win.Start {
					base := f * srcCh
					out = append(out, buf[base+win.FirstChannel:base+win.LastChannel]...)
				}
				pos++
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &Clip{sampleRate: src.SampleRate(), channels: keep, samples: out}, nil
}
