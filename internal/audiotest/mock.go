// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audclip/audio"
)

// MockSource is a test helper that generates audio data for testing. It
// implements audio.Source. The waveform function maps (frame, channel) to a
// sample value, so generated content is fully deterministic and checkable.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int64
	pos         int64
	seekable    bool
	seekErr     error
	waveform    func(frame int64, channel int) float32
}

// NewMockSource creates a new mock audio source generating totalFrames
// frames. The source is seekable by default.
func NewMockSource(sampleRate, channels int, totalFrames int64, waveform func(frame int64, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		seekable:    true,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels int, totalFrames int64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int64, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels int, totalFrames int64, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int64, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels int, totalFrames int64, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int64, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Frames always reports the configured length.
func (m *MockSource) Frames() (int64, bool) { return m.totalFrames, true }

// DisableSeek makes the source sequential-only, for exercising the
// decode-and-discard fallback. Returns m for chaining.
func (m *MockSource) DisableSeek() *MockSource {
	m.seekable = false
	return m
}

// FailSeek makes Seek return err, for exercising hard seek failures.
func (m *MockSource) FailSeek(err error) *MockSource {
	m.seekErr = err
	return m
}

func (m *MockSource) Seek(frame int64) error {
	if m.seekErr != nil {
		return m.seekErr
	}
	if !m.seekable {
		return audio.ErrSeekUnsupported
	}
	if frame < 0 {
		frame = 0
	}
	if frame > m.totalFrames {
		frame = m.totalFrames
	}
	m.pos = frame
	return nil
}

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.pos = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.totalFrames {
		return 0, io.EOF
	}

	frames := int64(len(dst) / m.channels)
	if available := m.totalFrames - m.pos; frames > available {
		frames = available
	}

	for f := int64(0); f < frames; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[f*int64(m.channels)+int64(ch)] = m.waveform(m.pos+f, ch)
		}
	}

	m.pos += frames
	written := int(frames) * m.channels

	if m.pos >= m.totalFrames {
		return written, io.EOF
	}
	return written, nil
}
