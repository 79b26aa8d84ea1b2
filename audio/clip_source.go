// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// ClipSource replays a decoded Clip as a Source. It is always seekable,
// which makes it a convenient head for resampling chains and for feeding
// the encoder from in-memory audio.
type ClipSource struct {
	clip *Clip
	pos  int64 // frame cursor
}

func NewClipSource(clip *Clip) *ClipSource {
	return &ClipSource{clip: clip}
}

func (s *ClipSource) SampleRate() int { return s.clip.SampleRate() }
func (s *ClipSource) Channels() int   { return s.clip.Channels() }
func (s *ClipSource) BufSize() int    { return 4096 }
func (s *ClipSource) Close() error    { return nil }

func (s *ClipSource) Frames() (int64, bool) {
	return int64(s.clip.Frames()), true
}

// Seek moves the frame cursor. Positions outside the clip clamp to its
// bounds.
func (s *ClipSource) Seek(frame int64) error {
	if frame < 0 {
		frame = 0
	}
	if total := int64(s.clip.Frames()); frame > total {
		frame = total
	}
	s.pos = frame
	return nil
}

func (s *ClipSource) ReadSamples(dst []float32) (int, error) {
	channels := s.clip.Channels()
	remaining := int64(s.clip.Frames()) - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := int64(len(dst) / channels)
	if frames > remaining {
		frames = remaining
	}
	if frames == 0 {
		return 0, nil
	}

	base := s.pos * int64(channels)
	n := copy(dst, s.clip.Samples()[base:base+frames*int64(channels)])
	s.pos += frames

	if s.pos >= int64(s.clip.Frames()) {
		return n, io.EOF
	}
	return n, nil
}
