package flac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audclip/audio"
)

// flacStream is an interface for flac.Stream to allow testing
type flacStream interface {
	ParseNext() (*frame.Frame, error)
	Seek(sampleNum uint64) (uint64, error)
	Close() error
}

type source struct {
	stream      flacStream
	sampleRate  int
	channels    int
	totalFrames int64
	seekable    bool

	pending []float32 // interleaved samples decoded but not yet delivered
	skip    int64     // frames to discard after a coarse seek
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }
func (s *source) BufSize() int    { return 4096 }

// Frames reports the count from the STREAMINFO block. Some encoders leave
// it at zero, which means unknown.
func (s *source) Frames() (int64, bool) {
	if s.totalFrames == 0 {
		return 0, false
	}
	return s.totalFrames, true
}

// Seek positions the stream at the requested frame. mewkiz/flac seeks to
// the start of the enclosing FLAC frame, so the remainder is skipped
// during the next read.
func (s *source) Seek(target int64) error {
	if !s.seekable {
		return audio.ErrSeekUnsupported
	}
	if target < 0 {
		target = 0
	}
	if s.totalFrames > 0 && target > s.totalFrames {
		target = s.totalFrames
	}

	actual, err := s.stream.Seek(uint64(target))
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	s.skip = target - int64(actual)
	s.pending = s.pending[:0]
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for len(s.pending) == 0 {
		f, err := s.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("%w", err)
		}
		s.interleave(f)
	}

	n := copy(dst, s.pending)
	rest := copy(s.pending, s.pending[n:])
	s.pending = s.pending[:rest]
	return n, nil
}

// interleave appends the frame's channel-separated samples to pending in
// frame order, normalized by the frame's bit depth.
func (s *source) interleave(f *frame.Frame) {
	frames := len(f.Subframes[0].Samples)

	start := 0
	if s.skip > 0 {
		if s.skip >= int64(frames) {
			s.skip -= int64(frames)
			return
		}
		start = int(s.skip)
		s.skip = 0
	}

	scale := 1.0 / float32(int64(1)<<(f.BitsPerSample-1))
	for i := start; i < frames; i++ {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, float32(sub.Samples[i])*scale)
		}
	}
}

type Decoder struct{}

// Probe reports whether header starts a native FLAC stream.
func (Decoder) Probe(header []byte) bool {
	return len(header) >= 4 && bytes.Equal(header[0:4], []byte("fLaC"))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var (
		stream   *flac.Stream
		err      error
		seekable bool
	)
	if rs, ok := r.(io.ReadSeeker); ok {
		stream, err = flac.NewSeek(rs)
		seekable = true
	} else {
		stream, err = flac.New(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	return &source{
		stream:      stream,
		sampleRate:  int(info.SampleRate),
		channels:    int(info.NChannels),
		totalFrames: int64(info.NSamples),
		seekable:    seekable,
	}, nil
}
