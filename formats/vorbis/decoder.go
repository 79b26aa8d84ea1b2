package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audclip/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
	Length() int64
	SetPosition(int64) error
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// Frames reports the stream length in frames. oggvorbis can only compute
// it for seekable inputs; it reports 0 otherwise.
func (s *source) Frames() (int64, bool) {
	n := s.dec.Length()
	if n == 0 {
		return 0, false
	}
	return n, true
}

func (s *source) Seek(frame int64) error {
	total := s.dec.Length()
	if total == 0 {
		return audio.ErrSeekUnsupported
	}
	if frame < 0 {
		frame = 0
	}
	if frame > total {
		frame = total
	}
	if err := s.dec.SetPosition(frame); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// oggvorbis decodes whole frames, so hand it a destination trimmed to
	// a multiple of the channel count. The returned count is in samples.
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err == nil {
		return 0, nil
	}
	return n, err
}

type Decoder struct{}

// Probe reports whether header starts an Ogg stream.
func (Decoder) Probe(header []byte) bool {
	return len(header) >= 4 && bytes.Equal(header[0:4], []byte("OggS"))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		bufSize:    4096,
	}, nil
}
