package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/utils"
)

// fmt chunk audio format codes.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

type wavSource struct {
	r  io.Reader
	rs io.ReadSeeker // non-nil when the input allows random access

	sampleRate  int
	channels    int
	format      uint16
	sampleBytes int

	dataStart int64 // byte offset of the data chunk payload
	dataSize  int64
	sizeKnown bool
	remaining int64

	buf []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return cap(s.buf) / s.sampleBytes }

func (s *wavSource) blockAlign() int64 { return int64(s.channels * s.sampleBytes) }

func (s *wavSource) Frames() (int64, bool) {
	if !s.sizeKnown {
		return 0, false
	}
	return s.dataSize / s.blockAlign(), true
}

func (s *wavSource) Seek(frame int64) error {
	if s.rs == nil || !s.sizeKnown {
		return audio.ErrSeekUnsupported
	}

	total := s.dataSize / s.blockAlign()
	if frame < 0 {
		frame = 0
	}
	if frame > total {
		frame = total
	}

	if _, err := s.rs.Seek(s.dataStart+frame*s.blockAlign(), io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.remaining = s.dataSize - frame*s.blockAlign()
	return nil
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	want := int64(len(dst)) * int64(s.sampleBytes)
	if want > s.remaining {
		want = s.remaining
		want -= want % int64(s.sampleBytes)
	}
	if cap(s.buf) < int(want) {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}
	s.remaining -= int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// Short data chunk; whatever arrived is all there is.
		s.remaining = 0
	}

	samples := n / s.sampleBytes
	switch s.format {
	case formatIEEEFloat:
		for i := 0; i < samples; i++ {
			bits := binary.LittleEndian.Uint32(s.buf[4*i : 4*i+4])
			dst[i] = math.Float32frombits(bits)
		}
	default:
		for i := 0; i < samples; i++ {
			v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
			dst[i] = utils.Int16ToFloat32(v)
		}
	}

	if samples == 0 {
		return 0, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

// Probe reports whether header starts a RIFF/WAVE stream.
func (Decoder) Probe(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[0:4], []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE"))
}

// Decode parses the RIFF structure up to the data chunk and returns a
// streaming source over the sample payload. Unknown chunks are skipped.
// When r is an io.ReadSeeker the source supports frame-accurate seeking.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	riff := make([]byte, 12)
	if _, err := io.ReadFull(r, riff); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if !bytes.Equal(riff[0:4], []byte("RIFF")) || !bytes.Equal(riff[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	var (
		offset        = int64(12)
		haveFmt       bool
		audioFormat   uint16
		channels      int
		sampleRate    int
		bitsPerSample int
	)

	chunk := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, chunk); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingDataChunk
			}
			return nil, fmt.Errorf("%w", err)
		}
		offset += 8
		size := int64(binary.LittleEndian.Uint32(chunk[4:8]))

		switch string(chunk[0:4]) {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			offset += size
			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true

		case "data":
			if !haveFmt || channels <= 0 || sampleRate <= 0 {
				return nil, ErrUnsupportedWavLayout
			}
			switch {
			case audioFormat == formatPCM && bitsPerSample == 16:
			case audioFormat == formatIEEEFloat && bitsPerSample == 32:
			default:
				return nil, ErrUnsupportedFormat
			}

			src := &wavSource{
				r:           r,
				sampleRate:  sampleRate,
				channels:    channels,
				format:      audioFormat,
				sampleBytes: bitsPerSample / 8,
				dataStart:   offset,
				dataSize:    size,
				sizeKnown:   uint32(size) != 0xFFFFFFFF,
				remaining:   size,
				buf:         make([]byte, 4096),
			}
			if !src.sizeKnown {
				// Streamed capture with an unfinished header: read until
				// the source runs dry.
				src.remaining = math.MaxInt64
			}
			if rs, ok := r.(io.ReadSeeker); ok {
				src.rs = rs
			}
			return src, nil

		default:
			// Chunk payloads are padded to even length.
			if err := skipBytes(r, size+size%2); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			offset += size + size%2
			continue
		}

		// Pad byte after an odd-sized fmt chunk.
		if size%2 == 1 {
			if err := skipBytes(r, 1); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			offset++
		}
	}
}

func skipBytes(r io.Reader, n int64) error {
	_, err := io.CopyN(io.Discard, r, n)
	return err
}
