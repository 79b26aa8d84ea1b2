package audclip

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/block"
	"github.com/ik5/audclip/formats/aiff"
	"github.com/ik5/audclip/formats/flac"
	"github.com/ik5/audclip/formats/mp3"
	"github.com/ik5/audclip/formats/vorbis"
	"github.com/ik5/audclip/formats/wav"
	"github.com/ik5/audclip/utils"
)

// probeLen is how many leading bytes format probes get to look at.
const probeLen = 16

// DefaultRegistry returns a registry with every built-in format
// registered. mp3 goes last: a bare frame sync is the weakest signature.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	return reg
}

var defaultRegistry = DefaultRegistry()

// Open detects the format of r by its leading bytes and returns a decoding
// Source over it. Seekable readers stay seekable: the header peek rewinds
// instead of buffering.
func Open(r io.Reader) (audio.Source, error) {
	return OpenRegistry(defaultRegistry, r)
}

// OpenRegistry is Open against a caller-supplied registry.
func OpenRegistry(reg *audio.Registry, r io.Reader) (audio.Source, error) {
	header, pr, err := peekHeader(r)
	if err != nil {
		return nil, err
	}

	dec, _, ok := reg.Detect(header)
	if !ok {
		return nil, audio.ErrUnknownFormat
	}
	return dec.Decode(pr)
}

// peekHeader reads up to probeLen bytes without consuming them. For an
// io.ReadSeeker it rewinds, preserving the reader's seekability for the
// decoder; anything else gets wrapped in a bufio.Reader.
func peekHeader(r io.Reader) ([]byte, io.Reader, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		pos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, nil, fmt.Errorf("%w", err)
		}

		header := make([]byte, probeLen)
		n, err := io.ReadFull(rs, header)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, nil, fmt.Errorf("%w", err)
		}

		if _, err := rs.Seek(pos, io.SeekStart); err != nil {
			return nil, nil, fmt.Errorf("%w", err)
		}
		return header[:n], rs, nil
	}

	br := bufio.NewReader(r)
	header, err := br.Peek(probeLen)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("%w", err)
	}
	return header, br, nil
}

// Read decodes the window cfg selects out of the audio stream r, detecting
// the container format from its leading bytes. The source is always closed
// before returning.
func Read(r io.Reader, cfg audio.ReadConfig) (*audio.Clip, error) {
	return ReadRegistry(defaultRegistry, r, cfg)
}

// ReadRegistry is Read against a caller-supplied registry.
func ReadRegistry(reg *audio.Registry, r io.Reader, cfg audio.ReadConfig) (*audio.Clip, error) {
	src, err := OpenRegistry(reg, r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.ReadAll(src, cfg)
}

// WriteConfig selects the sample format of a written container. The zero
// value writes 16-bit PCM.
type WriteConfig struct {
	Format audio.SampleFormat
}

// Write serializes blk as a RIFF/WAVE container on w.
func Write(w io.Writer, blk block.Block, sampleRate int, cfg WriteConfig) error {
	return wav.Encode(w, blk, sampleRate, cfg.Format)
}

// ReadPCM16 decodes the selected window out of r, resamples it to
// targetRate, downmixes to mono and returns the result as 16-bit PCM.
// It is the windowed successor of a plain decode-resample-collect loop.
func ReadPCM16(r io.Reader, cfg audio.ReadConfig, targetRate int) ([]int16, int, error) {
	clip, err := Read(r, cfg)
	if err != nil {
		return nil, 0, err
	}

	mono := audio.NewMonoMixer(audio.NewResampler(audio.NewClipSource(clip), targetRate))
	defer mono.Close()

	pcm16 := make([]int16, 0, clip.Frames())
	buf := make([]float32, 4096)
	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
