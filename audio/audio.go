// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a decoding session: a lazy, finite stream of PCM produced by
// one codec collaborator. A Source is consumed once; after it reports
// io.EOF a fresh Decode call is needed to read the data again.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Frames reports the total frame count of the stream. ok is false when
	// the container does not declare its length up front, e.g. a
	// non-seekable byte source.
	Frames() (total int64, ok bool)
	// Seek positions the stream so the next ReadSamples call starts at the
	// given frame index. Sources that cannot seek return ErrSeekUnsupported
	// and remain usable for sequential reading.
	Seek(frame int64) error
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	// Probe reports whether header plausibly starts this decoder's format.
	// It inspects only the bytes it is given and never touches the source.
	Probe(header []byte) bool
	Decode(r io.Reader) (Source, error)
}

// Registry holds decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
// Registration order matters: Detect probes in the order formats were first
// registered and the first accepting decoder wins.
type Registry struct {
	codecs map[string]Decoder
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Detect returns the first registered decoder whose Probe accepts header,
// together with its format key.
func (r *Registry) Detect(header []byte) (Decoder, string, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, format := range r.order {
		if d := r.codecs[format]; d.Probe(header) {
			return d, format, true
		}
	}

	return nil, "", false
}

// Formats lists the registered format keys in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
