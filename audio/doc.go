// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core decode pipeline primitives.
//
// This package contains the building blocks the format subpackages plug
// into:
//   - Source interface for decoding sessions
//   - Decoder interface and probe-based format Registry
//   - ReadConfig/ResolveWindow for frame and channel selection
//   - ReadAll, the windowed decode pipeline producing a Clip
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//
// # Source Interface
//
// The Source interface is a single decoding session:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() (int64, bool)
//	    Seek(frame int64) error
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines. A source is
// consumed once and is not reentrant: at most one ReadSamples or Seek call
// may be in flight at a time. Independent sources are safe to drive from
// separate goroutines since nothing is shared between sessions.
//
// # Windowed Reads
//
// ReadAll extracts a sub-range of frames and channels without keeping
// samples outside the selection:
//
//	clip, err := audio.ReadAll(src, audio.ReadConfig{
//	    Start:        audio.AtFrame(300),
//	    Stop:         audio.AtTime(500 * time.Millisecond),
//	    FirstChannel: 1,
//	})
//
// Sources that can seek jump straight to the window start; the others are
// decoded and discarded up to it, with identical results.
//
// # Format Registry
//
// The registry maps format keys to decoders and detects formats by
// probing header bytes. The first registered decoder whose probe accepts
// wins, so register formats with strong magic numbers before weak ones:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, format, ok := registry.Detect(header)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths; SampleFormat and the utils converters handle the
// boundary with serialized representations.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ErrSeekUnsupported
// is the one error the pipeline recovers from internally; every other
// error aborts the read with no partial result:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
