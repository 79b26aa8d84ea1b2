// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio stream decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams. Vorbis stores audio as floats natively, so decoded samples are
// passed through unchanged as float32 values in the range [-1.0, 1.0].
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Seeking and Length
//
// For seekable inputs oggvorbis scans the stream's granule positions, so
// the source reports its total frame count through Frames and supports
// frame-accurate Seek. On plain readers both are unavailable and Seek
// returns audio.ErrSeekUnsupported; windowed reads then fall back to
// decoding and discarding.
//
// # Limitations
//
//   - Vorbis writing is not supported (decoding only)
//   - Chained Ogg streams decode as a single logical stream
package vorbis
