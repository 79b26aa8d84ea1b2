// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio stream decoding.
//
// This package uses github.com/mewkiz/flac to decode native FLAC streams.
// Decoded samples are normalized to float32 values in the range
// [-1.0, 1.0] using the bit depth of each FLAC frame.
//
// # Decoding
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
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
// The total frame count comes from the STREAMINFO block; encoders that
// leave it at zero make the length unknown. Seeking requires an
// io.ReadSeeker input. mewkiz/flac seeks to FLAC frame boundaries, so
// the source transparently skips the remaining frames up to the exact
// target position. On plain readers Seek returns
// audio.ErrSeekUnsupported and windowed reads fall back to decoding and
// discarding.
//
// # Limitations
//
//   - FLAC writing is not supported (decoding only)
//   - Ogg-encapsulated FLAC is not supported, only native streams
package flac
