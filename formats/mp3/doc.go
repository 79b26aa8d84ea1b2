// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio stream decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// It exposes the decoded audio as an audio.Source of float32 samples
// normalized to the range [-1.0, 1.0].
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Output is always 2 channels (go-mp3 upmixes mono input) at the stream's
// native sample rate.
//
// # Seeking and Length
//
// When the input reader is an io.ReadSeeker, the source reports its total
// frame count through Frames and supports frame-accurate Seek. On plain
// readers both are unavailable and Seek returns audio.ErrSeekUnsupported;
// windowed reads then fall back to decoding and discarding.
//
// # Limitations
//
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo
package mp3
