// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// The decoder streams PCM 16-bit and IEEE float 32-bit WAV data; the
// encoder serializes any block layout into an uncompressed container in
// either of those representations.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV data:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32 values
// in the range [-1.0, 1.0]. When the input is an io.ReadSeeker the source
// supports frame-accurate seeking; plain readers decode sequentially.
//
// # Writing WAV Files
//
// Encode writes a complete container from any block view:
//
//	view, _ := block.NewInterleaved(samples, 2, frames)
//	err := wav.Encode(file, view, 48000, audio.Int16)
//
// Header byte order and field layout are fixed little-endian; the size
// fields always reflect the serialized data exactly.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedFormat: a sample representation other than PCM 16-bit
//     or IEEE float 32-bit
//   - ErrUnsupportedWavLayout: a malformed or truncated fmt chunk
//   - ErrMissingDataChunk: the stream ends before any data chunk
//
// # File Format
//
// Containers consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: interleaved audio samples
//
// The decoder additionally skips unknown chunks (LIST, fact, cue and
// friends) on the way to the data chunk.
package wav
