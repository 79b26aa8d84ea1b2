// SPDX-License-Identifier: EPL-2.0

// Package audclip extracts windowed clips out of encoded audio streams and
// serializes sample blocks back into WAV containers.
//
// The package detects the container format from the stream's leading
// bytes, decodes the selected frame and channel window into an owned
// in-memory Clip of normalized float32 samples, and can write any sample
// block back out as uncompressed RIFF/WAVE.
//
// # Supported Formats
//
// Decoding:
//   - WAV (PCM 16-bit and IEEE float 32-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// Encoding writes WAV only.
//
// # Quick Start
//
// Read half a second out of a file, starting at frame 48000:
//
//	file, _ := os.Open("audio.flac")
//	clip, err := audclip.Read(file, audio.ReadConfig{
//	    Start: audio.AtFrame(48000),
//	    Stop:  audio.AtTime(1500 * time.Millisecond),
//	})
//	if err != nil {
//	    // Handle error
//	}
//	// clip.Samples() holds interleaved float32 in [-1.0, 1.0]
//
// Write it back out as 16-bit PCM:
//
//	out, _ := os.Create("clip.wav")
//	audclip.Write(out, clip.Block(), clip.SampleRate(), audclip.WriteConfig{})
//
// Window bounds are clamped to the stream; a start bound past the stop
// bound yields an empty clip rather than an error. Decoders that can seek
// jump straight to the window start, the rest decode and discard.
//
// # Sample Blocks
//
// The block subpackage views caller memory as a channels-by-frames sample
// block in interleaved, sequential, or planar layout. audclip.Write
// accepts any of them; block.Copy converts between layouts.
//
// # Processing Pipelines
//
// The audio subpackage composes sources for custom pipelines:
//
//	src := audio.NewClipSource(clip)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// ReadPCM16 bundles that chain into one call for telephony-style output.
//
// See the individual subpackages for more detailed documentation.
package audclip
