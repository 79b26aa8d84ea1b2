// SPDX-License-Identifier: EPL-2.0

package audclip_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/ik5/audclip"
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/internal/audiotest"
)

// Decoding a window out of a generated source, encoding it, and reading
// the container back must reproduce the window.
func TestGeneratedSourceRoundTrip(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 500, func(frame int64, channel int) float32 {
		return float32(frame%200)/256 + float32(channel)/1024
	})

	clip, err := audio.ReadAll(src, audio.ReadConfig{
		Start: audio.AtFrame(100),
		Stop:  audio.AtFrame(300),
	})
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if clip.Frames() != 200 {
		t.Fatalf("clip has %d frames, want 200", clip.Frames())
	}

	var container bytes.Buffer
	if err := audclip.Write(&container, clip.Block(), clip.SampleRate(), audclip.WriteConfig{Format: audio.Float32}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	decoded, err := audclip.Read(bytes.NewReader(container.Bytes()), audio.ReadConfig{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if decoded.Frames() != clip.Frames() || decoded.Channels() != clip.Channels() {
		t.Fatalf("decoded %d frames x %d channels, want %d x %d",
			decoded.Frames(), decoded.Channels(), clip.Frames(), clip.Channels())
	}
	for i := range clip.Samples() {
		if decoded.Samples()[i] != clip.Samples()[i] {
			t.Fatalf("sample %d = %v, want %v", i, decoded.Samples()[i], clip.Samples()[i])
		}
	}
}

// The seek path and the decode-and-discard path must produce the same clip.
func TestGeneratedSource_DiscardFallbackMatchesSeek(t *testing.T) {
	t.Parallel()

	waveform := func(frame int64, channel int) float32 {
		return float32(math.Sin(float64(frame)/30)) / float32(channel+1)
	}
	cfg := audio.ReadConfig{Start: audio.AtFrame(250), Stop: audio.AtFrame(750)}

	seeking, err := audio.ReadAll(audiotest.NewMockSource(48000, 2, 1000, waveform), cfg)
	if err != nil {
		t.Fatalf("ReadAll(seekable) error = %v", err)
	}
	discarding, err := audio.ReadAll(audiotest.NewMockSource(48000, 2, 1000, waveform).DisableSeek(), cfg)
	if err != nil {
		t.Fatalf("ReadAll(sequential) error = %v", err)
	}

	if len(seeking.Samples()) != len(discarding.Samples()) {
		t.Fatalf("clip sizes differ: %d vs %d", len(seeking.Samples()), len(discarding.Samples()))
	}
	for i := range seeking.Samples() {
		if seeking.Samples()[i] != discarding.Samples()[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, seeking.Samples()[i], discarding.Samples()[i])
		}
	}
}

// A sine source pushed through the resample-downmix chain stays in range
// and roughly keeps its length ratio.
func TestGeneratedSource_ResampleChain(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 2, 16000, 440)
	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))

	var total int
	buf := make([]float32, 1024)
	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			if buf[i] < -1 || buf[i] > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if err != nil {
			break
		}
	}

	// Half the rate should yield about half the frames.
	if total < 7000 || total > 8100 {
		t.Errorf("chain produced %d samples, want about 8000", total)
	}
}

func TestGeneratedSource_ConstantAndSilence(t *testing.T) {
	t.Parallel()

	silent, err := audio.ReadAll(audiotest.NewSilentSource(8000, 1, 100), audio.ReadConfig{})
	if err != nil {
		t.Fatalf("ReadAll(silence) error = %v", err)
	}
	for i, v := range silent.Samples() {
		if v != 0 {
			t.Fatalf("silent sample %d = %v", i, v)
		}
	}

	constant, err := audio.ReadAll(audiotest.NewConstantSource(8000, 1, 100, 0.25), audio.ReadConfig{})
	if err != nil {
		t.Fatalf("ReadAll(constant) error = %v", err)
	}
	for i, v := range constant.Samples() {
		if v != 0.25 {
			t.Fatalf("constant sample %d = %v, want 0.25", i, v)
		}
	}
}
