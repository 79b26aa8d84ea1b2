package audclip_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/ik5/audclip"
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/block"
)

// encodeWav serializes interleaved samples into a WAV container.
func encodeWav(t *testing.T, samples []float32, channels, sampleRate int, format audio.SampleFormat) []byte {
	t.Helper()

	view, err := block.NewInterleaved(samples, channels, len(samples)/channels)
	if err != nil {
		t.Fatalf("NewInterleaved() error = %v", err)
	}

	var buf bytes.Buffer
	if err := audclip.Write(&buf, view, sampleRate, audclip.WriteConfig{Format: format}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return buf.Bytes()
}

func TestRoundTripInt16(t *testing.T) {
	t.Parallel()

	// Two channels, three frames: [[0,0],[1,1],[0,1]].
	samples := []float32{0, 0, 1, 1, 0, 1}
	data := encodeWav(t, samples, 2, 48000, audio.Int16)

	clip, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if clip.SampleRate() != 48000 || clip.Channels() != 2 || clip.Frames() != 3 {
		t.Fatalf("clip = %d Hz x %d channels x %d frames, want 48000 x 2 x 3",
			clip.SampleRate(), clip.Channels(), clip.Frames())
	}
	for i, want := range samples {
		if math.Abs(float64(clip.Samples()[i]-want)) > 1.0/32768.0 {
			t.Errorf("sample %d = %v, want %v within one quantization step", i, clip.Samples()[i], want)
		}
	}
}

func TestRoundTripFloat32Exact(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.123456, -0.9999, 1, -1, 1e-7}
	data := encodeWav(t, samples, 2, 44100, audio.Float32)

	clip, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	for i, want := range samples {
		if clip.Samples()[i] != want {
			t.Errorf("sample %d = %v, want exactly %v", i, clip.Samples()[i], want)
		}
	}
}

func TestReadWindow(t *testing.T) {
	t.Parallel()

	const channels, frames = 2, 1000
	samples := make([]float32, channels*frames)
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			samples[f*channels+c] = float32(f%100) / 128
		}
	}
	data := encodeWav(t, samples, channels, 8000, audio.Float32)

	cfg := audio.ReadConfig{
		Start: audio.AtFrame(300),
		Stop:  audio.AtFrame(400),
	}
	clip, err := audclip.Read(bytes.NewReader(data), cfg)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if clip.Frames() != 100 {
		t.Fatalf("clip has %d frames, want 100", clip.Frames())
	}
	if clip.Samples()[0] != samples[600] {
		t.Errorf("first sample = %v, want %v", clip.Samples()[0], samples[600])
	}
}

func TestReadWindow_TimeBounds(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 8000) // one second mono at 8 kHz
	data := encodeWav(t, samples, 1, 8000, audio.Float32)

	clip, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{
		Start: audio.AtTime(250 * time.Millisecond),
		Stop:  audio.AtTime(750 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if clip.Frames() != 4000 {
		t.Errorf("clip has %d frames, want 4000", clip.Frames())
	}
}

func TestReadWindow_ChannelSelection(t *testing.T) {
	t.Parallel()

	// Channel 0 ramps up, channel 1 ramps down.
	const frames = 50
	samples := make([]float32, 2*frames)
	for f := 0; f < frames; f++ {
		samples[f*2] = float32(f) / 64
		samples[f*2+1] = -float32(f) / 64
	}
	data := encodeWav(t, samples, 2, 8000, audio.Float32)

	clip, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{
		FirstChannel: 1,
		LastChannel:  2,
	})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if clip.Channels() != 1 || clip.Frames() != frames {
		t.Fatalf("clip = %d channels x %d frames, want 1 x %d", clip.Channels(), clip.Frames(), frames)
	}
	for f := 0; f < frames; f++ {
		if clip.Samples()[f] != -float32(f)/64 {
			t.Errorf("frame %d = %v, want %v", f, clip.Samples()[f], -float32(f)/64)
		}
	}
}

// A plain reader forces the header peek to buffer and the window skip to
// decode-and-discard; the result must match the seekable path exactly.
func TestRead_PlainReaderMatchesSeekable(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) / 50))
	}
	data := encodeWav(t, samples, 2, 8000, audio.Float32)

	cfg := audio.ReadConfig{Start: audio.AtFrame(123), Stop: audio.AtFrame(456)}

	seekable, err := audclip.Read(bytes.NewReader(data), cfg)
	if err != nil {
		t.Fatalf("Read(seekable) error = %v", err)
	}
	plain, err := audclip.Read(bytes.NewBuffer(data), cfg)
	if err != nil {
		t.Fatalf("Read(plain) error = %v", err)
	}

	if !bytes.Equal(float32Bytes(seekable.Samples()), float32Bytes(plain.Samples())) {
		t.Error("plain-reader clip differs from seekable-reader clip")
	}
}

func float32Bytes(s []float32) []byte {
	out := make([]byte, 0, 4*len(s))
	for _, v := range s {
		bits := math.Float32bits(v)
		out = append(out, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
	}
	return out
}

func TestRead_EmptyWindow(t *testing.T) {
	t.Parallel()

	data := encodeWav(t, make([]float32, 100), 1, 8000, audio.Int16)

	clip, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{
		Start: audio.AtFrame(80),
		Stop:  audio.AtFrame(20),
	})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if clip.Frames() != 0 {
		t.Errorf("clip has %d frames, want 0", clip.Frames())
	}
}

func TestRead_ChannelRangeError(t *testing.T) {
	t.Parallel()

	data := encodeWav(t, make([]float32, 100), 2, 8000, audio.Int16)

	_, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{FirstChannel: 2, LastChannel: 3})
	if !errors.Is(err, audio.ErrChannelRange) {
		t.Errorf("Read() error = %v, want ErrChannelRange", err)
	}
}

func TestOpen_UnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := audclip.Open(bytes.NewReader([]byte("certainly not audio data"))); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Open() error = %v, want ErrUnknownFormat", err)
	}
	if _, err := audclip.Open(bytes.NewReader(nil)); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Open() on empty input error = %v, want ErrUnknownFormat", err)
	}
}

func TestOpen_DetectsWav(t *testing.T) {
	t.Parallel()

	data := encodeWav(t, make([]float32, 40), 2, 44100, audio.Int16)

	src, err := audclip.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("source = %d Hz x %d channels, want 44100 x 2", src.SampleRate(), src.Channels())
	}
	// Header peek must not consume the stream: the source still reports
	// the full length.
	if n, ok := src.Frames(); !ok || n != 20 {
		t.Errorf("Frames() = %d, %v, want 20, true", n, ok)
	}
}

func TestOpenRegistry_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry() // empty: nothing probes

	data := encodeWav(t, make([]float32, 10), 1, 8000, audio.Int16)
	if _, err := audclip.OpenRegistry(reg, bytes.NewReader(data)); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("OpenRegistry() error = %v, want ErrUnknownFormat", err)
	}
}

func TestReadPCM16(t *testing.T) {
	t.Parallel()

	// Constant half-scale stereo signal.
	samples := make([]float32, 2*8000)
	for i := range samples {
		samples[i] = 0.5
	}
	data := encodeWav(t, samples, 2, 8000, audio.Float32)

	pcm16, rate, err := audclip.ReadPCM16(bytes.NewReader(data), audio.ReadConfig{}, 8000)
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(pcm16) == 0 {
		t.Fatal("ReadPCM16() returned no samples")
	}
	// Downmixing identical channels keeps the level.
	for i, v := range pcm16 {
		if v != 16384 {
			t.Fatalf("pcm16[%d] = %d, want 16384", i, v)
		}
	}
}

func TestWrite_LargeClipRoundTrip(t *testing.T) {
	t.Parallel()

	const channels, frames = 2, 48000
	samples := make([]float32, channels*frames)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) / 97))
	}

	data := encodeWav(t, samples, channels, 48000, audio.Float32)
	clip, err := audclip.Read(bytes.NewReader(data), audio.ReadConfig{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if clip.Frames() != frames {
		t.Fatalf("clip has %d frames, want %d", clip.Frames(), frames)
	}
	if clip.Duration() != time.Second {
		t.Errorf("Duration() = %v, want 1s", clip.Duration())
	}

	// Re-encode the clip's own block and compare containers.
	var buf bytes.Buffer
	if err := audclip.Write(&buf, clip.Block(), clip.SampleRate(), audclip.WriteConfig{Format: audio.Float32}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("re-encoded container differs from the original")
	}
}

func TestRead_EarlyStopLeavesReaderUsable(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 10000)
	data := encodeWav(t, samples, 1, 8000, audio.Int16)

	r := bytes.NewReader(data)
	clip, err := audclip.Read(r, audio.ReadConfig{Stop: audio.AtFrame(10)})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if clip.Frames() != 10 {
		t.Errorf("clip has %d frames, want 10", clip.Frames())
	}
}

// io errors mid-stream surface instead of yielding a partial clip.
func TestRead_TruncatedContainer(t *testing.T) {
	t.Parallel()

	data := encodeWav(t, make([]float32, 1000), 1, 8000, audio.Float32)
	truncated := data[:len(data)/2]

	clip, err := audclip.Read(bytes.NewReader(truncated), audio.ReadConfig{})
	// The wav decoder treats a short data chunk as end of stream, so this
	// yields the frames that physically arrived.
	if err != nil && err != io.EOF {
		t.Fatalf("Read() error = %v", err)
	}
	if clip != nil && clip.Frames() >= 1000 {
		t.Errorf("clip has %d frames from a truncated container", clip.Frames())
	}
}
