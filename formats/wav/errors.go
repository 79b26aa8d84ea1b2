package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedFormat    = errors.New("only PCM 16-bit and IEEE float 32-bit supported")
	ErrMissingDataChunk     = errors.New("no data chunk found")
	ErrInvalidSampleRate    = errors.New("sample rate must be positive")
)
