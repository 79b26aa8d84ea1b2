// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/block"
	"github.com/ik5/audclip/utils"
)

// Encode serializes blk as an uncompressed RIFF/WAVE container: a 44-byte
// header followed by interleaved sample data in the requested format.
//
// The block is traversed frame-major whatever its physical layout, since
// the container mandates interleaved storage. Int16 output saturates
// out-of-range samples; Float32 output writes the normalized values as-is.
// All size fields are computed from the block's shape before the header is
// written, so a successfully returned container is always well formed.
func Encode(w io.Writer, blk block.Block, sampleRate int, format audio.SampleFormat) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	channels := blk.Channels()
	frames := blk.Frames()
	sampleBytes := format.BitsPerSample() / 8
	blockAlign := channels * sampleBytes
	byteRate := uint32(sampleRate * blockAlign)
	dataSize := uint32(frames * blockAlign)
	riffSize := 36 + dataSize

	audioFormat := uint16(formatPCM)
	if format == audio.Float32 {
		audioFormat = formatIEEEFloat
	}

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // fmt chunk payload size
	binary.LittleEndian.PutUint16(header[20:22], audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(format.BitsPerSample()))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Serialize in chunks so large blocks don't need a full-size buffer.
	const chunkFrames = 2048
	frame := make([]float32, channels)
	buf := make([]byte, 0, chunkFrames*blockAlign)

	for f := 0; f < frames; f++ {
		if err := blk.Frame(f, frame); err != nil {
			return err
		}

		for _, s := range frame {
			switch format {
			case audio.Float32:
				buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(s))
			default:
				buf = binary.LittleEndian.AppendUint16(buf, uint16(utils.Float32ToInt16(s)))
			}
		}

		if len(buf) >= chunkFrames*blockAlign {
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("%w", err)
			}
			buf = buf[:0]
		}
	}

	if len(buf) > 0 {
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
