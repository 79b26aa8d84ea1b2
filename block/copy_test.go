// SPDX-License-Identifier: EPL-2.0

package block

import (
	"errors"
	"testing"
)

func TestCopy_AcrossLayouts(t *testing.T) {
	t.Parallel()

	const channels, frames = 2, 5
	srcViews := buildViews(t, channels, frames)

	newDst := map[string]func() Block{
		"interleaved": func() Block {
			v, _ := NewInterleaved(make([]float32, channels*frames), channels, frames)
			return v
		},
		"sequential": func() Block {
			v, _ := NewSequential(make([]float32, channels*frames), channels, frames)
			return v
		},
		"planar": func() Block {
			planes := make([][]float32, channels)
			for c := range planes {
				planes[c] = make([]float32, frames)
			}
			v, _ := NewPlanar(planes, channels, frames)
			return v
		},
	}

	for srcName, src := range srcViews {
		for dstName, mk := range newDst {
			t.Run(srcName+"_to_"+dstName, func(t *testing.T) {
				dst := mk()
				if err := Copy(dst, src); err != nil {
					t.Fatalf("Copy() error = %v", err)
				}

				for c := 0; c < channels; c++ {
					for f := 0; f < frames; f++ {
						got, _ := dst.Sample(c, f)
						want, _ := src.Sample(c, f)
						if got != want {
							t.Errorf("dst.Sample(%d, %d) = %v, want %v", c, f, got, want)
						}
					}
				}
			})
		}
	}
}

func TestCopy_ShapeMismatch(t *testing.T) {
	t.Parallel()

	src, _ := NewInterleaved(make([]float32, 6), 2, 3)
	dst, _ := NewInterleaved(make([]float32, 8), 2, 4)

	if err := Copy(dst, src); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Copy() error = %v, want ErrShapeMismatch", err)
	}
}
