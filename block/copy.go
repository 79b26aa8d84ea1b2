// SPDX-License-Identifier: EPL-2.0

package block

import "fmt"

// Copy transfers every sample from src into dst, traversing in frame order.
// This is the only supported conversion path between layouts; both views
// must have identical channel and frame counts.
func Copy(dst, src Block) error {
	if dst.Channels() != src.Channels() || dst.Frames() != src.Frames() {
		return fmt.Errorf("%w: cannot copy %dx%d into %dx%d",
			ErrShapeMismatch, src.Channels(), src.Frames(), dst.Channels(), dst.Frames())
	}

	buf := make([]float32, src.Channels())
	for f := 0; f < src.Frames(); f++ {
		if err := src.Frame(f, buf); err != nil {
			return err
		}
		for c, v := range buf {
			if err := dst.SetSample(c, f, v); err != nil {
				return err
			}
		}
	}

	return nil
}
