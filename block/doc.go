// SPDX-License-Identifier: EPL-2.0

// Package block provides non-owning views over multi-channel sample memory.
//
// The same logical arrangement of channels and frames can be stored three
// ways, and each way gets its own view type:
//
//   - Interleaved: one buffer, frame f's channels adjacent (f*channels+c)
//   - Sequential: one buffer, channel c's frames adjacent (c*frames+f)
//   - Planar: one buffer per channel (data[c][f])
//
// All three satisfy the Block interface, so code that consumes samples
// (the WAV encoder, cross-layout copies) never needs to know the physical
// layout:
//
//	view, err := block.NewInterleaved(samples, 2, 1024)
//	if err != nil {
//	    return err
//	}
//	v, _ := view.Sample(0, 512)
//
// # Shape checking
//
// A view's channel and frame counts are fixed at construction and must
// match the supplied memory exactly; a mismatch fails with
// ErrShapeMismatch rather than truncating. Every Sample/SetSample/Frame
// call is bounds-checked and fails with ErrIndexOutOfRange instead of
// touching adjacent memory.
//
// # Converting between layouts
//
// Copy traverses the source in frame order and writes through the
// destination view, whatever its layout:
//
//	dst, _ := block.NewPlanar(planes, 2, 1024)
//	err := block.Copy(dst, view)
package block
