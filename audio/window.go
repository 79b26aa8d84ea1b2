// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Bound selects a point in a stream, by frame index or by elapsed time.
// The zero value is the default bound: the beginning of the stream when
// used as a start, the end of the stream when used as a stop.
type Bound struct {
	kind  boundKind
	frame int64
	dur   time.Duration
}

type boundKind int

const (
	boundDefault boundKind = iota
	boundFrame
	boundTime
)

// AtFrame bounds a window at an absolute frame index.
func AtFrame(n int64) Bound { return Bound{kind: boundFrame, frame: n} }

// AtTime bounds a window at an elapsed time. The time is converted to the
// nearest frame once the source's sample rate is known.
func AtTime(d time.Duration) Bound { return Bound{kind: boundTime, dur: d} }

// ReadConfig selects the frame window and channel range a read extracts.
// The zero value reads the whole stream with all channels.
type ReadConfig struct {
	// Start of the window. The zero value starts at the beginning.
	Start Bound
	// Stop of the window, exclusive. The zero value reads to the end of
	// the stream.
	Stop Bound
	// FirstChannel is the first channel to keep, 0-indexed.
	FirstChannel int
	// LastChannel is one past the last channel to keep. Zero keeps through
	// the final channel of the source.
	LastChannel int
}

// Window is a resolved read selection: concrete half-open frame and channel
// ranges against one specific source. Windows are built by ResolveWindow
// and immutable for the duration of a read.
type Window struct {
	// Start frame, inclusive.
	Start int64
	// Stop frame, exclusive. UnboundedStop means decode until the source
	// is exhausted.
	Stop int64
	// FirstChannel inclusive, LastChannel exclusive.
	FirstChannel int
	LastChannel  int
}

// UnboundedStop marks a window that ends only when the source does.
const UnboundedStop = int64(-1)

// Bounded reports whether the window has a concrete stop frame.
func (w Window) Bounded() bool { return w.Stop != UnboundedStop }

// FrameCount returns the window length. ok is false for unbounded windows.
func (w Window) FrameCount() (n int64, ok bool) {
	if !w.Bounded() {
		return 0, false
	}
	return w.Stop - w.Start, true
}

// ChannelCount returns the number of retained channels.
func (w Window) ChannelCount() int { return w.LastChannel - w.FirstChannel }

// ResolveWindow turns cfg into concrete bounds for a source with the given
// sample rate and channel count. frames is the source's total frame count;
// framesKnown is false when the source cannot report it, in which case a
// default stop stays unbounded while explicit frame/time stops are kept and
// enforced eagerly during the read.
//
// Both frame bounds are clamped into [0, frames]. A start at or beyond the
// stop resolves to an empty window, not an error, so callers may request a
// zero-length slice without special-casing. Channel bounds outside the
// source fail with ErrChannelRange.
func ResolveWindow(cfg ReadConfig, sampleRate, channels int, frames int64, framesKnown bool) (Window, error) {
	first := cfg.FirstChannel
	last := cfg.LastChannel
	if last == 0 {
		last = channels
	}
	switch {
	case first < 0 || first >= channels:
		return Window{}, fmt.Errorf("%w: first channel %d, source has %d",
			ErrChannelRange, first, channels)
	case last > channels:
		return Window{}, fmt.Errorf("%w: last channel %d, source has %d",
			ErrChannelRange, last, channels)
	case first >= last:
		return Window{}, fmt.Errorf("%w: first channel %d not below last channel %d",
			ErrChannelRange, first, last)
	}

	start := int64(0)
	switch cfg.Start.kind {
	case boundFrame:
		start = cfg.Start.frame
	case boundTime:
		start = frameAt(cfg.Start.dur, sampleRate)
	}

	stop := int64(0)
	bounded := true
	switch cfg.Stop.kind {
	case boundFrame:
		stop = cfg.Stop.frame
	case boundTime:
		stop = frameAt(cfg.Stop.dur, sampleRate)
	default:
		if framesKnown {
			stop = frames
		} else {
			bounded = false
		}
	}

	if start < 0 {
		start = 0
	}
	if framesKnown && start > frames {
		start = frames
	}

	if !bounded {
		return Window{Start: start, Stop: UnboundedStop, FirstChannel: first, LastChannel: last}, nil
	}

	if stop < 0 {
		stop = 0
	}
	if framesKnown && stop > frames {
		stop = frames
	}
	if start > stop {
		// Degenerate selection: empty window.
		start = stop
	}

	return Window{Start: start, Stop: stop, FirstChannel: first, LastChannel: last}, nil
}

func frameAt(d time.Duration, sampleRate int) int64 {
	return int64(math.Round(d.Seconds() * float64(sampleRate)))
}
