// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"context"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/aafill/internal/fixed"
)

// Accumulator selects how coverage is collected.
type Accumulator uint8

const (
	// AccumulateAuto uses the mask when the bounds fit the mask limits and
	// the run accumulator otherwise.
	AccumulateAuto Accumulator = iota

	// AccumulateRuns always uses the run-encoded row accumulator.
	AccumulateRuns

	// AccumulateMask always uses the dense mask. FillConvex fails with
	// ErrMaskTooLarge when the bounds do not fit.
	AccumulateMask
)

// String returns the accumulator name.
func (a Accumulator) String() string {
	switch a {
	case AccumulateAuto:
		return "auto"
	case AccumulateRuns:
		return "runs"
	case AccumulateMask:
		return "mask"
	default:
		return "unknown"
	}
}

// Config controls a single FillConvex call.
type Config struct {
	// Clip limits output to a device rectangle. The zero value means no
	// clip beyond the path bounds.
	Clip image.Rectangle

	Accumulator Accumulator

	// MaskMaxWidth and MaskMaxArea bound the dense mask. Zero selects
	// MaskMaxWidth and MaskMaxArea.
	MaskMaxWidth int
	MaskMaxArea  int

	// RowsPreserved overrides the number of run rows kept alive for the
	// sink. Zero asks the sink (see RowPreserver).
	RowsPreserved int
}

func (c *Config) maskLimits() (int, int) {
	w, a := c.MaskMaxWidth, c.MaskMaxArea
	if w <= 0 {
		w = MaskMaxWidth
	}
	if a <= 0 {
		a = MaskMaxArea
	}
	return w, a
}

// UsesMask reports whether a fill of bounds with this configuration goes
// through the dense mask.
func (c *Config) UsesMask(bounds image.Rectangle) bool {
	switch c.Accumulator {
	case AccumulateRuns:
		return false
	case AccumulateMask:
		return true
	}
	w, a := c.maskLimits()
	return CanUseMask(bounds, w, a)
}

// Filler runs the analytic pipeline and keeps its buffers between calls.
// A Filler must not be used concurrently.
type Filler struct {
	builder EdgeBuilder
	list    EdgeList
	runAcc  RunAccumulator
	maskAcc MaskAccumulator
	walk    walker
	clipper clipBlitter

	rectAlpha []uint8
	rectRuns  []uint16
}

// FillConvex rasterizes the convex path src, whose rounded-out device
// bounds are ir, into sink.
//
// A path that yields no edges, or lies entirely outside the clip, draws
// nothing and is not an error.
func (f *Filler) FillConvex(src PathSource, ir image.Rectangle, sink Blitter, cfg Config) error {
	clip := ir
	if !cfg.Clip.Empty() {
		clip = cfg.Clip
	}
	if ir.Intersect(clip).Empty() {
		return nil
	}
	useMask := cfg.UsesMask(ir)
	if useMask && cfg.Accumulator == AccumulateMask {
		if w, a := cfg.maskLimits(); !CanUseMask(ir, w, a) {
			return ErrMaskTooLarge
		}
	}

	contained := ir.In(clip)
	var builderClip *image.Rectangle
	if !contained {
		builderClip = &clip
	}
	count := f.builder.Build(src, builderClip)
	if count == 0 {
		return nil
	}
	if count < 2 {
		return ErrTooFewEdges
	}

	startY, stopY := ir.Min.Y, ir.Max.Y
	if !contained {
		startY = max(startY, clip.Min.Y)
		stopY = min(stopY, clip.Max.Y)
	}
	if startY >= stopY {
		return nil
	}

	// Coverage is computed against the path's own bounds; the clip is
	// applied to the output, by the mask or by clipBlitter.
	leftBound := fixed.FromInt(ir.Min.X)
	riteBound := fixed.FromInt(ir.Max.X)

	f.list.Init(f.builder.Edges())

	if useMask {
		f.maskAcc.Reset(sink, ir, clip)
		f.walk.reset(&f.list, &f.maskAcc, &f.maskAcc)
	} else {
		rows := rowsPreserved(sink, cfg.RowsPreserved)
		if !contained {
			sink = f.clipper.reset(sink, clip)
		}
		f.runAcc.Reset(sink, ir.Intersect(clip), rows)
		f.walk.reset(&f.list, &f.runAcc, nil)
	}

	if l := slogger(); l.Enabled(context.Background(), slog.LevelDebug) {
		lines, quads, cubics := f.builder.Counts()
		l.Debug("raster: convex fill",
			"bounds", ir, "edges", count,
			"lines", lines, "quads", quads, "cubics", cubics,
			"mask", useMask)
	}

	f.walk.walkConvex(stopY, leftBound, riteBound)
	f.walk.acc.finish()
	return nil
}

func rowsPreserved(sink Blitter, n int) int {
	if n > 0 {
		return n
	}
	if p, ok := sink.(RowPreserver); ok {
		return p.RowsPreserved()
	}
	return 1
}

// Rect is an axis-aligned rectangle in device space.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RoundOut returns the smallest integer rectangle containing r.
func (r Rect) RoundOut() image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Left))), int(math.Floor(float64(r.Top))),
		int(math.Ceil(float64(r.Right))), int(math.Ceil(float64(r.Bottom))))
}

// intersect clips r to c and reports whether anything is left.
func (r Rect) intersect(c image.Rectangle) (Rect, bool) {
	out := Rect{
		Left:   max(r.Left, float32(c.Min.X)),
		Top:    max(r.Top, float32(c.Min.Y)),
		Right:  min(r.Right, float32(c.Max.X)),
		Bottom: min(r.Bottom, float32(c.Max.Y)),
	}
	return out, out.Left < out.Right && out.Top < out.Bottom
}

// scalarToAlpha converts a coverage fraction to alpha, snapping values
// within 8 levels of either end.
func scalarToAlpha(a float32) uint8 {
	return snapAlpha(uint8(a * 255))
}

// FillFatRect blits the anti-aliased rectangle r, clipped to clip, as a
// partial top row, a body with partial side columns, and a partial bottom
// row. It reports false, drawing nothing, when the rectangle is narrower
// than three pixels after rounding out; the caller then uses FillConvex.
func (f *Filler) FillFatRect(r Rect, clip image.Rectangle, sink Blitter) bool {
	r, ok := r.intersect(clip)
	if !ok {
		return true
	}
	b := r.RoundOut()
	w, h := b.Dx(), b.Dy()
	if w < 3 {
		return false
	}
	if h == 0 {
		return true
	}

	f.rectAlpha = growBytes(f.rectAlpha, w+1)
	f.rectRuns = growRuns(f.rectRuns, w+1)
	alpha, runs := f.rectAlpha, f.rectRuns
	runs[0] = 1
	runs[1] = uint16(w - 2)
	runs[w-1] = 1
	runs[w] = 0

	partialL := float32(b.Min.X+1) - r.Left
	partialR := r.Right - float32(b.Max.X-1)
	partialT := float32(b.Min.Y+1) - r.Top
	partialB := r.Bottom - float32(b.Max.Y-1)
	if h == 1 {
		partialT = r.Bottom - r.Top
	}

	slogger().Debug("raster: fat rect", "bounds", b)

	alpha[0] = scalarToAlpha(partialL * partialT)
	alpha[1] = scalarToAlpha(partialT)
	alpha[w-1] = scalarToAlpha(partialR * partialT)
	sink.BlitAntiH(b.Min.X, b.Min.Y, alpha, runs)

	if h > 2 {
		sink.BlitAntiRect(b.Min.X, b.Min.Y+1, w-2, h-2, scalarToAlpha(partialL), scalarToAlpha(partialR))
	}
	if h > 1 {
		alpha[0] = scalarToAlpha(partialL * partialB)
		alpha[1] = scalarToAlpha(partialB)
		alpha[w-1] = scalarToAlpha(partialR * partialB)
		sink.BlitAntiH(b.Min.X, b.Max.Y-1, alpha, runs)
	}
	return true
}
