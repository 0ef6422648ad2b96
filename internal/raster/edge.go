// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/aafill/internal/fixed"

// EdgeKind tags the geometry an Edge was built from.
type EdgeKind uint8

const (
	// KindLine is a straight segment.
	KindLine EdgeKind = iota

	// KindQuadratic is a Y-monotonic quadratic Bezier approximated by lines.
	KindQuadratic

	// KindCubic is a Y-monotonic cubic Bezier approximated by lines.
	KindCubic
)

// String returns the kind name.
func (k EdgeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindQuadratic:
		return "quadratic"
	case KindCubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Edge is one boundary segment of a path, always oriented top to bottom.
//
// A line edge holds a single segment. Quadratic and cubic edges hold the
// current line approximation plus the forward-differencing state that
// produces the next one on Advance. All positions are 16.16 fixed-point
// pixels and Y values are snapped to 1/4 pixel.
type Edge struct {
	// Arena links, used by EdgeList.
	prev, next int32

	X      fixed.FDot16 // x at Y
	DX     fixed.FDot16 // dx/dy of the current segment
	DY     fixed.FDot16 // |dy/dx|, fixed.Max for vertical segments
	UpperX fixed.FDot16 // x at UpperY
	UpperY fixed.FDot16
	LowerY fixed.FDot16
	Y      fixed.FDot16 // y at which X was last evaluated

	Winding int8
	Kind    EdgeKind

	// curveCount is the number of pending segments: positive for
	// quadratics, negative for cubics, zero once exhausted.
	curveCount int8
	curveShift uint8 // quadratic coefficient shift, cubic ddshift
	dshift     uint8 // cubic only

	cx, cy       fixed.FDot16
	cdx, cdy     fixed.FDot16
	cddx, cddy   fixed.FDot16
	cdddx, cdddy fixed.FDot16
	lastX, lastY fixed.FDot16

	// End of the previously emitted segment.
	snappedX, snappedY fixed.FDot16
}

// SetLine initializes e as the line p0-p1. It reports false when the line
// is horizontal after snapping, in which case e must be discarded.
func (e *Edge) SetLine(p0, p1 Point) bool {
	x0 := fixed.FromFDot6(fixed.RoundToFDot6(p0.X, fixed.Accuracy)) >> fixed.Accuracy
	y0 := fixed.SnapY(fixed.FromFDot6(fixed.RoundToFDot6(p0.Y, fixed.Accuracy)) >> fixed.Accuracy)
	x1 := fixed.FromFDot6(fixed.RoundToFDot6(p1.X, fixed.Accuracy)) >> fixed.Accuracy
	y1 := fixed.SnapY(fixed.FromFDot6(fixed.RoundToFDot6(p1.Y, fixed.Accuracy)) >> fixed.Accuracy)

	winding := int8(1)
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}

	dy := fixed.ToFDot6(y1 - y0)
	if dy == 0 {
		return false
	}
	dx := fixed.ToFDot6(x1 - x0)
	slope := fixed.QuickDiv(dx, dy)

	e.setSegment(x0, y0, y1, dx, dy, slope)
	e.Winding = winding
	e.Kind = KindLine
	e.curveCount = 0
	e.curveShift = 0
	return true
}

// updateLine replaces the current segment with x0,y0 - x1,y1 using a slope
// computed by the caller. Cubic pieces are not guaranteed to step
// downward, so an upward segment is flipped and the winding negated.
func (e *Edge) updateLine(x0, y0, x1, y1, slope fixed.FDot16) bool {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		e.Winding = -e.Winding
	}

	dy := fixed.ToFDot6(y1 - y0)
	if dy == 0 {
		return false
	}
	e.setSegment(x0, y0, y1, fixed.ToFDot6(x1-x0), dy, slope)
	return true
}

func (e *Edge) setSegment(x0, y0, y1 fixed.FDot16, dx, dy fixed.FDot6, slope fixed.FDot16) {
	e.X = x0
	e.DX = slope
	e.UpperX = x0
	e.Y = y0
	e.UpperY = y0
	e.LowerY = y1
	e.DY = inverseSlope(dx, dy, slope)
}

// inverseSlope returns |dy/dx| for a segment, or fixed.Max when the
// segment is vertical.
func inverseSlope(dx, dy fixed.FDot6, slope fixed.FDot16) fixed.FDot16 {
	if dx == 0 || slope == 0 {
		return fixed.Max
	}
	if abs := fixed.Abs(fixed.ToFDot6(slope)); abs < fixed.InverseTableSize {
		return fixed.Inverse(abs)
	}
	return fixed.Abs(fixed.QuickDiv(dy, dx))
}

// GoY moves X to the edge's position at y. Stepping one whole pixel is an
// addition; any other jump is evaluated from the segment's upper point.
func (e *Edge) GoY(y fixed.FDot16) {
	switch y {
	case e.Y:
	case e.Y + fixed.One:
		e.X += e.DX
	default:
		e.X = e.UpperX + fixed.Mul(e.DX, y-e.UpperY)
	}
	e.Y = y
}

// XAt returns the x of the current segment at y without moving the edge.
func (e *Edge) XAt(y fixed.FDot16) fixed.FDot16 {
	return e.UpperX + fixed.Mul(e.DX, y-e.UpperY)
}

// Advance replaces the current segment with the next non-degenerate
// piece of the curve. It reports false when the curve is exhausted or e
// is a line.
func (e *Edge) Advance() bool {
	switch {
	case e.curveCount > 0:
		return e.updateQuadratic()
	case e.curveCount < 0:
		return e.updateCubic()
	default:
		return false
	}
}

// Remaining returns the number of segments Advance can still produce.
func (e *Edge) Remaining() int {
	if e.curveCount < 0 {
		return -int(e.curveCount)
	}
	return int(e.curveCount)
}

// FirstRow returns the first pixel row the current segment touches.
func (e *Edge) FirstRow() int {
	return fixed.FloorToInt(e.UpperY)
}

// LastRow returns the last pixel row the current segment touches.
func (e *Edge) LastRow() int {
	return fixed.CeilToInt(e.LowerY) - 1
}

// isVerticalLine reports whether e is a straight vertical segment with
// no pending curve pieces.
func (e *Edge) isVerticalLine() bool {
	return e.DX == 0 && e.curveCount == 0
}

// less orders edges by top, then by x, then by slope.
func (e *Edge) less(o *Edge) bool {
	if e.UpperY != o.UpperY {
		return e.UpperY < o.UpperY
	}
	if e.X != o.X {
		return e.X < o.X
	}
	return e.DX < o.DX
}
