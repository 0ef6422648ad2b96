// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math/bits"

	"github.com/gogpu/aafill/internal/fixed"
)

// Forward differencing for curve edges.
//
// A Y-monotonic curve is approximated by 1<<shift line segments. Instead
// of evaluating the polynomial at every step, the edge keeps its first,
// second (and for cubics third) differences and adds them up:
//
//	Quadratic p(t) = At^2 + Bt + C: the second difference is constant.
//	Cubic     p(t) = At^3 + Bt^2 + Ct + D: the third difference is constant.
//
// Coefficients are computed at 4x resolution (fixed.Accuracy) and shifted
// back down, then every segment endpoint is snapped in Y so adjacent
// edges agree on where rows start and stop.

// MaxCoeffShift limits the number of subdivisions for a curve.
// 1<<shift is stored in an int8, so 6 (64 segments) is the maximum.
const MaxCoeffShift = 6

// SetQuadratic initializes e from a Y-monotonic quadratic and computes its
// first non-degenerate segment. It reports false when the curve has no
// height after snapping.
func (e *Edge) SetQuadratic(pts [3]Point) bool {
	const accuracy = fixed.Accuracy

	x0 := fixed.RoundToFDot6(pts[0].X, accuracy)
	y0 := fixed.RoundToFDot6(pts[0].Y, accuracy)
	x1 := fixed.RoundToFDot6(pts[1].X, accuracy)
	y1 := fixed.RoundToFDot6(pts[1].Y, accuracy)
	x2 := fixed.RoundToFDot6(pts[2].X, accuracy)
	y2 := fixed.RoundToFDot6(pts[2].Y, accuracy)

	winding := int8(1)
	if y0 > y2 {
		x0, x2 = x2, x0
		y0, y2 = y2, y0
		winding = -1
	}
	if fdot6Round(y0) == fdot6Round(y2) {
		return false
	}

	// Distance of the control point from the chord picks the subdivision.
	dx := (leftShift(x1, 1) - x0 - x2) >> 2
	dy := (leftShift(y1, 1) - y0 - y2) >> 2
	shift := diffToShift(dx, dy, accuracy)
	if shift == 0 {
		shift = 1
	} else if shift > MaxCoeffShift {
		shift = MaxCoeffShift
	}

	// A and B are stored at half their real value so they fit in 16.16;
	// the stored shift is one less to compensate.
	ax := fixed.FromFDot6Div2(x0 - x1 - x1 + x2)
	bx := fixed.FromFDot6(x1 - x0)
	ay := fixed.FromFDot6Div2(y0 - y1 - y1 + y2)
	by := fixed.FromFDot6(y1 - y0)

	e.Winding = winding
	e.Kind = KindQuadratic
	e.curveCount = int8(1 << shift)
	e.curveShift = uint8(shift - 1)
	e.dshift = 0

	e.cx = fixed.FromFDot6(x0) >> accuracy
	e.cdx = (bx + (ax >> shift)) >> accuracy
	e.cddx = (ax >> (shift - 1)) >> accuracy
	e.cy = fixed.SnapY(fixed.FromFDot6(y0) >> accuracy)
	e.cdy = (by + (ay >> shift)) >> accuracy
	e.cddy = (ay >> (shift - 1)) >> accuracy
	e.lastX = fixed.FromFDot6(x2) >> accuracy
	e.lastY = fixed.SnapY(fixed.FromFDot6(y2) >> accuracy)

	e.snappedX = e.cx
	e.snappedY = e.cy
	return e.updateQuadratic()
}

// updateQuadratic steps to the next segment whose height survives
// snapping. Long steps are snapped to whole rows, short ones to 1/4 row.
func (e *Edge) updateQuadratic() bool {
	success := false
	count := int(e.curveCount)
	oldx, oldy := e.cx, e.cy
	dx, dy := e.cdx, e.cdy
	shift := e.curveShift

	var newx, newy, newSnappedX, newSnappedY fixed.FDot16
	for {
		var slope fixed.FDot16
		count--
		if count > 0 {
			newx = oldx + (dx >> shift)
			newy = oldy + (dy >> shift)
			if fixed.Abs(dy>>shift) >= 2*fixed.One {
				slope = segmentSlope(fixed.ToFDot6(newx-e.snappedX), fixed.ToFDot6(newy-e.snappedY))
				newSnappedY = min(e.lastY, fixed.RoundToFixed(newy))
				newSnappedX = newx - fixed.Mul(slope, newy-newSnappedY)
			} else {
				newSnappedY = min(e.lastY, fixed.SnapY(newy))
				newSnappedX = newx
				slope = segmentSlope(fixed.ToFDot6(newx-e.snappedX), fixed.ToFDot6(newSnappedY-e.snappedY))
			}
			dx += e.cddx
			dy += e.cddy
		} else {
			// The last segment ends exactly on the stored endpoint.
			newx, newy = e.lastX, e.lastY
			newSnappedX, newSnappedY = newx, newy
			slope = segmentSlope(fixed.ToFDot6(newx-e.snappedX), fixed.ToFDot6(newy-e.snappedY))
		}
		if slope < fixed.Max {
			success = e.updateLine(e.snappedX, e.snappedY, newSnappedX, newSnappedY, slope)
		}
		oldx, oldy = newx, newy
		if count <= 0 || success {
			break
		}
	}

	e.cx, e.cy = newx, newy
	e.cdx, e.cdy = dx, dy
	e.snappedX, e.snappedY = newSnappedX, newSnappedY
	e.curveCount = int8(count)
	return success
}

// SetCubic initializes e from a Y-monotonic cubic and computes its first
// non-degenerate segment. It reports false when the curve has no height
// after snapping.
func (e *Edge) SetCubic(pts [4]Point) bool {
	const accuracy = fixed.Accuracy

	x0 := fixed.RoundToFDot6(pts[0].X, accuracy)
	y0 := fixed.RoundToFDot6(pts[0].Y, accuracy)
	x1 := fixed.RoundToFDot6(pts[1].X, accuracy)
	y1 := fixed.RoundToFDot6(pts[1].Y, accuracy)
	x2 := fixed.RoundToFDot6(pts[2].X, accuracy)
	y2 := fixed.RoundToFDot6(pts[2].Y, accuracy)
	x3 := fixed.RoundToFDot6(pts[3].X, accuracy)
	y3 := fixed.RoundToFDot6(pts[3].Y, accuracy)

	winding := int8(1)
	if y0 > y3 {
		x0, x3 = x3, x0
		x1, x2 = x2, x1
		y0, y3 = y3, y0
		y1, y2 = y2, y1
		winding = -1
	}
	if fdot6Round(y0) == fdot6Round(y3) {
		return false
	}

	// One more subdivision than the control-point distance alone suggests.
	shift := diffToShift(cubicDeltaFromLine(x0, x1, x2, x3), cubicDeltaFromLine(y0, y1, y2, y3), accuracy) + 1
	if shift > MaxCoeffShift {
		shift = MaxCoeffShift
	}

	// Inputs arrive shifted down by 10; the coefficients carry a factor of
	// 3, so 6 is the largest safe upshift.
	upShift := 6
	downShift := shift + upShift - 10
	if downShift < 0 {
		downShift = 0
		upShift = 10 - shift
	}

	e.Winding = winding
	e.Kind = KindCubic
	e.curveCount = int8(-1 << shift)
	e.curveShift = uint8(shift)
	e.dshift = uint8(downShift)

	e.cx, e.cdx, e.cddx, e.cdddx = cubicCoefficients(x0, x1, x2, x3, shift, upShift)
	e.cy, e.cdy, e.cddy, e.cdddy = cubicCoefficients(y0, y1, y2, y3, shift, upShift)
	e.lastX = fixed.FromFDot6(x3)

	e.cx >>= accuracy
	e.cdx >>= accuracy
	e.cddx >>= accuracy
	e.cdddx >>= accuracy
	e.cy = fixed.SnapY(e.cy >> accuracy)
	e.cdy >>= accuracy
	e.cddy >>= accuracy
	e.cdddy >>= accuracy
	e.lastX >>= accuracy
	e.lastY = fixed.SnapY(fixed.FromFDot6(y3) >> accuracy)

	e.snappedY = e.cy
	return e.updateCubic()
}

// cubicCoefficients returns the start value and the first three forward
// differences for one coordinate of a cubic.
func cubicCoefficients(p0, p1, p2, p3 fixed.FDot6, shift, upShift int) (v, d, dd, ddd fixed.FDot16) {
	b := fixed.UpShift(3*(p1-p0), upShift)
	c := fixed.UpShift(3*(p0-p1-p1+p2), upShift)
	dc := fixed.UpShift(p3+3*(p1-p2)-p0, upShift)

	v = fixed.FromFDot6(p0)
	d = b + (c >> shift) + (dc >> (2 * shift))
	dd = 2*c + (3 * dc >> (shift - 1))
	ddd = 3 * dc >> (shift - 1)
	return v, d, dd, ddd
}

// updateCubic steps to the next segment whose snapped height is non-zero.
// Fixed-point drift can make a step go upward; such steps are pinned to
// the previous Y.
func (e *Edge) updateCubic() bool {
	success := false
	count := int(e.curveCount)
	oldx, oldy := e.cx, e.cy
	ddshift := e.curveShift
	dshift := e.dshift

	var newx, newy fixed.FDot16
	for {
		count++
		if count < 0 {
			newx = oldx + (e.cdx >> dshift)
			e.cdx += e.cddx >> ddshift
			e.cddx += e.cdddx

			newy = oldy + (e.cdy >> dshift)
			e.cdy += e.cddy >> ddshift
			e.cddy += e.cdddy
		} else {
			newx, newy = e.lastX, e.lastY
		}

		if newy < oldy {
			newy = oldy
		}

		newSnappedY := fixed.SnapY(newy)
		if e.lastY < newSnappedY {
			newSnappedY = e.lastY
			count = 0
		}

		slope := fixed.Max
		if d := fixed.ToFDot6(newSnappedY - e.snappedY); d != 0 {
			slope = fixed.FDot6Div(fixed.ToFDot6(newx-oldx), d)
		}
		success = e.updateLine(oldx, e.snappedY, newx, newSnappedY, slope)

		oldx, oldy = newx, newy
		e.snappedY = newSnappedY
		if count >= 0 || success {
			break
		}
	}

	e.cx, e.cy = newx, newy
	e.curveCount = int8(count)
	return success
}

// segmentSlope returns dx/dy through the quick table, or fixed.Max for a
// segment with no height.
func segmentSlope(dx, dy fixed.FDot6) fixed.FDot16 {
	if dy == 0 {
		return fixed.Max
	}
	return fixed.QuickDiv(dx, dy)
}

// diffToShift picks the subdivision shift for a curve whose control points
// deviate (dx, dy) from the chord. Each extra level quarters the error.
func diffToShift(dx, dy fixed.FDot6, shiftAA int) int {
	dist := cheapDistance(dx, dy)

	// Down by 3 gives about 1/8 pixel accuracy; with AA the coordinates are
	// already scaled up, so less is needed.
	dist = (dist + (1 << (2 + shiftAA))) >> (3 + shiftAA)
	if dist <= 0 {
		return 0
	}
	return (32 - bits.LeadingZeros32(uint32(dist))) >> 1
}

// cheapDistance approximates sqrt(dx*dx + dy*dy) as max + min/2.
func cheapDistance(dx, dy fixed.FDot6) fixed.FDot6 {
	dx = fixed.Abs(dx)
	dy = fixed.Abs(dy)
	if dx > dy {
		return dx + (dy >> 1)
	}
	return dy + (dx >> 1)
}

// cubicDeltaFromLine estimates how far a cubic strays from its chord by
// comparing it with the chord at t=1/3 and t=2/3. 19/512 stands in for 1/27.
func cubicDeltaFromLine(a, b, c, d fixed.FDot6) fixed.FDot6 {
	oneThird := ((a*8 - b*15 + 6*c + d) * 19) >> 9
	twoThird := ((a + 6*b - c*15 + d*8) * 19) >> 9
	return max(fixed.Abs(oneThird), fixed.Abs(twoThird))
}

func fdot6Round(v fixed.FDot6) int32 {
	return (v + fixed.FDot6Half) >> fixed.FDot6Shift
}

func leftShift(v int32, shift int) int32 {
	return int32(uint32(v) << uint(shift))
}
