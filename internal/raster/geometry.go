// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Y-monotonic curve processing.
//
// Edges step strictly downward, so every quadratic and cubic is split at
// its Y extrema before an Edge is built from it. The clip helpers below
// assume their input is already monotonic.

// Point is a device-space point.
type Point struct {
	X, Y float32
}

func lerpPoint(a, b Point, t float32) Point {
	return Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// chopQuadAtYExtrema splits a quadratic at its Y extremum. It returns the
// number of chops: 0 leaves one quad in dst[0:3], 1 leaves two quads in
// dst[0:3] and dst[2:5].
func chopQuadAtYExtrema(src [3]Point, dst *[5]Point) int {
	a, b, c := src[0].Y, src[1].Y, src[2].Y

	if isNotMonotonic(a, b, c) {
		if t := validUnitDivide(a-b, a-b-b+c); t > 0 {
			chopQuadAt(src, t, dst)
			// The shared point is the extremum; flatten both control points
			// onto it so neither half can overshoot.
			dst[1].Y = dst[2].Y
			dst[3].Y = dst[2].Y
			return 1
		}
		// t underflowed: force monotonic by flattening the control point
		// toward the closer end.
		if absF32(a-b) < absF32(b-c) {
			b = a
		} else {
			b = c
		}
	}

	dst[0] = Point{src[0].X, a}
	dst[1] = Point{src[1].X, b}
	dst[2] = Point{src[2].X, c}
	return 0
}

// chopCubicAtYExtrema splits a cubic at up to two Y extrema. It returns the
// number of chops; the pieces are dst[0:4], dst[3:7] and dst[6:10].
func chopCubicAtYExtrema(src [4]Point, dst *[10]Point) int {
	var roots [2]float32
	n := cubicYExtrema(src[0].Y, src[1].Y, src[2].Y, src[3].Y, &roots)
	chopCubicAt(src, roots[:n], dst)

	if n > 0 {
		// Flatten the control points at each extremum.
		dst[2].Y = dst[3].Y
		dst[4].Y = dst[3].Y
		if n == 2 {
			dst[5].Y = dst[6].Y
			dst[7].Y = dst[6].Y
		}
	}
	for i := 0; i <= n; i++ {
		clampCubicControls(dst[i*3 : i*3+4])
	}
	return n
}

// clampCubicControls pins the control point Ys into the endpoint range so
// rounding in the chop cannot make a piece non-monotonic.
func clampCubicControls(p []Point) {
	lo, hi := min(p[0].Y, p[3].Y), max(p[0].Y, p[3].Y)
	for i := 1; i <= 2; i++ {
		p[i].Y = max(lo, min(hi, p[i].Y))
	}
}

func isNotMonotonic(a, b, c float32) bool {
	ab := a - b
	bc := b - c
	if ab < 0 {
		bc = -bc
	}
	return ab == 0 || bc < 0
}

// validUnitDivide returns numer/denom when it lies strictly inside (0, 1),
// and 0 otherwise.
func validUnitDivide(numer, denom float32) float32 {
	if numer < 0 {
		numer, denom = -numer, -denom
	}
	if denom == 0 || numer == 0 || numer >= denom {
		return 0
	}
	t := numer / denom
	if math.IsNaN(float64(t)) || t <= 0 || t >= 1 {
		return 0
	}
	return t
}

func chopQuadAt(src [3]Point, t float32, dst *[5]Point) {
	ab := lerpPoint(src[0], src[1], t)
	bc := lerpPoint(src[1], src[2], t)
	dst[0] = src[0]
	dst[1] = ab
	dst[2] = lerpPoint(ab, bc, t)
	dst[3] = bc
	dst[4] = src[2]
}

func chopCubicAtSingle(src [4]Point, t float32, dst []Point) {
	ab := lerpPoint(src[0], src[1], t)
	bc := lerpPoint(src[1], src[2], t)
	cd := lerpPoint(src[2], src[3], t)
	abc := lerpPoint(ab, bc, t)
	bcd := lerpPoint(bc, cd, t)
	dst[0] = src[0]
	dst[1] = ab
	dst[2] = abc
	dst[3] = lerpPoint(abc, bcd, t)
	dst[4] = bcd
	dst[5] = cd
	dst[6] = src[3]
}

// chopCubicAt splits src at the sorted parameters ts (at most two).
func chopCubicAt(src [4]Point, ts []float32, dst *[10]Point) {
	if len(ts) == 0 {
		copy(dst[:4], src[:])
		return
	}
	chopCubicAtSingle(src, ts[0], dst[:7])
	if len(ts) == 1 {
		return
	}
	// Renormalize the second parameter into the remaining piece.
	t := validUnitDivide(ts[1]-ts[0], 1-ts[0])
	if t == 0 {
		dst[7], dst[8], dst[9] = dst[6], dst[6], dst[6]
		return
	}
	rest := [4]Point{dst[3], dst[4], dst[5], dst[6]}
	chopCubicAtSingle(rest, t, dst[3:10])
}

// cubicYExtrema writes the parameters in (0, 1) where dy/dt == 0, sorted.
func cubicYExtrema(a, b, c, d float32, roots *[2]float32) int {
	// dy/dt / 3 = A t^2 + B t + C
	return unitQuadRoots(d-a+3*(b-c), 2*(a-b-b+c), b-a, roots)
}

// unitQuadRoots solves A t^2 + B t + C = 0 for t in (0, 1) using the
// numerically stable form of the quadratic formula.
func unitQuadRoots(A, B, C float32, roots *[2]float32) int {
	if A == 0 {
		if t := validUnitDivide(-C, B); t > 0 {
			roots[0] = t
			return 1
		}
		return 0
	}

	disc := float64(B)*float64(B) - 4*float64(A)*float64(C)
	if disc < 0 {
		return 0
	}
	r := math.Sqrt(disc)
	var q float64
	if B < 0 {
		q = -(float64(B) - r) / 2
	} else {
		q = -(float64(B) + r) / 2
	}

	n := 0
	if t := validUnitDivide(float32(q), A); t > 0 {
		roots[n] = t
		n++
	}
	if t := validUnitDivide(C, float32(q)); t > 0 {
		roots[n] = t
		n++
	}
	if n == 2 {
		if roots[0] > roots[1] {
			roots[0], roots[1] = roots[1], roots[0]
		} else if roots[0] == roots[1] {
			n = 1
		}
	}
	return n
}

// clipMonoY restricts a Y-monotonic curve (2, 3 or 4 points) to
// [top, bottom]. It reports false when nothing of the curve remains. The
// curve keeps its original direction, so winding is preserved.
func clipMonoY(pts []Point, top, bottom float32) ([4]Point, bool) {
	var out [4]Point
	n := len(pts)
	copy(out[:], pts)

	reversed := out[0].Y > out[n-1].Y
	if reversed {
		reversePoints(out[:n])
	}
	if out[n-1].Y <= top || out[0].Y >= bottom {
		return out, false
	}

	if out[0].Y < top {
		t := monoParamAtY(out[:n], top)
		out = chopKeepAfter(out, n, t)
		out[0].Y = top
	}
	if out[n-1].Y > bottom {
		t := monoParamAtY(out[:n], bottom)
		out = chopKeepBefore(out, n, t)
		out[n-1].Y = bottom
	}

	if reversed {
		reversePoints(out[:n])
	}
	return out, true
}

// monoParamAtY finds t with y(t) == y on an increasing monotonic curve by
// bisection.
func monoParamAtY(pts []Point, y float32) float32 {
	lo, hi := float32(0), float32(1)
	for range 24 {
		mid := (lo + hi) / 2
		if evalY(pts, mid) < y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func evalY(pts []Point, t float32) float32 {
	s := 1 - t
	switch len(pts) {
	case 2:
		return s*pts[0].Y + t*pts[1].Y
	case 3:
		return s*s*pts[0].Y + 2*s*t*pts[1].Y + t*t*pts[2].Y
	default:
		return s*s*s*pts[0].Y + 3*s*s*t*pts[1].Y + 3*s*t*t*pts[2].Y + t*t*t*pts[3].Y
	}
}

func chopKeepAfter(p [4]Point, n int, t float32) [4]Point {
	switch n {
	case 2:
		return [4]Point{lerpPoint(p[0], p[1], t), p[1]}
	case 3:
		var dst [5]Point
		chopQuadAt([3]Point{p[0], p[1], p[2]}, t, &dst)
		return [4]Point{dst[2], dst[3], dst[4]}
	default:
		var dst [7]Point
		chopCubicAtSingle(p, t, dst[:])
		return [4]Point{dst[3], dst[4], dst[5], dst[6]}
	}
}

func chopKeepBefore(p [4]Point, n int, t float32) [4]Point {
	switch n {
	case 2:
		return [4]Point{p[0], lerpPoint(p[0], p[1], t)}
	case 3:
		var dst [5]Point
		chopQuadAt([3]Point{p[0], p[1], p[2]}, t, &dst)
		return [4]Point{dst[0], dst[1], dst[2]}
	default:
		var dst [7]Point
		chopCubicAtSingle(p, t, dst[:])
		return [4]Point{dst[0], dst[1], dst[2], dst[3]}
	}
}

func reversePoints(p []Point) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// absF32 is math.Abs without the float64 round trip.
func absF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
