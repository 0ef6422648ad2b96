package aafill

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/aafill/internal/raster"
)

// convexityEpsilon is the tolerance for cross product comparisons.
// Values below this threshold are treated as zero (collinear edges).
const convexityEpsilon = 1e-10

// Convexity is the result of analyzing the shape of a path.
type Convexity struct {
	// Convex is true when the path is a single contour whose control
	// polygon turns in one direction only and winds around once.
	// Degenerate paths count as convex.
	Convex bool

	// Winding is +1 when the turns have a positive cross product, -1 when
	// negative, and 0 for a degenerate path (fewer than 3 non-collinear
	// points).
	Winding int

	// Points is the number of distinct control points analyzed.
	Points int
}

// Degenerate reports whether the path encloses no area.
func (c Convexity) Degenerate() bool {
	return c.Convex && c.Winding == 0
}

// IsConvex reports whether the path is convex. See AnalyzeConvexity.
func (p *Path) IsConvex() bool {
	return p.AnalyzeConvexity().Convex
}

// AnalyzeConvexity checks whether the path is a single convex contour.
//
// Curves are judged by their control points: a curve whose control
// polygon is convex stays inside it, so a convex control polygon is
// sufficient. Affine transforms preserve the result.
//
// The check walks consecutive edge pairs and requires every non-zero cross
// product to have the same sign. A star polygon passes that test while
// winding around more than once, so the number of direction changes along
// each axis is also limited to two.
func (p *Path) AnalyzeConvexity() Convexity {
	pts, ok := p.singleContour()
	result := Convexity{Points: len(pts)}
	if !ok {
		return result
	}
	n := len(pts)
	if n < 3 {
		result.Convex = true
		return result
	}

	var positiveCount, negativeCount int
	var dxChanges, dyChanges int
	var lastDX, lastDY float64
	for i := range n + 1 {
		p0 := pts[i%n]
		p1 := pts[(i+1)%n]
		p2 := pts[(i+2)%n]

		e1 := p1.Sub(p0)
		e2 := p2.Sub(p1)

		// The extra pass closes the cycle of direction changes only.
		if i < n {
			cross := e1.X*e2.Y - e1.Y*e2.X
			if cross > convexityEpsilon {
				positiveCount++
			} else if cross < -convexityEpsilon {
				negativeCount++
			}
		}

		dxChanges += signChange(&lastDX, e1.X)
		dyChanges += signChange(&lastDY, e1.Y)
	}

	if positiveCount == 0 && negativeCount == 0 {
		result.Convex = true
		return result
	}
	if positiveCount > 0 && negativeCount > 0 {
		return result
	}
	if dxChanges > 2 || dyChanges > 2 {
		return result
	}

	result.Convex = true
	if positiveCount > 0 {
		result.Winding = 1
	} else {
		result.Winding = -1
	}
	return result
}

// signChange records the sign of d in last and returns 1 when it flips
// relative to the previous non-zero value.
func signChange(last *float64, d float64) int {
	if math.Abs(d) <= convexityEpsilon {
		return 0
	}
	flipped := *last != 0 && (*last > 0) != (d > 0)
	*last = d
	if flipped {
		return 1
	}
	return 0
}

// singleContour returns the distinct consecutive points of the path's only
// contour. It reports false when the path draws more than one contour.
func (p *Path) singleContour() ([]vec.Vec2, bool) {
	var pts []vec.Vec2
	contours := 0
	drawing := false
	for cmd, cp := range p.data.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			drawing = false
			if contours == 0 {
				pts = append(pts[:0], cp[0])
			}
			continue
		case path.CmdClose:
			continue
		}
		if !drawing {
			drawing = true
			contours++
			if contours > 1 {
				return nil, false
			}
		}
		for _, v := range cp {
			if len(pts) == 0 || v != pts[len(pts)-1] {
				pts = append(pts, v)
			}
		}
	}
	for len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return pts, true
}

// rectTolerance is the largest deviation from axis alignment accepted by
// deviceRect.
const rectTolerance = 1e-3

// deviceRect reports whether the path is an axis-aligned rectangle after
// transforming by m, and returns it in device space.
func (p *Path) deviceRect(m matrix.Matrix) (raster.Rect, bool) {
	cmds := p.data.Cmds
	if n := len(cmds); n > 0 && cmds[n-1] == path.CmdClose {
		cmds = cmds[:n-1]
	}
	if len(cmds) != 4 && len(cmds) != 5 {
		return raster.Rect{}, false
	}
	if cmds[0] != path.CmdMoveTo {
		return raster.Rect{}, false
	}
	for _, c := range cmds[1:] {
		if c != path.CmdLineTo {
			return raster.Rect{}, false
		}
	}

	var corners [5]vec.Vec2
	for i := range cmds {
		corners[i] = apply(m, p.data.Coords[i])
	}
	if len(cmds) == 5 {
		if d := corners[4].Sub(corners[0]); math.Abs(d.X) > rectTolerance || math.Abs(d.Y) > rectTolerance {
			return raster.Rect{}, false
		}
	}

	// Sides must alternate between horizontal and vertical.
	var horizontal [4]bool
	for i := range 4 {
		d := corners[(i+1)%4].Sub(corners[i])
		h := math.Abs(d.Y) <= rectTolerance
		v := math.Abs(d.X) <= rectTolerance
		if h == v {
			return raster.Rect{}, false
		}
		horizontal[i] = h
	}
	if horizontal[0] == horizontal[1] || horizontal[1] == horizontal[2] || horizontal[2] == horizontal[3] {
		return raster.Rect{}, false
	}

	r := raster.Rect{
		Left:   float32(corners[0].X),
		Top:    float32(corners[0].Y),
		Right:  float32(corners[0].X),
		Bottom: float32(corners[0].Y),
	}
	for _, c := range corners[1:4] {
		r.Left = min(r.Left, float32(c.X))
		r.Top = min(r.Top, float32(c.Y))
		r.Right = max(r.Right, float32(c.X))
		r.Bottom = max(r.Bottom, float32(c.Y))
	}
	return r, true
}
