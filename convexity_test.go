package aafill

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/aafill/internal/raster"
)

// regularPolygon returns a closed regular polygon with n vertices.
func regularPolygon(cx, cy, radius float64, n int) *Path {
	p := NewPath()
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		x, y := cx+radius*math.Cos(angle), cy+radius*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}

// starPolygon alternates between outer and inner radii.
func starPolygon(cx, cy, outerR, innerR float64, n int) *Path {
	p := NewPath()
	for i := range n {
		outer := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		inner := outer + math.Pi/float64(n)
		ox, oy := cx+outerR*math.Cos(outer), cy+outerR*math.Sin(outer)
		if i == 0 {
			p.MoveTo(ox, oy)
		} else {
			p.LineTo(ox, oy)
		}
		p.LineTo(cx+innerR*math.Cos(inner), cy+innerR*math.Sin(inner))
	}
	return p.Close()
}

// pentagram visits the vertices of a regular pentagon in steps of two.
func pentagram(cx, cy, r float64) *Path {
	p := NewPath()
	for i := range 5 {
		angle := float64(2*i)*2*math.Pi/5 - math.Pi/2
		x, y := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p.Close()
}

func circle(cx, cy, r float64) *Path {
	const k = 0.5522847498307936
	kr := k * r
	return NewPath().
		MoveTo(cx+r, cy).
		CubicTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r).
		CubicTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy).
		CubicTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r).
		CubicTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy).
		Close()
}

func TestAnalyzeConvexity(t *testing.T) {
	tests := []struct {
		name    string
		path    *Path
		convex  bool
		winding int
	}{
		{"triangle", NewPath().MoveTo(0, 0).LineTo(100, 0).LineTo(50, 100).Close(), true, 1},
		{"triangle reversed", NewPath().MoveTo(0, 0).LineTo(50, 100).LineTo(100, 0).Close(), true, -1},
		{"square", Rectangle(0, 0, 10, 10), true, 1},
		{"hexagon", regularPolygon(50, 50, 40, 6), true, 1},
		{"collinear midpoint", NewPath().MoveTo(0, 0).LineTo(5, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close(), true, 1},
		{"repeated closing point", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(5, 8).LineTo(0, 0).Close(), true, 1},
		{"circle", circle(20, 20, 10), true, 1},
		{"quad lens", NewPath().MoveTo(0, 10).QuadTo(10, 0, 20, 10).QuadTo(10, 20, 0, 10).Close(), true, 1},
		{"star", starPolygon(50, 50, 40, 15, 5), false, 0},
		{"pentagram", pentagram(50, 50, 40), false, 0},
		{"notch", NewPath().MoveTo(0, 0).LineTo(10, 0).LineTo(5, 5).LineTo(10, 10).LineTo(0, 10).Close(), false, 0},
		{"two contours", Rectangle(0, 0, 4, 4).MoveTo(10, 10).LineTo(14, 10).LineTo(14, 14).Close(), false, 0},
		{"collinear", NewPath().MoveTo(0, 0).LineTo(10, 10).LineTo(5, 5).Close(), true, 0},
		{"empty", NewPath(), true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.AnalyzeConvexity()
			if got.Convex != tt.convex {
				t.Errorf("Convex = %v, want %v", got.Convex, tt.convex)
			}
			if got.Winding != tt.winding {
				t.Errorf("Winding = %d, want %d", got.Winding, tt.winding)
			}
			if tt.path.IsConvex() != tt.convex {
				t.Errorf("IsConvex() = %v, want %v", !tt.convex, tt.convex)
			}
		})
	}
}

func TestConvexityDegenerate(t *testing.T) {
	if !NewPath().MoveTo(0, 0).LineTo(10, 10).Close().AnalyzeConvexity().Degenerate() {
		t.Error("a single line should be degenerate")
	}
	if Rectangle(0, 0, 1, 1).AnalyzeConvexity().Degenerate() {
		t.Error("a square should not be degenerate")
	}
}

func TestDeviceRect(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		m    matrix.Matrix
		want raster.Rect
		ok   bool
	}{
		{"rectangle", Rectangle(1.5, 1.25, 6.75, 5.25), matrix.Identity, raster.Rect{Left: 1.5, Top: 1.25, Right: 8.25, Bottom: 6.5}, true},
		{"reversed", NewPath().MoveTo(8, 6).LineTo(8, 1).LineTo(1, 1).LineTo(1, 6).Close(), matrix.Identity, raster.Rect{Left: 1, Top: 1, Right: 8, Bottom: 6}, true},
		{"explicit close point", NewPath().MoveTo(0, 0).LineTo(4, 0).LineTo(4, 4).LineTo(0, 4).LineTo(0, 0).Close(), matrix.Identity, raster.Rect{Right: 4, Bottom: 4}, true},
		{"scaled", Rectangle(1, 1, 2, 2), matrix.Scale(2, 3), raster.Rect{Left: 2, Top: 3, Right: 6, Bottom: 9}, true},
		{"rotated", Rectangle(0, 0, 4, 4), matrix.RotateDeg(30), raster.Rect{}, false},
		{"quarter turn", Rectangle(0, 0, 4, 2), matrix.RotateDeg(90), raster.Rect{Left: -2, Right: 0, Top: 0, Bottom: 4}, true},
		{"bow tie", NewPath().MoveTo(0, 0).LineTo(4, 0).LineTo(0, 0).LineTo(0, 4).Close(), matrix.Identity, raster.Rect{}, false},
		{"triangle", NewPath().MoveTo(0, 0).LineTo(4, 0).LineTo(0, 4).Close(), matrix.Identity, raster.Rect{}, false},
		{"curve", NewPath().MoveTo(0, 0).LineTo(4, 0).QuadTo(4, 4, 0, 4).Close(), matrix.Identity, raster.Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.path.deviceRect(tt.m)
			if ok != tt.ok {
				t.Fatalf("deviceRect() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			const eps = 1e-4
			if math.Abs(float64(got.Left-tt.want.Left)) > eps || math.Abs(float64(got.Top-tt.want.Top)) > eps ||
				math.Abs(float64(got.Right-tt.want.Right)) > eps || math.Abs(float64(got.Bottom-tt.want.Bottom)) > eps {
				t.Errorf("deviceRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
