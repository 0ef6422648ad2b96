// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const canvas = 26

// convexShapes are polygons with vertices on the quarter-pixel grid.
var convexShapes = []struct {
	name string
	pts  []Point
	// tol bounds the per-pixel error against the exact area, in alpha
	// levels. Zero skips the per-pixel check.
	tol float64
}{
	{"triangle", []Point{{2, 1}, {18, 5}, {6, 17}}, 8},
	{"trapezoid", []Point{{5, 0}, {0, 20}, {20, 20}, {10, 0}}, 8},
	{"diamond", []Point{{10, 1.5}, {18.5, 10}, {10, 18.5}, {1.5, 10}}, 8},
	{"hexagon", []Point{{17.75, 11.5}, {12.5, 17.5}, {4.75, 16}, {2.25, 8.5}, {7.5, 2.5}, {15.25, 4}}, 8},
	{"octagon", []Point{
		{21.25, 11.75}, {18, 16.5}, {11, 18}, {4.75, 15.5},
		{2.75, 10.25}, {6, 5.5}, {13, 4}, {19.25, 6.5},
	}, 8},
	{"thin", []Point{{3, 2}, {4, 2}, {15, 18}, {14, 18}}, 8},
	{"skinny", []Point{{1, 10}, {20, 11}, {20, 11.5}}, 8},
	{"rect", []Point{{1.5, 1.25}, {8.25, 1.25}, {8.25, 6.5}, {1.5, 6.5}}, 8},
	{"narrow", []Point{{3.25, 1.5}, {3.75, 1.5}, {3.75, 9}, {3.25, 9}}, 8},
	// Many short edges exercise the smoothness merge, which trades
	// per-pixel accuracy for speed.
	{"40-gon", circlePoints(), 0},
}

func circlePoints() []Point {
	// Vertices of a radius 10 circle rounded to quarter pixels.
	return []Point{
		{22, 12}, {22, 13.5}, {21.5, 15}, {21, 16.5}, {20, 18}, {19, 19}, {18, 20}, {16.5, 21},
		{15, 21.5}, {13.5, 22}, {12, 22}, {10.5, 22}, {9, 21.5}, {7.5, 21}, {6, 20}, {5, 19},
		{4, 18}, {3, 16.5}, {2.5, 15}, {2, 13.5}, {2, 12}, {2, 10.5}, {2.5, 9}, {3, 7.5},
		{4, 6}, {5, 5}, {6, 4}, {7.5, 3}, {9, 2.5}, {10.5, 2}, {12, 2}, {13.5, 2},
		{15, 2.5}, {16.5, 3}, {18, 4}, {19, 5}, {20, 6}, {21, 7.5}, {21.5, 9}, {22, 10.5},
	}
}

func boundsOf(pts []Point) image.Rectangle {
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = min(r.Left, p.X)
		r.Top = min(r.Top, p.Y)
		r.Right = max(r.Right, p.X)
		r.Bottom = max(r.Bottom, p.Y)
	}
	return r.RoundOut()
}

// clipHalfPlane keeps the part of poly where inside holds. cross returns
// the point where the segment a-b meets the boundary.
func clipHalfPlane(poly [][2]float64, inside func(p [2]float64) bool, cross func(a, b [2]float64) [2]float64) [][2]float64 {
	var out [][2]float64
	for i, b := range poly {
		a := poly[(i+len(poly)-1)%len(poly)]
		switch {
		case inside(b):
			if !inside(a) {
				out = append(out, cross(a, b))
			}
			out = append(out, b)
		case inside(a):
			out = append(out, cross(a, b))
		}
	}
	return out
}

// pixelArea returns the area poly shares with the unit pixel at (x, y).
func pixelArea(poly [][2]float64, x, y float64) float64 {
	atX := func(v float64) func(a, b [2]float64) [2]float64 {
		return func(a, b [2]float64) [2]float64 {
			t := (v - a[0]) / (b[0] - a[0])
			return [2]float64{v, a[1] + t*(b[1]-a[1])}
		}
	}
	atY := func(v float64) func(a, b [2]float64) [2]float64 {
		return func(a, b [2]float64) [2]float64 {
			t := (v - a[1]) / (b[1] - a[1])
			return [2]float64{a[0] + t*(b[0]-a[0]), v}
		}
	}
	p := clipHalfPlane(poly, func(p [2]float64) bool { return p[0] >= x }, atX(x))
	p = clipHalfPlane(p, func(p [2]float64) bool { return p[0] <= x+1 }, atX(x+1))
	p = clipHalfPlane(p, func(p [2]float64) bool { return p[1] >= y }, atY(y))
	p = clipHalfPlane(p, func(p [2]float64) bool { return p[1] <= y+1 }, atY(y+1))
	var a float64
	for i, q := range p {
		r := p[(i+1)%len(p)]
		a += q[0]*r[1] - r[0]*q[1]
	}
	return math.Abs(a) / 2
}

// exactCoverage returns the fraction of every canvas pixel covered by poly.
func exactCoverage(pts []Point) [canvas][canvas]float64 {
	poly := make([][2]float64, len(pts))
	for i, p := range pts {
		poly[i] = [2]float64{float64(p.X), float64(p.Y)}
	}
	var cov [canvas][canvas]float64
	for y := range canvas {
		for x := range canvas {
			cov[y][x] = pixelArea(poly, float64(x), float64(y))
		}
	}
	return cov
}

func coverageAt(cov *[canvas][canvas]float64, x, y int) float64 {
	if x < 0 || y < 0 || x >= canvas || y >= canvas {
		return 0
	}
	return cov[y][x]
}

// checkCoverage compares sink against exact coverage. Pixels whose whole
// neighbourhood is inside the shape must be opaque, pixels whose whole
// neighbourhood is outside must be untouched.
func checkCoverage(t *testing.T, sink *gridSink, cov *[canvas][canvas]float64, tol float64) {
	t.Helper()
	for y := range canvas {
		for x := range canvas {
			got := float64(sink.at(x, y))
			if tol > 0 {
				if d := math.Abs(got - cov[y][x]*255); d > tol {
					t.Errorf("pixel (%d, %d) = %v, want %.1f", x, y, got, cov[y][x]*255)
				}
			}
			in, out := true, true
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					c := coverageAt(cov, x+dx, y+dy)
					in = in && c > 0.9999
					out = out && c == 0
				}
			}
			if in && got != 255 {
				t.Errorf("interior pixel (%d, %d) = %v, want 255", x, y, got)
			}
			if out && got != 0 {
				t.Errorf("exterior pixel (%d, %d) = %v, want 0", x, y, got)
			}
		}
	}
}

func checkTotal(t *testing.T, sink *gridSink, cov *[canvas][canvas]float64) {
	t.Helper()
	var area float64
	for y := range canvas {
		for x := range canvas {
			area += cov[y][x]
		}
	}
	if got := sink.total(); math.Abs(got-area) > 0.01*area+0.1 {
		t.Errorf("total coverage = %.3f, want %.3f", got, area)
	}
}

func fillShape(t *testing.T, f *Filler, path PathSource, bounds image.Rectangle, acc Accumulator) *gridSink {
	t.Helper()
	sink := newGridSink(canvas, canvas)
	cfg := Config{Clip: image.Rect(0, 0, canvas, canvas), Accumulator: acc}
	if err := f.FillConvex(path, bounds, sink, cfg); err != nil {
		t.Fatalf("FillConvex() error = %v", err)
	}
	return sink
}

func TestFillConvexCoverage(t *testing.T) {
	for _, tt := range convexShapes {
		for _, acc := range []Accumulator{AccumulateRuns, AccumulateMask} {
			t.Run(tt.name+"/"+acc.String(), func(t *testing.T) {
				var f Filler
				sink := fillShape(t, &f, polygon(tt.pts...), boundsOf(tt.pts), acc)
				cov := exactCoverage(tt.pts)
				checkCoverage(t, sink, &cov, tt.tol)
				checkTotal(t, sink, &cov)
			})
		}
	}
}

func TestFillConvexCurves(t *testing.T) {
	// Four cubic arcs approximating a circle; each arc is monotonic in Y.
	const k = 0.5522847498
	tests := []struct {
		name      string
		cx, cy, r float32
	}{
		{"r8", 12, 12, 8},
		{"r10.5", 12.5, 12.25, 10.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy, r := tt.cx, tt.cy, tt.r
			kr := k * r
			arcs := [][4]Point{
				{{cx + r, cy}, {cx + r, cy + kr}, {cx + kr, cy + r}, {cx, cy + r}},
				{{cx, cy + r}, {cx - kr, cy + r}, {cx - r, cy + kr}, {cx - r, cy}},
				{{cx - r, cy}, {cx - r, cy - kr}, {cx - kr, cy - r}, {cx, cy - r}},
				{{cx, cy - r}, {cx + kr, cy - r}, {cx + r, cy - kr}, {cx + r, cy}},
			}
			path := (&testPath{}).moveTo(cx+r, cy)
			var flat []Point
			for _, a := range arcs {
				path.cubicTo(a[1].X, a[1].Y, a[2].X, a[2].Y, a[3].X, a[3].Y)
				for i := range 64 {
					flat = append(flat, cubicAt(a, float32(i)/64))
				}
			}
			path.close()
			bounds := Rect{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}.RoundOut()
			cov := exactCoverage(flat)

			for _, acc := range []Accumulator{AccumulateRuns, AccumulateMask} {
				var f Filler
				sink := fillShape(t, &f, path, bounds, acc)
				checkCoverage(t, sink, &cov, 0)
				checkTotal(t, sink, &cov)
			}
		})
	}
}

func cubicAt(p [4]Point, t float32) Point {
	s := 1 - t
	a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return Point{
		a*p[0].X + b*p[1].X + c*p[2].X + d*p[3].X,
		a*p[0].Y + b*p[1].Y + c*p[2].Y + d*p[3].Y,
	}
}

func TestMaskMatchesRuns(t *testing.T) {
	for _, tt := range convexShapes {
		if tt.tol == 0 {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			var f Filler
			path, bounds := polygon(tt.pts...), boundsOf(tt.pts)
			runs := fillShape(t, &f, path, bounds, AccumulateRuns)
			mask := fillShape(t, &f, path, bounds, AccumulateMask)
			for y := range canvas {
				for x := range canvas {
					a, b := int(runs.at(x, y)), int(mask.at(x, y))
					if d := a - b; d < -8 || d > 8 {
						t.Errorf("pixel (%d, %d): runs %d, mask %d", x, y, a, b)
					}
				}
			}
		})
	}
}

func TestFillerReuse(t *testing.T) {
	hex := convexShapes[3].pts
	tri := convexShapes[0].pts

	var fresh Filler
	want := fillShape(t, &fresh, polygon(hex...), boundsOf(hex), AccumulateRuns).calls

	var f Filler
	fillShape(t, &f, polygon(hex...), boundsOf(hex), AccumulateMask)
	fillShape(t, &f, polygon(tri...), boundsOf(tri), AccumulateRuns)
	got := fillShape(t, &f, polygon(hex...), boundsOf(hex), AccumulateRuns).calls

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reused Filler output mismatch (-want +got):\n%s", diff)
	}
}

func TestFillConvexClip(t *testing.T) {
	pts := convexShapes[1].pts
	bounds := boundsOf(pts)

	var f Filler
	full := fillShape(t, &f, polygon(pts...), bounds, AccumulateRuns)

	tests := []struct {
		name string
		clip image.Rectangle
	}{
		{"rows", image.Rect(0, 5, canvas, 15)},
		{"columns", image.Rect(8, 0, canvas, canvas)},
		{"right columns", image.Rect(0, 0, 13, canvas)},
		{"box", image.Rect(3, 4, 15, 12)},
	}
	for _, tt := range tests {
		for _, acc := range []Accumulator{AccumulateRuns, AccumulateMask} {
			t.Run(tt.name+"/"+acc.String(), func(t *testing.T) {
				sink := newGridSink(canvas, canvas)
				cfg := Config{Clip: tt.clip, Accumulator: acc}
				if err := f.FillConvex(polygon(pts...), bounds, sink, cfg); err != nil {
					t.Fatalf("FillConvex() error = %v", err)
				}
				for _, c := range sink.calls {
					if r := c.extent(); !r.Empty() && !r.In(tt.clip) {
						t.Errorf("%s call covers %v, outside the clip %v", c.Op, r, tt.clip)
					}
				}
				for y := range canvas {
					for x := range canvas {
						got := int(sink.at(x, y))
						if !(image.Point{x, y}).In(tt.clip) {
							if got != 0 {
								t.Errorf("pixel (%d, %d) outside the clip = %d", x, y, got)
							}
							continue
						}
						if d := got - int(full.at(x, y)); d < -8 || d > 8 {
							t.Errorf("pixel (%d, %d) = %d, unclipped %d", x, y, got, full.at(x, y))
						}
					}
				}
			})
		}
	}
}

func TestFillConvexNothingToDraw(t *testing.T) {
	square := polygon(Point{2, 2}, Point{6, 2}, Point{6, 6}, Point{2, 6})
	tests := []struct {
		name   string
		path   PathSource
		bounds image.Rectangle
		clip   image.Rectangle
	}{
		{"empty path", &testPath{}, image.Rect(0, 0, 4, 4), image.Rectangle{}},
		{"flat path", polygon(Point{0, 3}, Point{9, 3}), image.Rect(0, 3, 9, 3), image.Rectangle{}},
		{"outside clip", square, image.Rect(2, 2, 6, 6), image.Rect(10, 10, 20, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := newGridSink(canvas, canvas)
			var f Filler
			if err := f.FillConvex(tt.path, tt.bounds, sink, Config{Clip: tt.clip}); err != nil {
				t.Fatalf("FillConvex() error = %v", err)
			}
			if len(sink.calls) != 0 {
				t.Errorf("got %d calls, want none", len(sink.calls))
			}
		})
	}
}

func TestFillConvexMaskTooLarge(t *testing.T) {
	pts := []Point{{0, 0}, {40, 0}, {40, 40}, {0, 40}}
	var f Filler
	err := f.FillConvex(polygon(pts...), boundsOf(pts), newGridSink(64, 64), Config{Accumulator: AccumulateMask})
	if !errors.Is(err, ErrMaskTooLarge) {
		t.Errorf("FillConvex() error = %v, want ErrMaskTooLarge", err)
	}
}

func TestConfigUsesMask(t *testing.T) {
	small := image.Rect(0, 0, 16, 16)
	large := image.Rect(0, 0, 100, 100)
	tests := []struct {
		name   string
		cfg    Config
		bounds image.Rectangle
		want   bool
	}{
		{"auto small", Config{}, small, true},
		{"auto large", Config{}, large, false},
		{"auto custom limits", Config{MaskMaxWidth: 128, MaskMaxArea: 1 << 14}, large, true},
		{"runs", Config{Accumulator: AccumulateRuns}, small, false},
		{"mask", Config{Accumulator: AccumulateMask}, large, true},
	}
	for _, tt := range tests {
		if got := tt.cfg.UsesMask(tt.bounds); got != tt.want {
			t.Errorf("%s: UsesMask() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAccumulatorString(t *testing.T) {
	tests := []struct {
		a    Accumulator
		want string
	}{
		{AccumulateAuto, "auto"},
		{AccumulateRuns, "runs"},
		{AccumulateMask, "mask"},
		{Accumulator(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Accumulator(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestFillFatRect(t *testing.T) {
	clip := image.Rect(0, 0, canvas, canvas)
	r := Rect{Left: 1.5, Top: 1.25, Right: 8.25, Bottom: 6.5}

	var f Filler
	fat := newGridSink(canvas, canvas)
	if !f.FillFatRect(r, clip, fat) {
		t.Fatal("FillFatRect() = false")
	}
	pts := []Point{{r.Left, r.Top}, {r.Right, r.Top}, {r.Right, r.Bottom}, {r.Left, r.Bottom}}
	walked := fillShape(t, &f, polygon(pts...), r.RoundOut(), AccumulateRuns)

	for y := range canvas {
		for x := range canvas {
			a, b := int(fat.at(x, y)), int(walked.at(x, y))
			if d := a - b; d < -8 || d > 8 {
				t.Errorf("pixel (%d, %d): fat rect %d, walker %d", x, y, a, b)
			}
		}
	}
	// Corner: half a column by three quarters of a row.
	if got := fat.at(1, 1); got != 95 {
		t.Errorf("top-left corner = %d, want 95", got)
	}
}

func TestFillFatRectEdgeCases(t *testing.T) {
	clip := image.Rect(0, 0, canvas, canvas)
	tests := []struct {
		name  string
		r     Rect
		ok    bool
		calls int
	}{
		{"narrow", Rect{Left: 3.25, Top: 1, Right: 4.75, Bottom: 9}, false, 0},
		{"outside", Rect{Left: 30, Top: 30, Right: 40, Bottom: 40}, true, 0},
		{"one row", Rect{Left: 1, Top: 2.25, Right: 9, Bottom: 2.75}, true, 1},
		{"two rows", Rect{Left: 1, Top: 2.5, Right: 9, Bottom: 3.5}, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filler
			sink := newGridSink(canvas, canvas)
			if got := f.FillFatRect(tt.r, clip, sink); got != tt.ok {
				t.Fatalf("FillFatRect() = %v, want %v", got, tt.ok)
			}
			if len(sink.calls) != tt.calls {
				t.Errorf("got %d calls, want %d", len(sink.calls), tt.calls)
			}
		})
	}
}

func TestFillFatRectClipped(t *testing.T) {
	var f Filler
	sink := newGridSink(canvas, canvas)
	if !f.FillFatRect(Rect{Left: -2, Top: -2, Right: 4.5, Bottom: 4.5}, image.Rect(0, 0, canvas, canvas), sink) {
		t.Fatal("FillFatRect() = false")
	}
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 255},
		{2, 2, 255},
		{4, 0, 127},
		{0, 4, 127},
		{4, 4, 63},
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := sink.at(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
