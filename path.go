package aafill

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/aafill/internal/raster"
)

// FillRule decides which regions of a path are inside.
type FillRule uint8

const (
	// NonZero fills regions with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills regions with an odd winding number.
	EvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Path is an outline to be filled, with its fill rule.
//
// The outline is stored as seehuhn.de/go/geom path data. Open contours are
// closed implicitly when filled.
type Path struct {
	data    path.Data
	rule    FillRule
	inverse bool
}

// NewPath returns an empty path filled with the non-zero rule.
func NewPath() *Path {
	return &Path{}
}

// FromData returns a path holding a copy of d.
func FromData(d *path.Data) *Path {
	p := &Path{}
	p.data.Cmds = append(p.data.Cmds, d.Cmds...)
	p.data.Coords = append(p.data.Coords, d.Coords...)
	return p
}

// FromSeq returns a path built from a path iterator.
func FromSeq(seq path.Path) *Path {
	p := &Path{}
	for cmd, pts := range seq {
		p.data.Cmds = append(p.data.Cmds, cmd)
		p.data.Coords = append(p.data.Coords, pts...)
	}
	return p
}

// Rectangle returns a closed axis-aligned rectangle.
func Rectangle(x, y, w, h float64) *Path {
	return NewPath().MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.data.MoveTo(vec.Vec2{X: x, Y: y})
	return p
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.data.LineTo(vec.Vec2{X: x, Y: y})
	return p
}

// QuadTo adds a quadratic Bezier with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.data.QuadTo(vec.Vec2{X: cx, Y: cy}, vec.Vec2{X: x, Y: y})
	return p
}

// CubicTo adds a cubic Bezier with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.data.CubeTo(vec.Vec2{X: c1x, Y: c1y}, vec.Vec2{X: c2x, Y: c2y}, vec.Vec2{X: x, Y: y})
	return p
}

// Close closes the current contour.
func (p *Path) Close() *Path {
	p.data.Close()
	return p
}

// SetFillRule sets the fill rule.
func (p *Path) SetFillRule(r FillRule) *Path {
	p.rule = r
	return p
}

// FillRule returns the fill rule.
func (p *Path) FillRule() FillRule {
	return p.rule
}

// SetInverse selects inverse filling: everything outside the outline is
// filled instead of the inside.
func (p *Path) SetInverse(inverse bool) *Path {
	p.inverse = inverse
	return p
}

// IsInverse reports whether the path is inverse filled.
func (p *Path) IsInverse() bool {
	return p.inverse
}

// Data returns the underlying path data.
func (p *Path) Data() *path.Data {
	return &p.data
}

// Iter returns the path as an iterator over commands and points.
func (p *Path) Iter() path.Path {
	return p.data.Iter()
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	for _, c := range p.data.Cmds {
		if c != path.CmdMoveTo {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of all points, control points included.
// An empty path has zero bounds.
func (p *Path) Bounds() rect.Rect {
	return p.transformedBounds(matrix.Identity)
}

func (p *Path) transformedBounds(m matrix.Matrix) rect.Rect {
	if len(p.data.Coords) == 0 {
		return rect.Rect{}
	}
	q := apply(m, p.data.Coords[0])
	b := rect.Rect{LLx: q.X, LLy: q.Y, URx: q.X, URy: q.Y}
	for _, v := range p.data.Coords[1:] {
		q := apply(m, v)
		b.LLx = min(b.LLx, q.X)
		b.LLy = min(b.LLy, q.Y)
		b.URx = max(b.URx, q.X)
		b.URy = max(b.URy, q.Y)
	}
	return b
}

// apply maps v through m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func finite(r rect.Rect) bool {
	for _, v := range [4]float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// devicePath presents a Path in device space to the edge builder.
type devicePath struct {
	p   *Path
	m   matrix.Matrix
	pts [3]raster.Point
}

func (d *devicePath) reset(p *Path, m matrix.Matrix) {
	d.p = p
	d.m = m
}

// segments yields the device-space commands with points in float64.
func (d *devicePath) segments() iter.Seq2[path.Command, []vec.Vec2] {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for cmd, pts := range d.p.data.Iter() {
			out := buf[:len(pts)]
			for i, v := range pts {
				out[i] = apply(d.m, v)
			}
			if !yield(cmd, out) {
				return
			}
		}
	}
}

// Segments implements raster.PathSource.
func (d *devicePath) Segments() iter.Seq2[raster.Verb, []raster.Point] {
	return func(yield func(raster.Verb, []raster.Point) bool) {
		for cmd, pts := range d.segments() {
			verb, ok := rasterVerb(cmd)
			if !ok {
				continue
			}
			out := d.pts[:len(pts)]
			for i, v := range pts {
				out[i] = raster.Point{X: float32(v.X), Y: float32(v.Y)}
			}
			if !yield(verb, out) {
				return
			}
		}
	}
}

func rasterVerb(c path.Command) (raster.Verb, bool) {
	switch c {
	case path.CmdMoveTo:
		return raster.VerbMove, true
	case path.CmdLineTo:
		return raster.VerbLine, true
	case path.CmdQuadTo:
		return raster.VerbQuad, true
	case path.CmdCubeTo:
		return raster.VerbCubic, true
	case path.CmdClose:
		return raster.VerbClose, true
	}
	return 0, false
}
