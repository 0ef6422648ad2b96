package aafill

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// fallback rasterizes p over clip with golang.org/x/image/vector and
// hands the coverage to sink as a single mask.
//
// The vector rasterizer accumulates signed area, which matches the
// non-zero rule wherever contours do not overlap with the same direction;
// even-odd overlaps are not distinguished. Inverse fills invert the
// coverage inside clip.
func (f *Filler) fallback(p *Path, sink Blitter, clip image.Rectangle, o *fillOptions, reason string) error {
	logRoute(reason, clip)

	w, h := clip.Dx(), clip.Dy()
	if f.vec == nil {
		f.vec = vector.NewRasterizer(w, h)
	} else {
		f.vec.Reset(w, h)
	}
	f.vec.DrawOp = draw.Src

	origin := vec.Vec2{X: float64(clip.Min.X), Y: float64(clip.Min.Y)}
	pt := func(v vec.Vec2) (float32, float32) {
		d := v.Sub(origin)
		return float32(d.X), float32(d.Y)
	}

	f.dev.reset(p, o.transform)
	open := false
	for cmd, pts := range f.dev.segments() {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				f.vec.ClosePath()
			}
			f.vec.MoveTo(pt(pts[0]))
			open = false
		case path.CmdLineTo:
			f.vec.LineTo(pt(pts[0]))
			open = true
		case path.CmdQuadTo:
			bx, by := pt(pts[0])
			cx, cy := pt(pts[1])
			f.vec.QuadTo(bx, by, cx, cy)
			open = true
		case path.CmdCubeTo:
			bx, by := pt(pts[0])
			cx, cy := pt(pts[1])
			dx, dy := pt(pts[2])
			f.vec.CubeTo(bx, by, cx, cy, dx, dy)
			open = true
		case path.CmdClose:
			f.vec.ClosePath()
			open = false
		}
	}
	if open {
		f.vec.ClosePath()
	}

	if f.mask == nil || cap(f.mask.Pix) < w*h {
		f.mask = image.NewAlpha(clip)
	} else {
		f.mask.Pix = f.mask.Pix[:w*h]
		f.mask.Stride = w
		f.mask.Rect = clip
	}
	f.vec.Draw(f.mask, clip, image.Opaque, image.Point{})

	if p.inverse {
		for i, a := range f.mask.Pix {
			f.mask.Pix[i] = 255 - a
		}
	}
	sink.BlitMask(f.mask, clip)
	return nil
}
