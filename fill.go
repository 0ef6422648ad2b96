package aafill

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"github.com/gogpu/aafill/internal/fixed"
	"github.com/gogpu/aafill/internal/raster"
)

// Filler rasterizes paths with analytic anti-aliasing. It keeps its
// buffers between calls, so reusing one Filler avoids allocation once it
// has seen the largest shape. A Filler must not be used concurrently.
type Filler struct {
	engine raster.Filler
	dev    devicePath

	vec  *vector.Rasterizer
	mask *image.Alpha
}

// NewFiller returns a ready Filler. The zero value is also ready to use.
func NewFiller() *Filler {
	return &Filler{}
}

// FillPath rasterizes p into sink.
//
// Convex paths go through the analytic scan converter. Concave and inverse
// filled paths, and paths whose device bounds exceed the fixed-point
// range, go through the fallback rasterizer unless it is disabled with
// WithFallback(false). Empty and degenerate paths draw nothing.
func (f *Filler) FillPath(p *Path, sink SpanBlitter, opts ...FillOption) error {
	if sink == nil {
		return ErrNilSink
	}
	o := defaultFillOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := Complete(sink)

	clip := o.clip
	if clip.Empty() {
		if bs, ok := sink.(boundedSink); ok {
			clip = bs.Bounds()
		}
	}

	bounds := p.transformedBounds(o.transform)
	if !finite(bounds) {
		return ErrNonFinite
	}

	if p.Empty() || emptyRect(bounds) {
		if p.inverse && !clip.Empty() {
			return f.fallback(p, b, clip, &o, "empty inverse")
		}
		return nil
	}

	if p.inverse {
		if clip.Empty() {
			return nil
		}
		if !o.fallback {
			return ErrInverseFill
		}
		return f.fallback(p, b, clip, &o, "inverse fill")
	}

	ir := roundOut(bounds)
	bounded := !clip.Empty()
	if !bounded {
		clip = ir
	}
	if ir.Intersect(clip).Empty() {
		return nil
	}

	if overflows(bounds) {
		if !o.fallback || !bounded {
			return ErrCoordinateOverflow
		}
		return f.fallback(p, b, clip, &o, "coordinate overflow")
	}

	conv := p.AnalyzeConvexity()
	if conv.Degenerate() {
		return nil
	}
	if !conv.Convex {
		if !o.fallback {
			return ErrNotConvex
		}
		return f.fallback(p, b, clip, &o, "concave path")
	}

	cfg := o.engineConfig(clip)
	if cfg.UsesMask(ir) {
		if r, ok := p.deviceRect(o.transform); ok && f.engine.FillFatRect(r, clip, b) {
			return nil
		}
	}

	f.dev.reset(p, o.transform)
	if err := f.engine.FillConvex(&f.dev, ir, b, cfg); err != nil {
		if errors.Is(err, raster.ErrTooFewEdges) {
			return fmt.Errorf("%w: %w", ErrTooFewEdges, err)
		}
		return fmt.Errorf("aafill: fill convex path: %w", err)
	}
	return nil
}

// FillPath rasterizes p into sink with a temporary Filler.
func FillPath(p *Path, sink SpanBlitter, opts ...FillOption) error {
	var f Filler
	return f.FillPath(p, sink, opts...)
}

// roundOut returns the smallest integer rectangle containing b.
func roundOut(b rect.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.LLx)), int(math.Floor(b.LLy)),
		int(math.Ceil(b.URx)), int(math.Ceil(b.URy)))
}

func emptyRect(b rect.Rect) bool {
	return b.URx <= b.LLx || b.URy <= b.LLy
}

// overflows reports whether b cannot be represented once coordinates are
// shifted into the fixed-point edge format.
func overflows(b rect.Rect) bool {
	const limit = fixed.MaxCoord
	return b.LLx < -limit || b.LLy < -limit || b.URx > limit || b.URy > limit
}

func logRoute(reason string, bounds image.Rectangle) {
	if l := Logger(); l.Enabled(context.Background(), slog.LevelWarn) {
		l.Warn("aafill: using fallback rasterizer", "reason", reason, "clip", bounds)
	}
}
