// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/gogpu/aafill"
	"github.com/gogpu/aafill/internal/parallel"
)

// Render paints the document onto a new RGBA image. Shapes are drawn in
// order with source-over compositing. A shape that fails stops rendering;
// the partial image is returned with the error.
func (d *Document) Render(ctx context.Context, f *aafill.Filler, logger *slog.Logger) (*image.RGBA, error) {
	img, shapes, err := d.prepare(logger)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = aafill.NewFiller()
	}
	return img, d.renderBand(ctx, f, img, shapes, img.Bounds())
}

// RenderParallel paints the document in horizontal bands, one Filler per
// band, on the workers of pool. Each band clips every shape to its rows,
// so pixels on band edges may differ from Render by the clipping
// tolerance of the rasterizer.
func (d *Document) RenderParallel(ctx context.Context, pool *parallel.WorkerPool, bands int, logger *slog.Logger) (*image.RGBA, error) {
	img, shapes, err := d.prepare(logger)
	if err != nil {
		return nil, err
	}
	rects := parallel.Bands(img.Bounds(), bands)
	errs := make([]error, len(rects))
	jobs := make([]func(), len(rects))
	for i, band := range rects {
		jobs[i] = func() {
			errs[i] = d.renderBand(ctx, aafill.NewFiller(), img, shapes, band)
		}
	}
	if logger != nil {
		logger.DebugContext(ctx, "render bands", "bands", len(rects), "workers", pool.Workers())
	}
	pool.ExecuteAll(jobs)
	for _, err := range errs {
		if err != nil {
			return img, err
		}
	}
	return img, nil
}

// prepare fills the background and compiles every shape.
func (d *Document) prepare(logger *slog.Logger) (*image.RGBA, []*compiled, error) {
	if logger == nil {
		logger = aafill.Logger()
	}
	bg, err := ParseColor(d.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: background: %w", err)
	}
	img := image.NewRGBA(d.Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	shapes := make([]*compiled, len(d.Shapes))
	for i := range d.Shapes {
		s := &d.Shapes[i]
		c, err := s.compile()
		if err != nil {
			return img, nil, fmt.Errorf("scene: shape %d (%s): %w", i, s.Name, err)
		}
		shapes[i] = c
		if logger.Enabled(context.Background(), slog.LevelDebug) {
			conv := c.path.AnalyzeConvexity()
			logger.Debug("fill shape",
				"index", i, "name", s.Name,
				"convex", conv.Convex, "winding", conv.Winding,
				"rule", c.path.FillRule(), "inverse", c.path.IsInverse())
		}
	}
	return img, shapes, nil
}

func (d *Document) renderBand(ctx context.Context, f *aafill.Filler, img *image.RGBA, shapes []*compiled, band image.Rectangle) error {
	common := d.Options.FillOptions()
	for i, c := range shapes {
		if err := ctx.Err(); err != nil {
			return err
		}
		opts, ok := c.options(common, band)
		if !ok {
			continue
		}
		if err := f.FillPath(c.path, aafill.NewColorSink(img, c.color), opts...); err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, d.Shapes[i].Name, err)
		}
	}
	return nil
}
