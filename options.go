package aafill

import (
	"image"

	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/aafill/internal/raster"
)

// FillOption configures a single FillPath call.
//
// Example:
//
//	err := f.FillPath(p, sink,
//	    aafill.WithClip(image.Rect(0, 0, 256, 256)),
//	    aafill.WithTransform(matrix.Scale(2, 2)))
type FillOption func(*fillOptions)

// fillOptions holds the resolved configuration of a fill.
type fillOptions struct {
	clip          image.Rectangle
	transform     matrix.Matrix
	forceRLE      bool
	fallback      bool
	maskMaxWidth  int
	maskMaxArea   int
	rowsPreserved int
}

// defaultFillOptions returns the configuration used when no option is given.
func defaultFillOptions() fillOptions {
	return fillOptions{
		transform:    matrix.Identity,
		fallback:     true,
		maskMaxWidth: raster.MaskMaxWidth,
		maskMaxArea:  raster.MaskMaxArea,
	}
}

// WithClip limits output to r in device pixels. Without a clip the fill is
// bounded by the sink's Bounds method when it has one, and by the path
// otherwise. Inverse fills draw nothing without a bound.
func WithClip(r image.Rectangle) FillOption {
	return func(o *fillOptions) {
		o.clip = r
	}
}

// WithTransform maps path coordinates to device pixels.
func WithTransform(m matrix.Matrix) FillOption {
	return func(o *fillOptions) {
		o.transform = m
	}
}

// WithForceRLE disables the dense mask accumulator and the fat rectangle
// fast path, so every row goes through run-length encoded coverage.
func WithForceRLE(force bool) FillOption {
	return func(o *fillOptions) {
		o.forceRLE = force
	}
}

// WithFallback controls whether paths the analytic engine cannot handle
// (concave, inverse filled, or beyond the fixed-point range) are drawn by
// the non-analytic rasterizer. With the fallback disabled such paths fail
// with ErrNotConvex, ErrInverseFill or ErrCoordinateOverflow. The default
// is enabled.
func WithFallback(enabled bool) FillOption {
	return func(o *fillOptions) {
		o.fallback = enabled
	}
}

// WithMaskLimits sets the largest bounds that use the dense mask
// accumulator. Non-positive values keep the defaults of 32 pixels wide and
// 1024 pixels in area.
func WithMaskLimits(maxWidth, maxArea int) FillOption {
	return func(o *fillOptions) {
		if maxWidth > 0 {
			o.maskMaxWidth = maxWidth
		}
		if maxArea > 0 {
			o.maskMaxArea = maxArea
		}
	}
}

// WithRowsPreserved overrides the number of coverage rows the sink may
// keep after BlitAntiH returns. See RowPreserver.
func WithRowsPreserved(n int) FillOption {
	return func(o *fillOptions) {
		o.rowsPreserved = n
	}
}

func (o *fillOptions) engineConfig(clip image.Rectangle) raster.Config {
	cfg := raster.Config{
		Clip:          clip,
		MaskMaxWidth:  o.maskMaxWidth,
		MaskMaxArea:   o.maskMaxArea,
		RowsPreserved: o.rowsPreserved,
	}
	if o.forceRLE {
		cfg.Accumulator = raster.AccumulateRuns
	}
	return cfg
}
