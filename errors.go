package aafill

import "errors"

var (
	// ErrNilSink is returned when FillPath is called without a sink.
	ErrNilSink = errors.New("aafill: sink must not be nil")

	// ErrNotConvex is returned for a concave or multi-contour path when the
	// fallback rasterizer is disabled.
	ErrNotConvex = errors.New("aafill: path is not convex")

	// ErrInverseFill is returned for an inverse-filled path when the
	// fallback rasterizer is disabled.
	ErrInverseFill = errors.New("aafill: inverse fill needs the fallback rasterizer")

	// ErrCoordinateOverflow is returned when the device bounds do not fit
	// the fixed-point range and the fallback is disabled or unbounded.
	ErrCoordinateOverflow = errors.New("aafill: coordinates exceed the fixed-point range")

	// ErrNonFinite is returned when a transformed coordinate is NaN or
	// infinite.
	ErrNonFinite = errors.New("aafill: non-finite coordinate")

	// ErrTooFewEdges is returned when a convex path yields a single edge.
	ErrTooFewEdges = errors.New("aafill: convex path has fewer than two edges")
)
