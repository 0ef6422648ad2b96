// Package aafill fills vector paths with analytic anti-aliasing.
//
// # Overview
//
// aafill computes, for every pixel a filled path touches, the exact area
// the path covers, instead of sampling the pixel at several points. A
// convex path is turned into Y-monotonic edges, curves are approximated
// by short line segments with forward differencing, and the region between
// the left and right edge is cut into trapezoids whose pixel coverage has a
// closed form. Coverage goes to a sink as run-length encoded rows or as a
// small dense mask.
//
// # Quick Start
//
//	p := aafill.NewPath().
//	    MoveTo(10, 2).
//	    QuadTo(30, 10, 10, 30).
//	    LineTo(2, 10).
//	    Close()
//
//	sink := aafill.NewMaskSink(image.Rect(0, 0, 32, 32))
//	if err := aafill.FillPath(p, sink); err != nil {
//	    log.Fatal(err)
//	}
//	// sink.Mask now holds 8-bit coverage.
//
// # Routing
//
// FillPath sends convex paths to the analytic engine. A path whose device
// bounds fit in 32 pixels of width and 1024 pixels of area is accumulated
// in a dense mask; larger paths use run-length encoded rows. Axis-aligned
// rectangles that would use the mask are blitted directly.
//
// Concave paths, inverse fills, and paths beyond the fixed-point range of
// ±8191 pixels are drawn by golang.org/x/image/vector instead. Disable
// that with WithFallback(false) to get an error.
//
// # Sinks
//
// Any type with BlitH and BlitAntiH can receive coverage; the remaining
// Blitter methods are derived when missing. MaskSink writes an 8-bit mask
// and ColorSink paints a solid color onto a draw.Image.
//
// # Logging
//
// aafill is silent by default. Call SetLogger to see routing decisions.
package aafill
