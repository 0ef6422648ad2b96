// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements analytic anti-aliased scan conversion of
// convex paths.
//
// A path is turned into Y-monotonic edges by EdgeBuilder, sorted into an
// EdgeList, and walked top to bottom by the convex walker, which computes
// the exact area each pixel shares with the trapezoid between the left and
// right edge. Coverage is summed in either a run-encoded row accumulator
// or a dense mask and handed to a Blitter.
//
// Coordinates inside the package are 16.16 fixed point (see
// internal/fixed) with Y snapped to a quarter pixel. Alpha is 8-bit.
//
// Filler.FillConvex is the entry point. It assumes the caller has already
// checked that the path is convex, not inverse filled and small enough for
// the fixed-point range.
package raster
