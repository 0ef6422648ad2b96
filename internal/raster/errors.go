// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "errors"

var (
	// ErrTooFewEdges is returned by FillConvex when a path produces a
	// single edge, which cannot bound a convex region.
	ErrTooFewEdges = errors.New("raster: convex fill needs at least two edges")

	// ErrMaskTooLarge is returned when the mask accumulator is requested
	// for bounds beyond the configured mask limits.
	ErrMaskTooLarge = errors.New("raster: bounds exceed mask limits")
)
