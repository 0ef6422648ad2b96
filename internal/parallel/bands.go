// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "image"

// Bands splits r into at most n horizontal bands of nearly equal height.
// Heights differ by at most one row and every band is non-empty.
func Bands(r image.Rectangle, n int) []image.Rectangle {
	h := r.Dy()
	if r.Empty() {
		return nil
	}
	n = min(max(n, 1), h)

	bands := make([]image.Rectangle, n)
	y := r.Min.Y
	for i := range n {
		rows := h / n
		if i < h%n {
			rows++
		}
		bands[i] = image.Rect(r.Min.X, y, r.Max.X, y+rows)
		y += rows
	}
	return bands
}
