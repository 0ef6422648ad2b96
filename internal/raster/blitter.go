// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Blitter is the pixel sink the scan converter writes coverage to.
//
// Coordinates are device pixels. Alpha is coverage in 0-255. Run-encoded
// rows pair alpha[i] with runs[i], the number of pixels sharing it; a
// zero run ends the row.
type Blitter interface {
	// BlitH fills width pixels at full coverage.
	BlitH(x, y, width int)

	// BlitAntiH writes one run-encoded row starting at x.
	BlitAntiH(x, y int, alpha []uint8, runs []uint16)

	// BlitAntiH2 writes two adjacent pixels.
	BlitAntiH2(x, y int, a0, a1 uint8)

	// BlitV writes a column of height pixels at one coverage.
	BlitV(x, y, height int, alpha uint8)

	// BlitRect fills a rectangle at full coverage.
	BlitRect(x, y, width, height int)

	// BlitAntiRect fills a rectangle whose first and last columns have
	// partial coverage. The full-coverage interior is width pixels wide and
	// starts at x+1.
	BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8)

	// BlitMask writes the coverage in mask, restricted to clip.
	BlitMask(mask *image.Alpha, clip image.Rectangle)
}

// SpanBlitter is the minimum a sink must implement; Complete derives the
// remaining Blitter methods from it.
type SpanBlitter interface {
	BlitH(x, y, width int)
	BlitAntiH(x, y int, alpha []uint8, runs []uint16)
}

// RowPreserver is implemented by sinks that hold on to the slices passed
// to BlitAntiH for a number of rows after the call.
type RowPreserver interface {
	RowsPreserved() int
}

// Complete returns s as a Blitter. Methods s already has are used as is;
// the rest are expressed through BlitH and BlitAntiH.
func Complete(s SpanBlitter) Blitter {
	if b, ok := s.(Blitter); ok {
		return b
	}
	return &spanAdapter{SpanBlitter: s}
}

type spanAdapter struct {
	SpanBlitter
	alpha [2]uint8
	runs  [3]uint16
	row   []uint8
	rrow  []uint16
}

// RowsPreserved forwards the wrapped sink's request.
func (a *spanAdapter) RowsPreserved() int {
	if p, ok := a.SpanBlitter.(RowPreserver); ok {
		return p.RowsPreserved()
	}
	return 1
}

func (a *spanAdapter) BlitAntiH2(x, y int, a0, a1 uint8) {
	if b, ok := a.SpanBlitter.(interface{ BlitAntiH2(x, y int, a0, a1 uint8) }); ok {
		b.BlitAntiH2(x, y, a0, a1)
		return
	}
	a.alpha[0], a.alpha[1] = a0, a1
	a.runs[0], a.runs[1], a.runs[2] = 1, 1, 0
	a.SpanBlitter.BlitAntiH(x, y, a.alpha[:], a.runs[:])
}

func (a *spanAdapter) BlitV(x, y, height int, alpha uint8) {
	if b, ok := a.SpanBlitter.(interface{ BlitV(x, y, height int, alpha uint8) }); ok {
		b.BlitV(x, y, height, alpha)
		return
	}
	if alpha == 0 {
		return
	}
	for i := range height {
		a.alpha[0] = alpha
		a.runs[0], a.runs[1] = 1, 0
		a.SpanBlitter.BlitAntiH(x, y+i, a.alpha[:1], a.runs[:2])
	}
}

func (a *spanAdapter) BlitRect(x, y, width, height int) {
	if b, ok := a.SpanBlitter.(interface{ BlitRect(x, y, width, height int) }); ok {
		b.BlitRect(x, y, width, height)
		return
	}
	for i := range height {
		a.SpanBlitter.BlitH(x, y+i, width)
	}
}

func (a *spanAdapter) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	type antiRecter interface {
		BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8)
	}
	if b, ok := a.SpanBlitter.(antiRecter); ok {
		b.BlitAntiRect(x, y, width, height, leftAlpha, rightAlpha)
		return
	}
	a.BlitV(x, y, height, leftAlpha)
	if width > 0 {
		a.BlitRect(x+1, y, width, height)
	}
	a.BlitV(x+1+width, y, height, rightAlpha)
}

func (a *spanAdapter) BlitMask(mask *image.Alpha, clip image.Rectangle) {
	if b, ok := a.SpanBlitter.(interface {
		BlitMask(mask *image.Alpha, clip image.Rectangle)
	}); ok {
		b.BlitMask(mask, clip)
		return
	}
	r := mask.Rect.Intersect(clip)
	if r.Empty() {
		return
	}
	w := r.Dx()
	a.row = growBytes(a.row, w)
	a.rrow = growRuns(a.rrow, w+1)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := mask.PixOffset(r.Min.X, y)
		n := encodeRuns(mask.Pix[i:i+w], a.row, a.rrow)
		if n > 0 {
			a.SpanBlitter.BlitAntiH(r.Min.X, y, a.row, a.rrow)
		}
	}
}

// encodeRuns run-length encodes src into alpha/runs and returns the
// number of runs, or zero when the whole row is transparent.
func encodeRuns(src, alpha []uint8, runs []uint16) int {
	n := 0
	nonZero := false
	for i := 0; i < len(src); {
		j := i + 1
		for j < len(src) && src[j] == src[i] && j-i < 0xFFFF {
			j++
		}
		alpha[i] = src[i]
		runs[i] = uint16(j - i)
		if src[i] != 0 {
			nonZero = true
		}
		n++
		i = j
	}
	runs[len(src)] = 0
	if !nonZero {
		return 0
	}
	return n
}

func growBytes(b []uint8, n int) []uint8 {
	if cap(b) < n {
		return make([]uint8, n)
	}
	return b[:n]
}

func growRuns(r []uint16, n int) []uint16 {
	if cap(r) < n {
		return make([]uint16, n)
	}
	return r[:n]
}

// clipBlitter drops the parts of every write that fall outside clip. The
// walker computes coverage from the true edge positions and relies on it
// when the path is not inside the clip.
type clipBlitter struct {
	Blitter
	clip  image.Rectangle
	alpha []uint8
	runs  []uint16
}

func (c *clipBlitter) reset(b Blitter, clip image.Rectangle) *clipBlitter {
	c.Blitter = b
	c.clip = clip
	return c
}

// RowsPreserved forwards the wrapped sink's request.
func (c *clipBlitter) RowsPreserved() int {
	if p, ok := c.Blitter.(RowPreserver); ok {
		return p.RowsPreserved()
	}
	return 1
}

func (c *clipBlitter) rowIn(y int) bool {
	return y >= c.clip.Min.Y && y < c.clip.Max.Y
}

func (c *clipBlitter) colIn(x int) bool {
	return x >= c.clip.Min.X && x < c.clip.Max.X
}

// rows clips [y, y+height) and returns the new top and height.
func (c *clipBlitter) rows(y, height int) (int, int) {
	top := max(y, c.clip.Min.Y)
	return top, min(y+height, c.clip.Max.Y) - top
}

func (c *clipBlitter) BlitH(x, y, width int) {
	if !c.rowIn(y) {
		return
	}
	left := max(x, c.clip.Min.X)
	if rite := min(x+width, c.clip.Max.X); left < rite {
		c.Blitter.BlitH(left, y, rite-left)
	}
}

func (c *clipBlitter) BlitAntiH(x, y int, alpha []uint8, runs []uint16) {
	if !c.rowIn(y) {
		return
	}
	n := 0
	for runs[n] != 0 {
		n += int(runs[n])
	}
	if x >= c.clip.Min.X && x+n <= c.clip.Max.X {
		c.Blitter.BlitAntiH(x, y, alpha, runs)
		return
	}

	left := max(x, c.clip.Min.X)
	rite := min(x+n, c.clip.Max.X)
	if left >= rite {
		return
	}
	c.alpha = growBytes(c.alpha, rite-left+1)
	c.runs = growRuns(c.runs, rite-left+1)
	for i := 0; runs[i] != 0; i += int(runs[i]) {
		from := max(x+i, left)
		to := min(x+i+int(runs[i]), rite)
		if from < to {
			c.alpha[from-left] = alpha[i]
			c.runs[from-left] = uint16(to - from)
		}
	}
	c.runs[rite-left] = 0
	c.Blitter.BlitAntiH(left, y, c.alpha, c.runs)
}

func (c *clipBlitter) BlitAntiH2(x, y int, a0, a1 uint8) {
	if !c.rowIn(y) {
		return
	}
	switch in0, in1 := c.colIn(x), c.colIn(x+1); {
	case in0 && in1:
		c.Blitter.BlitAntiH2(x, y, a0, a1)
	case in0:
		c.Blitter.BlitV(x, y, 1, a0)
	case in1:
		c.Blitter.BlitV(x+1, y, 1, a1)
	}
}

func (c *clipBlitter) BlitV(x, y, height int, alpha uint8) {
	if !c.colIn(x) {
		return
	}
	if y, height = c.rows(y, height); height > 0 {
		c.Blitter.BlitV(x, y, height, alpha)
	}
}

func (c *clipBlitter) BlitRect(x, y, width, height int) {
	r := image.Rect(x, y, x+width, y+height).Intersect(c.clip)
	if !r.Empty() {
		c.Blitter.BlitRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
}

func (c *clipBlitter) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	y, height = c.rows(y, height)
	if height <= 0 {
		return
	}
	if c.colIn(x) && c.colIn(x+1+width) {
		c.Blitter.BlitAntiRect(x, y, width, height, leftAlpha, rightAlpha)
		return
	}
	c.BlitV(x, y, height, leftAlpha)
	if width > 0 {
		c.BlitRect(x+1, y, width, height)
	}
	c.BlitV(x+1+width, y, height, rightAlpha)
}

func (c *clipBlitter) BlitMask(mask *image.Alpha, clip image.Rectangle) {
	if r := clip.Intersect(c.clip); !r.Empty() {
		c.Blitter.BlitMask(mask, r)
	}
}
