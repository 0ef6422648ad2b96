// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"github.com/gogpu/aafill/internal/fixed"
)

// Coverage accumulation.
//
// The walker emits each pixel row as a series of trapezoid strips whose
// partial coverages add up. An accumulator collects them and forwards
// finished rows to the sink. Writes that already cover a whole pixel row
// bypass the accumulator and go straight to realBlitter.

// accumulator collects additive coverage between the walker and the sink.
type accumulator interface {
	// realBlitter receives writes that need no accumulation.
	realBlitter() Blitter

	addAlpha(x, y int, alpha uint8)
	addAlphaSpan(x, y, width int, alpha uint8)
	addAlphas(x, y int, alphas []uint8)

	// flushIfYChanged flushes the current row when y and nextY fall in
	// different pixel rows.
	flushIfYChanged(y, nextY fixed.FDot16)

	// finish flushes whatever is pending.
	finish()
}

// MaskMaxWidth and MaskMaxArea bound the dense mask accumulator by
// default. Wider or larger shapes use the run accumulator.
const (
	MaskMaxWidth = 32
	MaskMaxArea  = 1024
)

// CanUseMask reports whether bounds fit a dense mask with the given
// limits. The area is computed with the row width rounded up to 4.
func CanUseMask(bounds image.Rectangle, maxWidth, maxArea int) bool {
	w := bounds.Dx()
	if w > maxWidth {
		return false
	}
	rb := int64((w + 3) &^ 3)
	return rb*int64(bounds.Dy()) <= int64(maxArea)
}

// RunAccumulator accumulates coverage one row at a time in run-length
// encoded form.
//
// Rows are kept in a ring of AlphaRuns so a sink that retains the slices
// of the last few BlitAntiH calls (see RowPreserver) sees them unchanged.
type RunAccumulator struct {
	sink Blitter

	left  int
	width int
	top   int
	currY int

	ring    []AlphaRuns
	current int
	runs    *AlphaRuns
	offsetX int
}

// Reset prepares the accumulator to cover bounds and write to sink.
// rows is the number of row buffers to rotate through; values below 1
// are treated as 1.
func (a *RunAccumulator) Reset(sink Blitter, bounds image.Rectangle, rows int) {
	a.sink = sink
	a.left = bounds.Min.X
	a.width = bounds.Dx()
	a.top = bounds.Min.Y
	a.currY = a.top - 1

	rows = max(rows, 1)
	if cap(a.ring) < rows {
		a.ring = make([]AlphaRuns, rows)
	}
	a.ring = a.ring[:rows]
	for i := range a.ring {
		a.ring[i].Resize(a.width)
	}
	a.current = 0
	a.runs = &a.ring[0]
	a.offsetX = 0
}

func (a *RunAccumulator) realBlitter() Blitter {
	return a.sink
}

func (a *RunAccumulator) advanceRuns() {
	a.current = (a.current + 1) % len(a.ring)
	a.runs = &a.ring[a.current]
	a.runs.Reset()
}

func (a *RunAccumulator) flush() {
	if a.currY < a.top {
		return
	}
	a.runs.snap()
	if !a.runs.IsEmpty() {
		a.sink.BlitAntiH(a.left, a.currY, a.runs.Alpha(), a.runs.Runs())
		a.advanceRuns()
		a.offsetX = 0
	}
	a.currY = a.top - 1
}

func (a *RunAccumulator) checkY(y int) {
	if y != a.currY {
		a.flush()
		a.currY = y
	}
}

func (a *RunAccumulator) addAlphas(x, y int, alphas []uint8) {
	a.checkY(y)
	x -= a.left
	n := len(alphas)
	if x < 0 {
		n += x
		alphas = alphas[-x:]
		x = 0
	}
	n = min(n, a.width-x)
	if n <= 0 {
		return
	}
	if x < a.offsetX {
		a.offsetX = 0
	}

	a.offsetX = a.runs.Add(x, 0, n, 0, 0, a.offsetX)
	a.runs.splitToSingles(x, n)
	dst := a.runs.Alpha()
	for i := range n {
		dst[x+i] = catchOverflow(uint16(dst[x+i]) + uint16(alphas[i]))
	}
}

func (a *RunAccumulator) addAlpha(x, y int, alpha uint8) {
	a.addAlphaSpan(x, y, 1, alpha)
}

// addAlphaSpan keeps the part of the span inside the accumulator's
// bounds.
func (a *RunAccumulator) addAlphaSpan(x, y, width int, alpha uint8) {
	a.checkY(y)
	x -= a.left
	if x < 0 {
		width += x
		x = 0
	}
	width = min(width, a.width-x)
	if width <= 0 {
		return
	}
	if x < a.offsetX {
		a.offsetX = 0
	}
	a.offsetX = a.runs.Add(x, 0, width, 0, alpha, a.offsetX)
}

func (a *RunAccumulator) flushIfYChanged(y, nextY fixed.FDot16) {
	if fixed.FloorToInt(y) != fixed.FloorToInt(nextY) {
		a.flush()
	}
}

func (a *RunAccumulator) finish() {
	a.flush()
}

// MaskAccumulator accumulates coverage for a small shape in a dense
// 8-bit mask covering its bounds, and blits the mask once at the end.
//
// It is also its own real blitter: rectangles found by the walker are
// written into the mask rather than sent to the sink.
type MaskAccumulator struct {
	sink   Blitter
	bounds image.Rectangle
	clip   image.Rectangle

	// storage has one spare byte before and after the mask, since edge
	// drift can address one pixel past either end.
	storage []uint8
	stride  int
}

// Reset prepares the mask for bounds. Coverage is delivered to sink
// restricted to clip.
func (m *MaskAccumulator) Reset(sink Blitter, bounds, clip image.Rectangle) {
	m.sink = sink
	m.bounds = bounds
	m.clip = bounds.Intersect(clip)
	m.stride = bounds.Dx()

	n := bounds.Dx()*bounds.Dy() + 2
	if cap(m.storage) < n {
		m.storage = make([]uint8, n)
	}
	m.storage = m.storage[:n]
	clear(m.storage)
}

// row returns a view of row y addressed by absolute x.
func (m *MaskAccumulator) row(y int) maskRow {
	return maskRow{
		pix:  m.storage,
		base: 1 + (y-m.bounds.Min.Y)*m.stride - m.bounds.Min.X,
	}
}

// maskRow addresses one mask row by device x. Writes that drift outside
// the storage are dropped.
type maskRow struct {
	pix  []uint8
	base int
}

func (r maskRow) add(x int, alpha uint8) {
	if i := r.base + x; i >= 0 && i < len(r.pix) {
		r.pix[i] = catchOverflow(uint16(r.pix[i]) + uint16(alpha))
	}
}

func (r maskRow) set(x int, alpha uint8) {
	if i := r.base + x; i >= 0 && i < len(r.pix) {
		r.pix[i] = alpha
	}
}

func (m *MaskAccumulator) realBlitter() Blitter {
	return m
}

func (m *MaskAccumulator) addAlpha(x, y int, alpha uint8) {
	m.row(y).add(x, alpha)
}

func (m *MaskAccumulator) addAlphaSpan(x, y, width int, alpha uint8) {
	r := m.row(y)
	for i := range width {
		r.add(x+i, alpha)
	}
}

func (m *MaskAccumulator) addAlphas(x, y int, alphas []uint8) {
	r := m.row(y)
	for i, a := range alphas {
		r.add(x+i, a)
	}
}

func (m *MaskAccumulator) flushIfYChanged(_, _ fixed.FDot16) {}

func (m *MaskAccumulator) finish() {
	if m.clip.Empty() {
		return
	}
	pix := m.storage[1 : len(m.storage)-1]
	for i, a := range pix {
		pix[i] = snapAlpha(a)
	}
	m.sink.BlitMask(&image.Alpha{Pix: pix, Stride: m.stride, Rect: m.bounds}, m.clip)
}

// Mask returns the accumulated coverage without flushing it.
func (m *MaskAccumulator) Mask() *image.Alpha {
	return &image.Alpha{Pix: m.storage[1 : len(m.storage)-1], Stride: m.stride, Rect: m.bounds}
}

// The Blitter methods below overwrite coverage instead of adding to it.

// BlitH sets width pixels to full coverage.
func (m *MaskAccumulator) BlitH(x, y, width int) {
	r := m.row(y)
	for i := range width {
		r.set(x+i, 0xFF)
	}
}

// BlitAntiH sets a run-encoded row.
func (m *MaskAccumulator) BlitAntiH(x, y int, alpha []uint8, runs []uint16) {
	r := m.row(y)
	for i := 0; i < len(runs) && runs[i] != 0; i += int(runs[i]) {
		for j := range int(runs[i]) {
			r.set(x+i+j, alpha[i])
		}
	}
}

// BlitAntiH2 sets two adjacent pixels.
func (m *MaskAccumulator) BlitAntiH2(x, y int, a0, a1 uint8) {
	r := m.row(y)
	r.set(x, a0)
	r.set(x+1, a1)
}

// BlitV sets a column.
func (m *MaskAccumulator) BlitV(x, y, height int, alpha uint8) {
	if alpha == 0 {
		return
	}
	for i := range height {
		m.row(y+i).set(x, alpha)
	}
}

// BlitRect sets a rectangle to full coverage.
func (m *MaskAccumulator) BlitRect(x, y, width, height int) {
	for i := range height {
		m.BlitH(x, y+i, width)
	}
}

// BlitAntiRect sets a rectangle with partial left and right columns.
func (m *MaskAccumulator) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	m.BlitV(x, y, height, leftAlpha)
	m.BlitV(x+1+width, y, height, rightAlpha)
	m.BlitRect(x+1, y, width, height)
}

// BlitMask copies coverage from mask within clip.
func (m *MaskAccumulator) BlitMask(mask *image.Alpha, clip image.Rectangle) {
	r := mask.Rect.Intersect(clip).Intersect(m.bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.row(y)
		for x := r.Min.X; x < r.Max.X; x++ {
			row.set(x, mask.AlphaAt(x, y).A)
		}
	}
}
