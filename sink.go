package aafill

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/aafill/internal/raster"
)

// Blitter receives coverage from the rasterizer. See raster.Blitter for
// the method contract.
type Blitter = raster.Blitter

// SpanBlitter is the smallest sink FillPath accepts: BlitH and BlitAntiH.
// The other Blitter methods are derived from them when missing.
type SpanBlitter = raster.SpanBlitter

// RowPreserver is implemented by sinks that keep the slices passed to
// BlitAntiH for a number of rows after the call.
type RowPreserver = raster.RowPreserver

// Complete returns s as a full Blitter.
func Complete(s SpanBlitter) Blitter {
	return raster.Complete(s)
}

// boundedSink is implemented by sinks with a fixed drawing area. FillPath
// uses it as the clip when none is given.
type boundedSink interface {
	Bounds() image.Rectangle
}

// MaskSink composites coverage into an 8-bit mask with source-over.
// Writes outside the mask are dropped.
type MaskSink struct {
	Mask *image.Alpha
}

// NewMaskSink returns a sink over a new transparent mask covering r.
func NewMaskSink(r image.Rectangle) *MaskSink {
	return &MaskSink{Mask: image.NewAlpha(r)}
}

// Bounds returns the mask bounds.
func (s *MaskSink) Bounds() image.Rectangle {
	return s.Mask.Rect
}

// At returns the coverage at (x, y).
func (s *MaskSink) At(x, y int) uint8 {
	return s.Mask.AlphaAt(x, y).A
}

// div255 divides by 255 with rounding.
func div255(v uint32) uint32 {
	v += 128
	return (v + v>>8) >> 8
}

func (s *MaskSink) span(x, y, width int, a uint8) {
	if a == 0 || y < s.Mask.Rect.Min.Y || y >= s.Mask.Rect.Max.Y {
		return
	}
	x0 := max(x, s.Mask.Rect.Min.X)
	x1 := min(x+width, s.Mask.Rect.Max.X)
	if x0 >= x1 {
		return
	}
	i := s.Mask.PixOffset(x0, y)
	row := s.Mask.Pix[i : i+x1-x0]
	if a == 0xFF {
		for j := range row {
			row[j] = 0xFF
		}
		return
	}
	inv := 255 - uint32(a)
	for j, d := range row {
		row[j] = uint8(uint32(a) + div255(uint32(d)*inv))
	}
}

// BlitH fills a span at full coverage.
func (s *MaskSink) BlitH(x, y, width int) {
	s.span(x, y, width, 0xFF)
}

// BlitAntiH composites a run-encoded row.
func (s *MaskSink) BlitAntiH(x, y int, alpha []uint8, runs []uint16) {
	for i := 0; runs[i] != 0; i += int(runs[i]) {
		s.span(x+i, y, int(runs[i]), alpha[i])
	}
}

// BlitAntiH2 composites two adjacent pixels.
func (s *MaskSink) BlitAntiH2(x, y int, a0, a1 uint8) {
	s.span(x, y, 1, a0)
	s.span(x+1, y, 1, a1)
}

// BlitV composites a column.
func (s *MaskSink) BlitV(x, y, height int, alpha uint8) {
	for i := range height {
		s.span(x, y+i, 1, alpha)
	}
}

// BlitRect fills a rectangle at full coverage.
func (s *MaskSink) BlitRect(x, y, width, height int) {
	for i := range height {
		s.span(x, y+i, width, 0xFF)
	}
}

// BlitAntiRect fills a rectangle with partial first and last columns.
func (s *MaskSink) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	for i := range height {
		s.span(x, y+i, 1, leftAlpha)
		s.span(x+1, y+i, width, 0xFF)
		s.span(x+1+width, y+i, 1, rightAlpha)
	}
}

// BlitMask composites mask restricted to clip.
func (s *MaskSink) BlitMask(mask *image.Alpha, clip image.Rectangle) {
	r := mask.Rect.Intersect(clip).Intersect(s.Mask.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.span(x, y, 1, mask.AlphaAt(x, y).A)
		}
	}
}

// ColorSink paints coverage in a solid color onto any draw.Image with the
// Over operator. Methods it lacks are derived by Complete.
type ColorSink struct {
	dst draw.Image
	src *image.Uniform
	cov image.Uniform
}

// NewColorSink returns a sink painting c onto dst.
func NewColorSink(dst draw.Image, c color.Color) *ColorSink {
	return &ColorSink{dst: dst, src: image.NewUniform(c)}
}

// Bounds returns the destination bounds.
func (s *ColorSink) Bounds() image.Rectangle {
	return s.dst.Bounds()
}

// BlitH paints a span at full coverage.
func (s *ColorSink) BlitH(x, y, width int) {
	r := image.Rect(x, y, x+width, y+1)
	draw.Draw(s.dst, r, s.src, r.Min, draw.Over)
}

// BlitAntiH paints a run-encoded row.
func (s *ColorSink) BlitAntiH(x, y int, alpha []uint8, runs []uint16) {
	for i := 0; runs[i] != 0; i += int(runs[i]) {
		a := alpha[i]
		if a == 0 {
			continue
		}
		r := image.Rect(x+i, y, x+i+int(runs[i]), y+1)
		if a == 0xFF {
			draw.Draw(s.dst, r, s.src, r.Min, draw.Over)
			continue
		}
		s.cov.C = color.Alpha{A: a}
		draw.DrawMask(s.dst, r, s.src, r.Min, &s.cov, image.Point{}, draw.Over)
	}
}

// BlitMask paints through mask restricted to clip.
func (s *ColorSink) BlitMask(mask *image.Alpha, clip image.Rectangle) {
	r := mask.Rect.Intersect(clip)
	draw.DrawMask(s.dst, r, s.src, r.Min, mask, r.Min, draw.Over)
}
