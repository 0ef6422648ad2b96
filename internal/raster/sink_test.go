// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// blitCall records one Blitter call.
type blitCall struct {
	Op         string
	X, Y, W, H int
	A0, A1     uint8
	Alpha      []uint8
	Runs       []uint16
	MaskBounds image.Rectangle
	MaskPixels []uint8
	ClipBounds image.Rectangle
}

// gridSink writes coverage into an image, overwriting what is there.
// Pixels outside the image and zero coverage are ignored. Every call is
// recorded.
type gridSink struct {
	img   *image.Alpha
	calls []blitCall
}

func newGridSink(w, h int) *gridSink {
	return &gridSink{img: image.NewAlpha(image.Rect(0, 0, w, h))}
}

func (s *gridSink) set(x, y int, a uint8) {
	if a == 0 || !(image.Point{x, y}).In(s.img.Rect) {
		return
	}
	s.img.Pix[s.img.PixOffset(x, y)] = a
}

func (s *gridSink) at(x, y int) uint8 {
	if !(image.Point{x, y}).In(s.img.Rect) {
		return 0
	}
	return s.img.Pix[s.img.PixOffset(x, y)]
}

func (s *gridSink) BlitH(x, y, width int) {
	s.calls = append(s.calls, blitCall{Op: "H", X: x, Y: y, W: width})
	for i := range width {
		s.set(x+i, y, 0xFF)
	}
}

func (s *gridSink) BlitAntiH(x, y int, alpha []uint8, runs []uint16) {
	c := blitCall{Op: "AntiH", X: x, Y: y}
	for i := 0; runs[i] != 0; i += int(runs[i]) {
		c.Alpha = append(c.Alpha, alpha[i])
		c.Runs = append(c.Runs, runs[i])
		for j := range int(runs[i]) {
			s.set(x+i+j, y, alpha[i])
		}
	}
	s.calls = append(s.calls, c)
}

func (s *gridSink) BlitAntiH2(x, y int, a0, a1 uint8) {
	s.calls = append(s.calls, blitCall{Op: "AntiH2", X: x, Y: y, A0: a0, A1: a1})
	s.set(x, y, a0)
	s.set(x+1, y, a1)
}

func (s *gridSink) BlitV(x, y, height int, alpha uint8) {
	s.calls = append(s.calls, blitCall{Op: "V", X: x, Y: y, H: height, A0: alpha})
	for i := range height {
		s.set(x, y+i, alpha)
	}
}

func (s *gridSink) BlitRect(x, y, width, height int) {
	s.calls = append(s.calls, blitCall{Op: "Rect", X: x, Y: y, W: width, H: height})
	for j := range height {
		for i := range width {
			s.set(x+i, y+j, 0xFF)
		}
	}
}

func (s *gridSink) BlitAntiRect(x, y, width, height int, leftAlpha, rightAlpha uint8) {
	s.calls = append(s.calls, blitCall{Op: "AntiRect", X: x, Y: y, W: width, H: height, A0: leftAlpha, A1: rightAlpha})
	for j := range height {
		s.set(x, y+j, leftAlpha)
		for i := range width {
			s.set(x+1+i, y+j, 0xFF)
		}
		s.set(x+1+width, y+j, rightAlpha)
	}
}

func (s *gridSink) BlitMask(mask *image.Alpha, clip image.Rectangle) {
	s.calls = append(s.calls, blitCall{
		Op:         "Mask",
		MaskBounds: mask.Rect,
		MaskPixels: append([]uint8(nil), mask.Pix...),
		ClipBounds: clip,
	})
	r := mask.Rect.Intersect(clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.set(x, y, mask.AlphaAt(x, y).A)
		}
	}
}

// total returns the summed coverage in pixels.
func (s *gridSink) total() float64 {
	var sum int
	for _, a := range s.img.Pix {
		sum += int(a)
	}
	return float64(sum) / 255
}

// extent returns the pixels a recorded call writes to.
func (c blitCall) extent() image.Rectangle {
	switch c.Op {
	case "H":
		return image.Rect(c.X, c.Y, c.X+c.W, c.Y+1)
	case "AntiH":
		n := 0
		for _, r := range c.Runs {
			n += int(r)
		}
		return image.Rect(c.X, c.Y, c.X+n, c.Y+1)
	case "AntiH2":
		return image.Rect(c.X, c.Y, c.X+2, c.Y+1)
	case "V":
		return image.Rect(c.X, c.Y, c.X+1, c.Y+c.H)
	case "Rect":
		return image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
	case "AntiRect":
		return image.Rect(c.X, c.Y, c.X+c.W+2, c.Y+c.H)
	case "Mask":
		return c.MaskBounds.Intersect(c.ClipBounds)
	}
	return image.Rectangle{}
}
