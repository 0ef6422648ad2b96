// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/aafill/internal/fixed"

// Exact trapezoid coverage.
//
// Between two scan lines the shape is a trapezoid bounded by the left and
// right edge. Rather than intersecting it with every pixel square, the
// covered area of a pixel is computed as the full pixel minus the parts
// cut off by each edge; those parts are triangles or trapezoids whose
// area has a closed form. Coverage is 8-bit, so the formulas below drop
// low bits wherever that keeps the arithmetic in 32 bits.

// trapezoidToAlpha returns the coverage of a one-pixel-high trapezoid
// with parallel sides l1 and l2.
func trapezoidToAlpha(l1, l2 fixed.FDot16) uint8 {
	return uint8((l1 + l2) >> 9)
}

// partialTriangleToAlpha16 returns the area of the right triangle with
// legs a and a*b in 16-bit alpha.
func partialTriangleToAlpha16(a, b fixed.FDot16) int32 {
	return (a >> 11) * (a >> 11) * (b >> 11)
}

func partialTriangleToAlpha(a, b fixed.FDot16) uint8 {
	return uint8(partialTriangleToAlpha16(a, b) >> 8)
}

// partialAlpha scales alpha by a fractional row height.
func partialAlpha(alpha uint8, height fixed.FDot16) uint8 {
	return uint8(fixed.RoundToInt(int32(alpha) * height))
}

// scaleAlpha scales alpha by fullAlpha/256.
func scaleAlpha(alpha, fullAlpha uint8) uint8 {
	return uint8((uint16(alpha) * uint16(fullAlpha)) >> 8)
}

// f2a converts a fraction in [0, 1] to alpha. A plain shift would turn
// 1.0 into 256.
func f2a(f fixed.FDot16) uint8 {
	return partialAlpha(0xFF, f)
}

// approximateIntersection coarsely estimates where (l1,y)-(r1,y+1) crosses
// (l2,y)-(r2,y+1).
func approximateIntersection(l1, r1, l2, r2 fixed.FDot16) fixed.FDot16 {
	if l1 > r1 {
		l1, r1 = r1, l1
	}
	if l2 > r2 {
		l2, r2 = r2, l2
	}
	return (max(l1, l2) + min(r1, r2)) >> 1
}

// computeAlphaAboveLine writes, for the pixels spanned by a right edge
// going from l at the top to r at the bottom (0 <= l < 1), the coverage
// lying above and to the right of the edge, to be subtracted from the
// row.
func computeAlphaAboveLine(alphas []uint8, l, r, dY fixed.FDot16, fullAlpha uint8) {
	n := fixed.CeilToInt(r)
	switch n {
	case 0:
		return
	case 1:
		alphas[0] = scaleAlpha(uint8(((int32(n)<<17)-l-r)>>9), fullAlpha)
		return
	}

	first := fixed.One - l
	last := r - fixed.FromInt(n-1)
	firstH := fixed.Mul(first, dY)
	alphas[0] = uint8(fixed.Mul(first, firstH) >> 9)
	alpha16 := firstH + (dY >> 1)
	for i := 1; i < n-1; i++ {
		alphas[i] = uint8(alpha16 >> 8)
		alpha16 += dY
	}
	alphas[n-1] = fullAlpha - partialTriangleToAlpha(last, dY)
}

// computeAlphaBelowLine is the mirror of computeAlphaAboveLine for a left
// edge: it writes the coverage lying below and to the left of the edge.
func computeAlphaBelowLine(alphas []uint8, l, r, dY fixed.FDot16, fullAlpha uint8) {
	n := fixed.CeilToInt(r)
	switch n {
	case 0:
		return
	case 1:
		alphas[0] = scaleAlpha(trapezoidToAlpha(l, r), fullAlpha)
		return
	}

	first := fixed.One - l
	last := r - fixed.FromInt(n-1)
	lastH := fixed.Mul(last, dY)
	alphas[n-1] = uint8(fixed.Mul(last, lastH) >> 9)
	alpha16 := lastH + (dY >> 1)
	for i := n - 2; i > 0; i-- {
		alphas[i] = uint8(alpha16 >> 8)
		alpha16 += dY
	}
	alphas[0] = fullAlpha - partialTriangleToAlpha(first, dY)
}

// subSat returns a-b, or 0 when b exceeds a.
func subSat(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return 0
}

// singleAlpha writes one pixel. With fullAlpha below 255 the row is only
// partly covered and the value is scaled and accumulated.
func (w *walker) singleAlpha(y, x int, alpha, fullAlpha uint8, row maskRow) {
	switch {
	case w.mask != nil && fullAlpha == 0xFF:
		row.set(x, alpha)
	case w.mask != nil:
		row.add(x, scaleAlpha(alpha, fullAlpha))
	case fullAlpha == 0xFF:
		w.acc.realBlitter().BlitV(x, y, 1, alpha)
	default:
		w.acc.addAlpha(x, y, scaleAlpha(alpha, fullAlpha))
	}
}

func (w *walker) twoAlphas(y, x int, a1, a2, fullAlpha uint8, row maskRow) {
	switch {
	case w.mask != nil:
		row.add(x, a1)
		row.add(x+1, a2)
	case fullAlpha == 0xFF:
		w.acc.realBlitter().BlitAntiH2(x, y, a1, a2)
	default:
		w.acc.addAlpha(x, y, a1)
		w.acc.addAlpha(x+1, y, a2)
	}
}

func (w *walker) fullSpan(y, x, n int, fullAlpha uint8, row maskRow) {
	switch {
	case w.mask != nil:
		for i := range n {
			row.add(x+i, fullAlpha)
		}
	case fullAlpha == 0xFF:
		w.acc.realBlitter().BlitH(x, y, n)
	default:
		w.acc.addAlphaSpan(x, y, n, fullAlpha)
	}
}

// scratch returns zeroed-length buffers for a row of n pixels.
func (w *walker) scratch(n int) (alphas, temp []uint8, runs []uint16) {
	if cap(w.alphas) < n+1 {
		w.alphas = make([]uint8, n+1)
		w.temp = make([]uint8, n+1)
		w.runs = make([]uint16, n+1)
	}
	return w.alphas[:n+1], w.temp[:n+1], w.runs[:n+1]
}

// aaaTrapezoidRow covers one row of a trapezoid whose sides may both span
// several pixels. ul/ur are the top-left/top-right x, ll/lr the bottom
// ones; lDY and rDY are the edges' |dy/dx|.
func (w *walker) aaaTrapezoidRow(y int, ul, ur, ll, lr, lDY, rDY fixed.FDot16, fullAlpha uint8, row maskRow) {
	L := fixed.FloorToInt(ul)
	R := fixed.CeilToInt(lr)
	n := R - L
	if n == 1 {
		w.singleAlpha(y, L, trapezoidToAlpha(ur-ul, lr-ll), fullAlpha, row)
		return
	}

	alphas, temp, runs := w.scratch(n)
	for i := range n {
		runs[i] = 1
		alphas[i] = fullAlpha
	}
	runs[n] = 0

	uL := fixed.FloorToInt(ul)
	lL := fixed.CeilToInt(ll)
	if uL+2 == lL {
		// Two triangles are all that is cut off.
		first := fixed.FromInt(uL) + fixed.One - ul
		second := ll - ul - first
		a1 := fullAlpha - partialTriangleToAlpha(first, lDY)
		a2 := partialTriangleToAlpha(second, lDY)
		alphas[0] = subSat(alphas[0], a1)
		alphas[1] = subSat(alphas[1], a2)
	} else {
		computeAlphaBelowLine(temp[uL-L:], ul-fixed.FromInt(uL), ll-fixed.FromInt(uL), lDY, fullAlpha)
		for i := uL; i < lL; i++ {
			alphas[i-L] = subSat(alphas[i-L], temp[i-L])
		}
	}

	uR := fixed.FloorToInt(ur)
	lR := fixed.CeilToInt(lr)
	if uR+2 == lR {
		first := fixed.FromInt(uR) + fixed.One - ur
		second := lr - ur - first
		a1 := partialTriangleToAlpha(first, rDY)
		a2 := fullAlpha - partialTriangleToAlpha(second, rDY)
		alphas[n-2] = subSat(alphas[n-2], a1)
		alphas[n-1] = subSat(alphas[n-1], a2)
	} else {
		computeAlphaAboveLine(temp[uR-L:], ur-fixed.FromInt(uR), lr-fixed.FromInt(uR), rDY, fullAlpha)
		for i := uR; i < lR; i++ {
			alphas[i-L] = subSat(alphas[i-L], temp[i-L])
		}
	}

	switch {
	case w.mask != nil:
		for i := range n {
			row.add(L+i, alphas[i])
		}
	case fullAlpha == 0xFF:
		w.acc.realBlitter().BlitAntiH(L, y, alphas, runs)
	default:
		w.acc.addAlphas(L, y, alphas[:n])
	}
}

// trapezoidRow covers one pixel row (or the fraction of it given by
// fullAlpha) of the trapezoid with top corners ul, ur and bottom corners
// ll, lr. Columns entirely inside both edges are emitted as a solid span.
func (w *walker) trapezoidRow(y int, ul, ur, ll, lr, lDY, rDY fixed.FDot16, fullAlpha uint8, row maskRow) {
	if ul > ur {
		return
	}
	// Crossing edges can only come from precision loss; a coarse meeting
	// point is good enough.
	if ll > lr {
		ll = approximateIntersection(ul, ll, ur, lr)
		lr = ll
	}
	if ul == ur && ll == lr {
		return
	}

	// Only the span each side covers matters, not its direction.
	if ul > ll {
		ul, ll = ll, ul
	}
	if ur > lr {
		ur, lr = lr, ur
	}

	joinLeft := fixed.CeilToFixed(ll)
	joinRite := fixed.FloorToFixed(ur)
	if joinLeft > joinRite {
		w.aaaTrapezoidRow(y, ul, ur, ll, lr, lDY, rDY, fullAlpha, row)
		return
	}

	// Left side, then the solid middle, then the right side: sinks may
	// require spans in increasing x.
	if ul < joinLeft {
		switch fixed.CeilToInt(joinLeft - ul) {
		case 1:
			w.singleAlpha(y, int(ul>>16), trapezoidToAlpha(joinLeft-ul, joinLeft-ll), fullAlpha, row)
		case 2:
			first := joinLeft - fixed.One - ul
			second := ll - ul - first
			a1 := partialTriangleToAlpha(first, lDY)
			a2 := fullAlpha - partialTriangleToAlpha(second, lDY)
			w.twoAlphas(y, int(ul>>16), a1, a2, fullAlpha, row)
		default:
			w.aaaTrapezoidRow(y, ul, joinLeft, ll, joinLeft, lDY, fixed.Max, fullAlpha, row)
		}
	}
	if joinLeft < joinRite {
		w.fullSpan(y, fixed.FloorToInt(joinLeft), fixed.FloorToInt(joinRite-joinLeft), fullAlpha, row)
	}
	if lr > joinRite {
		switch fixed.CeilToInt(lr - joinRite) {
		case 1:
			w.singleAlpha(y, int(joinRite>>16), trapezoidToAlpha(ur-joinRite, lr-joinRite), fullAlpha, row)
		case 2:
			first := joinRite + fixed.One - ur
			second := lr - ur - first
			a1 := fullAlpha - partialTriangleToAlpha(first, rDY)
			a2 := partialTriangleToAlpha(second, rDY)
			w.twoAlphas(y, int(joinRite>>16), a1, a2, fullAlpha, row)
		default:
			w.aaaTrapezoidRow(y, joinRite, ur, joinRite, lr, fixed.Max, rDY, fullAlpha, row)
		}
	}
}
