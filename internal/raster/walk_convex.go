// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/aafill/internal/fixed"

// X positions are snapped to 1/16 pixel before coverage is computed, which
// removes slivers caused by fixed-point noise between neighbouring rows.
const (
	snapDigit = fixed.One >> 4
	snapHalf  = snapDigit >> 1
	snapMask  = ^(snapDigit - 1)
)

// walker drives the convex scan: it pairs the two active edges, splits
// the area between them into trapezoids at every edge endpoint and every
// pixel row, and hands each trapezoid row to the accumulator.
type walker struct {
	list *EdgeList
	acc  accumulator
	mask *MaskAccumulator // set when acc is the dense mask

	alphas []uint8
	temp   []uint8
	runs   []uint16
}

func (w *walker) reset(list *EdgeList, acc accumulator, mask *MaskAccumulator) {
	w.list = list
	w.acc = acc
	w.mask = mask
}

func (w *walker) maskRow(y int) maskRow {
	if w.mask == nil {
		return maskRow{}
	}
	return w.mask.row(y)
}

// walkConvex fills the region between the first two edges of the list
// and their successors, for pixel rows above stopY. X is clamped to
// [leftBound, riteBound], the path's bounds; clipping happens downstream.
func (w *walker) walkConvex(stopY int, leftBound, riteBound fixed.FDot16) {
	l := w.list
	leftE := l.Edge(l.First())
	riteE := l.Edge(leftE.next)
	currE := l.Edge(riteE.next)

	stop := fixed.FromInt(stopY)
	y := max(leftE.UpperY, riteE.UpperY)

	for {
		// Check LowerY first: precision loss can leave one side without a
		// partner for a row, and a smooth jump may skip several short
		// segments at once.
		for leftE.LowerY <= y {
			if !leftE.Advance() {
				if fixed.FloorToInt(currE.UpperY) >= stopY {
					return
				}
				leftE = currE
				currE = l.Edge(currE.next)
			}
		}
		for riteE.LowerY <= y {
			if !riteE.Advance() {
				if fixed.FloorToInt(currE.UpperY) >= stopY {
					return
				}
				riteE = currE
				currE = l.Edge(currE.next)
			}
		}

		if fixed.FloorToInt(y) >= stopY {
			return
		}

		leftE.GoY(y)
		riteE.GoY(y)
		if leftE.X > riteE.X || (leftE.X == riteE.X && leftE.DX > riteE.DX) {
			leftE, riteE = riteE, leftE
		}

		localBot := min(leftE.LowerY, riteE.LowerY)
		if w.isSmoothEnough(leftE, riteE, currE, stopY) {
			localBot = fixed.CeilToFixed(localBot)
		}
		localBot = min(localBot, stop)

		left := max(leftBound, leftE.X)
		dLeft := leftE.DX
		rite := min(riteBound, riteE.X)
		dRite := riteE.DX

		if dLeft|dRite == 0 {
			w.blitRect(y, localBot, left, rite)
			y = localBot
		} else {
			y, left, rite = w.blitTrapezoids(y, localBot, left, rite, dLeft, dRite,
				leftE.DY, riteE.DY, leftBound, riteBound)
		}

		leftE.X = left
		riteE.X = rite
		leftE.Y = y
		riteE.Y = y
	}
}

// blitRect covers the axis-aligned box [left, rite] x [y, bot). Partial
// top and bottom rows are accumulated; the full-height middle goes to the
// real blitter as one anti-aliased rectangle.
func (w *walker) blitRect(y, bot, left, rite fixed.FDot16) {
	acc := w.acc
	fullLeft := fixed.CeilToInt(left)
	fullRite := fixed.FloorToInt(rite)
	partialLeft := fixed.FromInt(fullLeft) - left
	partialRite := rite - fixed.FromInt(fullRite)
	fullTop := fixed.CeilToInt(y)
	fullBot := fixed.FloorToInt(bot)
	partialTop := fixed.FromInt(fullTop) - y
	partialBot := bot - fixed.FromInt(fullBot)
	if fullTop > fullBot {
		// Less than one pixel high.
		partialTop -= fixed.One - partialBot
		partialBot = 0
	}

	if fullRite < fullLeft {
		// Left and right fall within the same pixel column.
		width := rite - left
		if partialTop > 0 {
			acc.addAlphaSpan(fullLeft-1, fullTop-1, 1, f2a(fixed.Mul(partialTop, width)))
			acc.flushIfYChanged(y, y+partialTop)
		}
		if fullBot > fullTop {
			acc.realBlitter().BlitV(fullLeft-1, fullTop, fullBot-fullTop, f2a(width))
		}
		if partialBot > 0 {
			acc.addAlphaSpan(fullLeft-1, fullBot, 1, f2a(fixed.Mul(partialBot, width)))
		}
		return
	}

	if partialTop > 0 {
		w.rectRow(fullTop-1, fullLeft, fullRite, partialTop, partialLeft, partialRite)
		acc.flushIfYChanged(y, y+partialTop)
	}
	if fullBot > fullTop && (fullRite > fullLeft || f2a(partialLeft) > 0 || f2a(partialRite) > 0) {
		acc.realBlitter().BlitAntiRect(fullLeft-1, fullTop, fullRite-fullLeft, fullBot-fullTop,
			f2a(partialLeft), f2a(partialRite))
	}
	if partialBot > 0 {
		w.rectRow(fullBot, fullLeft, fullRite, partialBot, partialLeft, partialRite)
	}
}

// rectRow accumulates one partially covered row of a rectangle.
func (w *walker) rectRow(y, fullLeft, fullRite int, height, partialLeft, partialRite fixed.FDot16) {
	if partialLeft > 0 {
		w.acc.addAlpha(fullLeft-1, y, f2a(fixed.Mul(height, partialLeft)))
	}
	w.acc.addAlphaSpan(fullLeft, y, fullRite-fullLeft, f2a(height))
	if partialRite > 0 {
		w.acc.addAlpha(fullRite, y, f2a(fixed.Mul(height, partialRite)))
	}
}

// blitTrapezoids covers [y, bot) between two slanted edges one pixel row
// at a time: a partial top row, whole rows, then a partial bottom row. It
// returns the new y and the edges' x there.
func (w *walker) blitTrapezoids(y, bot, left, rite, dLeft, dRite, lDY, rDY, leftBound, riteBound fixed.FDot16) (fixed.FDot16, fixed.FDot16, fixed.FDot16) {
	left += snapHalf
	rite += snapHalf
	lo, hi := leftBound+snapHalf, riteBound+snapHalf

	count := fixed.CeilToInt(bot) - fixed.FloorToInt(y)
	row := w.maskRow(int(y >> 16))

	if count > 1 {
		if fixed.FloorToFixed(y) != y {
			count--
			nextY := fixed.CeilToFixed(y + 1)
			dY := nextY - y
			nextLeft := left + fixed.Mul(dLeft, dY)
			nextRite := rite + fixed.Mul(dRite, dY)
			w.trapezoidRow(int(y>>16), corner(left, lo, hi), corner(rite, lo, hi),
				corner(nextLeft, lo, hi), corner(nextRite, lo, hi), lDY, rDY, partialAlpha(0xFF, dY), row)
			w.acc.flushIfYChanged(y, nextY)
			left, rite, y = nextLeft, nextRite, nextY
		}

		for count > 1 {
			count--
			row = w.maskRow(int(y >> 16))
			nextY := y + fixed.One
			nextLeft := left + dLeft
			nextRite := rite + dRite
			w.trapezoidRow(int(y>>16), corner(left, lo, hi), corner(rite, lo, hi),
				corner(nextLeft, lo, hi), corner(nextRite, lo, hi), lDY, rDY, 0xFF, row)
			w.acc.flushIfYChanged(y, nextY)
			left, rite, y = nextLeft, nextRite, nextY
		}
	}

	row = w.maskRow(int(y >> 16))
	dY := bot - y
	// A smooth jump to an integer row may overshoot the bounds; pull the
	// end points back in. snapHalf is removed again below.
	nextLeft := max(left+fixed.Mul(dLeft, dY), lo)
	nextRite := min(rite+fixed.Mul(dRite, dY), hi)
	w.trapezoidRow(int(y>>16), corner(left, lo, hi), corner(rite, lo, hi),
		corner(nextLeft, lo, hi), corner(nextRite, lo, hi), lDY, rDY, partialAlpha(0xFF, dY), row)
	w.acc.flushIfYChanged(y, bot)

	return bot, nextLeft - snapHalf, nextRite - snapHalf
}

// corner snaps a trapezoid corner to 1/16 pixel and keeps it within
// [lo, hi], which edge drift may leave by a fraction of a pixel.
func corner(x, lo, hi fixed.FDot16) fixed.FDot16 {
	return min(max(x, lo), hi) & snapMask
}

// isSmoothEnough reports whether the walker may jump from the current
// fractional y straight to the next whole row. That is allowed when the
// edge about to end is followed by one whose slope barely differs, or is
// a curve whose differences are small against its current step.
func (w *walker) isSmoothEnough(leftE, riteE, currE *Edge, stopY int) bool {
	stop := fixed.FromInt(stopY)
	if currE.UpperY >= stop {
		return false
	}
	if leftE.LowerY+fixed.One < riteE.LowerY {
		return leftE.smoothInto(currE)
	}
	if leftE.LowerY > riteE.LowerY+fixed.One {
		return riteE.smoothInto(currE)
	}

	// Both edges end together; the next two edges replace them.
	nextE := w.list.Edge(currE.next)
	if nextE.UpperY >= stop {
		return false
	}
	if nextE.UpperX < currE.UpperX {
		currE, nextE = nextE, currE
	}
	return leftE.smoothInto(currE) && riteE.smoothInto(nextE)
}

// smoothInto reports whether e changes direction slowly enough to skip
// fractional rows. For a curve the test is on its own forward
// differences; for a line it is on the slope of next, its successor.
func (e *Edge) smoothInto(next *Edge) bool {
	switch {
	case e.curveCount < 0:
		dd := e.curveShift
		return fixed.Abs(e.cdx)>>1 >= fixed.Abs(e.cddx)>>dd &&
			fixed.Abs(e.cdy)>>1 >= fixed.Abs(e.cddy)>>dd &&
			(e.cdy-(e.cddy>>dd))>>e.dshift >= fixed.One
	case e.curveCount > 0:
		return fixed.Abs(e.cdx)>>1 >= fixed.Abs(e.cddx) &&
			fixed.Abs(e.cdy)>>1 >= fixed.Abs(e.cddy) &&
			(e.cdy-e.cddy)>>e.curveShift >= fixed.One
	}
	return fixed.Abs(next.DX-e.DX) <= fixed.One &&
		next.LowerY-next.UpperY >= fixed.One
}
