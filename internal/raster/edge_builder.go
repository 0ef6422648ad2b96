// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"iter"
)

// Verb is a path drawing command.
type Verb uint8

// Path verbs. The number of points that accompany each verb is given by
// Verb.Points.
const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// Points returns how many points follow the verb.
func (v Verb) Points() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// PathSource yields a path in device space. The point slice is only valid
// during the yield call.
type PathSource interface {
	Segments() iter.Seq2[Verb, []Point]
}

// EdgeBuilder converts a path into Y-monotonic edges.
//
// Curves are chopped at their Y extrema, every piece is optionally clipped
// to a vertical range, and the survivors are turned into Edges. Pieces
// that collapse to zero height are dropped. Coincident vertical lines are
// merged as they are added.
//
// Usage:
//
//	var eb EdgeBuilder
//	n := eb.Build(path, nil)
//	edges := eb.Edges()
//
// The builder keeps its storage between calls.
type EdgeBuilder struct {
	edges []Edge

	clip    bool
	clipTop float32
	clipBot float32

	lines, quads, cubics int
}

// Reset clears the builder for reuse without releasing memory.
func (eb *EdgeBuilder) Reset() {
	eb.edges = eb.edges[:0]
	eb.clip = false
	eb.lines, eb.quads, eb.cubics = 0, 0, 0
}

// Build adds the edges of src and returns how many were produced. When
// clip is non-nil, edges are restricted to its vertical extent. Open
// contours are closed implicitly.
func (eb *EdgeBuilder) Build(src PathSource, clip *image.Rectangle) int {
	eb.Reset()
	if clip != nil {
		eb.clip = true
		eb.clipTop = float32(clip.Min.Y)
		eb.clipBot = float32(clip.Max.Y)
	}

	var cur, start Point
	open := false
	for verb, pts := range src.Segments() {
		switch verb {
		case VerbMove:
			if open {
				eb.addLine(cur, start)
			}
			cur, start = pts[0], pts[0]
			open = true
		case VerbLine:
			eb.addLine(cur, pts[0])
			cur = pts[0]
		case VerbQuad:
			eb.addQuad([3]Point{cur, pts[0], pts[1]})
			cur = pts[1]
		case VerbCubic:
			eb.addCubic([4]Point{cur, pts[0], pts[1], pts[2]})
			cur = pts[2]
		case VerbClose:
			eb.addLine(cur, start)
			cur = start
		}
	}
	if open {
		eb.addLine(cur, start)
	}
	return len(eb.edges)
}

// Edges returns the edges produced by the last Build. The slice is reused
// by the next Build.
func (eb *EdgeBuilder) Edges() []Edge {
	return eb.edges
}

// Counts returns how many line, quadratic and cubic edges were produced.
func (eb *EdgeBuilder) Counts() (lines, quads, cubics int) {
	return eb.lines, eb.quads, eb.cubics
}

func (eb *EdgeBuilder) addLine(p0, p1 Point) {
	if p0 == p1 {
		return
	}
	if eb.clip {
		clipped, ok := clipMonoY([]Point{p0, p1}, eb.clipTop, eb.clipBot)
		if !ok {
			return
		}
		p0, p1 = clipped[0], clipped[1]
	}

	var e Edge
	if !e.SetLine(p0, p1) {
		return
	}
	if e.isVerticalLine() && len(eb.edges) > 0 {
		switch combineVertical(&e, &eb.edges[len(eb.edges)-1]) {
		case combineTotal:
			eb.edges = eb.edges[:len(eb.edges)-1]
			eb.lines--
			return
		case combinePartial:
			return
		}
	}
	eb.push(e)
}

func (eb *EdgeBuilder) addQuad(src [3]Point) {
	var dst [5]Point
	n := chopQuadAtYExtrema(src, &dst)
	for i := 0; i <= n; i++ {
		pts := [3]Point{dst[i*2], dst[i*2+1], dst[i*2+2]}
		if eb.clip {
			clipped, ok := clipMonoY(pts[:], eb.clipTop, eb.clipBot)
			if !ok {
				continue
			}
			pts = [3]Point{clipped[0], clipped[1], clipped[2]}
		}
		var e Edge
		if e.SetQuadratic(pts) {
			eb.push(e)
		}
	}
}

func (eb *EdgeBuilder) addCubic(src [4]Point) {
	var dst [10]Point
	n := chopCubicAtYExtrema(src, &dst)
	for i := 0; i <= n; i++ {
		pts := [4]Point{dst[i*3], dst[i*3+1], dst[i*3+2], dst[i*3+3]}
		if eb.clip {
			clipped, ok := clipMonoY(pts[:], eb.clipTop, eb.clipBot)
			if !ok {
				continue
			}
			pts = clipped
		}
		var e Edge
		if e.SetCubic(pts) {
			eb.push(e)
		}
	}
}

func (eb *EdgeBuilder) push(e Edge) {
	switch e.Kind {
	case KindLine:
		eb.lines++
	case KindQuadratic:
		eb.quads++
	case KindCubic:
		eb.cubics++
	}
	eb.edges = append(eb.edges, e)
}

// combineResult is the outcome of merging a vertical edge into its
// predecessor.
type combineResult int

const (
	combineNo      combineResult = iota // keep both edges
	combinePartial                      // last was extended or trimmed; drop edge
	combineTotal                        // the two cancel; drop both
)

// nearlyEqualY reports whether two snapped Y values are within 1/256 px.
func nearlyEqualY(a, b int32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0x100
}

// combineVertical merges edge into last when both are vertical lines at
// the same X. Same-winding neighbours are joined; opposite-winding ones
// cancel over their overlap.
func combineVertical(edge, last *Edge) combineResult {
	if last.curveCount != 0 || last.DX != 0 || edge.X != last.X {
		return combineNo
	}

	if edge.Winding == last.Winding {
		if edge.LowerY == last.UpperY {
			last.UpperY = edge.UpperY
			last.Y = last.UpperY
			return combinePartial
		}
		if nearlyEqualY(edge.UpperY, last.LowerY) {
			last.LowerY = edge.LowerY
			return combinePartial
		}
		return combineNo
	}

	if nearlyEqualY(edge.UpperY, last.UpperY) {
		if nearlyEqualY(edge.LowerY, last.LowerY) {
			return combineTotal
		}
		if edge.LowerY < last.LowerY {
			last.UpperY = edge.LowerY
			last.Y = last.UpperY
			return combinePartial
		}
		last.UpperY = last.LowerY
		last.Y = last.UpperY
		last.LowerY = edge.LowerY
		last.Winding = edge.Winding
		return combinePartial
	}

	if nearlyEqualY(edge.LowerY, last.LowerY) {
		if edge.UpperY > last.UpperY {
			last.LowerY = edge.UpperY
			return combinePartial
		}
		last.LowerY = last.UpperY
		last.UpperY = edge.UpperY
		last.Y = last.UpperY
		last.Winding = edge.Winding
		return combinePartial
	}

	return combineNo
}
