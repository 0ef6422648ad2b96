// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/gogpu/aafill/internal/fixed"
)

func lineEdge(t *testing.T, x0, y0, x1, y1 float32) Edge {
	t.Helper()
	var e Edge
	if !e.SetLine(Point{x0, y0}, Point{x1, y1}) {
		t.Fatalf("SetLine(%v, %v, %v, %v) = false", x0, y0, x1, y1)
	}
	return e
}

func TestEdgeListOrder(t *testing.T) {
	edges := []Edge{
		lineEdge(t, 5, 3, 5, 9),  // starts lower
		lineEdge(t, 8, 0, 2, 10), // same top, larger x
		lineEdge(t, 1, 0, 6, 10), // same top and x as next, larger slope
		lineEdge(t, 1, 0, 0, 10),
	}

	var l EdgeList
	l.Init(edges)

	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
	if !l.Sorted() {
		t.Error("Sorted() = false")
	}

	var got []fixed.FDot16
	for i := l.First(); !l.IsTail(i); i = l.Next(i) {
		e := l.Edge(i)
		got = append(got, e.UpperY, e.X, e.DX)
	}
	want := []fixed.FDot16{
		0, 1 << 16, -fixed.One / 10,
		0, 1 << 16, fixed.One / 2,
		0, 8 << 16, -fixed.FromFloat(0.6),
		3 << 16, 5 << 16, 0,
	}
	if len(got) != len(want) {
		t.Fatalf("walked %d values, want %d", len(got), len(want))
	}
	for i := range want {
		// Slopes come from the reciprocal table and lose a few low bits.
		if d := got[i] - want[i]; d < -16 || d > 16 {
			t.Errorf("value %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEdgeListSentinels(t *testing.T) {
	var l EdgeList
	l.Init([]Edge{lineEdge(t, 0, 0, 0, 4), lineEdge(t, 4, 0, 4, 4)})

	head := l.Edge(l.Edge(l.First()).prev)
	if head.UpperY != fixed.Min {
		t.Errorf("head UpperY = %d, want Min", head.UpperY)
	}
	second := l.Next(l.First())
	tail := l.Next(second)
	if !l.IsTail(tail) {
		t.Fatal("third link is not the tail")
	}
	if e := l.Edge(tail); e.UpperY != fixed.Max || e.LowerY != fixed.Max {
		t.Errorf("tail Y = [%d, %d], want Max", e.UpperY, e.LowerY)
	}
	if l.Edge(tail).prev != second {
		t.Errorf("tail prev = %d, want %d", l.Edge(tail).prev, second)
	}
}

func TestEdgeListReuse(t *testing.T) {
	var l EdgeList
	l.Init([]Edge{lineEdge(t, 0, 0, 0, 4), lineEdge(t, 4, 0, 4, 4), lineEdge(t, 2, 5, 9, 8)})
	l.Init([]Edge{lineEdge(t, 4, 2, 4, 6), lineEdge(t, 0, 1, 0, 4)})

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	first := l.Edge(l.First())
	if first.UpperY != fixed.One {
		t.Errorf("first UpperY = %d, want %d", first.UpperY, fixed.One)
	}
	if !l.Sorted() {
		t.Error("Sorted() = false")
	}
}
