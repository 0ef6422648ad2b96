// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"slices"

	"github.com/gogpu/aafill/internal/fixed"
)

// noEdge marks a missing link.
const noEdge int32 = -1

// EdgeList is a doubly linked list of edges sorted by top Y, X and slope,
// bracketed by a head sentinel at -infinity and a tail sentinel at
// +infinity so the walker never has to test for the ends.
//
// The edges live in one slice and link to each other by index.
type EdgeList struct {
	edges []Edge
	order []int32
	head  int32
	tail  int32
}

// Init takes ownership of edges, sorts them and links them between the
// two sentinels. edges must not be empty.
func (l *EdgeList) Init(edges []Edge) {
	n := int32(len(edges))
	l.edges = append(edges, sentinel(fixed.Min), sentinel(fixed.Max))
	l.head = n
	l.tail = n + 1

	l.order = l.order[:0]
	for i := range n {
		l.order = append(l.order, i)
	}
	slices.SortFunc(l.order, func(a, b int32) int {
		ea, eb := &l.edges[a], &l.edges[b]
		switch {
		case ea.less(eb):
			return -1
		case eb.less(ea):
			return 1
		default:
			return 0
		}
	})

	prev := l.head
	for _, i := range l.order {
		l.edges[prev].next = i
		l.edges[i].prev = prev
		prev = i
	}
	l.edges[prev].next = l.tail
	l.edges[l.tail].prev = prev
}

// sentinel returns a list terminator pinned at y, with no extent and an
// infinite inverse slope.
func sentinel(y fixed.FDot16) Edge {
	return Edge{
		prev:   noEdge,
		next:   noEdge,
		X:      y,
		UpperX: y,
		UpperY: y,
		LowerY: y,
		DY:     fixed.Max,
	}
}

// Edge returns the edge at index i.
func (l *EdgeList) Edge(i int32) *Edge {
	return &l.edges[i]
}

// First returns the index of the first real edge (the tail when empty).
func (l *EdgeList) First() int32 {
	return l.edges[l.head].next
}

// Next returns the index following i.
func (l *EdgeList) Next(i int32) int32 {
	return l.edges[i].next
}

// IsTail reports whether i is the tail sentinel.
func (l *EdgeList) IsTail(i int32) bool {
	return i == l.tail
}

// Len returns the number of real edges.
func (l *EdgeList) Len() int {
	return len(l.edges) - 2
}

// Sorted reports whether the linked order is non-decreasing by top Y, X
// and slope, sentinels included.
func (l *EdgeList) Sorted() bool {
	for i := l.head; i != l.tail; i = l.edges[i].next {
		next := l.edges[i].next
		if next == noEdge {
			return false
		}
		if l.edges[next].less(&l.edges[i]) {
			return false
		}
	}
	return true
}
