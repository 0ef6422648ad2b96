// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatchOverflow(t *testing.T) {
	tests := []struct {
		input    uint16
		expected uint8
	}{
		{0, 0},
		{128, 128},
		{255, 255},
		{256, 255}, // full coverage counts as 256
		{300, 255},
		{1000, 255},
	}

	for _, tt := range tests {
		result := catchOverflow(tt.input)
		if result != tt.expected {
			t.Errorf("catchOverflow(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestSnapAlpha(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0, 0},
		{7, 0},
		{8, 8},
		{128, 128},
		{247, 247},
		{248, 255},
		{255, 255},
	}
	for _, tt := range tests {
		if got := snapAlpha(tt.in); got != tt.want {
			t.Errorf("snapAlpha(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAlphaRunsNewAndReset(t *testing.T) {
	ar := NewAlphaRuns(100)
	if ar.Width() != 100 {
		t.Errorf("Width = %d, want 100", ar.Width())
	}
	if !ar.IsEmpty() {
		t.Error("new AlphaRuns should be empty")
	}

	ar.Add(3, 0, 4, 0, 200, 0)
	if ar.IsEmpty() {
		t.Error("IsEmpty() after Add = true")
	}
	ar.Reset()
	if !ar.IsEmpty() {
		t.Error("after Reset should be empty")
	}
}

func TestAlphaRunsZeroWidth(t *testing.T) {
	for _, w := range []int{0, -5} {
		if got := NewAlphaRuns(w).Width(); got != 1 {
			t.Errorf("NewAlphaRuns(%d).Width() = %d, want 1", w, got)
		}
	}
}

// rowOf expands the first n pixels of ar.
func rowOf(ar *AlphaRuns, n int) []uint8 {
	out := make([]uint8, n)
	for x := range out {
		out[x] = ar.At(x)
	}
	return out
}

func TestAlphaRunsAdd(t *testing.T) {
	ar := NewAlphaRuns(20)
	ar.Add(10, 128, 5, 64, 255, 0)

	want := make([]uint8, 20)
	want[10] = 128
	for x := 11; x <= 15; x++ {
		want[x] = 255
	}
	want[16] = 64
	if diff := cmp.Diff(want, rowOf(ar, 20)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphaRunsAccumulate(t *testing.T) {
	ar := NewAlphaRuns(10)
	ar.Add(0, 0, 4, 0, 100, 0)
	ar.Add(2, 0, 4, 0, 100, 0)

	want := []uint8{100, 100, 200, 200, 100, 100, 0, 0, 0, 0}
	if diff := cmp.Diff(want, rowOf(ar, 10)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphaRunsOffsetHint(t *testing.T) {
	ar := NewAlphaRuns(16)
	off := ar.Add(1, 0, 3, 0, 90, 0)
	off = ar.Add(6, 40, 2, 0, 90, off)
	ar.Add(10, 0, 1, 0, 90, off)

	want := []uint8{0, 90, 90, 90, 0, 0, 40, 90, 90, 0, 90, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, rowOf(ar, 16)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphaRunsOverflow(t *testing.T) {
	ar := NewAlphaRuns(8)
	for range 50 {
		ar.Add(2, 200, 2, 200, 200, 0)
	}
	for x, a := range rowOf(ar, 8) {
		switch {
		case x >= 2 && x <= 5:
			if a != 255 {
				t.Errorf("pixel %d = %d, want 255", x, a)
			}
		case a != 0:
			t.Errorf("pixel %d = %d, want 0", x, a)
		}
	}
}

func TestAlphaRunsSplitToSingles(t *testing.T) {
	ar := NewAlphaRuns(12)
	ar.Add(0, 0, 10, 0, 50, 0)
	ar.splitToSingles(0, 10)

	runs := ar.Runs()
	for x := range 10 {
		if runs[x] != 1 {
			t.Errorf("runs[%d] = %d, want 1", x, runs[x])
		}
		if ar.Alpha()[x] != 50 {
			t.Errorf("alpha[%d] = %d, want 50", x, ar.Alpha()[x])
		}
	}
	if runs[10] != 2 {
		t.Errorf("runs[10] = %d, want 2", runs[10])
	}
}

func TestAlphaRunsSnap(t *testing.T) {
	ar := NewAlphaRuns(6)
	ar.Add(0, 0, 2, 0, 5, 0)
	ar.Add(2, 0, 2, 0, 250, 0)
	ar.Add(4, 0, 2, 0, 120, 0)
	ar.snap()

	want := []uint8{0, 0, 255, 255, 120, 120}
	if diff := cmp.Diff(want, rowOf(ar, 6)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphaRunsResize(t *testing.T) {
	ar := NewAlphaRuns(64)
	ar.Add(5, 0, 10, 0, 255, 0)
	ar.Resize(16)
	if ar.Width() != 16 {
		t.Errorf("Width = %d, want 16", ar.Width())
	}
	if !ar.IsEmpty() {
		t.Error("Resize should clear the row")
	}
}
