// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// AlphaRuns stores one row of coverage as run-length encoded alpha.
//
// runs[i] is the length of the run starting at pixel i and alpha[i] its
// coverage; entries inside a run are unused. A zero run ends the row.
// Writes may overlap, in which case their coverage adds up.
type AlphaRuns struct {
	runs  []uint16
	alpha []uint8
	width int
}

// NewAlphaRuns creates an empty row for the given width.
func NewAlphaRuns(width int) *AlphaRuns {
	ar := &AlphaRuns{}
	ar.Resize(width)
	return ar
}

// Resize sets the row width, reusing storage when possible, and clears it.
func (ar *AlphaRuns) Resize(width int) {
	if width <= 0 {
		width = 1
	}
	if width > 0xFFFF {
		width = 0xFFFF
	}
	if cap(ar.runs) < width+1 {
		ar.runs = make([]uint16, width+1)
		ar.alpha = make([]uint8, width+1)
	}
	ar.runs = ar.runs[:width+1]
	ar.alpha = ar.alpha[:width+1]
	ar.width = width
	ar.Reset()
}

// Reset clears the row to a single transparent run.
func (ar *AlphaRuns) Reset() {
	ar.runs[0] = uint16(ar.width)
	ar.runs[ar.width] = 0
	ar.alpha[0] = 0
}

// Width returns the row width.
func (ar *AlphaRuns) Width() int {
	return ar.width
}

// catchOverflow maps an accumulated 0-256 coverage into 0-255 and
// saturates anything larger.
func catchOverflow(alpha uint16) uint8 {
	if alpha > 256 {
		alpha = 256
	}
	return uint8(alpha - (alpha >> 8))
}

// IsEmpty reports whether the row is a single transparent run.
func (ar *AlphaRuns) IsEmpty() bool {
	if ar.runs[0] == 0 {
		return true
	}
	return ar.alpha[0] == 0 && ar.runs[ar.runs[0]] == 0
}

// Add accumulates a span: startAlpha on pixel x (when non-zero), then
// middleCount pixels of maxValue, then stopAlpha on the pixel after them
// (when non-zero). offsetX is a hint where a previous Add on the same row
// ended; pass 0 when unsure. It returns the hint for the next call.
func (ar *AlphaRuns) Add(x int, startAlpha uint8, middleCount int, stopAlpha uint8, maxValue uint8, offsetX int) int {
	if x < 0 {
		return offsetX
	}

	runsOffset := offsetX
	alphaOffset := offsetX
	lastAlphaOffset := offsetX
	x -= offsetX

	if startAlpha != 0 {
		ar.breakRun(runsOffset, x, 1)
		ar.alpha[alphaOffset+x] = catchOverflow(uint16(ar.alpha[alphaOffset+x]) + uint16(startAlpha))

		runsOffset += x + 1
		alphaOffset += x + 1
		x = 0
	}

	if middleCount > 0 {
		ar.breakRun(runsOffset, x, middleCount)
		alphaOffset += x
		runsOffset += x
		x = 0

		for middleCount > 0 {
			ar.alpha[alphaOffset] = catchOverflow(uint16(ar.alpha[alphaOffset]) + uint16(maxValue))
			n := int(ar.runs[runsOffset])
			if n <= 0 {
				break
			}
			n = min(n, middleCount)
			alphaOffset += n
			runsOffset += n
			middleCount -= n
		}
		lastAlphaOffset = alphaOffset
	}

	if stopAlpha != 0 {
		ar.breakRun(runsOffset, x, 1)
		alphaOffset += x
		ar.alpha[alphaOffset] = catchOverflow(uint16(ar.alpha[alphaOffset]) + uint16(stopAlpha))
		lastAlphaOffset = alphaOffset
	}

	return lastAlphaOffset
}

// breakRun splits runs so that [x, x+count) relative to runsOffset starts
// and ends on run boundaries.
func (ar *AlphaRuns) breakRun(runsOffset, x, count int) {
	if count <= 0 {
		return
	}
	origX := x

	ro := runsOffset
	for x > 0 {
		n := int(ar.runs[ro])
		if n <= 0 {
			return
		}
		if x < n {
			ar.alpha[ro+x] = ar.alpha[ro]
			ar.runs[ro] = uint16(x)
			ar.runs[ro+x] = uint16(n - x)
			break
		}
		ro += n
		x -= n
	}

	ro = runsOffset + origX
	x = count
	for {
		n := int(ar.runs[ro])
		if n <= 0 {
			break
		}
		if x < n {
			ar.alpha[ro+x] = ar.alpha[ro]
			ar.runs[ro] = uint16(x)
			ar.runs[ro+x] = uint16(n - x)
			break
		}
		x -= n
		if x == 0 {
			break
		}
		ro += n
	}
}

// splitToSingles breaks [x, x+n) into runs of length one so each pixel
// can be addressed directly.
func (ar *AlphaRuns) splitToSingles(x, n int) {
	for i := 0; i < n; {
		r := int(ar.runs[x+i])
		if r <= 0 {
			return
		}
		for j := 1; j < r; j++ {
			ar.runs[x+i+j] = 1
			ar.alpha[x+i+j] = ar.alpha[x+i]
		}
		ar.runs[x+i] = 1
		i += r
	}
}

// snap rounds alpha within 8 levels of either end to that end.
func (ar *AlphaRuns) snap() {
	for x := 0; ar.runs[x] != 0; x += int(ar.runs[x]) {
		ar.alpha[x] = snapAlpha(ar.alpha[x])
	}
}

// At returns the coverage of pixel x.
func (ar *AlphaRuns) At(x int) uint8 {
	for i := 0; ar.runs[i] != 0; i += int(ar.runs[i]) {
		if x < i+int(ar.runs[i]) {
			return ar.alpha[i]
		}
	}
	return 0
}

// Runs returns the run lengths.
func (ar *AlphaRuns) Runs() []uint16 {
	return ar.runs
}

// Alpha returns the run coverage values.
func (ar *AlphaRuns) Alpha() []uint8 {
	return ar.alpha
}

// snapAlpha pins coverage near 0 or 255 to exactly 0 or 255.
func snapAlpha(a uint8) uint8 {
	switch {
	case a > 247:
		return 0xFF
	case a < 8:
		return 0
	default:
		return a
	}
}
