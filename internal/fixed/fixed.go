// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixed provides the fixed-point number formats used by the
// analytic scan converter.
//
// Type Reference:
//   - FDot6:  26.6 fixed-point, used while setting up edges
//   - FDot16: 16.16 fixed-point, used for positions, slopes and forward
//     differencing coefficients
//
// Coverage only needs 8 bits of alpha, so several helpers here trade the
// low bits of a result for speed. Callers must not rely on bit-exact
// results beyond what each helper documents.
package fixed

import "math"

// FDot6 is a 26.6 fixed-point number.
type FDot6 = int32

// FDot16 is a 16.16 fixed-point number.
type FDot16 = int32

// FDot6 constants.
const (
	FDot6Shift       = 6
	FDot6One   FDot6 = 1 << FDot6Shift
	FDot6Half  FDot6 = FDot6One >> 1
)

// FDot16 constants.
const (
	Shift        = 16
	One   FDot16 = 1 << Shift
	Half  FDot16 = One >> 1
	Mask  FDot16 = One - 1

	// Max and Min double as the "infinite" sentinels of the edge list.
	Max FDot16 = math.MaxInt32
	Min FDot16 = math.MinInt32
)

// Accuracy is the number of extra fractional bits used when scaling
// coordinates into FDot6 before they are shifted back into FDot16.
// Y values are snapped to 1/(1<<Accuracy) of a pixel.
const Accuracy = 2

// MaxCoord is the largest pixel coordinate magnitude that survives the
// (Accuracy + 6 + 10) bit scale-up without overflowing an int32.
const MaxCoord = 32767 >> Accuracy

// RoundToFDot6 converts x to FDot6 with shift extra fractional bits,
// rounding half to even.
func RoundToFDot6(x float32, shift int) FDot6 {
	scale := float64(int64(1) << uint(FDot6Shift+shift))
	return int32(math.RoundToEven(float64(x) * scale))
}

// FromFDot6 converts an FDot6 to FDot16.
func FromFDot6(v FDot6) FDot16 {
	return leftShift(v, Shift-FDot6Shift)
}

// ToFDot6 drops the low 10 bits of an FDot16.
func ToFDot6(v FDot16) FDot6 {
	return v >> (Shift - FDot6Shift)
}

// FromFDot6Div2 is FromFDot6(v) / 2 without losing the low bit of v.
func FromFDot6Div2(v FDot6) FDot16 {
	return leftShift(v, Shift-FDot6Shift-1)
}

// UpShift shifts an FDot6 left by n bits.
func UpShift(v FDot6, n int) int32 {
	return leftShift(v, n)
}

// FromInt converts an integer to FDot16.
func FromInt(n int) FDot16 {
	return int32(n) << Shift
}

// FromFloat converts a float64 to FDot16, saturating out-of-range values.
func FromFloat(f float64) FDot16 {
	return saturate(int64(f * float64(One)))
}

// ToFloat converts an FDot16 to float64.
func ToFloat(v FDot16) float64 {
	return float64(v) / float64(One)
}

// FloorToInt returns floor(v).
func FloorToInt(v FDot16) int {
	return int(v >> Shift)
}

// CeilToInt returns ceil(v).
func CeilToInt(v FDot16) int {
	return int((int64(v) + int64(Mask)) >> Shift)
}

// RoundToInt returns v rounded to the nearest integer, halves up.
func RoundToInt(v FDot16) int {
	return int((int64(v) + int64(Half)) >> Shift)
}

// FloorToFixed clears the fractional bits of v.
func FloorToFixed(v FDot16) FDot16 {
	return v &^ Mask
}

// CeilToFixed rounds v up to the next integer value.
func CeilToFixed(v FDot16) FDot16 {
	return FloorToFixed(v + Mask)
}

// RoundToFixed rounds v to the nearest integer value.
func RoundToFixed(v FDot16) FDot16 {
	return FloorToFixed(v + Half)
}

// SnapY rounds y to the nearest 1/(1<<Accuracy) of a pixel.
func SnapY(y FDot16) FDot16 {
	const drop = Shift - Accuracy
	return int32((uint32(y) + uint32(One>>(Accuracy+1))) >> drop << drop)
}

// Mul multiplies two FDot16 values through a 64-bit intermediate.
func Mul(a, b FDot16) FDot16 {
	return int32((int64(a) * int64(b)) >> Shift)
}

// Div computes (numer << 16) / denom, saturating to the int32 range.
// A zero denominator saturates by the sign of numer.
func Div(numer, denom int32) FDot16 {
	if denom == 0 {
		if numer >= 0 {
			return Max
		}
		return -Max
	}
	return saturate((int64(numer) << Shift) / int64(denom))
}

// FDot6Div divides two FDot6 values into an FDot16 quotient, using
// 32-bit math when the numerator fits in 16 bits.
func FDot6Div(a, b FDot6) FDot16 {
	if b != 0 && a == int32(int16(a)) {
		return (a << Shift) / b
	}
	return Div(a, b)
}

// Abs returns |v|.
func Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func leftShift(v int32, shift int) int32 {
	if shift < 0 {
		return v >> uint(-shift)
	}
	return int32(uint32(v) << uint(shift))
}

func saturate(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
