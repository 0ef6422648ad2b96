// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fixed

//go:generate go run gen_inverse.go

// InverseTableSize bounds the FDot6 magnitudes covered by Inverse.
const InverseTableSize = 1024

// quickDivMinB is the smallest |b| QuickDiv sends through the table;
// below it 1/b is too large for a*1/b to stay within 31 bits.
const quickDivMinB = 1 << 3

// quickDivMaxA bounds |a| on the table path: (1<<22)/8 * (1<<12) < 1<<31.
const quickDivMaxA = 1 << (31 - 22 + 3)

// Inverse returns 1/x in FDot16 for an FDot6 x with |x| < InverseTableSize.
// Inverse(0) is Max.
func Inverse(x FDot6) FDot16 {
	if x < 0 {
		return -inverseTable[-x]
	}
	return inverseTable[x]
}

// QuickDiv returns a/b in FDot16 for FDot6 operands. Small divisors go
// through the reciprocal table and may differ from FDot6Div by one unit.
func QuickDiv(a, b FDot6) FDot16 {
	absB := Abs(b)
	if absB >= quickDivMinB && absB < InverseTableSize && Abs(a) < quickDivMaxA {
		return (a * Inverse(b)) >> 6
	}
	return FDot6Div(a, b)
}
