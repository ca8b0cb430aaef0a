// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"math/bits"
)

// Binary64 layout constants for the math kernel (MK).
const (
	float64MantissaBits = 52
	float64ExponentBias = 1023
	float64MaxBiasedExp = 0x7FF
)

func signedZero(neg bool) float64 {
	return math.Copysign(0, signF(neg))
}

func signedInf(neg bool) float64 {
	return math.Inf(int(signF(neg)))
}

func signF(neg bool) float64 {
	if neg {
		return -1
	}
	return 1
}

// mkFloat64 assembles a float64 from its sign bit, biased exponent and
// 52-bit mantissa.
func mkFloat64(sign uint64, biasedExp uint64, mantissa uint64) float64 {
	bits64 := sign<<63 | biasedExp<<float64MantissaBits | mantissa
	return math.Float64frombits(bits64)
}

// kernelDecimal attempts to compute the correctly-rounded binary64 value of
// (-1)**neg * w * 10**q. ok is false when it cannot prove correct rounding;
// the caller must fall back to the arbitrary-precision path (FB).
//
// w holds at most 19 significant decimal digits; a zero w yields a signed
// zero, or a decline when truncated is set. truncated reports that the
// literal held more digits than w could capture, so the value lies in
// [w, w+1) * 10**q.
func kernelDecimal(neg bool, w uint64, q int, truncated bool) (f float64, ok bool) {
	if w == 0 {
		if truncated {
			// w==0 with dropped digits must never be trusted as exact
			// zero: the scanner is expected to have already stripped
			// leading zeros out of the truncation budget, so this should
			// be unreachable, but a genuine zero never has truncated
			// digits it cannot account for.
			return 0, false
		}
		return signedZero(neg), true
	}
	if q > pow10QMax {
		return signedInf(neg), true
	}
	if q < pow10QMin {
		return signedZero(neg), true
	}
	if truncated {
		// The result is proven only when both ends of [w, w+1) * 10**q
		// round to the same float64.
		f, ok = kernelDecimal(neg, w, q, false)
		if f2, ok2 := kernelDecimal(neg, w+1, q, false); !ok || !ok2 || f != f2 {
			return 0, false
		}
		return f, true
	}

	lz := bits.LeadingZeros64(w)
	wNorm := w << uint(lz)

	entry := powersOfTen[q-pow10QMin]

	hi2, lo2 := bits.Mul64(wNorm, entry.hi)
	hi1, lo1 := bits.Mul64(wNorm, entry.lo)
	mid, c := bits.Add64(lo2, hi1, 0)
	upper, _ := bits.Add64(hi2, 0, c)

	adjShift := uint(0)
	if upper&0x8000000000000000 == 0 {
		upper = upper<<1 | mid>>63
		mid <<= 1
		adjShift = 1
	}

	sticky := upper&0x3FF != 0 || mid != 0 || lo1 != 0
	mantissaRound := upper >> 10 // 54 bits: 53-bit mantissa (incl. implicit bit) + round bit
	roundBit := mantissaRound & 1
	mantissa := mantissaRound >> 1

	// The table entry is approximate: a product within a unit or two of mid
	// of a halfway point may be an exact tie, so decline there.
	nearHalf := (roundBit == 1 && upper&0x3FF == 0 && mid <= 2) ||
		(roundBit == 0 && upper&0x3FF == 0x3FF && mid >= ^uint64(0)-2)
	if nearHalf || (truncated && !sticky) {
		return 0, false
	}
	if roundBit == 1 && (sticky || mantissa&1 != 0) {
		mantissa++
	}

	e := int64(pow10Log2(q)) + 64 - int64(lz) - int64(adjShift)
	if mantissa == 1<<(float64MantissaBits+1) {
		mantissa >>= 1
		e++
	}

	biased := e + float64ExponentBias
	if biased <= 0 || biased >= float64MaxBiasedExp {
		// Subnormal and near-overflow results require extra rounding care
		// that the fast path does not attempt; the fallback (FB) always
		// gets these right.
		return 0, false
	}

	signBit := uint64(0)
	if neg {
		signBit = 1
	}
	mantissaField := mantissa &^ (1 << float64MantissaBits) // drop implicit leading bit
	return mkFloat64(signBit, uint64(biased), mantissaField), true
}

// kernelHex computes the correctly-rounded binary64 value of
// (-1)**neg * w * 2**qBinary, where w holds at most 16 significant hex
// digits (64 bits) and qBinary is the already-assembled binary exponent
// (hex point shift, scaled by 4, plus the parsed p-exponent).
func kernelHex(neg bool, w uint64, qBinary int64, truncated bool) (f float64, ok bool) {
	if w == 0 {
		if truncated {
			return 0, false
		}
		return signedZero(neg), true
	}
	if truncated {
		// Dropped hex digits may be nonzero; the fast path cannot tell
		// without them, so it declines rather than guess.
		return 0, false
	}

	lz := bits.LeadingZeros64(w)
	wNorm := w << uint(lz)

	sticky := wNorm&0x3FF != 0
	mantissaRound := wNorm >> 10
	roundBit := mantissaRound & 1
	mantissa := mantissaRound >> 1

	if roundBit == 1 && (sticky || mantissa&1 != 0) {
		mantissa++
	}

	e := qBinary - int64(lz) + 63
	if mantissa == 1<<(float64MantissaBits+1) {
		mantissa >>= 1
		e++
	}

	biased := e + float64ExponentBias
	if biased <= 0 || biased >= float64MaxBiasedExp {
		// Subnormal and overflow hex results defer to the fallback, same
		// policy as kernelDecimal.
		return 0, false
	}

	signBit := uint64(0)
	if neg {
		signBit = 1
	}
	mantissaField := mantissa &^ (1 << float64MantissaBits)
	return mkFloat64(signBit, uint64(biased), mantissaField), true
}

// pow10Log2 returns floor(q * log2(10)) for q in [pow10QMin, pow10QMax],
// using an integer multiply-shift approximation verified exact over that
// range (see pow10_table.go for the table it pairs with).
func pow10Log2(q int) int {
	const mult, shift = 3483294, 20
	return (q * mult) >> shift
}
