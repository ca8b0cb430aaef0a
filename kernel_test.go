// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow10Log2(t *testing.T) {
	for q := pow10QMin; q <= pow10QMax; q++ {
		got := pow10Log2(q)
		want := int(math.Floor(float64(q) * math.Log2(10)))
		assert.Equalf(t, want, got, "q=%d", q)
	}
}

func TestKernelDecimalExact(t *testing.T) {
	for _, tc := range []struct {
		w    uint64
		q    int
		want float64
	}{
		{1, 0, 1},
		{1, 1, 10},
		{5, -1, 0.5},
		{123456789, 0, 123456789},
		{1, 22, 1e22},
	} {
		f, ok := kernelDecimal(false, tc.w, tc.q, false)
		require.Truef(t, ok, "w=%d q=%d: kernel declined", tc.w, tc.q)
		assert.Equalf(t, tc.want, f, "w=%d q=%d", tc.w, tc.q)
	}
}

func TestKernelDecimalHalfwayTieDeclines(t *testing.T) {
	// 9007199254740993 (2^53+1) sits exactly halfway between the two closest
	// float64 values; MK must not guess the tie-break and instead decline.
	_, ok := kernelDecimal(false, 9007199254740993, 0, false)
	assert.False(t, ok, "exact halfway case must decline rather than round")
}

func TestKernelDecimalZeroAndInf(t *testing.T) {
	f, ok := kernelDecimal(false, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, float64(0), f)
	assert.False(t, math.Signbit(f))

	f, ok = kernelDecimal(true, 0, 0, false)
	require.True(t, ok)
	assert.True(t, math.Signbit(f))

	f, ok = kernelDecimal(false, 1, pow10QMax+1, false)
	require.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	f, ok = kernelDecimal(false, 1, pow10QMin-1, false)
	require.True(t, ok)
	assert.Equal(t, float64(0), f)
}

func TestKernelHexExact(t *testing.T) {
	f, ok := kernelHex(false, 1, 0, false)
	require.True(t, ok)
	assert.Equal(t, float64(1), f)

	f, ok = kernelHex(false, 0x10, -4, false)
	require.True(t, ok)
	assert.Equal(t, float64(1), f)

	f, ok = kernelHex(true, 0xABCDEF, 0, false)
	require.True(t, ok)
	assert.Equal(t, -float64(0xABCDEF), f)
}

func TestKernelHexTruncatedDeclines(t *testing.T) {
	_, ok := kernelHex(false, 1, 0, true)
	assert.False(t, ok, "truncated hex mantissa must never be trusted by the fast path")
}

func TestKernelDecimalSubnormalDeclines(t *testing.T) {
	// 10^-320 sits in binary64's subnormal range: MK must decline rather than guess.
	_, ok := kernelDecimal(false, 1, -320, false)
	assert.False(t, ok)
}
