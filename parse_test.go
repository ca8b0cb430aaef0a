// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat64BitExact(t *testing.T) {
	for _, s := range []string{
		"0", "-0", "1", "-1", "0.1", "3.14159265358979", "1e10", "1e-10",
		"1.7976931348623157e+308", // math.MaxFloat64
		"5e-324",                  // math.SmallestNonzeroFloat64
		"2.2250738585072014e-308", // smallest normal
		"9007199254740993",        // 2^53+1, halfway tie
		"9007199254740992",
		"100000000000000000000000000000000000000000",
		"0.00000000000000000000000000001",
		"123456789012345678901234567890e+5",
		"1.000000000000000000000000000000001",
	} {
		want, err := strconv.ParseFloat(s, 64)
		require.NoErrorf(t, err, "oracle failed to parse %q", s)
		got, err := ParseFloat64String(s)
		require.NoErrorf(t, err, "ParseFloat64String(%q)", s)
		assert.Equalf(t, math.Float64bits(want), math.Float64bits(got), "%q: got %v (%x), want %v (%x)",
			s, got, math.Float64bits(got), want, math.Float64bits(want))
	}
}

func TestParseFloat64LeadingZerosBeyondDigitBudget(t *testing.T) {
	// 19 leading zeros followed by a single significant digit: the zeros
	// must not consume the kernel's significant-digit budget and cause the
	// trailing "1" to be dropped.
	for _, s := range []string{
		"00000000000000000001",
		"0.00000000000000000001",
		"0000000000000000000.1",
		"0x00000000000000001p0",
		"0x0.00000000000000001p64",
	} {
		got, err := ParseFloat64String(s)
		require.NoErrorf(t, err, "ParseFloat64String(%q)", s)
		assert.Falsef(t, got == 0, "%q must not parse as zero", s)
	}

	got, err := ParseFloat64String("00000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)

	got, err = ParseFloat64String("0x00000000000000001p0")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)
}

func TestParseFloat64Hex(t *testing.T) {
	for _, s := range []string{
		"0x1p0", "0x1.8p1", "-0x1.8p1", "0x1p-1", "0x1.fffffffffffffp+1023", "0x1p-1074",
	} {
		want, err := strconv.ParseFloat(s, 64)
		require.NoErrorf(t, err, "oracle failed to parse %q", s)
		got, err := ParseFloat64String(s)
		require.NoErrorf(t, err, "ParseFloat64String(%q)", s)
		assert.Equalf(t, math.Float64bits(want), math.Float64bits(got), "%q", s)
	}
}

func TestParseFloat64SignOfZero(t *testing.T) {
	z, err := ParseFloat64String("-0")
	require.NoError(t, err)
	assert.True(t, math.Signbit(z))

	z, err = ParseFloat64String("0")
	require.NoError(t, err)
	assert.False(t, math.Signbit(z))
}

func TestParseFloat64WhitespaceInvariance(t *testing.T) {
	a, err := ParseFloat64String("3.5")
	require.NoError(t, err)
	b, err := ParseFloat64String("  \t 3.5\n ")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseFloat64SpecialValues(t *testing.T) {
	f, err := ParseFloat64String("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))

	f, err = ParseFloat64String("Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	f, err = ParseFloat64String("-Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, -1))
}

func TestParseFloat64Malformed(t *testing.T) {
	for _, s := range []string{
		"", "   ", "+", "-", "1.2.3", "1e", "1x", "0x1p", "0x", "NaNa", "Infinit", ".", "e5",
	} {
		_, err := ParseFloat64String(s)
		require.Errorf(t, err, "expected %q to be malformed", s)
		var mn *MalformedNumber
		assert.ErrorAsf(t, err, &mn, "%q: error must be *MalformedNumber", s)
	}
}

func TestParseFloat64At(t *testing.T) {
	buf := []byte("garbage 123.5 garbage")
	got, err := ParseFloat64At(buf, 8, 5)
	require.NoError(t, err)
	assert.Equal(t, 123.5, got)
}

func TestParseFloat64Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		exp := rng.Intn(700) - 350
		mant := rng.Uint64() % 100000000000000000
		s := strconv.FormatUint(mant, 10) + "e" + strconv.Itoa(exp)

		want, werr := strconv.ParseFloat(s, 64)
		got, gerr := ParseFloat64String(s)
		if werr != nil {
			continue
		}
		require.NoErrorf(t, gerr, "ParseFloat64String(%q)", s)
		assert.Equalf(t, math.Float64bits(want), math.Float64bits(got), "%q", s)
	}
}

func TestParseFloat64NoAllocationOnFastPath(t *testing.T) {
	n := testing.AllocsPerRun(100, func() {
		_, _ = ParseFloat64String("123.456e10")
	})
	assert.LessOrEqualf(t, n, 1.0, "fast path allocated %v times per call, expected at most one (the string->[]byte conversion)", n)
}
