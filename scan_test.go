// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEightDigits(t *testing.T) {
	v, ok := eightDigits([]byte("12345678"))
	require.True(t, ok)
	assert.EqualValues(t, 12345678, v)

	v, ok = eightDigits([]byte("00000000"))
	require.True(t, ok)
	assert.EqualValues(t, 0, v)

	v, ok = eightDigits([]byte("99999999"))
	require.True(t, ok)
	assert.EqualValues(t, 99999999, v)

	_, ok = eightDigits([]byte("1234567a"))
	assert.False(t, ok, "non-digit byte must be rejected")

	_, ok = eightDigits([]byte("1234.678"))
	assert.False(t, ok, "a '.' must not be mistaken for a digit")
}

func TestHexDigitVal(t *testing.T) {
	for _, tc := range []struct {
		c    byte
		want int
	}{
		{'0', 0}, {'9', 9}, {'a', 10}, {'f', 15}, {'A', 10}, {'F', 15},
	} {
		v, ok := hexDigitVal(tc.c)
		require.True(t, ok)
		assert.Equal(t, tc.want, v)
	}
	_, ok := hexDigitVal('g')
	assert.False(t, ok)
}

func TestScanExpDigits(t *testing.T) {
	exp, idx, ok := scanExpDigits([]byte("123x"), 0)
	require.True(t, ok)
	assert.EqualValues(t, 123, exp)
	assert.Equal(t, 3, idx)

	exp, idx, ok = scanExpDigits([]byte("-7"), 0)
	require.True(t, ok)
	assert.EqualValues(t, -7, exp)
	assert.Equal(t, 2, idx)

	_, _, ok = scanExpDigits([]byte("+"), 0)
	assert.False(t, ok, "sign with no digits must fail")

	exp, _, ok = scanExpDigits([]byte("999999999999999999999"), 0)
	require.True(t, ok)
	assert.Equal(t, int64(expSaturationBound), exp, "absurdly large exponent digit runs must saturate, not overflow")
}
