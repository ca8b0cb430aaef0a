// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// ParseFloat64 converts the byte span b to the nearest float64 value,
// correctly rounded, following the same grammar as ParseFloat64At(b, 0,
// len(b)). It returns a *MalformedNumber if b does not represent a valid
// floating-point literal.
func ParseFloat64(b []byte) (float64, error) {
	return parseNumber(b)
}

// ParseFloat64At is like ParseFloat64 but operates on the sub-span
// b[off:off+length]. It panics if the span is out of range, the same as a
// slice expression would.
func ParseFloat64At(b []byte, off, length int) (float64, error) {
	return parseNumber(b[off : off+length])
}

// ParseFloat64String is a convenience wrapper around ParseFloat64 for
// callers holding a string rather than a byte slice.
func ParseFloat64String(s string) (float64, error) {
	return parseNumber([]byte(s))
}
