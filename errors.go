// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "fmt"

// An ErrNaN panic is raised by a Decimal operation that would lead to a NaN
// under IEEE 754 rules. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// maxQuotedInput bounds how much of a malformed literal MalformedNumber will
// quote verbatim; longer inputs are reported by length only.
const maxQuotedInput = 1024

// A MalformedNumber reports that a byte span did not match the grammar
// accepted by ParseFloat64. It is the only error kind ParseFloat64 returns.
type MalformedNumber struct {
	input []byte
}

func (e *MalformedNumber) Error() string {
	if len(e.input) <= maxQuotedInput {
		return fmt.Sprintf("decimal: invalid syntax: %q", e.input)
	}
	return fmt.Sprintf("decimal: invalid syntax (%d bytes)", len(e.input))
}

func malformed(b []byte) error {
	return &MalformedNumber{input: b}
}
