// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string conversion functions.

package algebra

import (
	"fmt"
	"io"
	"strings"
)

var intZero Int

// String returns the decimal representation of x: an optional '-' followed
// by the digits of |x|, or "0".
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	if debugAlgebra {
		x.validate()
	}
	return string(x.abs.itoa(x.neg))
}

// Append appends the decimal representation of x, as generated by x.String,
// to buf and returns the extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.itoa(x.neg)...)
}

// scan sets z to the signed decimal integer read from r. It reads the longest
// possible prefix and does not expect EOF at the end.
func (z *Int) scan(r io.ByteScanner) (*Int, error) {
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = ErrNoDigits
		}
		return nil, err
	}
	z.abs, _, err = z.abs.scan(r)
	if err != nil {
		return nil, err
	}
	z.neg = neg && !z.abs.isZero() // 0 has no sign
	return z, nil
}

// ParseInt parses s as a decimal integer: an optional leading '+' or '-'
// followed by one or more ASCII digits. The entire string must be consumed.
// Leading zeros are accepted.
//
// Errors wrap ErrNoDigits when s holds no digit and ErrSyntax when trailing
// characters follow the digits.
func ParseInt(s string) (*Int, error) {
	r := strings.NewReader(s)
	z, err := new(Int).scan(r)
	if err == nil {
		// entire string must have been consumed
		if ch, err2 := r.ReadByte(); err2 == nil {
			err = fmt.Errorf("%w: expected end of string, found %q", ErrSyntax, ch)
		} else if err2 != io.EOF {
			err = err2
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, err)
	}
	return z, nil
}

// MustParseInt is like ParseInt but panics if s cannot be parsed.
func MustParseInt(s string) *Int {
	z, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt(%q) failed: %v", s, err))
	}
	return z
}

var _ fmt.Scanner = &intZero // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned decimal integer. Only the 'v' and 'd' verbs are accepted.
//
// Scan is the only method that modifies its receiver and must not be used on
// an Int that is already shared.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	if ch != 'v' && ch != 'd' {
		return fmt.Errorf("Int.Scan: invalid verb %q", ch)
	}
	s.SkipSpace()
	_, err := z.scan(byteReader{s})
	return err
}

// Format implements fmt.Formatter. It accepts the 'v', 's' and 'd' verbs
// and honors the width, '-' and '+' flags.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'v', 's', 'd':
	default:
		fmt.Fprintf(s, "%%!%c(*algebra.Int=%s)", ch, x.String())
		return
	}
	buf := []byte(x.String())
	if s.Flag('+') && x != nil && !x.neg {
		buf = append([]byte{'+'}, buf...)
	}
	pad := 0
	if w, ok := s.Width(); ok && w > len(buf) {
		pad = w - len(buf)
	}
	if pad > 0 && !s.Flag('-') {
		_, _ = io.WriteString(s, strings.Repeat(" ", pad))
	}
	_, _ = s.Write(buf)
	if pad > 0 && s.Flag('-') {
		_, _ = io.WriteString(s, strings.Repeat(" ", pad))
	}
}
