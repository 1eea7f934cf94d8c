// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints and Fractions.

package algebra

import (
	"encoding/binary"
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	mag := x.abs.bytes()
	buf := make([]byte, 1+len(mag))
	b := intGobVersion << 1 // make space for sign bit
	if x.neg {
		b |= 1
	}
	buf[0] = b
	copy(buf[1:], mag)
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{abs: nat(nil).setWord(0)}
		return nil
	}
	b := buf[0]
	if b>>1 != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", b>>1)
	}
	z.abs = nat(nil).setBytes(buf[1:])
	z.neg = b&1 != 0 && !z.abs.isZero()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := ParseInt(string(text))
	if err != nil {
		return fmt.Errorf("algebra: cannot unmarshal %q into a *algebra.Int (%w)", text, err)
	}
	*z = *x
	return nil
}

// GobEncode implements the gob.GobEncoder interface. The numerator and the
// denominator are encoded as Ints, the numerator first, each prefixed by its
// length.
func (x *Fraction) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	n, _ := x.num.GobEncode()
	d, _ := x.den.GobEncode()
	buf := make([]byte, 0, 8+len(n)+len(d))
	for _, p := range [][]byte{n, d} {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(p)))
		buf = append(buf, p...)
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. The decoded value is
// reduced.
func (z *Fraction) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		*z = Fraction{num: NewInt(0), den: intOne}
		return nil
	}
	var parts [2]*Int
	for i := range parts {
		if len(buf) < 4 {
			return fmt.Errorf("Fraction.GobDecode: buffer too small")
		}
		l := binary.BigEndian.Uint32(buf)
		buf = buf[4:]
		if uint32(len(buf)) < l {
			return fmt.Errorf("Fraction.GobDecode: buffer too small")
		}
		parts[i] = new(Int)
		if err := parts[i].GobDecode(buf[:l]); err != nil {
			return err
		}
		buf = buf[l:]
	}
	if parts[1].IsZero() {
		return fmt.Errorf("Fraction.GobDecode: %w", ErrZeroDenominator)
	}
	*z = *NewFraction(parts[0], parts[1])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Fraction) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Fraction) UnmarshalText(text []byte) error {
	x, err := ParseFraction(string(text))
	if err != nil {
		return fmt.Errorf("algebra: cannot unmarshal %q into a *algebra.Fraction (%w)", text, err)
	}
	*z = *x
	return nil
}
