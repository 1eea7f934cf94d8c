// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import (
	"fmt"
	"math/big"
)

// An Int is an immutable signed multi-precision integer stored in
// sign-magnitude form.
//
// Ints are created with NewInt, NewInt64, NewUint64, NewIntFromBig or
// ParseInt. Every operation returns a newly allocated *Int and leaves its
// operands untouched, so an *Int may be shared freely once built. The zero
// value is not a valid Int.
type Int struct {
	neg bool // sign
	abs nat  // magnitude, normalized
}

// NewInt returns a new Int set to x.
func NewInt(x uint32) *Int {
	return &Int{abs: nat(nil).setWord(Word(x))}
}

// NewUint64 returns a new Int set to x.
func NewUint64(x uint64) *Int {
	return &Int{abs: nat(nil).setUint64(x)}
}

// NewInt64 returns a new Int set to x.
func NewInt64(x int64) *Int {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return &Int{neg: x < 0, abs: nat(nil).setUint64(u)}
}

// NewIntFromBig returns a new Int set to the value of x.
func NewIntFromBig(x *big.Int) *Int {
	z := &Int{abs: nat(nil).setBytes(x.Bytes())}
	z.neg = x.Sign() < 0
	return z
}

// Big returns the value of x as a *big.Int.
func (x *Int) Big() *big.Int {
	if debugAlgebra {
		x.validate()
	}
	z := new(big.Int).SetBytes(x.abs.bytes())
	if x.neg {
		z.Neg(z)
	}
	return z
}

// validate panics with a diagnostic if x breaks one of the representation
// invariants.
func (x *Int) validate() {
	if !debugAlgebra {
		// avoid performance bugs
		panic("validate called but debugAlgebra is not set")
	}
	if x == nil {
		panic("nil Int")
	}
	m := len(x.abs)
	if m == 0 {
		panic("Int must use at least one block (even if zero)")
	}
	if m > 1 && x.abs[m-1] == 0 {
		panic(fmt.Sprintf("Int cannot have trailing zero blocks (except 0, which has exactly one): %v", []Word(x.abs)))
	}
	if x.neg && x.abs.isZero() {
		panic("zero must have positive sign")
	}
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Int) Sign() int {
	if debugAlgebra {
		x.validate()
	}
	switch {
	case x.abs.isZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	if debugAlgebra {
		x.validate()
	}
	return x.abs.isZero()
}

// IsOne reports whether x is 1.
func (x *Int) IsOne() bool {
	if debugAlgebra {
		x.validate()
	}
	return !x.neg && len(x.abs) == 1 && x.abs[0] == 1
}

// Uint32 returns the value of x and true if x can be represented by a uint32.
// Otherwise it returns 0 and false.
func (x *Int) Uint32() (uint32, bool) {
	if debugAlgebra {
		x.validate()
	}
	if x.neg || len(x.abs) > 1 {
		return 0, false
	}
	return uint32(x.abs[0]), true
}

// Blocks returns a copy of the magnitude of x: its base 2**32 digits, least
// significant first.
func (x *Int) Blocks() []Word {
	if debugAlgebra {
		x.validate()
	}
	return nat(nil).set(x.abs)
}

// Neg returns -x. Zero stays positive.
func (x *Int) Neg() *Int {
	if debugAlgebra {
		x.validate()
	}
	// the magnitude is shared: no operation ever writes to it
	return &Int{neg: !x.neg && !x.abs.isZero(), abs: x.abs}
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if debugAlgebra {
		x.validate()
	}
	return &Int{abs: x.abs}
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
func (x *Int) CmpAbs(y *Int) int {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	return x.abs.cmp(y.abs)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) int {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	switch {
	case x.neg == y.neg:
		r := x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	}
	return 1
}

// Add returns the sum x+y.
func (x *Int) Add(y *Int) *Int {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	z := new(Int)
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
		z.neg = x.neg
		return z
	}
	// x + (-y) == x - y == -(y - x)
	// (-x) + y == y - x == -(x - y)
	switch x.abs.cmp(y.abs) {
	case 0:
		z.abs = z.abs.setWord(0)
	case 1:
		z.abs = z.abs.sub(x.abs, y.abs)
		z.neg = x.neg
	default:
		z.abs = z.abs.sub(y.abs, x.abs)
		z.neg = y.neg
	}
	return z
}

// Sub returns the difference x-y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// Mul returns the product x*y.
func (x *Int) Mul(y *Int) *Int {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	if x.abs.isZero() || y.abs.isZero() {
		return NewInt(0)
	}
	// x * y == x * y
	// x * (-y) == -(x * y)
	// (-x) * y == -(x * y)
	// (-x) * (-y) == x * y
	return &Int{neg: x.neg != y.neg, abs: nat(nil).mul(x.abs, y.abs)}
}

// mulWord returns x*y.
func (x *Int) mulWord(y Word) *Int {
	z := &Int{abs: nat(nil).mulAddWW(x.abs, y, 0)}
	z.neg = x.neg && !z.abs.isZero()
	return z
}

// QuoRemWord returns the quotient x/d, truncated towards zero, and the
// remainder |x| mod d. QuoRemWord panics with ErrDomain if d is 0.
func (x *Int) QuoRemWord(d Word) (*Int, Word) {
	if debugAlgebra {
		x.validate()
	}
	q, r := nat(nil).divW(x.abs, d)
	return &Int{neg: x.neg && !q.isZero(), abs: q}, r
}

// QuoRem returns the quotient q and remainder r of x divided by y, such that
//
//	q*y + r == x
//	|r| < |y|
//
// where r is zero or has the sign of y. That is, q is rounded towards negative
// infinity. QuoRem panics with ErrDomain if y is 0.
func (x *Int) QuoRem(y *Int) (q, r *Int) {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	qa, ra := nat(nil).div(nil, x.abs, y.abs)
	neg := x.neg != y.neg
	if neg && !ra.isZero() {
		// reflect the remainder into y's sign: q*y + r == (q-1)*y + (y+r)
		qa = nat(nil).add(qa, nat{1})
		ra = nat(nil).sub(y.abs, ra)
	}
	q = &Int{neg: neg && !qa.isZero(), abs: qa}
	r = &Int{neg: y.neg && !ra.isZero(), abs: ra}
	return q, r
}

// quoExact returns x/y. The division must leave no remainder.
func quoExact(x, y *Int) *Int {
	q, r := x.QuoRem(y)
	if !r.abs.isZero() {
		panic(fmt.Sprintf("BUG: inexact division %s / %s", x, y))
	}
	return q
}

// GCD returns the greatest common divisor of |x| and |y|, computed with
// Euclid's algorithm on the absolute values. GCD(x, 0) == |x|. GCD panics if
// both x and y are 0.
func GCD(x, y *Int) *Int {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	if x.abs.isZero() && y.abs.isZero() {
		panic("GCD(0, 0) is undefined")
	}
	u, v := x.abs, y.abs
	for !v.isZero() {
		_, r := nat(nil).div(nil, u, v)
		u, v = v, r
	}
	return &Int{abs: nat(nil).set(u)}
}
