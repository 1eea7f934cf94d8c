// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the block (Word) and vector arithmetic primitives used
// by nat. All of them work on little-endian []Word slices.

package algebra

import "math/bits"

// A Word is one base 2**32 digit ("block") of a magnitude.
type Word uint32

const (
	_W = 32            // block size in bits
	_B = 1 << _W       // block base
	_M = _B - 1        // largest block value
	_S = _W / 8        // block size in bytes
	_H = 1 << (_W - 1) // smallest normalized top block of a divisor
)

// Decimal digits per block when converting to and from strings: 10**9 is the
// largest power of ten that fits in a Word.
const (
	_DW = 9
	_DB = 1000000000
)

var pow10tab = [_DW + 1]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

func pow10(n int) Word {
	if debugAlgebra && n > _DW {
		panic("pow10: overflow")
	}
	return pow10tab[n]
}

//-----------------------------------------------------------------------------
// Elementary operations on blocks
//

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul32(uint32(x), uint32(y))
	lo, cc := bits.Add32(lo, uint32(c), 0)
	// x*y + c <= (_B-1)**2 + _B-1 < _B**2: hi+cc cannot overflow
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v
// u1 must be less than v.
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div32(uint32(u1), uint32(u0), uint32(v))
	return Word(qq), Word(rr)
}

//-----------------------------------------------------------------------------
// Vector operations
//

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub32(uint32(x[i]), uint32(y[i]), uint32(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW adds y to x. The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Add32(uint32(x[i]), uint32(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// subVW subtracts y from x. The resulting borrow c is either 0 or 1.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Sub32(uint32(x[i]), uint32(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// mulAddVWW sets z to x*y + r and returns the carry block.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW adds x*y to z and returns the carry block.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add32(uint32(z0), uint32(c), 0)
		// x[i]*y + z[i] + c < _B**2
		c, z[i] = z1+Word(cc), Word(lo)
	}
	return
}

// divWVW sets z to (xn<<(_W*len(x)) + x) / y and returns the remainder. The
// running window r<<_W | x[i] is processed from the most significant block
// down. xn must be less than y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}
