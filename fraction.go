// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// A Fraction is an immutable rational number num/den in lowest terms.
//
// The denominator is always positive, the sign lives on the numerator and
// gcd(|num|, den) == 1. Zero is 0/1. Every operation assumes its operands are
// reduced and returns a newly allocated, reduced *Fraction.
type Fraction struct {
	num *Int
	den *Int
}

var intOne = NewInt(1)

// NewFraction returns the reduced fraction n/d. NewFraction panics with
// ErrDomain if d is 0.
func NewFraction(n, d *Int) *Fraction {
	if d.IsZero() {
		panic(ErrDomain{"zero denominator"})
	}
	g := GCD(n, d)
	n = quoExact(n, g)
	d = quoExact(d, g)
	if d.neg {
		n, d = n.Neg(), d.Neg()
	}
	return &Fraction{num: n, den: d}
}

// NewFractionInt returns the fraction n/1.
func NewFractionInt(n *Int) *Fraction {
	return &Fraction{num: n, den: intOne}
}

// ParseFractionPair parses n and d as decimal integers and returns the reduced
// fraction n/d. A zero denominator is reported as ErrZeroDenominator.
func ParseFractionPair(n, d string) (*Fraction, error) {
	num, err := ParseInt(n)
	if err != nil {
		return nil, err
	}
	den, err := ParseInt(d)
	if err != nil {
		return nil, err
	}
	if den.IsZero() {
		return nil, fmt.Errorf("parsing %q: %w", n+"/"+d, ErrZeroDenominator)
	}
	return NewFraction(num, den), nil
}

// ParseFraction parses s as "p/q" or "p", where p and q are decimal integers
// with an optional sign, and returns the reduced fraction.
func ParseFraction(s string) (*Fraction, error) {
	n, d, ok := strings.Cut(s, "/")
	if !ok {
		num, err := ParseInt(s)
		if err != nil {
			return nil, err
		}
		return NewFractionInt(num), nil
	}
	return ParseFractionPair(n, d)
}

// MustParseFraction is like ParseFraction but panics if s cannot be parsed.
func MustParseFraction(s string) *Fraction {
	f, err := ParseFraction(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseFraction(%q) failed: %v", s, err))
	}
	return f
}

// NewFractionFromRat returns the fraction equal to r.
func NewFractionFromRat(r *big.Rat) *Fraction {
	// big.Rat values are kept in lowest terms with a positive denominator.
	return &Fraction{num: NewIntFromBig(r.Num()), den: NewIntFromBig(r.Denom())}
}

// Rat returns x as a *big.Rat.
func (x *Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(x.num.Big(), x.den.Big())
}

// NewFractionFromFloat64 returns the exact value of f, which must be finite.
// Every finite float64 is a dyadic rational, so no rounding takes place.
func NewFractionFromFloat64(f float64) (*Fraction, error) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return nil, fmt.Errorf("converting %v: %w", f, ErrNotFinite)
	}
	return NewFractionFromRat(r), nil
}

// Float64 returns the float64 value nearest to x, and a bool indicating
// whether it represents x exactly. Values too large in magnitude give ±Inf.
func (x *Fraction) Float64() (float64, bool) {
	return x.Rat().Float64()
}

// validate panics if x is not in lowest terms with a positive denominator.
func (x *Fraction) validate() {
	if !debugAlgebra {
		panic("validate called but debugAlgebra is not set")
	}
	if x == nil {
		panic("nil Fraction")
	}
	x.num.validate()
	x.den.validate()
	if x.den.Sign() <= 0 {
		panic(fmt.Sprintf("Fraction denominator must be positive: %s", x.den))
	}
	if g := GCD(x.num, x.den); !g.IsOne() {
		panic(fmt.Sprintf("Fraction %s/%s is not reduced", x.num, x.den))
	}
}

// Num returns the numerator of x. It carries the sign of x.
func (x *Fraction) Num() *Int { return x.num }

// Den returns the denominator of x; it is always positive.
func (x *Fraction) Den() *Int { return x.den }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Fraction) Sign() int { return x.num.Sign() }

// IsZero reports whether x is 0.
func (x *Fraction) IsZero() bool { return x.num.IsZero() }

// IsInt reports whether the denominator of x is 1.
func (x *Fraction) IsInt() bool { return x.den.IsOne() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Fraction) Cmp(y *Fraction) int {
	// a/b <=> c/d  <=>  a*d <=> c*b, b and d positive
	return x.num.Mul(y.den).Cmp(y.num.Mul(x.den))
}

// Neg returns -x.
func (x *Fraction) Neg() *Fraction {
	return &Fraction{num: x.num.Neg(), den: x.den}
}

// Abs returns |x|.
func (x *Fraction) Abs() *Fraction {
	return &Fraction{num: x.num.Abs(), den: x.den}
}

// Inv returns 1/x. Inv panics with ErrDomain if x is 0.
func (x *Fraction) Inv() *Fraction {
	if debugAlgebra {
		x.validate()
	}
	if x.num.IsZero() {
		panic(ErrDomain{"inverse of zero"})
	}
	n, d := x.den, x.num
	if d.neg {
		n, d = n.Neg(), d.Neg()
	}
	return &Fraction{num: n, den: d}
}

// Add returns the sum x+y.
func (x *Fraction) Add(y *Fraction) *Fraction {
	return x.addSub(y, false)
}

// Sub returns the difference x-y.
func (x *Fraction) Sub(y *Fraction) *Fraction {
	return x.addSub(y, true)
}

// addSub computes x+y or x-y reducing by the gcd of the denominators before
// cross multiplying (Knuth, TAOCP Vol. 2, 4.5.1):
//
//	g  = gcd(dx, dy)
//	t  = nx*(dy/g) ± ny*(dx/g)
//	g2 = gcd(t, g)
//	x ± y = (t/g2) / ((dx/g) * (dy/g2))
func (x *Fraction) addSub(y *Fraction, sub bool) *Fraction {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	g := GCD(x.den, y.den)
	dx := quoExact(x.den, g)
	dy := quoExact(y.den, g)
	ny := y.num
	if sub {
		ny = ny.Neg()
	}
	t := x.num.Mul(dy).Add(ny.Mul(dx))
	if t.IsZero() {
		return NewFractionInt(NewInt(0))
	}
	g2 := GCD(t, g)
	return &Fraction{
		num: quoExact(t, g2),
		den: dx.Mul(quoExact(y.den, g2)),
	}
}

// Mul returns the product x*y. The cross pairs are reduced by their gcd
// before multiplying.
func (x *Fraction) Mul(y *Fraction) *Fraction {
	if debugAlgebra {
		x.validate()
		y.validate()
	}
	if x.num.IsZero() || y.num.IsZero() {
		return NewFractionInt(NewInt(0))
	}
	g1 := GCD(x.num, y.den)
	g2 := GCD(x.den, y.num)
	n := quoExact(x.num, g1).Mul(quoExact(y.num, g2))
	d := quoExact(x.den, g2).Mul(quoExact(y.den, g1))
	return &Fraction{num: n, den: d}
}

// Quo returns the quotient x/y. Quo panics with ErrDomain if y is 0.
func (x *Fraction) Quo(y *Fraction) *Fraction {
	if y.IsZero() {
		panic(ErrDomain{"division by zero"})
	}
	return x.Mul(y.Inv())
}

// Pow returns x**e. e must be a non-negative integer; Pow panics with
// ErrDomain otherwise. 0**0 is 1.
//
// The exponent is consumed one bit at a time with QuoRemWord(2), squaring
// the base at each step.
func (x *Fraction) Pow(e *Fraction) *Fraction {
	if debugAlgebra {
		x.validate()
		e.validate()
	}
	if !e.IsInt() || e.num.neg {
		panic(ErrDomain{fmt.Sprintf("exponent %s is not a non-negative integer", e)})
	}
	z := NewFractionInt(NewInt(1))
	b := x
	n := e.num
	var bit Word
	for !n.IsZero() {
		n, bit = n.QuoRemWord(2)
		if bit == 1 {
			z = z.Mul(b)
		}
		if !n.IsZero() {
			b = b.Mul(b)
		}
	}
	return z
}

// Factorial returns x! for an integer x in [0, 2**32). Factorial panics with
// ErrDomain otherwise.
func (x *Fraction) Factorial() *Fraction {
	if debugAlgebra {
		x.validate()
	}
	n, ok := x.num.Uint32()
	if !ok || !x.IsInt() {
		panic(ErrDomain{fmt.Sprintf("factorial of %s is undefined", x)})
	}
	z := NewInt(1)
	// uint64 so that the loop terminates for n == 1<<32 - 1
	for i := uint64(2); i <= uint64(n); i++ {
		z = z.mulWord(Word(i))
	}
	return NewFractionInt(z)
}

// String returns x as "num/den". The denominator is always printed.
func (x *Fraction) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.num.String() + "/" + x.den.String()
}

// A BinaryOp combines two fractions into a new one. Method expressions such
// as (*Fraction).Add satisfy it.
type BinaryOp func(x, y *Fraction) *Fraction

// Combine returns op(x, y).
func Combine(x, y *Fraction, op BinaryOp) *Fraction {
	return op(x, y)
}
