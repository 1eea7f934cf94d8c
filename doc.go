// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package algebra implements exact arbitrary-precision rational arithmetic.

Two types are provided:

	Int       signed multi-precision integers
	Fraction  rational numbers in lowest terms, built on Int

The magnitude of an Int is stored in a little-endian Word slice of base 2**32
"blocks", together with a separate sign. All arithmetic operates directly on
those blocks: carries and borrows are propagated with math/bits, products use
the schoolbook method and division uses the normalize, estimate and correct
long division of Knuth's Algorithm D, with the number of corrections per
quotient block bounded.

Unlike math/big, values are immutable. Every operation allocates and returns
its result and never modifies its operands, so values can be shared freely:

	x := algebra.NewInt(4294967295)
	y := x.Add(x)  // y == 8589934590, x is unchanged

	f := algebra.MustParseFraction("479001600/1048576")
	fmt.Println(f) // 1875/4096

Replacing the value bound to a variable is a plain assignment:

	acc = acc.Mul(f)

Operations are written as methods whose receiver is the first operand:

	func (x *Int) Add(y *Int) *Int                // x + y
	func (x *Fraction) Quo(y *Fraction) *Fraction // x / y
	func (x *Fraction) Sign() int                 // sign of x

Fraction results are always reduced: the denominator is positive, the sign is
carried by the numerator and zero is 0/1.

Errors are reported in three ways. Malformed input to ParseInt, ParseFraction
and friends is returned as an error wrapping ErrNoDigits, ErrSyntax or
ErrZeroDenominator. Operations applied outside of their mathematical domain,
such as a division by zero, panic with an ErrDomain value, which callers
evaluating untrusted expressions may recover. Any other panic denotes a broken
internal invariant.

Conversions to and from math/big (Big, Rat), float64 (Float64),
github.com/govalues/decimal (Decimal) and github.com/cockroachdb/apd/v3 (Apd)
are provided, and both types implement fmt.Stringer, encoding.TextMarshaler
and gob.GobEncoder. *Int also satisfies fmt.Scanner and fmt.Formatter.
*/
package algebra
