package algebra_test

import (
	"fmt"

	algebra "github.com/skimberk/computer-algebra"
)

func ExampleInt_Add() {
	x := algebra.NewInt(4294967295)
	z := x.Add(x)
	fmt.Println(z, z.Blocks())
	// Output: 8589934590 [4294967294 1]
}

func ExampleInt_QuoRem() {
	x, y := algebra.NewInt64(-7), algebra.NewInt64(2)
	q, r := x.QuoRem(y)
	fmt.Printf("%v = %v*%v + %v\n", x, q, y, r)
	// Output: -7 = -4*2 + 1
}

func ExampleNewFraction() {
	f := algebra.NewFraction(algebra.NewInt(479001600), algebra.NewInt(1048576))
	fmt.Println(f)
	// Output: 1875/4096
}

func ExampleFraction_Sub() {
	x := algebra.MustParseFraction("3/5")
	y := algebra.MustParseFraction("-3/5")
	fmt.Println(x.Sub(y))
	// Output: 6/5
}

func ExampleFraction_Factorial() {
	fmt.Println(algebra.MustParseFraction("5").Factorial())
	// Output: 120/1
}

func ExampleCombine() {
	x := algebra.MustParseFraction("1/2")
	y := algebra.MustParseFraction("1/3")
	for _, op := range []algebra.BinaryOp{(*algebra.Fraction).Add, (*algebra.Fraction).Sub} {
		fmt.Println(algebra.Combine(x, y, op))
	}
	// Output:
	// 5/6
	// 1/6
}

func ExampleErrDomain() {
	quo := func(x, y *algebra.Fraction) (z *algebra.Fraction, err error) {
		defer func() {
			if e, ok := recover().(algebra.ErrDomain); ok {
				err = e
			}
		}()
		return x.Quo(y), nil
	}
	_, err := quo(algebra.MustParseFraction("1"), algebra.MustParseFraction("0"))
	fmt.Println(err)
	// Output: division by zero
}

func ExampleFraction_Apd() {
	d, _ := algebra.MustParseFraction("1/3").Apd(10)
	fmt.Println(d)
	// Output: 0.3333333333
}
