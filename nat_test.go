// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import (
	"math/big"
	"runtime"
	"strings"
	"testing"
)

var natCmpTests = []struct {
	x, y nat
	r    int
}{
	{nil, nil, 0},
	{nil, nat{0}, 0},
	{nat{0}, nil, 0},
	{nat{0}, nat{0}, 0},
	{nat{0}, nat{1}, -1},
	{nat{1}, nat{0}, 1},
	{nat{1}, nat{1}, 0},
	{nat{0, _M}, nat{1}, 1},
	{nat{1}, nat{0, _M}, -1},
	{nat{1, _M}, nat{0, _M}, 1},
	{nat{0, _M}, nat{1, _M}, -1},
	{nat{5, 0, 0}, nat{5}, 0}, // denormalized operands
	{nat{16, 571956, 8794, 68}, nat{837, 9146, 1, 754489}, -1},
	{nat{34986, 41, 105, 1957}, nat{56, 7458, 104, 1957}, 1},
}

func TestNatCmp(t *testing.T) {
	for i, a := range natCmpTests {
		r := a.x.cmp(a.y)
		if r != a.r {
			t.Errorf("#%d got r = %v; want %v", i, r, a.r)
		}
	}
}

type natFunNN func(z, x, y nat) nat
type natArgNN struct {
	z, x, y nat
}

var natSumNN = []natArgNN{
	{nat{0}, nat{0}, nat{0}},
	{nat{1}, nat{0}, nat{1}},
	{nat{1111111110}, nat{123456789}, nat{987654321}},
	{nat{0, 0, 0, 1}, nat{0}, nat{0, 0, 0, 1}},
	{nat{0, 0, 0, 1111111110}, nat{0, 0, 0, 123456789}, nat{0, 0, 0, 987654321}},
	{nat{0, 0, 0, 1}, nat{0, 0, _M}, nat{0, 0, 1}},
	{nat{_M - 1, 1}, nat{_M}, nat{_M}},
}

var natProdNN = []natArgNN{
	{nat{0}, nat{0}, nat{0}},
	{nat{0}, nat{991}, nat{0}},
	{nat{991}, nat{991}, nat{1}},
	{nat{991 * 991}, nat{991}, nat{991}},
	{nat{0, 0, 991 * 991}, nat{0, 991}, nat{0, 991}},
	{nat{1 * 991, 2 * 991, 3 * 991, 4 * 991}, nat{1, 2, 3, 4}, nat{991}},
	{nat{4, 11, 20, 30, 20, 11, 4}, nat{1, 2, 3, 4}, nat{4, 3, 2, 1}},
	// 3^100 * 3^28 = 3^128
	{
		natFromString("11790184577738583171520872861412518665678211592275841109096961"),
		natFromString("515377520732011331036461129765621272702107522001"),
		natFromString("22876792454961"),
	},
	// z = 111....1 (20000 digits)
	// x = 10^10000 + 1
	// y = 111....1 (10000 digits)
	{
		natFromString(strings.Repeat("1", 20000)),
		natFromString("1" + strings.Repeat("0", 9999) + "1"),
		natFromString(strings.Repeat("1", 10000)),
	},
}

func natFromString(s string) nat {
	x, _, err := nat(nil).scan(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return x
}

func TestNatSet(t *testing.T) {
	for _, a := range natSumNN {
		z := nat(nil).set(a.z)
		if z.cmp(a.z) != 0 {
			t.Errorf("got z = %v; want %v", z, a.z)
		}
	}
}

func natTestFunNN(t *testing.T, msg string, f natFunNN, a natArgNN) {
	z := f(nil, a.x, a.y)
	if z.cmp(a.z) != 0 {
		t.Errorf("%s%+v\n\tgot z = %v; want %v", msg, a, z, a.z)
	}
	if n := len(z); n > 1 && z[n-1] == 0 {
		t.Errorf("%s%+v\n\tresult %v is not normalized", msg, a, z)
	}
}

func TestNatFunNN(t *testing.T) {
	for _, a := range natSumNN {
		arg := a
		natTestFunNN(t, "add", nat.add, arg)

		arg = natArgNN{a.z, a.y, a.x}
		natTestFunNN(t, "add symmetric", nat.add, arg)

		arg = natArgNN{a.x, a.z, a.y}
		natTestFunNN(t, "sub", nat.sub, arg)

		arg = natArgNN{a.y, a.z, a.x}
		natTestFunNN(t, "sub symmetric", nat.sub, arg)
	}

	for _, a := range natProdNN {
		arg := a
		natTestFunNN(t, "mul", nat.mul, arg)

		arg = natArgNN{a.z, a.y, a.x}
		natTestFunNN(t, "mul symmetric", nat.mul, arg)
	}
}

func TestNatSubUnderflow(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("nat.sub(1, 2) did not panic")
		}
	}()
	nat(nil).sub(nat{1}, nat{2})
}

func TestNatGrow(t *testing.T) {
	z := nat{1, 2, 3}[:2]
	z = z.grow(9)
	if len(z) != 9 {
		t.Fatalf("len = %d; want 9", len(z))
	}
	if c := cap(z); c < 9 || c&(c-1) != 0 {
		t.Fatalf("cap = %d; want a power of two >= 9", c)
	}
	for i, w := range z {
		want := Word(0)
		if i < 2 {
			want = Word(i + 1)
		}
		if w != want {
			t.Fatalf("z[%d] = %d; want %d (%v)", i, w, want, z)
		}
	}
	// growing to a smaller size is a no-op
	if g := z.grow(3); len(g) != 9 {
		t.Fatalf("grow(3) changed len to %d", len(g))
	}
}

// TestNatDivLarge checks q*v + r == u and r < v against math/big for operands
// chosen to exercise the correction step of the quotient estimate.
func TestNatDivLarge(t *testing.T) {
	tests := []struct {
		u, v nat
	}{
		{nat{0, 0, 1}, nat{1, 1}},
		{nat{_M, _M, _M}, nat{_M, _M}},
		{nat{0, 0, 0, _H}, nat{1, _H}},
		{nat{0, 0, _M, _M - 1}, nat{_M, _M}},
		{nat{3, 0, 0x80000000}, nat{1, 0, 0x80000000}},
		{nat{0, 0, 0x7fffffff, 0x8000}, nat{1, 0x80000000}},
		{nat{_M, _M, 1}, nat{_M, 1}},
		{nat{0, 0, 3}, nat{0, 2, 1}},
	}
	for n := 2; n < 12; n++ {
		for m := 0; m < 6; m++ {
			u := nat(rndV(n + m)).norm()
			v := nat(rndV(n)).norm()
			if v.isZero() {
				continue
			}
			tests = append(tests, struct{ u, v nat }{u, v})
			// divisor whose top block is 1: maximal scaling
			w := nat(rndV(n)).norm()
			w[len(w)-1] = 1
			tests = append(tests, struct{ u, v nat }{u, w})
		}
	}
	for i, d := range tests {
		q, r := nat(nil).div(nil, d.u, d.v)
		bq, br := new(big.Int).QuoRem(natBig(d.u), natBig(d.v), new(big.Int))
		if natBig(q).Cmp(bq) != 0 || natBig(r).Cmp(br) != 0 {
			t.Errorf("#%d %v / %v = %v, %v; want %s, %s", i, d.u, d.v, q, r, bq, br)
		}
		if r.cmp(d.v) >= 0 {
			t.Errorf("#%d remainder %v not less than divisor %v", i, r, d.v)
		}
	}
}

func TestNatDivW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := nat(rndV(1 + i%10)).norm()
		y := rndW() | 1
		q, r := nat(nil).divW(x, y)
		bq, br := new(big.Int).QuoRem(natBig(x), big.NewInt(int64(y)), new(big.Int))
		if natBig(q).Cmp(bq) != 0 || uint64(r) != br.Uint64() {
			t.Fatalf("%v / %d = %v, %d; want %s, %s", x, y, q, r, bq, br)
		}
	}
}

func TestNatDivByZero(t *testing.T) {
	for _, f := range []func(){
		func() { nat(nil).divW(nat{1}, 0) },
		func() { nat(nil).div(nil, nat{1}, nat{0}) },
	} {
		func() {
			defer func() {
				if _, ok := recover().(ErrDomain); !ok {
					t.Error("division by zero did not panic with ErrDomain")
				}
			}()
			f()
		}()
	}
}

func TestNatBytes(t *testing.T) {
	for _, x := range []nat{{0}, {1}, {0xff}, {0x100}, {_M, 1}, {0, 0, 0x01020304}} {
		b := x.bytes()
		if want := natBig(x).Bytes(); string(b) != string(want) {
			t.Errorf("%v.bytes() = %x; want %x", x, b, want)
		}
		if z := nat(nil).setBytes(b); z.cmp(x) != 0 {
			t.Errorf("setBytes(%x) = %v; want %v", b, z, x)
		}
	}
}

var natStringTests = []struct {
	x nat
	s string
}{
	{nat{0}, "0"},
	{nat{1}, "1"},
	{nat{999999999}, "999999999"},
	{nat{1000000000}, "1000000000"},
	{nat{_M}, "4294967295"},
	{nat{0, 1}, "4294967296"},
	{nat{_M - 1, 1}, "8589934590"},
	{nat{_M, _M}, "18446744073709551615"},
}

func TestNatString(t *testing.T) {
	for _, a := range natStringTests {
		if s := string(a.x.utoa()); s != a.s {
			t.Errorf("%v.utoa() = %s; want %s", a.x, s, a.s)
		}
		if s := string(a.x.itoa(true)); a.s != "0" && s != "-"+a.s {
			t.Errorf("%v.itoa(true) = %s; want -%s", a.x, s, a.s)
		}
		x, n, err := nat(nil).scan(strings.NewReader(a.s))
		if err != nil || n != len(a.s) || x.cmp(a.x) != 0 {
			t.Errorf("scan(%s) = %v, %d, %v; want %v", a.s, x, n, err, a.x)
		}
	}
}

func TestNatScanLeadingZeros(t *testing.T) {
	x, n, err := nat(nil).scan(strings.NewReader("0000000000000000000042 rest"))
	if err != nil || n != 22 || x.cmp(nat{42}) != 0 {
		t.Fatalf("scan = %v, %d, %v; want [42], 22, <nil>", x, n, err)
	}
	if _, _, err := nat(nil).scan(strings.NewReader("x")); err != ErrNoDigits {
		t.Fatalf("scan(x) error = %v; want %v", err, ErrNoDigits)
	}
}

// natAllocBytes returns the number of bytes allocated by invoking f.
func natAllocBytes(f func()) uint64 {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	t := stats.TotalAlloc
	f()
	runtime.ReadMemStats(&stats)
	return stats.TotalAlloc - t
}

// TestNatMulUnbalanced tests that multiplying numbers of different lengths
// does not allocate more than the product.
func TestNatMulUnbalanced(t *testing.T) {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1))
	x := rndNat(50000)
	y := rndNat(40)
	allocSize := natAllocBytes(func() {
		nat(nil).mul(x, y)
	})
	inputSize := uint64(len(x)+len(y)) * _S
	if ratio := allocSize / uint64(inputSize); ratio > 10 {
		t.Errorf("multiplication uses too much memory (%d > %d times the size of inputs)", allocSize, ratio)
	}
}

// rndNat returns a random nat value >= 0 of (usually) n blocks in length.
// In extremely unlikely cases it may be smaller than n blocks if the top-
// most blocks are 0.
func rndNat(n int) nat {
	return nat(rndV(n)).norm()
}

func benchmarkNatMul(b *testing.B, nwords int) {
	x := rndNat(nwords)
	y := rndNat(nwords)
	var z nat
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z = z.mul(x, y)
	}
}

func BenchmarkNatMul10(b *testing.B)   { benchmarkNatMul(b, 10) }
func BenchmarkNatMul100(b *testing.B)  { benchmarkNatMul(b, 100) }
func BenchmarkNatMul1000(b *testing.B) { benchmarkNatMul(b, 1000) }

func BenchmarkNatString(b *testing.B) {
	x := rndNat(1000)
	for i := 0; i < b.N; i++ {
		_ = x.utoa()
	}
}
