package algebra

import (
	"fmt"
	"math/bits"
)

// Number of quotient digit corrections allowed per step of divLarge. Once the
// divisor is normalized, the estimate from the two top blocks of the window is
// at most 2 above the true digit (Knuth, TAOCP Vol. 2, 4.3.1, Theorem B).
const maxDivCorrections = 2

// nat is an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n stored in a slice of length n, with the
// blocks x[i] as the slice elements. len(x) is the number of blocks in use and
// cap(x) the allocated capacity.
//
// A number is normalized if the slice contains no leading (most significant)
// zero blocks and holds at least one block. The normalized representation of
// 0 is therefore nat{0}. During arithmetic operations denormalized values may
// occur but are always normalized before returning the final result.
type nat []Word

// norm returns z with its leading zero blocks truncated. At least one block
// is kept so that zero is nat{0}.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return z.setWord(0)
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

// grow extends z to n blocks in use. The capacity doubles until it can hold n
// blocks and the blocks between the old length and n are zeroed. Appending
// blocks one at a time costs amortized O(1) per block.
func (z nat) grow(n int) nat {
	if n <= len(z) {
		return z
	}
	if n > cap(z) {
		c := max(cap(z), 1)
		for c < n {
			c *= 2
		}
		t := make(nat, len(z), c)
		copy(t, z)
		z = t
	}
	m := len(z)
	z = z[:n]
	clear(z[m:])
	return z
}

func (z nat) setWord(x Word) nat {
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	z = z.make(2)
	z[1] = Word(x >> _W)
	z[0] = Word(x)
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (x nat) isZero() bool {
	return len(x) == 0 || len(x) == 1 && x[0] == 0
}

// cmp compares the magnitudes of x and y and returns -1, 0 or 1. It scans the
// blocks from the most significant index of the longer operand down to 0,
// treating blocks beyond the end of the shorter one as zero, so x and y need
// not be normalized.
func (x nat) cmp(y nat) int {
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		var xi, yi Word
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		switch {
		case xi > yi:
			return 1
		case xi < yi:
			return -1
		}
	}
	return 0
}

// add sets z to x + y. z must not alias x or y.
func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return z.add(y, x)
	}
	// m >= n
	z = z.make(m)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	if c != 0 {
		z = z.grow(m + 1)
		z[m] = c
	}
	return z.norm()
}

// sub sets z to x - y. x must not be less than y and z must not alias y.
func (z nat) sub(x, y nat) nat {
	x, y = x.norm(), y.norm()
	m, n := len(x), len(y)
	if m < n {
		panic("nat.sub: underflow")
	}
	z = z.make(m)
	c := subVV(z[:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("nat.sub: underflow")
	}
	return z.norm()
}

// mul sets z to x * y using the schoolbook method: every block of x
// contributes a partial product that is accumulated, with its carry block,
// at its offset. z must not alias x or y.
func (z nat) mul(x, y nat) nat {
	if x.isZero() || y.isZero() {
		return z.setWord(0)
	}
	m, n := len(x), len(y)
	z = z.make(m + n)
	clear(z)
	for i, xi := range x {
		if xi != 0 {
			z[n+i] = addMulVVW(z[i:i+n], y, xi)
		}
	}
	return z.norm()
}

// mulAddWW sets z to x*y + r. z may alias x.
func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// divW sets z to x / y and returns z and the remainder block. z may alias x.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	switch {
	case y == 0:
		panic(ErrDomain{"division by zero"})
	case y == 1:
		q = z.set(x)
		return
	case x.isZero():
		q = z.setWord(0)
		return
	}
	z = z.make(len(x))
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// div returns q = u/v and r = u%v. q is built in z and r in z2; neither may
// alias u or v.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if v.isZero() {
		panic(ErrDomain{"division by zero"})
	}
	u, v = u.norm(), v.norm()

	if u.cmp(v) < 0 {
		q = z.setWord(0)
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v)
	return
}

// divLarge computes q = u/v and r = u%v with the normalize, estimate and
// correct long division of Knuth, TAOCP Vol. 2, 4.3.1, Algorithm D.
// len(v) >= 2 and u >= v.
func (z nat) divLarge(z2, u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// D1: scale u and v by d so that the top block of v is at least _B/2.
	// d is a power of two, hence v*d never needs an extra block.
	d := Word(1) << bits.LeadingZeros32(uint32(v[n-1]))
	vn := nat(nil).make(n)
	if c := mulAddVWW(vn, v, d, 0); c != 0 {
		panic(fmt.Sprintf("BUG: divisor scaled by %d overflows", d))
	}
	if debugAlgebra && vn[n-1] < _H {
		panic(fmt.Sprintf("BUG: divisor top block %#x not normalized", vn[n-1]))
	}
	un := nat(nil).make(len(u) + 1)
	un[len(u)] = mulAddVWW(un[0:len(u)], u, d, 0)

	q = z.make(m + 1)
	prod := nat(nil).make(n + 1)
	vtop := vn[n-1]

	// D2-D7: one quotient block per step, most significant first. win is the
	// n+1 blocks of the running remainder that the step works on.
	for j := m; j >= 0; j-- {
		win := un[j : j+n+1]

		// D3: estimate the quotient block from the two top blocks of the
		// window, clamped to the largest block value.
		qhat := Word(_M)
		if win[n] < vtop {
			qhat, _ = divWW(win[n], win[n-1], vtop)
		}

		// D4: multiply, then correct the estimate while the product exceeds
		// the window.
		prod[n] = mulAddVWW(prod[0:n], vn, qhat, 0)
		for k := 0; prod.cmp(win) > 0; k++ {
			if k == maxDivCorrections {
				panic(fmt.Sprintf("BUG: quotient estimate off by more than %d", maxDivCorrections))
			}
			qhat--
			prod[n] -= subVV(prod[0:n], prod[0:n], vn)
		}

		// D5, D6: subtract and store the digit.
		if c := subVV(win, win, prod); c != 0 {
			panic("BUG: negative partial remainder")
		}
		q[j] = qhat
	}
	q = q.norm()

	// D8: undo the scaling; the division by d must be exact.
	var rd Word
	r, rd = z2.divW(un[0:n].norm(), d)
	if rd != 0 {
		panic(fmt.Sprintf("BUG: remainder not divisible by scale factor %d", d))
	}
	return q, r
}

// bytes returns the big-endian byte representation of x without leading zero
// bytes. Zero yields an empty slice.
func (x nat) bytes() []byte {
	buf := make([]byte, len(x)*_S)
	i := len(buf)
	for _, w := range x {
		for j := 0; j < _S; j++ {
			i--
			buf[i] = byte(w)
			w >>= 8
		}
	}
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// setBytes interprets buf as the bytes of a big-endian unsigned integer, sets z
// to that value, and returns z.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)
	clear(z)
	k := 0
	s := uint(0)
	for i := len(buf) - 1; i >= 0; i-- {
		z[k] |= Word(buf[i]) << s
		if s += 8; s == _W {
			k++
			s = 0
		}
	}
	return z.norm()
}
