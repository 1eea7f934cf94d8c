// Package poly implements polynomials in one variable with exact rational
// coefficients.
package poly

import (
	"fmt"
	"strconv"
	"strings"

	algebra "github.com/skimberk/computer-algebra"
)

var (
	zero = algebra.NewFractionInt(algebra.NewInt(0))
	one  = algebra.NewFractionInt(algebra.NewInt(1))
)

// A Polynomial is an immutable polynomial c[0] + c[1]*x + ... + c[n]*x^n.
//
// Coefficients are indexed by the power of x. Trailing zero coefficients are
// trimmed; the zero polynomial holds the single coefficient 0/1.
type Polynomial struct {
	coeffs []*algebra.Fraction
}

// New returns the polynomial with the given coefficients, constant term
// first.
func New(coeffs ...*algebra.Fraction) *Polynomial {
	p := &Polynomial{}
	p.grow(len(coeffs))
	copy(p.coeffs, coeffs)
	return p.trim()
}

// Parse parses s as whitespace separated fraction literals, constant term
// first: "1 0 -1/2" is 1 - 1/2*x^2.
func Parse(s string) (*Polynomial, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("parsing polynomial %q: no coefficients", s)
	}
	p := &Polynomial{}
	p.grow(len(fields))
	for i, f := range fields {
		c, err := algebra.ParseFraction(f)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		p.coeffs[i] = c
	}
	return p.trim(), nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) *Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return p
}

// grow extends p to n coefficients. The capacity doubles until it holds n
// coefficients and new coefficients are 0/1.
func (p *Polynomial) grow(n int) {
	m := len(p.coeffs)
	if n <= m {
		return
	}
	if n > cap(p.coeffs) {
		c := max(cap(p.coeffs), 1)
		for c < n {
			c *= 2
		}
		t := make([]*algebra.Fraction, m, c)
		copy(t, p.coeffs)
		p.coeffs = t
	}
	p.coeffs = p.coeffs[:n]
	for i := m; i < n; i++ {
		p.coeffs[i] = zero
	}
}

// trim drops trailing zero coefficients, keeping at least one.
func (p *Polynomial) trim() *Polynomial {
	i := len(p.coeffs)
	for i > 1 && (p.coeffs[i-1] == nil || p.coeffs[i-1].IsZero()) {
		i--
	}
	if i == 0 {
		p.grow(1)
		i = 1
	}
	p.coeffs = p.coeffs[:i]
	if p.coeffs[0] == nil {
		p.coeffs[0] = zero
	}
	return p
}

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^i, which is 0/1 beyond the degree of p.
func (p *Polynomial) Coeff(i int) *algebra.Fraction {
	if i < 0 || i >= len(p.coeffs) {
		return zero
	}
	return p.coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Combine applies op pointwise to the coefficients of x and y. A coefficient
// missing from the shorter operand is 0/1.
func Combine(x, y *Polynomial, op algebra.BinaryOp) *Polynomial {
	n := max(len(x.coeffs), len(y.coeffs))
	z := &Polynomial{}
	z.grow(n)
	for i := 0; i < n; i++ {
		z.coeffs[i] = algebra.Combine(x.Coeff(i), y.Coeff(i), op)
	}
	return z.trim()
}

// Add returns x+y.
func (x *Polynomial) Add(y *Polynomial) *Polynomial {
	return Combine(x, y, (*algebra.Fraction).Add)
}

// Sub returns x-y.
func (x *Polynomial) Sub(y *Polynomial) *Polynomial {
	return Combine(x, y, (*algebra.Fraction).Sub)
}

// Mul returns the product x*y.
func (x *Polynomial) Mul(y *Polynomial) *Polynomial {
	if x.IsZero() || y.IsZero() {
		return New()
	}
	z := &Polynomial{}
	z.grow(len(x.coeffs) + len(y.coeffs) - 1)
	for i, a := range x.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range y.coeffs {
			z.coeffs[i+j] = z.coeffs[i+j].Add(a.Mul(b))
		}
	}
	return z.trim()
}

// Scale returns c*x.
func (x *Polynomial) Scale(c *algebra.Fraction) *Polynomial {
	z := &Polynomial{}
	z.grow(len(x.coeffs))
	for i, a := range x.coeffs {
		z.coeffs[i] = a.Mul(c)
	}
	return z.trim()
}

// Pow returns x**n computed by repeated squaring.
func (x *Polynomial) Pow(n uint) *Polynomial {
	z := New(one)
	for b := x; n > 0; n >>= 1 {
		if n&1 != 0 {
			z = z.Mul(b)
		}
		if n > 1 {
			b = b.Mul(b)
		}
	}
	return z
}

// Eval returns the value of x at v using Horner's method.
func (x *Polynomial) Eval(v *algebra.Fraction) *algebra.Fraction {
	z := zero
	for i := len(x.coeffs) - 1; i >= 0; i-- {
		z = z.Mul(v).Add(x.coeffs[i])
	}
	return z
}

// Derivative returns the formal derivative of x.
func (x *Polynomial) Derivative() *Polynomial {
	if len(x.coeffs) == 1 {
		return New()
	}
	z := &Polynomial{}
	z.grow(len(x.coeffs) - 1)
	for i := 1; i < len(x.coeffs); i++ {
		z.coeffs[i-1] = x.coeffs[i].Mul(algebra.NewFractionInt(algebra.NewInt(uint32(i))))
	}
	return z.trim()
}

// Equal reports whether x and y have the same coefficients.
func (x *Polynomial) Equal(y *Polynomial) bool {
	if len(x.coeffs) != len(y.coeffs) {
		return false
	}
	for i, a := range x.coeffs {
		if a.Cmp(y.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders x from the highest degree down, as in
// "1/2*x^2 + -3/1*x^1 + 5/1". Zero coefficients are omitted except for the
// zero polynomial, which renders as "0/1".
func (x *Polynomial) String() string {
	var b strings.Builder
	for i := len(x.coeffs) - 1; i >= 0; i-- {
		c := x.coeffs[i]
		if c.IsZero() && i > 0 {
			continue
		}
		if c.IsZero() && b.Len() > 0 {
			break
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(c.String())
		if i > 0 {
			b.WriteString("*x^")
			b.WriteString(strconv.Itoa(i))
		}
	}
	return b.String()
}

// Fields returns the coefficients of x as fraction literals, constant term
// first, in the format accepted by Parse.
func (x *Polynomial) Fields() []string {
	s := make([]string, len(x.coeffs))
	for i, c := range x.coeffs {
		s[i] = c.String()
	}
	return s
}
