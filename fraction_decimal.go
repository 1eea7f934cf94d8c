package algebra

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal"
)

// DefaultApdPrecision is the number of significant digits used by Apd when
// called with a precision of 0.
const DefaultApdPrecision = 34

// Decimal returns x rounded to a decimal.Decimal, which holds at most
// decimal.MaxPrec significant digits and decimal.MaxScale digits after the
// decimal point. Values whose integer part does not fit are reported as an
// error.
func (x *Fraction) Decimal() (decimal.Decimal, error) {
	// Render |num| * 10**MaxScale / den truncated, one digit more than the
	// target scale so that decimal.Parse performs the final rounding. A
	// nonzero remainder is kept as a trailing sticky digit so that values
	// just above a tie do not round as the tie.
	const scale = decimal.MaxScale + 1
	p := x.num.Abs()
	for i := 0; i < scale; i++ {
		p = p.mulWord(10)
	}
	q, r := p.QuoRem(x.den)
	digits := string(q.abs.utoa())
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	var b strings.Builder
	if x.num.neg {
		b.WriteByte('-')
	}
	b.WriteString(digits[:len(digits)-scale])
	b.WriteByte('.')
	b.WriteString(digits[len(digits)-scale:])
	if !r.IsZero() {
		b.WriteByte('1')
	}
	d, err := decimal.Parse(b.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %s to decimal: %w", x, err)
	}
	return d.Trim(0), nil
}

// NewFractionFromDecimal returns the exact value of d as a reduced fraction.
func NewFractionFromDecimal(d decimal.Decimal) *Fraction {
	n := NewUint64(d.Coef())
	if d.IsNeg() {
		n = n.Neg()
	}
	den := NewInt(1)
	for i := 0; i < d.Scale(); i++ {
		den = den.mulWord(10)
	}
	return NewFraction(n, den)
}

// Apd returns x approximated to prec significant digits as an apd.Decimal,
// rounded half up. A prec of 0 selects DefaultApdPrecision.
func (x *Fraction) Apd(prec uint32) (*apd.Decimal, error) {
	if prec == 0 {
		prec = DefaultApdPrecision
	}
	n, _, err := apd.NewFromString(x.num.String())
	if err != nil {
		return nil, fmt.Errorf("converting %s to apd: %w", x, err)
	}
	d, _, err := apd.NewFromString(x.den.String())
	if err != nil {
		return nil, fmt.Errorf("converting %s to apd: %w", x, err)
	}
	z := new(apd.Decimal)
	if _, err := apd.BaseContext.WithPrecision(prec).Quo(z, n, d); err != nil {
		return nil, fmt.Errorf("converting %s to apd: %w", x, err)
	}
	return z, nil
}
