package algebra

import (
	"io"
)

// scan reads the longest run of ASCII decimal digits from r and returns the
// corresponding value and the number of digits read. Leading zeros are
// accepted. If no digit is found, scan returns 0 and ErrNoDigits.
//
// Digits are collected in groups of at most _DW in di and every full group is
// folded into the result with a single mulAddWW by 10**_DW.
func (z nat) scan(r io.ByteScanner) (res nat, count int, err error) {
	z = z.setWord(0)
	di := Word(0) // 0 <= di < 10**i
	i := 0        // 0 <= i < _DW

	ch, err := r.ReadByte()
	for err == nil {
		if ch < '0' || '9' < ch {
			err = r.UnreadByte() // ch does not belong to the number anymore
			break
		}
		count++
		di = di*10 + Word(ch-'0')
		i++
		if i == _DW {
			z = z.mulAddWW(z, _DB, di)
			di = 0
			i = 0
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && count == 0 {
		err = ErrNoDigits
	}

	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow10(i), di)
	}
	res = z.norm()
	return
}

// scanSign consumes an optional leading '+' or '-'.
func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// utoa converts x to its decimal representation.
func (x nat) utoa() []byte {
	return x.itoa(false)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
//
// x is peeled 9 digits at a time by dividing a private copy by 10**9 with
// divW; the remainder block of each step is split into its decimal digits.
func (x nat) itoa(neg bool) []byte {
	if x.isZero() {
		return []byte("0")
	}

	// a block holds at most 10 decimal digits
	i := len(x)*10 + 1
	s := make([]byte, i)

	// preserve x, divW works in place on q
	q := nat(nil).set(x)
	var r Word
	for !q.isZero() {
		q, r = q.divW(q, _DB)
		for j := 0; j < _DW && i > 0; j++ {
			i--
			t := r / 10
			s[i] = '0' + byte(r-t*10)
			r = t
		}
	}

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	for s[i] == '0' {
		i++
	}

	if neg {
		i--
		s[i] = '-'
	}

	return s[i:]
}
