package algebra

import (
	"errors"
	"fmt"
)

// debugAlgebra enables the invariant checks performed by the validate methods
// at the entry of public operations.
const debugAlgebra = true

// Conversion errors.
var (
	ErrNoDigits        = errors.New("number has no digits")
	ErrSyntax          = errors.New("invalid syntax")
	ErrZeroDenominator = errors.New("zero denominator")
	ErrNotFinite       = errors.New("value is not finite")
)

// An ErrDomain panic is raised by an operation whose operands lie outside of
// its mathematical domain: division by zero, the inverse of zero, or a
// factorial or power of an operand that is not a suitable integer. ErrDomain
// implements the error interface, so callers evaluating untrusted input can
// recover it and report it as an ordinary error.
//
// Broken invariants are reported with plain string panics instead; they
// indicate a defect, never bad input.
type ErrDomain struct {
	Msg string
}

func (err ErrDomain) Error() string {
	return err.Msg
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}
