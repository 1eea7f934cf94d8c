// Package rpn evaluates postfix (Reverse Polish Notation) expressions over
// exact fractions.
//
// A line is a sequence of whitespace separated tokens:
//
//	+ - * / ^   binary operators; the right operand is the top of the stack
//	!           factorial of the top of the stack
//	%           pushes the result of the last successful line
//	quit        stops evaluation with ErrQuit
//
// Any other token is parsed as a fraction literal such as 3, -7 or -11/7, or
// failing that as a decimal literal such as 0.25, which is converted exactly.
// Tokens are split with shell rules, so a '#' at the start of a word begins
// a comment.
package rpn

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/shlex"
	"github.com/govalues/decimal"
	"golang.org/x/text/unicode/norm"

	algebra "github.com/skimberk/computer-algebra"
)

// Evaluation errors. Errors returned by Eval wrap one of these, a literal
// parse error or an algebra.ErrDomain.
var (
	ErrQuit           = errors.New("quit")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrLeftover       = errors.New("expression must leave exactly one value")
	ErrEmpty          = errors.New("empty expression")
)

var binaryOps = map[string]algebra.BinaryOp{
	"+": (*algebra.Fraction).Add,
	"-": (*algebra.Fraction).Sub,
	"*": (*algebra.Fraction).Mul,
	"/": (*algebra.Fraction).Quo,
	"^": (*algebra.Fraction).Pow,
}

// An Evaluator evaluates lines one at a time and remembers the result of the
// last successful one. The zero value is not usable; use New.
type Evaluator struct {
	last   *algebra.Fraction
	logger *slog.Logger
}

// New returns an Evaluator whose last result is 0/1. A nil logger discards
// all output.
func New(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Evaluator{
		last:   algebra.NewFractionInt(algebra.NewInt(0)),
		logger: logger,
	}
}

// Last returns the result of the last successful line.
func (e *Evaluator) Last() *algebra.Fraction {
	return e.last
}

// Eval evaluates line and returns the single value it leaves on the stack.
// On success the result also becomes the value of %. On failure the last
// result is unchanged.
func (e *Evaluator) Eval(line string) (*algebra.Fraction, error) {
	tokens, err := shlex.Split(norm.NFKC.String(line))
	if err != nil {
		return nil, fmt.Errorf("splitting %q: %w", line, err)
	}
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}

	stack := make([]*algebra.Fraction, 0, len(tokens))
	for i, tok := range tokens {
		stack, err = e.step(stack, tok)
		if errors.Is(err, ErrQuit) {
			return nil, ErrQuit
		}
		if err != nil {
			e.logger.Debug("eval failed", "line", line, "token", i, "err", err)
			return nil, fmt.Errorf("token %d %q: %w", i, tok, err)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d values left", ErrLeftover, len(stack))
	}
	e.last = stack[0]
	e.logger.Debug("eval", "line", line, "result", e.last)
	return e.last, nil
}

// step applies a single token to stack. Domain errors raised by the
// arithmetic are returned as errors; any other panic propagates.
func (e *Evaluator) step(stack []*algebra.Fraction, tok string) (res []*algebra.Fraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			var d algebra.ErrDomain
			if re, ok := r.(error); !ok || !errors.As(re, &d) {
				panic(r)
			}
			res, err = stack, d
		}
	}()

	if op, ok := binaryOps[tok]; ok {
		if len(stack) < 2 {
			return stack, ErrStackUnderflow
		}
		n := len(stack)
		x, y := stack[n-2], stack[n-1]
		return append(stack[:n-2], algebra.Combine(x, y, op)), nil
	}

	switch tok {
	case "!":
		if len(stack) < 1 {
			return stack, ErrStackUnderflow
		}
		n := len(stack)
		return append(stack[:n-1], stack[n-1].Factorial()), nil
	case "%":
		return append(stack, e.last), nil
	case "quit":
		return stack, ErrQuit
	}

	f, err := algebra.ParseFraction(tok)
	if err != nil {
		d, derr := decimal.Parse(tok)
		if derr != nil {
			return stack, err
		}
		f = algebra.NewFractionFromDecimal(d)
	}
	return append(stack, f), nil
}
