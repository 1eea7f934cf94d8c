package rpn

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	algebra "github.com/skimberk/computer-algebra"
)

// DefaultPrompt is printed before reading each line.
const DefaultPrompt = "> "

// A Session runs an Evaluator over lines read from an input stream.
type Session struct {
	Evaluator *Evaluator
	Prompt    string
	// Digits, when non-zero, also prints each result rounded to that many
	// significant decimal digits.
	Digits uint32
}

// NewSession returns a session with the default prompt around e.
func NewSession(e *Evaluator) *Session {
	return &Session{Evaluator: e, Prompt: DefaultPrompt}
}

// Run reads r line by line until EOF or quit. Each result, or the error a
// line produced, is written to w. Run only fails if r or w does.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for {
		if _, err := io.WriteString(w, s.Prompt); err != nil {
			return err
		}
		if !sc.Scan() {
			return sc.Err()
		}
		f, err := s.Evaluator.Eval(sc.Text())
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrEmpty):
			continue
		case err != nil:
			_, err = fmt.Fprintf(w, "error: %v\n", err)
		default:
			err = s.print(w, f)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) print(w io.Writer, f *algebra.Fraction) error {
	if _, err := fmt.Fprintln(w, f); err != nil {
		return err
	}
	if s.Digits == 0 || f.IsInt() {
		return nil
	}
	d, err := f.Apd(s.Digits)
	if err != nil {
		_, err = fmt.Fprintf(w, "error: %v\n", err)
		return err
	}
	_, err = fmt.Fprintf(w, "≈ %s\n", d)
	return err
}

