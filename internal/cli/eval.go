package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	algebra "github.com/skimberk/computer-algebra"
	"github.com/skimberk/computer-algebra/rpn"
)

// EvalResult is the outcome of one expression.
type EvalResult struct {
	Expr   string   `json:"expr"`
	Value  string   `json:"value,omitempty"`
	Approx string   `json:"approx,omitempty"`
	Float  *float64 `json:"float,omitempty"` // absent on error or overflow
	Error  string   `json:"error,omitempty"`
}

// EvalResults renders one line per expression in text mode.
type EvalResults []EvalResult

func (r EvalResults) String() string {
	var b strings.Builder
	for i, res := range r {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case res.Error != "":
			fmt.Fprintf(&b, "error: %s", res.Error)
		case res.Approx != "":
			fmt.Fprintf(&b, "%s ≈ %s", res.Value, res.Approx)
		default:
			b.WriteString(res.Value)
		}
	}
	return b.String()
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate postfix expressions",
		Long: `Evaluate each argument as one postfix expression, in order.
% refers to the result of the previous successful argument. Use -- before
expressions that start with a minus sign.

Exit codes:
  0 - All expressions evaluated
  1 - One or more expressions failed
  2 - Command error

Examples:
  ratcalc eval -- "-3/5 -11/7 +" "% 2 /"
  ratcalc eval --digits 20 "1 3 /"
  ratcalc eval --format json "1000 ! 99 ! /"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runEval(opts *RootOptions, exprs []string, cmd *cobra.Command) error {
	e := rpn.New(newLogger(opts, cmd.ErrOrStderr()))
	results := make(EvalResults, 0, len(exprs))
	failed := 0
	for _, expr := range exprs {
		res := EvalResult{Expr: expr}
		f, err := e.Eval(expr)
		if err != nil {
			res.Error = err.Error()
			failed++
		} else {
			res.Value = f.String()
			res.Approx = approximate(f, opts.Digits)
			res.Float = nearestFloat(f)
		}
		results = append(results, res)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if failed > 0 {
		exitErr := NewExitError(ExitFailure, fmt.Sprintf("%d of %d expressions failed", failed, len(exprs)))
		if err := out.Failure(results, exitErr); err != nil {
			return err
		}
		return exitErr
	}
	return out.Success(results)
}

// nearestFloat returns the float64 nearest to f, or nil when f is out of the
// float64 range, which JSON cannot encode.
func nearestFloat(f *algebra.Fraction) *float64 {
	v, _ := f.Float64()
	if math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// approximate returns f rounded to digits significant digits, or "" when no
// approximation is wanted or f is an integer.
func approximate(f *algebra.Fraction, digits uint32) string {
	if digits == 0 || f.IsInt() {
		return ""
	}
	d, err := f.Apd(digits)
	if err != nil {
		return ""
	}
	return d.String()
}
