package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	algebra "github.com/skimberk/computer-algebra"
	"github.com/skimberk/computer-algebra/poly"
)

// PolyResult is a polynomial rendered for output.
type PolyResult struct {
	Coefficients []string `json:"coefficients"` // constant term first
	Degree       int      `json:"degree"`
	Text         string   `json:"text"`
}

func (r PolyResult) String() string {
	return r.Text
}

func newPolyResult(p *poly.Polynomial) PolyResult {
	return PolyResult{Coefficients: p.Fields(), Degree: p.Degree(), Text: p.String()}
}

// NewPolyCommand creates the poly command and its subcommands.
func NewPolyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Polynomial arithmetic",
		Long: `Polynomial arithmetic with exact rational coefficients.

A polynomial is written as its whitespace separated coefficients, constant
term first: "5 -3 1/2" is 1/2*x^2 + -3/1*x^1 + 5/1. Use -- before
arguments that start with a minus sign.

Examples:
  ratcalc poly add "1 2" "0 0 3"
  ratcalc poly mul -- "1 1" "-1 1"
  ratcalc poly pow "1 1" 4
  ratcalc poly eval -- "5 -3 1/2" -1/2`,
	}

	binary := func(name, short string, op func(x, y *poly.Polynomial) *poly.Polynomial) *cobra.Command {
		return &cobra.Command{
			Use:           name + " <p> <q>",
			Short:         short,
			Args:          cobra.ExactArgs(2),
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				ps, err := parsePolys(args...)
				if err != nil {
					return err
				}
				return polyOutput(rootOpts, cmd).Success(newPolyResult(op(ps[0], ps[1])))
			},
		}
	}
	cmd.AddCommand(binary("add", "Sum of two polynomials", (*poly.Polynomial).Add))
	cmd.AddCommand(binary("sub", "Difference of two polynomials", (*poly.Polynomial).Sub))
	cmd.AddCommand(binary("mul", "Product of two polynomials", (*poly.Polynomial).Mul))

	cmd.AddCommand(&cobra.Command{
		Use:           "pow <p> <n>",
		Short:         "Polynomial raised to a non-negative integer power",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parsePolys(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid exponent", err)
			}
			return polyOutput(rootOpts, cmd).Success(newPolyResult(ps[0].Pow(uint(n))))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "deriv <p>",
		Short:         "Formal derivative of a polynomial",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parsePolys(args[0])
			if err != nil {
				return err
			}
			return polyOutput(rootOpts, cmd).Success(newPolyResult(ps[0].Derivative()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "eval <p> <x>",
		Short:         "Value of a polynomial at x",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parsePolys(args[0])
			if err != nil {
				return err
			}
			x, err := algebra.ParseFraction(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid point", err)
			}
			v := ps[0].Eval(x)
			res := EvalResults{{
				Expr:   fmt.Sprintf("p(%s)", x),
				Value:  v.String(),
				Approx: approximate(v, rootOpts.Digits),
			}}
			return polyOutput(rootOpts, cmd).Success(res)
		},
	})

	return cmd
}

func parsePolys(args ...string) ([]*poly.Polynomial, error) {
	ps := make([]*poly.Polynomial, len(args))
	for i, a := range args {
		p, err := poly.Parse(a)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("polynomial %d", i+1), err)
		}
		ps[i] = p
	}
	return ps, nil
}

func polyOutput(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
