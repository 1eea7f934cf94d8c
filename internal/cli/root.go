// Package cli implements the ratcalc command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/skimberk/computer-algebra/rpn"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Digits  uint32 // significant digits of decimal approximations, 0 for none
	Quiet   bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

const banner = `Exact rational calculator.
Enter expressions in postfix notation, for example:
    1 2 * -3 *
    1000 ! 99 ! /
    1 2 / 2 14 ^ ^
    -3/5 -11/7 +
Binary operators: + - * / ^    Unary operator: ! (factorial)
Literals are integers or fractions p/q, negatives are written -p/q.
% stands for the result of the last expression. Enter quit to quit.
`

// NewRootCommand creates the ratcalc root command. Without a subcommand it
// runs an interactive session on standard input.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ratcalc",
		Short: "Exact rational calculator",
		Long: `ratcalc evaluates postfix expressions over exact fractions of
arbitrary size. Results are always reduced: 479001600/1048576 is 1875/4096.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log each evaluation to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().Uint32Var(&opts.Digits, "digits", 0, "also print decimal approximations with this many significant digits")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "no banner and no prompt")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewPolyCommand(opts))

	return cmd
}

// newLogger returns a text logger on w, at debug level in verbose mode.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runSession(opts *RootOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	s := rpn.NewSession(rpn.New(newLogger(opts, cmd.ErrOrStderr())))
	s.Digits = opts.Digits
	if opts.Quiet {
		s.Prompt = ""
	} else if _, err := io.WriteString(w, banner); err != nil {
		return WrapExitError(ExitCommandError, "banner", err)
	}
	if err := s.Run(cmd.InOrStdin(), w); err != nil {
		return WrapExitError(ExitCommandError, "session", err)
	}
	return nil
}
