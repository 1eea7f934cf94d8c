package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// CheckResult holds the overall result of a check run.
type CheckResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

func (r CheckResult) String() string {
	var b strings.Builder
	for _, s := range r.Scenarios {
		if s.Pass {
			fmt.Fprintf(&b, "✓ %s\n", s.Name)
			continue
		}
		fmt.Fprintf(&b, "✗ %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	fmt.Fprintf(&b, "\n%d passed, %d failed, %d total", r.Passed, r.Failed, r.Total)
	return b.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenarios.yaml>...",
		Short: "Run expression scenarios",
		Long: `Run the scenarios of one or more YAML files. A file holds one
scenario per YAML document:

  name: last result
  lines:
    - "-3/5 -11/7 +"
    - "% 2 /"
  want: "-38/35"

A scenario may expect a failure instead, with error: "division by zero".

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (missing or malformed files)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, files []string, cmd *cobra.Command) error {
	var scenarios []Scenario
	for _, f := range files {
		s, err := LoadScenarios(f)
		if err != nil {
			return WrapExitError(ExitCommandError, f, err)
		}
		scenarios = append(scenarios, s...)
	}

	logger := newLogger(opts, cmd.ErrOrStderr())
	result := CheckResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarios)),
		Total:     len(scenarios),
	}
	for i := range scenarios {
		res := scenarios[i].Run(logger)
		result.Scenarios = append(result.Scenarios, res)
		if res.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if result.Failed > 0 {
		exitErr := NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
		if err := out.Failure(result, exitErr); err != nil {
			return err
		}
		return exitErr
	}
	return out.Success(result)
}
