package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	algebra "github.com/skimberk/computer-algebra"
	"github.com/skimberk/computer-algebra/rpn"
)

// Scenario is a sequence of lines evaluated by one evaluator, so that later
// lines can use % to refer to earlier results. Every line but the last must
// succeed. The last line must produce Want, or fail with an error whose
// message contains Error.
type Scenario struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`
	Want  string   `yaml:"want,omitempty"`
	Error string   `yaml:"error,omitempty"`
}

// ScenarioResult holds the result of a single scenario.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Got    string   `json:"got,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// LoadScenarios reads every YAML document in path as a scenario. Unknown
// fields are rejected.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenarios []Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	for {
		var s Scenario
		err := decoder.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("invalid scenario %d: %w", len(scenarios)+1, err)
		}
		scenarios = append(scenarios, s)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Lines) == 0 {
		return fmt.Errorf("%s: at least one line is required", s.Name)
	}
	if (s.Want == "") == (s.Error == "") {
		return fmt.Errorf("%s: exactly one of want and error is required", s.Name)
	}
	if s.Want != "" {
		if _, err := algebra.ParseFraction(s.Want); err != nil {
			return fmt.Errorf("%s: want: %w", s.Name, err)
		}
	}
	return nil
}

// Run evaluates the scenario with a fresh evaluator.
func (s *Scenario) Run(logger *slog.Logger) ScenarioResult {
	res := ScenarioResult{Name: s.Name}
	e := rpn.New(logger)
	last := len(s.Lines) - 1
	for i, line := range s.Lines[:last] {
		if _, err := e.Eval(line); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: %v", i+1, err))
			return res
		}
	}

	f, err := e.Eval(s.Lines[last])
	switch {
	case s.Error != "" && err == nil:
		res.Got = f.String()
		res.Errors = append(res.Errors, fmt.Sprintf("got %s, want error containing %q", f, s.Error))
	case s.Error != "" && !strings.Contains(err.Error(), s.Error):
		res.Got = err.Error()
		res.Errors = append(res.Errors, fmt.Sprintf("got error %q, want error containing %q", err, s.Error))
	case s.Error != "":
		res.Got = err.Error()
		res.Pass = true
	case err != nil:
		res.Errors = append(res.Errors, fmt.Sprintf("line %d: %v", last+1, err))
	default:
		res.Got = f.String()
		want := algebra.MustParseFraction(s.Want)
		if f.Cmp(want) != 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("got %s, want %s", f, want))
		} else {
			res.Pass = true
		}
	}
	return res
}
