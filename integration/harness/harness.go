//go:build integration

// Package harness provides the integration test framework for lowher.
// It enables declarative scenario-driven testing via YAML files.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lowher/lowher/filter"
)

// Scenario represents a complete integration test scenario.
type Scenario struct {
	// Name is a short, descriptive name for the scenario
	Name string `yaml:"name"`
	// Description provides additional context about what the scenario tests
	Description string `yaml:"description,omitempty"`
	// Input is the inline source text to filter
	Input string `yaml:"input,omitempty"`
	// InputFile is the name of a source file from the inputs/ directory
	InputFile string `yaml:"input-file,omitempty"`
	// Cases is the list of flag combinations to run against the input
	Cases []Case `yaml:"cases"`
	// Skip provides a reason to skip this scenario (if set, scenario is skipped)
	Skip string `yaml:"skip,omitempty"`
	// ExpectedFailure marks this scenario as a known failing case
	ExpectedFailure string `yaml:"expected-failure,omitempty"`

	// filePath is the path to the scenario file (set by loader)
	filePath string
}

// Case represents one filter run with a specific flag combination.
type Case struct {
	// Name is a short, descriptive name for the case
	Name string `yaml:"name"`
	// LowercaseAll disables preservation of capitalized words
	LowercaseAll bool `yaml:"lowercase-all,omitempty"`
	// PreserveSentenceCase keeps the first word of each sentence intact
	PreserveSentenceCase bool `yaml:"preserve-sentence-case,omitempty"`
	// Expect is the exact output text expected from the run
	Expect string `yaml:"expect,omitempty"`
	// Unchanged asserts the output is byte-identical to the input
	Unchanged bool `yaml:"unchanged,omitempty"`
	// Assert holds additional checks on the result
	Assert Assertion `yaml:"assert,omitempty"`
}

// Assertion defines optional checks on a filter result.
type Assertion struct {
	// CodeSpans asserts the total number of code spans found
	CodeSpans *int `yaml:"code-spans,omitempty"`
	// FencedSpans asserts the number of triple-backtick spans
	FencedSpans *int `yaml:"fenced-spans,omitempty"`
	// InlineSpans asserts the number of single-backtick spans
	InlineSpans *int `yaml:"inline-spans,omitempty"`
	// Changed asserts whether the output differs from the input
	Changed *bool `yaml:"changed,omitempty"`
	// Contains asserts that each substring appears in the output
	Contains []string `yaml:"contains,omitempty"`
	// NotContains asserts that each substring is absent from the output
	NotContains []string `yaml:"not-contains,omitempty"`
}

// CaseResult contains the result of running a single case.
type CaseResult struct {
	// CaseName is the name of the case that was executed
	CaseName string
	// Success indicates whether the case passed all checks
	Success bool
	// Error is the first failure encountered
	Error error
	// Duration is how long the case took to execute
	Duration time.Duration
	// Result is the filter result for the case
	Result *filter.Result
	// AssertionResults contains results of the individual checks
	AssertionResults []AssertionResult
}

// AssertionResult records the outcome of a single check.
type AssertionResult struct {
	// Passed indicates whether the check passed
	Passed bool
	// Message provides details on failure
	Message string
	// Expected is the expected value
	Expected any
	// Actual is the actual value
	Actual any
}

// ScenarioResult contains the result of running a complete scenario.
type ScenarioResult struct {
	// Scenario is the scenario that was executed
	Scenario *Scenario
	// CaseResults contains results for each case
	CaseResults []CaseResult
	// Success indicates whether every case passed
	Success bool
	// Duration is the total scenario execution time
	Duration time.Duration
	// FailedCase is the name of the first case that failed (if any)
	FailedCase string
	// Error is the first error encountered
	Error error
}

// RunScenario executes a complete scenario and returns the result.
func RunScenario(scenario *Scenario, inputsDir string) *ScenarioResult {
	start := time.Now()
	result := &ScenarioResult{
		Scenario:    scenario,
		CaseResults: make([]CaseResult, 0, len(scenario.Cases)),
		Success:     true,
	}

	input, err := resolveInput(scenario, inputsDir)
	if err != nil {
		result.Success = false
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}

	for i := range scenario.Cases {
		cr := RunCase(&scenario.Cases[i], input)
		result.CaseResults = append(result.CaseResults, cr)
		if !cr.Success && result.Success {
			result.Success = false
			result.FailedCase = cr.CaseName
			result.Error = cr.Error
		}
	}

	result.Duration = time.Since(start)
	return result
}

// resolveInput returns the scenario's source text, reading the input file
// when one is named.
func resolveInput(scenario *Scenario, inputsDir string) (string, error) {
	if scenario.InputFile != "" {
		path := filepath.Join(inputsDir, scenario.InputFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("harness: failed to read input file %s: %w", path, err)
		}
		return string(data), nil
	}
	return scenario.Input, nil
}

// RunCase runs the filter for one flag combination and evaluates its checks.
func RunCase(c *Case, input string) CaseResult {
	start := time.Now()
	cr := CaseResult{
		CaseName: c.Name,
		Success:  true,
	}

	f := &filter.Filter{
		PreserveCapitalized:  !c.LowercaseAll,
		PreserveSentenceCase: c.PreserveSentenceCase,
	}
	cr.Result = f.Process(input)
	cr.Duration = time.Since(start)

	cr.AssertionResults = checkCase(c, input, cr.Result)
	for _, ar := range cr.AssertionResults {
		if !ar.Passed {
			cr.Success = false
			cr.Error = fmt.Errorf("assertion failed: %s", ar.Message)
			break
		}
	}

	return cr
}

// checkCase evaluates all checks for a case, including the implicit
// span-integrity check that every extracted code span survives verbatim.
func checkCase(c *Case, input string, result *filter.Result) []AssertionResult {
	var results []AssertionResult

	if c.Expect != "" {
		results = append(results, AssertionResult{
			Passed:   result.Output == c.Expect,
			Message:  fmt.Sprintf("case %q: output mismatch", c.Name),
			Expected: c.Expect,
			Actual:   result.Output,
		})
	}

	if c.Unchanged {
		results = append(results, AssertionResult{
			Passed:   result.Output == input && !result.Stats.Changed,
			Message:  fmt.Sprintf("case %q: expected output identical to input", c.Name),
			Expected: input,
			Actual:   result.Output,
		})
	}

	a := &c.Assert
	if a.CodeSpans != nil {
		results = append(results, intCheck(c.Name, "code spans", *a.CodeSpans, result.Stats.CodeSpans))
	}
	if a.FencedSpans != nil {
		results = append(results, intCheck(c.Name, "fenced spans", *a.FencedSpans, result.Stats.FencedSpans))
	}
	if a.InlineSpans != nil {
		results = append(results, intCheck(c.Name, "inline spans", *a.InlineSpans, result.Stats.InlineSpans))
	}
	if a.Changed != nil {
		results = append(results, AssertionResult{
			Passed:   result.Stats.Changed == *a.Changed,
			Message:  fmt.Sprintf("case %q: changed flag mismatch", c.Name),
			Expected: *a.Changed,
			Actual:   result.Stats.Changed,
		})
	}
	for _, sub := range a.Contains {
		results = append(results, AssertionResult{
			Passed:   strings.Contains(result.Output, sub),
			Message:  fmt.Sprintf("case %q: output does not contain %q", c.Name, sub),
			Expected: sub,
			Actual:   result.Output,
		})
	}
	for _, sub := range a.NotContains {
		results = append(results, AssertionResult{
			Passed:   !strings.Contains(result.Output, sub),
			Message:  fmt.Sprintf("case %q: output must not contain %q", c.Name, sub),
			Expected: sub,
			Actual:   result.Output,
		})
	}

	// Every code span must reappear verbatim, regardless of flags.
	for _, span := range result.Spans {
		if !strings.Contains(result.Output, span.Text) {
			results = append(results, AssertionResult{
				Passed:   false,
				Message:  fmt.Sprintf("case %q: code span %d was altered", c.Name, span.Index),
				Expected: span.Text,
				Actual:   result.Output,
			})
		}
	}

	return results
}

func intCheck(caseName, what string, expected, actual int) AssertionResult {
	return AssertionResult{
		Passed:   actual == expected,
		Message:  fmt.Sprintf("case %q: expected %d %s, got %d", caseName, expected, what, actual),
		Expected: expected,
		Actual:   actual,
	}
}
