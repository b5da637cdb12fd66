//go:build integration

package harness

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// PrintCaseResult prints the result of a single case to the test output.
func PrintCaseResult(t *testing.T, c *Case, result *CaseResult, caseNum, totalCases int) {
	t.Helper()

	var status string
	if result.Success {
		status = "PASS"
	} else {
		status = "FAIL"
	}

	caseInfo := fmt.Sprintf("[%d/%d] %s", caseNum, totalCases, c.Name)
	duration := formatDuration(result.Duration)

	var extra string
	if result.Result != nil {
		st := result.Result.Stats
		extra = fmt.Sprintf(" - %d -> %d bytes, %d spans (%d fenced, %d inline), changed=%t",
			st.SourceBytes, st.OutputBytes, st.CodeSpans, st.FencedSpans, st.InlineSpans, st.Changed)
	}

	t.Logf("    %s %s (%s)%s", status, caseInfo, duration, extra)

	if !result.Success && result.Error != nil {
		t.Logf("        Error: %v", result.Error)
	}

	for _, ar := range result.AssertionResults {
		if !ar.Passed {
			t.Logf("        Assertion failed: %s", ar.Message)
			if ar.Expected != nil {
				t.Logf("          Expected: %v", ar.Expected)
			}
			if ar.Actual != nil {
				t.Logf("          Actual:   %v", ar.Actual)
			}
		}
	}
}

// PrintScenarioResult prints a summary of the entire scenario execution.
func PrintScenarioResult(t *testing.T, result *ScenarioResult) {
	t.Helper()

	var status string
	if result.Success {
		status = "PASS"
	} else {
		status = "FAIL"
	}

	t.Logf("")
	t.Logf("  Scenario: %s (%s)", status, formatDuration(result.Duration))

	if !result.Success && result.FailedCase != "" {
		t.Logf("  Failed at case: %s", result.FailedCase)
		if result.Error != nil {
			t.Logf("  Error: %v", result.Error)
		}
	}
}

// PrintScenarioHeader prints the header for a scenario.
func PrintScenarioHeader(t *testing.T, scenario *Scenario) {
	t.Helper()

	t.Logf("")
	t.Logf("Scenario: %s", scenario.Name)
	if scenario.Description != "" {
		t.Logf("  %s", scenario.Description)
	}
	if scenario.InputFile != "" {
		t.Logf("  Input file: %s", scenario.InputFile)
	}
	t.Logf("")
}

// PrintSummary prints a summary of all scenario results.
func PrintSummary(t *testing.T, results []*ScenarioResult, duration time.Duration) {
	t.Helper()

	passed := 0
	failed := 0
	skipped := 0

	for _, r := range results {
		if r.Scenario.Skip != "" {
			skipped++
		} else if r.Success {
			passed++
		} else {
			failed++
		}
	}

	t.Logf("")
	t.Logf("%s", strings.Repeat("=", 80))
	t.Logf("INTEGRATION TEST SUMMARY")
	t.Logf("%s", strings.Repeat("=", 80))
	t.Logf("Scenarios:  %d passed, %d failed, %d skipped", passed, failed, skipped)
	t.Logf("Duration:   %s", formatDuration(duration))
	t.Logf("%s", strings.Repeat("=", 80))

	if failed > 0 {
		t.Logf("")
		t.Logf("Failed scenarios:")
		for _, r := range results {
			if !r.Success && r.Scenario.Skip == "" {
				t.Logf("  - %s: %v", r.Scenario.Name, r.Error)
			}
		}
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
