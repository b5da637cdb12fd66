//go:build integration

package harness

import (
	"strings"
	"testing"

	"github.com/lowher/lowher/filter"
)

// AssertOutput asserts that a filter result produced the expected text.
func AssertOutput(t *testing.T, result *filter.Result, expected string) {
	t.Helper()
	if result.Output != expected {
		t.Errorf("output mismatch\nexpected: %q\nactual:   %q", expected, result.Output)
	}
}

// AssertUnchanged asserts that the filter left the input untouched.
func AssertUnchanged(t *testing.T, result *filter.Result, input string) {
	t.Helper()
	if result.Output != input {
		t.Errorf("expected output identical to input\ninput:  %q\noutput: %q", input, result.Output)
	}
	if result.Stats.Changed {
		t.Error("expected Changed=false for identical output")
	}
}

// AssertChanged asserts that the filter modified the input.
func AssertChanged(t *testing.T, result *filter.Result) {
	t.Helper()
	if !result.Stats.Changed {
		t.Error("expected Changed=true, but output matches input")
	}
}

// AssertSpanCounts asserts the code span statistics of a result.
func AssertSpanCounts(t *testing.T, result *filter.Result, total, fenced, inline int) {
	t.Helper()
	if result.Stats.CodeSpans != total {
		t.Errorf("expected %d code spans, got %d", total, result.Stats.CodeSpans)
	}
	if result.Stats.FencedSpans != fenced {
		t.Errorf("expected %d fenced spans, got %d", fenced, result.Stats.FencedSpans)
	}
	if result.Stats.InlineSpans != inline {
		t.Errorf("expected %d inline spans, got %d", inline, result.Stats.InlineSpans)
	}
}

// AssertSpansIntact asserts that every extracted code span appears verbatim
// in the output.
func AssertSpansIntact(t *testing.T, result *filter.Result) {
	t.Helper()
	for _, span := range result.Spans {
		if !strings.Contains(result.Output, span.Text) {
			t.Errorf("code span %d was altered: %q not found in output", span.Index, span.Text)
		}
	}
}
