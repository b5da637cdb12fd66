//go:build integration

package corpus

import (
	"strings"
	"testing"

	"github.com/lowher/lowher/filter"
)

// flagCombos enumerates every filter flag combination.
var flagCombos = []struct {
	name                 string
	preserveCapitalized  bool
	preserveSentenceCase bool
}{
	{"default", true, false},
	{"lowercase_all", false, false},
	{"sentence_case", true, true},
	{"both_flags", false, true},
}

// newFilter builds a filter for one flag combination.
func newFilter(preserveCapitalized, preserveSentenceCase bool) *filter.Filter {
	return &filter.Filter{
		PreserveCapitalized:  preserveCapitalized,
		PreserveSentenceCase: preserveSentenceCase,
	}
}

// assertSpansIntact checks that every extracted code span survived verbatim.
func assertSpansIntact(t *testing.T, result *filter.Result) {
	t.Helper()
	for _, span := range result.Spans {
		if !strings.Contains(result.Output, span.Text) {
			t.Errorf("code span %d was altered: %q not found in output", span.Index, span.Text)
		}
	}
}
