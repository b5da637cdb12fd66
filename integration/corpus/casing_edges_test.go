//go:build integration

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCorpus_CasingEdges_ColonDoesNotTerminate verifies that a colon keeps
// the sentence open, so words after it are still mid-sentence.
func TestCorpus_CasingEdges_ColonDoesNotTerminate(t *testing.T) {
	const doc = "Note: The Following Items Matter."

	result := newFilter(true, false).Process(doc)
	assert.Equal(t, "note: The Following Items Matter.", result.Output)

	result = newFilter(false, false).Process(doc)
	assert.Equal(t, "note: the following items matter.", result.Output)
}

// TestCorpus_CasingEdges_NoTerminatorRunsToEnd verifies that a sentence with
// no terminator extends to the end of the document.
func TestCorpus_CasingEdges_NoTerminatorRunsToEnd(t *testing.T) {
	const doc = "The Final Sentence Never Ends"

	result := newFilter(true, false).Process(doc)
	assert.Equal(t, "the Final Sentence Never Ends", result.Output)

	result = newFilter(false, false).Process(doc)
	assert.Equal(t, "the final sentence never ends", result.Output)
}

// TestCorpus_CasingEdges_ConsecutiveTerminators verifies that each terminator
// closes its sentence and the leftovers are filler.
func TestCorpus_CasingEdges_ConsecutiveTerminators(t *testing.T) {
	const doc = "Really?! Yes. Now!!"

	result := newFilter(true, false).Process(doc)
	assert.Equal(t, "really?! yes. now!!", result.Output)
}

// TestCorpus_CasingEdges_MidWordCapitals verifies that a lowercase-led word
// is lowered entirely inside a sentence, and that lowercase-led text after a
// terminator never opens a sentence at all.
func TestCorpus_CasingEdges_MidWordCapitals(t *testing.T) {
	const doc = "The iPhone Launch went Fine. iPads Sold Out."

	result := newFilter(true, false).Process(doc)
	assert.Equal(t, "the iphone Launch went Fine. iPads Sold Out.", result.Output)
}
