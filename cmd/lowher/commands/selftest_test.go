package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSelfTest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HandleSelfTest(&buf))
	output := buf.String()

	t.Run("prints all sections", func(t *testing.T) {
		assert.Contains(t, output, "Original text:")
		assert.Contains(t, output, "Processed text (preserving capitalized words):")
		assert.Contains(t, output, "Processed text (lowercasing all words):")
		assert.Contains(t, output, "Processed text (preserving sentence case):")
	})

	t.Run("code block survives every mode", func(t *testing.T) {
		// Original plus three processed renderings
		assert.Equal(t, 4, strings.Count(output, "console.log('HELLO WORLD');"))
	})

	t.Run("acronyms survive every mode", func(t *testing.T) {
		assert.Equal(t, 4, strings.Count(output, "ACRONYMS like NASA"))
	})

	t.Run("capitalized words react to the mode", func(t *testing.T) {
		assert.Contains(t, output, "proper Nouns like John Doe")
		assert.Contains(t, output, "proper nouns like john doe")
	})
}
