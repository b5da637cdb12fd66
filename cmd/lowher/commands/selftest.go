package commands

import (
	"io"

	"github.com/lowher/lowher/filter"
)

// selfTestSample exercises acronyms, capitalized words, inline code, a
// fenced block, an email address, and a URL.
const selfTestSample = "This is a TEST String with ACRONYMS like NASA and proper Nouns like John Doe. " +
	"Here's some `inline code` and a code block:\n" +
	"```\n" +
	"function testFunction() {\n" +
	"    console.log('HELLO WORLD');\n" +
	"}\n" +
	"```\n" +
	"More TEXT here. Let's include an email: John.Doe@Example.com and a URL: https://www.Example.com."

// HandleSelfTest prints a built-in demonstration of each filtering mode.
func HandleSelfTest(w io.Writer) error {
	Writef(w, "Original text:\n%s\n\n", selfTestSample)

	runs := []struct {
		caption              string
		preserveCapitalized  bool
		preserveSentenceCase bool
	}{
		{"preserving capitalized words", true, false},
		{"lowercasing all words", false, false},
		{"preserving sentence case", true, true},
	}

	for i, run := range runs {
		f := &filter.Filter{
			PreserveCapitalized:  run.preserveCapitalized,
			PreserveSentenceCase: run.preserveSentenceCase,
		}
		result := f.Process(selfTestSample)
		Writef(w, "Processed text (%s):\n%s\n", run.caption, result.Output)
		if i < len(runs)-1 {
			Writef(w, "\n")
		}
	}

	return nil
}
