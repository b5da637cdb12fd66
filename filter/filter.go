package filter

import (
	"strings"
	"time"

	"github.com/lowher/lowher/casing"
	"github.com/lowher/lowher/codespan"
)

// Filter applies the lowher pipeline: code spans out, prose casing
// rewritten, code spans back in.
type Filter struct {
	// PreserveCapitalized keeps words whose first character is uppercase,
	// unless they open a sentence. Default: true via New.
	PreserveCapitalized bool
	// PreserveSentenceCase keeps the first word of each sentence and skips
	// the forced lowercasing of the sentence's first character.
	PreserveSentenceCase bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a Filter with default settings: capitalized words preserved,
// sentence case not.
func New() *Filter {
	return &Filter{PreserveCapitalized: true}
}

// log returns the configured logger, or a no-op logger if none is set.
func (f *Filter) log() Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return NopLogger{}
}

// Result contains the transformed text and metadata about one run.
//
// Callers should treat a Result as read-only; Spans in particular aliases
// the internal extraction record.
type Result struct {
	// Output is the transformed text.
	Output string
	// SourcePath is the file path or URL the input came from. Empty for
	// direct input unless WithSourceName set a display name.
	SourcePath string
	// Spans are the code spans found in the input, in discovery order.
	Spans []codespan.Span
	// Stats contains statistical information about the run.
	Stats Stats
	// LoadTime is the time taken to load the source data (file, URL, etc.).
	// Zero for direct input.
	LoadTime time.Duration
	// TransformTime is the time taken by extract, transform, and restore.
	TransformTime time.Duration
}

// Stats summarizes one run.
type Stats struct {
	// SourceBytes is the input length in bytes.
	SourceBytes int
	// OutputBytes is the output length in bytes.
	OutputBytes int
	// CodeSpans is the number of code spans isolated from the input.
	CodeSpans int
	// FencedSpans counts the triple-backtick spans among CodeSpans.
	FencedSpans int
	// InlineSpans counts the single-backtick spans among CodeSpans.
	InlineSpans int
	// Changed reports whether the output differs from the input.
	Changed bool
}

// Process runs the pipeline on in-memory text. It is a pure function of the
// Filter's settings and the text: any Unicode input is accepted and there is
// no error to return. Code span content is restored verbatim, so output
// length can differ from input length only through case mappings.
func (f *Filter) Process(text string) *Result {
	start := time.Now()

	masked, spans := codespan.Extract(text)
	f.log().Debug("extracted code spans",
		"count", len(spans), "masked_bytes", len(masked))

	transformed := casing.Transform(masked, casing.Options{
		PreserveCapitalized:  f.PreserveCapitalized,
		PreserveSentenceCase: f.PreserveSentenceCase,
	})

	output := codespan.Restore(transformed, spans)
	result := &Result{
		Output:        output,
		Spans:         spans,
		Stats:         buildStats(text, output, spans),
		TransformTime: time.Since(start),
	}
	f.log().Debug("transformed text",
		"source_bytes", result.Stats.SourceBytes,
		"output_bytes", result.Stats.OutputBytes,
		"changed", result.Stats.Changed)
	return result
}

func buildStats(input, output string, spans []codespan.Span) Stats {
	stats := Stats{
		SourceBytes: len(input),
		OutputBytes: len(output),
		CodeSpans:   len(spans),
		Changed:     output != input,
	}
	for _, span := range spans {
		if span.Fenced() {
			stats.FencedSpans++
		} else {
			stats.InlineSpans++
		}
	}
	return stats
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
