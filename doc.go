// Package lowher provides a text-casing filter that lowercases prose while
// keeping the parts that carry meaning in their original case.
//
// lowher rewrites Capitalized Prose the way chat and note-taking apps tend to
// produce it into calm lowercase text, without touching all-uppercase
// acronyms, backtick code spans, or (by default) capitalized words inside a
// sentence.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - codespan: Isolate backtick code spans so no other stage can touch them
//   - casing: Rewrite word casing sentence by sentence
//   - filter: Orchestrate the full pipeline and load input from files, URLs, readers, and strings
//
// On top of the library, cmd/lowher provides a command-line interface and an
// MCP server exposing the filter to editor assistants.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/lowher/lowher
//
// # Quick Start
//
// Filter a string in memory:
//
//	import "github.com/lowher/lowher/filter"
//
//	f := filter.New()
//	result := f.Process("Hello World. NASA Called `BackTicks` stay.")
//	fmt.Println(result.Output)
//	// hello World. nASA Called `BackTicks` stay.
//
// Filter a file:
//
//	result, err := filter.ProcessWithOptions(
//		filter.WithFilePath("notes.md"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// # Codespan Package
//
// The codespan package finds inline (`...`) and fenced (```...```) spans and
// replaces each with an indexed placeholder token, so downstream stages see
// prose only. After transformation the placeholders are swapped back for the
// original span text, byte for byte.
//
// Key features:
//
//   - Single left-to-right scan, no backtracking
//   - Fenced spans matched before inline spans at the same offset
//   - Unclosed backticks treated as ordinary text
//   - Placeholder tokens built from Unicode noncharacters, so real documents cannot collide with them
//
// Example:
//
//	masked, spans := codespan.Extract("run `Make Test` now")
//	for _, span := range spans {
//		fmt.Printf("%d: %s (fenced=%t)\n", span.Index, span.Text, span.Fenced())
//	}
//	restored := codespan.Restore(masked, spans)
//
// See the codespan package documentation for more details.
//
// # Casing Package
//
// The casing package rewrites word casing one sentence at a time. A sentence
// opens at an uppercase letter that starts the text or follows a terminator
// (period, exclamation mark, or question mark) plus whitespace, and runs
// through the next terminator. Text outside sentences passes through
// unchanged.
//
// Within a sentence, each word is decided by the first matching rule:
//
//   - Words whose letters are all uppercase are kept (acronyms)
//   - With PreserveCapitalized, a capitalized word that is not the sentence's first word is kept
//   - With PreserveSentenceCase, the sentence's first word is kept
//   - Everything else is lowercased
//
// Unless PreserveSentenceCase is set, the sentence's first character is
// forced to lowercase even when a rule kept the word, which is how NASA at a
// sentence start becomes nASA.
//
// Example:
//
//	out := casing.Transform("The Big Launch. IT Worked!", casing.Options{
//		PreserveCapitalized: true,
//	})
//	// out == "the Big Launch. iT Worked!"
//
// See the casing package documentation for more details.
//
// # Filter Package
//
// The filter package ties the stages together: extract code spans, transform
// the remaining prose, restore the spans, and report statistics about the
// run. Input can come from a file path, an http/https URL, an io.Reader, a
// byte slice, or a string.
//
// Key features:
//
//   - Functional options for input sources and flags
//   - Per-run statistics (byte counts, span counts, changed flag, timings)
//   - Optional structured logging through a pluggable Logger
//   - UTF-8 validation before any transformation
//
// Example:
//
//	result, err := filter.ProcessWithOptions(
//		filter.WithFilePath("https://example.com/notes.md"),
//		filter.WithPreserveCapitalized(false),
//		filter.WithUserAgent("mytool/1.0"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Spans kept: %d\n", result.Stats.CodeSpans)
//
// See the filter package documentation for more details.
//
// # Common Workflows
//
// Filter stdin to stdout (the CLI does exactly this):
//
//	result, err := filter.ProcessWithOptions(
//		filter.WithReader(os.Stdin),
//		filter.WithSourceName("<stdin>"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.WriteString(result.Output)
//
// Reuse one Filter for many in-memory documents:
//
//	f := &filter.Filter{PreserveCapitalized: true}
//	for _, doc := range docs {
//		fmt.Println(f.Process(doc).Output)
//	}
//
// Keep sentence leads while lowering everything else:
//
//	result, err := filter.ProcessWithOptions(
//		filter.WithString(text),
//		filter.WithPreserveCapitalized(false),
//		filter.WithPreserveSentenceCase(true),
//	)
//
// # Security Considerations
//
// The packages and the CLI follow conservative defaults:
//
//   - Output files are created with restrictive permissions (0600)
//   - The CLI refuses to write through a symlinked output path
//   - URL input uses an explicit 30 second timeout and a versioned User-Agent
//   - Input must be valid UTF-8; binary data is rejected before processing
//   - The MCP server caps input sizes and can disable file access entirely
//
// # Performance Tips
//
// For best performance:
//
//   - Use Filter.Process directly for in-memory strings; the functional options add input loading you may not need
//   - A Filter is stateless and safe for concurrent use; one instance can serve all goroutines
//   - Result.Spans aliases the extraction record, so treat a Result as read-only
//
// # Error Handling
//
// The library follows consistent error handling patterns:
//
//   - File and network errors are wrapped with a "filter:" prefix and unwrap to the underlying error
//   - Option validation fails fast before any input is read
//   - Transformation itself cannot fail; Filter.Process returns no error
//   - Result.Stats.Changed reports whether the output differs from the input
//
// # Version Compatibility
//
// The public API follows semantic versioning:
//
//   - Major version changes may include breaking API changes
//   - Minor version changes add functionality in a backward-compatible manner
//   - Patch version changes include backward-compatible bug fixes
//
// # Command-Line Interface
//
// In addition to the library packages, lowher provides a command-line
// interface:
//
//	# Filter a file to stdout
//	lowher notes.md
//
//	# Filter stdin, lowering capitalized words too
//	cat notes.md | lowher -a
//
//	# Keep sentence-initial capitals and write to a file
//	lowher -s -o calm.md notes.md
//
//	# Emit a JSON report instead of plain text
//	lowher -f json --stats notes.md
//
// Install the CLI:
//
//	go install github.com/lowher/lowher/cmd/lowher@latest
//
// # MCP Server
//
// The CLI doubles as an MCP server over stdio when started with --mcp. It
// exposes two tools: lower, which filters text, and code_spans, which lists
// the backtick spans found in a document. Server limits are configured
// through LOWHER_MCP_* environment variables; see the internal/mcpserver
// package for the full list.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/lowher/lowher
//   - Go Package Documentation: https://pkg.go.dev/github.com/lowher/lowher
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package lowher
