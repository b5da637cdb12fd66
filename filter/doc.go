// Package filter composes the lowher pipeline: code spans are masked,
// prose casing is rewritten, and the spans are restored verbatim.
//
// # Quick Start
//
// Filter a file using functional options:
//
//	result, err := filter.ProcessWithOptions(
//		filter.WithFilePath("notes.md"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// Or use a reusable Filter instance on in-memory text:
//
//	f := filter.New()
//	f.PreserveSentenceCase = true
//	result := f.Process("NASA sent John Doe home.")
//
// # Input Sources
//
// ProcessWithOptions accepts exactly one input source: WithFilePath (a local
// path or an http/https URL), WithReader, WithBytes, or WithString. File and
// URL reads surface I/O failures immediately; input that is not valid UTF-8
// is rejected. The transformation itself cannot fail, so Process returns no
// error: unbalanced backticks and odd punctuation are ordinary text, not
// malformed input.
//
// # Concurrency
//
// A Filter is read-only during Process and invocations share no state, so a
// single Filter may be used from concurrent goroutines on different
// documents without synchronization.
//
// # Related Packages
//
//   - [github.com/lowher/lowher/codespan] - Code span extraction and restore
//   - [github.com/lowher/lowher/casing] - Sentence and word casing rules
package filter
