// Package codespan isolates code regions from prose so case transformation
// never touches code content.
//
// Extract scans text left to right and replaces every fenced
// (triple-backtick) or inline (single-backtick) code span with a placeholder
// token, returning the masked text together with the extracted spans in
// discovery order. Restore performs the inverse substitution. The two
// operations round-trip exactly:
//
//	masked, spans := codespan.Extract(text)
//	codespan.Restore(masked, spans) == text
//
// # Matching Rules
//
// At each backtick the scanner attempts the fenced form first: the shortest
// block that opens with ``` and closes with the next ```, with any
// characters, including newlines, in between. If no closing fence exists,
// the inline form is attempted: a single backtick closed by the very next
// backtick, with no backticks inside (empty content is a valid span).
// Matches never overlap; after a match the scan resumes at its end. A
// backtick that closes neither form is ordinary text. Unbalanced backticks
// are therefore never an error, they simply fail to form a span.
//
// # Placeholders
//
// A placeholder is the Unicode noncharacter U+FDD0, the span's decimal
// index, and the noncharacter U+FDD1. Noncharacters cannot occur in
// ordinary prose, so a placeholder never collides with document text, and
// the digits between the markers pass through case transformation
// untouched. The index counter is scoped to a single Extract call.
//
// # Related Packages
//
// The isolator is composed with the case transformer by the filter package:
//   - [github.com/lowher/lowher/casing] - Case transformation of masked text
//   - [github.com/lowher/lowher/filter] - Extract, transform, restore pipeline
package codespan
