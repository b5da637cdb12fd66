// Package casing rewrites word casing sentence by sentence.
//
// Transform lowercases prose while leaving selected casing untouched:
// acronyms always, capitalized words and sentence-initial words depending on
// Options. It operates on plain text; code content should be masked first
// with the codespan package so it is never rewritten.
//
//	out := casing.Transform("NASA sent John Doe home.", casing.Options{
//		PreserveCapitalized: true,
//	})
//	// out == "nASA sent John Doe home."
//
// # Sentences and Words
//
// A sentence starts at the beginning of the text, or at an uppercase letter
// preceded by a whitespace run that follows a terminator (period,
// exclamation mark, or question mark), and runs through the next terminator
// or the end of the text. Anything outside a sentence, leading fragments,
// text after a terminator that never reaches an uppercase letter, or an
// uppercase letter jammed against a terminator with no whitespace, is filler
// and passes through unchanged.
//
// A word is a maximal run of letters, digits, and underscores. Each word is
// emitted by the first matching rule:
//
//  1. every letter in the word is uppercase (vacuously true for words with
//     no letters) - emitted unchanged
//  2. Options.PreserveCapitalized, the word starts with an uppercase letter,
//     and it is not the first word of its sentence - emitted unchanged
//  3. Options.PreserveSentenceCase and the word is the first word of its
//     sentence - emitted unchanged
//  4. otherwise - fully lowercased
//
// When Options.PreserveSentenceCase is false the first character of each
// transformed sentence is forced lowercase even if rule 1 preserved it, so a
// sentence-initial acronym comes out as, say, "nASA". That interaction is
// kept for compatibility with the tool's historical output.
//
// Lowercasing uses golang.org/x/text/cases without locale tailorings.
package casing
