package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options selects which casing Transform leaves untouched.
type Options struct {
	// PreserveCapitalized keeps words whose first character is uppercase,
	// unless they open a sentence.
	PreserveCapitalized bool
	// PreserveSentenceCase keeps the first word of each sentence and skips
	// the forced lowercasing of the sentence's first character.
	PreserveSentenceCase bool
}

// Transform rewrites word casing sentence by sentence per the package rules.
// Any Unicode text is accepted; text outside sentences passes through
// unchanged. Transform is a pure function and safe to call concurrently.
func Transform(text string, opts Options) string {
	t := transformer{opts: opts, lower: cases.Lower(language.Und)}
	return t.run(text)
}

// transformer carries the options and the caser through one Transform call.
// cases.Caser is stateful, so a transformer must not be shared.
type transformer struct {
	opts  Options
	lower cases.Caser
}

func (t transformer) run(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	i := 0
	for i < len(text) {
		start, end := nextSentence(text, i)
		if start < 0 {
			out.WriteString(text[i:])
			return out.String()
		}
		out.WriteString(text[i:start])
		sentence := t.sentence(text[start:end])
		if !t.opts.PreserveSentenceCase {
			sentence = t.lowerFirst(sentence)
		}
		out.WriteString(sentence)
		i = end
	}
	return out.String()
}

// sentence transforms one sentence, copying non-word filler verbatim and
// deciding each word by rule precedence.
func (t transformer) sentence(sentence string) string {
	var out strings.Builder
	out.Grow(len(sentence))
	first := true
	i := 0
	for i < len(sentence) {
		r, size := utf8.DecodeRuneInString(sentence[i:])
		if !isWordChar(r) {
			out.WriteString(sentence[i : i+size])
			i += size
			continue
		}
		j := i + size
		for j < len(sentence) {
			r2, size2 := utf8.DecodeRuneInString(sentence[j:])
			if !isWordChar(r2) {
				break
			}
			j += size2
		}
		out.WriteString(t.word(sentence[i:j], first))
		first = false
		i = j
	}
	return out.String()
}

// word decides one word's casing. The rules apply in order; the first match
// wins.
func (t transformer) word(word string, firstOfSentence bool) string {
	switch {
	case allUpper(word):
		return word
	case t.opts.PreserveCapitalized && !firstOfSentence && startsUpper(word):
		return word
	case t.opts.PreserveSentenceCase && firstOfSentence:
		return word
	default:
		return t.lower.String(word)
	}
}

// lowerFirst forces the first character of an assembled sentence to
// lowercase. Sentences open with an uppercase letter, so this only rewrites
// a character rule 1 preserved.
func (t transformer) lowerFirst(sentence string) string {
	r, size := utf8.DecodeRuneInString(sentence)
	if !unicode.IsUpper(r) {
		return sentence
	}
	return t.lower.String(sentence[:size]) + sentence[size:]
}

// nextSentence returns the bounds of the first sentence opening at or after
// from, or (-1, -1) when the rest of the text is filler. The end bound is
// one past the sentence's terminator, or the end of the text.
func nextSentence(text string, from int) (int, int) {
	for i := from; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsUpper(r) && sentenceStartsAt(text, i) {
			return i, sentenceEnd(text, i)
		}
		i += size
	}
	return -1, -1
}

// sentenceStartsAt reports whether offset i opens a sentence: the start of
// the text, or a terminator followed by whitespace immediately before i.
func sentenceStartsAt(text string, i int) bool {
	if i == 0 {
		return true
	}
	j := i
	sawSpace := false
	for j > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:j])
		if !unicode.IsSpace(r) {
			break
		}
		sawSpace = true
		j -= size
	}
	if !sawSpace || j == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:j])
	return isTerminator(r)
}

func sentenceEnd(text string, start int) int {
	// Terminators are ASCII, so a byte scan is UTF-8 safe.
	for i := start; i < len(text); i++ {
		if isTerminator(rune(text[i])) {
			return i + 1
		}
	}
	return len(text)
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// allUpper reports whether every letter in the word is uppercase. A word
// with no letters, pure digits or underscores, vacuously qualifies; that
// keeps numeric tokens and placeholder indices untouched.
func allUpper(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
