package codespan

import (
	"strconv"
	"strings"
)

const (
	fence = "```"

	// markerOpen and markerClose delimit placeholder tokens. Both are
	// Unicode noncharacters, so neither can appear in ordinary prose.
	markerOpen  = "﷐"
	markerClose = "﷑"
)

// Span is one extracted code region, recorded in discovery order.
type Span struct {
	// Index is the sequence number of extraction, stable for Restore
	Index int
	// Start is the byte offset of the span in the original text
	Start int
	// End is the byte offset one past the span's final byte
	End int
	// Text is the literal span text, delimiters included
	Text string
}

// Fenced reports whether the span is a triple-backtick block rather than an
// inline span.
func (s Span) Fenced() bool {
	return strings.HasPrefix(s.Text, fence)
}

// Placeholder returns the placeholder token for the span at the given index.
func Placeholder(index int) string {
	return markerOpen + strconv.Itoa(index) + markerClose
}

// Extract scans text left to right and replaces each code span with its
// placeholder token. Text outside spans is copied verbatim. When the text
// contains no spans it is returned unchanged with nil spans; that is normal,
// not an error.
func Extract(text string) (string, []Span) {
	var spans []Span
	var masked strings.Builder
	i := 0
	for {
		j := strings.IndexByte(text[i:], '`')
		if j < 0 {
			break
		}
		j += i
		end, ok := matchAt(text, j)
		if !ok {
			// A backtick that closes nothing is ordinary text.
			masked.WriteString(text[i : j+1])
			i = j + 1
			continue
		}
		masked.WriteString(text[i:j])
		span := Span{Index: len(spans), Start: j, End: end, Text: text[j:end]}
		spans = append(spans, span)
		masked.WriteString(Placeholder(span.Index))
		i = end
	}
	if len(spans) == 0 {
		return text, nil
	}
	masked.WriteString(text[i:])
	return masked.String(), spans
}

// matchAt returns the end offset of the span opening at the backtick at
// offset i, trying the fenced form before the inline form.
func matchAt(text string, i int) (int, bool) {
	if strings.HasPrefix(text[i:], fence) {
		if k := strings.Index(text[i+len(fence):], fence); k >= 0 {
			return i + len(fence) + k + len(fence), true
		}
		// No closing fence; the inline form below matches the first two
		// backticks as an empty span.
	}
	if k := strings.IndexByte(text[i+1:], '`'); k >= 0 {
		return i + 1 + k + 1, true
	}
	return 0, false
}

// Restore replaces each placeholder token in masked with its span's text, by
// index, in a single left-to-right pass. Restored span text is never
// rescanned, so span content resembling a placeholder cannot be substituted
// a second time. Tokens with no matching span are copied through verbatim.
func Restore(masked string, spans []Span) string {
	if len(spans) == 0 {
		return masked
	}
	var out strings.Builder
	out.Grow(len(masked))
	i := 0
	for {
		j := strings.Index(masked[i:], markerOpen)
		if j < 0 {
			break
		}
		j += i
		index, end, ok := parsePlaceholder(masked, j)
		if !ok || index >= len(spans) {
			out.WriteString(masked[i : j+len(markerOpen)])
			i = j + len(markerOpen)
			continue
		}
		out.WriteString(masked[i:j])
		out.WriteString(spans[index].Text)
		i = end
	}
	out.WriteString(masked[i:])
	return out.String()
}

// parsePlaceholder parses the placeholder token starting at offset i, which
// must be the first byte of markerOpen. It returns the span index and the
// offset one past the closing marker.
func parsePlaceholder(s string, i int) (index, end int, ok bool) {
	j := i + len(markerOpen)
	digits := j
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == digits || !strings.HasPrefix(s[j:], markerClose) {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[digits:j])
	if err != nil {
		return 0, 0, false
	}
	return n, j + len(markerClose), true
}
