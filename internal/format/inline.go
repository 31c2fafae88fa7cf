package format

import "strings"

// parseSpans splits text into inline spans.
//
// Code and bold are resolved first in a single left-to-right pass. Italics
// are then searched only in the plain text left between them, so an italic
// can never claim an asterisk belonging to a bold span.
func parseSpans(text string) []Span {
	var (
		spans []Span
		plain strings.Builder
	)

	flushPlain := func() {
		if plain.Len() == 0 {
			return
		}
		spans = append(spans, italicSpans(plain.String())...)
		plain.Reset()
	}

	for i := 0; i < len(text); {
		switch {
		case text[i] == '`':
			if end, ok := closingDelim(text, i+1, "`"); ok {
				flushPlain()
				spans = append(spans, Span{Kind: Code, Text: text[i+1 : end]})
				i = end + 1
				continue
			}
		case strings.HasPrefix(text[i:], "**"):
			if end, ok := closingDelim(text, i+2, "**"); ok {
				flushPlain()
				spans = append(spans, Span{Kind: Bold, Text: text[i+2 : end]})
				i = end + 2
				continue
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flushPlain()

	return mergeText(spans)
}

// italicSpans resolves *x* pairs in text that holds no bold or code.
func italicSpans(s string) []Span {
	var spans []Span
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			continue
		}
		end, ok := closingDelim(s, i+1, "*")
		if !ok {
			continue
		}
		if last < i {
			spans = append(spans, Span{Kind: Text, Text: s[last:i]})
		}
		spans = append(spans, Span{Kind: Italic, Text: s[i+1 : end]})
		i = end
		last = end + 1
	}
	if last < len(s) {
		spans = append(spans, Span{Kind: Text, Text: s[last:]})
	}
	return spans
}

// closingDelim finds the first delim at or after start. The enclosed text
// must be non-empty and must not cross a line break.
func closingDelim(text string, start int, delim string) (int, bool) {
	if start >= len(text) {
		return 0, false
	}
	idx := strings.Index(text[start:], delim)
	if idx <= 0 {
		return 0, false
	}
	if strings.Contains(text[start:start+idx], "\n") {
		return 0, false
	}
	return start + idx, true
}

func mergeText(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if n := len(out); n > 0 && s.Kind == Text && out[n-1].Kind == Text {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
