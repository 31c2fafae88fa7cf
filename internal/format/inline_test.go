package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{"plain", "hello", []Span{text("hello")}},
		{"bold", "**hi**", []Span{bold("hi")}},
		{"italic", "*hi*", []Span{italic("hi")}},
		{"code", "`hi`", []Span{code("hi")}},
		{"two italics", "*a* *b*", []Span{italic("a"), text(" "), italic("b")}},
		{"bold then italic", "**a***b*", []Span{bold("a"), italic("b")}},
		{"unicode", "**héllo** wörld", []Span{bold("héllo"), text(" wörld")}},
		{"code is verbatim", "`**not bold**`", []Span{code("**not bold**")}},
		{"bold keeps backticks", "**a `b` c**", []Span{bold("a `b` c")}},
		{"code before bold", "`a**b`**c**", []Span{code("a**b"), bold("c")}},
		{"italic cannot cross bold", "*a **b** c*", []Span{text("*a "), bold("b"), text(" c*")}},
		{"italic cannot cross code", "*a `b` c*", []Span{text("*a "), code("b"), text(" c*")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSpans(tt.input))
		})
	}
}

func TestParseSpans_UnmatchedDelimitersStayLiteral(t *testing.T) {
	inputs := []string{
		"a ** b",
		"**unterminated",
		"trailing **",
		"**",
		"****",
		"*",
		"lonely * star",
		"`unterminated code",
		"``",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, []Span{text(in)}, parseSpans(in))
		})
	}
}

func TestParseSpans_DelimitersDoNotCrossLines(t *testing.T) {
	tests := []string{
		"**bold\nacross**",
		"*italic\nacross*",
		"`code\nacross`",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, []Span{text(in)}, parseSpans(in))
		})
	}
}

func TestParseSpans_SameLineInMultiLineText(t *testing.T) {
	got := parseSpans("first **a**\nsecond *b*")
	assert.Equal(t, []Span{
		text("first "),
		bold("a"),
		text("\nsecond "),
		italic("b"),
	}, got)
}

func TestClosingDelim(t *testing.T) {
	end, ok := closingDelim("**ab**", 2, "**")
	assert.True(t, ok)
	assert.Equal(t, 4, end)

	_, ok = closingDelim("****", 2, "**")
	assert.False(t, ok, "empty content must not match")

	_, ok = closingDelim("*", 1, "*")
	assert.False(t, ok, "start past end must not match")
}
