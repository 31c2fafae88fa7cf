package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diogo/folderchat/internal/format"
)

func TestMarkdown_Canonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"#   Title  ", "# Title"},
		{"3. a\n7. b", "1. a\n2. b"},
		{"• a\n- b", "- a\n- b"},
		{"intro\n- **a**\n- `b`", "intro\n\n- **a**\n- `b`"},
		{"one\n\n\n\ntwo", "one\n\ntwo"},
		{"line\nbreak *kept*", "line\nbreak *kept*"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Markdown(format.Format(tt.input)))
		})
	}
}

func TestMarkdown_RoundTrip(t *testing.T) {
	inputs := []string{
		"# Title\n\nintro with **bold** and *italic*\n\n1. one\n2. `two`\n\n- x\n- y",
		"### Deep\nparagraph right after\n- item\nmore text",
		"a\n\nb\n\nc",
	}

	for _, in := range inputs {
		doc := format.Format(in)
		assert.Equal(t, doc, format.Format(Markdown(doc)), "round trip of %q", in)
	}
}

func TestEscapeCommonMark(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain words", "plain words"},
		{"1. not a list", `1\. not a list`},
		{"<b>", `\<b\>`},
		{"[x](y)", `\[x\]\(y\)`},
		{"a_b*c", `a\_b\*c`},
		{"first\n    indented", "first\nindented"},
		{"héllo: wörld", "héllo: wörld"},
		{"a &amp; b", `a \&amp; b`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeCommonMark(tt.in), "input %q", tt.in)
	}
}

func TestCommonMark_CodeIsVerbatim(t *testing.T) {
	doc := format.Format("see `a_b<c>` and a_b")
	assert.Equal(t, "see `a_b<c>` and a\\_b", commonMark(doc))

	padded := format.Format("use ` a ` here")
	assert.Equal(t, "use `  a  ` here", commonMark(padded))
}
