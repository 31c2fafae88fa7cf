package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"paragraph", "plain text", "<p>plain text</p>"},
		{
			"inline spans",
			"**bold** and *italic* and `code`",
			"<p><strong>bold</strong> and <em>italic</em> and <code>code</code></p>",
		},
		{"ordered list", "1. a\n2. b", "<ol><li>a</li><li>b</li></ol>"},
		{"unordered list", "- a\n- **b**", "<ul><li>a</li><li><strong>b</strong></li></ul>"},
		{"header level 1", "# Title", "<h1>Title</h1>"},
		{"header level 3", "### Sub", "<h3>Sub</h3>"},
		{"two paragraphs", "para one\n\npara two", "<p>para one</p><p>para two</p>"},
		{"line break", "line one\nline two", "<p>line one<br/>line two</p>"},
		{
			"mixed",
			"## Plan\nSteps:\n1. read\n- note",
			"<h2>Plan</h2><p>Steps:</p><ol><li>read</li></ol><ul><li>note</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLText(tt.input, HTMLOptions{}))
		})
	}
}

func TestHTML_EscapesMessageText(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{`<script>alert("x")</script>`, "&lt;script&gt;"},
		{"**<img src=x onerror=alert(1)>**", "<strong>&lt;img"},
		{"`<b>`", "<code>&lt;b&gt;</code>"},
		{"- a & b", "<li>a &amp; b</li>"},
		{"# <i>title</i>", "<h1>&lt;i&gt;title&lt;/i&gt;</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := HTMLText(tt.input, HTMLOptions{})
			assert.Contains(t, out, tt.contains)
			assert.NotContains(t, out, "<script")
			assert.NotContains(t, out, "<img")
		})
	}
}

func TestHTML_Wrap(t *testing.T) {
	doc := format.Format("hi")

	user := HTML(doc, HTMLOptions{Wrap: true, Role: models.RoleUser})
	assert.Equal(t, `<div class="prose max-w-none text-white prose-invert"><p>hi</p></div>`, user)

	assistant := HTML(doc, HTMLOptions{Wrap: true, Role: models.RoleAssistant})
	assert.Equal(t, `<div class="prose max-w-none text-gray-800"><p>hi</p></div>`, assistant)
}

func TestHTML_Sanitize(t *testing.T) {
	input := "# Notes\n\nsee **this** and *that*\nnext `line`\n\n1. a\n- b"
	doc := format.Format(input)

	plain := HTML(doc, HTMLOptions{Wrap: true})
	sanitized := HTML(doc, HTMLOptions{Wrap: true, Sanitize: true})

	// The allow-list covers every element the renderer emits.
	for _, tag := range []string{"<div class=", "<h1>", "<p>", "<strong>", "<em>", "<code>", "<br", "<ol>", "<ul>", "<li>"} {
		assert.Contains(t, sanitized, tag)
	}
	assert.Equal(t, stripSpace(plain), stripSpace(sanitized))
}

func TestHTML_SanitizeKeepsEscapes(t *testing.T) {
	out := HTMLText(`<a href="javascript:x">click</a>`, HTMLOptions{Sanitize: true})
	assert.NotContains(t, out, "<a ")
	assert.Contains(t, out, "click")
}

func TestHTML_ParsesAsWellFormedFragment(t *testing.T) {
	input := "# T\n\nsome **bold**\nand `code`\n\n1. x\n2. *y*\n\n- z"
	out := HTMLText(input, HTMLOptions{Wrap: true})

	root, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	var tags []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	assert.Equal(t, []string{
		"html", "head", "body", "div",
		"h1", "p", "strong", "br", "code",
		"ol", "li", "li", "em",
		"ul", "li",
	}, tags)
}

func TestHTML_OutputDoesNotFormatIntoNewBlocks(t *testing.T) {
	inputs := []string{
		"# Title\n\n- a\n- b",
		"1. one\n\n## two",
		"para\n\npara",
	}
	for _, in := range inputs {
		out := HTMLText(in, HTMLOptions{})
		for _, b := range format.Format(out).Blocks {
			assert.Equal(t, format.Paragraph, b.Kind, "HTML %q was re-read as %s", out, b.Kind)
		}
	}
}

func TestNodes_Empty(t *testing.T) {
	assert.Nil(t, Nodes(nil))
	assert.Nil(t, Nodes(format.Format("  ")))
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
