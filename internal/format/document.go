// Package format turns chat message text into a structured document of
// paragraphs, headers and lists with inline bold, italic and code spans.
package format

import "strings"

// BlockKind identifies the type of a top-level block
type BlockKind int

const (
	Paragraph BlockKind = iota
	Header
	OrderedList
	UnorderedList
)

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Header:
		return "header"
	case OrderedList:
		return "ordered_list"
	case UnorderedList:
		return "unordered_list"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SpanKind identifies the inline style of a span
type SpanKind int

const (
	Text SpanKind = iota
	Bold
	Italic
	Code
)

func (k SpanKind) String() string {
	switch k {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Span is an inline run of text with a single style. Spans never nest.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
}

// Block is a top-level unit of a formatted message.
//
// Paragraph and Header blocks carry their content in Spans (a Header always
// holds a single Text span). List blocks carry one span sequence per item in
// Items and leave Spans empty.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Spans []Span    `json:"spans,omitempty"`
	Items [][]Span  `json:"items,omitempty"`
}

// Text returns the block content with all inline markup removed.
// List items are joined with newlines.
func (b Block) Text() string {
	if b.Kind == OrderedList || b.Kind == UnorderedList {
		items := make([]string, len(b.Items))
		for i, item := range b.Items {
			items[i] = spansText(item)
		}
		return strings.Join(items, "\n")
	}
	return spansText(b.Spans)
}

// ItemTexts returns the plain text of each list item.
func (b Block) ItemTexts() []string {
	items := make([]string, len(b.Items))
	for i, item := range b.Items {
		items[i] = spansText(item)
	}
	return items
}

// Document is the ordered block sequence produced by Format.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// IsEmpty reports whether the document has no blocks.
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Blocks) == 0
}

// PlainText returns the text of every block separated by blank lines.
func (d *Document) PlainText() string {
	if d.IsEmpty() {
		return ""
	}
	parts := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		parts[i] = b.Text()
	}
	return strings.Join(parts, "\n\n")
}

func spansText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
