package format

import (
	"regexp"
	"strings"

	"github.com/diogo/folderchat/internal/models"
)

var (
	headerPattern    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	orderedPattern   = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	unorderedPattern = regexp.MustCompile(`^[-•]\s+(.+)$`)
)

type lineKind int

const (
	lineText lineKind = iota
	lineHeader
	lineOrdered
	lineUnordered
)

// Format parses message content into a Document.
//
// It never fails: malformed or unterminated markup degrades to literal text,
// and empty or whitespace-only content yields a document with no blocks.
// Format keeps no state between calls and is safe for concurrent use.
func Format(content string) *Document {
	doc := &Document{Blocks: []Block{}}
	for _, segment := range segments(content) {
		doc.Blocks = append(doc.Blocks, segmentBlocks(segment)...)
	}
	return doc
}

// FormatMessage formats the content of msg. A nil message yields an empty document.
func FormatMessage(msg *models.Message) *Document {
	if msg == nil {
		return Format("")
	}
	return Format(msg.Content)
}

// segments splits content on blank lines and trims each resulting segment.
func segments(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var (
		out     []string
		current []string
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		if seg := strings.TrimSpace(strings.Join(current, "\n")); seg != "" {
			out = append(out, seg)
		}
		current = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return out
}

// segmentBlocks classifies each line of a segment and groups them into blocks.
// Consecutive list items of the same kind share one list; runs of other lines
// become paragraphs. Block order follows line order.
func segmentBlocks(segment string) []Block {
	var (
		blocks []Block
		para   []string
		list   *Block
	)

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		if text := strings.TrimSpace(strings.Join(para, "\n")); text != "" {
			blocks = append(blocks, Block{Kind: Paragraph, Spans: parseSpans(text)})
		}
		para = nil
	}
	flushList := func() {
		if list == nil {
			return
		}
		blocks = append(blocks, *list)
		list = nil
	}

	for _, line := range strings.Split(segment, "\n") {
		kind, level, text := classifyLine(line)
		switch kind {
		case lineHeader:
			flushPara()
			flushList()
			blocks = append(blocks, Block{
				Kind:  Header,
				Level: level,
				Spans: []Span{{Kind: Text, Text: text}},
			})
		case lineOrdered, lineUnordered:
			flushPara()
			blockKind := OrderedList
			if kind == lineUnordered {
				blockKind = UnorderedList
			}
			if list != nil && list.Kind != blockKind {
				flushList()
			}
			if list == nil {
				list = &Block{Kind: blockKind}
			}
			list.Items = append(list.Items, parseSpans(text))
		default:
			flushList()
			para = append(para, line)
		}
	}
	flushPara()
	flushList()

	return blocks
}

// classifyLine reports what a single line is. The header check runs before
// the list checks. A marker with no text after it is plain text.
func classifyLine(line string) (lineKind, int, string) {
	if m := headerPattern.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[2]); text != "" {
			return lineHeader, len(m[1]), text
		}
	}
	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[1]); text != "" {
			return lineOrdered, 0, text
		}
	}
	if m := unorderedPattern.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[1]); text != "" {
			return lineUnordered, 0, text
		}
	}
	return lineText, 0, line
}
