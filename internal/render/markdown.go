package render

import (
	"strconv"
	"strings"

	"github.com/diogo/folderchat/internal/format"
)

// Markdown writes doc back out in the conventions format.Format reads:
// "#" headers, "1." and "-" list items, and **, * and ` spans.
// Formatting the result yields the same blocks as doc, except where literal
// text contains delimiter characters that pair up differently.
func Markdown(doc *format.Document) string {
	return writeBlocks(doc, plainInline)
}

// commonMark writes doc as CommonMark for glamour. Literal text is escaped so
// that characters glamour would treat as markup render as themselves.
func commonMark(doc *format.Document) string {
	return writeBlocks(doc, escapedInline)
}

func writeBlocks(doc *format.Document, inline func([]format.Span) string) string {
	if doc.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		var sb strings.Builder
		switch b.Kind {
		case format.Header:
			sb.WriteString(strings.Repeat("#", b.Level))
			sb.WriteByte(' ')
			sb.WriteString(inline(b.Spans))
		case format.OrderedList:
			for i, item := range b.Items {
				if i > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString(strconv.Itoa(i + 1))
				sb.WriteString(". ")
				sb.WriteString(inline(item))
			}
		case format.UnorderedList:
			for i, item := range b.Items {
				if i > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString("- ")
				sb.WriteString(inline(item))
			}
		default:
			sb.WriteString(inline(b.Spans))
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

func plainInline(spans []format.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case format.Bold:
			sb.WriteString("**" + s.Text + "**")
		case format.Italic:
			sb.WriteString("*" + s.Text + "*")
		case format.Code:
			sb.WriteString("`" + s.Text + "`")
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func escapedInline(spans []format.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case format.Bold:
			sb.WriteString("**" + escapeCommonMark(s.Text) + "**")
		case format.Italic:
			sb.WriteString("*" + escapeCommonMark(s.Text) + "*")
		case format.Code:
			sb.WriteString("`" + padCodeSpan(s.Text) + "`")
		default:
			sb.WriteString(escapeCommonMark(s.Text))
		}
	}
	return sb.String()
}

const commonMarkPunct = "\\`*_{}[]()#+-.!|<>~&"

// padCodeSpan adds a space on each side when the code starts or ends with
// one, since CommonMark strips a single leading and trailing space.
func padCodeSpan(code string) string {
	if strings.TrimSpace(code) == "" {
		return code
	}
	if strings.HasPrefix(code, " ") || strings.HasSuffix(code, " ") {
		return " " + code + " "
	}
	return code
}

// escapeCommonMark backslash-escapes markup characters and drops leading
// indentation on continuation lines, which CommonMark would read as code.
func escapeCommonMark(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i > 0 {
			line = strings.TrimLeft(line, " \t")
		}
		var sb strings.Builder
		for _, r := range line {
			if r < 128 && strings.ContainsRune(commonMarkPunct, r) {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
