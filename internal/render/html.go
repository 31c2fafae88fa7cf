package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
)

// HTMLOptions configures HTML output.
type HTMLOptions struct {
	// Wrap encloses the blocks in a <div> whose class depends on Role.
	Wrap bool
	Role models.Role

	// Sanitize passes the output through an allow-list of the emitted tags.
	Sanitize bool
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// sanitizePolicy allows exactly the elements HTML produces.
func sanitizePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("p", "br", "h1", "h2", "h3", "h4", "h5", "h6",
			"ol", "ul", "li", "strong", "em", "code", "div")
		p.AllowAttrs("class").OnElements("div")
		policy = p
	})
	return policy
}

// RoleClass returns the wrapper class used for a message of the given role.
func RoleClass(role models.Role) string {
	if role == models.RoleUser {
		return "prose max-w-none text-white prose-invert"
	}
	return "prose max-w-none text-gray-800"
}

// HTML renders doc as an HTML fragment. Paragraph line breaks become <br>.
// All message text is escaped, so the fragment is safe to insert into a page
// even when the message came from an untrusted source.
func HTML(doc *format.Document, opts HTMLOptions) string {
	nodes := Nodes(doc)

	if opts.Wrap {
		wrapper := element(atom.Div, nodes...)
		wrapper.Attr = []html.Attribute{{Key: "class", Val: RoleClass(opts.Role)}}
		nodes = []*html.Node{wrapper}
	}

	var sb strings.Builder
	for _, n := range nodes {
		// Rendering into a strings.Builder cannot fail for element and text nodes.
		_ = html.Render(&sb, n)
	}

	out := sb.String()
	if opts.Sanitize {
		out = sanitizePolicy().Sanitize(out)
	}
	return out
}

// Nodes converts doc into one HTML element per block.
func Nodes(doc *format.Document) []*html.Node {
	if doc.IsEmpty() {
		return nil
	}

	nodes := make([]*html.Node, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		switch b.Kind {
		case format.Header:
			level := b.Level
			if level < 1 {
				level = 1
			}
			if level > len(headingAtoms) {
				level = len(headingAtoms)
			}
			nodes = append(nodes, element(headingAtoms[level-1], spanNodes(b.Spans)...))
		case format.OrderedList, format.UnorderedList:
			listAtom := atom.Ul
			if b.Kind == format.OrderedList {
				listAtom = atom.Ol
			}
			list := element(listAtom)
			for _, item := range b.Items {
				list.AppendChild(element(atom.Li, spanNodes(item)...))
			}
			nodes = append(nodes, list)
		default:
			nodes = append(nodes, element(atom.P, spanNodes(b.Spans)...))
		}
	}
	return nodes
}

func spanNodes(spans []format.Span) []*html.Node {
	var nodes []*html.Node
	for _, s := range spans {
		switch s.Kind {
		case format.Bold:
			nodes = append(nodes, element(atom.Strong, textNode(s.Text)))
		case format.Italic:
			nodes = append(nodes, element(atom.Em, textNode(s.Text)))
		case format.Code:
			nodes = append(nodes, element(atom.Code, textNode(s.Text)))
		default:
			for i, line := range strings.Split(s.Text, "\n") {
				if i > 0 {
					nodes = append(nodes, element(atom.Br))
				}
				if line != "" {
					nodes = append(nodes, textNode(line))
				}
			}
		}
	}
	return nodes
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
