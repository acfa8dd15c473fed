// ABOUTME: Inner-markup get/set for elements, backed by x/net/html.
// ABOUTME: Parses fragments in a div context and serializes the way innerHTML does.

package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Void elements are serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// ParseFragment parses markup the way a browser parses into a div and returns
// the resulting top-level nodes. Malformed markup is repaired, not rejected.
func ParseFragment(markup string) []*Element {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil
	}
	var out []*Element
	for _, n := range nodes {
		if e := fromHTMLNode(n); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// SetInnerHTML replaces the element's children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) {
	e.children = ParseFragment(markup)
}

// InnerHTML serializes the element's children back to markup.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for _, c := range e.children {
		c.render(&sb)
	}
	return sb.String()
}

// OuterHTML serializes the element itself, children included.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	e.render(&sb)
	return sb.String()
}

func fromHTMLNode(n *html.Node) *Element {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		e := NewElement(n.Data)
		for _, a := range n.Attr {
			if a.Key == "class" {
				e.AddClass(strings.Fields(a.Val)...)
				continue
			}
			if a.Key == "contenteditable" {
				e.SetContentEditable(a.Val != "false")
				continue
			}
			e.SetAttribute(a.Key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTMLNode(c); child != nil {
				e.AppendChild(child)
			}
		}
		return e
	default:
		// Comments, doctypes and the like do not survive the round trip.
		return nil
	}
}

func (e *Element) render(sb *strings.Builder) {
	if e.IsText() {
		sb.WriteString(textEscaper.Replace(e.text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(e.tag)
	if len(e.classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(attrEscaper.Replace(strings.Join(e.classes, " ")))
		sb.WriteByte('"')
	}
	if e.editable {
		sb.WriteString(` contenteditable="true"`)
	}
	for _, k := range sortedAttrKeys(e.attrs) {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(e.attrs[k]))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')

	if voidElements[e.tag] {
		return
	}
	for _, c := range e.children {
		c.render(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
}

func sortedAttrKeys(attrs map[string]string) []string {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
