// Package markup builds small trees of HTML-like elements and serializes them
// with escaping applied to every text node and attribute value.
//
// It is used to produce Graphviz HTML-like labels:
//
//	label := markup.E("b").Append(markup.Text("users"))
//	markup.Render(label) // <b>users</b>
package markup

import "strings"

// Node is a part of a markup tree.
type Node interface {
	render(b *strings.Builder)
}

// Attr is a single element attribute. Attributes render in the order given.
type Attr struct {
	Key   string
	Value string
}

// A is shorthand for building an Attr.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Element is a tag with attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// E creates an element with the given attributes and no children.
func E(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// Append adds children to the element and returns it for chaining.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

func (e *Element) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(Escape(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	for _, c := range e.Children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

// Text is literal character data. It is always escaped when rendered.
type Text string

func (t Text) render(b *strings.Builder) {
	b.WriteString(Escape(string(t)))
}

// Fragment is a sequence of sibling nodes without an enclosing element.
type Fragment []Node

func (f Fragment) render(b *strings.Builder) {
	for _, n := range f {
		n.render(b)
	}
}

// Render serializes a node tree.
func Render(n Node) string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces the characters that are significant to HTML-like labels.
func Escape(s string) string {
	return escaper.Replace(s)
}
