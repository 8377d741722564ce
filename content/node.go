// Package content models the body of a Telegraph page.
//
// A page body is a list of nodes. Each node is either a text string or an
// element with a tag, optional attributes and child nodes:
//
//	body := []content.Node{
//		content.Elem(content.TagH3, content.Text("Release notes")),
//		content.Elem(content.TagP,
//			content.Text("See the "),
//			content.Link("https://example.com", content.Text("changelog")),
//			content.Text("."),
//		),
//	}
//
// Only the tags and attributes accepted by the API can be encoded or decoded.
// Anything else is reported as an error instead of being rewritten.
package content

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Tag is the name of an element accepted by the API
type Tag string

const (
	TagA          Tag = "a"
	TagAside      Tag = "aside"
	TagB          Tag = "b"
	TagBlockquote Tag = "blockquote"
	TagBr         Tag = "br"
	TagCode       Tag = "code"
	TagEm         Tag = "em"
	TagFigcaption Tag = "figcaption"
	TagFigure     Tag = "figure"
	TagH3         Tag = "h3"
	TagH4         Tag = "h4"
	TagHr         Tag = "hr"
	TagI          Tag = "i"
	TagIframe     Tag = "iframe"
	TagImg        Tag = "img"
	TagLi         Tag = "li"
	TagOl         Tag = "ol"
	TagP          Tag = "p"
	TagPre        Tag = "pre"
	TagS          Tag = "s"
	TagStrong     Tag = "strong"
	TagU          Tag = "u"
	TagUl         Tag = "ul"
	TagVideo      Tag = "video"
)

var knownTags = map[Tag]struct{}{
	TagA: {}, TagAside: {}, TagB: {}, TagBlockquote: {}, TagBr: {}, TagCode: {},
	TagEm: {}, TagFigcaption: {}, TagFigure: {}, TagH3: {}, TagH4: {}, TagHr: {},
	TagI: {}, TagIframe: {}, TagImg: {}, TagLi: {}, TagOl: {}, TagP: {},
	TagPre: {}, TagS: {}, TagStrong: {}, TagU: {}, TagUl: {}, TagVideo: {},
}

// Valid reports whether the tag belongs to the API vocabulary
func (t Tag) Valid() bool {
	_, ok := knownTags[t]
	return ok
}

// Attr is the name of an element attribute accepted by the API
type Attr string

const (
	AttrHref Attr = "href"
	AttrSrc  Attr = "src"
)

// Valid reports whether the attribute belongs to the API vocabulary
func (a Attr) Valid() bool {
	return a == AttrHref || a == AttrSrc
}

// Node is either a text node or an element node. The zero value is an empty
// text node.
type Node struct {
	text string
	elem *Element
}

// Element is a tagged node with optional attributes and children
type Element struct {
	Tag      Tag
	Attrs    map[Attr]string
	Children []Node
}

// Text returns a text node. Invalid UTF-8 in s is replaced with U+FFFD when
// the node is encoded as JSON.
func Text(s string) Node {
	return Node{text: s}
}

// Elem returns an element node without attributes
func Elem(tag Tag, children ...Node) Node {
	return Node{elem: newElement(tag, nil, children)}
}

// ElemWithAttrs returns an element node carrying the given attributes
func ElemWithAttrs(tag Tag, attrs map[Attr]string, children ...Node) Node {
	return Node{elem: newElement(tag, maps.Clone(attrs), children)}
}

// newElement stores empty attributes and children as nil
func newElement(tag Tag, attrs map[Attr]string, children []Node) *Element {
	if len(attrs) == 0 {
		attrs = nil
	}
	if len(children) == 0 {
		children = nil
	}
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// Link returns an anchor pointing at href
func Link(href string, children ...Node) Node {
	return ElemWithAttrs(TagA, map[Attr]string{AttrHref: href}, children...)
}

// Image returns an img element for src
func Image(src string) Node {
	return ElemWithAttrs(TagImg, map[Attr]string{AttrSrc: src})
}

// IsText reports whether n is a text node
func (n Node) IsText() bool {
	return n.elem == nil
}

// Text returns the text of a text node, or "" for an element
func (n Node) Text() string {
	return n.text
}

// Element returns a copy of the element of an element node, or nil for text
func (n Node) Element() *Element {
	if n.elem == nil {
		return nil
	}
	e := *n.elem
	e.Attrs = maps.Clone(n.elem.Attrs)
	e.Children = slices.Clone(n.elem.Children)
	return &e
}

// PlainText concatenates all text below n
func (n Node) PlainText() string {
	if n.elem == nil {
		return n.text
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n Node) writeText(b *strings.Builder) {
	if n.elem == nil {
		b.WriteString(n.text)
		return
	}
	for _, c := range n.elem.Children {
		c.writeText(b)
	}
}

// String implements fmt.Stringer for debugging
func (n Node) String() string {
	if n.elem == nil {
		return fmt.Sprintf("%q", n.text)
	}
	return fmt.Sprintf("<%s %v %v>", n.elem.Tag, n.elem.Attrs, n.elem.Children)
}

// validate checks the tag and attribute vocabulary of e (not its children)
func (e *Element) validate() error {
	if !e.Tag.Valid() {
		return &Error{Value: string(e.Tag), Err: ErrUnknownTag}
	}
	for a := range e.Attrs {
		if !a.Valid() {
			return &Error{Value: string(a), Err: ErrUnknownAttr}
		}
	}
	return nil
}
