package content

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// headingAliases maps heading levels the API lacks onto the nearest supported one
var headingAliases = map[string]Tag{
	"h1": TagH3,
	"h2": TagH3,
	"h5": TagH4,
	"h6": TagH4,
}

// skippedElements are dropped together with their children
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// FromHTML converts an HTML fragment into nodes. Elements outside the API
// vocabulary are unwrapped and their children kept; attributes other than
// href and src are dropped.
func FromHTML(r io.Reader) ([]Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	fragment, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var nodes []Node
	for _, n := range fragment {
		nodes = append(nodes, convertHTML(n)...)
	}
	return trimBlank(nodes), nil
}

// FromHTMLString is FromHTML for an in-memory fragment
func FromHTMLString(s string) ([]Node, error) {
	return FromHTML(strings.NewReader(s))
}

func convertHTML(n *html.Node) []Node {
	switch n.Type {
	case html.TextNode:
		return []Node{Text(n.Data)}
	case html.ElementNode:
		if skippedElements[n.Data] {
			return nil
		}
		var children []Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, convertHTML(c)...)
		}

		tag := Tag(n.Data)
		if alias, ok := headingAliases[n.Data]; ok {
			tag = alias
		}
		if !tag.Valid() {
			return children
		}

		var attrs map[Attr]string
		for _, a := range n.Attr {
			if key := Attr(a.Key); key.Valid() {
				if attrs == nil {
					attrs = make(map[Attr]string)
				}
				attrs[key] = a.Val
			}
		}
		return []Node{{elem: newElement(tag, attrs, children)}}
	case html.DocumentNode:
		var children []Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, convertHTML(c)...)
		}
		return children
	default:
		return nil
	}
}

// trimBlank drops whitespace-only text nodes at the top level
func trimBlank(nodes []Node) []Node {
	return slices.DeleteFunc(nodes, func(n Node) bool {
		return n.IsText() && strings.TrimSpace(n.text) == ""
	})
}

// HTML renders nodes as an HTML fragment
func HTML(nodes []Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		hn, err := toHTML(n)
		if err != nil {
			return "", err
		}
		if err := html.Render(&buf, hn); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return buf.String(), nil
}

func toHTML(n Node) (*html.Node, error) {
	if n.elem == nil {
		return &html.Node{Type: html.TextNode, Data: n.text}, nil
	}
	if err := n.elem.validate(); err != nil {
		return nil, err
	}

	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     string(n.elem.Tag),
		DataAtom: atom.Lookup([]byte(n.elem.Tag)),
	}

	keys := make([]string, 0, len(n.elem.Attrs))
	for k := range n.elem.Attrs {
		keys = append(keys, string(k))
	}
	slices.Sort(keys)
	for _, k := range keys {
		hn.Attr = append(hn.Attr, html.Attribute{Key: k, Val: n.elem.Attrs[Attr(k)]})
	}

	for _, c := range n.elem.Children {
		child, err := toHTML(c)
		if err != nil {
			return nil, err
		}
		hn.AppendChild(child)
	}
	return hn, nil
}

// Markdown renders nodes as Markdown
func Markdown(nodes []Node) (string, error) {
	fragment, err := HTML(nodes)
	if err != nil {
		return "", err
	}
	md, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return md, nil
}
