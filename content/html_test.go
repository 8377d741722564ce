package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Node
	}{
		{
			name:     "paragraph with bold",
			input:    `<p>Hello <b>world</b></p>`,
			expected: []Node{Elem(TagP, Text("Hello "), Elem(TagB, Text("world")))},
		},
		{
			name:     "unsupported wrapper is unwrapped",
			input:    `<div><p>inside</p></div>`,
			expected: []Node{Elem(TagP, Text("inside"))},
		},
		{
			name:     "foreign attributes are dropped",
			input:    `<a href="/x" class="btn" target="_blank">go</a>`,
			expected: []Node{Link("/x", Text("go"))},
		},
		{
			name:     "headings are mapped",
			input:    `<h1>Title</h1><h6>Small</h6>`,
			expected: []Node{Elem(TagH3, Text("Title")), Elem(TagH4, Text("Small"))},
		},
		{
			name:     "scripts are skipped",
			input:    `<p>a</p><script>alert(1)</script>`,
			expected: []Node{Elem(TagP, Text("a"))},
		},
		{
			name:     "image",
			input:    `<figure><img src="/file/x.png" alt="x"><figcaption>cap</figcaption></figure>`,
			expected: []Node{Elem(TagFigure, Image("/file/x.png"), Elem(TagFigcaption, Text("cap")))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := FromHTMLString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, nodes)
		})
	}
}

func TestHTML(t *testing.T) {
	s, err := HTML([]Node{
		Elem(TagP, Text("a < b "), Link("/x", Text("link"))),
		Elem(TagBr),
		Image("/file/y.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, `<p>a &lt; b <a href="/x">link</a></p><br/><img src="/file/y.jpg"/>`, s)

	_, err = HTML([]Node{Elem(Tag("table"))})
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown([]Node{
		Elem(TagH3, Text("Notes")),
		Elem(TagP, Text("Hello "), Elem(TagStrong, Text("world"))),
	})
	require.NoError(t, err)
	assert.Contains(t, md, "Notes")
	assert.Contains(t, md, "**world**")
}
