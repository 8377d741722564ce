package content

import (
	"bytes"
	"encoding/json"
	"errors"
)

// elementJSON is the wire shape of an element node
type elementJSON struct {
	Tag      Tag             `json:"tag"`
	Attrs    map[Attr]string `json:"attrs,omitempty"`
	Children []Node          `json:"children,omitempty"`
}

// MarshalJSON encodes a text node as a JSON string and an element node as an
// object. Childless elements omit "children".
func (n Node) MarshalJSON() ([]byte, error) {
	if n.elem == nil {
		return json.Marshal(n.text)
	}
	if err := n.elem.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(elementJSON{
		Tag:      n.elem.Tag,
		Attrs:    n.elem.Attrs,
		Children: n.elem.Children,
	})
}

// UnmarshalJSON decodes a string or element object. Unknown tags and
// attributes are rejected.
func (n *Node) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &Error{Err: ErrInvalidNode}
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &Error{Err: err}
		}
		*n = Text(s)
		return nil
	case '{':
		var raw elementJSON
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		elem := newElement(raw.Tag, raw.Attrs, raw.Children)
		if err := elem.validate(); err != nil {
			return err
		}
		*n = Node{elem: elem}
		return nil
	default:
		return &Error{Value: string(data), Err: ErrInvalidNode}
	}
}

// Encode returns the JSON text of nodes, as sent in the "content" form field.
// A nil list encodes as "[]".
func Encode(nodes []Node) (string, error) {
	if nodes == nil {
		nodes = []Node{}
	}
	b, err := json.Marshal(nodes)
	if err != nil {
		return "", unwrapMarshal(err)
	}
	return string(b), nil
}

// Parse builds a node list from its JSON text
func Parse(s string) ([]Node, error) {
	var nodes []Node
	if err := json.Unmarshal([]byte(s), &nodes); err != nil {
		return nil, asContentError(err)
	}
	return nodes, nil
}

// unwrapMarshal strips the *json.MarshalerError wrapper around our own errors
func unwrapMarshal(err error) error {
	var me *json.MarshalerError
	if errors.As(err, &me) {
		return asContentError(me.Unwrap())
	}
	return asContentError(err)
}

func asContentError(err error) error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{Err: err}
}
