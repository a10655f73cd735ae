package schema

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// node is a minimal XML element tree. The parser is deliberately lenient:
// whatever was read before a syntax error is kept, so a truncated or garbled
// payload degrades to a partial tree instead of an error.
type node struct {
	Space    string
	Local    string
	Attrs    []xml.Attr
	Text     string
	Children []*node
}

func parseXML(payload []byte) *node {
	dec := xml.NewDecoder(bytes.NewReader(payload))
	dec.Strict = false

	root := &node{}
	stack := []*node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF || err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{
				Space: t.Name.Space,
				Local: t.Name.Local,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.Text += string(t)
		}
	}

	if len(root.Children) == 1 {
		return root.Children[0]
	}
	return root
}

// attr returns the value of the first attribute whose local name matches and
// whose namespace contains nsHint ("" matches any namespace).
func (n *node) attr(local, nsHint string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local != local {
			continue
		}
		if nsHint == "" || strings.Contains(a.Name.Space, nsHint) {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first direct child with the given local name.
func (n *node) child(local string) *node {
	for _, c := range n.Children {
		if c.Local == local {
			return c
		}
	}
	return nil
}

// walk visits n and all descendants until fn returns false.
func (n *node) walk(fn func(*node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

func (n *node) text() string {
	return strings.TrimSpace(n.Text)
}
