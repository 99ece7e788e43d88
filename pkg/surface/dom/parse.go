package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/wavetermdev/htmltoken"

	"github.com/buzzkit/buzz/pkg/surface"
)

// ParseMarkup implements surface.Parser.
func (d *Document) ParseMarkup(markup string) ([]surface.Surface, error) {
	nodes, err := d.Parse(markup)
	if err != nil {
		return nil, err
	}
	out := make([]surface.Surface, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out, nil
}

// Parse builds detached nodes from HTML markup. Inline style attributes
// become visual properties and class attributes become the class list;
// every other attribute is kept verbatim.
func (d *Document) Parse(markup string) ([]*Node, error) {
	root := d.CreateNode("#fragment")
	stack := []*Node{root}
	iter := htmltoken.NewTokenizer(strings.NewReader(markup))
	for {
		tokenType := iter.Next()
		token := iter.Token()
		top := stack[len(stack)-1]
		switch tokenType {
		case htmltoken.StartTagToken:
			n := d.nodeFromToken(token)
			top.AppendChild(n)
			if !voidElements[n.tag] {
				stack = append(stack, n)
			}
		case htmltoken.SelfClosingTagToken:
			top.AppendChild(d.nodeFromToken(token))
		case htmltoken.EndTagToken:
			if voidElements[token.Data] {
				continue
			}
			if len(stack) <= 1 {
				return nil, fmt.Errorf("end tag %q without start tag", token.Data)
			}
			if top.tag != token.Data {
				return nil, fmt.Errorf("end tag %q does not match start tag %q", token.Data, top.tag)
			}
			stack = stack[:len(stack)-1]
		case htmltoken.TextToken:
			text := strings.TrimSpace(token.Data)
			if text == "" {
				continue
			}
			if top == root {
				span := d.CreateNode("span")
				span.SetText(text)
				root.AppendChild(span)
				continue
			}
			top.SetText(top.text + text)
		case htmltoken.CommentToken:
			continue
		case htmltoken.DoctypeToken:
			return nil, fmt.Errorf("doctype not supported")
		case htmltoken.ErrorToken:
			if iter.Err() == io.EOF {
				if len(stack) > 1 {
					return nil, fmt.Errorf("unclosed tag %q", stack[len(stack)-1].tag)
				}
				nodes := root.Nodes()
				root.ClearChildren()
				return nodes, nil
			}
			return nil, iter.Err()
		}
	}
}

func (d *Document) nodeFromToken(token htmltoken.Token) *Node {
	n := d.CreateNode(token.Data)
	for _, attr := range token.Attr {
		switch attr.Key {
		case "class":
			for _, c := range strings.Fields(attr.Val) {
				n.AddClass(c)
			}
		case "style":
			for name, value := range parseStyle(attr.Val) {
				n.SetProperty(name, value)
			}
		case "":
			continue
		default:
			n.SetAttr(attr.Key, attr.Val)
		}
	}
	return n
}

// parseStyle yields the declarations of an inline style attribute in order.
func parseStyle(style string) func(yield func(string, string) bool) {
	return func(yield func(string, string) bool) {
		for _, decl := range strings.Split(style, ";") {
			name, value, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			name = strings.ToLower(strings.TrimSpace(name))
			value = strings.TrimSpace(value)
			if name == "" || value == "" {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}
}
