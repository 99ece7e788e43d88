// Package dom is an in-memory surface provider. Nodes keep their visual
// properties in insertion order and serialize to HTML, which makes the
// physical tree easy to inspect in tests and from the buzz CLI.
package dom

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/surface"
)

// Attr is a non-visual attribute carried over from parsed markup.
type Attr struct {
	Key string
	Val string
}

// Node is a surface.Surface backed by plain Go values.
type Node struct {
	doc      *Document
	tag      string
	text     string
	style    *linkedhashmap.Map
	classes  []string
	attrs    []Attr
	parent   *Node
	children []*Node
}

// Document creates nodes and counts how many it has handed out.
type Document struct {
	created int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CreateSurface implements surface.Provider.
func (d *Document) CreateSurface(tag string) surface.Surface {
	return d.CreateNode(tag)
}

// CreateNode is CreateSurface without the interface conversion.
func (d *Document) CreateNode(tag string) *Node {
	d.created++
	return &Node{doc: d, tag: tag, style: linkedhashmap.New()}
}

// Created returns the number of nodes created by this document.
func (d *Document) Created() int {
	return d.created
}

func asNode(op string, s surface.Surface) *Node {
	n, ok := s.(*Node)
	if !ok || n == nil {
		errors.Fatal(op, errors.KindRender, "expected a *dom.Node surface but found %T", s)
	}
	return n
}

func (n *Node) Tag() string { return n.tag }

func (n *Node) AppendChild(child surface.Surface) {
	c := asNode("dom.AppendChild", child)
	if c == n {
		errors.Fatal("dom.AppendChild", errors.KindRender, "cannot attach a surface to itself")
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) detach(c *Node) {
	if i := slices.Index(n.children, c); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
	c.parent = nil
}

func (n *Node) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) Children() []surface.Surface {
	out := make([]surface.Surface, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Nodes returns the children without the interface conversion.
func (n *Node) Nodes() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) Parent() surface.Surface {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) SetProperty(name, value string) {
	if value == "" {
		n.style.Remove(name)
		return
	}
	n.style.Put(name, value)
}

func (n *Node) Property(name string) (string, bool) {
	v, ok := n.style.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Properties returns the visual properties in the order they were first set.
func (n *Node) Properties() []Attr {
	out := make([]Attr, 0, n.style.Size())
	it := n.style.Iterator()
	for it.Next() {
		out = append(out, Attr{Key: it.Key().(string), Val: it.Value().(string)})
	}
	return out
}

func (n *Node) AddClass(name string) {
	if name == "" || n.HasClass(name) {
		return
	}
	n.classes = append(n.classes, name)
}

func (n *Node) RemoveClass(name string) {
	if i := slices.Index(n.classes, name); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

func (n *Node) ToggleClass(name string) bool {
	if n.HasClass(name) {
		n.RemoveClass(name)
		return false
	}
	n.AddClass(name)
	return true
}

func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes, name)
}

// Classes returns the class list in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

func (n *Node) SetText(text string) { n.text = text }

func (n *Node) Text() string { return n.text }

// SetAttr sets a non-visual attribute.
func (n *Node) SetAttr(key, val string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Val = val
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Val: val})
}

// Attr returns a non-visual attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) String() string {
	return fmt.Sprintf("<%s> (%d children)", n.tag, len(n.children))
}
