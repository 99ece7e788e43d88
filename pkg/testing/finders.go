package testing

import (
	"fmt"
	"strings"

	"github.com/buzzkit/buzz/pkg/surface/dom"
)

// Finder locates surfaces in the physical tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first
	// pre-order, root excluded).
	Evaluate(root *dom.Node) []*dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Node {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *dom.Node {
	if index < 0 || index >= len(r.nodes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), desc))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Property returns a visual property of the first match. Panics if no
// matches.
func (r FinderResult) Property(name string) string {
	v, _ := r.First().Property(name)
	return v
}

// --- Finder implementations ---

type predicateFinder struct {
	fn   func(*dom.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *dom.Node) []*dom.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByTag finds nodes with the given tag.
func ByTag(tag string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.Tag() == tag },
		desc: fmt.Sprintf("ByTag(%q)", tag),
	}
}

// ByText finds nodes whose own text equals text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.Text() == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining finds nodes whose own text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return substring != "" && strings.Contains(n.Text(), substring) },
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByClass finds nodes carrying the given class.
func ByClass(name string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.HasClass(name) },
		desc: fmt.Sprintf("ByClass(%q)", name),
	}
}

// ByProperty finds nodes whose visual property name equals value.
func ByProperty(name, value string) Finder {
	return &predicateFinder{
		fn: func(n *dom.Node) bool {
			v, ok := n.Property(name)
			return ok && v == value
		},
		desc: fmt.Sprintf("ByProperty(%q, %q)", name, value),
	}
}

// ByPredicate finds nodes matching fn.
func ByPredicate(fn func(*dom.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate"}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *dom.Node) []*dom.Node {
	var out []*dom.Node
	seen := map[*dom.Node]bool{}
	for _, parent := range f.of.Evaluate(root) {
		for _, n := range f.matching.Evaluate(parent) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant finds nodes matching `matching` below any node matching `of`.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *dom.Node, predicate func(*dom.Node) bool) []*dom.Node {
	var out []*dom.Node
	walkTree(root, func(n *dom.Node) {
		if predicate(n) {
			out = append(out, n)
		}
	})
	return out
}

func walkTree(root *dom.Node, visitor func(*dom.Node)) {
	if root == nil {
		return
	}
	for _, child := range root.Nodes() {
		visitor(child)
		walkTree(child, visitor)
	}
}
