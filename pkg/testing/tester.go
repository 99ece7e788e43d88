package testing

import (
	"bytes"
	"log"
	"testing"

	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/surface/dom"
	"github.com/buzzkit/buzz/pkg/theme"
)

// RootTag is the tag of the host surface the tester mounts into.
const RootTag = "main"

// WidgetTester mounts widgets into an in-memory document and exposes the
// resulting physical tree.
type WidgetTester struct {
	ctx  *core.Context
	doc  *dom.Document
	host *dom.Node
	root *core.Root
	logs *bytes.Buffer
}

// NewWidgetTester creates a tester with an isolated context. Call
// Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	doc := dom.NewDocument()
	logs := &bytes.Buffer{}
	ctx := core.NewContext(doc)
	ctx.Logger = log.New(logs, "buzz: ", 0)
	ctx.Go = func(fn func()) { fn() }
	return &WidgetTester{
		ctx:  ctx,
		doc:  doc,
		host: doc.CreateNode(RootTag),
		logs: logs,
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts and removes the current tree.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount(t.ctx)
		t.root.Remove(t.ctx)
		t.root = nil
	}
}

// Context returns the context widgets under test must be created with.
func (t *WidgetTester) Context() *core.Context {
	return t.ctx
}

// Document returns the surface provider.
func (t *WidgetTester) Document() *dom.Document {
	return t.doc
}

// SetTheme replaces the theme data. Must be called before PumpWidget.
func (t *WidgetTester) SetTheme(td *theme.ThemeData) {
	t.ctx.Theme = td
}

// SetVerbose switches verbose diagnostics on or off.
func (t *WidgetTester) SetVerbose(verbose bool) {
	if verbose {
		t.ctx.DebugLevel = core.DebugLog
		return
	}
	t.ctx.DebugLevel = core.DebugNone
}

// Logs returns everything written to the context logger so far.
func (t *WidgetTester) Logs() string {
	return t.logs.String()
}

// PumpWidget mounts (or remounts) a widget under a fresh root.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount(t.ctx)
		t.root = nil
	}
	t.root = core.MountRoot(t.ctx, t.host, widget)
}

// Pump renders the current tree again from the root.
func (t *WidgetTester) Pump() {
	if t.root != nil {
		t.root.Refresh(t.ctx)
	}
}

// Root returns the root of the mounted tree.
func (t *WidgetTester) Root() *core.Root {
	return t.root
}

// Host returns the surface the tree is mounted into.
func (t *WidgetTester) Host() *dom.Node {
	return t.host
}

// HTML serializes the children of the host surface.
func (t *WidgetTester) HTML() string {
	var buf bytes.Buffer
	for _, n := range t.host.Nodes() {
		buf.WriteString(n.HTML())
	}
	return buf.String()
}

// Widget looks up a widget by key in the tester's registry.
func (t *WidgetTester) Widget(key string) (core.Widget, bool) {
	return t.ctx.Registry.Lookup(key)
}

// Find evaluates a finder against the physical tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{
		nodes:  finder.Evaluate(t.host),
		finder: finder,
	}
}
