package core

import (
	"bytes"
	"log"
	"testing"

	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/surface/dom"
)

// testContext returns a context backed by an in-memory document that runs
// detached work synchronously.
func testContext(t *testing.T) (*Context, *dom.Document) {
	t.Helper()
	doc := dom.NewDocument()
	ctx := NewContext(doc)
	ctx.Go = func(fn func()) { fn() }
	ctx.Logger = log.New(&bytes.Buffer{}, "", 0)
	return ctx, doc
}

// recorder collects lifecycle events in call order.
type recorder struct {
	events []string
	// parents holds each widget's logical parent as seen by PostRender.
	parents map[string]Widget
}

func (r *recorder) add(e string) {
	if r != nil {
		r.events = append(r.events, e)
	}
}

func (r *recorder) post(name string, parent Widget) {
	if r == nil {
		return
	}
	r.add("post:" + name)
	if r.parents == nil {
		r.parents = make(map[string]Widget)
	}
	r.parents[name] = parent
}

// testBox is a physical widget that paints a div.
type testBox struct {
	StatelessWidget
	name string
	rec  *recorder
}

func newTestBox(ctx *Context, name string, rec *recorder) *testBox {
	b := &testBox{name: name, rec: rec}
	b.Init(ctx, b, "box")
	return b
}

func (b *testBox) Render(ctx *Context, parent Widget) Widget {
	b.StatelessWidget.Render(ctx, parent)
	raw := b.EnsureSurface(ctx, "div")
	raw.SetText(b.name)
	b.MarkPainted()
	return b
}

func (b *testBox) PostRender(ctx *Context) {
	b.rec.post(b.name, b.Parent())
	b.StatelessWidget.PostRender(ctx)
}

// testGhost forwards to whatever build returns.
type testGhost struct {
	StatelessWidget
	name  string
	rec   *recorder
	build func(ctx *Context) Widget
}

func newTestGhost(ctx *Context, name string, rec *recorder, build func(ctx *Context) Widget) *testGhost {
	g := &testGhost{name: name, rec: rec, build: build}
	g.Init(ctx, g, "ghost")
	return g
}

func (g *testGhost) Build(ctx *Context) Widget {
	g.rec.add("build:" + g.name)
	return g.build(ctx)
}

func (g *testGhost) PostRender(ctx *Context) {
	g.rec.post(g.name, g.Parent())
	g.StatelessWidget.PostRender(ctx)
}

func (g *testGhost) BeforeRender(ctx *Context) error {
	g.rec.add("before:" + g.name)
	return nil
}

// testCounter is a stateful ghost.
type testCounter struct {
	StatefulWidget
	count int
}

func newTestCounter(ctx *Context) *testCounter {
	c := &testCounter{}
	c.Init(ctx, c, "")
	return c
}

func (c *testCounter) Build(ctx *Context) Widget {
	return newTestBox(ctx, "count", nil)
}

// mountHost returns a physical widget that can act as a parent.
func mountHost(t *testing.T, ctx *Context) *testBox {
	t.Helper()
	host := newTestBox(ctx, "host", nil)
	host.Render(ctx, nil)
	return host
}

// expectFatal runs fn and returns the fatal error it panics with.
func expectFatal(t *testing.T, fn func()) (fatal *errors.FatalError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a fatal error")
		}
		var ok bool
		fatal, ok = errors.AsFatal(r)
		if !ok {
			t.Fatalf("expected *errors.FatalError, got %T: %v", r, r)
		}
	}()
	fn()
	return nil
}

type captureHandler struct {
	errs   []*errors.BuzzError
	panics []*errors.PanicError
	fatals []*errors.FatalError
}

func (h *captureHandler) HandleError(err *errors.BuzzError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}
func (h *captureHandler) HandleFatal(err *errors.FatalError) {
	h.fatals = append(h.fatals, err)
}
