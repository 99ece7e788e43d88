package core

import (
	"reflect"
	"strings"

	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/layout"
	"github.com/buzzkit/buzz/pkg/surface"
)

// Visibility is whether a widget has been rendered yet.
type Visibility int

const (
	Gone Visibility = iota
	Visible
)

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "gone"
}

// Variant tags a widget as stateless or stateful.
type Variant int

const (
	VariantStateless Variant = iota
	VariantStateful
)

func (v Variant) String() string {
	if v == VariantStateful {
		return "stateful"
	}
	return "stateless"
}

// Widget is a node of the logical tree. Implementations embed
// StatelessWidget or StatefulWidget.
type Widget interface {
	// Render records parent as the caller and returns the widget that
	// represents this one: itself for physical widgets, the built output
	// for ghosts. It must never return nil.
	Render(ctx *Context, parent Widget) Widget
	// BeforeRender runs detached each time the widget is rendered.
	// Its completion is not ordered with respect to mounting.
	BeforeRender(ctx *Context) error
	// PostRender runs after the widget joins the logical tree.
	PostRender(ctx *Context)
	// Unmount clears bookkeeping and reports success. It never panics
	// for a valid context.
	Unmount(ctx *Context) bool
	// Remove releases the widget's surface and box model. Terminal.
	Remove(ctx *Context)

	Key() string
	Kind() string
	Raw() surface.Surface
	IsMounted() bool

	base() *WidgetBase
}

// Builder is implemented by ghost widgets: widgets with no surface of
// their own whose output is forwarded to the first physical descendant.
type Builder interface {
	Build(ctx *Context) Widget
}

// WidgetBase holds the identity, tree position and lifecycle flags
// shared by every widget.
type WidgetBase struct {
	key        string
	kind       string
	variant    Variant
	self       Widget
	parent     Widget
	ancestor   Widget
	mounted    bool
	built      bool
	visibility Visibility
	raw        surface.Surface

	// output is the latest hop produced by this widget during forwarding
	// and outputParent the widget that rendered it. child is what Build
	// returned, the ghost's only logical child.
	output       Widget
	outputParent Widget
	child        Widget
	advancing    bool

	Viewport *layout.View
	Padding  *layout.EdgeInsets
	Margin   *layout.EdgeInsets
}

func (w *WidgetBase) base() *WidgetBase { return w }

// Base returns the embedded base, for code that configures the box model
// of widgets it only knows through the Widget interface.
func (w *WidgetBase) Base() *WidgetBase { return w }

func (w *WidgetBase) init(ctx *Context, self Widget, kind string, variant Variant) {
	mustContext("core.Init", ctx)
	if self == nil {
		errors.Fatal("core.Init", errors.KindLifecycle, "widget must pass itself to Init")
	}
	if self.base() != w {
		errors.Fatal("core.Init", errors.KindLifecycle, "Init called with a widget that does not embed this base")
	}
	if kind == "" {
		kind = kindOf(self)
	}
	w.self = self
	w.kind = kind
	w.variant = variant
	w.parent = nil
	w.ancestor = nil
	w.raw = nil
	w.visibility = Gone
	w.mounted = false
	w.key = ctx.Registry.Register(kind, self)
}

func kindOf(w Widget) string {
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// Key returns the registry key assigned at construction.
func (w *WidgetBase) Key() string { return w.key }

// Kind returns the declared kind used in the key.
func (w *WidgetBase) Kind() string { return w.kind }

// Variant returns whether the widget is stateless or stateful.
func (w *WidgetBase) Variant() Variant { return w.variant }

// Parent returns the widget that most recently rendered this one.
func (w *WidgetBase) Parent() Widget { return w.parent }

// Ancestor returns the nearest physical widget this widget's surface was
// attached under.
func (w *WidgetBase) Ancestor() Widget { return w.ancestor }

// IsMounted reports whether the widget's output is attached.
func (w *WidgetBase) IsMounted() bool { return w.mounted }

// Visibility returns Gone until the first render.
func (w *WidgetBase) Visibility() Visibility { return w.visibility }

// Raw returns the surface owned by this widget, or nil for ghosts.
func (w *WidgetBase) Raw() surface.Surface { return w.raw }

// Render implements Widget. Physical widgets call it first from their own
// Render and then paint their surface.
//
// When parent is the hop this widget produced last, Render advances the
// forwarding chain by one hop instead of starting over.
func (w *WidgetBase) Render(ctx *Context, parent Widget) Widget {
	mustContext("core.Render", ctx)
	if w.self == nil {
		errors.Fatal("core.Render", errors.KindLifecycle, "widget was not initialized with Init")
	}
	if parent != nil && w.output != nil && parent == w.output && w.output != w.self {
		return w.advance(ctx)
	}

	w.parent = parent
	w.visibility = Visible
	w.mounted = false
	w.output, w.outputParent = nil, nil

	self := w.self
	ctx.spawn("core.BeforeRender", func() {
		if err := self.BeforeRender(ctx); err != nil {
			errors.Report(&errors.BuzzError{
				Op:     "core.BeforeRender",
				Kind:   errors.KindLifecycle,
				Widget: self.Key(),
				Err:    err,
			})
		}
	})

	builder, ok := self.(Builder)
	if !ok {
		return self
	}
	out := builder.Build(ctx)
	if out == nil {
		return nil
	}
	if prev := w.child; prev != nil && prev != out && prev != self {
		prev.Unmount(ctx)
		prev.Remove(ctx)
	}
	w.child = out
	if out != self {
		// The hop is rendered again in this pass, so it is not mounted yet.
		ob := out.base()
		ob.mounted = false
		ob.parent = self
	}
	w.output, w.outputParent = out, self
	return out
}

func (w *WidgetBase) advance(ctx *Context) Widget {
	if w.advancing {
		errors.Fatal("core.Render", errors.KindRender, "the %s %s forwards to itself", w.kind, w.key)
	}
	w.advancing = true
	defer func() { w.advancing = false }()

	hop := w.output
	next := hop.Render(ctx, w.outputParent)
	if next == nil {
		return nil
	}
	if next != hop {
		next.base().parent = hop
	}
	w.outputParent, w.output = hop, next
	return next
}

// BeforeRender is a no-op default.
func (w *WidgetBase) BeforeRender(ctx *Context) error {
	return nil
}

// PostRender logs the widget's initialization when verbose.
func (w *WidgetBase) PostRender(ctx *Context) {
	mustContext("core.PostRender", ctx)
	if !ctx.Verbose() || w.key == RootKey {
		return
	}
	parentKey := ""
	if w.parent != nil {
		parentKey = w.parent.Key()
	}
	ctx.Debugf("initialized the %s with the key #%s and its parent is #%s", w.kind, w.key, parentKey)
}

// Unmount clears the registry entry and unmounts the built child of a
// ghost. It reports whether the child unmounted too.
func (w *WidgetBase) Unmount(ctx *Context) bool {
	mustContext("core.Unmount", ctx)
	ctx.Debugf("unmounted the %s with the identifier %s", w.kind, w.key)
	ctx.Registry.Unregister(w.key)
	if c := w.child; c != nil && c != w.self {
		return c.Unmount(ctx)
	}
	return true
}

// Remove releases the surface, viewport, padding and margin, then removes
// the built child of a ghost.
func (w *WidgetBase) Remove(ctx *Context) {
	mustContext("core.Remove", ctx)
	w.raw = nil
	w.Viewport = nil
	w.Padding = nil
	w.Margin = nil
	w.output, w.outputParent = nil, nil
	ctx.Debugf("deallocated the %s with the identifier %s", w.kind, w.key)
	if c := w.child; c != nil && c != w.self {
		w.child = nil
		c.Remove(ctx)
	}
}

// EnsureSurface returns the widget's surface, creating it with tag on
// first use.
func (w *WidgetBase) EnsureSurface(ctx *Context, tag string) surface.Surface {
	mustContext("core.EnsureSurface", ctx)
	if w.raw == nil {
		if ctx.Surfaces == nil {
			errors.Fatal("core.EnsureSurface", errors.KindRender, "context has no surface provider")
		}
		w.raw = ctx.Surfaces.CreateSurface(tag)
	}
	return w.raw
}

// MarkPainted is called by physical widgets at the end of Render, once
// their surface and its subtree are complete.
func (w *WidgetBase) MarkPainted() {
	if w.raw == nil {
		errors.Fatal("core.MarkPainted", errors.KindRender, "the %s %s has no surface to paint", w.kind, w.key)
	}
	w.mounted = true
}

// StatelessWidget is the base for widgets whose output only changes when
// an ancestor renders them again.
type StatelessWidget struct {
	WidgetBase
}

// Init registers the widget. Call it from the constructor with the outer
// widget as self; kind names the widget in its key and defaults to the
// lowercased type name.
func (s *StatelessWidget) Init(ctx *Context, self Widget, kind string) {
	s.init(ctx, self, kind, VariantStateless)
}
