// Package core provides the widget lifecycle and the engine that maps a
// logical widget tree onto a tree of physical surfaces.
//
// # Widgets
//
// Every widget embeds either StatelessWidget or StatefulWidget and calls
// Init from its constructor, which assigns the widget its key in the
// Context's registry:
//
//	type Greeting struct {
//	    core.StatelessWidget
//	    Name string
//	}
//
//	func NewGreeting(ctx *core.Context, name string) *Greeting {
//	    g := &Greeting{Name: name}
//	    g.Init(ctx, g, "greeting")
//	    return g
//	}
//
//	func (g *Greeting) Build(ctx *core.Context) core.Widget {
//	    return widgets.NewText(ctx, "Hello, "+g.Name)
//	}
//
// A widget that owns a surface is physical. A widget without one is a
// ghost: it implements Builder and its output is forwarded until a
// physical widget is reached. Mount performs that forwarding and
// attaches the resulting surface under the parent's surface.
//
// # Lifecycle
//
//	Unrendered (Gone) -> Render -> Rendered (Visible) -> Mount -> Mounted
//	Mounted -> Unmount (registry entry cleared) -> Remove (terminal)
//
// Render may be called any number of times; each call resets the mounted
// flag. The tree is not safe for concurrent use: confine it to one
// goroutine.
package core
