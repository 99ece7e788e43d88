package widgets

import (
	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/layout"
)

// SingleChildContainer is a div holding at most one child.
//
// Without a style it sizes to its content and paints the theme background.
type SingleChildContainer struct {
	core.StatelessWidget
	Child core.Widget
	Style *ContainerStyle
	// CanFlex allows the container to become a flex box so that
	// Style.Alignment takes effect. NewSingleChildContainer sets it.
	CanFlex bool
}

// NewSingleChildContainer returns a container for child. Both child and
// style may be nil.
func NewSingleChildContainer(ctx *core.Context, child core.Widget, style *ContainerStyle) *SingleChildContainer {
	c := &SingleChildContainer{Child: child, Style: style, CanFlex: true}
	c.Init(ctx, c, "singlechildcontainer")
	return c
}

// Render paints the container and mounts its child.
func (c *SingleChildContainer) Render(ctx *core.Context, parent core.Widget) core.Widget {
	c.StatelessWidget.Render(ctx, parent)
	c.EnsureSurface(ctx, "div")
	applyContainerStyle(ctx, &c.WidgetBase, c.Style, c.CanFlex, layout.MatchContent)
	c.Raw().ClearChildren()
	core.Mount(ctx, c, c.Child)
	c.MarkPainted()
	return c
}

// Unmount unmounts the container and then its child. It reports success
// only if both succeed.
func (c *SingleChildContainer) Unmount(ctx *core.Context) bool {
	if !c.StatelessWidget.Unmount(ctx) {
		return false
	}
	if c.Child == nil {
		return true
	}
	return c.Child.Unmount(ctx)
}

// Remove releases the container and then its child.
func (c *SingleChildContainer) Remove(ctx *core.Context) {
	c.StatelessWidget.Remove(ctx)
	if c.Child != nil {
		c.Child.Remove(ctx)
	}
}

// Container is a div holding an ordered list of children. Every render
// clears the surface and mounts all children again.
//
// Without a style it fills its parent and paints the theme background.
type Container struct {
	core.StatelessWidget
	Children []core.Widget
	Style    *ContainerStyle
	// CanFlex allows the container to become a flex box so that
	// Style.Alignment takes effect. NewContainer sets it.
	CanFlex bool
}

// NewContainer returns a container for children. style may be nil.
func NewContainer(ctx *core.Context, children []core.Widget, style *ContainerStyle) *Container {
	c := &Container{Children: children, Style: style, CanFlex: true}
	c.Init(ctx, c, "container")
	return c
}

// Render paints the container and mounts every child in order.
func (c *Container) Render(ctx *core.Context, parent core.Widget) core.Widget {
	c.StatelessWidget.Render(ctx, parent)
	c.EnsureSurface(ctx, "div")
	applyContainerStyle(ctx, &c.WidgetBase, c.Style, c.CanFlex, layout.MatchParent)
	core.MountAll(ctx, c, c.Children)
	c.MarkPainted()
	return c
}

// Unmount unmounts the container and every child, even after a failure,
// and reports whether all of them succeeded.
func (c *Container) Unmount(ctx *core.Context) bool {
	if !c.StatelessWidget.Unmount(ctx) {
		return false
	}
	ok := true
	for _, child := range c.Children {
		if child != nil && !child.Unmount(ctx) {
			ok = false
		}
	}
	return ok
}

// Remove releases the container and then every child.
func (c *Container) Remove(ctx *core.Context) {
	c.StatelessWidget.Remove(ctx)
	for _, child := range c.Children {
		if child != nil {
			child.Remove(ctx)
		}
	}
}
