package core

import (
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/surface"
)

// RootKey is the well-known key of the view holder at the top of a tree.
const RootKey = "buzz-container"

// Root holds an externally created surface and the widget mounted in it.
type Root struct {
	StatelessWidget
	child Widget
}

// MountRoot wraps host in a Root registered under RootKey and mounts w
// into it.
func MountRoot(ctx *Context, host surface.Surface, w Widget) *Root {
	const op = "core.MountRoot"
	mustContext(op, ctx)
	if host == nil {
		errors.Fatal(op, errors.KindRender, "root surface is nil")
	}
	r := &Root{child: w}
	r.self = r
	r.kind = "container"
	r.variant = VariantStateless
	r.key = RootKey
	r.raw = host
	ctx.Registry.RegisterKey(RootKey, r)

	r.Refresh(ctx)
	return r
}

// Child returns the mounted widget.
func (r *Root) Child() Widget { return r.child }

// Refresh renders the child into the host surface again from scratch.
func (r *Root) Refresh(ctx *Context) {
	r.WidgetBase.Render(ctx, nil)
	MountAll(ctx, r, []Widget{r.child})
	r.MarkPainted()
}

// Unmount unmounts the root and its child.
func (r *Root) Unmount(ctx *Context) bool {
	if !r.StatelessWidget.Unmount(ctx) {
		return false
	}
	if r.child == nil {
		return true
	}
	return r.child.Unmount(ctx)
}

// Remove releases the root and its child.
func (r *Root) Remove(ctx *Context) {
	r.StatelessWidget.Remove(ctx)
	if r.child != nil {
		r.child.Remove(ctx)
	}
}
