package core

import "github.com/buzzkit/buzz/pkg/errors"

// Mount renders child under parent and forwards through ghost widgets
// until it reaches a physical widget, whose surface is then appended to
// parent's surface.
//
// Every hop that is not yet ready receives PostRender before the child is
// rendered again with that hop as the caller. Once attached, the physical
// widget's ancestor is parent and the original child is marked mounted
// and receives PostRender. Stateful widgets along the way, the original
// child included, are marked built. A nil child is ignored. A render that
// returns nil, or a chain that leads back to one of its own hops, aborts
// with a fatal error before anything is attached.
func Mount(ctx *Context, parent, child Widget) {
	const op = "core.Mount"
	mustContext(op, ctx)
	if parent == nil || parent.Raw() == nil {
		errors.Fatal(op, errors.KindRender, "attempted to render a child before the parent's surface had been created")
	}
	if child == nil {
		return
	}
	forward(ctx, parent, child)
}

// MountAll clears every physical child of parent's surface and mounts
// children in order. This is a full refresh, not a diff.
func MountAll(ctx *Context, parent Widget, children []Widget) {
	const op = "core.MountAll"
	mustContext(op, ctx)
	if parent == nil || parent.Raw() == nil {
		errors.Fatal(op, errors.KindRender, "attempted to render children before the parent's surface had been created")
	}
	parent.Raw().ClearChildren()
	for _, child := range children {
		if child == nil {
			errors.Fatal(op, errors.KindRender, "attempted to render an undefined widget")
		}
		forward(ctx, parent, child)
	}
}

func forward(ctx *Context, parent, child Widget) {
	const op = "core.Mount"
	current := child.Render(ctx, parent)
	seen := make(map[Widget]bool)
	for !ready(current) {
		if seen[current] {
			errors.Fatal(op, errors.KindRender, "the %s %s forwards back to itself", current.Kind(), current.Key())
		}
		seen[current] = true
		markBuilt(current)
		current.PostRender(ctx)

		next := child.Render(ctx, current)
		if next == current && !ready(next) {
			errors.Fatal(op, errors.KindRender, "render of the %s %s made no progress", current.Kind(), current.Key())
		}
		current = next
	}

	current.base().ancestor = parent
	markBuilt(current)
	parent.Raw().AppendChild(current.Raw())

	child.base().mounted = true
	markBuilt(child)
	child.PostRender(ctx)
}

func ready(w Widget) bool {
	if w == nil {
		errors.Fatal("core.Mount", errors.KindRender, "attempted to render an undefined widget")
	}
	return w.Raw() != nil && w.IsMounted()
}
