package core

import (
	"slices"
	"testing"
)

func TestStateful_BuiltAfterMount(t *testing.T) {
	ctx, _ := testContext(t)
	host := mountHost(t, ctx)
	c := newTestCounter(ctx)

	if c.Built() {
		t.Fatal("a fresh stateful widget is not built")
	}
	if err := c.SetState(func() { c.count++ }); err != ErrNotBuilt {
		t.Fatalf("expected ErrNotBuilt, got %v", err)
	}
	if c.count != 0 {
		t.Error("SetState must not run fn before the widget is built")
	}

	Mount(ctx, host, c)

	if !c.Built() {
		t.Fatal("mount should mark the stateful widget built")
	}
	if err := c.SetState(func() { c.count++ }); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if c.count != 1 || !c.NeedsRender() {
		t.Error("SetState should run fn and request a render")
	}

	Mount(ctx, host, c)
	if c.NeedsRender() {
		t.Error("render should clear the pending flag")
	}
}

// statefulHop is a stateful ghost used as an intermediate hop.
type statefulHop struct {
	StatefulWidget
	child Widget
}

func (s *statefulHop) Build(ctx *Context) Widget { return s.child }

func TestStateful_IntermediateHopIsBuilt(t *testing.T) {
	ctx, _ := testContext(t)
	host := mountHost(t, ctx)

	hop := &statefulHop{child: newTestBox(ctx, "leaf", nil)}
	hop.Init(ctx, hop, "hop")
	top := newTestGhost(ctx, "top", nil, func(*Context) Widget { return hop })

	Mount(ctx, host, top)
	if !hop.Built() {
		t.Error("a stateful hop should be built once forwarding passes it")
	}
}

func TestStateful_StatelessNeverBuilt(t *testing.T) {
	ctx, _ := testContext(t)
	host := mountHost(t, ctx)
	b := newTestBox(ctx, "x", nil)
	Mount(ctx, host, b)
	if b.built {
		t.Error("only stateful widgets carry the built flag")
	}
}

func TestStateful_OnDispose(t *testing.T) {
	ctx, _ := testContext(t)
	c := newTestCounter(ctx)

	var order []int
	c.OnDispose(func() { order = append(order, 1) })
	unregister := c.OnDispose(func() { order = append(order, 2) })
	c.OnDispose(func() { order = append(order, 3) })
	unregister()

	c.Remove(ctx)
	if want := []int{3, 1}; !slices.Equal(order, want) {
		t.Errorf("disposers ran as %v, want %v", order, want)
	}
	if !c.IsDisposed() {
		t.Error("remove should dispose the widget")
	}

	c.Remove(ctx)
	if len(order) != 2 {
		t.Error("disposers must run once")
	}

	late := false
	c.OnDispose(func() { late = true })
	if !late {
		t.Error("a cleanup registered after removal runs immediately")
	}
}

func TestStateful_SetStateAfterDispose(t *testing.T) {
	ctx, _ := testContext(t)
	host := mountHost(t, ctx)
	c := newTestCounter(ctx)
	Mount(ctx, host, c)
	c.Remove(ctx)

	ran := false
	if err := c.SetState(func() { ran = true }); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if ran {
		t.Error("SetState after removal is a no-op")
	}
}
