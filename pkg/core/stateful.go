package core

import (
	stderrors "errors"
	"sync"
)

// ErrNotBuilt is returned by SetState before the engine has attached the
// widget's output to the physical tree.
var ErrNotBuilt = stderrors.New("core: state changed before the widget was built")

// StatefulWidget is the base for widgets that own mutable state. The
// engine marks it built once its output enters the physical tree; from
// then on SetState may be used.
//
// Example:
//
//	type counter struct {
//	    core.StatefulWidget
//	    count int
//	}
//
//	func (c *counter) Build(ctx *core.Context) core.Widget {
//	    return widgets.NewText(ctx, strconv.Itoa(c.count))
//	}
type StatefulWidget struct {
	WidgetBase
	needsRender bool
	disposers   []func()
	disposed    bool
	mu          sync.Mutex
}

// Init registers the widget. See StatelessWidget.Init.
func (s *StatefulWidget) Init(ctx *Context, self Widget, kind string) {
	s.init(ctx, self, kind, VariantStateful)
}

// Built reports whether the engine has marked the widget built.
func (s *StatefulWidget) Built() bool {
	return s.built
}

// SetState runs fn and flags the widget for rendering. It returns
// ErrNotBuilt, without running fn, until the widget is built.
//
// SetState is NOT thread-safe. It must only be called from the goroutine
// that owns the tree.
func (s *StatefulWidget) SetState(fn func()) error {
	if !s.built {
		return ErrNotBuilt
	}
	if s.disposed {
		return nil
	}
	if fn != nil {
		fn()
	}
	s.needsRender = true
	return nil
}

// NeedsRender reports whether SetState has run since the last render.
func (s *StatefulWidget) NeedsRender() bool {
	return s.needsRender
}

// Render clears the pending-render flag and renders as WidgetBase does.
func (s *StatefulWidget) Render(ctx *Context, parent Widget) Widget {
	s.needsRender = false
	return s.WidgetBase.Render(ctx, parent)
}

// OnDispose registers a cleanup function run when the widget is removed.
// Returns an unregister function. If the widget was already removed, the
// cleanup runs immediately.
func (s *StatefulWidget) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Remove runs the registered disposers in reverse order, then releases
// the widget as WidgetBase does.
func (s *StatefulWidget) Remove(ctx *Context) {
	s.runDisposers()
	s.WidgetBase.Remove(ctx)
}

func (s *StatefulWidget) runDisposers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
}

// IsDisposed reports whether Remove has run.
func (s *StatefulWidget) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

func markBuilt(w Widget) {
	if b := w.base(); b.variant == VariantStateful {
		b.built = true
	}
}
