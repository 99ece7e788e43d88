package widgets_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/layout"
	"github.com/buzzkit/buzz/pkg/surface"
	"github.com/buzzkit/buzz/pkg/surface/dom"
	buzztest "github.com/buzzkit/buzz/pkg/testing"
	"github.com/buzzkit/buzz/pkg/widgets"
)

func property(t *testing.T, w core.Widget, name string) string {
	t.Helper()
	if w.Raw() == nil {
		t.Fatalf("%s has no surface", w.Key())
	}
	v, _ := w.Raw().Property(name)
	return v
}

func mustFatal(t *testing.T, fn func()) *errors.FatalError {
	t.Helper()
	var fatal *errors.FatalError
	func() {
		defer func() {
			var ok bool
			fatal, ok = errors.AsFatal(recover())
			if !ok {
				t.Fatal("expected a fatal error")
			}
		}()
		fn()
	}()
	return fatal
}

func TestContainer_CenterLeft(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	c := widgets.NewContainer(ctx, nil, widgets.NewContainerStyle().WithAlignment(layout.CenterLeft))
	tester.PumpWidget(c)

	if got := property(t, c, surface.PropAlignItems); got != "center" {
		t.Errorf("align-items = %q, want center", got)
	}
	if got := property(t, c, surface.PropJustifyContent); got != "start" {
		t.Errorf("justify-content = %q, want start", got)
	}
	if got := property(t, c, surface.PropDisplay); got != "flex" {
		t.Errorf("display = %q, want flex", got)
	}
}

func TestContainer_AlignmentTable(t *testing.T) {
	tests := []struct {
		alignment layout.Alignment
		justify   string
		align     string
	}{
		{layout.TopLeft, "start", "start"},
		{layout.TopCenter, "center", "start"},
		{layout.TopRight, "end", "start"},
		{layout.CenterLeft, "start", "center"},
		{layout.Center, "center", "center"},
		{layout.CenterRight, "end", "center"},
		{layout.BottomLeft, "start", "end"},
		{layout.BottomCenter, "center", "end"},
		{layout.BottomRight, "end", "end"},
	}
	for _, tt := range tests {
		t.Run(tt.alignment.Value.String(), func(t *testing.T) {
			for _, forced := range []bool{false, true} {
				tester := buzztest.NewWidgetTesterWithT(t)
				ctx := tester.Context()
				style := widgets.NewContainerStyle().WithAlignment(tt.alignment.WithForced(forced))
				c := widgets.NewSingleChildContainer(ctx, nil, style)
				tester.PumpWidget(c)

				wantAlign := tt.align
				if forced {
					wantAlign = "baseline"
				}
				if got := property(t, c, surface.PropJustifyContent); got != tt.justify {
					t.Errorf("forced=%v justify-content = %q, want %q", forced, got, tt.justify)
				}
				if got := property(t, c, surface.PropAlignItems); got != wantAlign {
					t.Errorf("forced=%v align-items = %q, want %q", forced, got, wantAlign)
				}
			}
		})
	}
}

func TestContainer_UnknownAlignmentIsFatal(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	style := widgets.NewContainerStyle().WithAlignment(layout.Alignment{Value: layout.AlignmentValue(42)})
	c := widgets.NewContainer(ctx, nil, style)

	fatal := mustFatal(t, func() { tester.PumpWidget(c) })
	if !strings.Contains(fatal.Msg, "unexpected alignment value") {
		t.Errorf("unexpected message %q", fatal.Msg)
	}

	c.CanFlex = false
	mustFatal(t, func() { tester.PumpWidget(c) })
}

func TestContainer_NonFlexIgnoresAlignment(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	tester.SetVerbose(true)
	ctx := tester.Context()
	c := widgets.NewSingleChildContainer(ctx, nil, widgets.NewContainerStyle().WithAlignment(layout.Center))
	c.CanFlex = false
	tester.PumpWidget(c)

	if _, ok := c.Raw().Property(surface.PropDisplay); ok {
		t.Error("a non-flex container must not become a flex box")
	}
	if _, ok := c.Raw().Property(surface.PropAlignItems); ok {
		t.Error("alignment should be ignored")
	}
	if !strings.Contains(tester.Logs(), "not flexbox-based") {
		t.Errorf("expected a diagnostic, got %q", tester.Logs())
	}
}

func TestContainer_NilStyleDefaults(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	single := widgets.NewSingleChildContainer(ctx, nil, nil)
	multi := widgets.NewContainer(ctx, []core.Widget{single}, nil)
	tester.PumpWidget(multi)

	background := ctx.Theme.BackgroundColor.CSS()
	for _, tt := range []struct {
		w    core.Widget
		size string
	}{
		{single, "fit-content"},
		{multi, "100%"},
	} {
		if got := property(t, tt.w, surface.PropWidth); got != tt.size {
			t.Errorf("%s width = %q, want %q", tt.w.Kind(), got, tt.size)
		}
		if got := property(t, tt.w, surface.PropHeight); got != tt.size {
			t.Errorf("%s height = %q, want %q", tt.w.Kind(), got, tt.size)
		}
		if got := property(t, tt.w, surface.PropBackgroundColor); got != background {
			t.Errorf("%s background = %q, want %q", tt.w.Kind(), got, background)
		}
	}
}

func TestContainer_Decoration(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	style := widgets.NewContainerStyle().WithSize(layout.Pixels(120), layout.Percent(50))
	style.BackgroundColor = graphics.ColorBlue
	style.Border = graphics.BorderAll(2, graphics.ColorRed)
	style.Radius = graphics.RadiusCircular(8)
	c := widgets.NewSingleChildContainer(ctx, nil, style)
	c.Padding = layout.EdgeInsetsAll(4)
	tester.PumpWidget(c)

	want := map[string]string{
		surface.PropWidth:               "120px",
		surface.PropHeight:              "50%",
		surface.PropBackgroundColor:     "#0000ff",
		surface.PropBorderWidth:         "2px",
		surface.PropBorderColor:         "#ff0000",
		surface.PropBorderTopLeftRadius: "8px",
		surface.PropPaddingLeft:         "4px",
	}
	for name, v := range want {
		if got := property(t, c, name); got != v {
			t.Errorf("%s = %q, want %q", name, got, v)
		}
	}
}

func TestContainer_RefreshIsIdempotent(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	names := []string{"one", "two", "three"}
	var children []core.Widget
	for _, n := range names {
		children = append(children, widgets.NewText(ctx, n))
	}
	c := widgets.NewContainer(ctx, children, nil)
	tester.PumpWidget(c)

	order := func() []string {
		var out []string
		for _, n := range c.Raw().(*dom.Node).Nodes() {
			out = append(out, n.Text())
		}
		return out
	}
	first := order()
	tester.Pump()
	second := order()

	if !slices.Equal(first, names) || !slices.Equal(second, names) {
		t.Errorf("orders %v then %v, want %v both times", first, second, names)
	}
}

func TestContainer_ForwardsGhostChildren(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	text := widgets.NewText(ctx, "deep")
	inner := widgets.NewBuilder(ctx, func(*core.Context) core.Widget { return text })
	outer := widgets.NewBuilder(ctx, func(*core.Context) core.Widget { return inner })
	c := widgets.NewContainer(ctx, []core.Widget{outer}, nil)
	tester.PumpWidget(c)

	kids := c.Raw().Children()
	if len(kids) != 1 || kids[0] != text.Raw() {
		t.Fatalf("expected the text surface directly under the container, got %d children", len(kids))
	}
	if !outer.IsMounted() {
		t.Error("the declared child should be mounted")
	}
	if text.Ancestor() != c {
		t.Error("the physical descendant's ancestor should be the container")
	}
}

// spy records lifecycle calls and returns a fixed unmount result.
type spy struct {
	core.StatelessWidget
	unmountResult bool
	unmounts      int
	removes       int
}

func newSpy(ctx *core.Context, result bool) *spy {
	p := &spy{unmountResult: result}
	p.Init(ctx, p, "spy")
	return p
}

func (p *spy) Render(ctx *core.Context, parent core.Widget) core.Widget {
	p.StatelessWidget.Render(ctx, parent)
	p.EnsureSurface(ctx, "i")
	p.MarkPainted()
	return p
}

func (p *spy) Unmount(ctx *core.Context) bool {
	p.unmounts++
	p.StatelessWidget.Unmount(ctx)
	return p.unmountResult
}

func (p *spy) Remove(ctx *core.Context) {
	p.removes++
	p.StatelessWidget.Remove(ctx)
}

func TestContainer_UnmountAndRemove(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	spies := []*spy{newSpy(ctx, true), newSpy(ctx, false), newSpy(ctx, true)}
	c := widgets.NewContainer(ctx, []core.Widget{spies[0], spies[1], spies[2]}, nil)
	tester.PumpWidget(c)

	if c.Unmount(ctx) {
		t.Error("unmount should fail when any child fails")
	}
	for i, p := range spies {
		if p.unmounts != 1 {
			t.Errorf("spy %d unmounted %d times", i, p.unmounts)
		}
	}

	c.Remove(ctx)
	for i, p := range spies {
		if p.removes != 1 {
			t.Errorf("spy %d removed %d times", i, p.removes)
		}
	}
	if c.Raw() != nil {
		t.Error("container should release its surface")
	}
}

func TestSingleChildContainer_UnmountAndRemove(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()

	failing := newSpy(ctx, false)
	c := widgets.NewSingleChildContainer(ctx, failing, nil)
	tester.PumpWidget(c)
	if c.Unmount(ctx) {
		t.Error("unmount should report the child's failure")
	}
	c.Remove(ctx)
	if failing.removes != 1 {
		t.Errorf("child removed %d times", failing.removes)
	}

	empty := widgets.NewSingleChildContainer(ctx, nil, nil)
	tester.PumpWidget(empty)
	if !empty.Unmount(ctx) {
		t.Error("a container without a child unmounts successfully")
	}
	empty.Remove(ctx)
}

func TestSingleChildContainer_RefreshKeepsOneChild(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	c := widgets.NewSingleChildContainer(ctx, widgets.NewBuilder(ctx, func(ctx *core.Context) core.Widget {
		return widgets.NewText(ctx, "fresh")
	}), nil)
	tester.PumpWidget(c)
	entries := ctx.Registry.Len()
	for range 20 {
		tester.Pump()
	}

	if got := len(c.Raw().Children()); got != 1 {
		t.Errorf("expected 1 child after refreshes, got %d", got)
	}
	if got := ctx.Registry.Len(); got != entries {
		t.Errorf("registry grew from %d to %d entries across refreshes", entries, got)
	}
}
