package core

import (
	"testing"

	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/layout"
	"github.com/buzzkit/buzz/pkg/surface"
)

func TestApplyStyle(t *testing.T) {
	ctx, _ := testContext(t)
	b := newTestBox(ctx, "x", nil)
	b.Render(ctx, nil)
	b.Margin = layout.EdgeInsetsAll(4)
	b.Padding = layout.EdgeInsetsSymmetric(2, 8)

	b.ApplyStyle(&Decoration{
		Border: graphics.BorderAll(1, graphics.ColorBlack),
		Radius: graphics.RadiusCircular(6),
		Shadow: graphics.NewBoxShadow(graphics.ColorBlack, 4),
	}, nil)

	raw := b.Raw()
	want := map[string]string{
		surface.PropMarginTop:               "4px",
		surface.PropMarginRight:             "4px",
		surface.PropPaddingTop:              "2px",
		surface.PropPaddingLeft:             "8px",
		surface.PropBorderWidth:             "1px",
		surface.PropBorderColor:             "#000000",
		surface.PropBorderStyle:             "solid",
		surface.PropBorderTopLeftRadius:     "6px",
		surface.PropBorderBottomRightRadius: "6px",
	}
	for name, v := range want {
		if got, _ := raw.Property(name); got != v {
			t.Errorf("%s = %q, want %q", name, got, v)
		}
	}
	if _, ok := raw.Property(surface.PropBoxShadow); !ok {
		t.Error("expected a box shadow")
	}
}

func TestApplyStyle_Viewport(t *testing.T) {
	ctx, _ := testContext(t)
	b := newTestBox(ctx, "x", nil)
	b.Render(ctx, nil)

	b.Viewport = &layout.View{Height: layout.Pixels(200), Scrollable: true}
	b.ApplyStyle(nil, nil)
	raw := b.Raw()
	if got, _ := raw.Property(surface.PropHeight); got != "200px" {
		t.Errorf("height = %q", got)
	}
	if _, ok := raw.Property(surface.PropWidth); ok {
		t.Error("an unset viewport width should leave the width alone")
	}
	if got, _ := raw.Property(surface.PropOverflow); got != "auto" {
		t.Errorf("overflow = %q, want auto", got)
	}

	b.Viewport.Scrollable = false
	b.ApplyStyle(nil, nil)
	if got, _ := raw.Property(surface.PropOverflow); got != "hidden" {
		t.Errorf("overflow = %q, want hidden", got)
	}
}

func TestApplyStyle_Target(t *testing.T) {
	ctx, doc := testContext(t)
	b := newTestBox(ctx, "x", nil)
	b.Render(ctx, nil)
	b.Margin = layout.EdgeInsetsAll(1)

	target := doc.CreateSurface("span")
	b.ApplyStyle(nil, target)

	if _, ok := target.Property(surface.PropMarginTop); !ok {
		t.Error("style should land on the target")
	}
	if _, ok := b.Raw().Property(surface.PropMarginTop); ok {
		t.Error("own surface should be untouched when a target is given")
	}
}

func TestApplyStyle_BeforeRenderIsFatal(t *testing.T) {
	ctx, _ := testContext(t)
	b := newTestBox(ctx, "x", nil)
	expectFatal(t, func() { b.ApplyStyle(nil, nil) })
}

func TestClasses(t *testing.T) {
	ctx, _ := testContext(t)
	b := newTestBox(ctx, "x", nil)

	expectFatal(t, func() { b.AddClass("card") })

	b.Render(ctx, nil)
	b.AddClass("card")
	if !b.Raw().HasClass("card") {
		t.Error("expected class card")
	}
	if b.ToggleClass("card") {
		t.Error("toggle should remove an existing class")
	}
	if !b.ToggleClass("active") {
		t.Error("toggle should add a missing class")
	}
	b.RemoveClass("active")
	if b.Raw().HasClass("active") {
		t.Error("class should be removed")
	}
}
