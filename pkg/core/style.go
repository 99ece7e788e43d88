package core

import (
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/surface"
)

// Decoration is the part of a style that any widget can paint onto its
// surface.
type Decoration struct {
	Border *graphics.Border
	Radius *graphics.Radius
	Shadow *graphics.BoxShadow
}

func (w *WidgetBase) mustSurface(op, action string) surface.Surface {
	if w.raw == nil {
		errors.Fatal(op, errors.KindStyle, "attempted to %s the %s %s which has not been rendered", action, w.kind, w.key)
	}
	return w.raw
}

// ApplyStyle paints margin, padding, the viewport and deco onto target,
// or onto the widget's own surface when target is nil. The widget must own a surface
// either way.
func (w *WidgetBase) ApplyStyle(deco *Decoration, target surface.Surface) {
	raw := w.mustSurface("core.ApplyStyle", "apply style to")
	if target != nil {
		raw = target
	}

	if m := w.Margin; m != nil {
		raw.SetProperty(surface.PropMarginTop, graphics.Px(m.Top))
		raw.SetProperty(surface.PropMarginBottom, graphics.Px(m.Bottom))
		raw.SetProperty(surface.PropMarginLeft, graphics.Px(m.Left))
		raw.SetProperty(surface.PropMarginRight, graphics.Px(m.Right))
	}
	if p := w.Padding; p != nil {
		raw.SetProperty(surface.PropPaddingTop, graphics.Px(p.Top))
		raw.SetProperty(surface.PropPaddingBottom, graphics.Px(p.Bottom))
		raw.SetProperty(surface.PropPaddingLeft, graphics.Px(p.Left))
		raw.SetProperty(surface.PropPaddingRight, graphics.Px(p.Right))
	}
	if v := w.Viewport; v != nil {
		if v.Width.IsSet() {
			raw.SetProperty(surface.PropWidth, v.Width.CSS())
		}
		if v.Height.IsSet() {
			raw.SetProperty(surface.PropHeight, v.Height.CSS())
		}
		overflow := "hidden"
		if v.Scrollable {
			overflow = "auto"
		}
		raw.SetProperty(surface.PropOverflow, overflow)
	}
	if deco == nil {
		return
	}
	if b := deco.Border; b != nil {
		raw.SetProperty(surface.PropBorderWidth, graphics.Px(b.LineWidth))
		raw.SetProperty(surface.PropBorderColor, b.Color.CSS())
		raw.SetProperty(surface.PropBorderStyle, b.LineType.String())
	}
	if r := deco.Radius; r != nil {
		raw.SetProperty(surface.PropBorderTopLeftRadius, graphics.Px(r.TopLeft))
		raw.SetProperty(surface.PropBorderTopRightRadius, graphics.Px(r.TopRight))
		raw.SetProperty(surface.PropBorderBottomLeftRadius, graphics.Px(r.BottomLeft))
		raw.SetProperty(surface.PropBorderBottomRightRadius, graphics.Px(r.BottomRight))
	}
	if s := deco.Shadow; s != nil {
		raw.SetProperty(surface.PropBoxShadow, s.Stylesheet())
	}
}

// AddClass adds a class to the widget's surface for styling outside the
// toolkit.
func (w *WidgetBase) AddClass(name string) {
	w.mustSurface("core.AddClass", "add a class to").AddClass(name)
}

// RemoveClass removes a class from the widget's surface.
func (w *WidgetBase) RemoveClass(name string) {
	w.mustSurface("core.RemoveClass", "remove a class from").RemoveClass(name)
}

// ToggleClass adds the class if absent, removes it otherwise, and reports
// whether it is now present.
func (w *WidgetBase) ToggleClass(name string) bool {
	return w.mustSurface("core.ToggleClass", "toggle a class on").ToggleClass(name)
}
