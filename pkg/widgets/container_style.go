package widgets

import (
	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/layout"
	"github.com/buzzkit/buzz/pkg/surface"
)

// ContainerStyle describes how a container paints its own box.
type ContainerStyle struct {
	BackgroundColor graphics.Color
	Width           layout.Dimension
	Height          layout.Dimension
	Alignment       layout.Alignment
	Border          *graphics.Border
	Radius          *graphics.Radius
	Shadow          *graphics.BoxShadow
}

// NewContainerStyle returns a transparent style that fills its parent.
func NewContainerStyle() *ContainerStyle {
	return &ContainerStyle{
		BackgroundColor: graphics.ColorTransparent,
		Width:           layout.MatchParent,
		Height:          layout.MatchParent,
	}
}

// WithAlignment returns a copy of the style with the given alignment.
func (s ContainerStyle) WithAlignment(a layout.Alignment) *ContainerStyle {
	s.Alignment = a
	return &s
}

// WithSize returns a copy of the style with the given width and height.
func (s ContainerStyle) WithSize(width, height layout.Dimension) *ContainerStyle {
	s.Width = width
	s.Height = height
	return &s
}

func (s *ContainerStyle) decoration() *core.Decoration {
	if s == nil {
		return nil
	}
	return &core.Decoration{Border: s.Border, Radius: s.Radius, Shadow: s.Shadow}
}

// applyContainerStyle paints style onto the surface of w. Without a style
// it falls back to the theme background and the intrinsic size.
func applyContainerStyle(ctx *core.Context, w *core.WidgetBase, style *ContainerStyle, canFlex bool, intrinsic layout.Dimension) {
	w.ApplyStyle(style.decoration(), nil)
	raw := w.Raw()

	if style == nil {
		background := graphics.ColorTransparent
		if ctx.Theme != nil {
			background = ctx.Theme.BackgroundColor
		}
		raw.SetProperty(surface.PropBackgroundColor, background.CSS())
		raw.SetProperty(surface.PropHeight, intrinsic.CSS())
		raw.SetProperty(surface.PropWidth, intrinsic.CSS())
		return
	}

	raw.SetProperty(surface.PropBackgroundColor, style.BackgroundColor.CSS())
	raw.SetProperty(surface.PropHeight, style.Height.CSS())
	raw.SetProperty(surface.PropWidth, style.Width.CSS())

	if !style.Alignment.IsSet() {
		return
	}
	primary, cross, ok := style.Alignment.Axes()
	if !ok {
		errors.Fatal("widgets.applyContainerStyle", errors.KindStyle,
			"unexpected alignment value %s on the %s %s", style.Alignment.Value, w.Kind(), w.Key())
	}
	if !canFlex {
		ctx.Debugf("detected alignment %s in the %s %s which is not flexbox-based; ignoring it",
			style.Alignment.Value, w.Kind(), w.Key())
		return
	}
	raw.SetProperty(surface.PropAlignItems, cross.String())
	raw.SetProperty(surface.PropJustifyContent, primary.String())
	raw.SetProperty(surface.PropDisplay, "flex")
}
