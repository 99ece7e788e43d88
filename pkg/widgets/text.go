package widgets

import (
	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/surface"
)

// Text displays a string in a span.
type Text struct {
	core.StatelessWidget
	Content string
	// Color overrides the theme foreground when non-zero.
	Color graphics.Color
}

// NewText returns a text widget.
func NewText(ctx *core.Context, content string) *Text {
	t := &Text{Content: content}
	t.Init(ctx, t, "text")
	return t
}

// Render paints the text.
func (t *Text) Render(ctx *core.Context, parent core.Widget) core.Widget {
	t.StatelessWidget.Render(ctx, parent)
	raw := t.EnsureSurface(ctx, "span")
	raw.SetText(t.Content)

	color := t.Color
	if color == 0 && ctx.Theme != nil {
		color = ctx.Theme.ForegroundColor
	}
	if color != 0 {
		raw.SetProperty(surface.PropColor, color.CSS())
	}
	t.ApplyStyle(nil, nil)
	t.MarkPainted()
	return t
}
