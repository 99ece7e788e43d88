package widgets

import (
	"fmt"

	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/surface"
)

// HTML renders raw markup inside a div. The context's surface provider
// must implement surface.Parser; otherwise, or when the markup is
// malformed, the error is reported and the markup is shown as text.
type HTML struct {
	core.StatelessWidget
	Markup string
}

// NewHTML returns a markup widget.
func NewHTML(ctx *core.Context, markup string) *HTML {
	h := &HTML{Markup: markup}
	h.Init(ctx, h, "html")
	return h
}

// Render parses the markup into the widget's surface.
func (h *HTML) Render(ctx *core.Context, parent core.Widget) core.Widget {
	h.StatelessWidget.Render(ctx, parent)
	raw := h.EnsureSurface(ctx, "div")
	raw.ClearChildren()
	raw.SetText("")

	nodes, err := h.parse(ctx)
	if err != nil {
		errors.Report(&errors.BuzzError{
			Op:     "widgets.HTML",
			Kind:   errors.KindParsing,
			Widget: h.Key(),
			Err:    err,
		})
		raw.SetText(h.Markup)
	}
	for _, n := range nodes {
		raw.AppendChild(n)
	}
	h.ApplyStyle(nil, nil)
	h.MarkPainted()
	return h
}

func (h *HTML) parse(ctx *core.Context) ([]surface.Surface, error) {
	parser, ok := ctx.Surfaces.(surface.Parser)
	if !ok {
		return nil, fmt.Errorf("surface provider %T cannot parse markup", ctx.Surfaces)
	}
	return parser.ParseMarkup(h.Markup)
}
