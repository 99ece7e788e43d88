package widgets

import "github.com/buzzkit/buzz/pkg/core"

// Builder is a ghost widget whose output comes from a function. It has no
// surface of its own.
type Builder struct {
	core.StatelessWidget
	BuildFunc func(ctx *core.Context) core.Widget
}

// NewBuilder returns a ghost widget that forwards to whatever build
// returns.
func NewBuilder(ctx *core.Context, build func(ctx *core.Context) core.Widget) *Builder {
	b := &Builder{BuildFunc: build}
	b.Init(ctx, b, "builder")
	return b
}

// Build implements core.Builder.
func (b *Builder) Build(ctx *core.Context) core.Widget {
	if b.BuildFunc == nil {
		return nil
	}
	return b.BuildFunc(ctx)
}
