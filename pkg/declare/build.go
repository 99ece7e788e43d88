package declare

import (
	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/layout"
	"github.com/buzzkit/buzz/pkg/surface"
	"github.com/buzzkit/buzz/pkg/widgets"
)

// Tree is a widget tree built from a document. Classes can only be added
// once surfaces exist, so the tree remembers them until it is mounted.
type Tree struct {
	Root    core.Widget
	classes map[core.Widget][]string
	// products holds the subtree each builder node produced last.
	products map[*widgets.Builder]core.Widget
}

// Build turns the document into widgets registered with ctx.
func (d *Document) Build(ctx *core.Context) (*Tree, error) {
	if err := d.Root.validate("root"); err != nil {
		return nil, err
	}
	t := &Tree{
		classes:  make(map[core.Widget][]string),
		products: make(map[*widgets.Builder]core.Widget),
	}
	t.Root = t.build(ctx, d.Root)
	return t, nil
}

// Mount mounts the tree under host and applies the declared classes.
func (t *Tree) Mount(ctx *core.Context, host surface.Surface) *core.Root {
	root := core.MountRoot(ctx, host, t.Root)
	t.ApplyClasses()
	return root
}

// Refresh renders root again and reapplies the declared classes.
func (t *Tree) Refresh(ctx *core.Context, root *core.Root) {
	root.Refresh(ctx)
	t.ApplyClasses()
}

// ApplyClasses adds the declared classes to every widget that owns a
// surface. Ghost widgets have none and are skipped.
func (t *Tree) ApplyClasses() {
	for w, classes := range t.classes {
		if w.Raw() == nil {
			continue
		}
		for _, c := range classes {
			w.Raw().AddClass(c)
		}
	}
}

func (t *Tree) build(ctx *core.Context, n *Node) core.Widget {
	var w core.Widget
	switch n.Type {
	case TypeContainer:
		children := make([]core.Widget, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, t.build(ctx, c))
		}
		c := widgets.NewContainer(ctx, children, mustStyle(n))
		if n.Flex != nil {
			c.CanFlex = *n.Flex
		}
		w = c
	case TypeSingle:
		var child core.Widget
		if n.Child != nil {
			child = t.build(ctx, n.Child)
		}
		c := widgets.NewSingleChildContainer(ctx, child, mustStyle(n))
		if n.Flex != nil {
			c.CanFlex = *n.Flex
		}
		w = c
	case TypeText:
		text := widgets.NewText(ctx, n.Text)
		if n.Color != "" {
			text.Color, _ = graphics.ParseColor(n.Color)
		}
		w = text
	case TypeHTML:
		w = widgets.NewHTML(ctx, n.Markup)
	case TypeBuilder:
		var b *widgets.Builder
		b = widgets.NewBuilder(ctx, func(ctx *core.Context) core.Widget {
			t.forget(t.products[b])
			out := t.build(ctx, n.Child)
			t.products[b] = out
			return out
		})
		w = b
	}

	if base, ok := w.(interface{ Base() *core.WidgetBase }); ok {
		applyBoxModel(base.Base(), n)
	}
	if len(n.Classes) > 0 {
		t.classes[w] = n.Classes
	}
	return w
}

// forget drops the class entries of a subtree that a builder replaced.
func (t *Tree) forget(w core.Widget) {
	if w == nil {
		return
	}
	delete(t.classes, w)
	switch w := w.(type) {
	case *widgets.Container:
		for _, c := range w.Children {
			t.forget(c)
		}
	case *widgets.SingleChildContainer:
		t.forget(w.Child)
	case *widgets.Builder:
		t.forget(t.products[w])
		delete(t.products, w)
	}
}

func applyBoxModel(b *core.WidgetBase, n *Node) {
	if n.Padding != nil {
		b.Padding = n.Padding.edgeInsets()
	}
	if n.Margin != nil {
		b.Margin = n.Margin.edgeInsets()
	}
	if n.Viewport != nil {
		b.Viewport, _ = n.Viewport.view()
	}
}

func (i *Insets) edgeInsets() *layout.EdgeInsets {
	return &layout.EdgeInsets{Top: i.Top, Bottom: i.Bottom, Left: i.Left, Right: i.Right}
}

func mustStyle(n *Node) *widgets.ContainerStyle {
	style, _ := n.containerStyle()
	return style
}

// containerStyle converts the textual style. A node without a style gets
// nil so that the container falls back to its defaults.
func (n *Node) containerStyle() (*widgets.ContainerStyle, error) {
	s := n.Style
	if s == nil {
		return nil, nil
	}
	style := widgets.NewContainerStyle()
	var err error
	if s.Background != "" {
		if style.BackgroundColor, err = graphics.ParseColor(s.Background); err != nil {
			return nil, err
		}
	}
	if s.Width != "" {
		if style.Width, err = layout.ParseDimension(s.Width); err != nil {
			return nil, err
		}
	}
	if s.Height != "" {
		if style.Height, err = layout.ParseDimension(s.Height); err != nil {
			return nil, err
		}
	}
	if s.Alignment != "" {
		if style.Alignment, err = layout.ParseAlignment(s.Alignment); err != nil {
			return nil, err
		}
	}
	style.Alignment.Forced = s.Forced

	if b := s.Border; b != nil {
		border := graphics.BorderAll(b.Width, graphics.ColorBlack)
		if b.Color != "" {
			if border.Color, err = graphics.ParseColor(b.Color); err != nil {
				return nil, err
			}
		}
		if b.Style != "" {
			if border.LineType, err = graphics.ParseBorderStyle(b.Style); err != nil {
				return nil, err
			}
		}
		style.Border = border
	}
	if r := s.Radius; r != nil {
		style.Radius = &graphics.Radius{
			TopLeft:     r.Top,
			TopRight:    r.Right,
			BottomLeft:  r.Left,
			BottomRight: r.Bottom,
		}
	}
	if sh := s.Shadow; sh != nil {
		shadow := &graphics.BoxShadow{
			Color:      graphics.ColorBlack,
			Offset:     graphics.Offset{X: sh.X, Y: sh.Y},
			BlurRadius: sh.Blur,
			Spread:     sh.Spread,
			Inset:      sh.Inset,
		}
		if sh.Color != "" {
			if shadow.Color, err = graphics.ParseColor(sh.Color); err != nil {
				return nil, err
			}
		}
		style.Shadow = shadow
	}
	return style, nil
}
