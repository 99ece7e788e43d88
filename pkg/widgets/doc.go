// Package widgets provides the containers and leaf widgets that trees are
// built from.
//
// Containers own a div surface, paint their style before their children
// and drive render forwarding for each child:
//
//	root := widgets.NewContainer(ctx, []core.Widget{
//	    widgets.NewText(ctx, "Title"),
//	    widgets.NewSingleChildContainer(ctx, body, &widgets.ContainerStyle{
//	        Width:     layout.MatchParent,
//	        Height:    layout.Pixels(120),
//	        Alignment: layout.CenterLeft,
//	    }),
//	}, nil)
//
// A nil style paints the theme background and the container's intrinsic
// size: content-fit for SingleChildContainer, parent-fit for Container.
//
// Ghost widgets have no surface of their own. Builder turns a function
// into one:
//
//	greeting := widgets.NewBuilder(ctx, func(ctx *core.Context) core.Widget {
//	    return widgets.NewText(ctx, "Hello")
//	})
package widgets
