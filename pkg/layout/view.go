package layout

// View is the viewport a widget draws into. Unset dimensions leave the
// widget's own size alone; containers apply their style size afterwards.
type View struct {
	Width  Dimension
	Height Dimension
	// Scrollable lets content overflow the viewport and scroll.
	Scrollable bool
}
