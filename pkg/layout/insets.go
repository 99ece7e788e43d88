package layout

// EdgeInsets holds pixel offsets for the four sides of a box.
type EdgeInsets struct {
	Top, Bottom, Left, Right float64
}

// EdgeInsetsAll returns insets with every side set to v.
func EdgeInsetsAll(v float64) *EdgeInsets {
	return &EdgeInsets{Top: v, Bottom: v, Left: v, Right: v}
}

// EdgeInsetsSymmetric returns insets with equal vertical and equal horizontal sides.
func EdgeInsetsSymmetric(vertical, horizontal float64) *EdgeInsets {
	return &EdgeInsets{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}
