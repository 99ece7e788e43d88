package graphics

import (
	"strconv"
	"strings"
)

// Offset is a displacement in pixels.
type Offset struct {
	X, Y float64
}

// BoxShadow defines a shadow to draw around a box.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Spread     float64
	// Inset draws the shadow inside the box.
	Inset bool
}

// NewBoxShadow creates a simple drop shadow with the given color and blur radius.
// Offset defaults to (0, 2) for a subtle downward shadow.
func NewBoxShadow(color Color, blurRadius float64) *BoxShadow {
	return &BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: 2},
		BlurRadius: blurRadius,
	}
}

// BoxShadowElevation returns a Material-style elevation shadow.
// Level should be 1-5, where higher levels have larger blur and offset.
func BoxShadowElevation(level int, color Color) *BoxShadow {
	level = min(max(level, 1), 5)
	offsets := []float64{1, 2, 4, 6, 8}
	blurs := []float64{3, 6, 10, 14, 18}
	spreads := []float64{0, 0, 1, 2, 3}

	return &BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: offsets[level-1]},
		BlurRadius: blurs[level-1],
		Spread:     spreads[level-1],
	}
}

// Stylesheet renders the shadow as a box-shadow value.
func (s BoxShadow) Stylesheet() string {
	parts := []string{
		Px(s.Offset.X),
		Px(s.Offset.Y),
		Px(max(s.BlurRadius, 0)),
		Px(s.Spread),
		s.Color.CSS(),
	}
	if s.Inset {
		parts = append([]string{"inset"}, parts...)
	}
	return strings.Join(parts, " ")
}

func (s BoxShadow) String() string {
	return s.Stylesheet()
}

// Px formats a pixel length.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
