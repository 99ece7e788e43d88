package graphics

import "fmt"

// BorderStyle is the line type of a border.
type BorderStyle int

const (
	BorderSolid BorderStyle = iota
	BorderDashed
	BorderDotted
	BorderDouble
	BorderNone
)

func (s BorderStyle) String() string {
	switch s {
	case BorderSolid:
		return "solid"
	case BorderDashed:
		return "dashed"
	case BorderDotted:
		return "dotted"
	case BorderDouble:
		return "double"
	case BorderNone:
		return "none"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
}

// ParseBorderStyle maps a stylesheet keyword to a BorderStyle.
func ParseBorderStyle(s string) (BorderStyle, error) {
	for _, style := range []BorderStyle{BorderSolid, BorderDashed, BorderDotted, BorderDouble, BorderNone} {
		if style.String() == s {
			return style, nil
		}
	}
	return 0, fmt.Errorf("unknown border style %q", s)
}

// Border is a uniform line around a box.
type Border struct {
	LineWidth float64
	Color     Color
	LineType  BorderStyle
}

// BorderAll returns a solid border of the given width and color.
func BorderAll(width float64, color Color) *Border {
	return &Border{LineWidth: width, Color: color, LineType: BorderSolid}
}

// Radius holds the four corner radii of a box, in pixels.
type Radius struct {
	TopLeft     float64
	TopRight    float64
	BottomLeft  float64
	BottomRight float64
}

// RadiusCircular returns a radius with all corners equal.
func RadiusCircular(r float64) *Radius {
	return &Radius{TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r}
}
