// Package layout holds the box-model value objects: alignment, insets,
// axis dimensions and viewports.
package layout

import "fmt"

// AlignmentValue is the compass position of an Alignment. The set is
// closed: values outside the nine named positions are invalid.
type AlignmentValue int

const (
	// AlignmentNone means no alignment was specified.
	AlignmentNone AlignmentValue = iota
	AlignmentTopLeft
	AlignmentTopCenter
	AlignmentTopRight
	AlignmentCenterLeft
	AlignmentCenter
	AlignmentCenterRight
	AlignmentBottomLeft
	AlignmentBottomCenter
	AlignmentBottomRight
)

var alignmentNames = [...]string{
	AlignmentNone:         "none",
	AlignmentTopLeft:      "topLeft",
	AlignmentTopCenter:    "topCenter",
	AlignmentTopRight:     "topRight",
	AlignmentCenterLeft:   "centerLeft",
	AlignmentCenter:       "center",
	AlignmentCenterRight:  "centerRight",
	AlignmentBottomLeft:   "bottomLeft",
	AlignmentBottomCenter: "bottomCenter",
	AlignmentBottomRight:  "bottomRight",
}

func (v AlignmentValue) String() string {
	if v.Valid() {
		return alignmentNames[v]
	}
	return fmt.Sprintf("AlignmentValue(%d)", int(v))
}

// Valid reports whether v is AlignmentNone or one of the nine positions.
func (v AlignmentValue) Valid() bool {
	return v >= AlignmentNone && v <= AlignmentBottomRight
}

// AxisAlignment is where children sit along one axis of a flex box.
type AxisAlignment int

const (
	AxisStart AxisAlignment = iota
	AxisCenter
	AxisEnd
	// AxisBaseline is only produced for the cross axis of a forced alignment.
	AxisBaseline
)

func (a AxisAlignment) String() string {
	switch a {
	case AxisStart:
		return "start"
	case AxisCenter:
		return "center"
	case AxisEnd:
		return "end"
	case AxisBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("AxisAlignment(%d)", int(a))
	}
}

// Alignment positions children inside a container. Forced pins the
// cross axis to the baseline whatever the compass position.
type Alignment struct {
	Value  AlignmentValue
	Forced bool
}

// The nine compass alignments.
var (
	TopLeft      = Alignment{Value: AlignmentTopLeft}
	TopCenter    = Alignment{Value: AlignmentTopCenter}
	TopRight     = Alignment{Value: AlignmentTopRight}
	CenterLeft   = Alignment{Value: AlignmentCenterLeft}
	Center       = Alignment{Value: AlignmentCenter}
	CenterRight  = Alignment{Value: AlignmentCenterRight}
	BottomLeft   = Alignment{Value: AlignmentBottomLeft}
	BottomCenter = Alignment{Value: AlignmentBottomCenter}
	BottomRight  = Alignment{Value: AlignmentBottomRight}
)

// WithForced returns a copy of a with the baseline override set.
func (a Alignment) WithForced(forced bool) Alignment {
	a.Forced = forced
	return a
}

// IsSet reports whether an alignment was specified.
func (a Alignment) IsSet() bool {
	return a.Value != AlignmentNone
}

// axisTable maps each compass position to (primary, cross). The primary
// axis runs horizontally, the cross axis vertically.
var axisTable = map[AlignmentValue][2]AxisAlignment{
	AlignmentTopLeft:      {AxisStart, AxisStart},
	AlignmentTopCenter:    {AxisCenter, AxisStart},
	AlignmentTopRight:     {AxisEnd, AxisStart},
	AlignmentCenterLeft:   {AxisStart, AxisCenter},
	AlignmentCenter:       {AxisCenter, AxisCenter},
	AlignmentCenterRight:  {AxisEnd, AxisCenter},
	AlignmentBottomLeft:   {AxisStart, AxisEnd},
	AlignmentBottomCenter: {AxisCenter, AxisEnd},
	AlignmentBottomRight:  {AxisEnd, AxisEnd},
}

// Axes resolves a to its (primary, cross) pair. ok is false for
// AlignmentNone and for values outside the closed set.
func (a Alignment) Axes() (primary, cross AxisAlignment, ok bool) {
	pair, ok := axisTable[a.Value]
	if !ok {
		return 0, 0, false
	}
	primary, cross = pair[0], pair[1]
	if a.Forced {
		cross = AxisBaseline
	}
	return primary, cross, true
}

// ParseAlignment maps a compass name such as "centerLeft" to its Alignment.
func ParseAlignment(name string) (Alignment, error) {
	for v := AlignmentTopLeft; v <= AlignmentBottomRight; v++ {
		if alignmentNames[v] == name {
			return Alignment{Value: v}, nil
		}
	}
	return Alignment{}, fmt.Errorf("unknown alignment %q", name)
}
