package layout

import (
	"fmt"
	"strconv"
	"strings"
)

type dimensionKind int

const (
	dimensionUnset dimensionKind = iota
	dimensionPixels
	dimensionPercent
	dimensionMatchParent
	dimensionMatchContent
)

// Dimension is the size of a box along one axis: a fixed length or one of
// the intrinsic modes. The zero value leaves the size unset.
type Dimension struct {
	kind  dimensionKind
	value float64
}

var (
	// MatchParent fills the parent along the axis.
	MatchParent = Dimension{kind: dimensionMatchParent}
	// MatchContent fits the content along the axis.
	MatchContent = Dimension{kind: dimensionMatchContent}
)

// Pixels returns a fixed length.
func Pixels(v float64) Dimension {
	return Dimension{kind: dimensionPixels, value: v}
}

// Percent returns a length relative to the parent.
func Percent(v float64) Dimension {
	return Dimension{kind: dimensionPercent, value: v}
}

// IsSet reports whether d carries a size.
func (d Dimension) IsSet() bool {
	return d.kind != dimensionUnset
}

// CSS renders d as a stylesheet length; unset renders as "".
func (d Dimension) CSS() string {
	switch d.kind {
	case dimensionPixels:
		return strconv.FormatFloat(d.value, 'f', -1, 64) + "px"
	case dimensionPercent:
		return strconv.FormatFloat(d.value, 'f', -1, 64) + "%"
	case dimensionMatchParent:
		return "100%"
	case dimensionMatchContent:
		return "fit-content"
	default:
		return ""
	}
}

func (d Dimension) String() string {
	switch d.kind {
	case dimensionMatchParent:
		return "matchParent"
	case dimensionMatchContent:
		return "matchContent"
	case dimensionUnset:
		return "unset"
	default:
		return d.CSS()
	}
}

// ParseDimension accepts "matchParent", "matchContent", "12px", "12" and "50%".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return Dimension{}, nil
	case "matchParent":
		return MatchParent, nil
	case "matchContent":
		return MatchContent, nil
	}
	if num, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
		}
		return Percent(v), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	return Pixels(v), nil
}
