// Package graphics provides the value objects consumed by style
// application: colors, borders, corner radii and shadows.
package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// CSS renders the color as a stylesheet value: "transparent", "#rrggbb"
// when opaque, otherwise "rgba(r, g, b, a)".
func (c Color) CSS() string {
	r, g, b, a := uint8(c>>16), uint8(c>>8), uint8(c), uint8(c>>24)
	switch a {
	case 0:
		return "transparent"
	case 0xFF:
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	default:
		alpha := strconv.FormatFloat(float64(a)/maxByte, 'f', 3, 64)
		alpha = strings.TrimRight(strings.TrimRight(alpha, "0"), ".")
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha)
	}
}

func (c Color) String() string {
	return c.CSS()
}

// ParseColor accepts a CSS color name ("white", "rebeccapurple"),
// "transparent", "#rgb", "#rrggbb" or "#aarrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return ColorTransparent, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want 3, 6 or 8 hex digits", s)
	}
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
