// Package theme provides the application-wide defaults that style
// application falls back to when a container declares no style.
package theme

import "github.com/buzzkit/buzz/pkg/graphics"

// Brightness describes whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ThemeData contains the theme configuration for an application.
type ThemeData struct {
	// BackgroundColor is used by containers without a style.
	BackgroundColor graphics.Color
	// ForegroundColor is the default text color.
	ForegroundColor graphics.Color
	Brightness      Brightness
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		BackgroundColor: graphics.ColorWhite,
		ForegroundColor: graphics.ColorBlack,
		Brightness:      BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		BackgroundColor: graphics.RGB(0x12, 0x12, 0x12),
		ForegroundColor: graphics.ColorWhite,
		Brightness:      BrightnessDark,
	}
}

// CopyWith returns a copy of t with the background color replaced.
func (t *ThemeData) CopyWith(background graphics.Color) *ThemeData {
	out := *t
	out.BackgroundColor = background
	return &out
}
