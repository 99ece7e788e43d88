// Package surface defines what the widget core needs from a physical
// display technology: surfaces that can be created, nested, cleared,
// styled and tagged with classes.
//
// The core never inspects a surface beyond this interface. Package dom
// provides an in-memory implementation that serializes to HTML.
package surface

// Surface is a physical display node owned by exactly one widget.
type Surface interface {
	// Tag names the kind of node (for HTML, the element name).
	Tag() string

	// AppendChild attaches child as the last child of this surface,
	// detaching it from any previous parent first.
	AppendChild(child Surface)
	// ClearChildren detaches every child of this surface.
	ClearChildren()
	// Children returns the attached children in paint order.
	Children() []Surface
	// Parent returns the surface this one is attached to, or nil.
	Parent() Surface

	// SetProperty sets a visual property. An empty value removes it.
	SetProperty(name, value string)
	// Property returns a visual property and whether it is set.
	Property(name string) (string, bool)

	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass adds or removes name and reports whether it is now present.
	ToggleClass(name string) bool
	HasClass(name string) bool

	// SetText replaces the text content of the surface.
	SetText(text string)
	Text() string
}

// Provider creates surfaces.
type Provider interface {
	CreateSurface(tag string) Surface
}

// Visual property names understood by style application.
const (
	PropBackgroundColor = "background-color"
	PropColor           = "color"
	PropWidth           = "width"
	PropHeight          = "height"
	PropDisplay         = "display"
	PropAlignItems      = "align-items"
	PropJustifyContent  = "justify-content"

	PropMarginTop    = "margin-top"
	PropMarginBottom = "margin-bottom"
	PropMarginLeft   = "margin-left"
	PropMarginRight  = "margin-right"

	PropPaddingTop    = "padding-top"
	PropPaddingBottom = "padding-bottom"
	PropPaddingLeft   = "padding-left"
	PropPaddingRight  = "padding-right"

	PropBorderWidth = "border-width"
	PropBorderColor = "border-color"
	PropBorderStyle = "border-style"

	PropBorderTopLeftRadius     = "border-top-left-radius"
	PropBorderTopRightRadius    = "border-top-right-radius"
	PropBorderBottomLeftRadius  = "border-bottom-left-radius"
	PropBorderBottomRightRadius = "border-bottom-right-radius"

	PropBoxShadow = "box-shadow"
	PropOverflow  = "overflow"
)

// Parser is implemented by providers that can build detached surfaces
// from markup.
type Parser interface {
	ParseMarkup(markup string) ([]Surface, error)
}
