package svg

import (
	"strconv"
)

// Color is one of NoColor, NamedColor, Rgb or Rgba.
//
// A nil Color in a shape means the attribute was never set. NoColor is an
// explicit "no paint" value and renders as "none".
type Color interface {
	// String returns the attribute value, e.g. "red" or "rgb(1,2,3)".
	String() string
	isColor()
}

// NoColor is the empty variant. It renders as "none".
type NoColor struct{}

// NamedColor is a color given by name ("red", "#fe0") and emitted verbatim.
type NamedColor string

// Rgb is an opaque color with 8-bit channels.
type Rgb struct {
	Red, Green, Blue uint8
}

// Rgba is a color with 8-bit channels and an opacity in [0, 1].
// The zero value is fully transparent; use NewRgba for explicit opacity.
type Rgba struct {
	Red, Green, Blue uint8
	Opacity          float64
}

// NoneColor is the named "none" color, the conventional fill for outlines.
var NoneColor Color = NamedColor("none")

// NewRgb returns an Rgb color.
func NewRgb(r, g, b uint8) Rgb { return Rgb{Red: r, Green: g, Blue: b} }

// NewRgba returns an Rgba color. Opacity is not range-checked.
func NewRgba(r, g, b uint8, opacity float64) Rgba {
	return Rgba{Red: r, Green: g, Blue: b, Opacity: opacity}
}

func (NoColor) String() string      { return "none" }
func (c NamedColor) String() string { return string(c) }

func (c Rgb) String() string {
	return "rgb(" + channels(c.Red, c.Green, c.Blue) + ")"
}

func (c Rgba) String() string {
	return "rgba(" + channels(c.Red, c.Green, c.Blue) + "," + formatNumber(c.Opacity) + ")"
}

func (NoColor) isColor()    {}
func (NamedColor) isColor() {}
func (Rgb) isColor()        {}
func (Rgba) isColor()       {}

func channels(r, g, b uint8) string {
	return strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b))
}

// FormatColor renders c as a fill attribute: fill="none", fill="red",
// fill="rgb(1,2,3)" or fill="rgba(1,2,3,0.5)". A nil color renders as none.
func FormatColor(c Color) string {
	return ColorAttr("fill", c)
}

// ColorAttr renders c as the attribute name="value".
func ColorAttr(name string, c Color) string {
	if c == nil {
		c = NoColor{}
	}
	return name + `="` + c.String() + `"`
}

// formatNumber matches the default stream formatting of floating point
// values: six significant digits, trailing zeros dropped.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
