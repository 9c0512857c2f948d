package cssom

import (
	"fmt"
	"image/color"
	"strconv"
)

// Value is the value of a declaration. The set of value variants is closed:
//
//     Value = Keyword | Length | Color
//
// New kinds of values are added by adding a new variant to this package.
type Value interface {
	String() string
	isValue()
}

// Keyword is an identifier value, e.g. "auto" or "block".
type Keyword string

func (k Keyword) isValue() {}

func (k Keyword) String() string {
	return string(k)
}

// Length is a numeric magnitude together with a unit, e.g. 20px.
type Length struct {
	Magnitude float32
	Unit      Unit
}

// Px creates a length in pixels.
func Px(x float32) Length {
	return Length{Magnitude: x, Unit: UnitPx}
}

func (l Length) isValue() {}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Magnitude), 'f', -1, 32) + l.Unit.String()
}

// Color is a color value with four independent 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

func (c Color) isValue() {}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBA returns the color as an image/color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

var _ Value = Keyword("")
var _ Value = Length{}
var _ Value = Color{}

// --- Units -----------------------------------------------------------------

// Unit is the unit of a length. Units form a closed enumeration.
type Unit uint8

// Supported units
const (
	UnitPx Unit = iota + 1 // absolute pixel unit
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	}
	return "?"
}

// UnitFromString maps a (lower-case) unit name to a unit.
func UnitFromString(s string) (Unit, bool) {
	switch s {
	case "px":
		return UnitPx, true
	}
	return 0, false
}
