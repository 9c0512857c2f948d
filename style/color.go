package style

import (
	"image/color"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/tinystyle/cssom"
)

// RGBA converts a declaration value to a color. Color values convert
// directly, keywords are interpreted as named CSS colors, e.g. "red" or
// "transparent". For any other value RGBA returns false.
func RGBA(v cssom.Value) (color.RGBA, bool) {
	switch c := v.(type) {
	case cssom.Color:
		return c.RGBA(), true
	case cssom.Keyword:
		col, err := csscolorparser.Parse(string(c))
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b, a := col.RGBA255()
		return color.RGBA{R: r, G: g, B: b, A: a}, true
	}
	return color.RGBA{}, false
}

// ColorOf looks up a color property in a property map, falling back to
// property fallback, then to def. Values which do not denote a color
// result in def as well.
//
//     pmap.ColorOf("border-color", "color", color.RGBA{A: 0xff})
func (pmap *PropertyMap) ColorOf(key, fallback string, def color.RGBA) color.RGBA {
	v := pmap.Lookup(key, fallback, nil)
	if c, ok := RGBA(v); ok {
		return c
	}
	return def
}
