package style

import (
	"fmt"

	"github.com/npillmayer/tinystyle/cssom"
)

// Display is a type for CSS property "display".
type Display uint8

// Display modes. The zero value is DisplayInline, the initial value of
// property "display".
const (
	DisplayInline Display = iota // CSS inline context
	DisplayBlock                 // CSS block context
	DisplayNone                  // element generates no box
)

func (disp Display) String() string {
	switch disp {
	case DisplayInline:
		return "inline"
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	}
	return fmt.Sprintf("Display(%d)", uint8(disp))
}

// IsBlockLevel return true for display mode block.
func (disp Display) IsBlockLevel() bool {
	return disp == DisplayBlock
}

// ParseDisplay returns the display mode for a keyword of property "display".
// Unknown keywords result in DisplayInline and an error.
func ParseDisplay(display string) (Display, error) {
	switch display {
	case "inline":
		return DisplayInline, nil
	case "block":
		return DisplayBlock, nil
	case "none":
		return DisplayNone, nil
	}
	return DisplayInline, fmt.Errorf("unknown display mode: %s", display)
}

// DisplayOf reads the keyword property "display" from a property map.
// Absent, non-keyword or unrecognized values default to DisplayInline.
func DisplayOf(pmap *PropertyMap) Display {
	v, ok := pmap.Get("display")
	if !ok {
		return DisplayInline
	}
	kw, ok := v.(cssom.Keyword)
	if !ok {
		return DisplayInline
	}
	disp, err := ParseDisplay(string(kw))
	if err != nil {
		tracer().Debugf("style: %v, using inline", err)
	}
	return disp
}
