package sdlttf

import "strings"

// Style is a bitset of render styles applied on top of the font face.
// Combine styles with bitwise or: StyleBold | StyleItalic.
type Style int

// Style bits, matching the native TTF_STYLE_* values.
const (
	StyleNormal        Style = 0x00
	StyleBold          Style = 0x01
	StyleItalic        Style = 0x02
	StyleUnderline     Style = 0x04
	StyleStrikethrough Style = 0x08
)

// Has reports whether every bit of s2 is set in s.
func (s Style) Has(s2 Style) bool {
	return s&s2 == s2
}

// String returns a "|"-separated list of the set style bits, or "normal".
func (s Style) String() string {
	if s == StyleNormal {
		return "normal"
	}
	var parts []string
	for _, e := range []struct {
		bit  Style
		name string
	}{
		{StyleBold, "bold"},
		{StyleItalic, "italic"},
		{StyleUnderline, "underline"},
		{StyleStrikethrough, "strikethrough"},
	} {
		if s.Has(e.bit) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Hinting selects the native rasterizer's strategy for aligning glyph
// outlines to the pixel grid.
type Hinting int

// Hinting modes, matching the native TTF_HINTING_* values.
const (
	HintingNormal Hinting = 0
	HintingLight  Hinting = 1
	HintingMono   Hinting = 2
	HintingNone   Hinting = 3
)

// String returns the lowercase name of the hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingNormal:
		return "normal"
	case HintingLight:
		return "light"
	case HintingMono:
		return "mono"
	case HintingNone:
		return "none"
	}
	return "unknown"
}
