package sdlttf

import "image/color"

// Color represents a render color with 8-bit red, green, blue, and alpha
// components, matching the native library's color type. Alpha is
// non-premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from red, green, and blue components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from red, green, blue, and alpha components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements the standard color.Color interface, returning
// alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// packNative packs the color into the native four-channel value: one byte per
// channel in r, g, b, a order from the low byte up, exactly the register
// image of the native color struct. Total function, no failure mode.
func (c Color) packNative() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}
