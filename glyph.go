package sdlttf

import "github.com/gogpu/sdlttf/internal/ffi"

// GlyphMetrics describes one glyph's bounding box and horizontal advance,
// all in pixels relative to the glyph origin on the baseline.
type GlyphMetrics struct {
	MinX    int
	MaxX    int
	MinY    int
	MaxY    int
	Advance int
}

// glyphCode converts a rune to the 16-bit codepoint the native glyph entry
// points accept. Runes outside the Basic Multilingual Plane are rejected
// rather than silently truncated: truncation would look up an unrelated
// glyph.
func glyphCode(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	return uint16(r), true
}

// GlyphIndex returns the font's glyph index for the given rune. ok is false
// when the font provides no glyph for the rune, and always false for runes
// above U+FFFF (the native lookup is limited to 16-bit codepoints).
func (f *Font) GlyphIndex(r rune) (index int, ok bool) {
	if f.raw == 0 {
		return 0, false
	}
	code, ok := glyphCode(r)
	if !ok {
		return 0, false
	}
	idx := ffi.TTFGlyphIsProvided(f.raw, code)
	if idx == 0 {
		return 0, false
	}
	return int(idx), true
}

// Metrics returns the glyph metrics for the given rune. ok is false when the
// metrics cannot be computed, typically because the glyph is absent, and
// always false for runes above U+FFFF.
func (f *Font) Metrics(r rune) (m GlyphMetrics, ok bool) {
	if f.raw == 0 {
		return GlyphMetrics{}, false
	}
	code, ok := glyphCode(r)
	if !ok {
		return GlyphMetrics{}, false
	}
	var minx, maxx, miny, maxy, advance int32
	if ffi.TTFGlyphMetrics(f.raw, code, &minx, &maxx, &miny, &maxy, &advance) != 0 {
		return GlyphMetrics{}, false
	}
	return GlyphMetrics{
		MinX:    int(minx),
		MaxX:    int(maxx),
		MinY:    int(miny),
		MaxY:    int(maxy),
		Advance: int(advance),
	}, true
}

// SizeBytes returns the pixel dimensions the Latin-1 encoded text would
// occupy if rendered with the current style settings, without rendering.
func (f *Font) SizeBytes(text []byte) (w, h int, err error) {
	if f.raw == 0 {
		return 0, 0, ErrFontClosed
	}
	var cw, ch int32
	if ffi.TTFSizeText(f.raw, cstr(text), &cw, &ch) != 0 {
		return 0, 0, getError("SizeBytes")
	}
	return int(cw), int(ch), nil
}

// SizeString returns the pixel dimensions the UTF-8 text would occupy if
// rendered with the current style settings, without rendering.
func (f *Font) SizeString(text string) (w, h int, err error) {
	if f.raw == 0 {
		return 0, 0, ErrFontClosed
	}
	var cw, ch int32
	if ffi.TTFSizeUTF8(f.raw, cstr([]byte(text)), &cw, &ch) != 0 {
		return 0, 0, getError("SizeString")
	}
	return int(cw), int(ch), nil
}
