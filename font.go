package sdlttf

import "github.com/gogpu/sdlttf/internal/ffi"

// Font is the opaque holder of one loaded font face at a fixed point size.
//
// A Font owns its native resource and must be released with [Font.Close]
// exactly once when no longer needed. All methods on a closed Font are safe:
// queries return zero values, mutators do nothing, and fallible operations
// return [ErrFontClosed].
type Font struct {
	raw   uintptr
	owned bool
	src   *RWops // pins the stream for RWops-backed fonts; nil otherwise
}

// newFont wraps a native font pointer.
func newFont(raw uintptr, owned bool, src *RWops) *Font {
	if owned {
		openFonts.Add(1)
	}
	return &Font{raw: raw, owned: owned, src: src}
}

// OpenFont loads the font file at path for use at ptsize (in points, based on
// 72 DPI). The returned Font owns the native resource.
func OpenFont(path string, ptsize int) (*Font, error) {
	return OpenFontIndex(path, ptsize, 0)
}

// OpenFontIndex is like [OpenFont] but selects a face by index within a
// multi-face font file. Index 0 is the default face.
func OpenFontIndex(path string, ptsize int, index int) (*Font, error) {
	if ptsize <= 0 {
		return nil, ErrInvalidPointSize
	}
	if err := ensure(); err != nil {
		return nil, err
	}
	raw := ffi.TTFOpenFontIndex(path, int32(ptsize), int32(index))
	if raw == 0 {
		return nil, getError("OpenFont")
	}
	Logger().Debug("sdlttf: font opened", "path", path, "ptsize", ptsize, "index", index)
	return newFont(raw, true, nil), nil
}

// Close releases the font's native resource. Close is idempotent.
//
// After [Quit] the native side has already reclaimed every font, so Close
// skips the native release; calling Close on a handle that outlived shutdown
// is safe and required to avoid a double free.
func (f *Font) Close() {
	if f == nil || f.raw == 0 {
		return
	}
	if f.owned {
		if WasInit() {
			ffi.TTFCloseFont(f.raw)
		}
		openFonts.Add(-1)
	}
	f.raw = 0
	f.src = nil
}

// SetStyle sets the render style bits.
func (f *Font) SetStyle(style Style) {
	if f.raw == 0 {
		return
	}
	ffi.TTFSetFontStyle(f.raw, int32(style))
}

// Style returns the current render style bits.
func (f *Font) Style() Style {
	if f.raw == 0 {
		return StyleNormal
	}
	return Style(ffi.TTFGetFontStyle(f.raw))
}

// SetOutline sets the outline width in pixels. Zero disables outlining.
func (f *Font) SetOutline(width int) {
	if f.raw == 0 || width < 0 {
		return
	}
	ffi.TTFSetFontOutline(f.raw, int32(width))
}

// Outline returns the current outline width in pixels.
func (f *Font) Outline() int {
	if f.raw == 0 {
		return 0
	}
	return int(ffi.TTFGetFontOutline(f.raw))
}

// SetHinting sets the rasterizer hinting mode. Changing the mode flushes the
// native glyph cache.
func (f *Font) SetHinting(h Hinting) {
	if f.raw == 0 {
		return
	}
	ffi.TTFSetFontHinting(f.raw, int32(h))
}

// Hinting returns the current rasterizer hinting mode.
func (f *Font) Hinting() Hinting {
	if f.raw == 0 {
		return HintingNormal
	}
	return Hinting(ffi.TTFGetFontHinting(f.raw))
}

// SetKerning enables or disables pair kerning.
func (f *Font) SetKerning(enabled bool) {
	if f.raw == 0 {
		return
	}
	var v int32
	if enabled {
		v = 1
	}
	ffi.TTFSetFontKerning(f.raw, v)
}

// Kerning reports whether pair kerning is enabled.
func (f *Font) Kerning() bool {
	if f.raw == 0 {
		return false
	}
	return ffi.TTFGetFontKerning(f.raw) != 0
}

// Height returns the maximum pixel height of all glyphs. Use this for line
// spacing when rendering line by line.
func (f *Font) Height() int {
	if f.raw == 0 {
		return 0
	}
	return int(ffi.TTFFontHeight(f.raw))
}

// Ascent returns the maximum pixel ascent above the baseline. Ascent is
// non-negative.
func (f *Font) Ascent() int {
	if f.raw == 0 {
		return 0
	}
	return int(ffi.TTFFontAscent(f.raw))
}

// Descent returns the maximum pixel descent below the baseline. By native
// convention descent is zero or negative.
func (f *Font) Descent() int {
	if f.raw == 0 {
		return 0
	}
	return int(ffi.TTFFontDescent(f.raw))
}

// LineSkip returns the recommended pixel distance between baselines.
func (f *Font) LineSkip() int {
	if f.raw == 0 {
		return 0
	}
	return int(ffi.TTFFontLineSkip(f.raw))
}

// Faces returns the number of faces in the loaded font file.
func (f *Font) Faces() int {
	if f.raw == 0 {
		return 0
	}
	return int(ffi.TTFFontFaces(f.raw))
}

// FixedWidth reports whether the current face is monospaced.
func (f *Font) FixedWidth() bool {
	if f.raw == 0 {
		return false
	}
	return ffi.TTFFontFaceIsFixedWidth(f.raw) != 0
}

// FamilyName returns the face's family name. ok is false when the font
// carries no name data.
func (f *Font) FamilyName() (name string, ok bool) {
	if f.raw == 0 {
		return "", false
	}
	p := ffi.TTFFontFaceFamilyName(f.raw)
	if p == 0 {
		return "", false
	}
	return ffi.GoString(p), true
}

// StyleName returns the face's style name (such as "Regular" or "Bold").
// ok is false when the font carries no name data.
func (f *Font) StyleName() (name string, ok bool) {
	if f.raw == 0 {
		return "", false
	}
	p := ffi.TTFFontFaceStyleName(f.raw)
	if p == 0 {
		return "", false
	}
	return ffi.GoString(p), true
}
