package sdlttf

import "github.com/gogpu/sdlttf/internal/ffi"

// Rendering comes in three quality modes, each with Latin-1 byte, UTF-8
// string, and single glyph variants:
//
//   - Solid: fastest; foreground pixels only, no anti-aliasing, transparent
//     background.
//   - Shaded: anti-aliased foreground blended over an opaque background
//     rectangle; needs both a foreground and a background color.
//   - Blended: full alpha anti-aliasing over a transparent background;
//     highest quality and slowest.
//
// Empty text is valid and produces a minimal-size surface. Every variant
// returns a newly allocated Surface owned by the caller.

// RenderBytesSolid draws Latin-1 encoded text in solid mode.
func (f *Font) RenderBytesSolid(text []byte, fg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	raw := ffi.TTFRenderTextSolid(f.raw, cstr(text), fg.packNative())
	if raw == 0 {
		return nil, getError("RenderBytesSolid")
	}
	return newSurface(raw), nil
}

// RenderStringSolid draws UTF-8 text in solid mode.
func (f *Font) RenderStringSolid(text string, fg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	raw := ffi.TTFRenderUTF8Solid(f.raw, cstr([]byte(text)), fg.packNative())
	if raw == 0 {
		return nil, getError("RenderStringSolid")
	}
	return newSurface(raw), nil
}

// RenderGlyphSolid draws a single glyph in solid mode. Runes above U+FFFF
// return [ErrCodepointRange].
func (f *Font) RenderGlyphSolid(r rune, fg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	code, ok := glyphCode(r)
	if !ok {
		return nil, ErrCodepointRange
	}
	raw := ffi.TTFRenderGlyphSolid(f.raw, code, fg.packNative())
	if raw == 0 {
		return nil, getError("RenderGlyphSolid")
	}
	return newSurface(raw), nil
}

// RenderBytesShaded draws Latin-1 encoded text in shaded mode.
func (f *Font) RenderBytesShaded(text []byte, fg, bg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	raw := ffi.TTFRenderTextShaded(f.raw, cstr(text), fg.packNative(), bg.packNative())
	if raw == 0 {
		return nil, getError("RenderBytesShaded")
	}
	return newSurface(raw), nil
}

// RenderStringShaded draws UTF-8 text in shaded mode.
func (f *Font) RenderStringShaded(text string, fg, bg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	raw := ffi.TTFRenderUTF8Shaded(f.raw, cstr([]byte(text)), fg.packNative(), bg.packNative())
	if raw == 0 {
		return nil, getError("RenderStringShaded")
	}
	return newSurface(raw), nil
}

// RenderGlyphShaded draws a single glyph in shaded mode. Runes above U+FFFF
// return [ErrCodepointRange].
func (f *Font) RenderGlyphShaded(r rune, fg, bg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	code, ok := glyphCode(r)
	if !ok {
		return nil, ErrCodepointRange
	}
	raw := ffi.TTFRenderGlyphShaded(f.raw, code, fg.packNative(), bg.packNative())
	if raw == 0 {
		return nil, getError("RenderGlyphShaded")
	}
	return newSurface(raw), nil
}

// RenderBytesBlended draws Latin-1 encoded text in blended mode.
func (f *Font) RenderBytesBlended(text []byte, fg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	raw := ffi.TTFRenderTextBlended(f.raw, cstr(text), fg.packNative())
	if raw == 0 {
		return nil, getError("RenderBytesBlended")
	}
	return newSurface(raw), nil
}

// RenderStringBlended draws UTF-8 text in blended mode.
func (f *Font) RenderStringBlended(text string, fg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	raw := ffi.TTFRenderUTF8Blended(f.raw, cstr([]byte(text)), fg.packNative())
	if raw == 0 {
		return nil, getError("RenderStringBlended")
	}
	return newSurface(raw), nil
}

// RenderGlyphBlended draws a single glyph in blended mode. Runes above U+FFFF
// return [ErrCodepointRange].
func (f *Font) RenderGlyphBlended(r rune, fg Color) (*Surface, error) {
	if f.raw == 0 {
		return nil, ErrFontClosed
	}
	code, ok := glyphCode(r)
	if !ok {
		return nil, ErrCodepointRange
	}
	raw := ffi.TTFRenderGlyphBlended(f.raw, code, fg.packNative())
	if raw == 0 {
		return nil, getError("RenderGlyphBlended")
	}
	return newSurface(raw), nil
}
