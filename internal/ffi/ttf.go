package ffi

// Entry points from SDL2_ttf.
//
// Conventions at this boundary:
//   - Font and surface pointers travel as uintptr; a zero value is the
//     library's NULL failure signal.
//   - SDL_Color is a four byte struct passed by value. It occupies a single
//     register, so it crosses the ABI packed into a uint32 in field order
//     (r in the low byte, then g, b, a).
//   - Face indexes and counts are C long in the native headers. They are
//     declared int32 here: real face counts are tiny, and 32 bits is the safe
//     common width across LP64 and LLP64 targets.
var (
	TTFLinkedVersion func() uintptr
	TTFInit          func() int32
	TTFWasInit       func() int32
	TTFQuit          func()

	TTFOpenFont        func(file string, ptsize int32) uintptr
	TTFOpenFontIndex   func(file string, ptsize int32, index int32) uintptr
	TTFOpenFontRW      func(src uintptr, freesrc int32, ptsize int32) uintptr
	TTFOpenFontIndexRW func(src uintptr, freesrc int32, ptsize int32, index int32) uintptr
	TTFCloseFont       func(font uintptr)

	TTFGetFontStyle   func(font uintptr) int32
	TTFSetFontStyle   func(font uintptr, style int32)
	TTFGetFontOutline func(font uintptr) int32
	TTFSetFontOutline func(font uintptr, outline int32)
	TTFGetFontHinting func(font uintptr) int32
	TTFSetFontHinting func(font uintptr, hinting int32)
	TTFGetFontKerning func(font uintptr) int32
	TTFSetFontKerning func(font uintptr, allowed int32)

	TTFFontHeight           func(font uintptr) int32
	TTFFontAscent           func(font uintptr) int32
	TTFFontDescent          func(font uintptr) int32
	TTFFontLineSkip         func(font uintptr) int32
	TTFFontFaces            func(font uintptr) int32
	TTFFontFaceIsFixedWidth func(font uintptr) int32
	TTFFontFaceFamilyName   func(font uintptr) uintptr
	TTFFontFaceStyleName    func(font uintptr) uintptr

	TTFGlyphIsProvided func(font uintptr, ch uint16) int32
	TTFGlyphMetrics    func(font uintptr, ch uint16, minx, maxx, miny, maxy, advance *int32) int32

	TTFSizeText func(font uintptr, text *byte, w, h *int32) int32
	TTFSizeUTF8 func(font uintptr, text *byte, w, h *int32) int32

	TTFRenderTextSolid    func(font uintptr, text *byte, fg uint32) uintptr
	TTFRenderUTF8Solid    func(font uintptr, text *byte, fg uint32) uintptr
	TTFRenderGlyphSolid   func(font uintptr, ch uint16, fg uint32) uintptr
	TTFRenderTextShaded   func(font uintptr, text *byte, fg, bg uint32) uintptr
	TTFRenderUTF8Shaded   func(font uintptr, text *byte, fg, bg uint32) uintptr
	TTFRenderGlyphShaded  func(font uintptr, ch uint16, fg, bg uint32) uintptr
	TTFRenderTextBlended  func(font uintptr, text *byte, fg uint32) uintptr
	TTFRenderUTF8Blended  func(font uintptr, text *byte, fg uint32) uintptr
	TTFRenderGlyphBlended func(font uintptr, ch uint16, fg uint32) uintptr
)

func registerTTF(h uintptr) {
	register(&TTFLinkedVersion, h, "TTF_Linked_Version")
	register(&TTFInit, h, "TTF_Init")
	register(&TTFWasInit, h, "TTF_WasInit")
	register(&TTFQuit, h, "TTF_Quit")

	register(&TTFOpenFont, h, "TTF_OpenFont")
	register(&TTFOpenFontIndex, h, "TTF_OpenFontIndex")
	register(&TTFOpenFontRW, h, "TTF_OpenFontRW")
	register(&TTFOpenFontIndexRW, h, "TTF_OpenFontIndexRW")
	register(&TTFCloseFont, h, "TTF_CloseFont")

	register(&TTFGetFontStyle, h, "TTF_GetFontStyle")
	register(&TTFSetFontStyle, h, "TTF_SetFontStyle")
	register(&TTFGetFontOutline, h, "TTF_GetFontOutline")
	register(&TTFSetFontOutline, h, "TTF_SetFontOutline")
	register(&TTFGetFontHinting, h, "TTF_GetFontHinting")
	register(&TTFSetFontHinting, h, "TTF_SetFontHinting")
	register(&TTFGetFontKerning, h, "TTF_GetFontKerning")
	register(&TTFSetFontKerning, h, "TTF_SetFontKerning")

	register(&TTFFontHeight, h, "TTF_FontHeight")
	register(&TTFFontAscent, h, "TTF_FontAscent")
	register(&TTFFontDescent, h, "TTF_FontDescent")
	register(&TTFFontLineSkip, h, "TTF_FontLineSkip")
	register(&TTFFontFaces, h, "TTF_FontFaces")
	register(&TTFFontFaceIsFixedWidth, h, "TTF_FontFaceIsFixedWidth")
	register(&TTFFontFaceFamilyName, h, "TTF_FontFaceFamilyName")
	register(&TTFFontFaceStyleName, h, "TTF_FontFaceStyleName")

	register(&TTFGlyphIsProvided, h, "TTF_GlyphIsProvided")
	register(&TTFGlyphMetrics, h, "TTF_GlyphMetrics")

	register(&TTFSizeText, h, "TTF_SizeText")
	register(&TTFSizeUTF8, h, "TTF_SizeUTF8")

	register(&TTFRenderTextSolid, h, "TTF_RenderText_Solid")
	register(&TTFRenderUTF8Solid, h, "TTF_RenderUTF8_Solid")
	register(&TTFRenderGlyphSolid, h, "TTF_RenderGlyph_Solid")
	register(&TTFRenderTextShaded, h, "TTF_RenderText_Shaded")
	register(&TTFRenderUTF8Shaded, h, "TTF_RenderUTF8_Shaded")
	register(&TTFRenderGlyphShaded, h, "TTF_RenderGlyph_Shaded")
	register(&TTFRenderTextBlended, h, "TTF_RenderText_Blended")
	register(&TTFRenderUTF8Blended, h, "TTF_RenderUTF8_Blended")
	register(&TTFRenderGlyphBlended, h, "TTF_RenderGlyph_Blended")
}
