package ffi

import "unsafe"

// Mirrors of the native SDL2 struct layouts this binding reads directly.
// Field order and Go's natural alignment reproduce the C offsets on both
// 32-bit and 64-bit targets; only the leading fields each struct is actually
// read up to are declared.

type surfaceLayout struct {
	Flags  uint32
	Format uintptr
	W      int32
	H      int32
	Pitch  int32
	Pixels uintptr
}

type pixelFormatLayout struct {
	Format        uint32
	Palette       uintptr
	BitsPerPixel  uint8
	BytesPerPixel uint8
	_             [2]uint8
	Rmask         uint32
	Gmask         uint32
	Bmask         uint32
	Amask         uint32
}

type paletteLayout struct {
	NColors int32
	Colors  uintptr
}

// SurfaceInfo returns the dimensions, row stride, and bytes per pixel of a
// native surface.
func SurfaceInfo(surface uintptr) (w, h, pitch, bytesPerPixel int) {
	s := (*surfaceLayout)(unsafe.Pointer(surface))
	f := (*pixelFormatLayout)(unsafe.Pointer(s.Format))
	return int(s.W), int(s.H), int(s.Pitch), int(f.BytesPerPixel)
}

// SurfacePixels returns the surface's pixel rows as a byte slice of pitch*h
// bytes. The slice aliases native memory and is invalid once the surface is
// freed.
func SurfacePixels(surface uintptr) []byte {
	s := (*surfaceLayout)(unsafe.Pointer(surface))
	n := int(s.Pitch) * int(s.H)
	if s.Pixels == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(s.Pixels)), n)
}

// SurfacePalette returns the palette colors of an indexed surface as RGBA
// quads, or nil when the surface has no palette.
func SurfacePalette(surface uintptr) [][4]uint8 {
	s := (*surfaceLayout)(unsafe.Pointer(surface))
	f := (*pixelFormatLayout)(unsafe.Pointer(s.Format))
	if f.Palette == 0 {
		return nil
	}
	p := (*paletteLayout)(unsafe.Pointer(f.Palette))
	if p.Colors == 0 || p.NColors <= 0 {
		return nil
	}
	return unsafe.Slice((*[4]uint8)(unsafe.Pointer(p.Colors)), int(p.NColors))
}

// SurfaceMasks returns the channel masks of the surface's pixel format.
func SurfaceMasks(surface uintptr) (rmask, gmask, bmask, amask uint32) {
	s := (*surfaceLayout)(unsafe.Pointer(surface))
	f := (*pixelFormatLayout)(unsafe.Pointer(s.Format))
	return f.Rmask, f.Gmask, f.Bmask, f.Amask
}

// Version mirrors SDL_version: three uint8 fields.
type nativeVersion struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// ReadVersion decodes an SDL_version struct at p.
func ReadVersion(p uintptr) (major, minor, patch int) {
	if p == 0 {
		return 0, 0, 0
	}
	v := (*nativeVersion)(unsafe.Pointer(p))
	return int(v.Major), int(v.Minor), int(v.Patch)
}
