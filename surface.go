package sdlttf

import (
	"fmt"
	"image"
	"math/bits"
	"os"

	"golang.org/x/image/bmp"

	"github.com/gogpu/sdlttf/internal/ffi"
)

// Surface wraps one native pixel buffer produced by a render call. Every
// render allocates a fresh buffer, so a Surface always owns its resource and
// [Surface.Free] releases it unconditionally. Free is idempotent; all other
// methods on a freed Surface return zero values or [ErrSurfaceFreed].
type Surface struct {
	raw uintptr
}

func newSurface(raw uintptr) *Surface {
	return &Surface{raw: raw}
}

// Free releases the native pixel buffer. Free is idempotent.
func (s *Surface) Free() {
	if s == nil || s.raw == 0 {
		return
	}
	ffi.SDLFreeSurface(s.raw)
	s.raw = 0
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	if s.raw == 0 {
		return 0
	}
	w, _, _, _ := ffi.SurfaceInfo(s.raw)
	return w
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	if s.raw == 0 {
		return 0
	}
	_, h, _, _ := ffi.SurfaceInfo(s.raw)
	return h
}

// Pitch returns the byte length of one pixel row, including padding.
func (s *Surface) Pitch() int {
	if s.raw == 0 {
		return 0
	}
	_, _, pitch, _ := ffi.SurfaceInfo(s.raw)
	return pitch
}

// BytesPerPixel returns the pixel size in bytes: 1 for the indexed surfaces
// produced by solid and shaded rendering, 4 for blended rendering.
func (s *Surface) BytesPerPixel() int {
	if s.raw == 0 {
		return 0
	}
	_, _, _, bpp := ffi.SurfaceInfo(s.raw)
	return bpp
}

// Image copies the surface into a standard Go image. Indexed surfaces are
// expanded through their palette, honoring the transparent color key solid
// rendering sets; 32-bit surfaces are decoded through their channel masks.
func (s *Surface) Image() (*image.NRGBA, error) {
	if s.raw == 0 {
		return nil, ErrSurfaceFreed
	}
	w, h, pitch, bpp := ffi.SurfaceInfo(s.raw)
	pixels := ffi.SurfacePixels(s.raw)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	switch bpp {
	case 1:
		palette := ffi.SurfacePalette(s.raw)
		if palette == nil {
			return nil, fmt.Errorf("sdlttf: indexed surface without palette")
		}
		var key uint32
		hasKey := ffi.SDLGetColorKey(s.raw, &key) == 0
		for y := 0; y < h; y++ {
			row := pixels[y*pitch:]
			for x := 0; x < w; x++ {
				idx := row[x]
				o := img.PixOffset(x, y)
				if hasKey && uint32(idx) == key {
					continue // stays transparent
				}
				if int(idx) >= len(palette) {
					continue
				}
				c := palette[idx]
				img.Pix[o+0] = c[0]
				img.Pix[o+1] = c[1]
				img.Pix[o+2] = c[2]
				img.Pix[o+3] = 255
			}
		}
	case 4:
		rmask, gmask, bmask, amask := ffi.SurfaceMasks(s.raw)
		rsh := bits.TrailingZeros32(rmask)
		gsh := bits.TrailingZeros32(gmask)
		bsh := bits.TrailingZeros32(bmask)
		ash := bits.TrailingZeros32(amask)
		for y := 0; y < h; y++ {
			row := pixels[y*pitch:]
			for x := 0; x < w; x++ {
				p := uint32(row[x*4]) | uint32(row[x*4+1])<<8 |
					uint32(row[x*4+2])<<16 | uint32(row[x*4+3])<<24
				o := img.PixOffset(x, y)
				img.Pix[o+0] = uint8((p & rmask) >> rsh)
				img.Pix[o+1] = uint8((p & gmask) >> gsh)
				img.Pix[o+2] = uint8((p & bmask) >> bsh)
				if amask == 0 {
					img.Pix[o+3] = 255
				} else {
					img.Pix[o+3] = uint8((p & amask) >> ash)
				}
			}
		}
	default:
		return nil, fmt.Errorf("sdlttf: unsupported surface depth %d bytes per pixel", bpp)
	}
	return img, nil
}

// SaveBMP writes the surface to path as a BMP file, SDL's native dump
// format.
func (s *Surface) SaveBMP(path string) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
