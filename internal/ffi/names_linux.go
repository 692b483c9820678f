//go:build linux || freebsd

package ffi

var (
	sdlNames = []string{"libSDL2-2.0.so.0", "libSDL2.so"}
	ttfNames = []string{"libSDL2_ttf-2.0.so.0", "libSDL2_ttf.so"}
)
