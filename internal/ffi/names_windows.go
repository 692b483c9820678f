//go:build windows

package ffi

var (
	sdlNames = []string{"SDL2.dll"}
	ttfNames = []string{"SDL2_ttf.dll"}
)
