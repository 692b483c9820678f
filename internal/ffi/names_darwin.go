//go:build darwin

package ffi

var (
	sdlNames = []string{
		"libSDL2-2.0.0.dylib",
		"libSDL2.dylib",
		"/opt/homebrew/lib/libSDL2.dylib",
		"/usr/local/lib/libSDL2.dylib",
	}
	ttfNames = []string{
		"libSDL2_ttf-2.0.0.dylib",
		"libSDL2_ttf.dylib",
		"/opt/homebrew/lib/libSDL2_ttf.dylib",
		"/usr/local/lib/libSDL2_ttf.dylib",
	}
)
