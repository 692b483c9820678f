package sdlttf

import "github.com/gogpu/sdlttf/internal/ffi"

// Option configures how the native SDL2 and SDL2_ttf libraries are located.
// Use functional options with [Preload].
//
// Example:
//
//	// Default platform search
//	err := sdlttf.Preload()
//
//	// Explicit library locations
//	err := sdlttf.Preload(
//	    sdlttf.WithLibraryPath("/opt/sdl/lib/libSDL2_ttf-2.0.so.0"),
//	    sdlttf.WithSDLPath("/opt/sdl/lib/libSDL2-2.0.so.0"),
//	)
type Option func(*ffi.Config)

// WithLibraryPath sets an explicit path to the SDL2_ttf shared library,
// bypassing the SDLTTF_LIBRARY environment variable and the platform default
// names.
func WithLibraryPath(path string) Option {
	return func(c *ffi.Config) {
		c.TTFPath = path
	}
}

// WithSDLPath sets an explicit path to the core SDL2 shared library,
// bypassing the SDL_LIBRARY environment variable and the platform default
// names.
func WithSDLPath(path string) Option {
	return func(c *ffi.Config) {
		c.SDLPath = path
	}
}

// Preload resolves and loads the native libraries without initializing the
// font subsystem. Calling Preload is optional: [Init] and [LinkedVersion]
// load the libraries on demand with default options. Use Preload when the
// libraries live in a non-standard location, or to surface a load failure as
// an error instead of Init's boolean.
//
// The first load attempt in the process decides the outcome; later calls
// return the same result and ignore their options.
func Preload(opts ...Option) error {
	var cfg ffi.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	err := ffi.Load(cfg)
	if err != nil {
		Logger().Warn("sdlttf: native library load failed", "error", err)
		return err
	}
	Logger().Debug("sdlttf: native libraries loaded")
	return nil
}
