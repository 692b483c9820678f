// Package ffi loads the native SDL2 and SDL2_ttf shared libraries at runtime
// and exposes their entry points as Go function values.
//
// The package deliberately contains every unsafe detail of the binding: symbol
// registration, C string conversion, and knowledge of native struct layouts.
// Callers above this package only ever see uintptr handles and Go types.
//
// Loading is performed at most once per process. All symbol lookups happen
// eagerly inside Load so that a missing or incompatible library surfaces as a
// single load error instead of a panic at the first call site.
package ffi

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Config controls where the native libraries are loaded from. Empty fields
// fall back to the SDLTTF_LIBRARY / SDL_LIBRARY environment variables and then
// to the platform's conventional library names.
type Config struct {
	// TTFPath is an explicit path to the SDL2_ttf shared library.
	TTFPath string
	// SDLPath is an explicit path to the SDL2 shared library.
	SDLPath string
}

var (
	loadOnce sync.Once
	loadErr  error

	sdlHandle uintptr
	ttfHandle uintptr
)

// Load opens both native libraries and registers all symbols. The first call
// decides the outcome for the lifetime of the process; later calls return the
// same result regardless of cfg.
func Load(cfg Config) error {
	loadOnce.Do(func() { loadErr = load(cfg) })
	return loadErr
}

// Loaded reports whether Load has already succeeded.
func Loaded() bool {
	return sdlHandle != 0 && ttfHandle != 0
}

func load(cfg Config) error {
	sdl, err := openFirst(candidates(cfg.SDLPath, "SDL_LIBRARY", sdlNames))
	if err != nil {
		return fmt.Errorf("ffi: load SDL2: %w", err)
	}
	ttf, err := openFirst(candidates(cfg.TTFPath, "SDLTTF_LIBRARY", ttfNames))
	if err != nil {
		return fmt.Errorf("ffi: load SDL2_ttf: %w", err)
	}
	sdlHandle, ttfHandle = sdl, ttf
	registerSDL(sdl)
	registerTTF(ttf)
	return nil
}

// candidates builds the ordered list of library names to try: explicit path,
// then environment override, then platform defaults.
func candidates(explicit, envVar string, defaults []string) []string {
	var names []string
	if explicit != "" {
		names = append(names, explicit)
	}
	if env := os.Getenv(envVar); env != "" {
		names = append(names, env)
	}
	return append(names, defaults...)
}

func openFirst(names []string) (uintptr, error) {
	var firstErr error
	for _, name := range names {
		h, err := openLibrary(name)
		if err == nil && h != 0 {
			return h, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("no library name candidates")
	}
	return 0, firstErr
}

func register(fptr any, handle uintptr, name string) {
	purego.RegisterLibFunc(fptr, handle, name)
}

// GoString copies a NUL-terminated C string into a Go string. Returns "" for
// a NULL pointer.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
