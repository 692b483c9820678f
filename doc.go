// Package sdlttf provides safe Go bindings for the SDL2_ttf font rendering
// library.
//
// # Overview
//
// sdlttf wraps the native SDL2_ttf rasterizer behind ownership-tracked handle
// types. All glyph shaping, hinting, and rasterization happen inside the
// native library; this package's job is lifecycle correctness: handles are
// released exactly once, never after library shutdown, and every failing
// native call is translated into a Go error carrying the native diagnostic.
//
// The native libraries are loaded at runtime with purego, so no cgo and no
// headers are required to build. SDL2 and SDL2_ttf shared libraries must be
// present at run time (see [Preload] for configuring their location).
//
// # Quick Start
//
//	import "github.com/gogpu/sdlttf"
//
//	if !sdlttf.Init() {
//		log.Fatal("sdlttf: init failed")
//	}
//	defer sdlttf.Quit()
//
//	font, err := sdlttf.OpenFont("DejaVuSans.ttf", 24)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer font.Close()
//
//	surf, err := font.RenderStringBlended("Hello, world!", sdlttf.RGB(0xff, 0xff, 0xff))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer surf.Free()
//	surf.SaveBMP("hello.bmp")
//
// # Architecture
//
// The package is organized into:
//   - Public API: Font, Surface, RWops, Color, Style, Hinting, GlyphMetrics
//   - internal/ffi: runtime linkage, symbol registration, native struct layout
//
// Raw native pointers never cross the internal/ffi boundary into caller code.
//
// # Ownership
//
// Font and Surface values own their native resource. Close and Free are
// idempotent; a Font is only released while the library is still initialized,
// so destroying handles after [Quit] is safe (the native side has already
// reclaimed them). Fonts loaded from an [RWops] do not own the stream: the
// caller closes the RWops itself, after the Font.
//
// # Concurrency
//
// The binding adds no locking of its own. Init and Quit mutate process-wide
// native state and must not race with any other call. A Font or Surface must
// be used by one goroutine at a time; rendering in particular allocates
// inside the native library and is not reentrant. Callers that share handles
// across goroutines must provide their own synchronization.
package sdlttf
