package sdlttf

import (
	"errors"

	"github.com/gogpu/sdlttf/internal/ffi"
)

// Binding-side failures detected before any native call is made.
var (
	// ErrNotLoaded is returned when the native libraries could not be loaded.
	ErrNotLoaded = errors.New("sdlttf: native libraries not loaded")
	// ErrInvalidPointSize is returned for non-positive point sizes.
	ErrInvalidPointSize = errors.New("sdlttf: point size must be positive")
	// ErrCodepointRange is returned for runes above U+FFFF; the native glyph
	// entry points only accept 16-bit codepoints.
	ErrCodepointRange = errors.New("sdlttf: codepoint outside the 16-bit glyph range")
	// ErrFontClosed is returned when a Font is used after Close.
	ErrFontClosed = errors.New("sdlttf: font already closed")
	// ErrSurfaceFreed is returned when a Surface is used after Free.
	ErrSurfaceFreed = errors.New("sdlttf: surface already freed")
	// ErrStreamClosed is returned when an RWops is used after Close.
	ErrStreamClosed = errors.New("sdlttf: stream already closed")
)

// Error is a failure reported by the native library. Message holds the
// diagnostic string from the native error slot, captured synchronously at the
// failing call.
type Error struct {
	Op      string // operation that failed, e.g. "OpenFont"
	Message string // native diagnostic text
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "sdlttf: " + e.Op + " failed"
	}
	return "sdlttf: " + e.Op + ": " + e.Message
}

// getError builds an *Error for a failed native call. The native error slot
// is process-wide state overwritten by the next native call, so getError must
// run immediately after detecting the failure, before any other native
// invocation.
func getError(op string) *Error {
	return &Error{Op: op, Message: ffi.GoString(ffi.SDLGetError())}
}
