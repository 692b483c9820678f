package sdlttf

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/sdlttf/internal/ffi"
)

// Version identifies a release of the native SDL2_ttf library.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version in "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// openFonts counts live owned Font handles, for shutdown diagnostics only.
var openFonts atomic.Int64

// ensure performs the runtime linkage with default options. All entry points
// that reach the native library go through ensure (or WasInit's cheap check)
// first.
func ensure() error {
	if err := ffi.Load(ffi.Config{}); err != nil {
		return fmt.Errorf("%w: %v", ErrNotLoaded, err)
	}
	return nil
}

// Init initializes the truetype font subsystem. Init is idempotent: if the
// subsystem is already initialized it reports true without invoking the
// native initializer again.
//
// The result is a boolean because the native library offers no diagnostic at
// init time. A false result means either the shared libraries could not be
// loaded (see [Preload] to get the underlying error) or native initialization
// failed; both are logged through [SetLogger]'s logger.
func Init() bool {
	if err := ensure(); err != nil {
		Logger().Warn("sdlttf: init failed", "error", err)
		return false
	}
	if ffi.TTFWasInit() != 0 {
		return true
	}
	ok := ffi.TTFInit() == 0
	if !ok {
		Logger().Warn("sdlttf: native init failed", "error", ffi.GoString(ffi.SDLGetError()))
	}
	return ok
}

// WasInit reports whether the font subsystem is currently initialized.
func WasInit() bool {
	return ffi.Loaded() && ffi.TTFWasInit() != 0
}

// Quit shuts down the font subsystem. Shutdown is best effort: native
// teardown reports no errors, and any Font still open afterwards must not be
// used (closing it remains safe).
func Quit() {
	if !ffi.Loaded() {
		return
	}
	if n := openFonts.Load(); n > 0 {
		Logger().Warn("sdlttf: quitting with fonts still open", "count", n)
	}
	ffi.TTFQuit()
}

// LinkedVersion returns the version of the dynamically linked SDL2_ttf
// library. It does not require [Init], but it does load the shared libraries
// on demand, which can fail.
func LinkedVersion() (Version, error) {
	if err := ensure(); err != nil {
		return Version{}, err
	}
	major, minor, patch := ffi.ReadVersion(ffi.TTFLinkedVersion())
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}
