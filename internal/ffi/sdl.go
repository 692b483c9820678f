package ffi

// Entry points from the core SDL2 library. SDL2_ttf reports failures through
// SDL's shared error slot and hands out SDL surfaces and RWops, so the binding
// needs a handful of core symbols alongside the TTF ones.
var (
	// SDLGetError returns a pointer to the current error string for the
	// calling thread. The slot is overwritten by the next failing SDL call,
	// so callers must convert it with GoString immediately.
	SDLGetError   func() uintptr
	SDLClearError func()

	SDLFreeSurface func(surface uintptr)
	SDLGetColorKey func(surface uintptr, key *uint32) int32

	SDLRWFromConstMem func(mem *byte, size int32) uintptr
	SDLRWFromFile     func(file string, mode string) uintptr
	SDLRWClose        func(rw uintptr) int32
)

func registerSDL(h uintptr) {
	register(&SDLGetError, h, "SDL_GetError")
	register(&SDLClearError, h, "SDL_ClearError")
	register(&SDLFreeSurface, h, "SDL_FreeSurface")
	register(&SDLGetColorKey, h, "SDL_GetColorKey")
	register(&SDLRWFromConstMem, h, "SDL_RWFromConstMem")
	register(&SDLRWFromFile, h, "SDL_RWFromFile")
	register(&SDLRWClose, h, "SDL_RWclose")
}
