package sdlttf

import (
	"fmt"

	"github.com/gogpu/sdlttf/internal/ffi"
)

// RWops wraps a native seekable byte-stream resource. It is the loader
// capability: fonts can be opened from any RWops instead of a filesystem
// path.
//
// An RWops is owned by its creator, never by a Font loaded from it: the
// native open call is told not to take over closing the stream. The native
// rasterizer reads glyph data from the stream lazily for the Font's whole
// life, so the RWops must stay open until every Font loaded from it is
// closed, and must then be closed by the caller.
type RWops struct {
	raw  uintptr
	data []byte // keeps byte-backed streams reachable while native code reads them
}

// RWFromBytes creates a read-only stream over data. The slice must not be
// modified while any Font loaded from the stream is alive.
func RWFromBytes(data []byte) (*RWops, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("sdlttf: empty font buffer")
	}
	if err := ensure(); err != nil {
		return nil, err
	}
	raw := ffi.SDLRWFromConstMem(&data[0], int32(len(data)))
	if raw == 0 {
		return nil, getError("RWFromBytes")
	}
	return &RWops{raw: raw, data: data}, nil
}

// RWFromFile opens the file at path as a read-only stream.
func RWFromFile(path string) (*RWops, error) {
	if err := ensure(); err != nil {
		return nil, err
	}
	raw := ffi.SDLRWFromFile(path, "rb")
	if raw == 0 {
		return nil, getError("RWFromFile")
	}
	return &RWops{raw: raw}, nil
}

// Close releases the stream. Close is idempotent.
func (rw *RWops) Close() error {
	if rw == nil || rw.raw == 0 {
		return nil
	}
	raw := rw.raw
	rw.raw = 0
	rw.data = nil
	if ffi.SDLRWClose(raw) != 0 {
		return getError("Close")
	}
	return nil
}

// LoadFont loads a font from the stream at ptsize. See [OpenFont] for the
// point size contract and [RWops] for stream lifetime requirements.
func (rw *RWops) LoadFont(ptsize int) (*Font, error) {
	return rw.LoadFontIndex(ptsize, 0)
}

// LoadFontIndex is like [RWops.LoadFont] but selects a face by index within
// a multi-face font. Index 0 is the default face.
func (rw *RWops) LoadFontIndex(ptsize int, index int) (*Font, error) {
	if ptsize <= 0 {
		return nil, ErrInvalidPointSize
	}
	if rw == nil || rw.raw == 0 {
		return nil, ErrStreamClosed
	}
	// freesrc=0: the stream stays owned by the caller.
	raw := ffi.TTFOpenFontIndexRW(rw.raw, 0, int32(ptsize), int32(index))
	if raw == 0 {
		return nil, getError("LoadFont")
	}
	Logger().Debug("sdlttf: font opened from stream", "ptsize", ptsize, "index", index)
	return newFont(raw, true, rw), nil
}
