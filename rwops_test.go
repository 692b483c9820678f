package sdlttf

import (
	"errors"
	"os"
	"testing"
)

func TestRWFromBytes_LoadFont(t *testing.T) {
	requireNative(t)
	data, err := os.ReadFile(testFontPath(t))
	if err != nil {
		t.Fatalf("read font file: %v", err)
	}

	rw, err := RWFromBytes(data)
	if err != nil {
		t.Fatalf("RWFromBytes: %v", err)
	}
	defer rw.Close()

	font, err := rw.LoadFont(24)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if font.Height() <= 0 {
		t.Error("stream-loaded font has no height")
	}
	if _, ok := font.GlyphIndex('A'); !ok {
		t.Error("stream-loaded font misses glyph 'A'")
	}
	// The font is closed before its stream: the stream stays caller-owned.
	font.Close()
}

func TestRWFromFile_LoadFontIndex(t *testing.T) {
	requireNative(t)

	rw, err := RWFromFile(testFontPath(t))
	if err != nil {
		t.Fatalf("RWFromFile: %v", err)
	}
	defer rw.Close()

	font, err := rw.LoadFontIndex(24, 0)
	if err != nil {
		t.Fatalf("LoadFontIndex: %v", err)
	}
	defer font.Close()
	if font.Faces() < 1 {
		t.Errorf("Faces() = %d, want >= 1", font.Faces())
	}
}

func TestRWFromBytes_Empty(t *testing.T) {
	if _, err := RWFromBytes(nil); err == nil {
		t.Error("RWFromBytes(nil) succeeded")
	}
}

func TestRWops_ClosedUse(t *testing.T) {
	var rw RWops
	if err := rw.Close(); err != nil {
		t.Errorf("Close on zero RWops = %v, want nil", err)
	}
	if _, err := rw.LoadFont(24); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("LoadFont on closed stream = %v, want ErrStreamClosed", err)
	}
	if _, err := rw.LoadFont(0); !errors.Is(err, ErrInvalidPointSize) {
		t.Errorf("LoadFont(0) = %v, want ErrInvalidPointSize", err)
	}
}
