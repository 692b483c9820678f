package sdlttf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRender_Modes(t *testing.T) {
	font := openTestFont(t, 24)

	tests := []struct {
		name    string
		render  func() (*Surface, error)
		wantBPP int
	}{
		{
			name:    "solid string",
			render:  func() (*Surface, error) { return font.RenderStringSolid("Hello", White) },
			wantBPP: 1,
		},
		{
			name:    "shaded string",
			render:  func() (*Surface, error) { return font.RenderStringShaded("Hello", White, Black) },
			wantBPP: 1,
		},
		{
			name:    "blended string",
			render:  func() (*Surface, error) { return font.RenderStringBlended("Hello", White) },
			wantBPP: 4,
		},
		{
			name:    "solid glyph",
			render:  func() (*Surface, error) { return font.RenderGlyphSolid('A', White) },
			wantBPP: 1,
		},
		{
			name:    "shaded glyph",
			render:  func() (*Surface, error) { return font.RenderGlyphShaded('A', White, Black) },
			wantBPP: 1,
		},
		{
			name:    "blended glyph",
			render:  func() (*Surface, error) { return font.RenderGlyphBlended('A', White) },
			wantBPP: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf, err := tt.render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			defer surf.Free()
			if surf.Width() <= 0 || surf.Height() <= 0 {
				t.Errorf("surface %dx%d, want positive dimensions", surf.Width(), surf.Height())
			}
			if got := surf.BytesPerPixel(); got != tt.wantBPP {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.wantBPP)
			}
		})
	}
}

func TestRender_BytesVariants(t *testing.T) {
	font := openTestFont(t, 24)

	latin, err := EncodeLatin1("café")
	if err != nil {
		t.Fatalf("EncodeLatin1: %v", err)
	}
	for name, render := range map[string]func([]byte, Color) (*Surface, error){
		"solid":   font.RenderBytesSolid,
		"blended": font.RenderBytesBlended,
	} {
		surf, err := render(latin, White)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if surf.Width() <= 0 {
			t.Errorf("%s: width = %d, want > 0", name, surf.Width())
		}
		surf.Free()
	}
	surf, err := font.RenderBytesShaded(latin, White, Black)
	if err != nil {
		t.Fatalf("shaded: %v", err)
	}
	surf.Free()
}

// Empty text is valid input: the native library produces a minimal surface,
// and the binding must pass that through instead of erroring.
func TestRender_EmptyText(t *testing.T) {
	font := openTestFont(t, 24)

	surf, err := font.RenderStringSolid("", White)
	if err != nil {
		t.Fatalf("RenderStringSolid(\"\") error: %v", err)
	}
	defer surf.Free()
	if surf.Width() < 0 || surf.Height() < 0 {
		t.Errorf("empty render = %dx%d", surf.Width(), surf.Height())
	}
}

// Two renders of the same text must yield independently owned surfaces.
func TestRender_IndependentSurfaces(t *testing.T) {
	font := openTestFont(t, 24)

	first, err := font.RenderStringBlended("twice", White)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := font.RenderStringBlended("twice", White)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	first.Free()
	// The second surface must survive the first one's release.
	if second.Width() <= 0 || second.Height() <= 0 {
		t.Error("second surface invalidated by freeing the first")
	}
	img, err := second.Image()
	if err != nil {
		t.Fatalf("Image after sibling free: %v", err)
	}
	if img.Bounds().Dx() != second.Width() {
		t.Errorf("image width %d != surface width %d", img.Bounds().Dx(), second.Width())
	}
	second.Free()
}

func TestSurface_FreeIdempotent(t *testing.T) {
	font := openTestFont(t, 24)

	surf, err := font.RenderStringSolid("x", White)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	surf.Free()
	surf.Free() // second free is a no-op

	if _, err := surf.Image(); err != ErrSurfaceFreed {
		t.Errorf("Image after Free error = %v, want ErrSurfaceFreed", err)
	}
	if surf.Width() != 0 || surf.Height() != 0 {
		t.Error("freed surface still reports dimensions")
	}
}

func TestSurface_Image(t *testing.T) {
	font := openTestFont(t, 24)

	surf, err := font.RenderStringBlended("Ink", RGB(255, 0, 0))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	defer surf.Free()

	img, err := surf.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img.Bounds().Dx() != surf.Width() || img.Bounds().Dy() != surf.Height() {
		t.Fatalf("image bounds %v, surface %dx%d", img.Bounds(), surf.Width(), surf.Height())
	}
	// Blended rendering of red text must produce at least one visibly red,
	// non-transparent pixel.
	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 200 && img.Pix[i+3] > 128 {
			found = true
			break
		}
	}
	if !found {
		t.Error("no red ink found in blended render")
	}
}

func TestSurface_SaveBMP(t *testing.T) {
	font := openTestFont(t, 24)

	surf, err := font.RenderStringShaded("bmp", White, Black)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	defer surf.Free()

	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := surf.SaveBMP(path); err != nil {
		t.Fatalf("SaveBMP: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("SaveBMP wrote an empty file")
	}
}
