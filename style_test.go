package sdlttf

import "testing"

func TestStyle_Bits(t *testing.T) {
	// Values are part of the native ABI and must not drift.
	tests := []struct {
		name  string
		style Style
		want  int
	}{
		{"normal", StyleNormal, 0x00},
		{"bold", StyleBold, 0x01},
		{"italic", StyleItalic, 0x02},
		{"underline", StyleUnderline, 0x04},
		{"strikethrough", StyleStrikethrough, 0x08},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.style) != tt.want {
				t.Errorf("%s = %#x, want %#x", tt.name, int(tt.style), tt.want)
			}
		})
	}
}

func TestStyle_Has(t *testing.T) {
	s := StyleBold | StyleUnderline
	if !s.Has(StyleBold) || !s.Has(StyleUnderline) || !s.Has(StyleBold|StyleUnderline) {
		t.Errorf("Has() missing set bits in %v", s)
	}
	if s.Has(StyleItalic) {
		t.Errorf("Has(StyleItalic) = true for %v", s)
	}
	// Every style contains the empty set.
	if !s.Has(StyleNormal) || !StyleNormal.Has(StyleNormal) {
		t.Error("Has(StyleNormal) = false")
	}
}

func TestStyle_String(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleNormal, "normal"},
		{StyleBold, "bold"},
		{StyleBold | StyleItalic, "bold|italic"},
		{StyleUnderline | StyleStrikethrough, "underline|strikethrough"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("Style(%#x).String() = %q, want %q", int(tt.style), got, tt.want)
		}
	}
}

func TestHinting_Values(t *testing.T) {
	// Values mirror the native TTF_HINTING_* constants.
	if HintingNormal != 0 || HintingLight != 1 || HintingMono != 2 || HintingNone != 3 {
		t.Errorf("hinting constants drifted: %d %d %d %d",
			HintingNormal, HintingLight, HintingMono, HintingNone)
	}
}

func TestHinting_String(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNormal, "normal"},
		{HintingLight, "light"},
		{HintingMono, "mono"},
		{HintingNone, "none"},
		{Hinting(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", int(tt.h), got, tt.want)
		}
	}
}
