package ffi

import (
	"testing"
	"unsafe"
)

func TestGoString(t *testing.T) {
	buf := []byte{'S', 'D', 'L', 0, 'x'}
	got := GoString(uintptr(unsafe.Pointer(&buf[0])))
	if got != "SDL" {
		t.Errorf("GoString = %q, want %q", got, "SDL")
	}

	empty := []byte{0}
	if got := GoString(uintptr(unsafe.Pointer(&empty[0]))); got != "" {
		t.Errorf("GoString on empty = %q, want \"\"", got)
	}

	if got := GoString(0); got != "" {
		t.Errorf("GoString(0) = %q, want \"\"", got)
	}
}

func TestCandidates_Order(t *testing.T) {
	defaults := []string{"libdefault.so"}

	t.Run("explicit first", func(t *testing.T) {
		t.Setenv("TEST_SDL_LIB", "/env/lib.so")
		got := candidates("/explicit/lib.so", "TEST_SDL_LIB", defaults)
		want := []string{"/explicit/lib.so", "/env/lib.so", "libdefault.so"}
		if len(got) != len(want) {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("candidates[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("defaults only", func(t *testing.T) {
		got := candidates("", "TEST_SDL_LIB_UNSET", defaults)
		if len(got) != 1 || got[0] != "libdefault.so" {
			t.Errorf("candidates = %v, want just the default", got)
		}
	})
}

func TestOpenFirst_AllFail(t *testing.T) {
	if _, err := openFirst([]string{"libsdlttf-test-no-such-library.so"}); err == nil {
		t.Error("openFirst on a bogus name succeeded")
	}
	if _, err := openFirst(nil); err == nil {
		t.Error("openFirst with no candidates succeeded")
	}
}
