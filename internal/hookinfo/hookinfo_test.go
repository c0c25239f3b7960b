package hookinfo

import (
	"testing"
	"unsafe"
)

func TestLayoutSizes(t *testing.T) {
	if got := unsafe.Sizeof(SharedTextureData{}); got != 4 {
		t.Errorf("sizeof(SharedTextureData) = %d, want 4", got)
	}
	if got := unsafe.Sizeof(HookInfo{}); got != 648 {
		t.Errorf("sizeof(HookInfo) = %d, want 648", got)
	}
}

func TestNameComposesDecimalPID(t *testing.T) {
	got := Name(WindowHookKeepalive, 4242)
	want := "CaptureHook_KeepAlive4242"
	if got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestNameDistinctPIDsDistinctNames(t *testing.T) {
	a := Name(ShmemHookInfo, 100)
	b := Name(ShmemHookInfo, 200)
	if a == b {
		t.Errorf("expected distinct names for distinct PIDs, got %q for both", a)
	}
}

func TestTextureNameComposesWindowAndMapID(t *testing.T) {
	got := TextureName(12345, 2)
	want := "CaptureHook_Texture_12345_2"
	if got != want {
		t.Errorf("TextureName() = %q, want %q", got, want)
	}
}
