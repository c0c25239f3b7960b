//go:build windows

package gcapture

import "testing"

func TestFrameElementCountStrideLaw(t *testing.T) {
	// 1920x1080 BGRA8, tightly packed (pitch == width * 4 bytes).
	got := frameElementCount(7680, 1080, 1)
	want := uintptr(1920 * 1080 * 4)
	if got != want {
		t.Errorf("frameElementCount(byte view) = %d, want %d", got, want)
	}
}

func TestFrameElementCountViewedAsUint32(t *testing.T) {
	got := frameElementCount(7680, 1080, 4)
	want := uintptr(1920 * 1080)
	if got != want {
		t.Errorf("frameElementCount(uint32 view) = %d, want %d", got, want)
	}
}

func TestFrameElementCountHonoursPaddedPitch(t *testing.T) {
	// A pitch wider than width*4 (row padding) still yields pitch*height
	// bytes (stride 2048 pixels), not width*height*4 — callers must honour
	// stride for row addressing.
	got := frameElementCount(8192, 1080, 1)
	want := uintptr(2048 * 1080 * 4)
	if got != want {
		t.Errorf("frameElementCount(padded pitch) = %d, want %d", got, want)
	}
}
