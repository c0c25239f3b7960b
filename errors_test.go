package gcapture

import (
	"errors"
	"testing"
)

func TestKindStringCoversAllKinds(t *testing.T) {
	kinds := []Kind{
		KindProcessNotFound, KindInject, KindLoadGraphicOffsets, KindCreatePipe,
		KindCreateMutex, KindCreateEvent, KindCreateFileMapping, KindCreateDevice,
		KindOpenSharedResource, KindCreateTexture, KindMapSurface,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "Unknown" {
			t.Errorf("Kind %d stringified to %q, want a distinct non-empty name", k, s)
		}
		if seen[s] {
			t.Errorf("duplicate Kind string %q", s)
		}
		seen[s] = true
	}
}

func TestUnknownKindStringsAsUnknown(t *testing.T) {
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("Kind(999).String() = %q, want Unknown", got)
	}
}

func TestCaptureErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := newErr(KindCreateDevice, cause)
	if !errors.Is(err, cause) {
		t.Error("CaptureError should unwrap to its cause")
	}
}

func TestCaptureErrorWithoutCauseStillFormats(t *testing.T) {
	err := newErr(KindProcessNotFound, nil)
	if err.Error() == "" {
		t.Fatal("expected non-empty error string")
	}
}
