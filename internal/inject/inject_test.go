package inject

import (
	"strings"
	"testing"
)

func TestDecodeExitCode(t *testing.T) {
	cases := []struct {
		code int
		want ExitStatus
	}{
		{0, Success},
		{-1, InjectFailed},
		{-2, InvalidParams},
		{-3, OpenProcessFail},
		{-4, UnlikelyFail},
		{17, Unknown},
		{-99, Unknown},
	}
	for _, c := range cases {
		if got := decodeExitCode(c.code); got != c.want {
			t.Errorf("decodeExitCode(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestErrorMessageIncludesRawCodeForUnknown(t *testing.T) {
	err := &Error{Status: Unknown, RawCode: 42}
	if got := err.Error(); !strings.Contains(got, "42") {
		t.Fatalf("error message %q does not include raw code 42", got)
	}
}

func TestExitStatusStringCoversAllValues(t *testing.T) {
	all := []ExitStatus{Success, InjectFailed, InvalidParams, OpenProcessFail, UnlikelyFail, Unknown}
	seen := make(map[string]bool)
	for _, s := range all {
		str := s.String()
		if str == "" {
			t.Errorf("String() for %d returned empty", s)
		}
		seen[str] = true
	}
	if len(seen) != len(all) {
		t.Errorf("expected %d distinct strings, got %d", len(all), len(seen))
	}
}
