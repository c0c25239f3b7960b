package config

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidateTieredEmptyWindowTitleIsFatal(t *testing.T) {
	cfg := Default()
	result := cfg.ValidateTiered()
	if !result.HasFatals() {
		t.Fatal("empty window_title should be fatal")
	}
}

func TestValidateTieredIntervalClampingIsWarning(t *testing.T) {
	cfg := Default()
	cfg.WindowTitle = "Rainbow Six"
	cfg.FrameIntervalMillis = 0
	result := cfg.ValidateTiered()

	if result.HasFatals() {
		t.Fatalf("clamped interval should be warning, not fatal: %v", result.Fatals)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected warning for clamped interval")
	}
	if cfg.FrameIntervalMillis != 1 {
		t.Fatalf("FrameIntervalMillis = %d, want 1 (clamped)", cfg.FrameIntervalMillis)
	}
}

func TestValidateTieredHighIntervalClampingIsWarning(t *testing.T) {
	cfg := Default()
	cfg.WindowTitle = "Rainbow Six"
	cfg.FrameIntervalMillis = 99999
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatalf("clamped interval should be warning, not fatal: %v", result.Fatals)
	}
	if cfg.FrameIntervalMillis != 5000 {
		t.Fatalf("FrameIntervalMillis = %d, want 5000 (clamped)", cfg.FrameIntervalMillis)
	}
}

func TestValidateTieredUnknownLogLevelIsWarning(t *testing.T) {
	cfg := Default()
	cfg.WindowTitle = "Rainbow Six"
	cfg.LogLevel = "verbose"
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatal("unknown log level should not be fatal")
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected warning for unknown log level")
	}
}

func TestValidateTieredInvalidLogFormatIsWarning(t *testing.T) {
	cfg := Default()
	cfg.WindowTitle = "Rainbow Six"
	cfg.LogFormat = "xml"
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatal("invalid log format should not be fatal")
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected warning for invalid log format")
	}
}

func TestValidateTieredPreviewWithoutAddrIsDisabled(t *testing.T) {
	cfg := Default()
	cfg.WindowTitle = "Rainbow Six"
	cfg.PreviewEnabled = true
	cfg.PreviewAddr = ""
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatal("missing preview addr should not be fatal")
	}
	if cfg.PreviewEnabled {
		t.Fatal("PreviewEnabled should be cleared when PreviewAddr is empty")
	}
}

func TestHasFatals(t *testing.T) {
	r := ValidationResult{}
	if r.HasFatals() {
		t.Fatal("HasFatals() on empty result should be false")
	}
	r.Fatals = append(r.Fatals, fmt.Errorf("test error"))
	if !r.HasFatals() {
		t.Fatal("HasFatals() should be true with a fatal error")
	}
}

func TestAllErrorsReturnsBoth(t *testing.T) {
	cfg := Default()
	cfg.FrameIntervalMillis = 0 // warning, WindowTitle empty => fatal
	result := cfg.ValidateTiered()

	all := result.AllErrors()
	if len(all) < 2 {
		t.Fatalf("AllErrors() returned %d errors, expected at least 2 (fatals + warnings)", len(all))
	}
}

func TestValidConfigHasNoErrors(t *testing.T) {
	cfg := Default()
	cfg.WindowTitle = "Rainbow Six"
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatalf("valid config has fatals: %v", result.Fatals)
	}
	if len(result.Warnings) > 0 {
		t.Fatalf("valid config has warnings: %v", result.Warnings)
	}
}

func TestValidLogLevelsTableContainsWarnAlias(t *testing.T) {
	if !validLogLevels["warning"] || !strings.EqualFold("warn", "WARN") {
		t.Fatal("expected warning alias recognized")
	}
}
