package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// ValidationResult separates validation problems that must block startup
// (Fatals) from ones that are logged and auto-corrected (Warnings).
type ValidationResult struct {
	Fatals   []error
	Warnings []error
}

// HasFatals reports whether any fatal validation errors were recorded.
func (r ValidationResult) HasFatals() bool {
	return len(r.Fatals) > 0
}

// AllErrors returns fatals followed by warnings.
func (r ValidationResult) AllErrors() []error {
	all := make([]error, 0, len(r.Fatals)+len(r.Warnings))
	all = append(all, r.Fatals...)
	all = append(all, r.Warnings...)
	return all
}

// ValidateTiered checks cfg for invalid values. A frame interval outside
// 1..5000 ms is clamped into that range, and preview is disabled when no
// preview address is set; both are reported as warnings, as are unknown log
// levels and formats (left unchanged). An unusable configuration (no window
// title to locate) is fatal.
func (c *Config) ValidateTiered() ValidationResult {
	var result ValidationResult

	if strings.TrimSpace(c.WindowTitle) == "" {
		result.Fatals = append(result.Fatals, fmt.Errorf("window_title must not be empty"))
	}

	if c.FrameIntervalMillis < 1 {
		result.Warnings = append(result.Warnings, fmt.Errorf("frame_interval_millis %d is below minimum 1, clamping", c.FrameIntervalMillis))
		c.FrameIntervalMillis = 1
	} else if c.FrameIntervalMillis > 5000 {
		result.Warnings = append(result.Warnings, fmt.Errorf("frame_interval_millis %d exceeds maximum 5000, clamping", c.FrameIntervalMillis))
		c.FrameIntervalMillis = 5000
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error)", c.LogLevel))
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_format %q is not valid (use text or json)", c.LogFormat))
	}

	if c.PreviewEnabled && strings.TrimSpace(c.PreviewAddr) == "" {
		result.Warnings = append(result.Warnings, fmt.Errorf("preview_enabled is set but preview_addr is empty, disabling preview"))
		c.PreviewEnabled = false
	}

	return result
}
