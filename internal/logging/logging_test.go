package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestPreInitLoggerUsesConfiguredHandler(t *testing.T) {
	logger := L("winproc")

	var buf bytes.Buffer
	Init("text", "info", &buf)

	logger.Info("located", "window", "Rainbow Six")

	out := buf.String()
	if strings.Contains(out, `msg="INFO located`) {
		t.Fatalf("unexpected nested severity prefix in message: %s", out)
	}
	if !strings.Contains(out, "msg=located") {
		t.Fatalf("expected plain located message, got: %s", out)
	}
	if !strings.Contains(out, "component=winproc") {
		t.Fatalf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, `window="Rainbow Six"`) {
		t.Fatalf("expected window field, got: %s", out)
	}
}

func TestPreInitLoggerRespectsConfiguredLevel(t *testing.T) {
	logger := L("gpudx")

	var buf bytes.Buffer
	Init("text", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info log should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn log should be emitted: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init("json", "debug", &buf)

	L("inject").Debug("materializing artifact", "path", "inject-helper.exe")

	out := buf.String()
	if !strings.Contains(out, `"component":"inject"`) {
		t.Fatalf("expected json component field, got: %s", out)
	}
}
