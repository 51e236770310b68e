package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"rootsv/platform"
)

func newBufLogger(buf *bytes.Buffer, format string) *slog.Logger {
	return NewLogger(Config{
		Level:  slog.LevelInfo,
		Format: format,
		Output: buf,
		Mode:   platform.SystemRoot,
	})
}

func TestNewLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	newBufLogger(&buf, "text").Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain the message, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected output to contain key=value, got: %s", output)
	}
}

func TestNewLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	newBufLogger(&buf, "json").Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Errorf("expected JSON output to contain msg field, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected JSON output to contain key field, got: %s", output)
	}
}

func TestNewLoggerAttachesMode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "text", Output: &buf, Mode: platform.UserSessionRoot})
	logger.Info("hello")

	if !strings.Contains(buf.String(), "mode=user") {
		t.Errorf("expected mode attribute on every record, got: %s", buf.String())
	}
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Output: &buf,
	})

	logger.Info("info message")
	if strings.Contains(buf.String(), "info message") {
		t.Error("info message should be filtered at warn level")
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Error("warn message should be logged at warn level")
	}
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	WithOperation(newBufLogger(&buf, "text"), "mount").Warn("step failed")

	if !strings.Contains(buf.String(), "operation=mount") {
		t.Errorf("expected operation attribute, got: %s", buf.String())
	}
}

func TestWithChildAndEnded(t *testing.T) {
	var buf bytes.Buffer
	entry := WithEnded(WithChild(newBufLogger(&buf, "text"), "cyclog", 12345), "Signalled", 9)
	entry.Info("ended")

	output := buf.String()
	for _, want := range []string{"slot=cyclog", "pid=12345", "status=Signalled", "code=9"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSetDefaultAndDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufLogger(&buf, "text")

	SetDefault(logger)
	if Default() != logger {
		t.Fatal("Default should return the logger installed by SetDefault")
	}

	Default().Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Error("expected record written through the installed default")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
