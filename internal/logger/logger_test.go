package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "warn"
	log := NewWithConsole(cfg, &buf)

	log.Info("hidden")
	log.Warn("shown", zap.String("frame", "f0"))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "f0") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detviz.log")
	cfg := DefaultConfig()
	cfg.File = path
	log := NewWithConsole(cfg, nil)

	log.Info("wrote points", zap.Int("points", 4))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"points":4`) {
		t.Errorf("log file = %q, want points field", data)
	}
}
