package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T, level Level) (*Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "test.log")

	l, err := New(Config{
		Level:      level,
		FilePath:   logPath,
		MaxSize:    1024 * 1024,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestLoggerWritesToFile(t *testing.T) {
	l, logPath := setupTestLogger(t, INFO)

	l.Info("server starting", F("addr", ":8484"))

	out := readLog(t, logPath)
	if !strings.Contains(out, "INFO") {
		t.Errorf("log entry missing level: %q", out)
	}
	if !strings.Contains(out, "server starting") {
		t.Errorf("log entry missing message: %q", out)
	}
	if !strings.Contains(out, "addr=:8484") {
		t.Errorf("log entry missing structured field: %q", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, logPath := setupTestLogger(t, WARN)

	l.Debug("too quiet")
	l.Info("still too quiet")
	l.Warn("loud enough")
	l.Error("definitely")

	out := readLog(t, logPath)
	if strings.Contains(out, "too quiet") {
		t.Errorf("below-threshold entries written: %q", out)
	}
	if !strings.Contains(out, "loud enough") || !strings.Contains(out, "definitely") {
		t.Errorf("at-or-above-threshold entries missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"DEBUG":   DEBUG,
		"INFO":    INFO,
		"WARN":    WARN,
		"ERROR":   ERROR,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerRotation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	l, err := New(Config{
		Level:      INFO,
		FilePath:   logPath,
		MaxSize:    256,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer l.Close()

	for i := 0; i < 20; i++ {
		l.Info("a reasonably sized log line to push the file past the limit")
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("no rotated backup after exceeding max size: %v", err)
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("live log file missing after rotation: %v", err)
	}
	if info.Size() == 0 {
		t.Error("live log file empty after rotation")
	}
}
