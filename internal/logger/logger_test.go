// SPDX-License-Identifier: EPL-2.0

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      LogLevel
		want    zapcore.Level
		wantErr bool
	}{
		{DebugLevel, zapcore.DebugLevel, false},
		{InfoLevel, zapcore.InfoLevel, false},
		{WarnLevel, zapcore.WarnLevel, false},
		{"", zapcore.WarnLevel, false},
		{ErrorLevel, zapcore.ErrorLevel, false},
		{"loud", zapcore.WarnLevel, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_ConsoleLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Config{Level: WarnLevel, Console: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("hidden")
	log.Warn("shown", zap.Int("ranges", 2))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"ranges": 2`) {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "loudcut.log")

	var console bytes.Buffer
	log, err := New(Config{Level: DebugLevel, Console: &console, OutputPath: path, MaxSize: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debug("decoded", zap.String("path", "in.wav"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log file is not JSON: %v: %q", err, data)
	}
	if entry["msg"] != "decoded" || entry["path"] != "in.wav" || entry["level"] != "debug" {
		t.Errorf("entry = %v", entry)
	}
	if !strings.Contains(console.String(), "decoded") {
		t.Errorf("console missing entry: %q", console.String())
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() with unknown level succeeded")
	}
}
