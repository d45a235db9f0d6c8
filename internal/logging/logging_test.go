package logging

import (
	"testing"

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
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"ERROR", zapcore.ErrorLevel},
		{" info ", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewReturnsUsableLogger(t *testing.T) {
	for _, format := range []string{"console", "json", "weird"} {
		log := New("debug", format)
		if log == nil {
			t.Fatalf("New(debug, %s) returned nil", format)
		}
		if !log.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("format %s: debug level must be enabled", format)
		}
	}
}
