package redactor

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name           string
		level          LogLevel
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:           "debug level shows all messages",
			level:          LogDebug,
			expectedOutput: []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"},
		},
		{
			name:           "info level hides debug messages",
			level:          LogInfo,
			expectedOutput: []string{"[INFO]", "[WARN]", "[ERROR]"},
			notExpected:    []string{"[DEBUG]"},
		},
		{
			name:           "warn level shows only warnings and errors",
			level:          LogWarn,
			expectedOutput: []string{"[WARN]", "[ERROR]"},
			notExpected:    []string{"[DEBUG]", "[INFO]"},
		},
		{
			name:        "off level silences everything",
			level:       LogOff,
			notExpected: []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			output := buf.String()
			for _, expected := range tt.expectedOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("output missing %q:\n%s", expected, output)
				}
			}
			for _, unexpected := range tt.notExpected {
				if strings.Contains(output, unexpected) {
					t.Errorf("output contains unexpected %q:\n%s", unexpected, output)
				}
			}
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogInfo)

	logger.WithField("path", "test.docx").Info("opened")

	output := buf.String()
	if !strings.Contains(output, "path=test.docx") {
		t.Errorf("output missing field, got: %s", output)
	}
	if !strings.Contains(output, "opened") {
		t.Errorf("output missing message, got: %s", output)
	}

	// The original logger is unchanged.
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "path=") {
		t.Errorf("WithField mutated the parent logger: %s", buf.String())
	}
}

func TestLoggerNilWriter(t *testing.T) {
	logger := NewLogger(nil, LogDebug)
	// Must not panic.
	logger.Info("discarded")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogDebug},
		{"info", LogInfo},
		{"warn", LogWarn},
		{"error", LogError},
		{"off", LogOff},
		{"unknown", LogInfo},
		{"", LogInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
