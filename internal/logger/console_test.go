package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.Level() != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.Level())
		}
		if logger.colorOutput {
			t.Error("expected color disabled for a non-terminal writer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger.writer != nil {
			t.Error("expected nil writer")
		}
	})

	t.Run("level is normalized", func(t *testing.T) {
		for input, want := range map[string]string{
			" DEBUG ": "debug",
			"Warn":    "warn",
			"":        "info",
			"verbose": "info",
		} {
			if got := NewConsoleLogger(nil, input).Level(); got != want {
				t.Errorf("NewConsoleLogger(%q).Level() = %q, want %q", input, got, want)
			}
		}
	})
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	levels := []string{"trace", "debug", "info", "warn"}

	for li, loggerLevel := range levels {
		for mi, messageLevel := range levels {
			name := fmt.Sprintf("%s logger, %s message", loggerLevel, messageLevel)
			t.Run(name, func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, loggerLevel)

				switch messageLevel {
				case "trace":
					logger.LogTrace("msg")
				case "debug":
					logger.LogDebug("msg")
				case "info":
					logger.LogInfo("msg")
				case "warn":
					logger.LogWarn("msg")
				}

				shouldAppear := mi >= li
				got := buf.String()
				if shouldAppear && !strings.Contains(got, "["+strings.ToUpper(messageLevel)+"] msg") {
					t.Errorf("expected message in output, got %q", got)
				}
				if !shouldAppear && got != "" {
					t.Errorf("expected no output, got %q", got)
				}
			})
		}
	}
}

// TestLogSummary verifies the scan summary line.
func TestLogSummary(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		summary  Summary
		expected string
	}{
		{
			name:     "clean scan",
			level:    "info",
			summary:  Summary{Root: "notes", Files: 12, Tagged: 9, Duration: 250 * time.Millisecond},
			expected: "Scanned 12 files in notes: 9 tagged, 0 unreadable (250ms)\n",
		},
		{
			name:     "with unreadable files",
			level:    "debug",
			summary:  Summary{Root: ".", Files: 3, Tagged: 1, Unreadable: 2, Duration: 1500 * time.Millisecond},
			expected: "Scanned 3 files in .: 1 tagged, 2 unreadable (1.5s)\n",
		},
		{
			name:    "suppressed above info",
			level:   "warn",
			summary: Summary{Root: ".", Files: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			NewConsoleLogger(buf, tt.level).LogSummary(tt.summary)

			got := buf.String()
			if tt.expected == "" {
				if got != "" {
					t.Errorf("expected no output, got %q", got)
				}
				return
			}
			if !strings.HasSuffix(got, tt.expected) {
				t.Errorf("expected output ending in %q, got %q", tt.expected, got)
			}
			if !strings.HasPrefix(got, "[") {
				t.Errorf("expected timestamp prefix, got %q", got)
			}
		})
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := timestamp()

	// Verify format is HH:MM:SS (8 characters total with colons)
	if len(ts) != 8 {
		t.Errorf("expected timestamp length 8, got %d: %s", len(ts), ts)
	}
	if ts[2] != ':' || ts[5] != ':' {
		t.Errorf("expected colons at positions 2 and 5, got %s", ts)
	}
	for i, ch := range ts {
		if i == 2 || i == 5 {
			continue
		}
		if ch < '0' || ch > '9' {
			t.Errorf("expected digit in timestamp, got %c", ch)
		}
	}
}

// TestConcurrentLogging verifies thread safety with concurrent logging.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	numGoroutines := 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(index int) {
			defer wg.Done()
			logger.LogDebug(fmt.Sprintf("read file-%d.md", index))
			logger.LogWarn(fmt.Sprintf("skipping file-%d.md", index))
		}(i)
	}
	wg.Wait()

	output := buf.String()
	if got := strings.Count(output, "\n"); got != 2*numGoroutines {
		t.Errorf("expected %d lines, got %d", 2*numGoroutines, got)
	}
	for i := 0; i < numGoroutines; i++ {
		name := fmt.Sprintf("file-%d.md", i)
		if strings.Count(output, name) != 2 {
			t.Errorf("expected output to contain %q twice", name)
		}
	}
}

// TestErrorLevelSilencesWarnings verifies "error" suppresses every message.
func TestErrorLevelSilencesWarnings(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "error")
	logger.LogWarn("skipping locked.md")
	logger.LogSummary(Summary{Files: 1})
	if buf.Len() != 0 {
		t.Errorf("expected no output at error level, got %q", buf.String())
	}
}

// TestNilWriter verifies that nil writer is handled gracefully.
func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")

	// These should not panic
	logger.LogTrace("x")
	logger.LogWarn("x")
	logger.LogSummary(Summary{Files: 1})
}

// TestDurationFormatting verifies duration formatting for various time ranges.
func TestDurationFormatting(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0ms"},
		{42 * time.Millisecond, "42ms"},
		{999 * time.Millisecond, "999ms"},
		{time.Second, "1.0s"},
		{2300 * time.Millisecond, "2.3s"},
		{90 * time.Second, "90.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := formatDuration(tt.duration); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

// TestNoOpLogger verifies that NoOpLogger discards everything without panicking.
func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	logger.LogTrace("x")
	logger.LogDebug("x")
	logger.LogInfo("x")
	logger.LogWarn("x")
	logger.LogSummary(Summary{})
}

type scanLogger interface {
	LogTrace(string)
	LogDebug(string)
	LogInfo(string)
	LogWarn(string)
	LogSummary(Summary)
}

func TestLoggersSatisfyInterface(t *testing.T) {
	var _ scanLogger = (*ConsoleLogger)(nil)
	var _ scanLogger = (*NoOpLogger)(nil)
}
