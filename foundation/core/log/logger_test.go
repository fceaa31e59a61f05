// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formatters, clone semantics and error
//              logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-15 v0.2.0: Reduced to the surviving API

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if tc.wantErr && !eiyaerror.HasCode(err, eiyaerror.CodeConfigError) {
				t.Errorf("ParseLevel(%q) error code = %v", tc.input, eiyaerror.GetCode(err))
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q, want a warning line", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	child := parent.WithField("pattern", "yyyy/MM/dd").WithRequestID("r1")

	parent.Info("parent")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if strings.Contains(lines[0], "pattern=") || strings.Contains(lines[0], "req=") {
		t.Errorf("parent line carries child context: %q", lines[0])
	}
	if !strings.Contains(lines[1], "pattern=yyyy/MM/dd") || !strings.Contains(lines[1], "(req=r1)") {
		t.Errorf("child line = %q", lines[1])
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithOperation("Format").ErrorWithErr("format failed", eiyaerror.New("bad").WithCode(eiyaerror.CodeInvalidPattern))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	want := map[string]string{
		"level":      "error",
		"message":    "format failed",
		"logger":     "test",
		"operation":  "Format",
		"error":      "bad",
		"error_code": "INVALID_PATTERN",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestLogfmtSortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.Info("parsed", Fields{"z": 1, "a": "x"})

	out := buf.String()
	if strings.Index(out, `a="x"`) > strings.Index(out, "z=1") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestLogErrorLevels(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"user error is debug", eiyaerror.New("mismatch").WithCode(eiyaerror.CodePatternMismatch), "[DBG]"},
		{"unknown is warn", eiyaerror.New("odd"), "[WRN]"},
		{"config is error", eiyaerror.New("cfg").WithCode(eiyaerror.CodeConfigError), "[ERR]"},
		{"plain error", errors.New("plain"), "[ERR]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			logger.LogError(tc.err)
			if !strings.Contains(buf.String(), tc.wantLevel) {
				t.Errorf("LogError() output = %q, want level %s", buf.String(), tc.wantLevel)
			}
		})
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	elapsed := logger.StartTimer("Parse").Stop(Field("pattern", "yyyy"))

	if elapsed < 0 {
		t.Errorf("Stop() = %v, want non-negative", elapsed)
	}
	out := buf.String()
	if !strings.Contains(out, "Parse:") || !strings.Contains(out, "pattern=yyyy") {
		t.Errorf("timer output = %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("dropped")
}
