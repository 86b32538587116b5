// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests for the Logger type including level filtering, clone
//              isolation of With* methods, and error integration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with logger tests

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mrcerror "github.com/msto63/mRC/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
	})
	return logger, buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("not visible")
	logger.Info("not visible either")
	if buf.Len() != 0 {
		t.Errorf("messages below warn should be suppressed, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn message missing: %q", buf.String())
	}
}

func TestLoggerWithFieldIsolation(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	derived := logger.WithField("component", "registry")
	logger.Info("parent message")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if _, ok := decoded["component"]; ok {
		t.Error("parent logger should not carry the derived logger's field")
	}

	buf.Reset()
	derived.Info("derived message")
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["component"] != "registry" {
		t.Errorf("component = %v, want registry", decoded["component"])
	}
}

func TestLoggerName(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.WithName("catalog").Info("named")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["logger"] != "catalog" {
		t.Errorf("logger = %v, want catalog", decoded["logger"])
	}
}

func TestLoggerCallFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.Info("lookup", Fields{"token": "PRESET"}, Fields{"hit": true})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["token"] != "PRESET" {
		t.Errorf("token = %v", decoded["token"])
	}
	if decoded["hit"] != true {
		t.Errorf("hit = %v", decoded["hit"])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		severity  mrcerror.Severity
		wantLevel string
	}{
		{"low severity logs at info", mrcerror.SeverityLow, "info"},
		{"medium severity logs at warn", mrcerror.SeverityMedium, "warn"},
		{"high severity logs at error", mrcerror.SeverityHigh, "error"},
		{"critical severity logs at error", mrcerror.SeverityCritical, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)

			err := mrcerror.New("problem").WithSeverity(tt.severity)
			logger.LogError(err)

			var decoded map[string]interface{}
			if jsonErr := json.Unmarshal(buf.Bytes(), &decoded); jsonErr != nil {
				t.Fatalf("invalid JSON output: %v", jsonErr)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorIncludesCodeAndDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	err := mrcerror.New("duplicate canonical name").
		WithCode(mrcerror.CodeDuplicateEntry).
		WithOperation("build").
		WithDetail("canonical_name", "PRESET")
	logger.LogError(err)

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON output: %v", jsonErr)
	}
	if decoded["error_code"] != "DUPLICATE_ENTRY" {
		t.Errorf("error_code = %v", decoded["error_code"])
	}
	if decoded["error_operation"] != "build" {
		t.Errorf("error_operation = %v", decoded["error_operation"])
	}
	if decoded["error_canonical_name"] != "PRESET" {
		t.Errorf("error_canonical_name = %v", decoded["error_canonical_name"])
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should produce no output, got %q", buf.String())
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger, _ := newBufferLogger(LevelWarn)

	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
