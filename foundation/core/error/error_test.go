// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-15 v0.2.0: Date engine codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "input does not match pattern"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the calling test", err.StackTrace()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("directive %q is illegal", "yyy")
	if err.Error() != `directive "yyy" is illegal` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "parse failed",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("strconv failure"),
			message:  "parse failed",
			wantMsg:  "parse failed: strconv failure",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("hour 29 out of range").WithCode(CodeInvalidDate),
			message:  "parse failed",
			wantMsg:  "parse failed: hour 29 out of range",
			wantCode: CodeInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("bad directive").
		WithCode(CodeInvalidPattern).
		WithDetail("directive", "yyy").
		WithRequestID("req-1")
	outer := Wrap(inner, "format failed")

	if v, ok := outer.Detail("directive"); !ok || v != "yyy" {
		t.Errorf("Detail(directive) = %v, %v", v, ok)
	}
	if outer.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", outer.RequestID())
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
}

func TestHasCodeThroughChain(t *testing.T) {
	base := New("weekday mismatch").WithCode(CodeInvalidDate)
	chained := fmt.Errorf("service: %w", Wrap(base, "parse"))

	if !HasCode(chained, CodeInvalidDate) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(chained, CodeFieldConflict) {
		t.Error("HasCode reported an unrelated code")
	}
	if GetCode(chained) != CodeInvalidDate {
		t.Errorf("GetCode() = %v, want %v", GetCode(chained), CodeInvalidDate)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity of a plain error should be SeverityMedium")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidPattern, SeverityLow},
		{CodePatternMismatch, SeverityLow},
		{CodeInvalidPrecision, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeServiceInitialization, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidDate)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity must not be overridden by WithCode")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidPattern, "pattern"},
		{CodePatternMismatch, "parse"},
		{CodeFieldConflict, "parse"},
		{CodeInvalidDate, "validity"},
		{CodeInvalidPrecision, "option"},
		{CodeInvalidLocale, "locale"},
		{CodeConfigError, "configuration"},
		{CodeNotFound, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}
	if Code("SOMETHING").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("invalid date string").
		WithCode(CodeInvalidDate).
		WithOperation("timex.Parse").
		WithDetail("input", "2020/10/04 29:34:55")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}
	if decoded["code"] != string(CodeInvalidDate) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "timex.Parse" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestStringIsSorted(t *testing.T) {
	err := New("x").WithDetail("b", 2).WithDetail("a", 1)
	if !strings.Contains(err.String(), "Details: {a=1, b=2}") {
		t.Errorf("String() = %q", err.String())
	}
}
