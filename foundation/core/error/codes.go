// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across eiya. Codes classify every
//              failure raised by the format/parse engine, the calendar
//              arithmetic, locale loading and the service layer so callers
//              can branch on the kind of failure instead of its message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Replaced platform codes with date engine codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Pattern errors: illegal year directive length, unknown token,
	// duplicate directive
	CodeInvalidPattern Code = "INVALID_PATTERN"

	// Structural parse errors: the input does not match the compiled pattern
	CodePatternMismatch Code = "PATTERN_MISMATCH"

	// Field-conflict errors: H combined with h/a/A, h and a/A not paired
	CodeFieldConflict Code = "FIELD_CONFLICT"

	// Semantic validity errors: composite date out of range, weekday mismatch
	CodeInvalidDate Code = "INVALID_DATE"

	// Precision errors: unknown precision, unsupported granularity
	CodeInvalidPrecision Code = "INVALID_PRECISION"

	// Locale table errors: unknown key, wrong list length
	CodeInvalidLocale Code = "INVALID_LOCALE"

	// Option errors: malformed boundary, empty instant list
	CodeInvalidOption Code = "INVALID_OPTION"

	// Configuration and service
	CodeConfigError           Code = "CONFIG_ERROR"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidPattern, CodePatternMismatch, CodeFieldConflict, CodeInvalidDate,
		CodeInvalidPrecision, CodeInvalidLocale, CodeInvalidOption,
		CodeConfigError, CodeServiceInitialization:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidPattern:
		return "pattern"
	case CodePatternMismatch, CodeFieldConflict:
		return "parse"
	case CodeInvalidDate:
		return "validity"
	case CodeInvalidPrecision, CodeInvalidOption:
		return "option"
	case CodeInvalidLocale:
		return "locale"
	case CodeConfigError, CodeServiceInitialization:
		return "configuration"
	default:
		return "generic"
	}
}

// IsUserError reports whether the code describes bad caller input rather
// than a fault of the library or its environment.
func (c Code) IsUserError() bool {
	switch c {
	case CodeInvalidInput, CodeInvalidPattern, CodePatternMismatch, CodeFieldConflict,
		CodeInvalidDate, CodeInvalidPrecision, CodeInvalidLocale, CodeInvalidOption:
		return true
	default:
		return false
	}
}
