// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Caller mistakes such as a
//              malformed pattern are low severity; configuration and
//              initialization failures rank higher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity mapping for date engine codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround
	SeverityMedium

	// SeverityHigh indicates a broken configuration or service
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeServiceInitialization:
		return SeverityHigh
	default:
		if code.IsUserError() || code == CodeNotFound {
			return SeverityLow
		}
		return SeverityMedium
	}
}
