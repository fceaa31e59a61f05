// Package error provides the structured error type used across eiya.
//
// Package: error
// Title: eiya Error Handling
// Description: Every failure raised by the date engine, the locale loader,
//              configuration and the service layer is an *Error carrying a
//              Code, a Severity, the failing operation and details such as
//              the offending pattern or input string.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Date engine codes
//
// Usage:
//
//	import eiyaerror "github.com/msto63/eiya/foundation/core/error"
//
//	err := eiyaerror.New("input does not match pattern").
//		WithCode(eiyaerror.CodePatternMismatch).
//		WithOperation("timex.Parse").
//		WithDetail("pattern", "yyyy/MM/dd")
//
//	if eiyaerror.HasCode(err, eiyaerror.CodePatternMismatch) {
//		// report the structural mismatch to the caller
//	}
//
// Codes map onto the failure taxonomy of the engine:
//
//	CodeInvalidPattern    illegal year directive length, unknown token
//	CodePatternMismatch   input text does not match the compiled expression
//	CodeFieldConflict     24-hour field with 12-hour field or meridiem
//	CodeInvalidDate       composite date out of range, weekday disagreement
//	CodeInvalidPrecision  unknown precision, millisecond for StartOf/EndOf
//	CodeInvalidLocale     malformed locale table
//	CodeInvalidOption     malformed boundary, empty instant list
package error
