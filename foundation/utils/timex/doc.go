// Package timex formats, parses, shifts and compares instants through
// token patterns such as "yyyy/MM/dd HH:mm:ss SSS".
//
// Package: timex
// Title: Pattern Based Date Engine
// Description: Token pattern formatter and parser with locale tables,
//              month-aware calendar arithmetic, period boundaries and
//              precision bounded comparisons.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-15 v0.2.0: Rebuilt around token patterns and locale tables
//
// # Patterns
//
// A directive is a maximal run of one token character; everything else is
// literal text:
//
//	y, Y   year; "yy" shortens 1900-1999 to two digits, "y" and "yyy" are rejected
//	M      month, 1-based; MMM, MMMM and MMMMM are names from the locale table
//	d      day of month
//	H      hour 0-23
//	h      hour modulo 12 (noon renders as 00)
//	m, s   minute, second
//	S      millisecond, padded to at most three digits
//	E      weekday 0-6 from Sunday; EEE, EEEE and EEEEE are names
//	a, A   meridiem name; format writes one per character, parse reads a run as one
//
// Numeric fields are left-padded with zeros to the directive length, capped
// at two digits (three for S).
//
// # Formatting and Parsing
//
//	s, err := timex.Format(t, "yyyy/MMM/dd hh:mm:ss a", nil)
//	t, err := timex.Parse("90/4/10 11:23:34 234 pm", "yy/M/dd hh:mm:ss SSS a", nil)
//
// Parsing compiles the pattern into an anchored, case-insensitive regular
// expression and caches the result per pattern and table. H cannot be
// combined with h or a meridiem, and h requires one. Fields missing from the
// pattern are taken from the parser's Clock. A parsed weekday must agree
// with the date.
//
// # Arithmetic
//
//	t, err := timex.Add(t, 1, timex.WithPrecision(timex.Month))
//	t, err := timex.StartOf(t, timex.Week)
//
// Adding months keeps the last day of a month on the last day of the target
// month unless End is disabled; Overstep lets a day beyond the target
// month's length roll into the next month instead of being clamped.
//
// # Comparison
//
// Instants are compared by formatting both at the pattern of a precision
// and comparing the strings. With Easy only the field of the precision is
// kept, so month comparisons ignore the year:
//
//	same, err := timex.IsSame(a, b, timex.WithPrecision(timex.Month), timex.Easy())
//	in, err := timex.IsBetween(t, start, end, timex.WithBoundary("[)"))
//
// # Errors
//
// Every failure is an *error.Error from foundation/core/error carrying one
// of CodeInvalidPattern, CodePatternMismatch, CodeFieldConflict,
// CodeInvalidDate, CodeInvalidPrecision, CodeInvalidLocale or
// CodeInvalidOption.
package timex
