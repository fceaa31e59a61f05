// File: calendar.go
// Title: Calendar Math
// Description: Leap years, month lengths and range validation of composite
//              dates. Months are zero-based throughout the package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-15 v0.2.0: Rewritten around zero-based month calendar math

package timex

import "time"

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysInMonth returns the number of days of the zero-based month0 in year,
// or 0 if month0 is outside 0..11
func DaysInMonth(year, month0 int) int {
	switch {
	case month0 < 0 || month0 > 11:
		return 0
	case month0 == 1:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	// 31/30 alternate away from July and August, both long
	dist := month0 - 6
	if month0 < 7 {
		dist = 7 - month0
	}
	return 30 + dist&1
}

// IsValidDate reports whether every field lies in its natural range. The
// year is taken as given; two-digit years are not promoted.
func IsValidDate(year, month0, day, hour, minute, second, millisecond int) bool {
	switch {
	case month0 < 0 || month0 > 11:
		return false
	case day < 1 || day > DaysInMonth(year, month0):
		return false
	case hour < 0 || hour > 23:
		return false
	case minute < 0 || minute > 59:
		return false
	case second < 0 || second > 59:
		return false
	case millisecond < 0 || millisecond > 999:
		return false
	}
	return true
}

// IsValidTime reports whether t holds an instant; the zero Time stands for
// an unset value
func IsValidTime(t time.Time) bool {
	return !t.IsZero()
}

// millisecondOf returns the millisecond-of-second of t
func millisecondOf(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}

// build constructs an instant from calendar fields in loc; out-of-range
// fields are normalized the way time.Date does
func build(year, month0, day, hour, minute, second, millisecond int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month0+1), day, hour, minute, second, millisecond*int(time.Millisecond), loc)
}
