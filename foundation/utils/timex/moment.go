// File: moment.go
// Title: Moment
// Description: Value wrapper pairing an instant with an optional locale
//              table. Every method forwards to the package functions and
//              returns a new Moment; the receiver is never modified.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"time"

	"github.com/msto63/eiya/foundation/core/i18n"
)

// Moment is an instant with a locale table
type Moment struct {
	t     time.Time
	table i18n.Table
}

// New wraps t
func New(t time.Time) Moment {
	return Moment{t: t}
}

// Now wraps the current time
func Now() Moment {
	return Moment{t: time.Now()}
}

// Of builds a Moment from calendar fields in time.Local. The month is
// zero-based; out-of-range fields roll over.
func Of(year, month0, day, hour, minute, second, millisecond int) Moment {
	return Moment{t: build(year, month0, day, hour, minute, second, millisecond, time.Local)}
}

// ParseMoment parses text against pattern with the default parser
func ParseMoment(text, pattern string, table i18n.Table) (Moment, error) {
	t, err := Parse(text, pattern, table)
	if err != nil {
		return Moment{}, err
	}
	return Moment{t: t, table: table}, nil
}

// Time returns the wrapped instant
func (m Moment) Time() time.Time {
	return m.t
}

// Table returns the locale table, nil for the built-in names
func (m Moment) Table() i18n.Table {
	return m.table
}

// Locale returns a copy using the built-in names overridden by partial
func (m Moment) Locale(partial i18n.Table) Moment {
	return Moment{t: m.t, table: i18n.Merge(i18n.Default(), partial)}
}

func (m Moment) with(t time.Time) Moment {
	return Moment{t: t, table: m.table}
}

// Format renders the moment through pattern with its locale table
func (m Moment) Format(pattern string) (string, error) {
	return Format(m.t, pattern, m.table)
}

// String renders the moment with the canonical millisecond pattern
func (m Moment) String() string {
	pattern, _ := Millisecond.Pattern(false)
	return MustFormat(m.t, pattern, m.table)
}

// IsLeapYear reports whether the moment's year is a leap year
func (m Moment) IsLeapYear() bool {
	return IsLeapYear(m.t.Year())
}

// DaysInMonth returns the length of the moment's month
func (m Moment) DaysInMonth() int {
	return DaysInMonth(m.t.Year(), int(m.t.Month())-1)
}

// IsValid reports whether the moment holds an instant
func (m Moment) IsValid() bool {
	return IsValidTime(m.t)
}

// IsSame compares with other at the precision in opts
func (m Moment) IsSame(other Moment, opts ...Option) (bool, error) {
	return IsSame(m.t, other.t, opts...)
}

// IsAfter reports whether m is after other
func (m Moment) IsAfter(other Moment, opts ...Option) (bool, error) {
	return IsAfter(m.t, other.t, opts...)
}

// IsBefore reports whether m is before other
func (m Moment) IsBefore(other Moment, opts ...Option) (bool, error) {
	return IsBefore(m.t, other.t, opts...)
}

// IsBetween reports whether m lies between start and end
func (m Moment) IsBetween(start, end Moment, opts ...Option) (bool, error) {
	return IsBetween(m.t, start.t, end.t, opts...)
}

// Compare returns -1, 0 or 1
func (m Moment) Compare(other Moment, opts ...Option) (int, error) {
	return Compare(m.t, other.t, opts...)
}

// Add returns the moment moved by amount
func (m Moment) Add(amount int, opts ...Option) (Moment, error) {
	t, err := Add(m.t, amount, opts...)
	if err != nil {
		return Moment{}, err
	}
	return m.with(t), nil
}

// Subtract returns the moment moved back by amount
func (m Moment) Subtract(amount int, opts ...Option) (Moment, error) {
	return m.Add(-amount, opts...)
}

// StartOf returns the start of the moment's period
func (m Moment) StartOf(p Precision) (Moment, error) {
	t, err := StartOf(m.t, p)
	if err != nil {
		return Moment{}, err
	}
	return m.with(t), nil
}

// EndOf returns the end of the moment's period
func (m Moment) EndOf(p Precision) (Moment, error) {
	t, err := EndOf(m.t, p)
	if err != nil {
		return Moment{}, err
	}
	return m.with(t), nil
}

// Clone returns a copy of m
func (m Moment) Clone() Moment {
	return m.with(m.t)
}
