// File: arithmetic.go
// Title: Calendar Arithmetic
// Description: Adds and subtracts calendar amounts and snaps instants to
//              the start or end of a period. Month and year steps follow
//              the month-end and overstep policies of Options.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Business day and duration helpers
// - 2026-10-15 v0.2.0: Precision based add/subtract and period boundaries

package timex

import (
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// unitMillis is the fixed length of the sub-month precisions
var unitMillis = map[Precision]int64{
	Millisecond: 1,
	Second:      1000,
	Minute:      60 * 1000,
	Hour:        60 * 60 * 1000,
	Date:        24 * 60 * 60 * 1000,
	Week:        7 * 24 * 60 * 60 * 1000,
}

// Add moves t by amount units of the precision in opts, millisecond by
// default. Sub-month precisions add a fixed number of milliseconds; an
// offset beyond the int64 millisecond range is CodeInvalidDate.
//
// Month and year steps keep the clock time and choose the target day in
// this order: the last day of a month maps to the last day of the target
// month when End is set; with Overstep the day is kept and may roll into
// the next month; otherwise the day is clamped to the target month.
func Add(t time.Time, amount int, opts ...Option) (time.Time, error) {
	o := NewOptions(opts...)

	switch o.Precision {
	case Month, Year:
		return addMonths(t, amount, o), nil
	}
	unit, ok := unitMillis[o.Precision]
	if !ok {
		return time.Time{}, invalidPrecision(o.Precision, "timex.Add")
	}
	return addMillis(t, amount, unit)
}

// addMillis adds amount*unit milliseconds without going through
// time.Duration, which only spans about 292 years
func addMillis(t time.Time, amount int, unit int64) (time.Time, error) {
	offset := int64(amount) * unit
	from := t.UnixMilli()
	sum := from + offset
	if offset/unit != int64(amount) || (offset > 0 && sum < from) || (offset < 0 && sum > from) {
		return time.Time{}, eiyaerror.Newf("adding %d units of %d ms leaves the representable range", amount, unit).
			WithCode(eiyaerror.CodeInvalidDate).
			WithOperation("timex.Add").
			WithDetail("amount", amount)
	}
	subMilli := time.Duration(t.Nanosecond() % int(time.Millisecond))
	return time.UnixMilli(sum).Add(subMilli).In(t.Location()), nil
}

// Subtract is Add with the negated amount
func Subtract(t time.Time, amount int, opts ...Option) (time.Time, error) {
	return Add(t, -amount, opts...)
}

func addMonths(t time.Time, amount int, o Options) time.Time {
	year, month0, day := t.Year(), int(t.Month())-1, t.Day()

	targetYear, targetMonth := year+amount, month0
	if o.Precision == Month {
		total := month0 + amount
		shift := floorDiv(total, 12)
		targetYear, targetMonth = year+shift, total-shift*12
	}

	maxTarget := DaysInMonth(targetYear, targetMonth)
	targetDay := day
	switch {
	case day == DaysInMonth(year, month0) && o.End:
		targetDay = maxTarget
	case o.Overstep:
	case day > maxTarget:
		targetDay = maxTarget
	}

	return time.Date(targetYear, time.Month(targetMonth+1), targetDay,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// StartOf returns the first instant of the period of precision p containing
// t. Weeks start on Sunday. Millisecond has no period.
func StartOf(t time.Time, p Precision) (time.Time, error) {
	y, m0, d := t.Year(), int(t.Month())-1, t.Day()
	loc := t.Location()

	switch p {
	case Year:
		return build(y, 0, 1, 0, 0, 0, 0, loc), nil
	case Month:
		return build(y, m0, 1, 0, 0, 0, 0, loc), nil
	case Date:
		return build(y, m0, d, 0, 0, 0, 0, loc), nil
	case Hour:
		return build(y, m0, d, t.Hour(), 0, 0, 0, loc), nil
	case Minute:
		return build(y, m0, d, t.Hour(), t.Minute(), 0, 0, loc), nil
	case Second:
		return build(y, m0, d, t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	case Week:
		return build(y, m0, d-int(t.Weekday()), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, invalidPrecision(p, "timex.StartOf")
}

// EndOf returns the last millisecond of the period of precision p
// containing t. Weeks end on Saturday. Millisecond has no period.
func EndOf(t time.Time, p Precision) (time.Time, error) {
	y, m0, d := t.Year(), int(t.Month())-1, t.Day()
	loc := t.Location()

	switch p {
	case Year:
		return build(y, 11, 31, 23, 59, 59, 999, loc), nil
	case Month:
		// day 0 of the next month
		return build(y, m0+1, 0, 23, 59, 59, 999, loc), nil
	case Date:
		return build(y, m0, d, 23, 59, 59, 999, loc), nil
	case Hour:
		return build(y, m0, d, t.Hour(), 59, 59, 999, loc), nil
	case Minute:
		return build(y, m0, d, t.Hour(), t.Minute(), 59, 999, loc), nil
	case Second:
		return build(y, m0, d, t.Hour(), t.Minute(), t.Second(), 999, loc), nil
	case Week:
		return build(y, m0, d+6-int(t.Weekday()), 23, 59, 59, 999, loc), nil
	}
	return time.Time{}, invalidPrecision(p, "timex.EndOf")
}

// Clone returns t. Instants are values; Clone exists for symmetry with
// Moment.Clone.
func Clone(t time.Time) time.Time {
	return t
}
