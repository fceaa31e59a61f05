// File: format.go
// Title: Formatter
// Description: Renders an instant through a token pattern, substituting
//              month, weekday and meridiem names from a locale table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Format delegated to time.Time.Format layouts
// - 2026-10-15 v0.2.0: Token pattern formatter with locale tables

package timex

import (
	"strconv"
	"strings"
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/foundation/core/i18n"
)

// defaultTable is shared by every call without a table and never modified
var defaultTable = i18n.Default()

func tableOrDefault(table i18n.Table) i18n.Table {
	if table == nil {
		return defaultTable
	}
	return table
}

// Format renders t through pattern. Fields are read in t's location. A nil
// table selects the built-in names.
//
// A 2-letter year shortens years 1900-1999 to their last two digits and
// renders any other year in full; 1- and 3-letter years are rejected. h is
// the hour modulo 12 without substituting 12 for 0, so noon renders as 00.
func Format(t time.Time, pattern string, table i18n.Table) (string, error) {
	table = tableOrDefault(table)

	var b strings.Builder
	for _, seg := range scanPattern(pattern, false) {
		if !seg.isDirective() {
			b.WriteString(seg.literal)
			continue
		}
		s, err := formatDirective(t, seg.directive, table)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// MustFormat is like Format but panics on error. It is meant for patterns
// known to be valid at compile time.
func MustFormat(t time.Time, pattern string, table i18n.Table) string {
	s, err := Format(t, pattern, table)
	if err != nil {
		panic(err)
	}
	return s
}

func formatDirective(t time.Time, directive string, table i18n.Table) (string, error) {
	f, ok := tokenFields[directive[0]]
	if !ok {
		return "", unknownToken(directive, "timex.Format")
	}
	if f == fieldYear {
		return formatYear(t.Year(), directive)
	}

	value := fieldValue(t, f)
	if names, ok := table[directive]; ok {
		if value < 0 || value >= len(names) {
			return "", eiyaerror.Newf("locale key %q has no name at index %d", directive, value).
				WithCode(eiyaerror.CodeInvalidLocale).
				WithOperation("timex.Format").
				WithDetail("directive", directive)
		}
		return names[value], nil
	}

	width := 2
	switch f {
	case fieldMonth:
		value++
	case fieldHour12:
		value %= 12
	case fieldMillisecond:
		width = 3
	}
	if len(directive) < width {
		width = len(directive)
	}
	return pad(value, width), nil
}

func formatYear(year int, directive string) (string, error) {
	s := strconv.Itoa(year)
	n := len(directive)
	if n == 2 && year >= 1900 && year <= 1999 {
		return s[2:], nil
	}
	if n == 1 || n == 3 {
		return "", eiyaerror.Newf("year directive %q: y does not support 1- or 3-character length", directive).
			WithCode(eiyaerror.CodeInvalidPattern).
			WithOperation("timex.Format").
			WithDetail("directive", directive)
	}
	return s, nil
}

// fieldValue returns the natural value of f: zero-based month and weekday,
// 0/1 for the meridiem
func fieldValue(t time.Time, f field) int {
	switch f {
	case fieldYear:
		return t.Year()
	case fieldMonth:
		return int(t.Month()) - 1
	case fieldDay:
		return t.Day()
	case fieldHour, fieldHour12:
		return t.Hour()
	case fieldMinute:
		return t.Minute()
	case fieldSecond:
		return t.Second()
	case fieldMillisecond:
		return millisecondOf(t)
	case fieldWeekday:
		return int(t.Weekday())
	case fieldMeridiem, fieldMeridiemUpper:
		return t.Hour() / 12
	}
	return -1
}

func pad(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func unknownToken(directive, op string) error {
	return eiyaerror.Newf("unknown directive %q", directive).
		WithCode(eiyaerror.CodeInvalidPattern).
		WithOperation(op).
		WithDetail("directive", directive)
}
