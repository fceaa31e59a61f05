// File: arithmetic_test.go
// Title: Calendar Arithmetic Tests
// Description: Tests for Add, Subtract, StartOf and EndOf including month
//              end policies and period idempotence.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"math"
	"testing"
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

func TestAdd(t *testing.T) {
	base := at(2020, 2, 31, 14, 15, 16, 348)

	testCases := []struct {
		name     string
		input    time.Time
		amount   int
		opts     []Option
		pattern  string
		expected string
	}{
		{"year", base, 1, []Option{WithPrecision(Year)}, "yyyy", "2021"},
		{"month clamps at end", base, 1, []Option{WithPrecision(Month)}, "yyyyMMdd", "20200430"},
		{"month overstep", base, 1, []Option{WithPrecision(Month), WithOverstep(true), WithEnd(false)}, "yyyyMMdd", "20200501"},
		{"month end explicit", base, 1, []Option{WithPrecision(Month), WithEnd(true)}, "yyyyMMdd", "20200430"},
		{"month end without overstep", base, 1, []Option{WithPrecision(Month), WithEnd(false)}, "yyyyMMdd", "20200430"},
		{"leap day to month end", at(2020, 1, 29, 0, 0, 0, 0), 1, []Option{WithPrecision(Month)}, "yyyyMMdd", "20200331"},
		{"mid month day kept", at(2020, 0, 15, 0, 0, 0, 0), 1, []Option{WithPrecision(Month)}, "yyyyMMdd", "20200215"},
		{"month across year", at(2020, 10, 15, 0, 0, 0, 0), 3, []Option{WithPrecision(Month)}, "yyyyMMdd", "20210215"},
		{"negative month across year", at(2020, 0, 15, 0, 0, 0, 0), -1, []Option{WithPrecision(Month)}, "yyyyMMdd", "20191215"},
		{"negative months over a year", at(2020, 0, 15, 0, 0, 0, 0), -13, []Option{WithPrecision(Month)}, "yyyyMMdd", "20181215"},
		{"month keeps clock time", base, 1, []Option{WithPrecision(Month)}, "HH:mm:ss SSS", "14:15:16 348"},
		{"date", base, 1, []Option{WithPrecision(Date)}, "yyyyMMdd", "20200401"},
		{"week", base, -1, []Option{WithPrecision(Week)}, "yyyyMMdd", "20200324"},
		{"hour", base, 1, []Option{WithPrecision(Hour)}, "yyyyMMdd HH", "20200331 15"},
		{"minute", base, 50, []Option{WithPrecision(Minute)}, "yyyyMMdd HH:mm", "20200331 15:05"},
		{"second", base, 50, []Option{WithPrecision(Second)}, "yyyyMMdd HH:mm:ss", "20200331 14:16:06"},
		{"millisecond", base, 900, []Option{WithPrecision(Millisecond)}, "yyyyMMdd HH:mm:ss SSS", "20200331 14:15:17 248"},
		{"default precision", base, 900, nil, "yyyyMMdd HH:mm:ss SSS", "20200331 14:15:17 248"},
		{"weeks beyond duration range", at(2020, 0, 1, 0, 0, 0, 0), 20000, []Option{WithPrecision(Week)}, "yyyyMMdd HH:mm:ss SSS", "24030423 00:00:00 000"},
		{"days beyond duration range", at(2020, 0, 1, 0, 0, 0, 0), 200000, []Option{WithPrecision(Date)}, "yyyyMMdd HH:mm:ss SSS", "25670801 00:00:00 000"},
		{"negative weeks beyond duration range", at(2020, 0, 1, 0, 0, 0, 0), -20000, []Option{WithPrecision(Week)}, "yyyyMMdd", "16360910"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Add(tc.input, tc.amount, tc.opts...)
			if err != nil {
				t.Fatalf("Add(%d) unexpected error: %v", tc.amount, err)
			}
			if got := MustFormat(result, tc.pattern, nil); got != tc.expected {
				t.Errorf("Add(%d) = %s, want %s", tc.amount, got, tc.expected)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	base := at(2021, 1, 28, 14, 15, 16, 348)

	testCases := []struct {
		name      string
		input     time.Time
		precision Precision
		expected  string
	}{
		{"year to leap month end", base, Year, "20200229"},
		{"week", base, Week, "20210221"},
		{"year", at(2019, 11, 12, 0, 0, 0, 0), Year, "20181212"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Subtract(tc.input, 1, WithPrecision(tc.precision))
			if err != nil {
				t.Fatalf("Subtract(%s) unexpected error: %v", tc.precision, err)
			}
			if got := MustFormat(result, "yyyyMMdd", nil); got != tc.expected {
				t.Errorf("Subtract(%s) = %s, want %s", tc.precision, got, tc.expected)
			}
		})
	}
}

func TestAddSubtractInverse(t *testing.T) {
	base := at(2020, 4, 14, 10, 0, 0, 0)
	for _, p := range AllPrecisions() {
		for _, n := range []int{1, 5, -7} {
			forward, err := Add(base, n, WithPrecision(p))
			if err != nil {
				t.Fatalf("Add(%d, %s) unexpected error: %v", n, p, err)
			}
			back, err := Subtract(forward, n, WithPrecision(p))
			if err != nil {
				t.Fatalf("Subtract(%d, %s) unexpected error: %v", n, p, err)
			}
			if !back.Equal(base) {
				t.Errorf("Subtract(Add(t, %d, %s)) = %v, want %v", n, p, back, base)
			}
		}
	}
}

func TestAddInvalidPrecision(t *testing.T) {
	_, err := Add(time.Now(), 1, WithPrecision("minutes"))
	if !eiyaerror.HasCode(err, eiyaerror.CodeInvalidPrecision) {
		t.Errorf("Add(minutes) error = %v, want %s", err, eiyaerror.CodeInvalidPrecision)
	}
}

func TestAddOutOfRange(t *testing.T) {
	base := at(2020, 0, 1, 0, 0, 0, 0)
	for _, amount := range []int{math.MaxInt64 / 1000, math.MinInt64 / 1000} {
		if _, err := Add(base, amount, WithPrecision(Week)); !eiyaerror.HasCode(err, eiyaerror.CodeInvalidDate) {
			t.Errorf("Add(%d weeks) error = %v, want %s", amount, err, eiyaerror.CodeInvalidDate)
		}
	}
}

func TestStartOf(t *testing.T) {
	base := at(2020, 2, 31, 14, 15, 16, 348)

	testCases := []struct {
		precision Precision
		expected  string
	}{
		{Year, "20200101 000000 000"},
		{Month, "20200301 000000 000"},
		{Date, "20200331 000000 000"},
		{Hour, "20200331 140000 000"},
		{Minute, "20200331 141500 000"},
		{Second, "20200331 141516 000"},
		{Week, "20200329 000000 000"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.precision), func(t *testing.T) {
			result, err := StartOf(base, tc.precision)
			if err != nil {
				t.Fatalf("StartOf(%s) unexpected error: %v", tc.precision, err)
			}
			if got := MustFormat(result, "yyyyMMdd HHmmss SSS", nil); got != tc.expected {
				t.Errorf("StartOf(%s) = %s, want %s", tc.precision, got, tc.expected)
			}
		})
	}
}

func TestEndOf(t *testing.T) {
	base := at(2020, 2, 30, 14, 15, 16, 348)

	testCases := []struct {
		precision Precision
		expected  string
	}{
		{Year, "20201231 235959 999"},
		{Month, "20200331 235959 999"},
		{Date, "20200330 235959 999"},
		{Hour, "20200330 145959 999"},
		{Minute, "20200330 141559 999"},
		{Second, "20200330 141516 999"},
		{Week, "20200404 235959 999"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.precision), func(t *testing.T) {
			result, err := EndOf(base, tc.precision)
			if err != nil {
				t.Fatalf("EndOf(%s) unexpected error: %v", tc.precision, err)
			}
			if got := MustFormat(result, "yyyyMMdd HHmmss SSS", nil); got != tc.expected {
				t.Errorf("EndOf(%s) = %s, want %s", tc.precision, got, tc.expected)
			}
		})
	}
}

func TestEndOfMonthLengths(t *testing.T) {
	testCases := []struct {
		input    time.Time
		expected int
	}{
		{at(2020, 1, 3, 0, 0, 0, 0), 29},
		{at(2021, 1, 3, 0, 0, 0, 0), 28},
		{at(2021, 3, 30, 0, 0, 0, 0), 30},
		{at(2021, 11, 1, 0, 0, 0, 0), 31},
	}
	for _, tc := range testCases {
		result, err := EndOf(tc.input, Month)
		if err != nil {
			t.Fatalf("EndOf(month) unexpected error: %v", err)
		}
		if result.Day() != tc.expected || result.Month() != tc.input.Month() {
			t.Errorf("EndOf(%v, month) = %v, want day %d", tc.input, result, tc.expected)
		}
	}
}

func TestPeriodIdempotence(t *testing.T) {
	instants := []time.Time{
		at(2020, 2, 31, 14, 15, 16, 348),
		at(2019, 11, 31, 23, 59, 59, 999),
		at(2024, 1, 29, 0, 0, 0, 0),
	}
	for _, tm := range instants {
		for _, p := range []Precision{Year, Month, Date, Hour, Minute, Second, Week} {
			once, _ := StartOf(tm, p)
			twice, _ := StartOf(once, p)
			if !once.Equal(twice) {
				t.Errorf("StartOf(StartOf(%v, %s)) = %v, want %v", tm, p, twice, once)
			}
			once, _ = EndOf(tm, p)
			twice, _ = EndOf(once, p)
			if !once.Equal(twice) {
				t.Errorf("EndOf(EndOf(%v, %s)) = %v, want %v", tm, p, twice, once)
			}
		}
	}
}

func TestPeriodInvalidPrecision(t *testing.T) {
	for _, p := range []Precision{Millisecond, "fortnight"} {
		if _, err := StartOf(time.Now(), p); !eiyaerror.HasCode(err, eiyaerror.CodeInvalidPrecision) {
			t.Errorf("StartOf(%s) error = %v, want %s", p, err, eiyaerror.CodeInvalidPrecision)
		}
		if _, err := EndOf(time.Now(), p); !eiyaerror.HasCode(err, eiyaerror.CodeInvalidPrecision) {
			t.Errorf("EndOf(%s) error = %v, want %s", p, err, eiyaerror.CodeInvalidPrecision)
		}
	}
}

func TestClone(t *testing.T) {
	tm := at(2019, 11, 12, 12, 23, 43, 899)
	if got := Clone(tm); !got.Equal(tm) {
		t.Errorf("Clone() = %v, want %v", got, tm)
	}
}
