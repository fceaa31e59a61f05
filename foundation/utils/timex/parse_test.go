// File: parse_test.go
// Title: Parser Tests
// Description: Tests for pattern compilation, parsing, field reconciliation
//              and the format/parse round trip.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-15 v0.2.0: Token pattern parser tests

package timex

import (
	"strings"
	"sync"
	"testing"
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/foundation/core/i18n"
)

// clockTime is the instant unset fields are filled from
var clockTime = at(2021, 5, 15, 8, 30, 45, 123)

func newTestParser() *Parser {
	return NewParser(WithClock(FixedClock{T: clockTime}), WithLocation(time.UTC), WithCache(NewCache(16, 0)))
}

func TestParse(t *testing.T) {
	p := newTestParser()

	testCases := []struct {
		name     string
		input    string
		pattern  string
		expected time.Time
	}{
		{"month name", "2020/Oct/10 11:23:34 234", "yyyy/MMM/dd HH:mm:ss SSS", at(2020, 9, 10, 11, 23, 34, 234)},
		{"two digit year", "90/Oct/10 11:23:34 234", "yy/MMM/dd HH:mm:ss SSS", at(1990, 9, 10, 11, 23, 34, 234)},
		{"single M", "90/4/10 11:23:34 234", "yy/M/dd HH:mm:ss SSS", at(1990, 3, 10, 11, 23, 34, 234)},
		{"pm", "90/4/10 11:23:34 234 pm", "yy/M/dd hh:mm:ss SSS a", at(1990, 3, 10, 23, 23, 34, 234)},
		{"meridiem run", "90/4/10 11:23:34 234 pm", "yy/M/dd hh:mm:ss SSS aa", at(1990, 3, 10, 23, 23, 34, 234)},
		{"upper AM", "2020/2/10 11:23:34 23 AM", "yyyy/M/dd hh:mm:ss S A", at(2020, 1, 10, 11, 23, 34, 23)},
		{"noon as 00 pm", "00 pm", "hh a", at(2021, 5, 15, 12, 30, 45, 123)},
		{"case insensitive name", "2020/OCT/10", "yyyy/MMM/dd", at(2020, 9, 10, 8, 30, 45, 123)},
		{"full names", "Sunday, October 4 2020", "EEEE, MMMM d yyyy", at(2020, 9, 4, 8, 30, 45, 123)},
		{"chinese month", "2020年十一月3日", "yyyy年MMMMM月d日", at(2020, 10, 3, 8, 30, 45, 123)},
		{"time only", "10:20", "HH:mm", at(2021, 5, 15, 10, 20, 45, 123)},
		{"literal dots", "2020.10.04", "yyyy.MM.dd", at(2020, 9, 4, 8, 30, 45, 123)},
		{"empty", "", "", clockTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := p.Parse(tc.input, tc.pattern, nil)
			if err != nil {
				t.Fatalf("Parse(%s, %s) unexpected error: %v", tc.input, tc.pattern, err)
			}
			if !result.Equal(tc.expected) {
				t.Errorf("Parse(%s, %s) = %v, want %v", tc.input, tc.pattern, result, tc.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	p := newTestParser()

	testCases := []struct {
		name    string
		input   string
		pattern string
		code    eiyaerror.Code
	}{
		{"missing millisecond", "2020/10/04 09:34:55", "yyyy/MM/dd HH:mm:ss SSS", eiyaerror.CodePatternMismatch},
		{"literal dot is not a wildcard", "2020x10x04", "yyyy.MM.dd", eiyaerror.CodePatternMismatch},
		{"unknown month name", "2020/Okt/04", "yyyy/MMM/dd", eiyaerror.CodePatternMismatch},
		{"H with h", "2020/10/04 09:34:55", "yyyy/MM/dd HH:hh:ss", eiyaerror.CodeFieldConflict},
		{"H with a", "2020/10/04 09:34:55 pm", "yyyy/MM/dd HH:mm:ss a", eiyaerror.CodeFieldConflict},
		{"h without meridiem", "2020/10/04 09:34:55", "yyyy/MM/dd hh:mm:ss", eiyaerror.CodeFieldConflict},
		{"meridiem without h", "2020/10/04 pm", "yyyy/MM/dd a", eiyaerror.CodeFieldConflict},
		{"hour too large", "2020/10/04 29:34:55", "yyyy/MM/dd HH:mm:ss", eiyaerror.CodeInvalidDate},
		{"12 pm overflows", "12 pm", "hh a", eiyaerror.CodeInvalidDate},
		{"weekday mismatch", "2020/10/04 12:34:55 Mon", "yyyy/MM/dd HH:mm:ss EEE", eiyaerror.CodeInvalidDate},
		{"month zero", "2020/00/04", "yyyy/MM/dd", eiyaerror.CodeInvalidDate},
		{"no leap day", "2021/02/29", "yyyy/MM/dd", eiyaerror.CodeInvalidDate},
		{"year overflow", "99999999999999999999999", "yyyy", eiyaerror.CodeInvalidDate},
		{"duplicate directive", "2020/10/04/05", "yyyy/MM/dd/dd", eiyaerror.CodeInvalidPattern},
		{"single y", "2020", "y", eiyaerror.CodeInvalidPattern},
		{"three y", "2020", "yyy", eiyaerror.CodeInvalidPattern},
		{"single Y", "2020/10", "Y/MM", eiyaerror.CodeInvalidPattern},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.input, tc.pattern, nil)
			if err == nil {
				t.Fatalf("Parse(%s, %s) expected error, got nil", tc.input, tc.pattern)
			}
			if !eiyaerror.HasCode(err, tc.code) {
				t.Errorf("Parse(%s, %s) error code = %s, want %s", tc.input, tc.pattern, eiyaerror.GetCode(err), tc.code)
			}
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	_, err := newTestParser().Parse("2020/10/04 29:34:55", "yyyy/MM/dd HH:mm:ss", nil)
	e, ok := err.(*eiyaerror.Error)
	if !ok {
		t.Fatalf("Parse() error type = %T, want *error.Error", err)
	}
	if e.Message() != "invalid date string" {
		t.Errorf("Message() = %q, want %q", e.Message(), "invalid date string")
	}
	if v, _ := e.Detail("input"); v != "2020/10/04 29:34:55" {
		t.Errorf("Detail(input) = %v", v)
	}
}

func TestParseWithTable(t *testing.T) {
	p := newTestParser()
	zh := i18n.Table{"a": {"上午", "下午"}}

	result, err := p.Parse("03:15 下午", "hh:mm a", zh)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if want := at(2021, 5, 15, 15, 15, 45, 123); !result.Equal(want) {
		t.Errorf("Parse() = %v, want %v", result, want)
	}

	// without names in the table the meridiem falls back to am/pm
	result, err = p.Parse("03:15 PM", "hh:mm a", i18n.Table{})
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if result.Hour() != 15 {
		t.Errorf("Parse() hour = %d, want 15", result.Hour())
	}

	// numeric month when the table has no month names
	if _, err := p.Parse("2020/Oct/04", "yyyy/MMM/dd", i18n.Table{}); !eiyaerror.HasCode(err, eiyaerror.CodePatternMismatch) {
		t.Errorf("Parse() error = %v, want %s", err, eiyaerror.CodePatternMismatch)
	}
}

func TestParseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	p := NewParser(WithClock(FixedClock{T: clockTime}), WithLocation(loc))

	result, err := p.Parse("2020/10/04 09:00", "yyyy/MM/dd HH:mm", nil)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if result.Location() != loc || result.Hour() != 9 {
		t.Errorf("Parse() = %v, want 09:00 in %s", result, loc)
	}
	// unset fields come from the clock read in the parser's location
	if result.Second() != 45 {
		t.Errorf("Parse() second = %d, want 45", result.Second())
	}
}

func TestRoundTrip(t *testing.T) {
	p := newTestParser()
	instants := []time.Time{
		at(2020, 9, 4, 9, 34, 55, 234),
		at(1994, 10, 23, 12, 12, 23, 234),
		at(2000, 1, 29, 0, 0, 0, 0),
		at(2038, 0, 1, 23, 59, 59, 999),
		at(1999, 11, 31, 11, 5, 7, 9),
	}
	patterns := []string{
		"yyyy/MM/dd HH:mm:ss SSS",
		"yyyy-MMM-dd hh:mm:ss.SSS a",
		"EEEE, MMMM d yyyy H:m:s.S",
		"dd MMMMM yyyy hh A mm",
		"yyyyMMddHHmmssSSS",
	}

	for _, tm := range instants {
		for _, pattern := range patterns {
			text := MustFormat(tm, pattern, nil)
			parsed, err := p.Parse(text, pattern, nil)
			if err != nil {
				t.Errorf("Parse(%s, %s) unexpected error: %v", text, pattern, err)
				continue
			}
			if again := MustFormat(parsed, pattern, nil); again != text {
				t.Errorf("round trip of %s through %s = %s", text, pattern, again)
			}
		}
	}

	// yy round-trips for the 1900s only
	tm := at(1994, 10, 23, 12, 12, 23, 234)
	text := MustFormat(tm, "yy/MM/dd", nil)
	parsed, err := p.Parse(text, "yy/MM/dd", nil)
	if err != nil || parsed.Year() != 1994 {
		t.Errorf("Parse(%s, yy/MM/dd) = %v, %v, want year 1994", text, parsed, err)
	}
}

func TestCompile(t *testing.T) {
	p := newTestParser()

	m, err := p.Compile("yyyy/MM/dd aA", nil)
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	want := []string{"yyyy", "MM", "dd", "a", "A"}
	got := m.Directives()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Directives() = %v, want %v", got, want)
	}
	if !strings.HasPrefix(m.Expression(), "(?i)^") || !strings.HasSuffix(m.Expression(), "$") {
		t.Errorf("Expression() = %s, want anchored case-insensitive expression", m.Expression())
	}
	if !m.MatchString("2020/10/04 PMam") {
		t.Error("MatchString() = false, want true")
	}
	if m.MatchString("2020/10/4 pmam") {
		t.Error("MatchString() = true for a one digit day against dd")
	}

	// distinct runs of one token may be combined
	if _, err := p.Compile("M MMM", nil); err != nil {
		t.Errorf("Compile(M MMM) unexpected error: %v", err)
	}
}

func TestCompileCache(t *testing.T) {
	p := newTestParser()

	first, err := p.Compile("yyyy/MMM/dd", nil)
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	second, _ := p.Compile("yyyy/MMM/dd", nil)
	if first != second {
		t.Error("Compile() did not reuse the cached matcher")
	}

	other, _ := p.Compile("yyyy/MMM/dd", i18n.Table{"MMM": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}})
	if other == first {
		t.Error("Compile() shared a matcher between different tables")
	}

	stats := p.Cache().Stats()
	if stats.Hits != 1 || stats.Misses != 2 || stats.Size != 2 {
		t.Errorf("Stats() = %+v, want 1 hit, 2 misses, size 2", stats)
	}

	uncached := NewParser(WithCache(nil))
	if uncached.Cache() != nil {
		t.Error("Cache() != nil with WithCache(nil)")
	}
	if _, err := uncached.Compile("yyyy", nil); err != nil {
		t.Errorf("Compile() without cache unexpected error: %v", err)
	}
}

func TestParseConcurrent(t *testing.T) {
	p := newTestParser()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			text := MustFormat(at(2020, 0, day, 0, 0, 0, 0), "yyyy/MM/dd", nil)
			result, err := p.Parse(text, "yyyy/MM/dd", nil)
			if err != nil || result.Day() != day {
				t.Errorf("Parse(%s) = %v, %v", text, result, err)
			}
		}(i + 1)
	}
	wg.Wait()
}
