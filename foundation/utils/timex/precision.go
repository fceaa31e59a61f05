// File: precision.go
// Title: Precision
// Description: Calendar granularities used by arithmetic, period boundaries
//              and comparisons, together with the canonical patterns that
//              truncate an instant to a precision.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"strings"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// Precision names a calendar granularity
type Precision string

const (
	Year        Precision = "year"
	Month       Precision = "month"
	Date        Precision = "date"
	Hour        Precision = "hour"
	Minute      Precision = "minute"
	Second      Precision = "second"
	Millisecond Precision = "millisecond"
	Week        Precision = "week"
)

// Units lists every precision under an upper-case name
var Units = struct {
	YEAR, MONTH, DATE, HOUR, MINUTE, SECOND, MILLISECOND, WEEK Precision
}{Year, Month, Date, Hour, Minute, Second, Millisecond, Week}

type precisionPatterns struct {
	canonical string
	easy      string
}

var patterns = map[Precision]precisionPatterns{
	Year:        {"yyyy", "yyyy"},
	Month:       {"yyyy/MM", "MM"},
	Date:        {"yyyy/MM/dd", "dd"},
	Hour:        {"yyyy/MM/dd HH", "HH"},
	Minute:      {"yyyy/MM/dd HH:mm", "mm"},
	Second:      {"yyyy/MM/dd HH:mm:ss", "ss"},
	Millisecond: {"yyyy/MM/dd HH:mm:ss SSS", "SSS"},
	Week:        {"yyyy/MM/dd", "EE"},
}

// AllPrecisions returns the precisions from coarsest to finest, week last
func AllPrecisions() []Precision {
	return []Precision{Year, Month, Date, Hour, Minute, Second, Millisecond, Week}
}

// IsValid reports whether p is a known precision
func (p Precision) IsValid() bool {
	_, ok := patterns[p]
	return ok
}

// String returns the precision name
func (p Precision) String() string {
	return string(p)
}

// Pattern returns the pattern an instant is formatted with before it is
// compared at precision p. The easy pattern isolates the field of p and
// drops every coarser one.
func (p Precision) Pattern(easy bool) (string, error) {
	pp, ok := patterns[p]
	if !ok {
		return "", invalidPrecision(p, "timex.Precision.Pattern")
	}
	if easy {
		return pp.easy, nil
	}
	return pp.canonical, nil
}

// ParsePrecision converts a name such as "month" into a Precision
func ParsePrecision(s string) (Precision, error) {
	p := Precision(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", invalidPrecision(Precision(s), "timex.ParsePrecision")
	}
	return p, nil
}

func invalidPrecision(p Precision, op string) error {
	return eiyaerror.Newf("invalid precision %q", string(p)).
		WithCode(eiyaerror.CodeInvalidPrecision).
		WithOperation(op).
		WithDetail("precision", string(p))
}
