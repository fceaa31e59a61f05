// File: directive.go
// Title: Pattern Scanner
// Description: Splits a pattern into literal text and directives. A
//              directive is a maximal run of one token character. Format
//              splits meridiem runs into single-character directives,
//              parse patterns keep them as one.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import "strings"

// field identifies the calendar field a token stands for
type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
	fieldHour
	fieldHour12
	fieldMinute
	fieldSecond
	fieldMillisecond
	fieldWeekday
	fieldMeridiem
	fieldMeridiemUpper
	numFields
)

var tokenFields = map[byte]field{
	'y': fieldYear,
	'Y': fieldYear,
	'M': fieldMonth,
	'd': fieldDay,
	'H': fieldHour,
	'h': fieldHour12,
	'm': fieldMinute,
	's': fieldSecond,
	'S': fieldMillisecond,
	'E': fieldWeekday,
	'a': fieldMeridiem,
	'A': fieldMeridiemUpper,
}

// segment is either literal text or a directive
type segment struct {
	literal   string
	directive string
}

func (s segment) isDirective() bool {
	return s.directive != ""
}

func (s segment) token() byte {
	return s.directive[0]
}

func isToken(c byte) bool {
	_, ok := tokenFields[c]
	return ok
}

func isMeridiem(c byte) bool {
	return c == 'a' || c == 'A'
}

// scanPattern decomposes pattern left to right. Tokens are ASCII, so bytes
// of multi-byte literal characters never start a directive. Unless
// meridiemRuns is set, "aa" yields two "a" directives.
func scanPattern(pattern string, meridiemRuns bool) []segment {
	var segs []segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		if !isToken(c) {
			lit.WriteByte(c)
			i++
			continue
		}
		flush()
		if isMeridiem(c) && !meridiemRuns {
			segs = append(segs, segment{directive: pattern[i : i+1]})
			i++
			continue
		}
		j := i + 1
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		segs = append(segs, segment{directive: pattern[i:j]})
		i = j
	}
	flush()
	return segs
}
