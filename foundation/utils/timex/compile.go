// File: compile.go
// Title: Pattern Compiler
// Description: Compiles a token pattern into an anchored, case-insensitive
//              regular expression with one capture group per directive.
//              A compiled Matcher is immutable and safe for concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"regexp"
	"strconv"
	"strings"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/foundation/core/i18n"
)

// meridiemFallback matches am/pm in any case when the table carries no
// meridiem names
var meridiemFallback = []string{"am", "pm"}

// Matcher is a compiled pattern
type Matcher struct {
	pattern    string
	re         *regexp.Regexp
	directives []string
	// names holds the table entries backing each group, nil for numeric groups
	names [][]string
}

// fieldSet holds one decoded value per field
type fieldSet struct {
	values [numFields]int
	set    [numFields]bool
}

func (fs *fieldSet) has(f field) bool {
	return fs.set[f]
}

func (fs *fieldSet) get(f field) int {
	return fs.values[f]
}

func (fs *fieldSet) put(f field, value int) {
	fs.values[f] = value
	fs.set[f] = true
}

// compile builds the matcher for pattern against table. The same directive
// may appear only once; distinct runs of one token, such as M and MMM, may
// be combined.
func compile(pattern string, table i18n.Table) (*Matcher, error) {
	m := &Matcher{pattern: pattern}
	seen := make(map[string]bool)

	var expr strings.Builder
	expr.WriteString("(?i)^")
	for _, seg := range scanPattern(pattern, true) {
		if !seg.isDirective() {
			expr.WriteString(regexp.QuoteMeta(seg.literal))
			continue
		}
		if seen[seg.directive] {
			return nil, eiyaerror.Newf("directive %q appears more than once", seg.directive).
				WithCode(eiyaerror.CodeInvalidPattern).
				WithOperation("timex.Compile").
				WithDetail("pattern", pattern).
				WithDetail("directive", seg.directive)
		}
		seen[seg.directive] = true

		sub, names, err := subExpression(seg.directive, table)
		if err != nil {
			return nil, err
		}
		expr.WriteString("(")
		expr.WriteString(sub)
		expr.WriteString(")")
		m.directives = append(m.directives, seg.directive)
		m.names = append(m.names, names)
	}
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, eiyaerror.Wrap(err, "compile pattern expression").
			WithCode(eiyaerror.CodeInvalidPattern).
			WithOperation("timex.Compile").
			WithDetail("pattern", pattern)
	}
	m.re = re
	return m, nil
}

func subExpression(directive string, table i18n.Table) (string, []string, error) {
	n := len(directive)
	switch f := tokenFields[directive[0]]; f {
	case fieldYear:
		switch n {
		case 1, 3:
			return "", nil, eiyaerror.Newf("year directive %q: y does not support 1- or 3-character length", directive).
				WithCode(eiyaerror.CodeInvalidPattern).
				WithOperation("timex.Compile").
				WithDetail("directive", directive)
		case 2:
			return `\d{2}`, nil, nil
		}
		return `\d+`, nil, nil
	case fieldMillisecond:
		if n == 3 {
			return `\d{3}`, nil, nil
		}
		return `\d{1,3}`, nil, nil
	case fieldMeridiem, fieldMeridiemUpper:
		names, ok := table[directive[:1]]
		if !ok {
			names = meridiemFallback
		}
		return alternation(names), names, nil
	case fieldMonth, fieldDay, fieldHour, fieldHour12, fieldMinute, fieldSecond, fieldWeekday:
		if names, ok := table[directive]; ok {
			return alternation(names), names, nil
		}
		if n == 2 {
			return `\d{2}`, nil, nil
		}
		return `\d{1,2}`, nil, nil
	}
	return "", nil, unknownToken(directive, "timex.Compile")
}

func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return strings.Join(quoted, "|")
}

// Pattern returns the source pattern
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Expression returns the compiled regular expression
func (m *Matcher) Expression() string {
	return m.re.String()
}

// Directives returns the directives in capture order
func (m *Matcher) Directives() []string {
	out := make([]string, len(m.directives))
	copy(out, m.directives)
	return out
}

// MatchString reports whether text has the structure of the pattern. It
// does not validate the decoded fields.
func (m *Matcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

// extract matches text and decodes every capture into its field
func (m *Matcher) extract(text string) (fieldSet, error) {
	var fs fieldSet
	groups := m.re.FindStringSubmatch(text)
	if groups == nil {
		return fs, eiyaerror.New("input does not match pattern").
			WithCode(eiyaerror.CodePatternMismatch).
			WithOperation("timex.Parse").
			WithDetail("pattern", m.pattern).
			WithDetail("input", text)
	}

	for i, directive := range m.directives {
		value, err := m.decode(i, groups[i+1])
		if err != nil {
			return fs, err
		}
		fs.put(tokenFields[directive[0]], value)
	}
	return fs, nil
}

func (m *Matcher) decode(i int, raw string) (int, error) {
	directive := m.directives[i]
	if names := m.names[i]; names != nil {
		for idx, name := range names {
			if strings.EqualFold(name, raw) {
				return idx, nil
			}
		}
		return 0, eiyaerror.Newf("%q is not a name of %q", raw, directive).
			WithCode(eiyaerror.CodePatternMismatch).
			WithOperation("timex.Parse").
			WithDetail("directive", directive)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, eiyaerror.Wrap(err, "invalid date string").
			WithCode(eiyaerror.CodeInvalidDate).
			WithOperation("timex.Parse").
			WithDetail("directive", directive)
	}
	switch tokenFields[directive[0]] {
	case fieldYear:
		if len(directive) == 2 {
			value += 1900
		}
	case fieldMonth:
		value--
	}
	return value, nil
}
