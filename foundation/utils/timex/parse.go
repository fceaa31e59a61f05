// File: parse.go
// Title: Parser
// Description: Parses text against a token pattern. Decoded fields are
//              reconciled (12h/24h exclusivity, meridiem pairing), missing
//              fields are filled from the clock, and the composite date is
//              validated before the instant is built.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Layout based parsing with format auto-detection
// - 2026-10-15 v0.2.0: Token pattern parser with compiled matchers

package timex

import (
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/foundation/core/i18n"
)

// Parser parses date strings. A Parser is safe for concurrent use.
type Parser struct {
	clock    Clock
	cache    *Cache
	location *time.Location
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithClock sets the clock unset fields are filled from
func WithClock(c Clock) ParserOption {
	return func(p *Parser) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithCache shares a matcher cache between parsers. A nil cache disables
// caching.
func WithCache(c *Cache) ParserOption {
	return func(p *Parser) {
		p.cache = c
	}
}

// WithLocation sets the location parsed instants are built in
func WithLocation(loc *time.Location) ParserOption {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// NewParser creates a parser reading the system clock in time.Local
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		clock:    SystemClock{},
		location: time.Local,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser(WithCache(NewCache(256, 0)))

// Compile compiles pattern against table with the default parser
func Compile(pattern string, table i18n.Table) (*Matcher, error) {
	return defaultParser.Compile(pattern, table)
}

// Parse parses text against pattern with the default parser
func Parse(text, pattern string, table i18n.Table) (time.Time, error) {
	return defaultParser.Parse(text, pattern, table)
}

// Cache returns the parser's matcher cache, or nil
func (p *Parser) Cache() *Cache {
	return p.cache
}

// Compile returns the matcher for pattern, compiling it on a cache miss. A
// nil table selects the built-in names.
func (p *Parser) Compile(pattern string, table i18n.Table) (*Matcher, error) {
	table = tableOrDefault(table)
	if p.cache == nil {
		return compile(pattern, table)
	}

	key := cacheKey(pattern, table.Fingerprint())
	if m, ok := p.cache.Get(key); ok {
		return m, nil
	}
	m, err := compile(pattern, table)
	if err != nil {
		return nil, err
	}
	p.cache.Put(key, m)
	return m, nil
}

// Parse parses text against pattern. Month, weekday and meridiem names are
// matched case-insensitively against table; a nil table selects the
// built-in names.
//
// Fields the pattern does not carry default to the parser's clock, each
// independently. A 2-letter year is read as 1900 plus its value.
func (p *Parser) Parse(text, pattern string, table i18n.Table) (time.Time, error) {
	m, err := p.Compile(pattern, table)
	if err != nil {
		return time.Time{}, err
	}
	return p.ParseWith(m, text)
}

// ParseWith parses text against a compiled matcher
func (p *Parser) ParseWith(m *Matcher, text string) (time.Time, error) {
	fs, err := m.extract(text)
	if err != nil {
		return time.Time{}, err
	}
	t, err := p.reconcile(fs)
	if err != nil {
		if e, ok := err.(*eiyaerror.Error); ok {
			e.WithDetail("pattern", m.pattern).WithDetail("input", text)
		}
		return time.Time{}, err
	}
	return t, nil
}

func (p *Parser) reconcile(fs fieldSet) (time.Time, error) {
	if fs.has(fieldMeridiemUpper) {
		if !fs.has(fieldMeridiem) || fs.get(fieldMeridiemUpper) > fs.get(fieldMeridiem) {
			fs.put(fieldMeridiem, fs.get(fieldMeridiemUpper))
		}
	}

	has24, has12, hasA := fs.has(fieldHour), fs.has(fieldHour12), fs.has(fieldMeridiem)
	if has24 && (has12 || hasA) {
		return time.Time{}, fieldConflict("H cannot coexist with h, a, A")
	}
	if has12 != hasA {
		return time.Time{}, fieldConflict("h and a/A must appear in pairs")
	}

	now := p.clock.Now().In(p.location)
	or := func(f field, fallback int) int {
		if fs.has(f) {
			return fs.get(f)
		}
		return fallback
	}

	year := or(fieldYear, now.Year())
	month0 := or(fieldMonth, int(now.Month())-1)
	day := or(fieldDay, now.Day())
	hour := or(fieldHour, now.Hour())
	if has12 {
		hour = fs.get(fieldHour12) + fs.get(fieldMeridiem)*12
	}
	minute := or(fieldMinute, now.Minute())
	second := or(fieldSecond, now.Second())
	ms := or(fieldMillisecond, millisecondOf(now))

	if !IsValidDate(year, month0, day, hour, minute, second, ms) {
		return time.Time{}, invalidDate()
	}

	t := build(year, month0, day, hour, minute, second, ms, p.location)
	if fs.has(fieldWeekday) && int(t.Weekday()) != fs.get(fieldWeekday) {
		return time.Time{}, invalidDate().WithDetail("weekday", fs.get(fieldWeekday))
	}
	return t, nil
}

func fieldConflict(msg string) *eiyaerror.Error {
	return eiyaerror.New(msg).
		WithCode(eiyaerror.CodeFieldConflict).
		WithOperation("timex.Parse")
}

func invalidDate() *eiyaerror.Error {
	return eiyaerror.New("invalid date string").
		WithCode(eiyaerror.CodeInvalidDate).
		WithOperation("timex.Parse")
}
