// File: table.go
// Title: Locale Tables
// Description: A Table maps a directive key such as "MMM" or "EEEE" to the
//              ordered display names used when formatting and parsing that
//              directive. The built-in table is never handed out directly;
//              Default returns a fresh copy and Merge never mutates its inputs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package i18n

import (
	"sort"
	"strings"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// Table maps directive keys to display names: 12 entries for month keys,
// 7 for weekday keys and 2 (am, pm) for meridiem keys
type Table map[string][]string

// List sizes per token
const (
	MonthNames    = 12
	WeekdayNames  = 7
	MeridiemNames = 2
)

var builtin = Table{
	"MMM":   {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"MMMM":  {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"MMMMM": {"一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "十一", "十二"},
	"EEE":   {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"EEEE":  {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"EEEEE": {"日", "一", "二", "三", "四", "五", "六"},
	"a":     {"am", "pm"},
	"A":     {"AM", "PM"},
}

// Default returns a copy of the built-in table
func Default() Table {
	return builtin.Clone()
}

// Clone returns a deep copy of the table
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Merge returns base with every key of partial replacing the key of the same
// name. Neither argument is modified.
func Merge(base, partial Table) Table {
	out := base.Clone()
	if out == nil {
		out = make(Table, len(partial))
	}
	for k, v := range partial {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Lookup returns the names stored for key
func (t Table) Lookup(key string) ([]string, bool) {
	v, ok := t[key]
	return v, ok
}

// Keys returns the directive keys in sorted order
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fingerprint returns a string identifying the table content, usable as a
// cache key
func (t Table) Fingerprint() string {
	var b strings.Builder
	for _, k := range t.Keys() {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(t[k], "\x1f"))
		b.WriteByte('\x1e')
	}
	return b.String()
}

// KeySize returns the list length required for a directive key. Month and
// weekday keys may be a run of any length; meridiem keys are a single char.
func KeySize(key string) (int, bool) {
	if key == "" || strings.Count(key, key[:1]) != len(key) {
		return 0, false
	}
	switch key[0] {
	case 'M':
		return MonthNames, true
	case 'E':
		return WeekdayNames, true
	case 'a', 'A':
		if len(key) == 1 {
			return MeridiemNames, true
		}
	}
	return 0, false
}

// Validate checks every key and list length of t
func Validate(t Table) error {
	for _, key := range t.Keys() {
		want, ok := KeySize(key)
		if !ok {
			return eiyaerror.Newf("unsupported locale key %q", key).
				WithCode(eiyaerror.CodeInvalidLocale).
				WithOperation("i18n.Validate").
				WithDetail("key", key)
		}
		if got := len(t[key]); got != want {
			return eiyaerror.Newf("locale key %q needs %d names, got %d", key, want, got).
				WithCode(eiyaerror.CodeInvalidLocale).
				WithOperation("i18n.Validate").
				WithDetail("key", key)
		}
		for i, name := range t[key] {
			if name == "" {
				return eiyaerror.Newf("locale key %q has an empty name at %d", key, i).
					WithCode(eiyaerror.CodeInvalidLocale).
					WithOperation("i18n.Validate").
					WithDetail("key", key)
			}
		}
	}
	return nil
}
