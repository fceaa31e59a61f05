// Package i18n provides the locale tables used to format and parse month,
// weekday and meridiem names.
//
// Package: i18n
// Title: eiya Locale Tables
// Description: Built-in English table (with single-glyph Chinese month and
//              weekday names for the five-letter directives), deep-copy merge
//              of partial tables, validation, TOML/YAML file loading and a
//              registry that matches preferred languages to loaded tables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Directive tables replace message catalogs
//
// A locale file only lists the keys it overrides:
//
//	# locales/de.toml
//	MMM  = ["Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"]
//	EEE  = ["So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"]
//
// Usage:
//
//	reg, _ := i18n.NewRegistry("en", logger)
//	reg.LoadDir("./locales")
//	table, locale := reg.Match("de-AT,de;q=0.9,en;q=0.5")
package i18n
