// File: locale.go
// Title: Locale Tag Helpers
// Description: Normalization of locale identifiers taken from file names,
//              flags and Accept-Language style preference lists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-15 v0.2.0: Parsing delegated to golang.org/x/text/language

package i18n

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// NormalizeLocale returns the canonical BCP 47 form of locale ("en_us" ->
// "en-US"), or "" if it is not a well-formed tag
func NormalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return tag.String()
}

// ParseLocaleFromFilename extracts the locale of a file such as "zh_CN.yaml"
func ParseLocaleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return NormalizeLocale(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ParsePreferences turns a list of locale identifiers or Accept-Language
// header values into language tags ordered by preference. Malformed entries
// are skipped.
func ParsePreferences(prefs ...string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.ContainsAny(p, ",;") {
			parsed, _, err := language.ParseAcceptLanguage(p)
			if err == nil {
				tags = append(tags, parsed...)
			}
			continue
		}
		if tag, err := language.Parse(strings.ReplaceAll(p, "_", "-")); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ValidateLocale validates that locale is a well-formed tag
func ValidateLocale(locale string) error {
	if NormalizeLocale(locale) == "" {
		return eiyaerror.New("invalid locale identifier").
			WithCode(eiyaerror.CodeInvalidLocale).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'zh-CN'")
	}
	return nil
}
