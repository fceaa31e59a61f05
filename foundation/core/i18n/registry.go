// File: registry.go
// Title: Locale Registry
// Description: Holds the locale tables known to a process, each merged over
//              the built-in default, and picks the best table for a list of
//              preferred languages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation as translation manager
// - 2026-10-15 v0.2.0: Registry of directive tables with language matching

package i18n

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/text/language"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/foundation/core/log"
)

// Registry maps normalized locale tags to complete tables
type Registry struct {
	mu         sync.RWMutex
	defaultTag language.Tag
	tags       []language.Tag
	tables     map[string]Table
	matcher    language.Matcher
	logger     *log.Logger
}

// NewRegistry creates a registry whose fallback locale is defaultLocale,
// served by the built-in table until a file overrides it
func NewRegistry(defaultLocale string, logger *log.Logger) (*Registry, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, eiyaerror.Wrap(err, "invalid default locale").
			WithCode(eiyaerror.CodeInvalidLocale).
			WithOperation("i18n.NewRegistry").
			WithDetail("locale", defaultLocale)
	}
	if logger == nil {
		logger = log.Discard()
	}

	r := &Registry{
		defaultTag: tag,
		tables:     make(map[string]Table),
		logger:     logger.WithName("i18n"),
	}
	r.tables[tag.String()] = Default()
	r.rebuild()
	return r, nil
}

// Register validates partial, merges it over the built-in table and stores it
// under locale, replacing any previous table
func (r *Registry) Register(locale string, partial Table) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return eiyaerror.Wrap(err, "invalid locale identifier").
			WithCode(eiyaerror.CodeInvalidLocale).
			WithOperation("i18n.Register").
			WithDetail("locale", locale)
	}
	if err := Validate(partial); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[tag.String()] = Merge(Default(), partial)
	r.rebuild()
	return nil
}

// LoadDir registers every locale file in dir, named after its locale
// ("de.toml", "zh-CN.yaml"). Files that fail to load are logged and
// skipped. It returns the number of registered files.
func (r *Registry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, eiyaerror.Wrap(err, "failed to read locales directory").
			WithCode(eiyaerror.CodeNotFound).
			WithOperation("i18n.LoadDir").
			WithDetail("directory", dir)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatOf(entry.Name()); !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		locale := ParseLocaleFromFilename(entry.Name())
		if locale == "" {
			r.logger.Warn("skipping locale file with invalid name", log.Field("path", path))
			continue
		}

		table, err := LoadFile(path)
		if err != nil {
			r.logger.LogError(err)
			continue
		}
		if err := r.Register(locale, table); err != nil {
			r.logger.LogError(err)
			continue
		}
		r.logger.Debug("locale registered", log.Fields{"locale": locale, "keys": len(table)})
		loaded++
	}
	return loaded, nil
}

// Lookup returns a copy of the table registered under exactly locale
func (r *Registry) Lookup(locale string) (Table, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[tag.String()]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Match returns a copy of the best table for the preference list and the
// locale it was registered under. Entries may be plain tags or
// Accept-Language values. Without a confident match the default locale is
// returned.
func (r *Registry) Match(prefs ...string) (Table, string) {
	tags := ParsePreferences(prefs...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	chosen := r.defaultTag
	if len(tags) > 0 {
		_, idx, conf := r.matcher.Match(tags...)
		if conf != language.No {
			chosen = r.tags[idx]
		}
	}
	return r.tables[chosen.String()].Clone(), chosen.String()
}

// Locales returns the registered locales in sorted order
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tags))
	for _, t := range r.tags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

// DefaultLocale returns the fallback locale
func (r *Registry) DefaultLocale() string {
	return r.defaultTag.String()
}

// rebuild recreates the matcher; the default tag always comes first so the
// matcher falls back to it. Callers hold the write lock.
func (r *Registry) rebuild() {
	tags := []language.Tag{r.defaultTag}
	others := make([]language.Tag, 0, len(r.tables))
	for key := range r.tables {
		if key != r.defaultTag.String() {
			others = append(others, language.Make(key))
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	r.tags = append(tags, others...)
	r.matcher = language.NewMatcher(r.tags)
}
