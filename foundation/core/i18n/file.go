// File: file.go
// Title: Locale File Loading
// Description: Reads partial locale tables from TOML or YAML files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Files hold directive name lists instead of messages

package i18n

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// Format represents the locale file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf returns the file format for path and whether the extension is a
// supported one
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return FormatTOML, false
	}
}

// Decode parses a partial table and validates it
func Decode(content []byte, format Format) (Table, error) {
	var t Table
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &t)
	default:
		err = toml.Unmarshal(content, &t)
	}
	if err != nil {
		return nil, eiyaerror.Wrap(err, "failed to decode locale table").
			WithCode(eiyaerror.CodeInvalidLocale).
			WithOperation("i18n.Decode").
			WithDetail("format", format.String())
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads a partial table from a .toml, .yaml or .yml file
func LoadFile(path string) (Table, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, eiyaerror.New("unsupported locale file extension").
			WithCode(eiyaerror.CodeInvalidLocale).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		code := eiyaerror.CodeInvalidLocale
		if os.IsNotExist(err) {
			code = eiyaerror.CodeNotFound
		}
		return nil, eiyaerror.Wrap(err, "failed to read locale file").
			WithCode(code).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}

	t, err := Decode(content, format)
	if err != nil {
		return nil, eiyaerror.Wrap(err, "invalid locale file").WithDetail("path", path)
	}
	return t, nil
}
