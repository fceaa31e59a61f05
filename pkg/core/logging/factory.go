// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/eiya/foundation/core/config"
	eiyalog "github.com/msto63/eiya/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Output defaults to stderr so command output on stdout stays clean
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// FromConfig derives the logger configuration from the general section of
// an eiya configuration
func FromConfig(serviceName string, general config.GeneralConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(serviceName)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	return cfg
}

// NewLogger creates a foundation logger. Unknown levels fall back to info
// and unknown formats to JSON.
func NewLogger(cfg LoggerConfig) *eiyalog.Logger {
	level, err := eiyalog.ParseLevel(cfg.Level)
	if err != nil {
		level = eiyalog.LevelInfo
	}
	format, err := eiyalog.ParseFormat(cfg.Format)
	if err != nil {
		format = eiyalog.FormatJSON
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return eiyalog.NewWithConfig(eiyalog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewServiceLogger creates the key/value logger of a service and installs
// its foundation logger as the process default
func NewServiceLogger(cfg LoggerConfig) *Logger {
	base := NewLogger(cfg)
	eiyalog.SetDefault(base)
	return &Logger{Logger: base, name: cfg.ServiceName}
}
