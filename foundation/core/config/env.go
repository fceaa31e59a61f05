// File: env.go
// Title: Environment Overrides
// Description: Applies EIYA_* environment variables over file values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"strconv"
	"strings"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// EnvPrefix is prepended to every override variable
const EnvPrefix = "EIYA_"

type envBinding struct {
	name string
	set  func(c *Config, v string) error
}

func stringVar(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

func intVar(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func boolVar(dst func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*dst(c) = b
		return nil
	}
}

var envBindings = []envBinding{
	{"LOG_LEVEL", stringVar(func(c *Config) *string { return &c.General.LogLevel })},
	{"LOG_FORMAT", stringVar(func(c *Config) *string { return &c.General.LogFormat })},
	{"DEFAULT_PATTERN", stringVar(func(c *Config) *string { return &c.Format.DefaultPattern })},
	{"DEFAULT_LOCALE", stringVar(func(c *Config) *string { return &c.Format.DefaultLocale })},
	{"LOCALES_DIR", stringVar(func(c *Config) *string { return &c.Format.LocalesDir })},
	{"OVERSTEP", boolVar(func(c *Config) *bool { return &c.Arithmetic.Overstep })},
	{"END", func(c *Config, v string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		c.Arithmetic.End = &b
		return nil
	}},
	{"COMPARE_PRECISION", stringVar(func(c *Config) *string { return &c.Compare.Precision })},
	{"COMPARE_BOUNDARY", stringVar(func(c *Config) *string { return &c.Compare.Boundary })},
	{"SERVER_HOST", stringVar(func(c *Config) *string { return &c.Server.Host })},
	{"SERVER_PORT", intVar(func(c *Config) *int { return &c.Server.Port })},
	{"METRICS_PORT", intVar(func(c *Config) *int { return &c.Server.MetricsPort })},
	{"CACHE_MAX_ITEMS", intVar(func(c *Config) *int { return &c.Cache.MaxItems })},
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok || v == "" {
			continue
		}
		if err := b.set(c, v); err != nil {
			return eiyaerror.Wrap(err, "invalid environment override").
				WithCode(eiyaerror.CodeConfigError).
				WithOperation("config.applyEnv").
				WithDetail("variable", EnvPrefix+b.name)
		}
	}
	return nil
}
