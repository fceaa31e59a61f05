// File: config.go
// Title: Configuration Loading
// Description: Typed eiya configuration loaded from TOML or YAML files. The
//              format is detected from the file extension; missing values are
//              filled by applyDefaults and EIYA_* environment variables
//              override file values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Typed sections for the date engine and service

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
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

// DetectFormat derives the file format from the path extension. Anything
// other than .yaml/.yml is treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config holds the complete eiya configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Format     FormatConfig     `toml:"format" yaml:"format"`
	Arithmetic ArithmeticConfig `toml:"arithmetic" yaml:"arithmetic"`
	Compare    CompareConfig    `toml:"compare" yaml:"compare"`
	Server     ServerConfig     `toml:"server" yaml:"server"`
	Cache      CacheConfig      `toml:"cache" yaml:"cache"`

	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// FormatConfig holds defaults for formatting and parsing
type FormatConfig struct {
	DefaultPattern string `toml:"default_pattern" yaml:"default_pattern"`
	DefaultLocale  string `toml:"default_locale" yaml:"default_locale"`
	LocalesDir     string `toml:"locales_dir" yaml:"locales_dir"`
}

// ArithmeticConfig holds the month/year rollover policy used by Add and
// Subtract when a request does not set one
type ArithmeticConfig struct {
	Overstep bool `toml:"overstep" yaml:"overstep"`
	// End is a pointer so that an explicit false survives applyDefaults
	End *bool `toml:"end" yaml:"end"`
}

// StickToMonthEnd reports the effective end-of-month policy
func (a ArithmeticConfig) StickToMonthEnd() bool {
	return a.End == nil || *a.End
}

// CompareConfig holds comparison defaults
type CompareConfig struct {
	Precision string `toml:"precision" yaml:"precision"`
	Easy      bool   `toml:"easy" yaml:"easy"`
	Boundary  string `toml:"boundary" yaml:"boundary"`
}

// ServerConfig holds gRPC and metrics listener settings
type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	MetricsPort     int      `toml:"metrics_port" yaml:"metrics_port"`
	Reflection      bool     `toml:"reflection" yaml:"reflection"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Address returns host:port of the gRPC listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MetricsAddress returns host:port of the metrics listener
func (s ServerConfig) MetricsAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.MetricsPort)
}

// CacheConfig bounds the compiled-pattern cache
type CacheConfig struct {
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, applies defaults and
// environment overrides and validates the result
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		code := eiyaerror.CodeConfigError
		if os.IsNotExist(err) {
			code = eiyaerror.CodeNotFound
		}
		return nil, eiyaerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := decode(content, DetectFormat(path))
	if err != nil {
		return nil, eiyaerror.Wrap(err, "failed to parse config file").
			WithCode(eiyaerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.path = path

	return cfg.finish(os.LookupEnv)
}

// LoadFromString parses configuration content of the given format
func LoadFromString(content string, format Format) (*Config, error) {
	cfg, err := decode([]byte(content), format)
	if err != nil {
		return nil, eiyaerror.Wrap(err, "failed to parse config content").
			WithCode(eiyaerror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return cfg.finish(os.LookupEnv)
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

func decode(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, err
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (c *Config) finish(lookup func(string) (string, bool)) (*Config, error) {
	if err := c.applyEnv(lookup); err != nil {
		return nil, err
	}
	c.applyDefaults()
	c.Format.LocalesDir = os.ExpandEnv(c.Format.LocalesDir)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "eiya"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Format.DefaultPattern == "" {
		c.Format.DefaultPattern = "yyyy/MM/dd HH:mm:ss"
	}
	if c.Format.DefaultLocale == "" {
		c.Format.DefaultLocale = "en"
	}

	if c.Compare.Precision == "" {
		c.Compare.Precision = "millisecond"
	}
	if c.Compare.Boundary == "" {
		c.Compare.Boundary = "[]"
	}

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9170
	}
	if c.Server.MetricsPort == 0 {
		c.Server.MetricsPort = 9171
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 10 * time.Second
	}

	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 256
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 30 * time.Minute
	}
}

// Validate checks value ranges that decoding cannot enforce
func (c *Config) Validate() error {
	fail := func(field string, value interface{}, msg string) error {
		return eiyaerror.New(msg).
			WithCode(eiyaerror.CodeConfigError).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if b := c.Compare.Boundary; len(b) != 2 || (b[0] != '[' && b[0] != '(') || (b[1] != ']' && b[1] != ')') {
		return fail("compare.boundary", b, "boundary must be one of [], [), (], ()")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fail("server.port", c.Server.Port, "port out of range")
	}
	if c.Server.MetricsPort < 0 || c.Server.MetricsPort > 65535 {
		return fail("server.metrics_port", c.Server.MetricsPort, "port out of range")
	}
	if c.Cache.MaxItems < 0 {
		return fail("cache.max_items", c.Cache.MaxItems, "max_items must not be negative")
	}
	return nil
}
