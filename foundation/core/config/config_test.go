package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	want := &Config{
		General: GeneralConfig{Name: "eiya", LogLevel: "info", LogFormat: "text"},
		Format:  FormatConfig{DefaultPattern: "yyyy/MM/dd HH:mm:ss", DefaultLocale: "en"},
		Compare: CompareConfig{Precision: "millisecond", Boundary: "[]"},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            9170,
			MetricsPort:     9171,
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Cache: CacheConfig{MaxItems: 256, TTL: Duration{30 * time.Minute}},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Arithmetic.StickToMonthEnd() {
		t.Error("end-of-month policy should default to true")
	}
}

const tomlContent = `
[general]
log_level = "debug"

[format]
default_pattern = "yyyy-MM-dd"
default_locale = "zh"

[arithmetic]
overstep = true
end = false

[compare]
precision = "date"
boundary = "[)"

[server]
port = 9999
shutdown_timeout = "3s"

[cache]
max_items = 16
`

const yamlContent = `
general:
  log_level: debug
format:
  default_pattern: yyyy-MM-dd
  default_locale: zh
arithmetic:
  overstep: true
  end: false
compare:
  precision: date
  boundary: "[)"
server:
  port: 9999
  shutdown_timeout: 3s
cache:
  max_items: 16
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"toml", "eiya.toml", tomlContent},
		{"yaml", "eiya.yaml", yamlContent},
		{"yml", "eiya.yml", yamlContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %q, want %q", cfg.Path(), path)
			}
			if cfg.General.LogLevel != "debug" {
				t.Errorf("LogLevel = %q", cfg.General.LogLevel)
			}
			if cfg.Format.DefaultPattern != "yyyy-MM-dd" || cfg.Format.DefaultLocale != "zh" {
				t.Errorf("Format = %+v", cfg.Format)
			}
			if !cfg.Arithmetic.Overstep || cfg.Arithmetic.StickToMonthEnd() {
				t.Errorf("Arithmetic = %+v", cfg.Arithmetic)
			}
			if cfg.Compare.Boundary != "[)" || cfg.Compare.Precision != "date" {
				t.Errorf("Compare = %+v", cfg.Compare)
			}
			if cfg.Server.Port != 9999 || cfg.Server.ShutdownTimeout.Duration != 3*time.Second {
				t.Errorf("Server = %+v", cfg.Server)
			}
			// untouched values still get defaults
			if cfg.Server.MetricsPort != 9171 || cfg.Cache.MaxItems != 16 {
				t.Errorf("Server.MetricsPort = %d, Cache.MaxItems = %d", cfg.Server.MetricsPort, cfg.Cache.MaxItems)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !eiyaerror.HasCode(err, eiyaerror.CodeNotFound) {
		t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
	}

	_, err = LoadFromString("[server\nport = 1", FormatTOML)
	if !eiyaerror.HasCode(err, eiyaerror.CodeConfigError) {
		t.Errorf("LoadFromString(broken) error = %v, want CONFIG_ERROR", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad boundary", "[compare]\nboundary = \"<>\"", "compare.boundary"},
		{"short boundary", "[compare]\nboundary = \"[\"", "compare.boundary"},
		{"bad port", "[server]\nport = 70000", "server.port"},
		{"negative cache", "[cache]\nmax_items = -1", "cache.max_items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, FormatTOML)
			e, ok := err.(*eiyaerror.Error)
			if !ok {
				t.Fatalf("LoadFromString() error = %v, want *Error", err)
			}
			if got, _ := e.Detail("field"); got != tt.field {
				t.Errorf("field = %v, want %s", got, tt.field)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EIYA_LOG_LEVEL", "trace")
	t.Setenv("EIYA_SERVER_PORT", "9200")
	t.Setenv("EIYA_END", "false")
	t.Setenv("EIYA_DEFAULT_LOCALE", "de")

	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if cfg.General.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", cfg.General.LogLevel)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("Port = %d, want 9200", cfg.Server.Port)
	}
	if cfg.Format.DefaultLocale != "de" {
		t.Errorf("DefaultLocale = %q, want de", cfg.Format.DefaultLocale)
	}
	if cfg.Arithmetic.StickToMonthEnd() {
		t.Error("EIYA_END=false should disable end-of-month policy")
	}
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("EIYA_SERVER_PORT", "ninety")

	_, err := LoadFromString("", FormatTOML)
	if !eiyaerror.HasCode(err, eiyaerror.CodeConfigError) {
		t.Errorf("error = %v, want CONFIG_ERROR", err)
	}
}

func TestDiscoverFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EIYA_CONFIG", path)

	cfg, err := Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Server.Port)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
		"a":      FormatTOML,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}
