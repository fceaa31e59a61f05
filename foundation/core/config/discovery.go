// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the configuration file from EIYA_CONFIG or a fixed list
//              of well-known paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-15 v0.2.0: Fixed search list, defaults when nothing is found

package config

import (
	"os"
	"path/filepath"
)

// SearchPaths returns the candidate configuration files in lookup order
func SearchPaths() []string {
	paths := []string{
		"./configs/eiya.toml",
		"./configs/eiya.yaml",
		"./eiya.toml",
		"./eiya.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "eiya", "config.toml"))
	}
	return paths
}

// Discover loads the configuration named by EIYA_CONFIG, or the first
// existing file of SearchPaths. When no file exists the defaults (plus
// environment overrides) are returned.
func Discover() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		return Load(path)
	}
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return Load(p)
		}
	}
	return (&Config{}).finish(os.LookupEnv)
}
