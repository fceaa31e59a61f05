// Package config loads the eiya configuration.
//
// Package: config
// Title: eiya Configuration
// Description: Typed configuration for logging, format defaults, the
//              arithmetic rollover policy, comparison defaults, the gRPC
//              server and the compiled-pattern cache.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Typed eiya sections
//
// Example file (configs/eiya.toml):
//
//	[general]
//	log_level = "debug"
//
//	[format]
//	default_pattern = "yyyy/MM/dd HH:mm:ss"
//	default_locale  = "en"
//	locales_dir     = "./locales"
//
//	[arithmetic]
//	overstep = false
//	end      = true
//
//	[server]
//	port = 9170
//
// Every value may be overridden with an EIYA_ variable, for example
// EIYA_LOG_LEVEL=debug or EIYA_SERVER_PORT=9999.
package config
