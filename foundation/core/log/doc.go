// Package log provides structured, leveled logging for eiya.
//
// Package: log
// Title: eiya Structured Logging
// Description: Immutable loggers with persistent context fields, request ids,
//              operation tags and JSON, text, console or logfmt output.
//              Errors of type *eiyaerror.Error are logged with their code,
//              severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Operation tags and timer for engine calls
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "gregor",
//	})
//	reqLog := logger.WithRequestID(id).WithOperation("Parse")
//	timer := reqLog.StartTimer("Parse")
//	defer timer.Stop(log.Field("pattern", pattern))
package log
