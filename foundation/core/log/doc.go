// Package log provides structured logging for mDW Markup.
//
// Package: log
// Title: mDW Structured Logging
// Description: Structured logger with levels, contextual fields, JSON, text and
//              console output, correlation IDs and operation timers. Integrates
//              with the mDW error package so structured errors are logged with
//              their code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Removed async buffering and user context, stderr by default
//
// Usage:
//
//	import mdwlog "github.com/msto63/mdwmarkup/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//	}).WithField("component", "markup-parser")
//
//	logger.Debug("parsing started", mdwlog.Fields{"length": len(input)})
//
//	timer := logger.StartTimer("markup_check")
//	// ... parse and analyze
//	timer.Stop()
package log
