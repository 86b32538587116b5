// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the mRC structured logging system
//              including levels, entries, formatters, and the logger itself.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14

/*
Package log provides structured logging for mRC.

Log entries carry a level, a message, optional custom fields, and optional
error and caller information. Output format is pluggable: JSON for machine
consumption, text and logfmt for files, and a colored console format for
development.

Loggers are immutable: the With* methods return clones, so a derived logger
(for example one with a component field) never affects its parent.

	logger := log.GetDefault().WithName("catalog").WithField("component", "registry")
	logger.Info("catalog loaded", log.Fields{"entries": n})

LogError understands the mRC error type and picks a log level from the
error's severity, including the error code and details as fields.
*/
package log
