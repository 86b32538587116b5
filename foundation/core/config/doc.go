// File: doc.go
// Title: Package Documentation for Configuration Management
// Description: Provides package-level documentation for the config package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial documentation

// Package config provides configuration management for mRC applications.
//
// Configuration files can be written in TOML (default) or YAML; the format
// is auto-detected from the file extension. Values are addressed with
// dotted keys and can be overridden through environment variables using
// the MRC_ prefix, e.g. MRC_LOG_LEVEL overrides "log.level".
//
// Basic usage:
//
//	cfg, err := config.Load("configs/config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	level := cfg.GetString("log.level", "info")
//	verbose := cfg.GetBool("output.verbose")
package config
