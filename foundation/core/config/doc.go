// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration files and
//              provides typed access with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Reduced to loading and typed access

/*
Package config provides configuration management for mDW applications.

Configuration files are TOML (default) or YAML, detected by file extension.
Values are addressed with dot notation, e.g. "parser.max_depth". When an
environment prefix is set, an environment variable PREFIX_PARSER_MAX_DEPTH
takes precedence over the file value. Defaults fill in keys the file does
not define, including keys inside nested tables.

Basic usage:

	cfg, err := config.LoadWithOptions("mdwmarkup.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "MDWMARKUP",
		Defaults: map[string]interface{}{
			"parser": map[string]interface{}{"max_depth": 256},
		},
	})
	if err != nil {
		return err
	}
	depth := cfg.GetInt("parser.max_depth")

Errors returned by the loaders are *mdwerror.Error values carrying
CodeNotFound, CodeConfigError or CodeInvalidConfig.
*/
package config
