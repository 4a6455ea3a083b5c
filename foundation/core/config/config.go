// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading TOML and YAML files
//              and reading values by dot notation with environment variable
//              overrides and default values.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Dropped watching, discovery and validation rules;
//                      nested defaults are merged key by key
// - 2026-10-18 v0.2.1: Removed accessors the CLI does not read

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mdwmarkup/foundation/core/error"
	mdwstringx "github.com/msto63/mdwmarkup/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested maps allowed
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, fmt.Sprintf("failed to read config file: %s", filePath)).
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("failed to parse config file: %s", filePath)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// Empty returns a configuration without file content. Environment overrides
// and defaults still apply.
func Empty(options LoadOptions) *Config {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}
	return &Config{
		data:      mergeDefaults(make(map[string]interface{}), options.Defaults),
		format:    format,
		envPrefix: options.EnvPrefix,
	}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes raw content into a generic map
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults fills keys missing in data from defaults, descending into
// nested tables
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	for key, def := range defaults {
		existing, ok := data[key]
		if !ok {
			data[key] = def
			continue
		}
		existingMap, ok1 := existing.(map[string]interface{})
		defMap, ok2 := def.(map[string]interface{})
		if ok1 && ok2 {
			data[key] = mergeDefaults(existingMap, defMap)
		}
	}
	return data
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the loaded configuration
func (c *Config) Format() Format {
	return c.format
}

// GetString returns a string value or the empty string
func (c *Config) GetString(key string) string {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}
	value, ok := c.getValue(key)
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// GetInt returns an integer value or 0
func (c *Config) GetInt(key string) int {
	if env, ok := c.lookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(env)); err == nil {
			return n
		}
		return 0
	}
	value, ok := c.getValue(key)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	default:
		return 0
	}
}

// GetBool returns a boolean value or false
func (c *Config) GetBool(key string) bool {
	if env, ok := c.lookupEnv(key); ok {
		b, _ := strconv.ParseBool(strings.TrimSpace(env))
		return b
	}
	value, ok := c.getValue(key)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

// GetDuration returns a duration value. Strings are parsed with
// time.ParseDuration, plain numbers are taken as seconds.
func (c *Config) GetDuration(key string) time.Duration {
	if env, ok := c.lookupEnv(key); ok {
		d, _ := time.ParseDuration(strings.TrimSpace(env))
		return d
	}
	value, ok := c.getValue(key)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case string:
		d, _ := time.ParseDuration(strings.TrimSpace(v))
		return d
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	default:
		return 0
	}
}

// getValue walks the data map along a dot-notation key
func (c *Config) getValue(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var current interface{} = c.data
	for _, part := range strings.Split(key, ".") {
		table, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// lookupEnv checks for an environment override of key
func (c *Config) lookupEnv(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	return os.LookupEnv(c.formatEnvKey(key))
}

// formatEnvKey maps "parser.max_depth" with prefix "APP" to APP_PARSER_MAX_DEPTH
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}
