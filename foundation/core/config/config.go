// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOML
//              and YAML files with environment variable support.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mrcerror "github.com/msto63/mRC/foundation/core/error"
	mrcstringx "github.com/msto63/mRC/foundation/utils/stringx"
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

// LoadOptions configures how a configuration file is loaded
type LoadOptions struct {
	// Format forces a specific file format (default: auto-detect)
	Format Format

	// EnvPrefix is the prefix for environment variable overrides (default "MRC")
	EnvPrefix string

	// Defaults are merged in for keys absent from the file
	Defaults map[string]interface{}
}

// Load loads a configuration file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads a configuration file with the given options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mrcstringx.IsBlank(filePath) {
		return nil, mrcerror.New("configuration file path cannot be empty").
			WithCode(mrcerror.CodeMissingConfig).
			WithOperation("load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mrcerror.Wrap(err, "cannot read configuration file").
			WithCode(mrcerror.CodeConfigError).
			WithOperation("load").
			WithDetail("file_path", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, err
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: mrcstringx.DefaultIfBlank(options.EnvPrefix, "MRC"),
	}, nil
}

// LoadFromString parses configuration data from a string
func LoadFromString(content string, format Format) (*Config, error) {
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	return &Config{
		data:      data,
		format:    format,
		envPrefix: "MRC",
	}, nil
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

// parseContent parses raw bytes in the given format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mrcerror.Wrap(err, "cannot parse YAML configuration").
				WithCode(mrcerror.CodeInvalidConfig).
				WithOperation("parse")
		}
	default:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mrcerror.Wrap(err, "cannot parse TOML configuration").
				WithCode(mrcerror.CodeInvalidConfig).
				WithOperation("parse")
		}
	}

	return data, nil
}

// mergeDefaults fills in defaults for keys absent from data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if subData, ok := v.(map[string]interface{}); ok {
			if subDefaults, ok := result[k].(map[string]interface{}); ok {
				result[k] = mergeDefaults(subData, subDefaults)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// GetString returns a string value for the given dotted key
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env := c.getEnvValue(key); env != "" {
		return env
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer value for the given dotted key
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil {
			return parsed
		}
	}

	value := c.getValue(key)
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean value for the given dotted key
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.ParseBool(env); err == nil {
			return parsed
		}
	}

	value := c.getValue(key)
	if b, ok := value.(bool); ok {
		return b
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// getValue resolves a dotted key ("log.level") against the nested data map
func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	current := interface{}(c.data)

	for _, part := range parts {
		switch m := current.(type) {
		case map[string]interface{}:
			current = m[part]
		case map[interface{}]interface{}: // yaml.v3 may produce this for nested maps
			current = m[part]
		default:
			return nil
		}
	}

	return current
}

// getEnvValue returns the environment override for a key, if set
func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts "log.level" into "MRC_LOG_LEVEL"
func (c *Config) formatEnvKey(key string) string {
	converted := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return c.envPrefix + "_" + converted
}

// Has returns true if the key exists in the configuration or environment
func (c *Config) Has(key string) bool {
	if c.getEnvValue(key) != "" {
		return true
	}
	return c.getValue(key) != nil
}

// GetAll returns a deep copy of the full configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if subMap, ok := v.(map[string]interface{}); ok {
			dst[k] = deepCopyMap(subMap)
			continue
		}
		dst[k] = v
	}
	return dst
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected or forced configuration format
func (c *Config) Format() Format {
	return c.format
}
