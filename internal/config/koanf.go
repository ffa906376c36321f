// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "movielens",
			Collection:     "movies",
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   0,
			SeedMockData:   false,
		},
		Server: ServerConfig{
			Port:        4000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			AdminUsername:       "admin",
			AdminPassword:       "",
			AdminPasswordHash:   "",
			SessionStore:        "memory",
			SessionStorePath:    "/data/sessions",
			SessionTTL:          24 * time.Hour,
			SessionCookieName:   "marquee_session",
			SessionCookieSecure: false,
			LoginRateLimit:      10,
			LoginRateWindow:     time.Minute,
			CORSOrigins:         []string{},
			TrustProxyHeaders:   false,
		},
		Files: FilesConfig{
			StaticDir:      "public",
			UploadDir:      "public/images",
			UploadMaxBytes: 10 << 20, // 10 MiB
			TemplateDir:    "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings, YAML lists arrive already split.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Document store
	"mongo_uri":             "mongo.uri",
	"mongo_database":        "mongo.database",
	"mongo_collection":      "mongo.collection",
	"mongo_connect_timeout": "mongo.connect_timeout",
	"mongo_query_timeout":   "mongo.query_timeout",
	"seed_mock_data":        "mongo.seed_mock_data",

	// Server
	"port":         "server.port",
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Admin credential and sessions
	"admin_username":        "security.admin_username",
	"admin_password":        "security.admin_password",
	"admin_password_hash":   "security.admin_password_hash",
	"session_store":         "security.session_store",
	"session_store_path":    "security.session_store_path",
	"session_ttl":           "security.session_ttl",
	"session_cookie_name":   "security.session_cookie_name",
	"session_cookie_secure": "security.session_cookie_secure",
	"login_rate_limit":      "security.login_rate_limit",
	"login_rate_window":     "security.login_rate_window",
	"cors_origins":          "security.cors_origins",
	"trust_proxy_headers":   "security.trust_proxy_headers",

	// Files
	"static_dir":       "files.static_dir",
	"upload_dir":       "files.upload_dir",
	"upload_max_bytes": "files.upload_max_bytes",
	"template_dir":     "files.template_dir",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - MONGO_URI -> mongo.uri
//   - PORT -> server.port
//   - SESSION_STORE -> security.session_store
//
// Unmapped variables return "" and are skipped so unrelated environment
// variables never leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
