// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"net"
	"strconv"
	"time"
)

// DefaultAdminPassword is the password used when neither ADMIN_PASSWORD nor
// ADMIN_PASSWORD_HASH is configured.
const DefaultAdminPassword = "password123"

// Config holds all application configuration.
// Values are layered: defaults, then the optional YAML file, then environment variables.
type Config struct {
	Mongo    MongoConfig    `koanf:"mongo"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Files    FilesConfig    `koanf:"files"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// MongoConfig configures the document store connection.
type MongoConfig struct {
	URI            string        `koanf:"uri" validate:"required,mongo_uri"`
	Database       string        `koanf:"database" validate:"required"`
	Collection     string        `koanf:"collection" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	QueryTimeout   time.Duration `koanf:"query_timeout" validate:"gte=0"` // 0 = bounded only by the request context
	SeedMockData   bool          `koanf:"seed_mock_data"`                 // Insert sample movies when the collection is empty
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port" validate:"min=1,max=65535"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	Environment string        `koanf:"environment" validate:"oneof=development production test"`
}

// SecurityConfig configures the admin credential, sessions and request throttling.
type SecurityConfig struct {
	AdminUsername     string `koanf:"admin_username" validate:"required,max=128"`
	AdminPassword     string `koanf:"admin_password"`
	AdminPasswordHash string `koanf:"admin_password_hash"` // bcrypt hash; takes precedence over AdminPassword

	SessionStore        string        `koanf:"session_store" validate:"oneof=memory badger"`
	SessionStorePath    string        `koanf:"session_store_path"`
	SessionTTL          time.Duration `koanf:"session_ttl" validate:"gt=0"`
	SessionCookieName   string        `koanf:"session_cookie_name" validate:"required"`
	SessionCookieSecure bool          `koanf:"session_cookie_secure"`

	LoginRateLimit  int           `koanf:"login_rate_limit" validate:"gte=0"` // 0 disables login throttling
	LoginRateWindow time.Duration `koanf:"login_rate_window" validate:"gt=0"`

	CORSOrigins []string `koanf:"cors_origins"`

	// TrustProxyHeaders takes the client IP from X-Forwarded-For, X-Real-IP
	// and True-Client-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `koanf:"trust_proxy_headers"`
}

// FilesConfig configures static assets, uploads and view templates.
type FilesConfig struct {
	StaticDir      string `koanf:"static_dir" validate:"required"`
	UploadDir      string `koanf:"upload_dir" validate:"required"`
	UploadMaxBytes int64  `koanf:"upload_max_bytes" validate:"gt=0"`
	TemplateDir    string `koanf:"template_dir"` // empty = embedded views
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port the HTTP server listens on.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// UsesDefaultAdminPassword reports whether the built-in admin password is in effect.
func (c *Config) UsesDefaultAdminPassword() bool {
	return c.Security.AdminPasswordHash == "" &&
		(c.Security.AdminPassword == "" || c.Security.AdminPassword == DefaultAdminPassword)
}

// EffectiveAdminPassword returns the plaintext admin password to hash at startup.
// It is only meaningful when AdminPasswordHash is empty.
func (c *Config) EffectiveAdminPassword() string {
	if c.Security.AdminPassword == "" {
		return DefaultAdminPassword
	}
	return c.Security.AdminPassword
}

// Load loads configuration from defaults, an optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
