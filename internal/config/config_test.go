// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "Port"},
		{"unknown session store", func(c *Config) { c.Security.SessionStore = "redis" }, "SessionStore"},
		{"badger without path", func(c *Config) {
			c.Security.SessionStore = "badger"
			c.Security.SessionStorePath = ""
		}, "SESSION_STORE_PATH"},
		{"bad hash", func(c *Config) { c.Security.AdminPasswordHash = "plaintext" }, "ADMIN_PASSWORD_HASH"},
		{"good hash", func(c *Config) { c.Security.AdminPasswordHash = string(hash) }, ""},
		{"production default password", func(c *Config) { c.Server.Environment = "production" }, "ADMIN_PASSWORD"},
		{"production custom password", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.AdminPassword = "correct horse"
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "Level"},
		{"empty database", func(c *Config) { c.Mongo.Database = "" }, "Database"},
		{"zero upload cap", func(c *Config) { c.Files.UploadMaxBytes = 0 }, "UploadMaxBytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 4000}
	if got := s.Addr(); got != "127.0.0.1:4000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:4000", got)
	}
}

func TestEffectiveAdminPassword(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Security.AdminPassword = "letmein"
	if got := cfg.EffectiveAdminPassword(); got != "letmein" {
		t.Errorf("EffectiveAdminPassword() = %q, want letmein", got)
	}
	cfg.Security.AdminPassword = DefaultAdminPassword
	if !cfg.UsesDefaultAdminPassword() {
		t.Error("explicitly configured default password should still count as default")
	}
}
