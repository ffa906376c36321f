// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/marquee/internal/validation"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateAdminCredential(); err != nil {
		return err
	}

	return c.validateSessionStore()
}

// validateAdminCredential checks the bcrypt hash format and rejects the
// built-in password in production.
func (c *Config) validateAdminCredential() error {
	if c.Security.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Security.AdminPasswordHash)); err != nil {
			return fmt.Errorf("ADMIN_PASSWORD_HASH is not a valid bcrypt hash: %w", err)
		}
		return nil
	}

	if c.IsProduction() && c.UsesDefaultAdminPassword() {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set when ENVIRONMENT=production")
	}
	return nil
}

// validateSessionStore validates the session persistence settings
func (c *Config) validateSessionStore() error {
	if c.Security.SessionStore == "badger" && c.Security.SessionStorePath == "" {
		return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE=badger")
	}
	return nil
}
