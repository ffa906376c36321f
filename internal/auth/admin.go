// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthenticator checks login attempts against the single admin credential.
type AdminAuthenticator struct {
	username     string
	passwordHash []byte // bcrypt hash of password
}

// NewAdminAuthenticator creates an authenticator for username. When
// passwordHash is non-empty it is used as-is; otherwise password is hashed
// once here so requests never pay for GenerateFromPassword.
func NewAdminAuthenticator(username, password, passwordHash string) (*AdminAuthenticator, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid password hash: %w", err)
		}
		return &AdminAuthenticator{username: username, passwordHash: []byte(passwordHash)}, nil
	}

	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &AdminAuthenticator{username: username, passwordHash: hash}, nil
}

// Verify returns nil when both username and password match, and
// ErrInvalidCredentials otherwise.
func (a *AdminAuthenticator) Verify(username, password string) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1

	// Always run bcrypt so a wrong username costs as much as a wrong password.
	passwordMatch := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil

	if !usernameMatch || !passwordMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// Username returns the configured admin username.
func (a *AdminAuthenticator) Username() string {
	return a.username
}
