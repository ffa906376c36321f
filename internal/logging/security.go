// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"github.com/rs/zerolog"
)

// SecurityLogger records admin login and session events.
// Usernames and session IDs are masked before they reach the log.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger on top of the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "auth").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// LogLoginSuccess logs a successful admin login.
func (l *SecurityLogger) LogLoginSuccess(username, sessionID, ip string) {
	l.logger.Info().
		Str("event", "login_success").
		Str("username", SanitizeUsername(username)).
		Str("session_id", SanitizeSessionID(sessionID)).
		Str("ip", ip).
		Bool("success", true).
		Msg("Security event")
}

// LogLoginFailure logs a rejected login attempt.
func (l *SecurityLogger) LogLoginFailure(username, ip, reason string) {
	l.logger.Warn().
		Str("event", "login_failed").
		Str("username", SanitizeUsername(username)).
		Str("ip", ip).
		Str("reason", reason).
		Bool("success", false).
		Msg("Security event")
}

// LogLogout logs a logout. err is the session destruction error, if any.
func (l *SecurityLogger) LogLogout(sessionID, ip string, err error) {
	event := l.logger.Info()
	if err != nil {
		event = l.logger.Warn().Err(err)
	}
	event.
		Str("event", "logout").
		Str("session_id", SanitizeSessionID(sessionID)).
		Str("ip", ip).
		Bool("success", err == nil).
		Msg("Security event")
}

// SanitizeSessionID masks a session ID.
// Example: "abc123def456789" -> "abc1...6789"
func SanitizeSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= 12 {
		return "***"
	}
	return sessionID[:4] + "..." + sessionID[len(sessionID)-4:]
}

// SanitizeUsername masks a username, keeping the first 2 characters.
// Example: "johndoe" -> "jo***"
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}
