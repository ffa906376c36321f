// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSanitizeSessionID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"short", "abc", "***"},
		{"long", "abc123def456789", "abc1...6789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeSessionID(tt.in); got != tt.want {
				t.Errorf("SanitizeSessionID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"short", "ab", "***"},
		{"normal", "admin", "ad***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeUsername(tt.in); got != tt.want {
				t.Errorf("SanitizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSecurityLogger_Events(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sl := NewSecurityLoggerWithLogger(NewTestLogger(&buf))

	sl.LogLoginSuccess("admin", "0123456789abcdef0123", "10.0.0.1")
	sl.LogLoginFailure("mallory", "10.0.0.2", "invalid credentials")
	sl.LogLogout("0123456789abcdef0123", "10.0.0.1", errors.New("store closed"))

	out := buf.String()
	for _, want := range []string{
		`"event":"login_success"`,
		`"username":"ad***"`,
		`"session_id":"0123...0123"`,
		`"event":"login_failed"`,
		`"reason":"invalid credentials"`,
		`"event":"logout"`,
		`"success":false`,
		`"component":"auth"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "mallory") {
		t.Error("raw username leaked into log output")
	}
}
