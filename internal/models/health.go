// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// HealthStatus is the JSON body served by GET /healthz.
type HealthStatus struct {
	Status         string  `json:"status"` // "ok" or "degraded"
	Version        string  `json:"version"`
	StoreConnected bool    `json:"store_connected"`
	BreakerState   string  `json:"breaker_state,omitempty"`
	Uptime         float64 `json:"uptime_seconds"`
}
