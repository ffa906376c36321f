// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// healthPingTimeout bounds the store ping so a hung database cannot hang probes.
const healthPingTimeout = 2 * time.Second

// Health reports liveness and store connectivity. It always answers 200;
// Status is "degraded" when the store ping fails.
//
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	connected := h.store != nil && h.store.Ping(ctx) == nil

	status := "ok"
	if !connected {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:         status,
		Version:        Version,
		StoreConnected: connected,
		Uptime:         time.Since(h.startTime).Seconds(),
	}
	if bs, ok := h.store.(breakerStater); ok {
		health.BreakerState = bs.State()
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &health)
}
