// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Document Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_store_query_duration_seconds",
			Help:    "Duration of document store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_store_query_errors_total",
			Help: "Total number of document store operation errors",
		},
		[]string{"operation", "collection", "error_type"}, // error_type: "timeout", "canceled", "unavailable", "other"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Auth Metrics
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"result"}, // "success", "failure", "rate_limited"
	)

	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_session_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"}, // operation: "create", "get", "update", "delete", "cleanup"
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_active_sessions",
			Help: "Number of sessions held by the session store after the last cleanup",
		},
	)

	// Upload Metrics
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_uploads_total",
			Help: "Total number of image uploads",
		},
		[]string{"result"}, // "success", "no_file", "too_large", "throttled", "write_error"
	)

	UploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marquee_upload_bytes_total",
			Help: "Total bytes written by image uploads",
		},
	)
)

// RecordHTTPRequest records a completed HTTP request
func RecordHTTPRequest(method, route, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight HTTP requests
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordStoreQuery records a document store operation
func RecordStoreQuery(operation, collection string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(operation, collection, classifyError(err)).Inc()
	}
}

// classifyError maps an error to a bounded label value.
func classifyError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case strings.Contains(strings.ToLower(err.Error()), "unavailable"),
		strings.Contains(strings.ToLower(err.Error()), "server selection"):
		return "unavailable"
	default:
		return "other"
	}
}

// RecordLoginAttempt records an admin login attempt
func RecordLoginAttempt(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}

// RecordSessionOperation records a session store operation
func RecordSessionOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SessionOperations.WithLabelValues(operation, result).Inc()
}

// RecordUpload records an upload outcome. bytes is ignored unless result is "success".
func RecordUpload(result string, bytes int64) {
	UploadsTotal.WithLabelValues(result).Inc()
	if result == "success" && bytes > 0 {
		UploadBytes.Add(float64(bytes))
	}
}
