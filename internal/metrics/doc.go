// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics for Marquee.

Collectors are registered with the default registry through promauto and are
exposed at GET /metrics:

	curl http://localhost:4000/metrics

# Available Metrics

HTTP:
  - marquee_http_requests_total{method, route, status_code}
  - marquee_http_request_duration_seconds{method, route}
  - marquee_http_active_requests

Document store:
  - marquee_store_query_duration_seconds{operation, collection}
  - marquee_store_query_errors_total{operation, collection, error_type}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Auth and uploads:
  - marquee_login_attempts_total{result}
  - marquee_session_operations_total{operation, result}
  - marquee_active_sessions
  - marquee_uploads_total{result}, marquee_upload_bytes_total

Route labels use chi route patterns, never raw paths, to keep cardinality bounded.
*/
package metrics
