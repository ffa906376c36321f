// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordStoreQuery(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType string
	}{
		{"success", nil, ""},
		{"timeout", fmt.Errorf("find: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"server selection", errors.New("server selection error: context deadline"), "unavailable"},
		{"other", errors.New("cursor decode failed"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := "find_" + tt.name
			RecordStoreQuery(op, "movies", 3*time.Millisecond, tt.err)

			if tt.err == nil {
				if n := testutil.CollectAndCount(StoreQueryDuration); n == 0 {
					t.Error("expected a duration series after a successful query")
				}
				return
			}
			got := testutil.ToFloat64(StoreQueryErrors.WithLabelValues(op, "movies", tt.errorType))
			if got != 1 {
				t.Errorf("errors{%s,%s} = %v, want 1", op, tt.errorType, got)
			}
		})
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/search", "200"))
	RecordHTTPRequest("GET", "/search", "200", 12*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/search", "200"))
	if after-before != 1 {
		t.Errorf("request counter delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func TestRecordSessionOperation(t *testing.T) {
	before := testutil.ToFloat64(SessionOperations.WithLabelValues("delete", "error"))
	RecordSessionOperation("delete", errors.New("boom"))
	if got := testutil.ToFloat64(SessionOperations.WithLabelValues("delete", "error")); got != before+1 {
		t.Errorf("delete/error = %v, want %v", got, before+1)
	}
}

func TestRecordUpload(t *testing.T) {
	beforeBytes := testutil.ToFloat64(UploadBytes)
	RecordUpload("success", 2048)
	RecordUpload("too_large", 9999)

	if got := testutil.ToFloat64(UploadBytes); got != beforeBytes+2048 {
		t.Errorf("upload bytes = %v, want %v", got, beforeBytes+2048)
	}
	if got := testutil.ToFloat64(UploadsTotal.WithLabelValues("too_large")); got < 1 {
		t.Errorf("too_large count = %v, want >= 1", got)
	}
}

func TestRecordLoginAttempt(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues("failure"))
	RecordLoginAttempt("failure")
	if got := testutil.ToFloat64(LoginAttempts.WithLabelValues("failure")); got != before+1 {
		t.Errorf("failure count = %v, want %v", got, before+1)
	}
}
