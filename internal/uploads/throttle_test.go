// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package uploads

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
)

func TestThrottle_Middleware(t *testing.T) {
	// Not parallel: reads a global counter.
	th := NewThrottle(0, 2)
	handler := th.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))

	before := testutil.ToFloat64(metrics.UploadsTotal.WithLabelValues("throttled"))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusSeeOther, http.StatusSeeOther, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d status = %d, want %d", i, codes[i], want[i])
		}
	}

	after := testutil.ToFloat64(metrics.UploadsTotal.WithLabelValues("throttled"))
	if after-before != 1 {
		t.Errorf("throttled counter delta = %v, want 1", after-before)
	}
}

func TestThrottle_Allow(t *testing.T) {
	t.Parallel()
	th := NewThrottle(DefaultUploadRate, DefaultUploadBurst)
	for i := 0; i < DefaultUploadBurst; i++ {
		if !th.Allow() {
			t.Fatalf("Allow() = false within burst at %d", i)
		}
	}
	if th.Allow() {
		t.Error("Allow() = true after burst exhausted")
	}
}
