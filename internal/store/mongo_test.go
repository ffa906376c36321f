// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package store

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/config"
)

func TestConnect_FailsFast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
	}{
		{"malformed uri", "mongodb://%zz"},
		{"nothing listening", "mongodb://127.0.0.1:1/?directConnection=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.MongoConfig{
				URI:            tt.uri,
				Database:       "marquee_test",
				Collection:     "movies",
				ConnectTimeout: 300 * time.Millisecond,
			}

			start := time.Now()
			st, err := Connect(context.Background(), cfg)
			if err == nil {
				_ = st.Close(context.Background())
				t.Fatal("Connect() error = nil, want error")
			}
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("Connect() took %v, want it bounded by the connect timeout", elapsed)
			}
		})
	}
}
