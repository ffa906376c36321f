// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main is the entry point for the Marquee server.
//
// Marquee serves a server-rendered movie catalog backed by MongoDB: movies
// grouped by genre, a search across title, actors and genre, an admin login
// and image uploads to local disk.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Store: connect to MongoDB and ping; the process exits with status 1 on failure
//  3. Seeding: insert sample movies into an empty collection when enabled
//  4. Sessions: memory or BadgerDB store, cookie middleware, admin credential
//  5. Views and uploads: templates and the upload directory
//  6. Supervisor tree: HTTP server and session cleanup
//
// # Configuration
//
//	MONGO_URI=mongodb://localhost:27017
//	MONGO_DATABASE=marquee
//	ADMIN_USERNAME=admin
//	ADMIN_PASSWORD=change-me
//	SESSION_STORE=badger SESSION_STORE_PATH=/data/sessions
//	./marquee
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree. In-flight requests get the
// server timeout to finish, then the session store and MongoDB client are
// closed.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/store"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	"github.com/tomtom215/marquee/internal/uploads"
	"github.com/tomtom215/marquee/internal/views"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Marquee stopped with an error")
		os.Exit(1)
	}
}

//nolint:gocyclo // sequential startup steps
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("database", cfg.Mongo.Database).
		Str("collection", cfg.Mongo.Collection).
		Str("session_store", cfg.Security.SessionStore).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Marquee")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoStore, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoStore.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()

	catalog := store.NewBreakerStore(mongoStore, store.DefaultBreakerSettings())

	if cfg.Mongo.SeedMockData {
		inserted, err := store.SeedMockData(ctx, catalog)
		if err != nil {
			return fmt.Errorf("seed mock data: %w", err)
		}
		if inserted > 0 {
			logging.Info().Int("count", inserted).Msg("Inserted sample movies")
		}
	}

	factory, err := auth.NewSessionStoreFactory(auth.SessionStoreType(cfg.Security.SessionStore), cfg.Security.SessionStorePath)
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	defer func() {
		if err := factory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()
	sessionStore := factory.CreateStore()

	if cfg.Security.SessionStore == string(auth.SessionStoreMemory) && cfg.IsProduction() {
		logging.Warn().Msg("Session store is 'memory'; sessions are lost on restart. Set SESSION_STORE=badger to persist them")
	}

	sessionCfg := auth.DefaultSessionMiddlewareConfig()
	sessionCfg.CookieName = cfg.Security.SessionCookieName
	sessionCfg.SessionTTL = cfg.Security.SessionTTL
	sessionCfg.CookieSecure = cfg.Security.SessionCookieSecure
	sessions := auth.NewSessionMiddleware(sessionStore, sessionCfg)

	password := ""
	if cfg.Security.AdminPasswordHash == "" {
		password = cfg.EffectiveAdminPassword()
	}
	admin, err := auth.NewAdminAuthenticator(cfg.Security.AdminUsername, password, cfg.Security.AdminPasswordHash)
	if err != nil {
		return fmt.Errorf("configure admin credential: %w", err)
	}
	if cfg.UsesDefaultAdminPassword() {
		logging.Warn().
			Str("username", admin.Username()).
			Msg("Admin login uses the built-in default password; set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}

	renderer, err := views.New(cfg.Files.TemplateDir)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	storage, err := uploads.NewDiskStorage(cfg.Files.UploadDir, cfg.Files.UploadMaxBytes)
	if err != nil {
		return fmt.Errorf("prepare upload directory: %w", err)
	}
	logging.Info().Str("dir", storage.Dir()).Int64("max_bytes", cfg.Files.UploadMaxBytes).Msg("Uploads enabled")

	handler := api.NewHandler(catalog, sessions, admin, renderer, storage)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, api.NewRouterConfig(cfg)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   5 * time.Second,
		ShutdownTimeout:  cfg.Server.Timeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	tree.AddMaintenanceService(services.NewSessionCleanupService(sessionStore, services.DefaultSessionCleanupInterval))
	logging.Info().Str("addr", server.Addr).Msg("Listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Marquee stopped")
	return nil
}
