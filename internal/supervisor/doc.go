// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs Marquee's long-lived services under suture v4.

# Overview

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── SessionCleanupService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddMaintenanceService(services.NewSessionCleanupService(sessionStore, 10*time.Minute))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
