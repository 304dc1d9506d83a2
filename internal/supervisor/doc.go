// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package supervisor runs the long-lived Playstats services under a suture v4
supervisor tree.

Startup work (snapshot ingestion and index construction) completes before the
tree is built. A failure there aborts the process, so the tree only ever
supervises services that operate on a fully loaded dataset.

# Tree Layout

	playstats (root)
	├── maintenance-layer
	│   └── cache-monitor
	└── api-layer
	    └── http-server

Each layer is its own supervisor, so repeated failures in maintenance
services trigger backoff in that layer only and the API keeps serving.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	if resultCache != nil {
	    tree.AddMaintenanceService(services.NewCacheMonitorService(resultCache, 0, logger))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Logging

Supervisor events (service panics, restarts, backoff) are emitted through
sutureslog to a *slog.Logger, normally logging.NewSlogLogger so they share
the zerolog output of the rest of the process.

# See Also

  - internal/supervisor/services: suture.Service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
