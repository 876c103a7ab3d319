// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

/*
Package supervisor runs the long-lived parts of kalainayam under a suture v4
supervisor tree.

The tree has two layers so a failing dataset reload never takes the API down:

	RootSupervisor ("kalainayam")
	├── DataSupervisor ("data-layer")
	│   ├── ReloadService      (periodic dataset reload, if configured)
	│   └── insights-cache     (expired entry cleanup)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events are logged through sutureslog, which is fed by the zerolog
slog adapter in the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewReloadService(registry, time.Hour, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logger))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
