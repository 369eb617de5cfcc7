// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

/*
Package supervisor runs the long-lived services of a process under suture v4.

# Overview

	RootSupervisor (service name)
	├── ProbeSupervisor ("probe-layer")
	│   └── HeartbeatService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing heartbeat is restarted and backed off without affecting the HTTP
endpoints.

# Logging

Supervisor events go through sutureslog to the *slog.Logger given to
NewSupervisorTree. Pass session.Slog() so restarts and backoff show up in
the same stream, under the same filter, as the rest of the process:

	tree, err := supervisor.NewSupervisorTree(session.Slog(), supervisor.TreeConfig{
	    Name: cfg.Service,
	})
	if err != nil {
	    return err
	}
	tree.AddProbeService(heartbeat)
	tree.AddAPIService(httpService)
	return tree.Serve(ctx)

# Configuration

Zero values in TreeConfig are replaced by DefaultTreeConfig, which matches
suture's own defaults.
*/
package supervisor
