// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

/*
Package services provides suture.Service implementations run by the
supervisor tree.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server (or any HTTPServer) with graceful shutdown
  - http.ErrServerClosed is not reported as a failure
  - Logs listen and stop events

Heartbeat (HeartbeatService):
  - Emits one "heartbeat" event per level every interval
  - Events carry thread_name "heartbeat" and an increasing seq field
  - A zero interval returns suture.ErrDoNotRestart

# Usage

	tree.AddProbeService(services.NewHeartbeatService(session.For(cfg.Service), cfg.Heartbeat.Interval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, session.For("http")))
*/
package services
