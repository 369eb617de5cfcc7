// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

/*
Package metrics provides Prometheus instrumentation for the probe HTTP server.

Metrics are registered on an explicit registry rather than the global one, so
tests and multiple servers in one process do not collide.

# HTTP Metrics

  - http_requests_total{method, endpoint, status_code}: request count
  - http_request_duration_seconds{method, endpoint}: latency histogram
  - http_active_requests: in-flight requests

The endpoint label is the chi route pattern ("/config", "/items/{id}").

# Usage

	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(httpMetrics.Middleware)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

Log event counts (svclog_events_total) are registered by the logging package
through logging.WithMetrics on the same registry.
*/
package metrics
