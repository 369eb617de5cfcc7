// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

// Package main is logprobe, a small service that bootstraps logging with
// svclog and shows the result.
//
// # Startup
//
//  1. Configuration: defaults, optional YAML file, environment (koanf v2)
//  2. Logging: logging.Init registers the process-wide logger
//  3. Supervisor tree: heartbeat probe and, with metrics enabled, the HTTP server
//
// A configuration error or a failed logging.Init is printed to stderr and the
// process exits with status 1.
//
// # Heartbeat
//
// Every HEARTBEAT_INTERVAL the probe emits one "heartbeat" event per level
// under thread name "heartbeat". With LOG_LEVEL=info only the info, warn and
// error events appear.
//
// # HTTP Endpoints
//
// With METRICS_ENABLED=true the server listens on METRICS_ADDR:
//   - GET /healthz: liveness
//   - GET /metrics: Prometheus metrics, including svclog_events_total
//   - GET /config: service, level, filter expression, format and toggles
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree; the HTTP server gets 10s to
// drain.
//
// # Example Usage
//
//	SERVICE_NAME=svc-a LOG_LEVEL=debug LOG_SHOW_FILE=false HEARTBEAT_INTERVAL=5s ./logprobe
//
//	METRICS_ENABLED=true METRICS_ADDR=127.0.0.1:9090 LOG_FORMAT=json ./logprobe
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

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/svclog/internal/config"
	"github.com/tomtom215/svclog/internal/logging"
	"github.com/tomtom215/svclog/internal/metrics"
	"github.com/tomtom215/svclog/internal/supervisor"
	"github.com/tomtom215/svclog/internal/supervisor/services"
)

const httpShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logprobe: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	opts := []logging.Option{
		logging.WithFormat(cfg.Output.LogFormat()),
		logging.WithNoColor(cfg.Output.NoColor),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, logging.WithMetrics(registry))
	}

	session, err := logging.Init(cfg.Service, cfg.Logging, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logprobe: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	logging.Info().
		Str("filter", session.FilterExpression()).
		Str("format", cfg.Output.Format).
		Bool("metrics", cfg.Metrics.Enabled).
		Dur("heartbeat", cfg.Heartbeat.Interval).
		Msg("Logging initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg, session, registry); err != nil {
		logging.Error().Err(err).Msg("logprobe stopped with error")
		cancel()
		os.Exit(1) //nolint:gocritic // cancel already called
	}

	logging.Info().Msg("logprobe stopped gracefully")
}

// run supervises the heartbeat and the HTTP server until ctx is canceled.
// Request metrics are registered on reg when metrics are enabled.
func run(ctx context.Context, cfg *config.Config, session *logging.Session, reg *prometheus.Registry) error {
	tree, err := supervisor.NewSupervisorTree(session.Slog(), supervisor.TreeConfig{
		Name:            cfg.Service,
		ShutdownTimeout: httpShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	if cfg.Heartbeat.Interval > 0 {
		tree.AddProbeService(services.NewHeartbeatService(session.Logger(), cfg.Heartbeat.Interval))
		logging.Debug().Dur("interval", cfg.Heartbeat.Interval).Msg("Heartbeat added to supervisor tree")
	}

	if cfg.Metrics.Enabled {
		server := &http.Server{
			Addr:              cfg.Metrics.ListenAddr,
			Handler:           newRouter(session, cfg.Output.LogFormat(), reg, metrics.NewHTTPMetrics(reg)),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		tree.AddAPIService(services.NewHTTPServerService(server, httpShutdownTimeout, session.For(cfg.Service+"/http")))
		logging.Debug().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")
	}

	errCh := tree.ServeBackground(ctx)

	// ServeBackground sends exactly one value and never closes the channel.
	// Ending because ctx was canceled or hit its deadline is a clean stop.
	var runErr error
	if err := <-errCh; err != nil && !stoppedByContext(ctx, err) {
		runErr = fmt.Errorf("supervisor tree error: %w", err)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	return runErr
}

func stoppedByContext(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, ctx.Err())
}
