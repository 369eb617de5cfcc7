// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package config

import (
	"time"

	"github.com/tomtom215/svclog/internal/logging"
)

// Config is the configuration of a process that bootstraps logging with svclog.
type Config struct {
	// Service identifies the process in the filter expression and as the
	// default log target. Default: executable name.
	Service string `koanf:"service" validate:"required"`

	// Logging is handed to logging.Init unchanged.
	Logging logging.LoggerConfig `koanf:"logging"`

	Output    OutputConfig    `koanf:"output"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Heartbeat HeartbeatConfig `koanf:"heartbeat"`
}

// OutputConfig controls how events are rendered.
type OutputConfig struct {
	// Format is console or json. Default: console
	Format string `koanf:"format" validate:"oneof=console json"`

	// NoColor disables ANSI colors in console output.
	NoColor bool `koanf:"no_color"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`

	// ListenAddr is the host:port the HTTP endpoint binds to.
	// Default: 127.0.0.1:9090
	ListenAddr string `koanf:"listen_addr" validate:"omitempty,hostname_port"`
}

// HeartbeatConfig controls the probe that emits one event per level.
type HeartbeatConfig struct {
	// Interval between heartbeats. Zero disables the probe.
	// Default: 30s
	Interval time.Duration `koanf:"interval" validate:"gte=0"`
}

// LogFormat returns the output format as a logging.Format.
func (o OutputConfig) LogFormat() logging.Format {
	return logging.Format(o.Format)
}
