// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

/*
Package config loads the configuration of a process that bootstraps logging
with svclog.

Sources are layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else the first of DefaultConfigPaths
 3. Environment variables

The merged result is validated with go-playground/validator before it is
returned. Validation failures wrap ErrInvalidConfig; an unknown level name
wraps logging.ErrUnknownLevel.

# Config File

	service: my-service
	logging:
	  level: debug
	  show_thread_id: true
	  show_thread_name: true
	  show_file: false
	  show_line_number: true
	  show_target: true
	output:
	  format: console
	  no_color: false
	metrics:
	  enabled: true
	  listen_addr: 127.0.0.1:9090
	heartbeat:
	  interval: 30s

Keys left out of the file keep their defaults, so a file holding only
logging.show_file: false yields the default logging section with the file
name hidden.

# Environment Variables

  - SERVICE_NAME: service name (default: executable name)
  - LOG_LEVEL: error, warn, info, debug or trace (default: info)
  - LOG_SHOW_THREAD_ID, LOG_SHOW_THREAD_NAME, LOG_SHOW_FILE,
    LOG_SHOW_LINE_NUMBER, LOG_SHOW_TARGET: display toggles (default: true)
  - LOG_FORMAT: console or json (default: console)
  - LOG_NO_COLOR: disable ANSI colors (default: false)
  - METRICS_ENABLED: serve Prometheus metrics (default: false)
  - METRICS_ADDR: metrics listen address (default: 127.0.0.1:9090)
  - HEARTBEAT_INTERVAL: heartbeat period, 0 disables it (default: 30s)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    fmt.Fprintln(os.Stderr, err)
	    os.Exit(1)
	}
	session, err := logging.Init(cfg.Service, cfg.Logging,
	    logging.WithFormat(cfg.Output.LogFormat()))
*/
package config
