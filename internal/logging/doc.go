// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

// Package logging turns a LoggerConfig into the process-wide zerolog logger.
//
// A LoggerConfig carries a minimum Level and five display toggles. Init
// derives a filter expression from the level and the service name, builds a
// Formatter from the toggles, and registers the result exactly once per
// process:
//
//	cfg := logging.DefaultLoggerConfig()
//	cfg.Level = logging.LevelDebug
//	cfg.ShowFile = false
//
//	session, err := logging.Init("my-service", cfg)
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//	session.FilterExpression() // "debug,my-service=debug"
//
// A second Init or InitDefault in the same process returns
// ErrAlreadyInitialized and changes nothing.
//
// # Filter Expressions
//
// The expression has the form "<level>,<service>=<level>": a global directive
// and a directive for the service. Both carry the configured level today.
// Loggers for other targets are obtained with Session.For and are filtered at
// the level of the longest matching directive.
//
// # Display Toggles
//
//	show_thread_id    thread_id   OS thread id (goroutine id off Linux)
//	show_thread_name  thread_name name bound with ContextWithThreadName
//	show_file         file        call site file
//	show_line_number  line        call site line
//	show_target       target      logger target
//
// Console output renders them ahead of the message:
//
//	2026-01-03T10:30:00Z INF heartbeat ThreadId(12) my-service: probe/heartbeat.go:41: tick
//
// # Where Events Go
//
// After Init the package-level functions (Info, Error, ...), the zerolog/log
// global logger and slog.Default all write through the registered session.
// New builds a session without registering it, which is what tests use.
//
// # Thread Safety
//
// Init is safe to call concurrently; exactly one caller wins. Callers must
// still finish Init before other goroutines start logging.
package logging
