// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

// LoggerConfig holds the minimum level and the display toggles applied by Init.
// Any combination of values is legal.
type LoggerConfig struct {
	// Level is the minimum severity, applied globally and to the service target.
	// Default: info
	Level Level `koanf:"level"`

	// ShowThreadID includes the thread id of the emitting thread.
	// Default: true
	ShowThreadID bool `koanf:"show_thread_id"`

	// ShowThreadName includes the thread name bound to the event context.
	// Default: true
	ShowThreadName bool `koanf:"show_thread_name"`

	// ShowFile includes the source file of the call site.
	// Default: true
	ShowFile bool `koanf:"show_file"`

	// ShowLineNumber includes the line number of the call site.
	// Default: true
	ShowLineNumber bool `koanf:"show_line_number"`

	// ShowTarget includes the logger target (service or component name).
	// Default: true
	ShowTarget bool `koanf:"show_target"`
}

// DefaultLoggerConfig returns the default logging configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:          DefaultLevel,
		ShowThreadID:   true,
		ShowThreadName: true,
		ShowFile:       true,
		ShowLineNumber: true,
		ShowTarget:     true,
	}
}
