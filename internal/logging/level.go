// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUnknownLevel is returned when a textual level is not one of
// error, warn, info, debug or trace.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is the minimum severity an event must have to be emitted.
// Levels are ordered by increasing verbosity.
type Level int8

const (
	// LevelError emits only errors.
	LevelError Level = iota
	// LevelWarn emits warnings and errors.
	LevelWarn
	// LevelInfo emits general operational information (default).
	LevelInfo
	// LevelDebug emits detailed diagnostic information.
	LevelDebug
	// LevelTrace emits everything.
	LevelTrace
)

// DefaultLevel is used whenever a configuration source omits the level.
const DefaultLevel = LevelInfo

// levelNames is the single source of truth for textual levels.
// Parsing and rendering both read from it, so the two stay in sync.
var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
	LevelTrace: "trace",
}

var levelByName = map[string]Level{
	"error": LevelError,
	"warn":  LevelWarn,
	"info":  LevelInfo,
	"debug": LevelDebug,
	"trace": LevelTrace,
}

var zerologLevels = [...]zerolog.Level{
	LevelError: zerolog.ErrorLevel,
	LevelWarn:  zerolog.WarnLevel,
	LevelInfo:  zerolog.InfoLevel,
	LevelDebug: zerolog.DebugLevel,
	LevelTrace: zerolog.TraceLevel,
}

// Levels returns every level from least to most verbose.
func Levels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
}

// ParseLevel converts a lowercase level name to a Level.
//
//	lvl, err := logging.ParseLevel("debug")
func ParseLevel(s string) (Level, error) {
	if lvl, ok := levelByName[s]; ok {
		return lvl, nil
	}
	return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// String returns the lowercase level name.
func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int8(l))
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Configuration loaders
// rely on it, so an invalid level fails the whole load.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// Enables reports whether an event at level other passes a threshold of l.
func (l Level) Enables(other Level) bool {
	return other <= l
}

// Zerolog returns the equivalent zerolog level.
func (l Level) Zerolog() zerolog.Level {
	if !l.valid() {
		return zerolog.InfoLevel
	}
	return zerologLevels[l]
}

func (l Level) valid() bool {
	return l >= LevelError && l <= LevelTrace
}
