// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Field names written by the formatter.
const (
	FieldThreadID   = "thread_id"
	FieldThreadName = "thread_name"
	FieldFile       = "file"
	FieldLine       = "line"
	FieldTarget     = "target"

	// fieldSource is synthesized by the console writer from file and line.
	fieldSource = "source"
)

// hookCallerSkip is the number of frames between callSite and the code that
// finished the event: callSite, Run, (*zerolog.Event).msg, Msg/Msgf/Send.
const hookCallerSkip = 4

// Format selects how events are rendered.
type Format string

const (
	// FormatConsole renders human readable lines (default).
	FormatConsole Format = "console"
	// FormatJSON writes zerolog's JSON objects unchanged.
	FormatJSON Format = "json"
)

// Toggles are the display switches of a Formatter.
type Toggles struct {
	ThreadID   bool
	ThreadName bool
	File       bool
	LineNumber bool
	Target     bool
}

// Formatter decides which metadata is attached to each event.
type Formatter struct {
	toggles Toggles
}

// NewFormatter maps the display toggles of cfg one to one onto a Formatter.
func NewFormatter(cfg LoggerConfig) *Formatter {
	return &Formatter{
		toggles: Toggles{
			ThreadID:   cfg.ShowThreadID,
			ThreadName: cfg.ShowThreadName,
			File:       cfg.ShowFile,
			LineNumber: cfg.ShowLineNumber,
			Target:     cfg.ShowTarget,
		},
	}
}

// Toggles returns the display switches.
func (f *Formatter) Toggles() Toggles {
	return f.toggles
}

// Hook returns a zerolog hook that decorates events emitted for target.
func (f *Formatter) Hook(target string) zerolog.Hook {
	return &targetFormatter{f: f, target: target}
}

type targetFormatter struct {
	f      *Formatter
	target string
}

// Run implements zerolog.Hook.
func (h *targetFormatter) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	t := h.f.toggles

	if t.ThreadName {
		if name := ThreadNameFromContext(e.GetCtx()); name != "" {
			e.Str(FieldThreadName, name)
		}
	}
	if t.ThreadID {
		e.Int64(FieldThreadID, currentThreadID())
	}
	if t.Target {
		e.Str(FieldTarget, h.target)
	}
	if t.File || t.LineNumber {
		file, line, ok := h.callSite(e)
		if ok {
			if t.File {
				e.Str(FieldFile, shortFile(file))
			}
			if t.LineNumber {
				e.Int(FieldLine, line)
			}
		}
	}
}

// callSite must be called directly from Run for hookCallerSkip to hold.
func (h *targetFormatter) callSite(e *zerolog.Event) (string, int, bool) {
	if pc, ok := callerPCFromContext(e.GetCtx()); ok {
		frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		return frame.File, frame.Line, frame.File != ""
	}
	_, file, line, ok := runtime.Caller(hookCallerSkip)
	return file, line, ok
}

// shortFile keeps the last directory and the file name.
func shortFile(file string) string {
	dir, name := filepath.Split(file)
	parent := filepath.Base(dir)
	if parent == "." || parent == string(filepath.Separator) {
		return name
	}
	return parent + "/" + name
}

// Writer wraps out for the given format. JSON passes events through unchanged;
// console lays out the formatter fields ahead of the message.
func (f *Formatter) Writer(out io.Writer, format Format, noColor bool) io.Writer {
	if format == FormatJSON {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldThreadName,
			FieldThreadID,
			FieldTarget,
			fieldSource,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{
			FieldThreadName,
			FieldThreadID,
			FieldTarget,
			FieldFile,
			FieldLine,
			fieldSource,
		},
		FormatPrepare:         prepareSource,
		FormatPartValueByName: formatPart,
	}
}

// prepareSource joins file and line into "file:line:".
func prepareSource(evt map[string]interface{}) error {
	file, hasFile := evt[FieldFile]
	line, hasLine := evt[FieldLine]

	switch {
	case hasFile && hasLine:
		evt[fieldSource] = fmt.Sprintf("%v:%v:", file, line)
	case hasFile:
		evt[fieldSource] = fmt.Sprintf("%v:", file)
	case hasLine:
		evt[fieldSource] = fmt.Sprintf("%v:", line)
	}
	return nil
}

func formatPart(v interface{}, name string) string {
	if v == nil {
		return ""
	}
	switch name {
	case FieldThreadID:
		return fmt.Sprintf("ThreadId(%v)", v)
	case FieldTarget:
		return fmt.Sprintf("%v:", v)
	default:
		return fmt.Sprint(v)
	}
}
