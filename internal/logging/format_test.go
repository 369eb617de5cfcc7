// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// emitLocated logs one event and returns the line of the Msg call.
func emitLocated(logger zerolog.Logger) int {
	logger.Info().Msg("located")
	_, _, line, _ := runtime.Caller(0)
	return line - 1
}

func TestNewFormatter_TogglesMapOneToOne(t *testing.T) {
	t.Parallel()

	cfg := LoggerConfig{
		Level:          LevelInfo,
		ShowThreadID:   true,
		ShowThreadName: false,
		ShowFile:       true,
		ShowLineNumber: false,
		ShowTarget:     true,
	}
	want := Toggles{ThreadID: true, ThreadName: false, File: true, LineNumber: false, Target: true}
	if got := NewFormatter(cfg).Toggles(); got != want {
		t.Errorf("Toggles() = %+v, want %+v", got, want)
	}
}

func TestFormatter_AllFields(t *testing.T) {
	t.Parallel()

	s, buf := newJSONSession(t, "svc-a", DefaultLoggerConfig())

	ctx := ContextWithThreadName(context.Background(), "worker-1")
	logger := s.Logger().With().Ctx(ctx).Logger()
	wantLine := emitLocated(logger)

	events := decodeLines(t, buf)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	evt := events[0]

	if evt[FieldThreadName] != "worker-1" {
		t.Errorf("expected thread_name worker-1, got %v", evt[FieldThreadName])
	}
	if id, ok := evt[FieldThreadID].(float64); !ok || id <= 0 {
		t.Errorf("expected positive thread_id, got %v", evt[FieldThreadID])
	}
	if evt[FieldTarget] != "svc-a" {
		t.Errorf("expected target svc-a, got %v", evt[FieldTarget])
	}
	if evt[FieldFile] != "logging/format_test.go" {
		t.Errorf("expected file logging/format_test.go, got %v", evt[FieldFile])
	}
	if line, ok := evt[FieldLine].(float64); !ok || int(line) != wantLine {
		t.Errorf("expected line %d, got %v", wantLine, evt[FieldLine])
	}
}

func TestFormatter_Unnamed(t *testing.T) {
	t.Parallel()

	s, buf := newJSONSession(t, "svc-a", DefaultLoggerConfig())
	logger := s.Logger()
	logger.Info().Msg("no name")

	events := decodeLines(t, buf)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if _, ok := events[0][FieldThreadName]; ok {
		t.Errorf("expected no thread_name without a named context: %v", events[0])
	}
}

func TestFormatter_AllTogglesOff(t *testing.T) {
	t.Parallel()

	s, buf := newJSONSession(t, "svc-a", LoggerConfig{Level: LevelInfo})
	ctx := ContextWithThreadName(context.Background(), "worker-1")
	logger := s.Logger().With().Ctx(ctx).Logger()
	logger.Info().Str("k", "v").Msg("bare")

	events := decodeLines(t, buf)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	for _, field := range []string{FieldThreadID, FieldThreadName, FieldFile, FieldLine, FieldTarget} {
		if _, ok := events[0][field]; ok {
			t.Errorf("expected no %s field with all toggles off: %v", field, events[0])
		}
	}
	if events[0]["k"] != "v" {
		t.Errorf("expected user fields to survive: %v", events[0])
	}
}

func TestFormatter_ConsoleLayout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := New("svc-a", DefaultLoggerConfig(), WithOutput(&buf), WithNoColor(true))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := ContextWithThreadName(context.Background(), "worker-1")
	logger := s.Logger().With().Ctx(ctx).Logger()
	wantLine := emitLocated(logger)

	out := buf.String()
	if strings.Contains(out, `"level"`) {
		t.Errorf("expected console format (not JSON): %s", out)
	}

	ordered := []string{
		"INF",
		"worker-1",
		"ThreadId(",
		"svc-a:",
		"logging/format_test.go:" + strconv.Itoa(wantLine) + ":",
		"located",
	}
	pos := 0
	for _, part := range ordered {
		i := strings.Index(out[pos:], part)
		if i < 0 {
			t.Fatalf("expected %q after position %d in %q", part, pos, out)
		}
		pos += i + len(part)
	}
	if strings.Contains(out, "thread_id=") || strings.Contains(out, "target=") {
		t.Errorf("formatter fields must render as parts, not key=value: %s", out)
	}
}

func TestPrepareSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		evt      map[string]interface{}
		expected interface{}
	}{
		{"both", map[string]interface{}{FieldFile: "a/b.go", FieldLine: 7}, "a/b.go:7:"},
		{"file only", map[string]interface{}{FieldFile: "a/b.go"}, "a/b.go:"},
		{"line only", map[string]interface{}{FieldLine: 7}, "7:"},
		{"neither", map[string]interface{}{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := prepareSource(tt.evt); err != nil {
				t.Fatalf("prepareSource returned error: %v", err)
			}
			if tt.evt[fieldSource] != tt.expected {
				t.Errorf("source = %v, want %v", tt.evt[fieldSource], tt.expected)
			}
		})
	}
}

func TestShortFile(t *testing.T) {
	t.Parallel()

	if got := shortFile("/src/svclog/internal/logging/init.go"); got != "logging/init.go" {
		t.Errorf("shortFile = %q", got)
	}
	if got := shortFile("main.go"); got != "main.go" {
		t.Errorf("shortFile = %q", got)
	}
}
