// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// isolateGlobalState clears the init latch and restores every global that
// Init touches when the test ends. Tests using it must not call t.Parallel.
func isolateGlobalState(t *testing.T) {
	t.Helper()

	prevLogger := Logger()
	prevZerolog := zlog.Logger
	prevSlog := slog.Default()
	prevLevel := zerolog.GlobalLevel()

	claimed.Store(false)
	registered.Store(nil)
	t.Cleanup(func() {
		claimed.Store(false)
		registered.Store(nil)
		SetLogger(prevLogger)
		zlog.Logger = prevZerolog
		slog.SetDefault(prevSlog)
		zerolog.SetGlobalLevel(prevLevel)
	})
}

// decodeLines parses one JSON object per line of buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var events []map[string]interface{}
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}
		var evt map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			t.Fatalf("failed to decode log line %q: %v", scanner.Text(), err)
		}
		events = append(events, evt)
	}
	return events
}

// newJSONSession builds an isolated session writing JSON into a buffer.
func newJSONSession(t *testing.T, service string, cfg LoggerConfig, opts ...Option) (*Session, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	opts = append([]Option{WithOutput(&buf), WithFormat(FormatJSON)}, opts...)
	s, err := New(service, cfg, opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s, &buf
}
