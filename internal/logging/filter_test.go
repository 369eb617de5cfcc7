// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"testing"
)

func TestFilterExpression(t *testing.T) {
	t.Parallel()

	services := []string{"svc-a", "my-service", "billing/worker", "x"}
	for _, lvl := range Levels() {
		for _, svc := range services {
			want := lvl.String() + "," + svc + "=" + lvl.String()
			if got := FilterExpression(lvl, svc); got != want {
				t.Errorf("FilterExpression(%v, %q) = %q, want %q", lvl, svc, got, want)
			}
		}
	}

	if got := FilterExpression(LevelDebug, "my-service"); got != "debug,my-service=debug" {
		t.Errorf("unexpected expression %q", got)
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	f, err := ParseFilter("info,svc-a=debug,svc-a/db=trace")
	if err != nil {
		t.Fatalf("ParseFilter returned error: %v", err)
	}
	if f.Default != LevelInfo {
		t.Errorf("expected default info, got %v", f.Default)
	}
	if len(f.Directives) != 2 {
		t.Fatalf("expected 2 directives, got %d", len(f.Directives))
	}
	if f.Directives[0] != (Directive{Target: "svc-a", Level: LevelDebug}) {
		t.Errorf("unexpected first directive %+v", f.Directives[0])
	}
	if f.String() != "info,svc-a=debug,svc-a/db=trace" {
		t.Errorf("unexpected String() %q", f.String())
	}
}

func TestParseFilter_RoundTripsInitExpression(t *testing.T) {
	t.Parallel()

	for _, lvl := range Levels() {
		expr := FilterExpression(lvl, "svc-a")
		f, err := ParseFilter(expr)
		if err != nil {
			t.Fatalf("ParseFilter(%q) returned error: %v", expr, err)
		}
		if f.String() != expr {
			t.Errorf("ParseFilter(%q).String() = %q", expr, f.String())
		}
		if f.LevelFor("svc-a") != lvl || f.LevelFor("other") != lvl {
			t.Errorf("expected both directives at %v, got %+v", lvl, f)
		}
	}
}

func TestParseFilter_InvalidDirectives(t *testing.T) {
	t.Parallel()

	f, err := ParseFilter("debug,svc=loud,=info,bogus,other=warn")
	if !errors.Is(err, ErrInvalidDirective) {
		t.Fatalf("expected ErrInvalidDirective, got %v", err)
	}
	if f.Default != LevelDebug {
		t.Errorf("expected default debug, got %v", f.Default)
	}
	if len(f.Directives) != 1 || f.Directives[0].Target != "other" {
		t.Errorf("expected only the valid directive to survive, got %+v", f.Directives)
	}
}

func TestParseFilter_NoDefault(t *testing.T) {
	t.Parallel()

	f, err := ParseFilter("svc=trace")
	if err != nil {
		t.Fatalf("ParseFilter returned error: %v", err)
	}
	if f.LevelFor("unrelated") != LevelError {
		t.Errorf("expected error level for unmatched targets, got %v", f.LevelFor("unrelated"))
	}
	if f.String() != "svc=trace" {
		t.Errorf("unexpected String() %q", f.String())
	}
}

func TestFilterLevelFor(t *testing.T) {
	t.Parallel()

	f, err := ParseFilter("warn,api=info,api/v2=trace")
	if err != nil {
		t.Fatalf("ParseFilter returned error: %v", err)
	}

	tests := []struct {
		target   string
		expected Level
	}{
		{"api", LevelInfo},
		{"api/v1", LevelInfo},
		{"api/v2", LevelTrace},
		{"api/v2/users", LevelTrace},
		{"db", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		if got := f.LevelFor(tt.target); got != tt.expected {
			t.Errorf("LevelFor(%q) = %v, want %v", tt.target, got, tt.expected)
		}
	}

	if f.MaxLevel() != LevelTrace {
		t.Errorf("expected MaxLevel trace, got %v", f.MaxLevel())
	}
}
