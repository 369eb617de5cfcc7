// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/svclog/internal/logging"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name: "json output",
			mutate: func(c *Config) {
				c.Output.Format = "json"
			},
		},
		{
			name: "heartbeat disabled",
			mutate: func(c *Config) {
				c.Heartbeat.Interval = 0
			},
		},
		{
			name: "metrics address without host",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.ListenAddr = ":9090"
			},
		},
		{
			name: "empty service",
			mutate: func(c *Config) {
				c.Service = ""
			},
			wantErr: []string{"Config.Service is required"},
		},
		{
			name: "unknown format",
			mutate: func(c *Config) {
				c.Output.Format = "text"
			},
			wantErr: []string{"Config.Output.Format must be one of: console json"},
		},
		{
			name: "metrics enabled without address",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.ListenAddr = ""
			},
			wantErr: []string{"ListenAddr is required when metrics are enabled"},
		},
		{
			name: "multiple failures are joined",
			mutate: func(c *Config) {
				c.Service = ""
				c.Heartbeat.Interval = -time.Second
			},
			wantErr: []string{
				"Config.Service is required",
				"Config.Heartbeat.Interval must be greater than or equal to 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			cfg.Service = "svc-a"
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() error = nil, want failure")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
			for _, msg := range tt.wantErr {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), msg)
				}
			}
		})
	}
}

func TestOutputConfigLogFormat(t *testing.T) {
	t.Parallel()

	if got := (OutputConfig{Format: "console"}).LogFormat(); got != logging.FormatConsole {
		t.Errorf("LogFormat() = %q, want console", got)
	}
	if got := (OutputConfig{Format: "json"}).LogFormat(); got != logging.FormatJSON {
		t.Errorf("LogFormat() = %q, want json", got)
	}
}
