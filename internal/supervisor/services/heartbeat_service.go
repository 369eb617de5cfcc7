// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/svclog/internal/logging"
)

// HeartbeatThreadName is the thread name heartbeat events carry.
const HeartbeatThreadName = "heartbeat"

// HeartbeatService emits one event at every level each interval. Which of
// them reach the output shows the active filter at a glance.
type HeartbeatService struct {
	logger   zerolog.Logger
	interval time.Duration
	seq      atomic.Uint64
	name     string
}

// NewHeartbeatService creates a heartbeat that logs through logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHeartbeatService(logger zerolog.Logger, interval time.Duration) *HeartbeatService {
	return &HeartbeatService{
		logger:   logger,
		interval: interval,
		name:     "heartbeat",
	}
}

// Serve implements suture.Service. It beats once immediately, then every
// interval until ctx is canceled. A non-positive interval stops the service
// for good.
func (h *HeartbeatService) Serve(ctx context.Context) error {
	if h.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ctx = logging.ContextWithThreadName(ctx, HeartbeatThreadName)

	h.Beat(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.Beat(ctx)
		}
	}
}

// Beat emits one event per level, most verbose first.
func (h *HeartbeatService) Beat(ctx context.Context) {
	seq := h.seq.Add(1)
	logger := h.logger.With().Ctx(ctx).Uint64("seq", seq).Logger()

	logger.Trace().Msg("heartbeat")
	logger.Debug().Msg("heartbeat")
	logger.Info().Msg("heartbeat")
	logger.Warn().Msg("heartbeat")
	logger.Error().Msg("heartbeat")
}

// Beats returns how many heartbeats were emitted.
func (h *HeartbeatService) Beats() uint64 {
	return h.seq.Load()
}

// String implements fmt.Stringer; suture uses it in event logs.
func (h *HeartbeatService) String() string {
	return h.name
}
