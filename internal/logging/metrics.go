// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// EventsMetricName is the name of the emitted-events counter.
const EventsMetricName = "svclog_events_total"

// newEventCounter registers the events counter on reg. A counter registered
// by an earlier session on the same registry is reused.
func newEventCounter(reg prometheus.Registerer) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: EventsMetricName,
			Help: "Total number of log events emitted, by level and target",
		},
		[]string{"level", "target"},
	)

	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to register %s: %w", EventsMetricName, err)
	}
	return vec, nil
}

// counterHook counts events that passed the filter.
type counterHook struct {
	vec    *prometheus.CounterVec
	target string
}

// Run implements zerolog.Hook.
func (h counterHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	h.vec.WithLabelValues(level.String(), h.target).Inc()
}
