// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/svclog/internal/logging"
	"github.com/tomtom215/svclog/internal/metrics"
)

// RequestIDHeader carries the request id in and out of the probe endpoints.
const RequestIDHeader = "X-Request-ID"

// probeRouter serves the introspection endpoints of a running session.
type probeRouter struct {
	session  *logging.Session
	format   logging.Format
	gatherer prometheus.Gatherer
}

// configResponse is the body of GET /config.
type configResponse struct {
	Service string          `json:"service"`
	Level   string          `json:"level"`
	Filter  string          `json:"filter"`
	Format  string          `json:"format"`
	Toggles togglesResponse `json:"toggles"`
}

type togglesResponse struct {
	ThreadID   bool `json:"show_thread_id"`
	ThreadName bool `json:"show_thread_name"`
	File       bool `json:"show_file"`
	LineNumber bool `json:"show_line_number"`
	Target     bool `json:"show_target"`
}

// newRouter wires /healthz, /metrics and /config. A nil gatherer serves the
// default Prometheus registry; nil httpMetrics leaves requests uninstrumented.
func newRouter(session *logging.Session, format logging.Format, gatherer prometheus.Gatherer, httpMetrics *metrics.HTTPMetrics) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	pr := &probeRouter{session: session, format: format, gatherer: gatherer}

	r := chi.NewRouter()
	r.Use(requestIDWithLogging)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(accessLog)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	// Permissive limit: probes are polled, not browsed.
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/healthz", pr.healthz)
		r.Get("/config", pr.config)
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

func (pr *probeRouter) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // HTTP response write errors are not recoverable
	w.Write([]byte("ok\n"))
}

func (pr *probeRouter) config(w http.ResponseWriter, r *http.Request) {
	cfg := pr.session.Config()
	toggles := pr.session.Formatter().Toggles()

	writeJSON(w, r, configResponse{
		Service: pr.session.Service(),
		Level:   cfg.Level.String(),
		Filter:  pr.session.FilterExpression(),
		Format:  string(pr.format),
		Toggles: togglesResponse{
			ThreadID:   toggles.ThreadID,
			ThreadName: toggles.ThreadName,
			File:       toggles.File,
			LineNumber: toggles.LineNumber,
			Target:     toggles.Target,
		},
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// requestIDWithLogging takes the request id from the header, or generates
// one, and binds it and a fresh correlation id to the request context.
func requestIDWithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, logging.GenerateCorrelationID())
		ctx = logging.ContextWithThreadName(ctx, "http")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLog records one debug event per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}
