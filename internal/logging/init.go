// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// ErrAlreadyInitialized is returned by Init and InitDefault once the
// process-wide logger has been registered. The condition lasts for the
// lifetime of the process.
var ErrAlreadyInitialized = errors.New("logging already initialized")

// claimed is set by the Init call that wins the race, before any session is
// built; it is cleared again only if building that session fails.
var claimed atomic.Bool

// registered holds the session installed by the winning Init.
var registered atomic.Pointer[Session]

// Option customizes a Session.
type Option func(*options)

type options struct {
	output   io.Writer
	format   Format
	noColor  bool
	registry prometheus.Registerer
}

// WithOutput sets the destination of rendered events. Default: os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithFormat selects console or JSON rendering. Default: console.
func WithFormat(format Format) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

// WithNoColor disables ANSI colors in console output.
func WithNoColor(noColor bool) Option {
	return func(o *options) {
		o.noColor = noColor
	}
}

// WithMetrics counts emitted events on reg as svclog_events_total.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// Session is a configured logging backend: a filter, a formatter and the
// writer they feed. New builds isolated sessions; Init registers one for the
// whole process.
type Session struct {
	service   string
	config    LoggerConfig
	expr      string
	filter    Filter
	formatter *Formatter
	base      zerolog.Logger
	events    *prometheus.CounterVec
	root      zerolog.Logger
}

// New builds a session for service without touching process-wide state.
// The filter is derived from FilterExpression(cfg.Level, service).
func New(service string, cfg LoggerConfig, opts ...Option) (*Session, error) {
	o := options{
		output: os.Stderr,
		format: FormatConsole,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// The service name goes in verbatim; directives it breaks are dropped
	// and reported once the logger exists.
	expr := FilterExpression(cfg.Level, service)
	filter, filterErr := ParseFilter(expr)

	s := &Session{
		service:   service,
		config:    cfg,
		expr:      expr,
		filter:    filter,
		formatter: NewFormatter(cfg),
	}
	s.base = zerolog.New(s.formatter.Writer(o.output, o.format, o.noColor)).
		With().Timestamp().Logger()

	if o.registry != nil {
		events, err := newEventCounter(o.registry)
		if err != nil {
			return nil, err
		}
		s.events = events
	}

	s.root = s.For(service)

	if filterErr != nil {
		s.root.Warn().Err(filterErr).Str("service", service).Msg("Ignoring invalid filter directives")
	}

	return s, nil
}

// Init builds a session from cfg and registers it as the process-wide logger.
// Only the first call in a process succeeds; every later call returns
// ErrAlreadyInitialized and leaves the registered session in place. If the
// first call fails to build its session, a later call may still succeed.
//
//	if _, err := logging.Init("my-service", cfg); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
func Init(service string, cfg LoggerConfig, opts ...Option) (*Session, error) {
	// Losers return before New, so they never register collectors.
	if !claimed.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	s, err := New(service, cfg, opts...)
	if err != nil {
		claimed.Store(false)
		return nil, err
	}

	registered.Store(s)
	install(s)

	return s, nil
}

// InitDefault is Init with DefaultLoggerConfig.
func InitDefault(service string, opts ...Option) (*Session, error) {
	return Init(service, DefaultLoggerConfig(), opts...)
}

// Current returns the registered session, or nil before Init succeeds.
func Current() *Session {
	return registered.Load()
}

// install routes the package facade, zerolog's global logger and slog's
// default logger through s.
func install(s *Session) {
	zerolog.SetGlobalLevel(s.filter.MaxLevel().Zerolog())
	SetLogger(s.Logger())
	zlog.Logger = s.Logger()
	slog.SetDefault(s.Slog())
}

// Service returns the service name the session was built for.
func (s *Session) Service() string {
	return s.service
}

// Config returns the configuration the session was built from.
func (s *Session) Config() LoggerConfig {
	return s.config
}

// Filter returns the parsed filter.
func (s *Session) Filter() Filter {
	return s.filter
}

// FilterExpression returns the expression the filter was built from,
// e.g. "debug,my-service=debug". The service name appears verbatim.
func (s *Session) FilterExpression() string {
	return s.expr
}

// Formatter returns the formatter built from the display toggles.
func (s *Session) Formatter() *Formatter {
	return s.formatter
}

// Logger returns the logger whose target is the service name.
func (s *Session) Logger() zerolog.Logger {
	return s.root
}

// For returns a logger for target, filtered at the level the filter assigns
// to it.
//
//	dbLog := session.For("my-service/db")
func (s *Session) For(target string) zerolog.Logger {
	hooks := []zerolog.Hook{s.formatter.Hook(target)}
	if s.events != nil {
		hooks = append(hooks, counterHook{vec: s.events, target: target})
	}
	return s.base.Level(s.filter.LevelFor(target).Zerolog()).Hook(hooks...)
}

// Slog returns an slog.Logger writing through the service logger.
func (s *Session) Slog() *slog.Logger {
	return slog.New(NewSlogHandler(s.root))
}
