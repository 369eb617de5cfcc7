// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirective is reported for each filter directive that cannot be parsed.
var ErrInvalidDirective = errors.New("invalid filter directive")

// Directive sets the minimum level for every target that starts with Target.
type Directive struct {
	Target string
	Level  Level
}

// String renders the directive as "target=level".
func (d Directive) String() string {
	return d.Target + "=" + d.Level.String()
}

// Filter maps targets to minimum levels.
// Targets without a matching directive use Default.
type Filter struct {
	Default    Level
	Directives []Directive

	// hasDefault is false when the expression carried no bare level.
	hasDefault bool
}

// FilterExpression builds the expression used by Init: a global directive and
// a directive for the service, both at level.
//
//	logging.FilterExpression(logging.LevelDebug, "my-service") // "debug,my-service=debug"
func FilterExpression(level Level, service string) string {
	l := level.String()
	return l + "," + service + "=" + l
}

// ParseFilter parses a comma separated list of directives, each either a bare
// level ("info") or "target=level". Invalid directives are skipped; the
// returned error joins one ErrInvalidDirective per skipped directive while the
// Filter still carries every valid one. Without a bare level the default is error.
func ParseFilter(expr string) (Filter, error) {
	f := Filter{Default: LevelError}
	var errs []error

	for _, raw := range strings.Split(expr, ",") {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}

		eq := strings.LastIndex(part, "=")
		if eq < 0 {
			lvl, err := ParseLevel(part)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidDirective, part, err))
				continue
			}
			f.Default = lvl
			f.hasDefault = true
			continue
		}

		target := strings.TrimSpace(part[:eq])
		lvl, err := ParseLevel(strings.TrimSpace(part[eq+1:]))
		if err != nil || target == "" {
			if err == nil {
				err = errors.New("empty target")
			}
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidDirective, part, err))
			continue
		}
		f.Directives = append(f.Directives, Directive{Target: target, Level: lvl})
	}

	return f, errors.Join(errs...)
}

// LevelFor returns the minimum level for target. The directive with the
// longest target that prefixes target wins; later directives win ties.
func (f Filter) LevelFor(target string) Level {
	lvl := f.Default
	best := -1
	for _, d := range f.Directives {
		if !strings.HasPrefix(target, d.Target) {
			continue
		}
		if len(d.Target) >= best {
			best = len(d.Target)
			lvl = d.Level
		}
	}
	return lvl
}

// MaxLevel returns the most verbose level enabled by any directive.
func (f Filter) MaxLevel() Level {
	lvl := f.Default
	for _, d := range f.Directives {
		if d.Level > lvl {
			lvl = d.Level
		}
	}
	return lvl
}

// String renders the filter back into expression form.
func (f Filter) String() string {
	parts := make([]string, 0, len(f.Directives)+1)
	if f.hasDefault {
		parts = append(parts, f.Default.String())
	}
	for _, d := range f.Directives {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ",")
}
