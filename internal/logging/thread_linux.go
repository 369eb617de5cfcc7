// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

//go:build linux

package logging

import "golang.org/x/sys/unix"

// currentThreadID returns the id of the OS thread running the caller.
func currentThreadID() int64 {
	return int64(unix.Gettid())
}
