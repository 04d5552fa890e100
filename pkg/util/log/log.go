// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"

	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
)

// Infof logs to the INFO log.
// It extracts log tags from the context and logs them along with the given
// message. Arguments are handled in the manner of fmt.Printf.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, severity.INFO, 1, format, args)
}

// Info logs a message to the INFO log.
func Info(ctx context.Context, msg string) {
	addStructured(ctx, severity.INFO, 1, "", []interface{}{msg})
}

// Warningf logs to the WARNING log.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, severity.WARNING, 1, format, args)
}

// Errorf logs to the ERROR log.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, severity.ERROR, 1, format, args)
}

// Fatalf logs to the FATAL log, then terminates the process with
// exit status 1 (or calls the function set with SetExitFunc).
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, severity.FATAL, 1, format, args)
}

// Logf logs at the given severity.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	addStructured(ctx, sev, 1, format, args)
}
