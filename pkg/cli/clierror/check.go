// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
)

// LoggerFn is the type of a logging function.
type LoggerFn = func(ctx context.Context, sev log.Severity, msg string, args ...interface{})

// CheckAndMaybeLog reports the error, if non-nil, to the given
// logger. If the error is a clierror.Error with a severity set,
// that severity is used and only the first layer of wrapping is
// removed. The error is returned unchanged.
func CheckAndMaybeLog(err error, logger LoggerFn) error {
	if err == nil {
		return nil
	}
	sev := severity.ERROR
	cause := err
	var cliErr *Error
	if errors.As(err, &cliErr) {
		if cliErr.severity != severity.UNKNOWN {
			sev = cliErr.severity
		}
		cause = cliErr.cause
	}
	logger(context.Background(), sev, "%v", cause)
	return err
}
