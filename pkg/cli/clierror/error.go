// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/sqlsh/pkg/cli/exit"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
)

// Error wraps another error to attach an exit code and the severity
// at which the error should be logged.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

// NewError wraps an error with an exit code.
func NewError(cause error, exitCode exit.Code) error {
	return NewErrorWithSeverity(cause, exitCode, severity.UNKNOWN)
}

// NewErrorWithSeverity wraps an error with an exit code and a
// logging severity.
func NewErrorWithSeverity(cause error, exitCode exit.Code, sev log.Severity) error {
	return &Error{
		exitCode: exitCode,
		severity: sev,
		cause:    cause,
	}
}

// GetExitCode retrieves the exit code from an error, or
// exit.UnspecifiedError() if the error does not carry one.
func GetExitCode(err error) exit.Code {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.exitCode
	}
	return exit.UnspecifiedError()
}

// GetSeverity retrieves the logging severity attached to an error,
// or severity.UNKNOWN if there is none.
func GetSeverity(err error) log.Severity {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.severity
	}
	return severity.UNKNOWN
}

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 wrapper interface.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %d", e.exitCode)
	}
	return e.cause
}
