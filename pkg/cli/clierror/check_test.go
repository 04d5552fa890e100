// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/sqlsh/pkg/cli/exit"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logger struct {
	TB       testing.TB
	Severity log.Severity
	Err      error
}

func (l *logger) Log(_ context.Context, sev log.Severity, msg string, args ...interface{}) {
	require.Equal(l.TB, 1, len(args), "expected to log one item")
	err, ok := args[0].(error)
	require.True(l.TB, ok, "expected to log an error")
	l.Severity = sev
	l.Err = err
}

func TestErrorReporting(t *testing.T) {
	defer log.Scope(t).Close(t)

	tests := []struct {
		desc         string
		err          error
		wantSeverity log.Severity
		wantCLICause bool // should the cause be an *Error?
	}{
		{
			desc:         "plain",
			err:          errors.New("boom"),
			wantSeverity: severity.ERROR,
			wantCLICause: false,
		},
		{
			desc: "single cliError",
			err: NewErrorWithSeverity(
				errors.New("routine"),
				exit.UnspecifiedError(),
				severity.INFO,
			),
			wantSeverity: severity.INFO,
			wantCLICause: false,
		},
		{
			desc: "double cliError",
			err: NewErrorWithSeverity(
				NewErrorWithSeverity(
					errors.New("serious"),
					exit.UnspecifiedError(),
					severity.ERROR,
				),
				exit.UnspecifiedError(),
				severity.INFO,
			),
			wantSeverity: severity.INFO, // should only unwrap one layer
			wantCLICause: true,
		},
		{
			desc: "wrapped cliError",
			err: fmt.Errorf("some context: %w", NewErrorWithSeverity(
				errors.New("routine"),
				exit.UnspecifiedError(),
				severity.INFO,
			)),
			wantSeverity: severity.INFO,
			wantCLICause: false,
		},
		{
			desc:         "no severity",
			err:          NewError(errors.New("usage"), exit.UnspecifiedError()),
			wantSeverity: severity.ERROR,
			wantCLICause: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := &logger{TB: t}
			checked := CheckAndMaybeLog(tt.err, got.Log)
			assert.Equal(t, tt.err, checked, "should return error unchanged")
			assert.Equal(t, tt.wantSeverity, got.Severity, "wrong severity log")
			gotCLI := errors.HasType(got.Err, (*Error)(nil))
			if tt.wantCLICause {
				assert.True(t, gotCLI, "logged cause should be *Error, got %T", got.Err)
			} else {
				assert.False(t, gotCLI, "logged cause shouldn't be *Error, got %T", got.Err)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, exit.UnspecifiedError(), GetExitCode(errors.New("plain")))
	err := errors.Wrap(NewError(errors.New("boom"), exit.UnspecifiedGoPanic()), "context")
	assert.Equal(t, exit.UnspecifiedGoPanic(), GetExitCode(err))
}

func TestOutputError(t *testing.T) {
	err := errors.WithHint(
		errors.WithDetail(errors.New("unable to open database"), "file is locked"),
		"Try again later.")
	var buf strings.Builder
	OutputError(&buf, err, false /* verbose */)
	require.Equal(t, `Error: unable to open database
DETAIL: file is locked
HINT: Try again later.
`, buf.String())
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, severity.UNKNOWN, GetSeverity(errors.New("plain")))
	assert.Equal(t, severity.UNKNOWN, GetSeverity(NewError(errors.New("boom"), exit.UnspecifiedError())))
	err := errors.Wrap(
		NewErrorWithSeverity(errors.New("reported"), exit.UnspecifiedError(), severity.NONE), "context")
	assert.Equal(t, severity.NONE, GetSeverity(err))
}
