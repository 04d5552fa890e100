// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
)

// tShim is the subset of testing.TB used by the log scope.
type tShim interface {
	Helper()
	Logf(format string, args ...interface{})
}

// TestLogScope captures the log entries emitted during a test.
type TestLogScope struct {
	prevOut       io.Writer
	prevThreshold Severity

	mu  sync.Mutex
	buf strings.Builder
}

// Scope redirects all log entries at or above INFO into an
// in-memory buffer until Close is called. Colors are not used for
// captured entries.
//
// Use with:
//
//	defer log.Scope(t).Close(t)
func Scope(t tShim) *TestLogScope {
	t.Helper()
	s := &TestLogScope{}
	s.prevOut = setOutput(s)
	s.prevThreshold = StderrThreshold()
	SetStderrThreshold(severity.INFO)
	return s
}

// Write implements io.Writer.
func (s *TestLogScope) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// String returns the entries captured so far.
func (s *TestLogScope) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Close restores the previous log destination.
func (s *TestLogScope) Close(t tShim) {
	t.Helper()
	setOutput(s.prevOut)
	SetStderrThreshold(s.prevThreshold)
}
