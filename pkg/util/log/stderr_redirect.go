// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"io"
	"os"
)

// OrigStderr points to the original stderr stream.
var OrigStderr = os.Stderr

// setOutput redirects log entries to w and returns the previous
// destination.
func setOutput(w io.Writer) io.Writer {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.out
	logging.mu.out = w
	return prev
}
