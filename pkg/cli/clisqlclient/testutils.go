// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlclient

import (
	"io"

	"github.com/cockroachdb/sqlsh/pkg/util/log"
)

// stderr aliases log.OrigStderr; we use an alias here so that tests
// in this package can redirect the warnings printed while opening a
// database to be captured.
var stderr io.Writer = log.OrigStderr

// TestingSetStderr is exported for use in tests.
func TestingSetStderr(newStderr io.Writer) (restore func()) {
	prev := stderr
	stderr = newStderr
	return func() { stderr = prev }
}
