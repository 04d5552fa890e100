// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import "os"

// Shell represents an interactive or batch shell session.
type Shell interface {
	// RunInteractive runs the shell until the input is exhausted or
	// the user exits. When one-shot statements are configured in the
	// Context, they are run instead of reading the input.
	RunInteractive(cmdIn, cmdOut, cmdErr *os.File) error
}
