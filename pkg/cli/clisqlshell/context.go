// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import (
	"bufio"
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
)

// Context represents the external configuration of the interactive
// shell.
type Context struct {
	// Echo, when set, prints each input line before it is processed.
	Echo bool

	// InitFile is the startup script. When empty, ~/.sqliterc is used
	// if it exists.
	InitFile string

	// ExecStmts is a list of statements or meta-commands to run
	// instead of reading the input.
	ExecStmts []string

	// FS is the filesystem used for .read, .output and the startup
	// script. Defaults to the OS filesystem.
	FS afero.Fs
}

// internalContext represents the internal configuration state of the
// interactive shell. It is shared by the nested input levels of .read.
type internalContext struct {
	fs afero.Fs

	stdout io.Writer
	stderr io.Writer

	// queryOutputFile is the file opened by .output, nil when query
	// results go to stdout.
	queryOutputFile afero.File
	queryOutputName string
	// queryOutputBuf buffers writes to queryOutputFile.
	queryOutputBuf *bufio.Writer
	// queryOutput is where query results are printed.
	queryOutput io.Writer

	fullPrompt     string
	continuePrompt string

	// interrupted is set by the signal handler. The input loop checks
	// it once per line.
	interrupted atomic.Bool

	// quitRequested is set by .quit and terminates all the nested
	// input levels.
	quitRequested bool

	mu struct {
		sync.Mutex

		// cancelFn cancels the statement currently executing, if any.
		cancelFn context.CancelFunc
	}
}
