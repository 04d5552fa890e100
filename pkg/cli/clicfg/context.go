// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package clicfg contains the configuration shared by the shell
// components, independently of the command that drives them.
package clicfg

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Context represents the configuration of the process environment
// in which the shell runs.
type Context struct {
	// IsInteractive indicates whether the session is interactive, that
	// is, the commands executed are extremely likely to be *input* from
	// a human user: the standard input is a terminal.
	IsInteractive bool

	// TerminalOutput indicates whether the standard output is a
	// terminal.
	TerminalOutput bool
}

// LoadDefaults loads the default values of the context based on the
// standard streams.
func (ctx *Context) LoadDefaults(stdin, stdout *os.File) {
	ctx.IsInteractive = isTerminal(stdin)
	ctx.TerminalOutput = isTerminal(stdout)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
