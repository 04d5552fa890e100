// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import "io"

// editor is the interface between the shell and a line editor.
type editor interface {
	init(win io.Reader, wout, werr io.Writer, histFile string) (cleanupFn func(), err error)
	errInterrupted() error
	getLine() (string, error)
	addHistory(line string) error
	canPrompt() bool
	setPrompt(prompt string)
}

func getEditor(useReadline bool) editor {
	if useReadline {
		return &readlineReader{}
	}
	return &bufioReader{}
}
