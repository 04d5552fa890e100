// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import (
	"io"

	"github.com/chzyer/readline"
)

// maxHistEntries is the maximum number of entries kept in the history
// file.
const maxHistEntries = 100

// readlineReader implements the editor interface for interactive
// input on a terminal.
type readlineReader struct {
	ins *readline.Instance
}

func (r *readlineReader) init(
	win io.Reader, wout, werr io.Writer, histFile string,
) (cleanupFn func(), err error) {
	stdin, ok := win.(io.ReadCloser)
	if !ok {
		stdin = io.NopCloser(win)
	}
	cfg := &readline.Config{
		Stdin:  stdin,
		Stdout: wout,
		Stderr: werr,

		HistoryFile:            histFile,
		HistoryLimit:           maxHistEntries,
		HistorySearchFold:      true,
		DisableAutoSaveHistory: true,

		AutoComplete:        newMetaCommandCompleter(),
		InterruptPrompt:     "^C",
		FuncFilterInputRune: filterInput,
	}
	r.ins, err = readline.NewEx(cfg)
	if err != nil {
		return func() {}, err
	}
	return func() { _ = r.ins.Close() }, nil
}

// filterInput disables job control through Ctrl+Z, which would leave
// the terminal in raw mode.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

func (r *readlineReader) errInterrupted() error {
	return readline.ErrInterrupt
}

func (r *readlineReader) getLine() (string, error) {
	return r.ins.Readline()
}

// addHistory persists a line of input to the history file. If this
// fails, history persistence is disabled for the remainder of the
// session.
func (r *readlineReader) addHistory(line string) error {
	// ins.SaveHistory will push command into memory and try to
	// persist to disk (if ins's config.HistoryFile is set). err can
	// be not nil only if it got a IO error while trying to persist.
	if err := r.ins.SaveHistory(line); err != nil {
		cfg := r.ins.Config.Clone()
		cfg.HistoryFile = ""
		r.ins.SetConfig(cfg)
		return err
	}
	return nil
}

func (r *readlineReader) canPrompt() bool { return true }

func (r *readlineReader) setPrompt(prompt string) {
	r.ins.SetPrompt(prompt)
}
